package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/accounts/domain"
)

// memStore is an in-memory UserStore for service tests.
type memStore struct {
	users      map[string]*domain.User // by username
	lastLogins int
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*domain.User{}}
}

func (m *memStore) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	if _, exists := m.users[username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	u := &domain.User{
		ID:           fmt.Sprintf("id-%d", len(m.users)+1),
		Username:     username,
		PasswordHash: passwordHash,
	}
	m.users[username] = u
	return u, nil
}

func (m *memStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStore) UpdateLastLogin(_ context.Context, id string) error {
	m.lastLogins++
	return nil
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with bcrypt hash", func(t *testing.T) {
		store := newMemStore()
		svc := NewAccountService(store)

		user, err := svc.Signup(ctx, "  alice  ", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "correct-horse", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
	})

	t.Run("rejects short username", func(t *testing.T) {
		svc := NewAccountService(newMemStore())
		_, err := svc.Signup(ctx, "al", "correct-horse")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects long username", func(t *testing.T) {
		svc := NewAccountService(newMemStore())
		_, err := svc.Signup(ctx, strings.Repeat("a", 33), "correct-horse")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := NewAccountService(newMemStore())
		_, err := svc.Signup(ctx, "alice", "short")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate username", func(t *testing.T) {
		store := newMemStore()
		svc := NewAccountService(store)

		_, err := svc.Signup(ctx, "alice", "correct-horse")
		require.NoError(t, err)

		_, err = svc.Signup(ctx, "alice", "another-pass")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AccountService, *memStore) {
		store := newMemStore()
		svc := NewAccountService(store)
		_, err := svc.Signup(ctx, "alice", "correct-horse")
		require.NoError(t, err)
		return svc, store
	}

	t.Run("success records login", func(t *testing.T) {
		svc, store := setup(t)

		user, err := svc.Login(ctx, "alice", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, 1, store.lastLogins)
	})

	t.Run("unknown user and bad password fail identically", func(t *testing.T) {
		svc, _ := setup(t)

		_, errUnknown := svc.Login(ctx, "nobody", "correct-horse")
		_, errBadPass := svc.Login(ctx, "alice", "wrong-horse")

		assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errBadPass.Error())
	})
}

func TestAccountService_Profile(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewAccountService(store)

	created, err := svc.Signup(ctx, "alice", "correct-horse")
	require.NoError(t, err)

	user, err := svc.Profile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Profile(ctx, "missing-id")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
