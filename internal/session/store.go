package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:id:"   // Session data: session:id:{sid}
	userSetPrefix    = "session:user:" // Set of session IDs for a user: session:user:{user_id}

	DefaultTTL = 24 * time.Hour
)

var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind the cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store handles Redis operations for sessions
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new session store; ttl <= 0 falls back to DefaultTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// TTL returns the configured session lifetime (also the cookie max-age).
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create stores a new session for the user and returns it.
func (s *Store) Create(ctx context.Context, userID, username string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	// Use pipeline for atomic operations
	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.sessionKey(sess.ID), data, s.ttl)
	pipe.SAdd(ctx, s.userSetKey(userID), sess.ID)
	pipe.Expire(ctx, s.userSetKey(userID), s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sess, nil
}

// Get retrieves a session by ID.
func (s *Store) Get(ctx context.Context, sid string) (*Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(sid)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// Delete removes one session.
func (s *Store) Delete(ctx context.Context, sid string) error {
	sess, err := s.Get(ctx, sid)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.sessionKey(sid))
	pipe.SRem(ctx, s.userSetKey(sess.UserID), sid)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteAllForUser revokes every session of the user.
func (s *Store) DeleteAllForUser(ctx context.Context, userID string) error {
	sids, err := s.client.SMembers(ctx, s.userSetKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list sessions for user: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, sid := range sids {
		pipe.Del(ctx, s.sessionKey(sid))
	}
	pipe.Del(ctx, s.userSetKey(userID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete sessions for user: %w", err)
	}

	return nil
}

// CountForUser returns the number of live sessions for the user. Stale set
// members (value key already expired) are not counted.
func (s *Store) CountForUser(ctx context.Context, userID string) (int, error) {
	sids, err := s.client.SMembers(ctx, s.userSetKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions for user: %w", err)
	}

	count := 0
	for _, sid := range sids {
		n, err := s.client.Exists(ctx, s.sessionKey(sid)).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to check session: %w", err)
		}
		if n > 0 {
			count++
		}
	}
	return count, nil
}

// Sweep removes user-set members whose session key has expired. Redis
// drops the values itself via TTL; the sets need this sweep to stay honest.
// Returns the number of removed members.
func (s *Store) Sweep(ctx context.Context) (int, error) {
	removed := 0

	iter := s.client.Scan(ctx, 0, userSetPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		setKey := iter.Val()
		sids, err := s.client.SMembers(ctx, setKey).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to read %s: %w", setKey, err)
		}
		for _, sid := range sids {
			n, err := s.client.Exists(ctx, s.sessionKey(sid)).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to check session %s: %w", sid, err)
			}
			if n == 0 {
				if err := s.client.SRem(ctx, setKey, sid).Err(); err != nil {
					return removed, fmt.Errorf("failed to remove stale session %s: %w", sid, err)
				}
				removed++
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to scan user sets: %w", err)
	}

	return removed, nil
}

func (s *Store) sessionKey(sid string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sid)
}

func (s *Store) userSetKey(userID string) string {
	return fmt.Sprintf("%s%s", userSetPrefix, userID)
}
