package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/accounts/domain"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/accounts/service"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/session"
)

type Handler struct {
	accounts   *service.AccountService
	sessions   *session.Store
	cookieOpts session.CookieOptions
}

func NewHandler(accounts *service.AccountService, sessions *session.Store, cookieOpts session.CookieOptions) *Handler {
	return &Handler{
		accounts:   accounts,
		sessions:   sessions,
		cookieOpts: cookieOpts,
	}
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup creates a new account
func (h *Handler) Signup(c *gin.Context) {
	var body credentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	user, err := h.accounts.Signup(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "username already taken"})
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "user": user})
}

// Login verifies credentials and issues a session cookie
func (h *Handler) Login(c *gin.Context) {
	var body credentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to log in"})
		return
	}

	sess, err := h.sessions.Create(c.Request.Context(), user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to create session"})
		return
	}

	session.SetCookie(c, h.cookieOpts, sess.ID)
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

// Logout revokes the current session; {"all": true} revokes every session
// of the user.
func (h *Handler) Logout(c *gin.Context) {
	var body struct {
		All bool `json:"all"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
			return
		}
	}

	ctx := c.Request.Context()
	if body.All {
		if err := h.sessions.DeleteAllForUser(ctx, c.GetString("user_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to log out"})
			return
		}
	} else {
		err := h.sessions.Delete(ctx, c.GetString("session_id"))
		if err != nil && !errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to log out"})
			return
		}
	}

	session.ClearCookie(c, h.cookieOpts)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Profile returns the current user's account and active session count
func (h *Handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	user, err := h.accounts.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load profile"})
		return
	}

	active, err := h.sessions.CountForUser(ctx, userID)
	if err != nil {
		active = 0
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user, "active_sessions": active})
}
