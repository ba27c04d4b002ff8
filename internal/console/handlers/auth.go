package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
	"xcauditing-console/internal/console/middleware"
)

type AuthHandler struct {
	sessions
	client     *backend.Client
	sessionTTL time.Duration
}

func NewAuthHandler(client *backend.Client, store *auth.Store, cookieName string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions{store: store, cookieName: cookieName},
		client:     client,
		sessionTTL: sessionTTL,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Redirect string `json:"redirect"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.client.Login(ctx, backend.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		// Invalid credentials surface inline on the form, never as a
		// login redirect.
		if errors.Is(err, backend.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, errorResponse("Invalid username or password"))
			return
		}
		h.fail(c, err)
		return
	}

	token := &auth.Token{
		Token:     resp.Token,
		TokenType: resp.TokenType,
		ExpiresIn: resp.ExpiresIn,
		Username:  req.Username,
	}
	if resp.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).UnixMilli()
	}

	sessionID := uuid.New().String()
	if err := h.store.Set(ctx, sessionID, token); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to open session"))
		return
	}
	c.SetCookie(h.cookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)

	redirect := auth.NormalizeRedirectPath(req.Redirect)
	if redirect == "" {
		redirect = auth.DefaultLandingPath
	}
	c.JSON(http.StatusOK, successResponse("Login successful", gin.H{
		"username":     token.AuthedUsername(),
		"account_type": token.AuthedAccountType(),
		"redirect":     redirect,
	}))
}

// Logout clears the token unconditionally; the client lands on login with no
// redirect target.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSession(c)
	c.JSON(http.StatusOK, successResponse("Logged out", gin.H{
		"redirect": auth.LoginPath,
	}))
}

// Session reports the authenticated identity for the console header bar.
func (h *AuthHandler) Session(c *gin.Context) {
	accountType := c.GetInt(middleware.CtxAccountType)
	c.JSON(http.StatusOK, successResponse("Session active", gin.H{
		"username":     c.GetString(middleware.CtxUsername),
		"account_type": accountType,
		"is_admin":     accountType == auth.AccountTypeAdmin,
	}))
}
