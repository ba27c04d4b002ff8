package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
)

// Context keys populated by the guard for downstream handlers.
const (
	CtxSessionID   = "session_id"
	CtxUsername    = "auth_username"
	CtxAccountType = "auth_account_type"
)

// AuthGuard protects every authenticated route: it resolves the session
// cookie, checks token validity and stamps the backend Authorization header
// onto the request context. On failure the response carries the login
// redirect preserving the attempted destination.
func AuthGuard(store *auth.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, _ := c.Cookie(cookieName)
		token := store.Get(c.Request.Context(), sessionID)
		if !token.Valid(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":  false,
				"message":  "unauthorized",
				"redirect": auth.BuildLoginRedirectPath(requestedPath(c)),
			})
			return
		}

		c.Set(CtxSessionID, sessionID)
		c.Set(CtxUsername, token.AuthedUsername())
		c.Set(CtxAccountType, token.AuthedAccountType())

		ctx := backend.WithAuthorization(c.Request.Context(), token.AuthorizationHeader())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestedPath(c *gin.Context) string {
	path := c.Request.URL.Path
	if raw := c.Request.URL.RawQuery; raw != "" {
		path += "?" + raw
	}
	return path
}
