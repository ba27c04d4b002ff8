package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
	"xcauditing-console/internal/console/middleware"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func errorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

func successWithMetaResponse(message string, data interface{}, meta interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// sessions gives every handler access to the session store so a backend 401
// can clear the stored token before redirecting to login.
type sessions struct {
	store      *auth.Store
	cookieName string
}

func (s *sessions) clearSession(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)
	if sessionID == "" {
		sessionID, _ = c.Cookie(s.cookieName)
	}
	if sessionID != "" {
		if err := s.store.Clear(c.Request.Context(), sessionID); err != nil {
			log.Printf("clear session failed: %v", err)
		}
	}
	c.SetCookie(s.cookieName, "", -1, "/", "", false, true)
}

// fail maps a backend error onto the response envelope. Session expiry is the
// only globally handled case: the token is cleared and the client is told
// where to go; everything else passes through for the screen to display.
func (s *sessions) fail(c *gin.Context, err error) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		s.clearSession(c)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":  false,
			"message":  "session expired",
			"redirect": auth.BuildLoginRedirectPath(requestedPath(c)),
		})
	case errors.Is(err, backend.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse("Not found"))
	case errors.As(err, &apiErr):
		c.JSON(apiErr.Status, errorResponse(apiErr.Message))
	default:
		log.Printf("backend call failed: %v", err)
		c.JSON(http.StatusBadGateway, errorResponse("Auditing backend error"))
	}
}

func requestedPath(c *gin.Context) string {
	path := c.Request.URL.Path
	if raw := c.Request.URL.RawQuery; raw != "" {
		path += "?" + raw
	}
	return path
}
