package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
)

type ChatsHandler struct {
	sessions
	client *backend.Client
}

func NewChatsHandler(client *backend.Client, store *auth.Store, cookieName string) *ChatsHandler {
	return &ChatsHandler{
		sessions: sessions{store: store, cookieName: cookieName},
		client:   client,
	}
}

type chatStats struct {
	TotalMessages    int `json:"total_messages"`
	StaffMessages    int `json:"staff_messages"`
	CustomerMessages int `json:"customer_messages"`
}

// Get serves a session transcript with its aggregate stats. Messages arrive
// ordered from the backend and are relayed as-is.
func (h *ChatsHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	session, err := h.client.GetChatSession(ctx, c.Param("sessionId"))
	if err != nil {
		h.fail(c, err)
		return
	}

	stats := chatStats{TotalMessages: len(session.Messages)}
	for _, message := range session.Messages {
		switch message.SenderType {
		case "staff":
			stats.StaffMessages++
		case "customer":
			stats.CustomerMessages++
		}
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Chat session retrieved successfully", session, stats))
}
