package backend

import (
	"context"
	"net/http"
)

func (c *Client) GetChatSession(ctx context.Context, id string) (*ChatSession, error) {
	var session ChatSession
	if err := c.do(ctx, http.MethodGet, "/chat-sessions/"+id, nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
