package api

import (
	"context"
	"net/url"
)

// CompletionRequest posts one user turn to the assistant. SessionID empty
// means the backend starts a new session and returns its id.
type CompletionRequest struct {
	SessionID string `json:"session_id,omitempty"`
	MessageID string `json:"message_id"` // client-generated, for dedup
	Content   string `json:"content"`
}

// CompletionReply is the assistant's structured answer, including any
// backend tools it called while answering.
type CompletionReply struct {
	SessionID string      `json:"session_id"`
	Message   ChatMessage `json:"message"`
}

// Complete sends a chat turn and returns the assistant reply. No timeout:
// assistant turns with tool calls legitimately take a while.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (CompletionReply, error) {
	var out CompletionReply
	if err := c.post(ctx, "/api/v1/chat/completions", req, &out); err != nil {
		return CompletionReply{}, err
	}
	return out, nil
}

// ListSessions fetches stored conversations, newest first.
func (c *Client) ListSessions(ctx context.Context) ([]ChatSession, error) {
	var out []ChatSession
	if err := c.get(ctx, "/api/v1/chat/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSession fetches one conversation with its full transcript.
func (c *Client) GetSession(ctx context.Context, id string) (ChatSession, error) {
	var out ChatSession
	if err := c.get(ctx, "/api/v1/chat/sessions/"+url.PathEscape(id), nil, &out); err != nil {
		return ChatSession{}, err
	}
	return out, nil
}

// DeleteSession removes a stored conversation.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/chat/sessions/"+url.PathEscape(id))
}
