package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tangtang/pkg/types"
)

// ListMessages returns the chat messages on a case page. Anonymous.
func (c *Client) ListMessages(ctx context.Context, caseID string) ([]types.Message, error) {
	var out []types.Message
	if err := c.do(ctx, http.MethodGet, "/cases/"+url.PathEscape(caseID)+"/messages", nil, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list messages for case %s: %w", caseID, err)
	}

	return out, nil
}

// PostMessage sends a chat message and returns the server's canonical copy,
// which the caller appends locally instead of waiting for the next poll.
func (c *Client) PostMessage(ctx context.Context, caseID, content string) (*types.Message, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	out := new(types.Message)
	if err := c.do(ctx, http.MethodPost, "/cases/"+url.PathEscape(caseID)+"/messages", nil, nil, body, out); err != nil {
		return nil, fmt.Errorf("post message to case %s: %w", caseID, err)
	}

	return out, nil
}
