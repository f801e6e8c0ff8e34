package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tangtang/internal/utils"
	"tangtang/pkg/types"
)

// SubmitSupport pledges money and/or items toward a case. The call is never
// retried automatically; the Idempotency-Key header lets an explicit caller
// retry go through without creating a duplicate pledge.
func (c *Client) SubmitSupport(ctx context.Context, caseID string, draft types.SupportDraft) (*types.Support, error) {
	header := http.Header{}
	header.Set("Idempotency-Key", utils.NanoID())

	out := new(types.Support)
	if err := c.do(ctx, http.MethodPost, "/cases/"+url.PathEscape(caseID)+"/support", nil, header, draft, out); err != nil {
		return nil, fmt.Errorf("submit support for case %s: %w", caseID, err)
	}

	return out, nil
}

// ListMySupports returns the signed-in user's own supports.
func (c *Client) ListMySupports(ctx context.Context) ([]types.Support, error) {
	var out []types.Support
	if err := c.do(ctx, http.MethodGet, "/supports/my-supports", nil, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list my supports: %w", err)
	}

	return out, nil
}

// ListAdminSupports returns one page of supports for moderation. Admin only.
func (c *Client) ListAdminSupports(ctx context.Context, filter types.SupportFilter) (*types.SupportList, error) {
	query, err := c.encodeQuery(filter)
	if err != nil {
		return nil, err
	}

	list := new(types.SupportList)
	if err := c.do(ctx, http.MethodGet, "/supports", query, nil, nil, list); err != nil {
		return nil, fmt.Errorf("list supports: %w", err)
	}

	return list, nil
}

// UpdateSupportStatus moves a support out of pending. Both targets are
// terminal; the server enforces the actual state machine.
func (c *Client) UpdateSupportStatus(ctx context.Context, id string, status types.SupportStatus, note string) (*types.Support, error) {
	body := struct {
		Status types.SupportStatus `json:"status"`
		Note   string              `json:"note,omitempty"`
	}{Status: status, Note: note}

	out := new(types.Support)
	if err := c.do(ctx, http.MethodPut, "/supports/"+url.PathEscape(id)+"/status", nil, nil, body, out); err != nil {
		return nil, fmt.Errorf("update support %s status: %w", id, err)
	}

	return out, nil
}

// AttachProofs records fulfilment evidence images on a support. Admin only.
func (c *Client) AttachProofs(ctx context.Context, id string, images []types.ProofImage) (*types.Support, error) {
	body := struct {
		Images []types.ProofImage `json:"images"`
	}{Images: images}

	out := new(types.Support)
	if err := c.do(ctx, http.MethodPost, "/supports/"+url.PathEscape(id)+"/proofs", nil, nil, body, out); err != nil {
		return nil, fmt.Errorf("attach proofs to support %s: %w", id, err)
	}

	return out, nil
}
