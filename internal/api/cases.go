package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tangtang/pkg/types"
)

// ListCases returns one page of cases matching the filter. Anonymous.
func (c *Client) ListCases(ctx context.Context, filter types.CaseFilter) (*types.CaseList, error) {
	query, err := c.encodeQuery(filter)
	if err != nil {
		return nil, err
	}

	list := new(types.CaseList)
	if err := c.do(ctx, http.MethodGet, "/cases", query, nil, nil, list); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	return list, nil
}

// GetCase returns a single case including its recent supports. Anonymous.
func (c *Client) GetCase(ctx context.Context, id string) (*types.Case, error) {
	out := new(types.Case)
	if err := c.do(ctx, http.MethodGet, "/cases/"+url.PathEscape(id), nil, nil, nil, out); err != nil {
		return nil, fmt.Errorf("get case %s: %w", id, err)
	}

	return out, nil
}

func (c *Client) CreateCase(ctx context.Context, draft types.CaseDraft) (*types.Case, error) {
	out := new(types.Case)
	if err := c.do(ctx, http.MethodPost, "/cases", nil, nil, draft, out); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}

	return out, nil
}

func (c *Client) UpdateCase(ctx context.Context, id string, draft types.CaseDraft) (*types.Case, error) {
	out := new(types.Case)
	if err := c.do(ctx, http.MethodPut, "/cases/"+url.PathEscape(id), nil, nil, draft, out); err != nil {
		return nil, fmt.Errorf("update case %s: %w", id, err)
	}

	return out, nil
}

func (c *Client) DeleteCase(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/cases/"+url.PathEscape(id), nil, nil, nil, nil); err != nil {
		return fmt.Errorf("delete case %s: %w", id, err)
	}

	return nil
}
