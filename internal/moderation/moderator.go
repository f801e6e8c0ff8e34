// Package moderation drives the admin-side support transitions. The guards
// here are UX only; the server owns the actual state machine
// (pending → completed | failed, both terminal).
package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"tangtang/internal/api"
	"tangtang/pkg/types"
)

var ErrNoteRequired = errors.New("moderation: a note is required when rejecting a support")

// ProofUploadError marks a failure in the proof-upload step, distinct from a
// status-update failure: when it occurs, no status call has been made.
type ProofUploadError struct {
	err error
}

func (e *ProofUploadError) Error() string {
	return fmt.Sprintf("moderation: proof upload failed: %v", e.err)
}

func (e *ProofUploadError) Unwrap() error {
	return e.err
}

// API is the slice of the REST client the moderator needs.
type API interface {
	Upload(ctx context.Context, files []api.File) ([]string, error)
	AttachProofs(ctx context.Context, id string, images []types.ProofImage) (*types.Support, error)
	UpdateSupportStatus(ctx context.Context, id string, status types.SupportStatus, note string) (*types.Support, error)
}

type Moderator struct {
	api    API
	logger *logrus.Logger
}

func New(client API, logger *logrus.Logger) *Moderator {
	return &Moderator{api: client, logger: logger}
}

// Approve marks a support completed, optionally with fulfilment evidence.
// Proof files are uploaded and attached first; if either step fails the
// status call is never issued, so a support can not end up approved without
// its proofs.
func (m *Moderator) Approve(ctx context.Context, supportID, note string, proofs []api.File) (*types.Support, error) {
	if len(proofs) > 0 {
		urls, err := m.api.Upload(ctx, proofs)
		if err != nil {
			return nil, &ProofUploadError{err: err}
		}

		images := make([]types.ProofImage, 0, len(urls))
		for _, u := range urls {
			images = append(images, types.ProofImage{URL: u})
		}

		if _, err := m.api.AttachProofs(ctx, supportID, images); err != nil {
			return nil, fmt.Errorf("attach proofs before approval: %w", err)
		}

		m.logger.WithFields(logrus.Fields{
			"support_id": supportID,
			"proofs":     len(images),
		}).Info("proof images attached")
	}

	sup, err := m.api.UpdateSupportStatus(ctx, supportID, types.SupportStatusCompleted, note)
	if err != nil {
		return nil, fmt.Errorf("approve support %s: %w", supportID, err)
	}

	m.logger.WithField("support_id", supportID).Info("support approved")
	return sup, nil
}

// Reject marks a support failed. The note is mandatory so the supporter
// always learns why.
func (m *Moderator) Reject(ctx context.Context, supportID, note string) (*types.Support, error) {
	if strings.TrimSpace(note) == "" {
		return nil, ErrNoteRequired
	}

	sup, err := m.api.UpdateSupportStatus(ctx, supportID, types.SupportStatusFailed, note)
	if err != nil {
		return nil, fmt.Errorf("reject support %s: %w", supportID, err)
	}

	m.logger.WithField("support_id", supportID).Info("support rejected")
	return sup, nil
}
