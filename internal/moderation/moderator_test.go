package moderation

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tangtang/internal/api"
	"tangtang/pkg/types"
)

type fakeModAPI struct {
	uploadErr error
	attachErr error
	statusErr error

	uploaded      int
	attached      []types.ProofImage
	statusCalls   int
	lastStatus    types.SupportStatus
	lastNote      string
	lastSupportID string
}

func (f *fakeModAPI) Upload(ctx context.Context, files []api.File) ([]string, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploaded = len(files)

	urls := make([]string, len(files))
	for i, file := range files {
		urls[i] = "https://cdn.example.vn/" + file.Name
	}
	return urls, nil
}

func (f *fakeModAPI) AttachProofs(ctx context.Context, id string, images []types.ProofImage) (*types.Support, error) {
	if f.attachErr != nil {
		return nil, f.attachErr
	}
	f.attached = images
	return &types.Support{ID: id, ProofImages: images}, nil
}

func (f *fakeModAPI) UpdateSupportStatus(ctx context.Context, id string, status types.SupportStatus, note string) (*types.Support, error) {
	f.statusCalls++
	f.lastSupportID = id
	f.lastStatus = status
	f.lastNote = note

	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &types.Support{ID: id, Status: status}, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func proofFiles() []api.File {
	return []api.File{
		{Name: "receipt.jpg", Content: strings.NewReader("jpg")},
		{Name: "handover.jpg", Content: strings.NewReader("jpg")},
	}
}

func TestApprove_WithProofs(t *testing.T) {
	fake := &fakeModAPI{}
	mod := New(fake, testLogger())

	sup, err := mod.Approve(context.Background(), "s1", "delivered in person", proofFiles())
	require.NoError(t, err)

	assert.Equal(t, types.SupportStatusCompleted, sup.Status)
	assert.Equal(t, 2, fake.uploaded)
	require.Len(t, fake.attached, 2)
	assert.Equal(t, "https://cdn.example.vn/receipt.jpg", fake.attached[0].URL)
	assert.Equal(t, "s1", fake.lastSupportID)
	assert.Equal(t, "delivered in person", fake.lastNote)
}

func TestApprove_WithoutProofsSkipsUpload(t *testing.T) {
	fake := &fakeModAPI{}
	mod := New(fake, testLogger())

	_, err := mod.Approve(context.Background(), "s1", "", nil)
	require.NoError(t, err)

	assert.Zero(t, fake.uploaded)
	assert.Nil(t, fake.attached)
	assert.Equal(t, 1, fake.statusCalls)
}

func TestApprove_UploadFailureBlocksStatusUpdate(t *testing.T) {
	fake := &fakeModAPI{uploadErr: errors.New("cdn unreachable")}
	mod := New(fake, testLogger())

	_, err := mod.Approve(context.Background(), "s1", "", proofFiles())
	require.Error(t, err)

	var uploadErr *ProofUploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Zero(t, fake.statusCalls, "a support must never be approved without its proofs")
}

func TestApprove_AttachFailureBlocksStatusUpdate(t *testing.T) {
	fake := &fakeModAPI{attachErr: errors.New("boom")}
	mod := New(fake, testLogger())

	_, err := mod.Approve(context.Background(), "s1", "", proofFiles())
	require.Error(t, err)

	var uploadErr *ProofUploadError
	assert.False(t, errors.As(err, &uploadErr), "attach failure is distinct from upload failure")
	assert.Zero(t, fake.statusCalls)
}

func TestReject(t *testing.T) {
	fake := &fakeModAPI{}
	mod := New(fake, testLogger())

	sup, err := mod.Reject(context.Background(), "s2", "no matching transfer")
	require.NoError(t, err)

	assert.Equal(t, types.SupportStatusFailed, sup.Status)
	assert.Equal(t, "no matching transfer", fake.lastNote)
}

func TestReject_RequiresNote(t *testing.T) {
	fake := &fakeModAPI{}
	mod := New(fake, testLogger())

	_, err := mod.Reject(context.Background(), "s2", "   ")
	assert.ErrorIs(t, err, ErrNoteRequired)
	assert.Zero(t, fake.statusCalls)
}
