package chat

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tangtang/internal/api"
	"tangtang/internal/validate"
	"tangtang/pkg/types"
)

type fakeChatAPI struct {
	mu        sync.Mutex
	msgs      []types.Message
	listErr   error
	listCalls int
	postCalls int
}

func (f *fakeChatAPI) ListMessages(ctx context.Context, caseID string) ([]types.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]types.Message(nil), f.msgs...), nil
}

func (f *fakeChatAPI) PostMessage(ctx context.Context, caseID, content string) (*types.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.postCalls++
	msg := types.Message{
		ID:        fmt.Sprintf("m%d", f.postCalls),
		CaseID:    caseID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	f.msgs = append(f.msgs, msg)
	return &msg, nil
}

func (f *fakeChatAPI) setMessages(msgs []types.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = msgs
}

func (f *fakeChatAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func viewer() *types.User {
	return &types.User{ID: "u1", Name: "Lan"}
}

func TestOpen_RequiresCaseID(t *testing.T) {
	_, err := Open(context.Background(), &fakeChatAPI{}, "", viewer(), testLogger())
	assert.ErrorIs(t, err, ErrNoCase)
}

func TestRoom_DeliversInitialMessages(t *testing.T) {
	fake := &fakeChatAPI{msgs: []types.Message{
		{ID: "m1", Content: "chào mọi người"},
	}}

	room, err := Open(context.Background(), fake, "c1", viewer(), testLogger(), WithInterval(10*time.Millisecond))
	require.NoError(t, err)
	defer room.Close()

	select {
	case msgs := <-room.Updates():
		require.Len(t, msgs, 1)
		assert.Equal(t, "chào mọi người", msgs[0].Content)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestRoom_DeduplicatesIdenticalPolls(t *testing.T) {
	fake := &fakeChatAPI{msgs: []types.Message{{ID: "m1", Content: "hi"}}}

	room, err := Open(context.Background(), fake, "c1", viewer(), testLogger(), WithInterval(5*time.Millisecond))
	require.NoError(t, err)
	defer room.Close()

	// First snapshot arrives once.
	<-room.Updates()

	// Let several identical polls run; none may produce another snapshot.
	deadline := time.After(60 * time.Millisecond)
	for {
		select {
		case msgs, ok := <-room.Updates():
			if ok {
				t.Fatalf("unchanged list must not re-deliver, got %v", msgs)
			}
		case <-deadline:
			assert.GreaterOrEqual(t, fake.calls(), 3, "poller should have kept polling")
			return
		}
	}
}

func TestRoom_PicksUpNewMessages(t *testing.T) {
	fake := &fakeChatAPI{msgs: []types.Message{{ID: "m1", Content: "hi"}}}

	room, err := Open(context.Background(), fake, "c1", viewer(), testLogger(), WithInterval(5*time.Millisecond))
	require.NoError(t, err)
	defer room.Close()

	<-room.Updates()

	fake.setMessages([]types.Message{
		{ID: "m1", Content: "hi"},
		{ID: "m2", Content: "cần giúp gì không?"},
	})

	select {
	case msgs := <-room.Updates():
		require.Len(t, msgs, 2)
		assert.Equal(t, "m2", msgs[1].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("new message never delivered")
	}
}

func TestRoom_SendAppendsImmediately(t *testing.T) {
	fake := &fakeChatAPI{}

	// Hour-long interval: only the immediate first tick runs, so the
	// assertion below cannot be satisfied by a poll.
	room, err := Open(context.Background(), fake, "c1", viewer(), testLogger(), WithInterval(time.Hour))
	require.NoError(t, err)
	defer room.Close()

	msg, err := room.Send(context.Background(), "  mình vừa chuyển 200k  ")
	require.NoError(t, err)

	assert.Equal(t, "mình vừa chuyển 200k", msg.Content, "content is trimmed before posting")

	msgs := room.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.ID, msgs[0].ID, "sender sees their message without waiting for a poll")
}

func TestRoom_SendValidation(t *testing.T) {
	fake := &fakeChatAPI{}

	room, err := Open(context.Background(), fake, "c1", viewer(), testLogger(), WithInterval(time.Hour))
	require.NoError(t, err)
	defer room.Close()

	_, err = room.Send(context.Background(), "   ")
	assert.Equal(t, validate.EmptyMessage, validate.ReasonOf(err))
	assert.Zero(t, fake.postCalls, "validation failures never reach the network")
}

func TestRoom_SendRequiresViewer(t *testing.T) {
	room, err := Open(context.Background(), &fakeChatAPI{}, "c1", nil, testLogger(), WithInterval(time.Hour))
	require.NoError(t, err)
	defer room.Close()

	_, err = room.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrSignInRequired)
}

func TestRoom_CloseStopsPolling(t *testing.T) {
	fake := &fakeChatAPI{}

	room, err := Open(context.Background(), fake, "c1", viewer(), testLogger(), WithInterval(5*time.Millisecond))
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for fake.calls() < 2 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	require.GreaterOrEqual(t, fake.calls(), 2)

	room.Close()

	after := fake.calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, fake.calls(), "no fetch may happen after Close")
}

func TestRoom_NetworkFailuresParkAfterCap(t *testing.T) {
	parked := make(chan struct{}, 1)

	fake := &fakeChatAPI{listErr: &api.Error{Kind: api.KindNetwork}}

	room, err := Open(context.Background(), fake, "c1", viewer(), testLogger(),
		WithInterval(5*time.Millisecond),
		WithOnParked(func() { parked <- struct{}{} }),
	)
	require.NoError(t, err)
	defer room.Close()

	select {
	case <-parked:
	case <-time.After(2 * time.Second):
		t.Fatal("room never parked")
	}

	assert.True(t, room.Parked())

	state := room.State()
	assert.Equal(t, types.ResourceError, state.Status)
	assert.True(t, api.IsNetwork(state.Err))

	// Manual retry against a recovered backend.
	fake.mu.Lock()
	fake.listErr = nil
	fake.msgs = []types.Message{{ID: "m1", Content: "back"}}
	fake.mu.Unlock()

	room.Resume()

	select {
	case msgs := <-room.Updates():
		require.Len(t, msgs, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("resume never recovered")
	}
}

func TestService_SwitchingCasesClosesPreviousRoom(t *testing.T) {
	fake := &fakeChatAPI{}

	svc := NewService(fake, viewer(), testLogger(), 5*time.Millisecond)
	defer svc.Close()

	first, err := svc.Open(context.Background(), "c1")
	require.NoError(t, err)

	again, err := svc.Open(context.Background(), "c1")
	require.NoError(t, err)
	assert.Same(t, first, again, "same case reuses the live room")

	second, err := svc.Open(context.Background(), "c2")
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	// The first room is closed: its update channel is gone and its poller
	// no longer runs.
	_, open := <-first.Updates()
	assert.False(t, open)
	assert.Equal(t, "c2", second.CaseID())
}
