package chat

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tangtang/pkg/types"
)

// Service hands out rooms while guaranteeing that switching cases fully
// closes the previous room before the next one starts polling. Two pollers
// never run concurrently for one Service.
type Service struct {
	api      API
	viewer   *types.User
	logger   *logrus.Logger
	interval time.Duration

	opts     []Option

	mu      sync.Mutex
	current *Room
}

func NewService(client API, viewer *types.User, logger *logrus.Logger, interval time.Duration, opts ...Option) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Service{
		api:      client,
		viewer:   viewer,
		logger:   logger,
		interval: interval,
		opts:     opts,
	}
}

// Open joins the chat for a case. Rejoining the same case returns the live
// room; a different case closes the old room first.
func (s *Service) Open(ctx context.Context, caseID string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		if s.current.CaseID() == caseID {
			return s.current, nil
		}
		s.current.Close()
		s.current = nil
	}

	opts := append([]Option{WithInterval(s.interval)}, s.opts...)
	room, err := Open(ctx, s.api, caseID, s.viewer, s.logger, opts...)
	if err != nil {
		return nil, err
	}

	s.current = room
	return room, nil
}

// Close tears down the active room, if any.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Close()
		s.current = nil
	}
}
