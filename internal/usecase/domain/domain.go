// Package domain contains application usecases orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"github.com/hariprasadd0/codora/internal/calendar"
	"github.com/hariprasadd0/codora/internal/events"
	"github.com/hariprasadd0/codora/internal/repository"

	"go.uber.org/zap"
)

// Publisher enqueues envelopes for asynchronous listeners.
type Publisher interface {
	Publish(env events.TaskEnvelope)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx         context.Context
	log         *zap.SugaredLogger
	repo        repository.Repository
	broadcaster events.Broadcaster
	bus         Publisher
	provider    calendar.Provider
	timeout     time.Duration
	syncTimeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	broadcaster events.Broadcaster,
	bus Publisher,
	provider calendar.Provider,
	timeout time.Duration,
	syncTimeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:         ctx,
		log:         log,
		repo:        repo,
		broadcaster: broadcaster,
		bus:         bus,
		provider:    provider,
		timeout:     timeout,
		syncTimeout: syncTimeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
