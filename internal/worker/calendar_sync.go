// Package worker runs asynchronous listeners consuming internal bus events.
package worker

import (
	"context"

	"github.com/hariprasadd0/codora/internal/events"
	"github.com/hariprasadd0/codora/internal/usecase"

	"go.uber.org/zap"
)

// CalendarSync consumes TaskAssigned envelopes and mirrors deadlines into the
// assignee's external calendar. Sync failures are logged and dropped: they
// never retry, never touch the task, and cannot be mistaken for assignment
// failures.
type CalendarSync struct {
	log *zap.SugaredLogger
	uc  usecase.CalendarUsecaseInterface
	bus *events.Bus
}

// NewCalendarSync constructs the listener.
func NewCalendarSync(log *zap.SugaredLogger, uc usecase.CalendarUsecaseInterface, bus *events.Bus) *CalendarSync {
	return &CalendarSync{
		log: log.Named("worker.calendar_sync"),
		uc:  uc,
		bus: bus,
	}
}

// Run consumes the bus until the context is cancelled or the bus closes.
func (w *CalendarSync) Run(ctx context.Context) {
	w.log.Infow("calendar sync listener started")
	for {
		select {
		case <-ctx.Done():
			w.log.Infow("calendar sync listener stopped")
			return
		case env, ok := <-w.bus.C():
			if !ok {
				w.log.Infow("bus closed, calendar sync listener stopped")
				return
			}
			w.handle(ctx, env)
		}
	}
}

func (w *CalendarSync) handle(ctx context.Context, env events.TaskEnvelope) {
	if env.Event != events.TaskAssigned {
		return
	}
	if env.Task.AssignedToID == nil {
		return
	}

	if _, err := w.uc.SyncTask(ctx, env.Task.ID, *env.Task.AssignedToID); err != nil {
		w.log.Warnw("calendar sync failed",
			"task_id", env.Task.ID,
			"user_id", *env.Task.AssignedToID,
			"error", err,
		)
		return
	}
}
