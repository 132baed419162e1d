package events

import "go.uber.org/zap"

// Bus is a bounded in-process queue decoupling assignment commits from the
// calendar sync listener. Publishing never blocks the assignment path: when
// the queue is full the envelope is dropped and logged.
type Bus struct {
	log *zap.SugaredLogger
	ch  chan TaskEnvelope
}

// NewBus creates a bus with the given capacity.
func NewBus(log *zap.SugaredLogger, capacity int) *Bus {
	if capacity <= 0 {
		capacity = 64
	}
	return &Bus{
		log: log.Named("events.bus"),
		ch:  make(chan TaskEnvelope, capacity),
	}
}

// Publish enqueues an envelope for the listener.
func (b *Bus) Publish(env TaskEnvelope) {
	select {
	case b.ch <- env:
	default:
		b.log.Warnw("bus full, dropping envelope", "event", env.Event, "task_id", env.Task.ID)
	}
}

// C exposes the consume channel.
func (b *Bus) C() <-chan TaskEnvelope {
	return b.ch
}

// Close stops the bus. Publish must not be called afterwards.
func (b *Bus) Close() {
	close(b.ch)
}
