package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/events"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type syncCall struct {
	taskID string
	userID string
}

type calendarMock struct {
	mu    sync.Mutex
	calls []syncCall
	err   error
}

func (m *calendarMock) SyncTask(_ context.Context, taskID, userID string) (*entities.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, syncCall{taskID: taskID, userID: userID})
	if m.err != nil {
		return nil, m.err
	}
	return &entities.CalendarEvent{TaskID: taskID, UserID: userID}, nil
}

func (m *calendarMock) CalendarEvent(_ context.Context, _, _ string) (*entities.CalendarEvent, error) {
	return nil, entities.ErrEventNotFound
}

func (m *calendarMock) ListCalendarEvents(_ context.Context, _ string) ([]entities.CalendarEvent, error) {
	return nil, nil
}

func (m *calendarMock) DeleteCalendarEvent(_ context.Context, _, _ string) error {
	return nil
}

func (m *calendarMock) Calls() []syncCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]syncCall(nil), m.calls...)
}

func waitForCalls(t *testing.T, m *calendarMock, n int) []syncCall {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		calls := m.Calls()
		if len(calls) >= n {
			return calls
		}
		select {
		case <-deadline:
			t.Fatalf("expected %d sync calls, got %d", n, len(calls))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCalendarSyncHandlesAssignedTask(t *testing.T) {
	log := zap.NewNop().Sugar()
	bus := events.NewBus(log, 4)
	uc := &calendarMock{}
	w := NewCalendarSync(log, uc, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assignee := "u1"
	bus.Publish(events.TaskEnvelope{
		Event: events.TaskAssigned,
		Task:  entities.Task{ID: "t1", AssignedToID: &assignee},
	})

	calls := waitForCalls(t, uc, 1)
	require.Equal(t, syncCall{taskID: "t1", userID: "u1"}, calls[0])
}

func TestCalendarSyncSkipsIrrelevantEnvelopes(t *testing.T) {
	log := zap.NewNop().Sugar()
	bus := events.NewBus(log, 4)
	uc := &calendarMock{}
	w := NewCalendarSync(log, uc, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assignee := "u1"
	bus.Publish(events.TaskEnvelope{Event: events.TaskCreated, Task: entities.Task{ID: "t1", AssignedToID: &assignee}})
	bus.Publish(events.TaskEnvelope{Event: events.TaskAssigned, Task: entities.Task{ID: "t2"}})
	bus.Publish(events.TaskEnvelope{Event: events.TaskAssigned, Task: entities.Task{ID: "t3", AssignedToID: &assignee}})

	calls := waitForCalls(t, uc, 1)
	require.Equal(t, "t3", calls[0].taskID)
	require.Len(t, calls, 1)
}

func TestCalendarSyncFailureDoesNotStopListener(t *testing.T) {
	log := zap.NewNop().Sugar()
	bus := events.NewBus(log, 4)
	uc := &calendarMock{err: errors.New("provider down")}
	w := NewCalendarSync(log, uc, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assignee := "u1"
	bus.Publish(events.TaskEnvelope{Event: events.TaskAssigned, Task: entities.Task{ID: "t1", AssignedToID: &assignee}})
	bus.Publish(events.TaskEnvelope{Event: events.TaskAssigned, Task: entities.Task{ID: "t2", AssignedToID: &assignee}})

	calls := waitForCalls(t, uc, 2)
	require.Equal(t, "t1", calls[0].taskID)
	require.Equal(t, "t2", calls[1].taskID)
}

func TestCalendarSyncStopsOnBusClose(t *testing.T) {
	log := zap.NewNop().Sugar()
	bus := events.NewBus(log, 4)
	w := NewCalendarSync(log, &calendarMock{}, bus)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(context.Background())
	}()

	bus.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop after bus close")
	}
}
