// Package events provides the scope-keyed notification fan-out and the
// in-process bus feeding asynchronous listeners.
package events

import "github.com/hariprasadd0/codora/internal/entities"

// Event names delivered to subscribers.
const (
	// TaskCreated fires after a task is persisted.
	TaskCreated = "TaskCreated"
	// TaskAssigned fires after an assignment commits.
	TaskAssigned = "TaskAssigned"
)

// ProjectScope builds the fan-out key for a project.
func ProjectScope(projectID string) string {
	return "project-" + projectID
}

// Message is a single envelope delivered to a subscriber.
type Message struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Broadcaster fans an event out to subscribers of a scope. Delivery is
// at-most-once per currently connected subscriber; with no subscribers
// the call is a no-op.
type Broadcaster interface {
	Broadcast(scope, event string, payload any)
}

// TaskEnvelope is the bus record consumed by the calendar sync listener.
type TaskEnvelope struct {
	Event string
	Task  entities.Task
}
