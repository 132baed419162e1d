// Package entities contains core business entities.
package entities

import "time"

// CalendarEvent links a user and a task to an external calendar entry.
type CalendarEvent struct {
	ID              string
	UserID          string
	TaskID          string
	ProviderEventID string
	Title           string
	Start           time.Time
	End             time.Time
	CreatedAt       *time.Time
}
