// Package calendar adapts the external calendar provider.
package calendar

import (
	"context"
	"time"

	"github.com/hariprasadd0/codora/internal/entities"
)

// Event is the provider-agnostic event body.
type Event struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
}

// Provider creates events in an external calendar on behalf of a user.
// Implementations wrap provider failures into entities.ErrExternalService.
type Provider interface {
	InsertEvent(ctx context.Context, creds entities.CalendarCredentials, event Event) (string, error)
}
