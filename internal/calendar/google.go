package calendar

import (
	"context"
	"fmt"

	"github.com/hariprasadd0/codora/config"
	"github.com/hariprasadd0/codora/internal/entities"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Google implements Provider against the Google Calendar API using the
// user's delegated OAuth tokens.
type Google struct {
	log   *zap.SugaredLogger
	oauth *oauth2.Config
}

// NewGoogle builds the provider from the configured OAuth client.
func NewGoogle(log *zap.SugaredLogger, cfg config.GoogleConfig) *Google {
	return &Google{
		log: log.Named("calendar.google"),
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcal.CalendarEventsScope},
		},
	}
}

// InsertEvent creates a calendar event and returns the provider id.
// Provider errors are opaque and wrapped into ErrExternalService.
func (g *Google) InsertEvent(ctx context.Context, creds entities.CalendarCredentials, event Event) (string, error) {
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(g.oauth.TokenSource(ctx, token)))
	if err != nil {
		g.log.Errorw("failed to build calendar client", "error", err)
		return "", fmt.Errorf("%w: %v", entities.ErrExternalService, err)
	}

	calendarID := creds.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	body := &gcal.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.Start.Format("2006-01-02T15:04:05Z07:00"),
			TimeZone: event.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: event.End.Format("2006-01-02T15:04:05Z07:00"),
			TimeZone: event.Timezone,
		},
	}

	created, err := svc.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		g.log.Errorw("failed to insert calendar event", "error", err)
		return "", fmt.Errorf("%w: %v", entities.ErrExternalService, err)
	}

	g.log.Infow("calendar event inserted", "provider_event_id", created.Id)
	return created.Id, nil
}
