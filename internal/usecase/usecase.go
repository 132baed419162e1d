package usecase

import (
	"context"
	"time"

	"github.com/hariprasadd0/codora/internal/calendar"
	"github.com/hariprasadd0/codora/internal/events"
	"github.com/hariprasadd0/codora/internal/repository"
	"github.com/hariprasadd0/codora/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TeamUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	CalendarUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	broadcaster events.Broadcaster,
	bus domain.Publisher,
	provider calendar.Provider,
	timeout time.Duration,
	syncTimeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, broadcaster, bus, provider, timeout, syncTimeout)
}
