package ports

import (
	"context"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
)

type PromotionRepo interface {
	Create(ctx context.Context, p *domain.Promotion) error
	GetByID(ctx context.Context, id string) (*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	// UpdateStatus flips the status only when the row is currently in
	// fromStatus; it reports domain.ErrInvalidTransition otherwise so
	// callers never race each other into an illegal transition.
	UpdateStatus(ctx context.Context, id string, from, to domain.PromotionStatus, at time.Time) error
	UpdateDates(ctx context.Context, id string, start, end time.Time) error
	Delete(ctx context.Context, id string) error
	// ActivateDue and ExpireDue are the bulk due-date sweeps run by the
	// scheduler; both return the rows they transitioned.
	ActivateDue(ctx context.Context, now time.Time) ([]*domain.Promotion, error)
	ExpireDue(ctx context.Context, now time.Time) ([]*domain.Promotion, error)
}
