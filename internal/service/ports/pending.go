package ports

import (
	"context"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
)

type PendingPromoRepo interface {
	Create(ctx context.Context, p *domain.PendingAIPromotion) error
	GetByID(ctx context.Context, id string) (*domain.PendingAIPromotion, error)
	ListPending(ctx context.Context) ([]*domain.PendingAIPromotion, error)
	HasLiveForListing(ctx context.Context, listingID string) (bool, error)
	// Resolve moves a row out of pending; it reports
	// domain.ErrPendingResolved when the row is already terminal, which
	// is what makes approval idempotent.
	Resolve(ctx context.Context, id string, status domain.PendingStatus) error
	ExpireDue(ctx context.Context, now time.Time) ([]*domain.PendingAIPromotion, error)
}
