package ports

import (
	"context"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	UpdateScan(ctx context.Context, id string, occupancyRate int, scannedAt time.Time) error
}
