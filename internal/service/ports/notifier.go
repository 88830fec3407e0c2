package ports

import (
	"context"

	"github.com/mkravets/PromoDesk/internal/domain"
)

type PromoNotifier interface {
	NotifyPendingGenerated(ctx context.Context, p *domain.PendingAIPromotion)
	NotifyPromotionApproved(ctx context.Context, promo *domain.Promotion)
	NotifyPendingExpired(ctx context.Context, p *domain.PendingAIPromotion)
}
