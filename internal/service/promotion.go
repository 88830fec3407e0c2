package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/mkravets/PromoDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PromotionService struct {
	promoRepo   ports.PromotionRepo
	pendingRepo ports.PendingPromoRepo
	notifier    ports.PromoNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewPromotionService(
	promoRepo ports.PromotionRepo,
	pendingRepo ports.PendingPromoRepo,
	notifier ports.PromoNotifier,
	logger logger.Logger,
) *PromotionService {
	return &PromotionService{
		promoRepo:   promoRepo,
		pendingRepo: pendingRepo,
		notifier:    notifier,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *PromotionService) Create(ctx context.Context, input domain.CreatePromotionInput) (*domain.Promotion, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.DiscountType != domain.DiscountTypePercentage && input.DiscountType != domain.DiscountTypeFixed {
		return nil, fmt.Errorf("%w: unknown discount type %q", domain.ErrValidation, input.DiscountType)
	}
	if input.DiscountValue <= 0 {
		return nil, fmt.Errorf("%w: discount_value must be positive", domain.ErrValidation)
	}
	if input.DiscountType == domain.DiscountTypePercentage && input.DiscountValue > 100 {
		return nil, fmt.Errorf("%w: percentage discount may not exceed 100", domain.ErrValidation)
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
	}

	now := s.now()
	promo := &domain.Promotion{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		Description:        input.Description,
		ServiceType:        input.ServiceType,
		DiscountType:       input.DiscountType,
		DiscountValue:      input.DiscountValue,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		Status:             domain.PromotionStatusDraft,
		ApplicableListings: input.ApplicableListings,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}

	return promo, nil
}

func (s *PromotionService) List(ctx context.Context) ([]*domain.Promotion, error) {
	return s.promoRepo.List(ctx)
}

// Schedule moves a draft onto the calendar: a future start parks it as
// scheduled, a start at or before now activates it immediately.
func (s *PromotionService) Schedule(ctx context.Context, id string, start, end time.Time) (*domain.Promotion, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
	}

	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	if promo.Status != domain.PromotionStatusDraft {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.promoRepo.UpdateDates(ctx, id, start, end); err != nil {
		return nil, fmt.Errorf("update dates: %w", err)
	}

	now := s.now()
	target := domain.PromotionStatusScheduled
	if !start.After(now) {
		target = domain.PromotionStatusActive
	}

	if err := s.promoRepo.UpdateStatus(ctx, id, domain.PromotionStatusDraft, target, now); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("promotion scheduled",
		logger.String("promotion_id", id),
		logger.String("status", string(target)),
	)

	return s.promoRepo.GetByID(ctx, id)
}

// Activate turns a draft or scheduled promotion on immediately.
// Nothing ever leaves expired.
func (s *PromotionService) Activate(ctx context.Context, id string) (*domain.Promotion, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}

	switch promo.Status {
	case domain.PromotionStatusDraft, domain.PromotionStatusScheduled:
	default:
		return nil, domain.ErrInvalidTransition
	}

	if err := s.promoRepo.UpdateStatus(ctx, id, promo.Status, domain.PromotionStatusActive, s.now()); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("promotion activated", logger.String("promotion_id", id))

	return s.promoRepo.GetByID(ctx, id)
}

// Delete removes a promotion outright; allowed from any state.
func (s *PromotionService) Delete(ctx context.Context, id string) error {
	if err := s.promoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("promotion deleted", logger.String("promotion_id", id))
	return nil
}

// RefreshStatuses is the scheduler's lifecycle sweep: scheduled
// promotions whose start has arrived go active, active ones past their
// end expire, and stale approval-queue entries are discarded.
func (s *PromotionService) RefreshStatuses(ctx context.Context) (*domain.StatusSweep, error) {
	now := s.now()

	activated, err := s.promoRepo.ActivateDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("activate due: %w", err)
	}

	expired, err := s.promoRepo.ExpireDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("expire due: %w", err)
	}

	expiredPending, err := s.pendingRepo.ExpireDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("expire due pendings: %w", err)
	}

	if len(expiredPending) > 0 {
		go s.notifyExpiredPendings(context.WithoutCancel(ctx), expiredPending)
	}

	return &domain.StatusSweep{
		Activated:      activated,
		Expired:        expired,
		ExpiredPending: expiredPending,
	}, nil
}

func (s *PromotionService) notifyExpiredPendings(ctx context.Context, pendings []*domain.PendingAIPromotion) {
	for _, p := range pendings {
		s.notifier.NotifyPendingExpired(ctx, p)
	}
}

// Approve copies the pending draft into the main collection exactly
// once. The status-guarded resolve runs first, so a second approval
// reports a conflict instead of duplicating the promotion.
func (s *PromotionService) Approve(ctx context.Context, pendingID string) (*domain.Promotion, error) {
	pending, err := s.pendingRepo.GetByID(ctx, pendingID)
	if err != nil {
		return nil, fmt.Errorf("get pending: %w", err)
	}

	now := s.now()
	if now.After(pending.ExpiresAt) {
		if err := s.pendingRepo.Resolve(ctx, pendingID, domain.PendingStatusExpired); err != nil &&
			!errors.Is(err, domain.ErrPendingResolved) {
			return nil, fmt.Errorf("expire pending: %w", err)
		}
		return nil, domain.ErrPendingResolved
	}

	if err := s.pendingRepo.Resolve(ctx, pendingID, domain.PendingStatusApproved); err != nil {
		return nil, fmt.Errorf("approve pending: %w", err)
	}

	promo := pending.Promotion
	promo.Status = domain.PromotionStatusDraft
	if promo.StartDate.After(now) {
		promo.Status = domain.PromotionStatusScheduled
	}
	promo.CreatedAt = now
	promo.UpdatedAt = now

	if err := s.promoRepo.Create(ctx, &promo); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}

	s.logger.Info("pending promotion approved",
		logger.String("pending_id", pendingID),
		logger.String("promotion_id", promo.ID),
	)

	go s.notifier.NotifyPromotionApproved(context.WithoutCancel(ctx), &promo)

	return &promo, nil
}

// Reject discards a pending promotion without touching the main
// collection.
func (s *PromotionService) Reject(ctx context.Context, pendingID string) error {
	if _, err := s.pendingRepo.GetByID(ctx, pendingID); err != nil {
		return fmt.Errorf("get pending: %w", err)
	}

	if err := s.pendingRepo.Resolve(ctx, pendingID, domain.PendingStatusRejected); err != nil {
		return fmt.Errorf("reject pending: %w", err)
	}

	s.logger.Info("pending promotion rejected", logger.String("pending_id", pendingID))
	return nil
}

func (s *PromotionService) ListPending(ctx context.Context) ([]*domain.PendingAIPromotion, error) {
	return s.pendingRepo.ListPending(ctx)
}
