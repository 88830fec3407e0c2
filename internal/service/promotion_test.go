package service

import (
	"context"
	"testing"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/mkravets/PromoDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPromotionService(t *testing.T) (*PromotionService, *mocks.MockPromotionRepo, *mocks.MockPendingPromoRepo, *mocks.MockPromoNotifier) {
	t.Helper()

	promoRepo := mocks.NewMockPromotionRepo(t)
	pendingRepo := mocks.NewMockPendingPromoRepo(t)
	notifier := mocks.NewMockPromoNotifier(t)

	svc := NewPromotionService(promoRepo, pendingRepo, notifier, newTestLogger(t))
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	return svc, promoRepo, pendingRepo, notifier
}

func TestPromotionService_Create_Success(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	promoRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	promo, err := svc.Create(context.Background(), domain.CreatePromotionInput{
		Name:          "Summer Sale",
		ServiceType:   domain.ListingTypeStay,
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 20,
		StartDate:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, promo.ID)
	assert.Equal(t, domain.PromotionStatusDraft, promo.Status)
	assert.False(t, promo.AIGenerated)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), promo.CreatedAt)
}

func TestPromotionService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newPromotionService(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input domain.CreatePromotionInput
	}{
		{"missing name", domain.CreatePromotionInput{DiscountType: domain.DiscountTypePercentage, DiscountValue: 10, StartDate: start, EndDate: end}},
		{"unknown discount type", domain.CreatePromotionInput{Name: "X", DiscountType: "bogus", DiscountValue: 10, StartDate: start, EndDate: end}},
		{"zero discount", domain.CreatePromotionInput{Name: "X", DiscountType: domain.DiscountTypeFixed, DiscountValue: 0, StartDate: start, EndDate: end}},
		{"percentage over 100", domain.CreatePromotionInput{Name: "X", DiscountType: domain.DiscountTypePercentage, DiscountValue: 120, StartDate: start, EndDate: end}},
		{"end before start", domain.CreatePromotionInput{Name: "X", DiscountType: domain.DiscountTypePercentage, DiscountValue: 10, StartDate: end, EndDate: start}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPromotionService_Schedule_FutureStart(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	draft := &domain.Promotion{ID: "p1", Status: domain.PromotionStatusDraft}
	scheduled := &domain.Promotion{ID: "p1", Status: domain.PromotionStatusScheduled, StartDate: start, EndDate: end}

	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(draft, nil).Once()
	promoRepo.EXPECT().UpdateDates(mock.Anything, "p1", start, end).Return(nil)
	promoRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.PromotionStatusDraft, domain.PromotionStatusScheduled, mock.Anything).Return(nil)
	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(scheduled, nil).Once()

	promo, err := svc.Schedule(context.Background(), "p1", start, end)

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionStatusScheduled, promo.Status)
}

func TestPromotionService_Schedule_ImmediateStartActivates(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) // before the fixed clock
	end := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	draft := &domain.Promotion{ID: "p1", Status: domain.PromotionStatusDraft}
	active := &domain.Promotion{ID: "p1", Status: domain.PromotionStatusActive, StartDate: start, EndDate: end}

	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(draft, nil).Once()
	promoRepo.EXPECT().UpdateDates(mock.Anything, "p1", start, end).Return(nil)
	promoRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.PromotionStatusDraft, domain.PromotionStatusActive, mock.Anything).Return(nil)
	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(active, nil).Once()

	promo, err := svc.Schedule(context.Background(), "p1", start, end)

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionStatusActive, promo.Status)
}

func TestPromotionService_Schedule_NotDraft(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Promotion{ID: "p1", Status: domain.PromotionStatusActive}, nil)

	_, err := svc.Schedule(context.Background(), "p1", start, end)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPromotionService_Schedule_InvalidDates(t *testing.T) {
	svc, _, _, _ := newPromotionService(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Schedule(context.Background(), "p1", start, start)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPromotionService_Activate_FromDraft(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	draft := &domain.Promotion{ID: "p1", Status: domain.PromotionStatusDraft}
	active := &domain.Promotion{ID: "p1", Status: domain.PromotionStatusActive}

	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(draft, nil).Once()
	promoRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.PromotionStatusDraft, domain.PromotionStatusActive, mock.Anything).Return(nil)
	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(active, nil).Once()

	promo, err := svc.Activate(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionStatusActive, promo.Status)
}

func TestPromotionService_Activate_ExpiredIsTerminal(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	promoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Promotion{ID: "p1", Status: domain.PromotionStatusExpired}, nil)

	_, err := svc.Activate(context.Background(), "p1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPromotionService_Activate_NotFound(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	promoRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPromotionNotFound)

	_, err := svc.Activate(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrPromotionNotFound)
}

func TestPromotionService_Delete_Success(t *testing.T) {
	svc, promoRepo, _, _ := newPromotionService(t)

	promoRepo.EXPECT().Delete(mock.Anything, "p1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "p1"))
}

func TestPromotionService_RefreshStatuses_Sweep(t *testing.T) {
	svc, promoRepo, pendingRepo, notifier := newPromotionService(t)

	activated := []*domain.Promotion{{ID: "p1", Status: domain.PromotionStatusActive}}
	expired := []*domain.Promotion{{ID: "p2", Status: domain.PromotionStatusExpired}}
	stale := []*domain.PendingAIPromotion{{ID: "pp1", ListingID: "l1"}}

	promoRepo.EXPECT().ActivateDue(mock.Anything, mock.Anything).Return(activated, nil)
	promoRepo.EXPECT().ExpireDue(mock.Anything, mock.Anything).Return(expired, nil)
	pendingRepo.EXPECT().ExpireDue(mock.Anything, mock.Anything).Return(stale, nil)
	notifier.EXPECT().NotifyPendingExpired(mock.Anything, stale[0]).Return()

	sweep, err := svc.RefreshStatuses(context.Background())

	require.NoError(t, err)
	assert.Len(t, sweep.Activated, 1)
	assert.Len(t, sweep.Expired, 1)
	assert.Len(t, sweep.ExpiredPending, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPromotionService_RefreshStatuses_NothingDue(t *testing.T) {
	svc, promoRepo, pendingRepo, _ := newPromotionService(t)

	promoRepo.EXPECT().ActivateDue(mock.Anything, mock.Anything).Return(nil, nil)
	promoRepo.EXPECT().ExpireDue(mock.Anything, mock.Anything).Return(nil, nil)
	pendingRepo.EXPECT().ExpireDue(mock.Anything, mock.Anything).Return(nil, nil)

	sweep, err := svc.RefreshStatuses(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sweep.Activated)
	assert.Empty(t, sweep.Expired)
	assert.Empty(t, sweep.ExpiredPending)
}

func TestPromotionService_Approve_Success(t *testing.T) {
	svc, promoRepo, pendingRepo, notifier := newPromotionService(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pending := &domain.PendingAIPromotion{
		ID: "pp1",
		Promotion: domain.Promotion{
			ID:          "p1",
			Name:        "Workation Escapes Special",
			StartDate:   now.Add(24 * time.Hour),
			EndDate:     now.Add(30 * 24 * time.Hour),
			AIGenerated: true,
		},
		ListingID: "l1",
		Status:    domain.PendingStatusPending,
		ExpiresAt: now.Add(48 * time.Hour),
	}

	pendingRepo.EXPECT().GetByID(mock.Anything, "pp1").Return(pending, nil)
	pendingRepo.EXPECT().Resolve(mock.Anything, "pp1", domain.PendingStatusApproved).Return(nil)
	promoRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyPromotionApproved(mock.Anything, mock.Anything).Return()

	promo, err := svc.Approve(context.Background(), "pp1")

	require.NoError(t, err)
	assert.Equal(t, "p1", promo.ID)
	// start is in the future, so the copy lands as scheduled
	assert.Equal(t, domain.PromotionStatusScheduled, promo.Status)
	assert.Equal(t, now, promo.CreatedAt)
	assert.True(t, promo.AIGenerated)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPromotionService_Approve_PastStartBecomesDraft(t *testing.T) {
	svc, promoRepo, pendingRepo, notifier := newPromotionService(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pending := &domain.PendingAIPromotion{
		ID: "pp1",
		Promotion: domain.Promotion{
			ID:        "p1",
			StartDate: now.Add(-time.Hour),
			EndDate:   now.Add(30 * 24 * time.Hour),
		},
		Status:    domain.PendingStatusPending,
		ExpiresAt: now.Add(48 * time.Hour),
	}

	pendingRepo.EXPECT().GetByID(mock.Anything, "pp1").Return(pending, nil)
	pendingRepo.EXPECT().Resolve(mock.Anything, "pp1", domain.PendingStatusApproved).Return(nil)
	promoRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyPromotionApproved(mock.Anything, mock.Anything).Return()

	promo, err := svc.Approve(context.Background(), "pp1")

	require.NoError(t, err)
	assert.Equal(t, domain.PromotionStatusDraft, promo.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestPromotionService_Approve_SecondApprovalConflicts(t *testing.T) {
	svc, _, pendingRepo, _ := newPromotionService(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pending := &domain.PendingAIPromotion{
		ID:        "pp1",
		Promotion: domain.Promotion{ID: "p1"},
		Status:    domain.PendingStatusApproved,
		ExpiresAt: now.Add(48 * time.Hour),
	}

	pendingRepo.EXPECT().GetByID(mock.Anything, "pp1").Return(pending, nil)
	pendingRepo.EXPECT().Resolve(mock.Anything, "pp1", domain.PendingStatusApproved).Return(domain.ErrPendingResolved)

	_, err := svc.Approve(context.Background(), "pp1")

	assert.ErrorIs(t, err, domain.ErrPendingResolved)
}

func TestPromotionService_Approve_ExpiredPending(t *testing.T) {
	svc, _, pendingRepo, _ := newPromotionService(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pending := &domain.PendingAIPromotion{
		ID:        "pp1",
		Promotion: domain.Promotion{ID: "p1"},
		Status:    domain.PendingStatusPending,
		ExpiresAt: now.Add(-time.Minute),
	}

	pendingRepo.EXPECT().GetByID(mock.Anything, "pp1").Return(pending, nil)
	pendingRepo.EXPECT().Resolve(mock.Anything, "pp1", domain.PendingStatusExpired).Return(nil)

	_, err := svc.Approve(context.Background(), "pp1")

	assert.ErrorIs(t, err, domain.ErrPendingResolved)
}

func TestPromotionService_Approve_NotFound(t *testing.T) {
	svc, _, pendingRepo, _ := newPromotionService(t)

	pendingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPendingNotFound)

	_, err := svc.Approve(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrPendingNotFound)
}

func TestPromotionService_Reject_Success(t *testing.T) {
	svc, _, pendingRepo, _ := newPromotionService(t)

	pending := &domain.PendingAIPromotion{ID: "pp1", Status: domain.PendingStatusPending}

	pendingRepo.EXPECT().GetByID(mock.Anything, "pp1").Return(pending, nil)
	pendingRepo.EXPECT().Resolve(mock.Anything, "pp1", domain.PendingStatusRejected).Return(nil)

	require.NoError(t, svc.Reject(context.Background(), "pp1"))
}

func TestPromotionService_Reject_AlreadyResolved(t *testing.T) {
	svc, _, pendingRepo, _ := newPromotionService(t)

	pending := &domain.PendingAIPromotion{ID: "pp1", Status: domain.PendingStatusRejected}

	pendingRepo.EXPECT().GetByID(mock.Anything, "pp1").Return(pending, nil)
	pendingRepo.EXPECT().Resolve(mock.Anything, "pp1", domain.PendingStatusRejected).Return(domain.ErrPendingResolved)

	err := svc.Reject(context.Background(), "pp1")

	assert.ErrorIs(t, err, domain.ErrPendingResolved)
}

func TestPromotionService_ListPending(t *testing.T) {
	svc, _, pendingRepo, _ := newPromotionService(t)

	pendings := []*domain.PendingAIPromotion{{ID: "pp1"}, {ID: "pp2"}}
	pendingRepo.EXPECT().ListPending(mock.Anything).Return(pendings, nil)

	result, err := svc.ListPending(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
