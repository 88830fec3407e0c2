package service

import (
	"context"
	"testing"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/mkravets/PromoDesk/internal/engine"
	"github.com/mkravets/PromoDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newInventoryService(
	t *testing.T,
	cfg ScanConfig,
) (*InventoryService, *mocks.MockListingRepo, *mocks.MockBookingRepo, *mocks.MockPendingPromoRepo, *mocks.MockPromoNotifier) {
	t.Helper()

	listingRepo := mocks.NewMockListingRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	pendingRepo := mocks.NewMockPendingPromoRepo(t)
	notifier := mocks.NewMockPromoNotifier(t)

	detector := engine.Detector{Analyzer: engine.NewAnalyzer(engine.DefaultPolicy()), WindowDays: 30}
	synth := engine.Synthesizer{
		Selector: func(trends []engine.Trend) engine.Trend { return trends[0] },
	}

	svc := NewInventoryService(listingRepo, bookingRepo, pendingRepo, notifier, detector, synth, cfg, newTestLogger(t))
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	return svc, listingRepo, bookingRepo, pendingRepo, notifier
}

func TestInventoryService_RunScan_GeneratesPending(t *testing.T) {
	cfg := ScanConfig{AutoPromoUrgency: domain.UrgencyHigh, PendingTTL: 72 * time.Hour}
	svc, listingRepo, bookingRepo, pendingRepo, notifier := newInventoryService(t, cfg)

	listing := &domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Title: "Loft", Capacity: 2, UnitRate: 100}

	listingRepo.EXPECT().List(mock.Anything).Return([]*domain.Listing{listing}, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "l1").Return(nil, nil)
	listingRepo.EXPECT().UpdateScan(mock.Anything, "l1", 0, mock.Anything).Return(nil)
	pendingRepo.EXPECT().HasLiveForListing(mock.Anything, "l1").Return(false, nil)
	pendingRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, p *domain.PendingAIPromotion) {
		assert.Equal(t, "l1", p.ListingID)
		assert.Equal(t, "Loft", p.ListingTitle)
		assert.Equal(t, domain.PendingStatusPending, p.Status)
		assert.Equal(t, domain.UrgencyCritical, p.Urgency)
		assert.Equal(t, 100, p.OccupancyGap)
		assert.Equal(t, p.GeneratedAt.Add(72*time.Hour), p.ExpiresAt)
		assert.True(t, p.Promotion.AIGenerated)
		assert.Equal(t, domain.PromotionStatusDraft, p.Promotion.Status)
	}).Return(nil)
	notifier.EXPECT().NotifyPendingGenerated(mock.Anything, mock.Anything).Return()

	report, err := svc.RunScan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.ListingsScanned)
	assert.Equal(t, 1, report.GeneratedPending)
	require.Len(t, report.Gaps, 1)
	assert.Equal(t, "l1", report.Gaps[0].ListingID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestInventoryService_RunScan_SkipsListingsWithLivePending(t *testing.T) {
	cfg := ScanConfig{AutoPromoUrgency: domain.UrgencyHigh, PendingTTL: 72 * time.Hour}
	svc, listingRepo, bookingRepo, pendingRepo, _ := newInventoryService(t, cfg)

	listing := &domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 2, UnitRate: 100}

	listingRepo.EXPECT().List(mock.Anything).Return([]*domain.Listing{listing}, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "l1").Return(nil, nil)
	listingRepo.EXPECT().UpdateScan(mock.Anything, "l1", 0, mock.Anything).Return(nil)
	pendingRepo.EXPECT().HasLiveForListing(mock.Anything, "l1").Return(true, nil)

	report, err := svc.RunScan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.GeneratedPending)
	assert.Len(t, report.Gaps, 1) // gap is still reported
}

func TestInventoryService_RunScan_RespectsUrgencyThreshold(t *testing.T) {
	cfg := ScanConfig{AutoPromoUrgency: domain.UrgencyHigh, PendingTTL: 72 * time.Hour}
	svc, listingRepo, bookingRepo, _, _ := newInventoryService(t, cfg)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// 20 of 30 days booked: 67% occupancy, medium urgency, below the
	// auto-promo bar.
	listing := &domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 1, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: now, EndDate: now.AddDate(0, 0, 20)},
	}

	listingRepo.EXPECT().List(mock.Anything).Return([]*domain.Listing{listing}, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "l1").Return(bookings, nil)
	listingRepo.EXPECT().UpdateScan(mock.Anything, "l1", 67, mock.Anything).Return(nil)

	report, err := svc.RunScan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.GeneratedPending)
	require.Len(t, report.Gaps, 1)
	assert.Equal(t, domain.UrgencyMedium, report.Gaps[0].Urgency)
}

func TestInventoryService_RunScan_DuplicateRaceIsBenign(t *testing.T) {
	cfg := ScanConfig{AutoPromoUrgency: domain.UrgencyHigh, PendingTTL: 72 * time.Hour}
	svc, listingRepo, bookingRepo, pendingRepo, _ := newInventoryService(t, cfg)

	listing := &domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 2, UnitRate: 100}

	listingRepo.EXPECT().List(mock.Anything).Return([]*domain.Listing{listing}, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "l1").Return(nil, nil)
	listingRepo.EXPECT().UpdateScan(mock.Anything, "l1", 0, mock.Anything).Return(nil)
	pendingRepo.EXPECT().HasLiveForListing(mock.Anything, "l1").Return(false, nil)
	pendingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPendingDuplicate)

	report, err := svc.RunScan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.GeneratedPending)
}

func TestInventoryService_RunScan_ScanPersistErrorDoesNotAbort(t *testing.T) {
	cfg := ScanConfig{AutoPromoUrgency: domain.UrgencyCritical, PendingTTL: 72 * time.Hour}
	svc, listingRepo, bookingRepo, pendingRepo, notifier := newInventoryService(t, cfg)

	listing := &domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 2, UnitRate: 100}

	listingRepo.EXPECT().List(mock.Anything).Return([]*domain.Listing{listing}, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "l1").Return(nil, nil)
	listingRepo.EXPECT().UpdateScan(mock.Anything, "l1", 0, mock.Anything).Return(assert.AnError)
	pendingRepo.EXPECT().HasLiveForListing(mock.Anything, "l1").Return(false, nil)
	pendingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyPendingGenerated(mock.Anything, mock.Anything).Return()

	report, err := svc.RunScan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.GeneratedPending)

	time.Sleep(50 * time.Millisecond)
}

func TestInventoryService_RunScan_ListError(t *testing.T) {
	cfg := ScanConfig{AutoPromoUrgency: domain.UrgencyHigh, PendingTTL: 72 * time.Hour}
	svc, listingRepo, _, _, _ := newInventoryService(t, cfg)

	listingRepo.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	_, err := svc.RunScan(context.Background())

	require.Error(t, err)
}

func TestInventoryService_Gaps_NoSideEffects(t *testing.T) {
	cfg := ScanConfig{AutoPromoUrgency: domain.UrgencyHigh, PendingTTL: 72 * time.Hour}
	svc, listingRepo, bookingRepo, _, _ := newInventoryService(t, cfg)

	listings := []*domain.Listing{
		{ID: "empty", Type: domain.ListingTypeStay, Capacity: 1, UnitRate: 100},
		{ID: "full", Type: domain.ListingTypeStay, Capacity: 1, UnitRate: 100},
	}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	listingRepo.EXPECT().List(mock.Anything).Return(listings, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "empty").Return(nil, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "full").Return([]domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: now, EndDate: now.AddDate(0, 0, 30)},
	}, nil)

	gaps, err := svc.Gaps(context.Background())

	require.NoError(t, err)
	require.Len(t, gaps, 1)
	assert.Equal(t, "empty", gaps[0].ListingID)
	assert.Equal(t, domain.UrgencyCritical, gaps[0].Urgency)
}
