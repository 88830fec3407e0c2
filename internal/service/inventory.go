package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/mkravets/PromoDesk/internal/engine"
	"github.com/mkravets/PromoDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ScanConfig tunes the side effects of an inventory scan.
type ScanConfig struct {
	// AutoPromoUrgency is the minimum urgency at which a gap gets an
	// auto-generated promotion parked in the approval queue.
	AutoPromoUrgency domain.Urgency
	// PendingTTL is how long a generated promotion waits for vendor
	// approval before it is discarded.
	PendingTTL time.Duration
}

type InventoryService struct {
	listingRepo ports.ListingRepo
	bookingRepo ports.BookingRepo
	pendingRepo ports.PendingPromoRepo
	notifier    ports.PromoNotifier
	detector    engine.Detector
	synth       engine.Synthesizer
	cfg         ScanConfig
	logger      logger.Logger
	now         func() time.Time
}

func NewInventoryService(
	listingRepo ports.ListingRepo,
	bookingRepo ports.BookingRepo,
	pendingRepo ports.PendingPromoRepo,
	notifier ports.PromoNotifier,
	detector engine.Detector,
	synth engine.Synthesizer,
	cfg ScanConfig,
	logger logger.Logger,
) *InventoryService {
	return &InventoryService{
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		pendingRepo: pendingRepo,
		notifier:    notifier,
		detector:    detector,
		synth:       synth,
		cfg:         cfg,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RunScan walks every listing: recomputes its occupancy over the
// look-ahead window, persists the fresh rate, and queues an
// auto-generated promotion for each actionable gap that does not
// already have one waiting.
func (s *InventoryService) RunScan(ctx context.Context) (*domain.ScanReport, error) {
	now := s.now()

	inventories, err := s.loadInventories(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.ScanReport{
		ScannedAt:       now,
		ListingsScanned: len(inventories),
		Gaps:            make([]domain.InventoryGap, 0, len(inventories)),
	}

	for i := range inventories {
		inv := &inventories[i]

		ga := s.detector.Assess(inv, now)

		if err := s.listingRepo.UpdateScan(ctx, inv.Listing.ID, ga.OccupancyRate, now); err != nil {
			s.logger.Error("failed to persist scan result",
				logger.String("listing_id", inv.Listing.ID),
				logger.String("error", err.Error()),
			)
		}

		if !ga.IsGap {
			continue
		}
		report.Gaps = append(report.Gaps, ga.Gap(inv.Listing))

		if ga.Urgency.Rank() < s.cfg.AutoPromoUrgency.Rank() {
			continue
		}

		generated, err := s.queuePending(ctx, inv.Listing, ga, now)
		if err != nil {
			s.logger.Error("failed to queue pending promotion",
				logger.String("listing_id", inv.Listing.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if generated {
			report.GeneratedPending++
		}
	}

	engine.SortGaps(report.Gaps)

	s.logger.Info("inventory scan finished",
		logger.Int("listings", report.ListingsScanned),
		logger.Int("gaps", len(report.Gaps)),
		logger.Int("generated", report.GeneratedPending),
	)

	return report, nil
}

// Gaps runs detection without any side effects, for the dashboard.
func (s *InventoryService) Gaps(ctx context.Context) ([]domain.InventoryGap, error) {
	inventories, err := s.loadInventories(ctx)
	if err != nil {
		return nil, err
	}

	return s.detector.Detect(inventories, s.now()), nil
}

func (s *InventoryService) loadInventories(ctx context.Context) ([]domain.ListingInventory, error) {
	listings, err := s.listingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	inventories := make([]domain.ListingInventory, 0, len(listings))
	for _, l := range listings {
		bookings, err := s.bookingRepo.ListByListing(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("list bookings for %s: %w", l.ID, err)
		}
		inventories = append(inventories, domain.ListingInventory{
			Listing:  *l,
			Bookings: bookings,
		})
	}

	return inventories, nil
}

func (s *InventoryService) queuePending(ctx context.Context, l domain.Listing, ga engine.GapAssessment, now time.Time) (bool, error) {
	exists, err := s.pendingRepo.HasLiveForListing(ctx, l.ID)
	if err != nil {
		return false, fmt.Errorf("check live pending: %w", err)
	}
	if exists {
		return false, nil
	}

	draft := s.synth.Synthesize(l.Type, ga.UnsoldSlots, now)

	pending := &domain.PendingAIPromotion{
		ID:           uuid.New().String(),
		Promotion:    *draft,
		ListingID:    l.ID,
		ListingTitle: l.Title,
		ListingType:  l.Type,
		OccupancyGap: 100 - ga.OccupancyRate,
		Urgency:      ga.Urgency,
		Status:       domain.PendingStatusPending,
		GeneratedAt:  now,
		ExpiresAt:    now.Add(s.cfg.PendingTTL),
	}

	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		// Another scan got there first; nothing to do.
		if errors.Is(err, domain.ErrPendingDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("create pending: %w", err)
	}

	s.logger.Info("pending promotion generated",
		logger.String("pending_id", pending.ID),
		logger.String("listing_id", l.ID),
		logger.String("urgency", string(ga.Urgency)),
	)

	go s.notifier.NotifyPendingGenerated(context.WithoutCancel(ctx), pending)

	return true, nil
}
