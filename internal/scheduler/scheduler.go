package scheduler

import (
	"context"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type inventoryScanner interface {
	RunScan(ctx context.Context) (*domain.ScanReport, error)
}

type lifecycleSweeper interface {
	RefreshStatuses(ctx context.Context) (*domain.StatusSweep, error)
}

// Scheduler runs the periodic inventory scan and the promotion
// lifecycle sweep on one shared ticker.
type Scheduler struct {
	scanner  inventoryScanner
	sweeper  lifecycleSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	scanner inventoryScanner,
	sweeper lifecycleSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		scanner:  scanner,
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sweep, err := s.sweeper.RefreshStatuses(ctx)
	if err != nil {
		s.logger.Error("failed to refresh promotion statuses",
			logger.String("error", err.Error()),
		)
	} else {
		for _, p := range sweep.Activated {
			s.logger.Info("promotion activated",
				logger.String("promotion_id", p.ID),
			)
		}
		for _, p := range sweep.Expired {
			s.logger.Info("promotion expired",
				logger.String("promotion_id", p.ID),
			)
		}
		for _, p := range sweep.ExpiredPending {
			s.logger.Info("pending promotion expired",
				logger.String("pending_id", p.ID),
				logger.String("listing_id", p.ListingID),
			)
		}
	}

	report, err := s.scanner.RunScan(ctx)
	if err != nil {
		s.logger.Error("inventory scan failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("inventory scan complete",
		logger.Int("listings", report.ListingsScanned),
		logger.Int("gaps", len(report.Gaps)),
		logger.Int("generated", report.GeneratedPending),
	)
}
