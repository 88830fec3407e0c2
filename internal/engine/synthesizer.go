package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/PromoDesk/internal/domain"
)

const defaultPromoDays = 30

// TrendSelector picks one trend from a non-empty catalog slice.
// Injected so synthesis is deterministic under test.
type TrendSelector func(trends []Trend) Trend

// PopularityWeightedSelector draws a trend with probability
// proportional to its popularity score.
func PopularityWeightedSelector(r *rand.Rand) TrendSelector {
	return func(trends []Trend) Trend {
		total := 0
		for _, t := range trends {
			total += t.Popularity
		}
		if total <= 0 {
			return trends[0]
		}
		n := r.Intn(total)
		for _, t := range trends {
			n -= t.Popularity
			if n < 0 {
				return t
			}
		}
		return trends[len(trends)-1]
	}
}

// Synthesizer builds complete draft promotions from a trend template
// and an unsold-inventory count. It never produces an active
// promotion; activation belongs to the lifecycle service.
type Synthesizer struct {
	Selector TrendSelector
	NewID    func() string
}

// Synthesize is deterministic given the injected selector, id source
// and now. unsoldCount is measured in unsold units over the scan
// window and drives both the discount and the urgency narrative.
func (s Synthesizer) Synthesize(serviceType domain.ListingType, unsoldCount int, now time.Time) *domain.Promotion {
	if unsoldCount < 0 {
		unsoldCount = 0
	}

	trends := TrendsFor(serviceType)
	trend := trends[0]
	if s.Selector != nil {
		trend = s.Selector(trends)
	}

	value := trend.Hint.Min + unsoldCount
	if value > trend.Hint.Max {
		value = trend.Hint.Max
	}

	urgency := unsoldUrgency(unsoldCount)

	newID := s.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return &domain.Promotion{
		ID:                 newID(),
		Name:               fmt.Sprintf("%s Special", trend.Name),
		Description:        fmt.Sprintf("%s Save %d%% while it lasts.", trend.Blurb, value),
		ServiceType:        serviceType,
		DiscountType:       domain.DiscountTypePercentage,
		DiscountValue:      value,
		StartDate:          now,
		EndDate:            now.AddDate(0, 0, defaultPromoDays),
		Status:             domain.PromotionStatusDraft,
		ApplicableListings: unsoldCount,
		AIGenerated:        true,
		AIAnalysis: &domain.AIAnalysis{
			Trend:           trend.Name,
			TrendPopularity: trend.Popularity,
			PeakSeason:      trend.PeakSeason,
			Reasoning: fmt.Sprintf(
				"%d unsold units in the scan window (%s urgency). %q is trending at %d/100 popularity with peak season %s; a %d%% discount targets the shortfall.",
				unsoldCount, urgency, trend.Name, trend.Popularity, trend.PeakSeason, value),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// unsoldUrgency buckets an absolute unsold-unit count for the
// narrative. Distinct from the analyzer's percentage tiers on purpose:
// the synthesizer only knows a count, not a capacity.
func unsoldUrgency(unsold int) domain.Urgency {
	switch {
	case unsold >= 20:
		return domain.UrgencyCritical
	case unsold >= 10:
		return domain.UrgencyHigh
	case unsold >= 5:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}
