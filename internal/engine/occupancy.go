package engine

import (
	"fmt"
	"math"

	"github.com/mkravets/PromoDesk/internal/domain"
)

// Policy holds the urgency thresholds (minimum unsold percentage per
// tier) and the recommended discount band per tier. The defaults are a
// starting point, not a business rule; deployments tune them in config.
type Policy struct {
	CriticalUnsold int
	HighUnsold     int
	MediumUnsold   int
	Ranges         map[domain.Urgency]domain.DiscountRange
}

func DefaultPolicy() Policy {
	return Policy{
		CriticalUnsold: 70,
		HighUnsold:     50,
		MediumUnsold:   30,
		Ranges: map[domain.Urgency]domain.DiscountRange{
			domain.UrgencyCritical: {Min: 25, Max: 35},
			domain.UrgencyHigh:     {Min: 15, Max: 25},
			domain.UrgencyMedium:   {Min: 10, Max: 15},
			domain.UrgencyLow:      {Min: 5, Max: 10},
		},
	}
}

// Assessment is the analyzer's verdict for one listing.
type Assessment struct {
	OccupancyRate int
	Urgency       domain.Urgency
	Recommended   domain.DiscountRange
	Reason        string
}

// Analyzer classifies a listing's occupancy into an urgency tier and a
// recommended discount band. Pure and deterministic: same inputs, same
// assessment.
type Analyzer struct {
	Policy Policy
}

func NewAnalyzer(p Policy) Analyzer {
	if p.Ranges == nil {
		p = DefaultPolicy()
	}
	return Analyzer{Policy: p}
}

// Analyze never fails: malformed capacity clamps to zero traffic and
// reports critical, because this feeds a dashboard that must stay up
// on imperfect data.
func (a Analyzer) Analyze(listingType domain.ListingType, totalSlots, bookedSlots int) Assessment {
	if totalSlots <= 0 {
		urgency := domain.UrgencyCritical
		return Assessment{
			OccupancyRate: 0,
			Urgency:       urgency,
			Recommended:   a.Policy.Ranges[urgency],
			Reason: fmt.Sprintf("%s: %s listing has no usable capacity data, treating as fully unsold",
				urgency, listingType),
		}
	}

	if bookedSlots < 0 {
		bookedSlots = 0
	}
	if bookedSlots > totalSlots {
		bookedSlots = totalSlots
	}

	occupancy := int(math.Round(100 * float64(bookedSlots) / float64(totalSlots)))
	unsold := 100 - occupancy

	var urgency domain.Urgency
	switch {
	case unsold >= a.Policy.CriticalUnsold:
		urgency = domain.UrgencyCritical
	case unsold >= a.Policy.HighUnsold:
		urgency = domain.UrgencyHigh
	case unsold >= a.Policy.MediumUnsold:
		urgency = domain.UrgencyMedium
	default:
		urgency = domain.UrgencyLow
	}

	return Assessment{
		OccupancyRate: occupancy,
		Urgency:       urgency,
		Recommended:   a.Policy.Ranges[urgency],
		Reason: fmt.Sprintf("%s: %s listing is %d%% booked (%d%% unsold) over the scan window",
			urgency, listingType, occupancy, unsold),
	}
}
