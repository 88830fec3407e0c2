package engine

import (
	"sort"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
)

const DefaultWindowDays = 30

// Detector scans listing inventories for occupancy gaps over a fixed
// look-ahead window starting at "now".
type Detector struct {
	Analyzer   Analyzer
	WindowDays int
	// OccupancyFloor lets custom policies surface listings that the
	// tier thresholds alone would leave out: anything below the floor
	// is a gap regardless of urgency.
	OccupancyFloor int
}

// GapAssessment is the full scan verdict for one listing. IsGap marks
// whether it is actionable; the occupancy numbers are valid either way
// so scans can persist fresh rates for every listing.
type GapAssessment struct {
	Assessment
	VacancyDays int
	UnsoldSlots int
	IsGap       bool
}

// Assess evaluates a single inventory against the window ending
// WindowDays after now. A listing is a gap when its urgency is above
// low or its occupancy sits below the floor; a nearly-full listing is
// never a gap.
func (d Detector) Assess(inv *domain.ListingInventory, now time.Time) GapAssessment {
	window := d.WindowDays
	if window <= 0 {
		window = DefaultWindowDays
	}

	capacity := inv.Listing.Capacity
	if capacity < 0 {
		capacity = 0
	}

	occupied, vacancyDays := windowUsage(inv.Bookings, dateOnly(now), window, capacity)
	total := capacity * window

	as := d.Analyzer.Analyze(inv.Listing.Type, total, occupied)

	return GapAssessment{
		Assessment:  as,
		VacancyDays: vacancyDays,
		UnsoldSlots: total - occupied,
		IsGap:       as.Urgency != domain.UrgencyLow || as.OccupancyRate < d.OccupancyFloor,
	}
}

// Detect produces gaps sorted by urgency descending, ties broken by
// ascending occupancy. Empty input yields an empty result.
func (d Detector) Detect(inventories []domain.ListingInventory, now time.Time) []domain.InventoryGap {
	gaps := make([]domain.InventoryGap, 0, len(inventories))
	for i := range inventories {
		inv := &inventories[i]

		ga := d.Assess(inv, now)
		if !ga.IsGap {
			continue
		}
		gaps = append(gaps, ga.Gap(inv.Listing))
	}

	SortGaps(gaps)
	return gaps
}

// Gap shapes the assessment into the dashboard entry for a listing.
func (ga GapAssessment) Gap(l domain.Listing) domain.InventoryGap {
	return domain.InventoryGap{
		ListingID:     l.ID,
		ListingType:   l.Type,
		ListingTitle:  l.Title,
		OccupancyRate: ga.OccupancyRate,
		VacancyDays:   ga.VacancyDays,
		Urgency:       ga.Urgency,
		Recommended:   ga.Recommended,
		Reason:        ga.Reason,
	}
}

// SortGaps orders gaps by urgency descending, then ascending occupancy.
func SortGaps(gaps []domain.InventoryGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Urgency.Rank() != gaps[j].Urgency.Rank() {
			return gaps[i].Urgency.Rank() > gaps[j].Urgency.Rank()
		}
		return gaps[i].OccupancyRate < gaps[j].OccupancyRate
	})
}

// windowUsage walks each day of the window counting occupied unit-days
// (capped at capacity, so overbooked days cannot inflate the rate) and
// the days with no active booking at all.
func windowUsage(bookings []domain.Booking, start time.Time, days, capacity int) (occupied, vacant int) {
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)

		var active int
		for j := range bookings {
			b := &bookings[j]
			if b.Status == domain.BookingStatusCancelled {
				continue
			}
			if b.Covers(day) {
				active++
			}
		}

		if active == 0 {
			vacant++
			continue
		}
		if active > capacity {
			active = capacity
		}
		occupied += active
	}
	return occupied, vacant
}
