package engine

import (
	"testing"

	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetector() Detector {
	return Detector{Analyzer: NewAnalyzer(DefaultPolicy()), WindowDays: 30}
}

func TestDetector_Assess_EmptyCalendarIsCriticalGap(t *testing.T) {
	d := testDetector()
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 2},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))

	assert.True(t, ga.IsGap)
	assert.Equal(t, 0, ga.OccupancyRate)
	assert.Equal(t, domain.UrgencyCritical, ga.Urgency)
	assert.Equal(t, 30, ga.VacancyDays)
	assert.Equal(t, 60, ga.UnsoldSlots)
}

func TestDetector_Assess_HalfBookedIsHigh(t *testing.T) {
	d := testDetector()
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 2},
		Bookings: []domain.Booking{
			{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 7, 1)},
		},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))

	assert.Equal(t, 50, ga.OccupancyRate)
	assert.Equal(t, domain.UrgencyHigh, ga.Urgency)
	assert.True(t, ga.IsGap)
	assert.Equal(t, 0, ga.VacancyDays)
	assert.Equal(t, 30, ga.UnsoldSlots)
}

func TestDetector_Assess_FullyBookedIsNotAGap(t *testing.T) {
	d := testDetector()
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 1},
		Bookings: []domain.Booking{
			{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 8, 1)},
		},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))

	assert.Equal(t, 100, ga.OccupancyRate)
	assert.Equal(t, domain.UrgencyLow, ga.Urgency)
	assert.False(t, ga.IsGap)
	assert.Equal(t, 0, ga.UnsoldSlots)
}

func TestDetector_Assess_OccupancyFloorForcesGap(t *testing.T) {
	d := testDetector()
	d.WindowDays = 5
	d.OccupancyFloor = 80

	// 3 of 4 units sold every day: 75% occupancy, low urgency.
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 4},
		Bookings: []domain.Booking{
			{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 6)},
			{ID: "b2", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 6)},
			{ID: "b3", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 6)},
		},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))

	assert.Equal(t, 75, ga.OccupancyRate)
	assert.Equal(t, domain.UrgencyLow, ga.Urgency)
	assert.True(t, ga.IsGap)
}

func TestDetector_Assess_CancelledBookingsDoNotCount(t *testing.T) {
	d := testDetector()
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 1},
		Bookings: []domain.Booking{
			{ID: "b1", Status: domain.BookingStatusCancelled, StartDate: day(2025, 6, 1), EndDate: day(2025, 8, 1)},
		},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))

	assert.Equal(t, 0, ga.OccupancyRate)
	assert.Equal(t, 30, ga.VacancyDays)
}

func TestDetector_Assess_OverbookedDayCapsAtCapacity(t *testing.T) {
	d := testDetector()
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 1},
		Bookings: []domain.Booking{
			{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 7, 1)},
			{ID: "b2", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 7, 1)},
			{ID: "b3", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 7, 1)},
		},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))

	assert.Equal(t, 100, ga.OccupancyRate)
	assert.Equal(t, 0, ga.UnsoldSlots)
}

func TestDetector_Assess_ZeroWindowUsesDefault(t *testing.T) {
	d := Detector{Analyzer: NewAnalyzer(DefaultPolicy())}
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 1},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))

	assert.Equal(t, DefaultWindowDays, ga.VacancyDays)
}

func TestDetector_Detect_SortsAndFilters(t *testing.T) {
	d := testDetector()
	now := day(2025, 6, 1)

	inventories := []domain.ListingInventory{
		{
			// ~67% booked: medium.
			Listing: domain.Listing{ID: "medium", Type: domain.ListingTypeStay, Capacity: 1},
			Bookings: []domain.Booking{
				{Status: domain.BookingStatusConfirmed, StartDate: now, EndDate: now.AddDate(0, 0, 20)},
			},
		},
		{
			// Fully vacant: critical.
			Listing: domain.Listing{ID: "critical", Type: domain.ListingTypeStay, Capacity: 1},
		},
		{
			// Fully booked: no gap.
			Listing: domain.Listing{ID: "full", Type: domain.ListingTypeStay, Capacity: 1},
			Bookings: []domain.Booking{
				{Status: domain.BookingStatusConfirmed, StartDate: now, EndDate: now.AddDate(0, 0, 30)},
			},
		},
		{
			// Half booked: high.
			Listing: domain.Listing{ID: "high", Type: domain.ListingTypeStay, Capacity: 2},
			Bookings: []domain.Booking{
				{Status: domain.BookingStatusConfirmed, StartDate: now, EndDate: now.AddDate(0, 0, 30)},
			},
		},
	}

	gaps := d.Detect(inventories, now)

	require.Len(t, gaps, 3)
	assert.Equal(t, "critical", gaps[0].ListingID)
	assert.Equal(t, "high", gaps[1].ListingID)
	assert.Equal(t, "medium", gaps[2].ListingID)
}

func TestDetector_Detect_TiesBrokenByOccupancy(t *testing.T) {
	d := testDetector()
	now := day(2025, 6, 1)

	inventories := []domain.ListingInventory{
		{
			// 5 of 30 days booked: 17%, critical.
			Listing: domain.Listing{ID: "fuller", Type: domain.ListingTypeStay, Capacity: 1},
			Bookings: []domain.Booking{
				{Status: domain.BookingStatusConfirmed, StartDate: now, EndDate: now.AddDate(0, 0, 5)},
			},
		},
		{
			// Fully vacant: 0%, critical.
			Listing: domain.Listing{ID: "emptier", Type: domain.ListingTypeStay, Capacity: 1},
		},
	}

	gaps := d.Detect(inventories, now)

	require.Len(t, gaps, 2)
	assert.Equal(t, "emptier", gaps[0].ListingID)
	assert.Equal(t, "fuller", gaps[1].ListingID)
}

func TestDetector_Detect_EmptyInput(t *testing.T) {
	d := testDetector()

	gaps := d.Detect(nil, day(2025, 6, 1))

	assert.NotNil(t, gaps)
	assert.Empty(t, gaps)
}

func TestGapAssessment_Gap_CarriesListingIdentity(t *testing.T) {
	d := testDetector()
	inv := domain.ListingInventory{
		Listing: domain.Listing{ID: "l1", Type: domain.ListingTypeExperience, Title: "Food Tour", Capacity: 8},
	}

	ga := d.Assess(&inv, day(2025, 6, 1))
	gap := ga.Gap(inv.Listing)

	assert.Equal(t, "l1", gap.ListingID)
	assert.Equal(t, domain.ListingTypeExperience, gap.ListingType)
	assert.Equal(t, "Food Tour", gap.ListingTitle)
	assert.Equal(t, ga.OccupancyRate, gap.OccupancyRate)
	assert.Equal(t, ga.Urgency, gap.Urgency)
	assert.Equal(t, ga.Recommended, gap.Recommended)
	assert.NotEmpty(t, gap.Reason)
}
