package engine

import (
	"testing"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendar_DayStatus_Reserved(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 4, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)},
		{ID: "b2", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)},
	}
	today := day(2025, 6, 1)

	ds := cal.DayStatus(listing, bookings, day(2025, 6, 1), today)

	assert.Equal(t, domain.DayStatusReserved, ds.Status)
	assert.Equal(t, 2, ds.BookingCount)
	assert.Equal(t, 200, ds.Revenue)
	assert.Equal(t, 4, ds.Capacity)
}

func TestCalendar_DayStatus_HalfOpenEndDate(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 4, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)},
	}
	today := day(2025, 6, 1)

	// The checkout day is not occupied.
	ds := cal.DayStatus(listing, bookings, day(2025, 6, 3), today)

	assert.Equal(t, domain.DayStatusVacant, ds.Status)
	assert.Equal(t, 0, ds.BookingCount)
	assert.Equal(t, 0, ds.Revenue)
}

func TestCalendar_DayStatus_SoldOut(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 2, UnitRate: 50}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 2)},
		{ID: "b2", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 2)},
	}

	ds := cal.DayStatus(listing, bookings, day(2025, 6, 1), day(2025, 6, 1))

	assert.Equal(t, domain.DayStatusSoldOut, ds.Status)
	assert.Equal(t, 100, ds.Revenue)
}

func TestCalendar_DayStatus_CompletedWins(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 1, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusCompleted, StartDate: day(2025, 5, 1), EndDate: day(2025, 5, 2)},
		{ID: "b2", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 5, 1), EndDate: day(2025, 5, 2)},
	}

	ds := cal.DayStatus(listing, bookings, day(2025, 5, 1), day(2025, 6, 1))

	assert.Equal(t, domain.DayStatusCompleted, ds.Status)
	// Realized revenue only counts completed stays.
	assert.Equal(t, 100, ds.Revenue)
	assert.Equal(t, 2, ds.BookingCount)
}

func TestCalendar_DayStatus_CancelledBookingsIgnored(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 1, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusCancelled, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 5)},
	}

	ds := cal.DayStatus(listing, bookings, day(2025, 6, 2), day(2025, 6, 1))

	assert.Equal(t, domain.DayStatusVacant, ds.Status)
	assert.Equal(t, 0, ds.BookingCount)
}

func TestCalendar_DayStatus_ZeroCapacityNotSoldOut(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 0, UnitRate: 100}

	ds := cal.DayStatus(listing, nil, day(2025, 6, 10), day(2025, 6, 1))

	assert.Equal(t, domain.DayStatusVacant, ds.Status)
}

func TestCalendar_DayStatus_Dead(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 4, UnitRate: 100}

	ds := cal.DayStatus(listing, nil, day(2025, 5, 20), day(2025, 6, 1))

	assert.Equal(t, domain.DayStatusDead, ds.Status)
	assert.Equal(t, 0, ds.Revenue)
}

func TestCalendar_DayStatus_PromoOverlay(t *testing.T) {
	cal := &Calendar{
		Promo:     func(string, time.Time) bool { return true },
		PromoRate: 80,
	}
	listing := &domain.Listing{ID: "l1", Capacity: 4, UnitRate: 100}

	ds := cal.DayStatus(listing, nil, day(2025, 6, 10), day(2025, 6, 1))

	assert.Equal(t, domain.DayStatusPromo, ds.Status)
	assert.True(t, ds.PromoApplied)
	assert.Equal(t, 80, ds.Revenue)
}

func TestCalendar_DayStatus_NoPromoOnBookedDays(t *testing.T) {
	cal := &Calendar{
		Promo:     func(string, time.Time) bool { return true },
		PromoRate: 80,
	}
	listing := &domain.Listing{ID: "l1", Capacity: 1, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 10), EndDate: day(2025, 6, 11)},
	}

	ds := cal.DayStatus(listing, bookings, day(2025, 6, 10), day(2025, 6, 1))

	assert.Equal(t, domain.DayStatusSoldOut, ds.Status)
	assert.False(t, ds.PromoApplied)
}

func TestCalendar_MonthStatuses_OneEntryPerDay(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 4, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)},
		{ID: "b2", Status: domain.BookingStatusConfirmed, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)},
	}

	days := cal.MonthStatuses(listing, bookings, 2025, time.June, day(2025, 6, 1))

	require.Len(t, days, 30)
	for i, d := range days {
		assert.Equal(t, day(2025, 6, i+1), d.Date)
		assert.NotEmpty(t, d.Status)
	}

	assert.Equal(t, domain.DayStatusReserved, days[0].Status)
	assert.Equal(t, domain.DayStatusReserved, days[1].Status)
	assert.Equal(t, domain.DayStatusVacant, days[2].Status)
}

func TestCalendar_MonthStatuses_February(t *testing.T) {
	cal := &Calendar{}
	listing := &domain.Listing{ID: "l1", Capacity: 4, UnitRate: 100}

	days := cal.MonthStatuses(listing, nil, 2024, time.February, day(2024, 2, 1))

	assert.Len(t, days, 29)
}

func TestHashPromoPicker_Deterministic(t *testing.T) {
	pick := HashPromoPicker(50)

	d := day(2025, 6, 10)
	first := pick("l1", d)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, pick("l1", d))
	}
}

func TestHashPromoPicker_Bounds(t *testing.T) {
	never := HashPromoPicker(0)
	always := HashPromoPicker(100)

	for i := 0; i < 30; i++ {
		d := day(2025, 6, 1).AddDate(0, 0, i)
		assert.False(t, never("l1", d))
		assert.True(t, always("l1", d))
	}
}
