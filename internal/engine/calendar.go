package engine

import (
	"hash/fnv"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
)

// PromoPicker decides whether a vacant day gets a promotional rate.
// Injected so calendars are reproducible in tests; a nil picker
// disables the overlay entirely.
type PromoPicker func(listingID string, date time.Time) bool

// Calendar derives per-day occupancy statuses from a listing's bookings.
type Calendar struct {
	Promo     PromoPicker
	PromoRate int // flat discounted unit rate shown on promo days
}

// DayStatus computes the status of a single date. Precedence, first
// match wins: completed, sold-out, reserved, dead, vacant. The promo
// overlay is only reachable from vacant, so sold-out days can never
// carry a promo.
func (c *Calendar) DayStatus(l *domain.Listing, bookings []domain.Booking, date, today time.Time) domain.DateStatus {
	day := dateOnly(date)

	capacity := l.Capacity
	if capacity < 0 {
		capacity = 0
	}

	var confirmed, completed int
	for i := range bookings {
		b := &bookings[i]
		if !b.Covers(day) {
			continue
		}
		switch b.Status {
		case domain.BookingStatusConfirmed:
			confirmed++
		case domain.BookingStatusCompleted:
			completed++
		}
	}
	booked := confirmed + completed

	ds := domain.DateStatus{
		Date:         day,
		BookingCount: booked,
		Capacity:     capacity,
	}

	switch {
	case completed > 0:
		ds.Status = domain.DayStatusCompleted
		ds.Revenue = completed * l.UnitRate
	case booked > 0 && booked >= capacity:
		ds.Status = domain.DayStatusSoldOut
		ds.Revenue = booked * l.UnitRate
	case booked > 0:
		ds.Status = domain.DayStatusReserved
		ds.Revenue = booked * l.UnitRate
	case day.Before(dateOnly(today)):
		ds.Status = domain.DayStatusDead
	default:
		ds.Status = domain.DayStatusVacant
		if c.Promo != nil && c.Promo(l.ID, day) {
			ds.Status = domain.DayStatusPromo
			ds.PromoApplied = true
			ds.Revenue = c.PromoRate
		}
	}

	return ds
}

// MonthStatuses renders every day of the given month. The result has
// exactly one entry per calendar day.
func (c *Calendar) MonthStatuses(l *domain.Listing, bookings []domain.Booking, year int, month time.Month, today time.Time) []domain.DateStatus {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, 0).Sub(first).Hours() / 24

	res := make([]domain.DateStatus, 0, int(days))
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		res = append(res, c.DayStatus(l, bookings, d, today))
	}
	return res
}

// HashPromoPicker marks roughly chancePercent of vacant days as promo
// days. Hash-based rather than drawn from a PRNG so the same calendar
// renders identically on every request.
func HashPromoPicker(chancePercent int) PromoPicker {
	return func(listingID string, date time.Time) bool {
		if chancePercent <= 0 {
			return false
		}
		h := fnv.New32a()
		h.Write([]byte(listingID))
		h.Write([]byte(date.Format("2006-01-02")))
		return int(h.Sum32()%100) < chancePercent
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
