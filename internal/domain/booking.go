package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// OccupyingStatuses are the booking statuses that consume capacity.
var OccupyingStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusCompleted}

type Booking struct {
	ID         string        `json:"id"`
	ListingID  string        `json:"listing_id"`
	CustomerID string        `json:"customer_id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Covers reports whether the booking occupies the given date.
// Intervals are half-open: start <= d < end.
func (b *Booking) Covers(d time.Time) bool {
	return !d.Before(b.StartDate) && d.Before(b.EndDate)
}

type CreateBookingInput struct {
	ListingID  string
	CustomerID string
	StartDate  time.Time
	EndDate    time.Time
}
