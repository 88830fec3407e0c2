package domain

import "time"

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Rank orders urgencies for sorting and threshold comparisons,
// low = 0 up to critical = 3.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	default:
		return 0
	}
}

// DiscountRange is a recommended percentage band, min <= max.
type DiscountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// InventoryGap marks a listing whose occupancy over the look-ahead
// window is low enough to warrant a promotion. Derived per scan,
// never persisted.
type InventoryGap struct {
	ListingID     string        `json:"listing_id"`
	ListingType   ListingType   `json:"listing_type"`
	ListingTitle  string        `json:"listing_title"`
	OccupancyRate int           `json:"occupancy_rate"`
	VacancyDays   int           `json:"vacancy_days"`
	Urgency       Urgency       `json:"urgency"`
	Recommended   DiscountRange `json:"recommended_discount_range"`
	Reason        string        `json:"reason"`
}

type DayStatus string

const (
	DayStatusSoldOut   DayStatus = "sold-out"
	DayStatusVacant    DayStatus = "vacant"
	DayStatusDead      DayStatus = "dead"
	DayStatusReserved  DayStatus = "reserved"
	DayStatusPromo     DayStatus = "promo"
	DayStatusCompleted DayStatus = "completed"
)

// DateStatus is one calendar day's derived occupancy picture.
// Exactly one status per date; computed fresh per request.
type DateStatus struct {
	Date         time.Time `json:"date"`
	Status       DayStatus `json:"status"`
	Revenue      int       `json:"revenue"`
	BookingCount int       `json:"booking_count"`
	Capacity     int       `json:"capacity"`
	PromoApplied bool      `json:"promo_applied,omitempty"`
}

// ScanReport summarizes one inventory scan run.
type ScanReport struct {
	ScannedAt        time.Time      `json:"scanned_at"`
	ListingsScanned  int            `json:"listings_scanned"`
	Gaps             []InventoryGap `json:"gaps"`
	GeneratedPending int            `json:"generated_pending"`
}

// StatusSweep summarizes one lifecycle sweep by the scheduler.
type StatusSweep struct {
	Activated      []*Promotion          `json:"activated"`
	Expired        []*Promotion          `json:"expired"`
	ExpiredPending []*PendingAIPromotion `json:"expired_pending"`
}
