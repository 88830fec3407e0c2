package domain

import "time"

type ListingType string

const (
	ListingTypeStay       ListingType = "stay"
	ListingTypeExperience ListingType = "experience"
	ListingTypeEvent      ListingType = "event"
	ListingTypeProduct    ListingType = "product"
)

const (
	DefaultCapacity = 4
	DefaultUnitRate = 100
)

func (t ListingType) Valid() bool {
	switch t {
	case ListingTypeStay, ListingTypeExperience, ListingTypeEvent, ListingTypeProduct:
		return true
	}
	return false
}

type Listing struct {
	ID            string      `json:"id"`
	Type          ListingType `json:"type"`
	Title         string      `json:"title"`
	Capacity      int         `json:"capacity"`
	UnitRate      int         `json:"unit_rate"`
	OccupancyRate int         `json:"occupancy_rate"`
	LastScannedAt *time.Time  `json:"last_scanned_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ListingInventory is a listing together with its booking history,
// the unit the gap detector works on. OccupancyRate on the embedded
// listing is derived and recomputed on each scan, never authoritative.
type ListingInventory struct {
	Listing  Listing   `json:"listing"`
	Bookings []Booking `json:"bookings"`
}

type CreateListingInput struct {
	Type     ListingType
	Title    string
	Capacity int
	UnitRate int
}
