package domain

import "time"

type PromotionStatus string

const (
	PromotionStatusDraft     PromotionStatus = "draft"
	PromotionStatusScheduled PromotionStatus = "scheduled"
	PromotionStatusActive    PromotionStatus = "active"
	PromotionStatusExpired   PromotionStatus = "expired"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// AIAnalysis is the narrative attached to a synthesized promotion.
// The fields are displayed verbatim by the vendor dashboard.
type AIAnalysis struct {
	Trend           string `json:"trend"`
	TrendPopularity int    `json:"trend_popularity"`
	PeakSeason      string `json:"peak_season"`
	Reasoning       string `json:"reasoning"`
}

type Promotion struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	ServiceType        ListingType     `json:"service_type"`
	DiscountType       DiscountType    `json:"discount_type"`
	DiscountValue      int             `json:"discount_value"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	Status             PromotionStatus `json:"status"`
	ApplicableListings int             `json:"applicable_listings"`
	UsageCount         int             `json:"usage_count"`
	AIGenerated        bool            `json:"ai_generated"`
	AIAnalysis         *AIAnalysis     `json:"ai_analysis,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type CreatePromotionInput struct {
	Name               string
	Description        string
	ServiceType        ListingType
	DiscountType       DiscountType
	DiscountValue      int
	StartDate          time.Time
	EndDate            time.Time
	ApplicableListings int
}

type PendingStatus string

const (
	PendingStatusPending  PendingStatus = "pending"
	PendingStatusApproved PendingStatus = "approved"
	PendingStatusRejected PendingStatus = "rejected"
	PendingStatusExpired  PendingStatus = "expired"
)

// PendingAIPromotion is an auto-generated promotion parked in the vendor's
// approval queue. Approval copies the embedded draft into the main
// promotions collection; rejection and expiry discard it.
type PendingAIPromotion struct {
	ID           string        `json:"id"`
	Promotion    Promotion     `json:"promotion"`
	ListingID    string        `json:"listing_id"`
	ListingTitle string        `json:"listing_title"`
	ListingType  ListingType   `json:"listing_type"`
	OccupancyGap int           `json:"occupancy_gap"`
	Urgency      Urgency       `json:"urgency"`
	Status       PendingStatus `json:"status"`
	GeneratedAt  time.Time     `json:"generated_at"`
	ExpiresAt    time.Time     `json:"expires_at"`
}
