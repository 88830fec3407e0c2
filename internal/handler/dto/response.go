package dto

import (
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
)

const dateLayout = "2006-01-02"

type ListingResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Capacity      int    `json:"capacity"`
	UnitRate      int    `json:"unit_rate"`
	OccupancyRate int    `json:"occupancy_rate"`
	LastScannedAt string `json:"last_scanned_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	ListingID  string `json:"listing_id"`
	CustomerID string `json:"customer_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type DateStatusResponse struct {
	Date         string `json:"date"`
	Status       string `json:"status"`
	Revenue      int    `json:"revenue"`
	BookingCount int    `json:"booking_count"`
	Capacity     int    `json:"capacity"`
	PromoApplied bool   `json:"promo_applied,omitempty"`
}

type GapResponse struct {
	ListingID     string               `json:"listing_id"`
	ListingType   string               `json:"listing_type"`
	ListingTitle  string               `json:"listing_title"`
	OccupancyRate int                  `json:"occupancy_rate"`
	VacancyDays   int                  `json:"vacancy_days"`
	Urgency       string               `json:"urgency"`
	Recommended   domain.DiscountRange `json:"recommended_discount_range"`
	Reason        string               `json:"reason"`
}

type ScanReportResponse struct {
	ScannedAt        string        `json:"scanned_at"`
	ListingsScanned  int           `json:"listings_scanned"`
	Gaps             []GapResponse `json:"gaps"`
	GeneratedPending int           `json:"generated_pending"`
}

type PromotionResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	ServiceType        string             `json:"service_type"`
	DiscountType       string             `json:"discount_type"`
	DiscountValue      int                `json:"discount_value"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	Status             string             `json:"status"`
	ApplicableListings int                `json:"applicable_listings"`
	UsageCount         int                `json:"usage_count"`
	AIGenerated        bool               `json:"ai_generated"`
	AIAnalysis         *domain.AIAnalysis `json:"ai_analysis,omitempty"`
	CreatedAt          string             `json:"created_at"`
}

type PendingPromotionResponse struct {
	ID           string            `json:"id"`
	Promotion    PromotionResponse `json:"promotion"`
	ListingID    string            `json:"listing_id"`
	ListingTitle string            `json:"listing_title"`
	ListingType  string            `json:"listing_type"`
	OccupancyGap int               `json:"occupancy_gap"`
	Urgency      string            `json:"urgency"`
	Status       string            `json:"status"`
	GeneratedAt  string            `json:"generated_at"`
	ExpiresAt    string            `json:"expires_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	resp := ListingResponse{
		ID:            l.ID,
		Type:          string(l.Type),
		Title:         l.Title,
		Capacity:      l.Capacity,
		UnitRate:      l.UnitRate,
		OccupancyRate: l.OccupancyRate,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
	}
	if l.LastScannedAt != nil {
		resp.LastScannedAt = l.LastScannedAt.Format(time.RFC3339)
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		ListingID:  b.ListingID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToDateStatusResponse(ds domain.DateStatus) DateStatusResponse {
	return DateStatusResponse{
		Date:         ds.Date.Format(dateLayout),
		Status:       string(ds.Status),
		Revenue:      ds.Revenue,
		BookingCount: ds.BookingCount,
		Capacity:     ds.Capacity,
		PromoApplied: ds.PromoApplied,
	}
}

func ToGapResponse(g domain.InventoryGap) GapResponse {
	return GapResponse{
		ListingID:     g.ListingID,
		ListingType:   string(g.ListingType),
		ListingTitle:  g.ListingTitle,
		OccupancyRate: g.OccupancyRate,
		VacancyDays:   g.VacancyDays,
		Urgency:       string(g.Urgency),
		Recommended:   g.Recommended,
		Reason:        g.Reason,
	}
}

func ToScanReportResponse(r *domain.ScanReport) ScanReportResponse {
	gaps := make([]GapResponse, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		gaps = append(gaps, ToGapResponse(g))
	}

	return ScanReportResponse{
		ScannedAt:        r.ScannedAt.Format(time.RFC3339),
		ListingsScanned:  r.ListingsScanned,
		Gaps:             gaps,
		GeneratedPending: r.GeneratedPending,
	}
}

func ToPromotionResponse(p *domain.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		ServiceType:        string(p.ServiceType),
		DiscountType:       string(p.DiscountType),
		DiscountValue:      p.DiscountValue,
		StartDate:          p.StartDate.Format(time.RFC3339),
		EndDate:            p.EndDate.Format(time.RFC3339),
		Status:             string(p.Status),
		ApplicableListings: p.ApplicableListings,
		UsageCount:         p.UsageCount,
		AIGenerated:        p.AIGenerated,
		AIAnalysis:         p.AIAnalysis,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}

func ToPendingPromotionResponse(p *domain.PendingAIPromotion) PendingPromotionResponse {
	return PendingPromotionResponse{
		ID:           p.ID,
		Promotion:    ToPromotionResponse(&p.Promotion),
		ListingID:    p.ListingID,
		ListingTitle: p.ListingTitle,
		ListingType:  string(p.ListingType),
		OccupancyGap: p.OccupancyGap,
		Urgency:      string(p.Urgency),
		Status:       string(p.Status),
		GeneratedAt:  p.GeneratedAt.Format(time.RFC3339),
		ExpiresAt:    p.ExpiresAt.Format(time.RFC3339),
	}
}
