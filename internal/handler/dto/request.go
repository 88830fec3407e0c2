package dto

type CreateListingRequest struct {
	Type     string `json:"type" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Capacity int    `json:"capacity" binding:"gte=0"`
	UnitRate int    `json:"unit_rate" binding:"gte=0"`
}

type CreateBookingRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type CreatePromotionRequest struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	ServiceType        string `json:"service_type" binding:"required"`
	DiscountType       string `json:"discount_type" binding:"required"`
	DiscountValue      int    `json:"discount_value" binding:"required,gt=0"`
	StartDate          string `json:"start_date" binding:"required"`
	EndDate            string `json:"end_date" binding:"required"`
	ApplicableListings int    `json:"applicable_listings"`
}

type SchedulePromotionRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}
