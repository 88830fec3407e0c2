package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/mkravets/PromoDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type ListingSvc interface {
	CreateListing(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error)
	ListListings(ctx context.Context) ([]*domain.Listing, error)
	CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	CompleteBooking(ctx context.Context, id string) error
	Calendar(ctx context.Context, listingID string, year int, month time.Month) ([]domain.DateStatus, error)
}

type InventorySvc interface {
	RunScan(ctx context.Context) (*domain.ScanReport, error)
	Gaps(ctx context.Context) ([]domain.InventoryGap, error)
}

type PromotionSvc interface {
	Create(ctx context.Context, input domain.CreatePromotionInput) (*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	Schedule(ctx context.Context, id string, start, end time.Time) (*domain.Promotion, error)
	Activate(ctx context.Context, id string) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, pendingID string) (*domain.Promotion, error)
	Reject(ctx context.Context, pendingID string) error
	ListPending(ctx context.Context) ([]*domain.PendingAIPromotion, error)
}

type Handler struct {
	listingService   ListingSvc
	inventoryService InventorySvc
	promotionService PromotionSvc
}

func NewHandler(listingService ListingSvc, inventoryService InventorySvc, promotionService PromotionSvc) *Handler {
	return &Handler{
		listingService:   listingService,
		inventoryService: inventoryService,
		promotionService: promotionService,
	}
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateListingInput{
		Type:     domain.ListingType(req.Type),
		Title:    req.Title,
		Capacity: req.Capacity,
		UnitRate: req.UnitRate,
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) ListListings(c *ginext.Context) {
	listings, err := h.listingService.ListListings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCalendar(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid month"})
		return
	}

	days, err := h.listingService.Calendar(c.Request.Context(), listingID, year, time.Month(month))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DateStatusResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, dto.ToDateStatusResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	booking, err := h.listingService.CreateBooking(c.Request.Context(), domain.CreateBookingInput{
		ListingID:  listingID,
		CustomerID: req.CustomerID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.listingService.CancelBooking(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.listingService.CompleteBooking(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "completed"})
}

// Inventory

func (h *Handler) RunScan(c *ginext.Context) {
	report, err := h.inventoryService.RunScan(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScanReportResponse(report))
}

func (h *Handler) ListGaps(c *ginext.Context) {
	gaps, err := h.inventoryService.Gaps(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GapResponse, 0, len(gaps))
	for _, g := range gaps {
		resp = append(resp, dto.ToGapResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

// Promotions

func (h *Handler) CreatePromotion(c *ginext.Context) {
	var req dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
		return
	}

	promo, err := h.promotionService.Create(c.Request.Context(), domain.CreatePromotionInput{
		Name:               req.Name,
		Description:        req.Description,
		ServiceType:        domain.ListingType(req.ServiceType),
		DiscountType:       domain.DiscountType(req.DiscountType),
		DiscountValue:      req.DiscountValue,
		StartDate:          start,
		EndDate:            end,
		ApplicableListings: req.ApplicableListings,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPromotionResponse(promo))
}

func (h *Handler) ListPromotions(c *ginext.Context) {
	promos, err := h.promotionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PromotionResponse, 0, len(promos))
	for _, p := range promos {
		resp = append(resp, dto.ToPromotionResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SchedulePromotion(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid promotion id"})
		return
	}

	var req dto.SchedulePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
		return
	}

	promo, err := h.promotionService.Schedule(c.Request.Context(), id, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromotionResponse(promo))
}

func (h *Handler) ActivatePromotion(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid promotion id"})
		return
	}

	promo, err := h.promotionService.Activate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromotionResponse(promo))
}

func (h *Handler) DeletePromotion(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid promotion id"})
		return
	}

	if err := h.promotionService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Pending approvals

func (h *Handler) ListPendingPromotions(c *ginext.Context) {
	pendings, err := h.promotionService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PendingPromotionResponse, 0, len(pendings))
	for _, p := range pendings {
		resp = append(resp, dto.ToPendingPromotionResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApprovePendingPromotion(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pending id"})
		return
	}

	promo, err := h.promotionService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromotionResponse(promo))
}

func (h *Handler) RejectPendingPromotion(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pending id"})
		return
	}

	if err := h.promotionService.Reject(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPromotionNotFound),
		errors.Is(err, domain.ErrPendingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrPendingResolved),
		errors.Is(err, domain.ErrPendingDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
