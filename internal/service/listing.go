package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/mkravets/PromoDesk/internal/engine"
	"github.com/mkravets/PromoDesk/internal/service/ports"
)

type ListingService struct {
	listingRepo ports.ListingRepo
	bookingRepo ports.BookingRepo
	calendar    *engine.Calendar
	now         func() time.Time
}

func NewListingService(listingRepo ports.ListingRepo, bookingRepo ports.BookingRepo, calendar *engine.Calendar) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		calendar:    calendar,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ListingService) CreateListing(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown listing type %q", domain.ErrValidation, input.Type)
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}

	capacity := input.Capacity
	if capacity == 0 {
		capacity = domain.DefaultCapacity
	}
	unitRate := input.UnitRate
	if unitRate == 0 {
		unitRate = domain.DefaultUnitRate
	}

	now := s.now()
	listing := &domain.Listing{
		ID:        uuid.New().String(),
		Type:      input.Type,
		Title:     input.Title,
		Capacity:  capacity,
		UnitRate:  unitRate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return listing, nil
}

func (s *ListingService) ListListings(ctx context.Context) ([]*domain.Listing, error) {
	return s.listingRepo.List(ctx)
}

func (s *ListingService) CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
	}

	if _, err := s.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	now := s.now()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ListingID:  input.ListingID,
		CustomerID: input.CustomerID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, nil
}

func (s *ListingService) CancelBooking(ctx context.Context, id string) error {
	return s.transitionBooking(ctx, id, domain.BookingStatusCancelled)
}

func (s *ListingService) CompleteBooking(ctx context.Context, id string) error {
	return s.transitionBooking(ctx, id, domain.BookingStatusCompleted)
}

// Bookings only move out of confirmed; cancelled and completed are
// terminal.
func (s *ListingService) transitionBooking(ctx context.Context, id string, to domain.BookingStatus) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusConfirmed {
		return domain.ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, to); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	return nil
}

// Calendar renders the month's day-by-day occupancy statuses for one
// listing.
func (s *ListingService) Calendar(ctx context.Context, listingID string, year int, month time.Month) ([]domain.DateStatus, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	bookings, err := s.bookingRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return s.calendar.MonthStatuses(listing, bookings, year, month, s.now()), nil
}
