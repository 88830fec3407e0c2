package service

import (
	"context"
	"testing"
	"time"

	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/mkravets/PromoDesk/internal/engine"
	"github.com/mkravets/PromoDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListingService(t *testing.T) (*ListingService, *mocks.MockListingRepo, *mocks.MockBookingRepo) {
	t.Helper()

	listingRepo := mocks.NewMockListingRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewListingService(listingRepo, bookingRepo, &engine.Calendar{})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	return svc, listingRepo, bookingRepo
}

func TestListingService_CreateListing_Success(t *testing.T) {
	svc, listingRepo, _ := newListingService(t)

	listingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	listing, err := svc.CreateListing(context.Background(), domain.CreateListingInput{
		Type:     domain.ListingTypeStay,
		Title:    "Seaside Loft",
		Capacity: 2,
		UnitRate: 150,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, 2, listing.Capacity)
	assert.Equal(t, 150, listing.UnitRate)
}

func TestListingService_CreateListing_Defaults(t *testing.T) {
	svc, listingRepo, _ := newListingService(t)

	listingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	listing, err := svc.CreateListing(context.Background(), domain.CreateListingInput{
		Type:  domain.ListingTypeExperience,
		Title: "Food Tour",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCapacity, listing.Capacity)
	assert.Equal(t, domain.DefaultUnitRate, listing.UnitRate)
}

func TestListingService_CreateListing_Validation(t *testing.T) {
	svc, _, _ := newListingService(t)

	tests := []struct {
		name  string
		input domain.CreateListingInput
	}{
		{"missing title", domain.CreateListingInput{Type: domain.ListingTypeStay}},
		{"unknown type", domain.CreateListingInput{Type: "castle", Title: "X"}},
		{"negative capacity", domain.CreateListingInput{Type: domain.ListingTypeStay, Title: "X", Capacity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateListing(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestListingService_CreateBooking_Success(t *testing.T) {
	svc, listingRepo, bookingRepo := newListingService(t)

	listing := &domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 2}

	listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID:  "l1",
		CustomerID: "c1",
		StartDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "l1", booking.ListingID)
	assert.NotEmpty(t, booking.ID)
}

func TestListingService_CreateBooking_InvalidDates(t *testing.T) {
	svc, _, _ := newListingService(t)

	d := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: "l1",
		StartDate: d,
		EndDate:   d,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_CreateBooking_ListingNotFound(t *testing.T) {
	svc, listingRepo, _ := newListingService(t)

	listingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrListingNotFound)

	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: "missing",
		StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListingService_CancelBooking_Success(t *testing.T) {
	svc, _, bookingRepo := newListingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(nil)

	require.NoError(t, svc.CancelBooking(context.Background(), "b1"))
}

func TestListingService_CancelBooking_AlreadyCancelled(t *testing.T) {
	svc, _, bookingRepo := newListingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.CancelBooking(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestListingService_CompleteBooking_Success(t *testing.T) {
	svc, _, bookingRepo := newListingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCompleted).Return(nil)

	require.NoError(t, svc.CompleteBooking(context.Background(), "b1"))
}

func TestListingService_CompleteBooking_CompletedIsTerminal(t *testing.T) {
	svc, _, bookingRepo := newListingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusCompleted}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.CompleteBooking(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestListingService_Calendar_Success(t *testing.T) {
	svc, listingRepo, bookingRepo := newListingService(t)

	listing := &domain.Listing{ID: "l1", Type: domain.ListingTypeStay, Capacity: 4, UnitRate: 100}
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed,
			StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "b2", Status: domain.BookingStatusConfirmed,
			StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
	}

	listingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	bookingRepo.EXPECT().ListByListing(mock.Anything, "l1").Return(bookings, nil)

	days, err := svc.Calendar(context.Background(), "l1", 2025, time.June)

	require.NoError(t, err)
	require.Len(t, days, 30)
	assert.Equal(t, domain.DayStatusReserved, days[0].Status)
	assert.Equal(t, 2, days[0].BookingCount)
	assert.Equal(t, 200, days[0].Revenue)
	assert.Equal(t, domain.DayStatusVacant, days[2].Status)
}

func TestListingService_Calendar_ListingNotFound(t *testing.T) {
	svc, listingRepo, _ := newListingService(t)

	listingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrListingNotFound)

	_, err := svc.Calendar(context.Background(), "missing", 2025, time.June)

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
