package booking

import (
	"context"

	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

type Repository interface {
	// -------- Chef lookups --------
	GetChefProfileByUserID(
		ctx context.Context,
		userID uint,
	) (*models.ChefProfile, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings --------
	ListBookingsForCustomer(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListBookingsForChef(
		ctx context.Context,
		chefUserID uint,
	) ([]models.Booking, error)
}
