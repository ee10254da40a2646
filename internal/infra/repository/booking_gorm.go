package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/cheflinkhq/chef-marketplace/internal/domain/booking"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Chef lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetChefProfileByUserID(
	ctx context.Context,
	userID uint,
) (*models.ChefProfile, error) {

	var profile models.ChefProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

// ListBookingsForCustomer returns the customer's own bookings, most
// recent date first, with the chef's public identity preloaded.
func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Chef").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBookingsForChef returns bookings targeting the chef, soonest date
// first, since this view drives the chef's operational queue.
func (r *BookingGormRepository) ListBookingsForChef(
	ctx context.Context,
	chefUserID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("chef_id = ?", chefUserID).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
