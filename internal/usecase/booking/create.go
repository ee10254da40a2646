package booking

import (
	"context"
	"time"

	"github.com/cheflinkhq/chef-marketplace/internal/audit"
	domain "github.com/cheflinkhq/chef-marketplace/internal/domain/booking"
	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

type CreateBookingInput struct {
	CustomerID         uint
	ChefUserID         uint
	Date               time.Time
	Time               string
	Hours              int
	Guests             int
	IncludeIngredients bool
	Dishes             []string
	SpecialRequests    string
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.Hours < 1 || in.Guests < 1 {
		return nil, httperr.ErrBusiness("invalid_booking_size")
	}

	// Dates are stored as UTC midnights (parsed from YYYY-MM-DD).
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if in.Date.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	profile, err := uc.repo.GetChefProfileByUserID(ctx, in.ChefUserID)
	if err != nil {
		return nil, httperr.ErrBusiness("chef_not_found")
	}

	// Price the request at the chef's current rate; the total is frozen
	// on the booking from here on.
	total := domain.Quote(profile.HourlyRate, in.Hours, in.Guests, in.IncludeIngredients)

	b := &models.Booking{
		UserID:             in.CustomerID,
		ChefID:             in.ChefUserID,
		Date:               in.Date,
		Time:               in.Time,
		Hours:              in.Hours,
		Guests:             in.Guests,
		TotalPrice:         total,
		IncludeIngredients: in.IncludeIngredients,
		Dishes:             in.Dishes,
		SpecialRequests:    in.SpecialRequests,
		Status:             string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"chef_id": in.ChefUserID,
			"total":   total,
		},
	})

	return b, nil
}
