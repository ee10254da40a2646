package booking

import (
	"context"

	domain "github.com/cheflinkhq/chef-marketplace/internal/domain/booking"
	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

type ListBookingsForChef struct {
	repo domain.Repository
}

func NewListBookingsForChef(repo domain.Repository) *ListBookingsForChef {
	return &ListBookingsForChef{repo: repo}
}

// Execute lists bookings targeting the caller. The caller must have a
// chef profile; a customer hitting the chef view gets a not-found rather
// than an empty queue.
func (uc *ListBookingsForChef) Execute(
	ctx context.Context,
	callerID uint,
) ([]models.Booking, error) {

	if _, err := uc.repo.GetChefProfileByUserID(ctx, callerID); err != nil {
		return nil, httperr.ErrBusiness("chef_profile_not_found")
	}

	return uc.repo.ListBookingsForChef(ctx, callerID)
}
