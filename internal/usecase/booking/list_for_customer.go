package booking

import (
	"context"

	domain "github.com/cheflinkhq/chef-marketplace/internal/domain/booking"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

type ListBookingsForCustomer struct {
	repo domain.Repository
}

func NewListBookingsForCustomer(repo domain.Repository) *ListBookingsForCustomer {
	return &ListBookingsForCustomer{repo: repo}
}

func (uc *ListBookingsForCustomer) Execute(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForCustomer(ctx, customerID)
}
