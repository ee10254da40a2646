package booking

import (
	"context"
	"time"

	"github.com/cheflinkhq/chef-marketplace/internal/audit"
	domain "github.com/cheflinkhq/chef-marketplace/internal/domain/booking"
	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves a booking to newStatus on behalf of callerID. The caller
// must own a chef profile AND be the chef party of this specific booking;
// holding the chef role is not enough.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	callerID uint,
	bookingID uint,
	newStatus domain.Status,
) (*models.Booking, error) {

	if !domain.IsValid(newStatus) || newStatus == domain.StatusPending {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if _, err := uc.repo.GetChefProfileByUserID(ctx, callerID); err != nil {
		return nil, httperr.ErrBusiness("not_booking_chef")
	}
	if b.ChefID != callerID {
		return nil, httperr.ErrBusiness("not_booking_chef")
	}

	var action string
	switch newStatus {
	case domain.StatusConfirmed:
		err = domain.Confirm(b)
		action = audit.ActionBookingConfirmed
	case domain.StatusRejected:
		err = domain.Reject(b)
		action = audit.ActionBookingRejected
	case domain.StatusCompleted:
		err = domain.Complete(b, time.Now().UTC())
		action = audit.ActionBookingCompleted
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
