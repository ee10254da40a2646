package booking

import (
	"time"

	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

// IngredientRatePerGuest is the flat per-guest surcharge when the chef
// brings the ingredients.
const IngredientRatePerGuest = 300

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking) error {
	if err := CanTransition(Status(b.Status), StatusConfirmed); err != nil {
		return err
	}
	b.Status = string(StatusConfirmed)
	return nil
}

func Reject(b *models.Booking) error {
	if err := CanTransition(Status(b.Status), StatusRejected); err != nil {
		return err
	}
	b.Status = string(StatusRejected)
	return nil
}

// Complete is only legal once the booked date has arrived; a chef cannot
// mark tomorrow's dinner as done.
func Complete(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusCompleted); err != nil {
		return err
	}
	if dateOnly(b.Date).After(dateOnly(now)) {
		return httperr.ErrBusiness("booking_in_future")
	}
	b.Status = string(StatusCompleted)
	return nil
}

// Quote prices a booking at creation time. The figure is persisted on the
// booking and never recomputed, so later rate changes on the profile do
// not touch existing bookings.
func Quote(hourlyRate float64, hours, guests int, includeIngredients bool) float64 {
	total := hourlyRate * float64(hours)
	if includeIngredients {
		total += IngredientRatePerGuest * float64(guests)
	}
	return total
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
