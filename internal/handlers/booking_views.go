package handlers

import (
	"time"

	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

// Counterpart exposes only the public identity fields of the other party.
type Counterpart struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingView is a booking with its counterpart resolved: customers see
// the chef, chefs see the customer.
type BookingView struct {
	ID                 uint        `json:"id"`
	Date               time.Time   `json:"date"`
	Time               string      `json:"time"`
	Hours              int         `json:"hours"`
	Guests             int         `json:"guests"`
	TotalPrice         float64     `json:"total_price"`
	IncludeIngredients bool        `json:"include_ingredients"`
	Dishes             []string    `json:"dishes"`
	SpecialRequests    string      `json:"special_requests"`
	Status             string      `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	Chef               Counterpart `json:"chef"`
	Customer           Counterpart `json:"customer"`
}

func toView(b models.Booking) BookingView {
	return BookingView{
		ID:                 b.ID,
		Date:               b.Date,
		Time:               b.Time,
		Hours:              b.Hours,
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice,
		IncludeIngredients: b.IncludeIngredients,
		Dishes:             b.Dishes,
		SpecialRequests:    b.SpecialRequests,
		Status:             b.Status,
		CreatedAt:          b.CreatedAt,
		Chef:               Counterpart{ID: b.Chef.ID, Name: b.Chef.Name, Email: b.Chef.Email},
		Customer:           Counterpart{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email},
	}
}

func toViews(bookings []models.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, toView(b))
	}
	return views
}
