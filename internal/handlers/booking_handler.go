package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/cheflinkhq/chef-marketplace/internal/domain/booking"
	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
	"github.com/cheflinkhq/chef-marketplace/internal/httpresp"
	"github.com/cheflinkhq/chef-marketplace/internal/middleware"
	ucBooking "github.com/cheflinkhq/chef-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC          *ucBooking.CreateBooking
	listForCustomerUC *ucBooking.ListBookingsForCustomer
	listForChefUC     *ucBooking.ListBookingsForChef
	updateStatusUC    *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listForCustomerUC *ucBooking.ListBookingsForCustomer,
	listForChefUC *ucBooking.ListBookingsForChef,
	updateStatusUC *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		createUC:          createUC,
		listForCustomerUC: listForCustomerUC,
		listForChefUC:     listForChefUC,
		updateStatusUC:    updateStatusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ChefID             uint     `json:"chef_id" binding:"required"`
	Date               string   `json:"date" binding:"required"`
	Time               string   `json:"time"`
	Hours              int      `json:"hours" binding:"required,min=1"`
	Guests             int      `json:"guests" binding:"required,min=1"`
	IncludeIngredients bool     `json:"include_ingredients"`
	Dishes             []string `json:"dishes"`
	SpecialRequests    string   `json:"special_requests"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Chef, date, hours and guests are required.")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	booking, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:         userID,
		ChefUserID:         req.ChefID,
		Date:               date,
		Time:               req.Time,
		Hours:              req.Hours,
		Guests:             req.Guests,
		IncludeIngredients: req.IncludeIngredients,
		Dishes:             req.Dishes,
		SpecialRequests:    req.SpecialRequests,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "chef_not_found"):
			httperr.NotFound(c, "chef_not_found", "No chef profile for that chef.")
		case httperr.IsBusiness(err, "date_in_past"):
			httperr.BadRequest(c, "date_in_past", "The booking date has already passed.")
		case httperr.IsBusiness(err, "invalid_booking_size"):
			httperr.BadRequest(c, "invalid_booking_size", "Hours and guests must be at least 1.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
		}
		return
	}

	httpresp.Created(c, booking)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listForCustomerUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "booking_list_failed", "Could not list bookings.")
		return
	}

	httpresp.List(c, toViews(bookings))
}

func (h *BookingHandler) ListForChef(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listForChefUC.Execute(c.Request.Context(), userID)
	if err != nil {
		if httperr.IsBusiness(err, "chef_profile_not_found") {
			httperr.NotFound(c, "chef_profile_not_found", "You have no chef profile yet.")
			return
		}
		httperr.Internal(c, "booking_list_failed", "Could not list bookings.")
		return
	}

	httpresp.List(c, toViews(bookings))
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A status is required.")
		return
	}

	booking, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		userID,
		uint(bookingID),
		domain.Status(req.Status),
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be confirmed, rejected or completed.")
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "not_booking_chef"):
			httperr.Forbidden(c, "not_booking_chef", "Only the booked chef can change this booking.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.Conflict(c, "invalid_transition", "That status change is not allowed from the booking's current state.")
		case httperr.IsBusiness(err, "booking_in_future"):
			httperr.Conflict(c, "booking_in_future", "A booking cannot be completed before its date.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Could not update the booking.")
		}
		return
	}

	httpresp.OK(c, booking)
}
