package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// bookChef creates a pending booking through the API and returns its id.
func bookChef(t *testing.T, r http.Handler, token string, chefUserID uint, date string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/bookings", token, gin.H{
		"chef_id":             chefUserID,
		"date":                date,
		"time":                "19:00",
		"hours":               2,
		"guests":              4,
		"include_ingredients": true,
		"dishes":              []string{"Paneer Tikka"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, _ := decodeBody(t, w)["id"].(float64)
	require.NotZero(t, id)
	return uint(id)
}

func chefUserID(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return user.ID
}

func TestCreateBooking_QuotesAtCurrentRate(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	bookingID := bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())

	var booking models.Booking
	require.NoError(t, db.First(&booking, bookingID).Error)
	assert.Equal(t, "pending", booking.Status)
	// 500/hr x 2h + 300/guest x 4 guests
	assert.Equal(t, float64(2200), booking.TotalPrice)
}

func TestCreateBooking_TotalFrozenAgainstRateChanges(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	bookingID := bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())

	// the chef doubles their rate afterwards
	w := doJSON(t, r, http.MethodPut, "/api/chefs/profile", chefToken, gin.H{
		"hourly_rate": 1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var booking models.Booking
	require.NoError(t, db.First(&booking, bookingID).Error)
	assert.Equal(t, float64(2200), booking.TotalPrice)
}

func TestCreateBooking_UnknownChef(t *testing.T) {
	_, r := setupServer(t)

	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", custToken, gin.H{
		"chef_id": 9999,
		"date":    today(),
		"hours":   2,
		"guests":  2,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBooking_PastDateRefused(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	w := doJSON(t, r, http.MethodPost, "/api/bookings", custToken, gin.H{
		"chef_id": chefUserID(t, db, "ravi@example.com"),
		"date":    yesterday,
		"hours":   2,
		"guests":  2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "date_in_past")
}

func TestCreateBooking_MalformedDate(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", custToken, gin.H{
		"chef_id": chefUserID(t, db, "ravi@example.com"),
		"date":    "next tuesday",
		"hours":   2,
		"guests":  2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookings_CustomerSeesNewBooking(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())

	w := doJSON(t, r, http.MethodGet, "/api/bookings", custToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"status":"pending"`)
	// the chef counterpart is resolved to public identity fields
	assert.Contains(t, body, "ravi@example.com")
}

func TestListBookings_ChefQueue(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())

	w := doJSON(t, r, http.MethodGet, "/api/bookings/chef", chefToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asha@example.com")

	// a customer with no chef profile has no chef queue
	w = doJSON(t, r, http.MethodGet, "/api/bookings/chef", custToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus_OnlyOwningChef(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	otherChefToken := register(t, r, "Meera", "meera@example.com", "chef")
	createChefProfile(t, r, otherChefToken, 600)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	bookingID := bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())
	path := fmt.Sprintf("/api/bookings/%d/status", bookingID)

	// another chef cannot touch the booking
	w := doJSON(t, r, http.MethodPut, path, otherChefToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// neither can the customer who made it
	w = doJSON(t, r, http.MethodPut, path, custToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var booking models.Booking
	require.NoError(t, db.First(&booking, bookingID).Error)
	assert.Equal(t, "pending", booking.Status)

	// the booked chef can
	w = doJSON(t, r, http.MethodPut, path, chefToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, db.First(&booking, bookingID).Error)
	assert.Equal(t, "confirmed", booking.Status)
}

func TestUpdateStatus_RedundantConfirmKeepsStoredState(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	bookingID := bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())
	path := fmt.Sprintf("/api/bookings/%d/status", bookingID)

	w := doJSON(t, r, http.MethodPut, path, chefToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	// the repeat is refused, but the stored state is unchanged
	w = doJSON(t, r, http.MethodPut, path, chefToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var booking models.Booking
	require.NoError(t, db.First(&booking, bookingID).Error)
	assert.Equal(t, "confirmed", booking.Status)
}

func TestUpdateStatus_RejectedIsTerminal(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	bookingID := bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())
	path := fmt.Sprintf("/api/bookings/%d/status", bookingID)

	w := doJSON(t, r, http.MethodPut, path, chefToken, gin.H{"status": "rejected"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, path, chefToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var booking models.Booking
	require.NoError(t, db.First(&booking, bookingID).Error)
	assert.Equal(t, "rejected", booking.Status)
}

func TestUpdateStatus_CompleteFlow(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	chefID := chefUserID(t, db, "ravi@example.com")

	// today's booking: confirm then complete
	todayID := bookChef(t, r, custToken, chefID, today())
	todayPath := fmt.Sprintf("/api/bookings/%d/status", todayID)

	w := doJSON(t, r, http.MethodPut, todayPath, chefToken, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusConflict, w.Code) // pending cannot jump to completed

	w = doJSON(t, r, http.MethodPut, todayPath, chefToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPut, todayPath, chefToken, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// a future booking cannot be completed early
	future := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	futureID := bookChef(t, r, custToken, chefID, future)
	futurePath := fmt.Sprintf("/api/bookings/%d/status", futureID)

	w = doJSON(t, r, http.MethodPut, futurePath, chefToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPut, futurePath, chefToken, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "booking_in_future")
}

func TestUpdateStatus_NotFoundAndBadStatus(t *testing.T) {
	db, r := setupServer(t)

	chefToken := register(t, r, "Ravi", "ravi@example.com", "chef")
	createChefProfile(t, r, chefToken, 500)
	custToken := register(t, r, "Asha", "asha@example.com", "customer")

	w := doJSON(t, r, http.MethodPut, "/api/bookings/9999/status", chefToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	bookingID := bookChef(t, r, custToken, chefUserID(t, db, "ravi@example.com"), today())
	path := fmt.Sprintf("/api/bookings/%d/status", bookingID)

	w = doJSON(t, r, http.MethodPut, path, chefToken, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// forcing a booking back to pending is not a thing
	w = doJSON(t, r, http.MethodPut, path, chefToken, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
