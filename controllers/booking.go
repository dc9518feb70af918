// controllers/booking.go
package controllers

import (
	"net/http"
	"strconv"

	"prestige-salon-backend/metrics"
	"prestige-salon-backend/models"
	"prestige-salon-backend/services"
	"prestige-salon-backend/store"
	"prestige-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

const defaultBookingLimit = 20

type BookingController struct {
	Store    store.Store
	Notifier *services.Notifier
}

// CreateBooking stores a booking request. Status defaults to "pending".
func (ctl BookingController) CreateBooking(c *gin.Context) {
	input := models.NewBooking()
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithFailure(c, utils.NewValidationError(err))
		return
	}

	id, err := ctl.Store.CreateDocument(c.Request.Context(), store.KindBooking, input)
	if err != nil {
		utils.RespondWithFailure(c, err)
		return
	}
	metrics.BookingsCreated.Inc()
	ctl.Notifier.BookingCreated(id, input)

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// GetBookings returns the first `limit` bookings in insertion order.
func (ctl BookingController) GetBookings(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultBookingLimit)))
	if err != nil || limit < 0 {
		utils.RespondWithFailure(c, &utils.ValidationError{Fields: []utils.FieldError{
			{Field: "limit", Reason: "must be a non-negative integer"},
		}})
		return
	}

	docs, err := ctl.Store.GetDocuments(c.Request.Context(), store.KindBooking)
	if err != nil {
		utils.RespondWithFailure(c, err)
		return
	}
	if len(docs) > limit {
		docs = docs[:limit]
	}
	c.JSON(http.StatusOK, publicDocuments(docs))
}
