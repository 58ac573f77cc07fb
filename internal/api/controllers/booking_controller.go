package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fairway/internal/models/request_models"
	"fairway/internal/services"
	"fairway/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Request a booking at a venue
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking requested successfully")
}

// ListBookings godoc
// @Summary List the authenticated user's bookings
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, 10)
	if !ok {
		return
	}

	bookings, err := b.bookingService.GetListOfBookingsByUserId(c.Request.Context(), page, pageSize, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// UpdateBookingStatus godoc
// @Summary Confirm or cancel a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Param request body request_models.UpdateBookingStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /bookings/{id}/status [patch]
func (b *BookingController) UpdateBookingStatus(c *gin.Context) {
	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := b.bookingService.UpdateBookingStatus(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking status updated successfully")
}
