package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fairway/internal/models/request_models"
	"fairway/internal/services"
	"fairway/pkg/utils"
)

// VenueController exposes the admin-facing venue CRUD. Routes behind it are
// guarded by the admin role middleware.
type VenueController struct {
	venueService services.VenueServiceInterface
}

func NewVenueController(venueService services.VenueServiceInterface) *VenueController {
	return &VenueController{
		venueService: venueService,
	}
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags Venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateVenueRequest true "Venue payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/venues [post]
func (v *VenueController) CreateVenue(c *gin.Context) {
	var req request_models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := v.venueService.CreateVenue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Venue created successfully")
}

// UpdateVenue godoc
// @Summary Update a venue
// @Tags Venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateVenueRequest true "Venue payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/venues [put]
func (v *VenueController) UpdateVenue(c *gin.Context) {
	var req request_models.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := v.venueService.UpdateVenue(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Venue updated successfully")
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Tags Venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue id"
// @Success 200 {object} utils.APIResponse
// @Router /admin/venues/{id} [delete]
func (v *VenueController) DeleteVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid venue id")
		return
	}

	if err := v.venueService.DeleteVenue(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Venue deleted successfully")
}

// GetVenueById godoc
// @Summary Fetch a venue by id
// @Tags Venues
// @Produce json
// @Param id path string true "Venue id"
// @Success 200 {object} utils.APIResponse
// @Router /venues/{id} [get]
func (v *VenueController) GetVenueById(c *gin.Context) {
	item, err := v.venueService.GetVenueById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Venue fetched successfully")
}
