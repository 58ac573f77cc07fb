package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fairway/internal/models/request_models"
	"fairway/internal/services"
	"fairway/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// SaveItinerary godoc
// @Summary Save a generated plan as an itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SaveItineraryRequest true "Itinerary payload"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries [post]
func (i *ItineraryController) SaveItinerary(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := i.itineraryService.SaveGeneratedPlan(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary saved successfully")
}

// ListItineraries godoc
// @Summary List the authenticated user's itineraries
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, 10)
	if !ok {
		return
	}

	itineraries, err := i.itineraryService.GetListOfItinerariesByUserId(c.Request.Context(), page, pageSize, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItineraryDetails godoc
// @Summary Fetch one itinerary with its days and activities
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItineraryDetails(c *gin.Context) {
	details, err := i.itineraryService.GetItineraryDetails(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Itinerary fetched successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// AddActivity godoc
// @Summary Add an activity to an itinerary day
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary id"
// @Param request body request_models.AddItineraryActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id}/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	var req request_models.AddItineraryActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := i.itineraryService.AddActivity(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity added successfully")
}

// RemoveActivity godoc
// @Summary Remove an activity from an itinerary
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary id"
// @Param activityId path string true "Activity id"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id}/activities/{activityId} [delete]
func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	activityId, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	if err := i.itineraryService.RemoveActivity(c.Request.Context(), c.GetString("user_id"), c.Param("id"), activityId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}
