package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fairway/internal/models/request_models"
	"fairway/internal/services"
	"fairway/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
	pdfService     services.PDFServiceInterface
}

func NewPlanController(plannerService services.PlannerServiceInterface, pdfService services.PDFServiceInterface) *PlanController {
	return &PlanController{
		plannerService: plannerService,
		pdfService:     pdfService,
	}
}

// GeneratePlan godoc
// @Summary Generate a trip plan
// @Description Build a day-by-day golf trip plan with a full cost breakdown
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Trip constraints"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/generate [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.CreateTripPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip plan generated successfully")
}

// GeneratePlanSummary godoc
// @Summary Generate a trip plan as plain text
// @Tags Plans
// @Accept json
// @Produce plain
// @Param request body request_models.PlanRequest true "Trip constraints"
// @Success 200 {string} string
// @Router /plans/generate/summary [post]
func (p *PlanController) GeneratePlanSummary(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.CreateTripPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, p.plannerService.RenderPlanSummary(plan))
}

// GeneratePlanPDF godoc
// @Summary Generate a trip plan as a PDF
// @Tags Plans
// @Accept json
// @Produce application/pdf
// @Param request body request_models.PlanRequest true "Trip constraints"
// @Success 200 {file} binary
// @Router /plans/generate/pdf [post]
func (p *PlanController) GeneratePlanPDF(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.CreateTripPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := p.pdfService.BuildTripPlanPDF(plan)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	filename := fmt.Sprintf("golf-trip-%s.pdf", req.StartDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
