package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fairway/internal/models/request_models"
	"fairway/internal/services"
	"fairway/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetCatalog godoc
// @Summary Fetch the venue catalog for a destination
// @Description Resolve golf courses, hotels, restaurants and experiences from the upstream providers
// @Tags Catalog
// @Produce json
// @Param destination query string true "Destination name"
// @Param activities query []string false "Desired activity categories"
// @Success 200 {object} utils.APIResponse
// @Router /catalog [get]
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	catalog := cc.catalogService.ResolveCatalog(c.Request.Context(), destination, c.QueryArray("activities"))
	utils.RespondSuccess(c, catalog, "Catalog fetched successfully")
}

// BrowseVenues godoc
// @Summary Browse stored venues
// @Tags Catalog
// @Produce json
// @Param category query string false "Venue category"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /catalog/venues [get]
func (cc *CatalogController) BrowseVenues(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, 20)
	if !ok {
		return
	}

	items, err := cc.catalogService.BrowseVenues(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Venues fetched successfully")
}

// SemanticSearch godoc
// @Summary Search venues by free-text query
// @Description Rank stored venues by embedding similarity to the query
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.SemanticSearchRequest true "Search payload"
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /catalog/search [post]
func (cc *CatalogController) SemanticSearch(c *gin.Context) {
	var req request_models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	items, err := cc.catalogService.SearchSemantic(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Search completed successfully")
}

func parsePaging(c *gin.Context, defaultPageSize int) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}
