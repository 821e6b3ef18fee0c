package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oxygenfit/salesconsole/internal/api/dto"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/service"
)

type PricingHandler struct {
	catalogService service.CatalogService
	logger         *logger.Logger
}

func NewPricingHandler(catalogService service.CatalogService, logger *logger.Logger) *PricingHandler {
	return &PricingHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// @Summary Comparison sections
// @Description Return the comparison tables and promotion highlights for a category filter
// @Tags Pricing
// @Produce json
// @Param category query string false "Category filter, all when empty"
// @Success 200 {object} dto.SectionsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /pricing/sections [get]
func (h *PricingHandler) GetSections(c *gin.Context) {
	var req dto.SectionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.catalogService.GetSections(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("failed to build comparison sections", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Refresh catalog
// @Description Drop the cached catalog snapshot so the next request refetches
// @Tags Pricing
// @Produce json
// @Success 200 {object} map[string]string
// @Router /pricing/refresh [post]
func (h *PricingHandler) Refresh(c *gin.Context) {
	h.catalogService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "catalog refreshed"})
}
