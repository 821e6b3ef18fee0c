package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oxygenfit/salesconsole/internal/api/dto"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/service"
)

type RecommendationHandler struct {
	recommendationService service.RecommendationService
	logger                *logger.Logger
}

func NewRecommendationHandler(recommendationService service.RecommendationService, logger *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		logger:                logger,
	}
}

// @Summary Recharge recommendation
// @Description Match a recharge amount against the active pricing rules
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.RechargeRecommendationRequest true "Recharge amount"
// @Success 200 {object} dto.RechargeRecommendationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /recommendations/recharge [post]
func (h *RecommendationHandler) Recharge(c *gin.Context) {
	var req dto.RechargeRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp := h.recommendationService.RecommendRecharge(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}

// @Summary Sessions recommendation
// @Description Match a session count against the active pricing rules
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.SessionsRecommendationRequest true "Session count"
// @Success 200 {object} dto.SessionsRecommendationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /recommendations/sessions [post]
func (h *RecommendationHandler) Sessions(c *gin.Context) {
	var req dto.SessionsRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp := h.recommendationService.RecommendSessions(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}
