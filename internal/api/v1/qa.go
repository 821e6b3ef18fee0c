package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oxygenfit/salesconsole/internal/api/dto"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/service"
)

type QAHandler struct {
	qaService service.QAService
	logger    *logger.Logger
}

func NewQAHandler(qaService service.QAService, logger *logger.Logger) *QAHandler {
	return &QAHandler{
		qaService: qaService,
		logger:    logger,
	}
}

// @Summary Pricing question
// @Description Answer a free-text pricing question using the active rules
// @Tags QA
// @Accept json
// @Produce json
// @Param request body dto.QARequest true "Question"
// @Success 200 {object} dto.QAResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /qa [post]
func (h *QAHandler) Ask(c *gin.Context) {
	var req dto.QARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.qaService.Answer(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
