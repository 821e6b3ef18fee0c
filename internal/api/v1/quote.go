package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oxygenfit/salesconsole/internal/api/dto"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/service"
)

type QuoteHandler struct {
	quoteService  service.QuoteService
	reportService service.ReportService
	logger        *logger.Logger
}

func NewQuoteHandler(quoteService service.QuoteService, reportService service.ReportService, logger *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService:  quoteService,
		reportService: reportService,
		logger:        logger,
	}
}

// @Summary Open quotation
// @Description Open a quotation from a comparison row
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequest true "Quote source row"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.quoteService.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("failed to open quotation", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get quotation
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	resp, err := h.quoteService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Apply preset
// @Description Keep one plan active and zero out the others
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body dto.QuotePresetRequest true "Preset"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id}/preset [post]
func (h *QuoteHandler) ApplyPreset(c *gin.Context) {
	var req dto.QuotePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.quoteService.ApplyPreset(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Edit line
// @Description Set the unit price or quantity of one plan line
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body dto.QuoteLineRequest true "Line edit"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id}/lines [post]
func (h *QuoteHandler) SetLine(c *gin.Context) {
	var req dto.QuoteLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.quoteService.SetLine(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Set credit
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body dto.QuoteCreditRequest true "Credit amount"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id}/credit [post]
func (h *QuoteHandler) SetCredit(c *gin.Context) {
	var req dto.QuoteCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.quoteService.SetCredit(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Restore base prices
// @Description Reset all unit prices to the catalog baselines
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id}/restore [post]
func (h *QuoteHandler) RestoreBasePrices(c *gin.Context) {
	resp, err := h.quoteService.RestoreBasePrices(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Clear quantities
// @Description Zero out every plan line quantity
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id}/clear [post]
func (h *QuoteHandler) ClearQuantities(c *gin.Context) {
	resp, err := h.quoteService.ClearQuantities(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Quote summary text
// @Description Plain-text summary of the quotation for clipboard copy
// @Tags Quotes
// @Produce plain
// @Param id path string true "Quote ID"
// @Success 200 {string} string
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id}/summary [get]
func (h *QuoteHandler) Summary(c *gin.Context) {
	q, err := h.quoteService.Quotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.String(http.StatusOK, h.reportService.RenderSummary(q))
}

// @Summary Printable quote
// @Description Self-contained HTML document for printing
// @Tags Quotes
// @Produce html
// @Param id path string true "Quote ID"
// @Success 200 {string} string
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotes/{id}/printable [get]
func (h *QuoteHandler) Printable(c *gin.Context) {
	q, err := h.quoteService.Quotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	html, err := h.reportService.RenderPrintable(q)
	if err != nil {
		h.logger.Errorw("failed to render printable quote", "error", err, "quote_id", q.ID)
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
