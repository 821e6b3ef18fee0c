package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/domain/quote"
	"github.com/oxygenfit/salesconsole/internal/types"
	"github.com/oxygenfit/salesconsole/internal/validator"
)

type CreateQuoteRequest struct {
	// Source names the comparison table the quote opens from
	Source types.PricingCategory `json:"source" validate:"required,oneof=personal_training cycle_plan"`

	// RowKey is the row key within that table: the program name for
	// personal training, the program label for cycle plans
	RowKey string `json:"row_key" validate:"required"`

	ClientName string `json:"client_name"`

	// QuoteDate in 2006-01-02 form, today when empty
	QuoteDate string `json:"quote_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateQuoteRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateQuoteRequest) Date() time.Time {
	if r.QuoteDate == "" {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", r.QuoteDate)
	if err != nil {
		return time.Time{}
	}
	return d
}

type QuotePresetRequest struct {
	Preset types.QuotePreset `json:"preset" validate:"required"`
}

func (r *QuotePresetRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type QuoteLineRequest struct {
	Preset types.QuotePreset `json:"preset" validate:"required"`

	// Loosely typed, unparseable input commits as zero
	UnitPrice any `json:"unit_price"`
	Quantity  any `json:"quantity"`
}

func (r *QuoteLineRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *QuoteLineRequest) UnitPriceValue() (decimal.Decimal, bool) {
	if r.UnitPrice == nil {
		return decimal.Zero, false
	}
	return types.AsDecimal(r.UnitPrice), true
}

func (r *QuoteLineRequest) QuantityValue() (int, bool) {
	if r.Quantity == nil {
		return 0, false
	}
	return types.AsInt(r.Quantity), true
}

type QuoteCreditRequest struct {
	Credit any `json:"credit"`
}

func (r *QuoteCreditRequest) CreditValue() decimal.Decimal {
	return types.AsDecimal(r.Credit)
}

type QuoteLineResponse struct {
	Preset    types.QuotePreset `json:"preset"`
	Label     string            `json:"label"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	Baseline  decimal.Decimal   `json:"baseline"`
	Quantity  int               `json:"quantity"`
	Amount    decimal.Decimal   `json:"amount"`
}

type QuoteResponse struct {
	ID           string                `json:"id"`
	ItemNameZh   string                `json:"item_name_zh"`
	ItemNameEn   string                `json:"item_name_en,omitempty"`
	ClientName   string                `json:"client_name,omitempty"`
	QuoteDate    string                `json:"quote_date"`
	ActivePreset types.QuotePreset     `json:"active_preset"`
	Credit       decimal.Decimal       `json:"credit"`
	Lines        []QuoteLineResponse   `json:"lines"`
	Totals       quote.Totals          `json:"totals"`
	Aggregate    quote.AggregateTotals `json:"aggregate"`
}

func NewQuoteResponse(q *quote.Quotation) *QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(types.QuotePresets))
	for _, preset := range types.QuotePresets {
		line := q.Lines[preset]
		if line == nil {
			continue
		}
		lines = append(lines, QuoteLineResponse{
			Preset:    preset,
			Label:     preset.DisplayLabel(),
			UnitPrice: line.UnitPrice,
			Baseline:  q.Baselines[preset],
			Quantity:  line.Quantity,
			Amount:    line.Amount(),
		})
	}

	return &QuoteResponse{
		ID:           q.ID,
		ItemNameZh:   q.ItemNameZh,
		ItemNameEn:   q.ItemNameEn,
		ClientName:   q.ClientName,
		QuoteDate:    q.QuoteDate.Format("2006-01-02"),
		ActivePreset: q.ActivePreset,
		Credit:       q.Credit,
		Lines:        lines,
		Totals:       q.Totals(),
		Aggregate:    q.Aggregate(),
	}
}
