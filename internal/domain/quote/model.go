package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/domain/comparison"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/types"
)

// TaxRate is the sales tax applied to every quotation. Fixed by policy,
// deliberately not configurable.
var TaxRate = decimal.NewFromFloat(0.13)

// DefaultQuantity is the session count a freshly opened or preset-switched
// quote line starts with
const DefaultQuantity = 12

// Line is one (unit price, quantity) pair of the calculator
type Line struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Amount is the line's contribution before credit and tax
func (l Line) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Quotation is the whole calculator state for one quote session. All
// transitions mutate in place through the methods below; derived values are
// never stored, callers recompute them via Totals and AggregateTotals.
type Quotation struct {
	ID         string    `json:"id"`
	ItemNameZh string    `json:"item_name_zh"`
	ItemNameEn string    `json:"item_name_en,omitempty"`
	ClientName string    `json:"client_name,omitempty"`
	QuoteDate  time.Time `json:"quote_date"`

	// Baselines are the catalog prices captured when the quote was
	// opened; RestoreBaseUnitPrices rolls edited units back to these
	Baselines map[types.QuotePreset]decimal.Decimal `json:"baselines"`
	Lines     map[types.QuotePreset]*Line           `json:"lines"`

	ActivePreset types.QuotePreset `json:"active_preset"`

	// Credit is deducted from the active subtotal before tax. Negative
	// values are accepted and propagate into the totals.
	Credit decimal.Decimal `json:"credit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFromPtRow opens a quote against a personal-training row: baselines
// from the row's four catalog prices (missing slots start at zero), every
// quantity at the default, member 1v1 active.
func NewFromPtRow(row comparison.PtRow) *Quotation {
	q := newQuotation(row.NameZh, row.NameEn)
	for _, preset := range types.QuotePresets {
		baseline := decimal.Zero
		if p := row.PriceFor(preset); p != nil {
			baseline = *p
		}
		q.Baselines[preset] = baseline
		q.Lines[preset] = &Line{UnitPrice: baseline, Quantity: DefaultQuantity}
	}
	return q
}

// NewFromCycleRow opens a quote against a cycle-plan row. Cycle plans carry
// no unit prices, so baselines start at zero and the sales rep fills them
// in; quantities seed from the plan's minimum session count.
func NewFromCycleRow(row comparison.CyclePlanRow) *Quotation {
	q := newQuotation(row.Program, "")
	qty := row.MinSessionsCount
	if qty <= 0 {
		qty = DefaultQuantity
	}
	for _, preset := range types.QuotePresets {
		q.Baselines[preset] = decimal.Zero
		q.Lines[preset] = &Line{Quantity: qty}
	}
	return q
}

func newQuotation(nameZh, nameEn string) *Quotation {
	now := time.Now().UTC()
	return &Quotation{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE),
		ItemNameZh:   nameZh,
		ItemNameEn:   nameEn,
		QuoteDate:    now,
		Baselines:    make(map[types.QuotePreset]decimal.Decimal, len(types.QuotePresets)),
		Lines:        make(map[types.QuotePreset]*Line, len(types.QuotePresets)),
		ActivePreset: types.PresetMember1v1,
		Credit:       decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyPreset activates a preset, resets its quantity to the default and
// zeroes the quantities of the other three. Unit prices are untouched.
func (q *Quotation) ApplyPreset(preset types.QuotePreset) error {
	if err := q.line(preset); err != nil {
		return err
	}
	q.ActivePreset = preset
	for p, line := range q.Lines {
		if p == preset {
			line.Quantity = DefaultQuantity
		} else {
			line.Quantity = 0
		}
	}
	q.touch()
	return nil
}

// SetQuantity sets one line's quantity without switching the active preset
func (q *Quotation) SetQuantity(preset types.QuotePreset, quantity int) error {
	if err := q.line(preset); err != nil {
		return err
	}
	q.Lines[preset].Quantity = quantity
	q.touch()
	return nil
}

// SetUnitPrice overrides one line's unit price. The catalog baseline is
// kept and can be rolled back with RestoreBaseUnitPrices.
func (q *Quotation) SetUnitPrice(preset types.QuotePreset, price decimal.Decimal) error {
	if err := q.line(preset); err != nil {
		return err
	}
	q.Lines[preset].UnitPrice = price
	q.touch()
	return nil
}

// SetCredit sets the credit deducted from the active subtotal
func (q *Quotation) SetCredit(credit decimal.Decimal) {
	q.Credit = credit
	q.touch()
}

// SetClient attaches the client metadata printed on the summary
func (q *Quotation) SetClient(name string, date time.Time) {
	q.ClientName = name
	if !date.IsZero() {
		q.QuoteDate = date
	}
	q.touch()
}

// RestoreBaseUnitPrices rolls every unit price back to its catalog
// baseline. Quantities and the active preset are untouched.
func (q *Quotation) RestoreBaseUnitPrices() {
	for preset, line := range q.Lines {
		line.UnitPrice = q.Baselines[preset]
	}
	q.touch()
}

// ClearQuantities zeroes all four quantities regardless of the active preset
func (q *Quotation) ClearQuantities() {
	for _, line := range q.Lines {
		line.Quantity = 0
	}
	q.touch()
}

func (q *Quotation) line(preset types.QuotePreset) error {
	if _, ok := q.Lines[preset]; !ok {
		return ierr.NewError("unknown quote preset").
			WithHint("Preset must be one of member_1v1, non_member_1v1, member_1v2, non_member_1v2").
			WithReportableDetails(map[string]any{"preset": string(preset)}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (q *Quotation) touch() {
	q.UpdatedAt = time.Now().UTC()
}
