package quote

import (
	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/types"
)

// Totals are the derived figures for the active preset. Only the active
// line contributes: subtotal = unit × qty, credit is deducted and clamped
// at zero, tax applies to the post-credit amount.
type Totals struct {
	Preset      types.QuotePreset `json:"preset"`
	PlanLabel   string            `json:"plan_label"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	Quantity    int               `json:"quantity"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	Credit      decimal.Decimal   `json:"credit"`
	AfterCredit decimal.Decimal   `json:"after_credit"`
	Tax         decimal.Decimal   `json:"tax"`
	Total       decimal.Decimal   `json:"total"`
}

// AggregateTotals sum all four lines, split by member bucket, before any
// credit. The calculator footer shows these alongside the active totals.
type AggregateTotals struct {
	LineAmounts    map[types.QuotePreset]decimal.Decimal `json:"line_amounts"`
	MemberTotal    decimal.Decimal                       `json:"member_total"`
	NonMemberTotal decimal.Decimal                       `json:"non_member_total"`
	GrandTotal     decimal.Decimal                       `json:"grand_total"`
	Tax            decimal.Decimal                       `json:"tax"`
	TotalWithTax   decimal.Decimal                       `json:"total_with_tax"`
}

// Totals computes the active-preset figures
func (q *Quotation) Totals() Totals {
	line := q.Lines[q.ActivePreset]
	if line == nil {
		line = &Line{}
	}

	subtotal := line.Amount()
	afterCredit := subtotal.Sub(q.Credit)
	if afterCredit.IsNegative() {
		afterCredit = decimal.Zero
	}
	tax := afterCredit.Mul(TaxRate).Round(2)

	return Totals{
		Preset:      q.ActivePreset,
		PlanLabel:   q.ActivePreset.DisplayLabel(),
		UnitPrice:   line.UnitPrice,
		Quantity:    line.Quantity,
		Subtotal:    subtotal,
		Credit:      q.Credit,
		AfterCredit: afterCredit,
		Tax:         tax,
		Total:       afterCredit.Add(tax),
	}
}

// Aggregate computes the all-lines figures
func (q *Quotation) Aggregate() AggregateTotals {
	out := AggregateTotals{
		LineAmounts:    make(map[types.QuotePreset]decimal.Decimal, len(types.QuotePresets)),
		MemberTotal:    decimal.Zero,
		NonMemberTotal: decimal.Zero,
	}
	for _, preset := range types.QuotePresets {
		line := q.Lines[preset]
		if line == nil {
			out.LineAmounts[preset] = decimal.Zero
			continue
		}
		amount := line.Amount()
		out.LineAmounts[preset] = amount
		if preset.MemberType() == types.MemberTypeMember {
			out.MemberTotal = out.MemberTotal.Add(amount)
		} else {
			out.NonMemberTotal = out.NonMemberTotal.Add(amount)
		}
	}
	out.GrandTotal = out.MemberTotal.Add(out.NonMemberTotal)
	out.Tax = out.GrandTotal.Mul(TaxRate).Round(2)
	out.TotalWithTax = out.GrandTotal.Add(out.Tax)
	return out
}
