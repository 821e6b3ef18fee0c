package comparison

import (
	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/types"
)

// Every standard category orders and decorates its rows differently. The
// policy keeps that dispatch out of the builder loop; adding a category
// means adding a policy, not another switch arm in the builder.
type rowPolicy interface {
	Less(a, b CompareRow, nameCmp func(x, y string) int) bool
	Decorate(row *CompareRow)
}

func policyFor(category types.PricingCategory) rowPolicy {
	switch category {
	case types.CategoryMembership:
		return membershipPolicy{}
	case types.CategoryGroupClass:
		return groupClassPolicy{}
	default:
		return plainPolicy{}
	}
}

const membershipCoreAccess = "全天入场、氧吧餐饮、训练区域、体测报告 / Full access, bar & cafe, training zones, body report"

const (
	activationFeeAnnual  = "$120（年卡一次性付清可免） / $120 (Waived only with annual full payment)"
	activationFeeMonthly = "$120（需收取） / $120 (Applied)"
	activationFeeNone    = "-"
)

func membershipVouchers(qty int) []BonusVoucher {
	return []BonusVoucher{
		{NameZh: "饮品券", NameEn: "Drink Voucher", Quantity: qty},
		{NameZh: "餐券", NameEn: "Meal Voucher", Quantity: qty},
		{NameZh: "周卡券", NameEn: "Weekly Pass", Quantity: qty},
	}
}

// membershipPolicy sorts by billing cycle length and attaches the cycle
// label, activation fee terms and bundled vouchers
type membershipPolicy struct{}

func (membershipPolicy) Less(a, b CompareRow, nameCmp func(x, y string) int) bool {
	ra, rb := types.MembershipSortRank(a.NameZh), types.MembershipSortRank(b.NameZh)
	if ra != rb {
		return ra < rb
	}
	return nameCmp(a.NameZh, b.NameZh) < 0
}

func (membershipPolicy) Decorate(row *CompareRow) {
	row.CycleLabel = types.MembershipCycleLabel(row.NameZh)
	row.CoreAccess = membershipCoreAccess
	switch {
	case types.IsAnnualMembership(row.NameZh):
		row.ActivationFee = activationFeeAnnual
		row.BonusVouchers = membershipVouchers(3)
	case types.IsMonthlyMembership(row.NameZh):
		row.ActivationFee = activationFeeMonthly
		row.BonusVouchers = membershipVouchers(1)
	default:
		row.ActivationFee = activationFeeNone
	}
}

// groupClassPolicy sorts single passes before weekly and monthly ones and
// adds the per-day price breakdown
type groupClassPolicy struct{}

func (groupClassPolicy) Less(a, b CompareRow, nameCmp func(x, y string) int) bool {
	ra, rb := a.ModeKey.SortRank(), b.ModeKey.SortRank()
	if ra != rb {
		return ra < rb
	}
	return nameCmp(a.NameZh, b.NameZh) < 0
}

func (groupClassPolicy) Decorate(row *CompareRow) {
	applySavings(row)
	days := row.ModeKey.PassDays()
	if days == 0 {
		return
	}
	row.PassDays = days
	divisor := decimal.NewFromInt(int64(days))
	if row.MemberPrice != nil {
		perDay := row.MemberPrice.Div(divisor).Round(2)
		row.MemberPerDay = &perDay
	}
	if row.NonMemberPrice != nil {
		perDay := row.NonMemberPrice.Div(divisor).Round(2)
		row.NonMemberPerDay = &perDay
	}
}

// plainPolicy is the fallback: locale order by name, savings only
type plainPolicy struct{}

func (plainPolicy) Less(a, b CompareRow, nameCmp func(x, y string) int) bool {
	return nameCmp(a.NameZh, b.NameZh) < 0
}

func (plainPolicy) Decorate(row *CompareRow) {
	applySavings(row)
}

func applySavings(row *CompareRow) {
	if row.MemberPrice == nil || row.NonMemberPrice == nil {
		return
	}
	save := row.NonMemberPrice.Sub(*row.MemberPrice)
	row.SaveAmount = &save
	if !row.NonMemberPrice.IsZero() {
		pct := save.Div(*row.NonMemberPrice).Mul(decimal.NewFromInt(100)).Round(0)
		row.SavePercent = &pct
	}
}
