package comparison

import (
	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/types"
)

// CompareRow aggregates up to three price points (member, non-member,
// general) for one display row of a standard category. Rows are rebuilt
// from the catalog on every recompute and never persisted.
type CompareRow struct {
	Key     string   `json:"key"`
	ItemIDs []string `json:"item_ids"`
	NameZh  string   `json:"name_zh"`
	NameEn  string   `json:"name_en,omitempty"`

	// Mode is the display label, ModeKey the raw session mode
	Mode    string            `json:"mode,omitempty"`
	ModeKey types.SessionMode `json:"mode_key,omitempty"`

	MemberPrice    *decimal.Decimal `json:"member_price,omitempty"`
	NonMemberPrice *decimal.Decimal `json:"non_member_price,omitempty"`
	GeneralPrice   *decimal.Decimal `json:"general_price,omitempty"`

	// Member/non-member savings, present when both price points exist
	SaveAmount  *decimal.Decimal `json:"save_amount,omitempty"`
	SavePercent *decimal.Decimal `json:"save_percent,omitempty"`

	// Per-day breakdown for weekly/monthly group-class passes
	PassDays        int              `json:"pass_days,omitempty"`
	MemberPerDay    *decimal.Decimal `json:"member_per_day,omitempty"`
	NonMemberPerDay *decimal.Decimal `json:"non_member_per_day,omitempty"`

	// Membership-only decorations
	CycleLabel    string         `json:"cycle_label,omitempty"`
	ActivationFee string         `json:"activation_fee,omitempty"`
	CoreAccess    string         `json:"core_access,omitempty"`
	BonusVouchers []BonusVoucher `json:"bonus_vouchers,omitempty"`

	Benefits []string `json:"benefits,omitempty"`
}

// BonusVoucher is a voucher bundled with a membership cycle
type BonusVoucher struct {
	NameZh   string `json:"name_zh"`
	NameEn   string `json:"name_en"`
	Quantity int    `json:"quantity"`
}

// MembershipPrice is the single display price of a membership row:
// general first, then non-member, then member.
func (r CompareRow) MembershipPrice() *decimal.Decimal {
	for _, p := range []*decimal.Decimal{r.GeneralPrice, r.NonMemberPrice, r.MemberPrice} {
		if p != nil {
			return p
		}
	}
	return nil
}

// PtRow aggregates the four personal-training price points for one program,
// keyed solely by name: 1v1/1v2 × member/non-member collapse into one row.
type PtRow struct {
	Key     string   `json:"key"`
	ItemIDs []string `json:"item_ids"`
	NameZh  string   `json:"name_zh"`
	NameEn  string   `json:"name_en,omitempty"`

	Member1v1    *decimal.Decimal `json:"member_1v1,omitempty"`
	Member1v2    *decimal.Decimal `json:"member_1v2,omitempty"`
	NonMember1v1 *decimal.Decimal `json:"non_member_1v1,omitempty"`
	NonMember1v2 *decimal.Decimal `json:"non_member_1v2,omitempty"`

	Benefits []string `json:"benefits,omitempty"`
}

// BestPrice is the first available price point in preset order, used for
// sorting. nil means the row carries no price at all and sinks to the end.
func (r PtRow) BestPrice() *decimal.Decimal {
	for _, p := range []*decimal.Decimal{r.Member1v1, r.Member1v2, r.NonMember1v1, r.NonMember1v2} {
		if p != nil {
			return p
		}
	}
	return nil
}

// PriceFor returns the price point backing a quote preset, nil when the
// catalog carries none
func (r PtRow) PriceFor(preset types.QuotePreset) *decimal.Decimal {
	switch preset {
	case types.PresetMember1v1:
		return r.Member1v1
	case types.PresetNonMember1v1:
		return r.NonMember1v1
	case types.PresetMember1v2:
		return r.Member1v2
	case types.PresetNonMember1v2:
		return r.NonMember1v2
	default:
		return nil
	}
}

// CyclePlanRow is the derived display row for a fixed-duration training
// program. Follow-up and assessment counts come from a fixed lookup on the
// program length; unknown lengths render as "-".
type CyclePlanRow struct {
	Program            string `json:"program"`
	WeeklySessions     string `json:"weekly_sessions"`
	WpdFollowups       string `json:"wpd_followups"`
	AssessmentsReports string `json:"assessments_reports"`
	MinSessions        string `json:"min_sessions"`
	MembershipGift     string `json:"membership_gift"`
	ExtraBenefits      string `json:"extra_benefits"`

	// MinSessionsCount seeds the quotation quantity, 0 when unknown
	MinSessionsCount int `json:"min_sessions_count,omitempty"`
}

// StoredValueRow is the derived display row for one recharge tier
type StoredValueRow struct {
	NameZh         string           `json:"name_zh"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	GiftMembership string           `json:"gift_membership,omitempty"`
	GiftAmount     string           `json:"gift_amount,omitempty"`
	GiftTotalValue string           `json:"gift_total_value,omitempty"`
}

// StandardSection is one comparison table for a standard category
type StandardSection struct {
	Category types.PricingCategory `json:"category"`
	Label    string                `json:"label"`
	Rows     []CompareRow          `json:"rows"`

	// Membership only: one representative row per cycle tier and the
	// annual membership benefit copy
	Headline       []CompareRow `json:"headline,omitempty"`
	AnnualBenefits []string     `json:"annual_benefits,omitempty"`
}

// PtSection is the personal-training comparison table
type PtSection struct {
	Category types.PricingCategory `json:"category"`
	Label    string                `json:"label"`
	Rows     []PtRow               `json:"rows"`
}

// Sections is the full derived view of the catalog for one category filter
type Sections struct {
	StandardSections []StandardSection `json:"standard_sections"`
	PtSection        *PtSection        `json:"pt_section,omitempty"`
	CyclePlanRows    []CyclePlanRow    `json:"cycle_plan_rows,omitempty"`
	StoredValueRows  []StoredValueRow  `json:"stored_value_rows,omitempty"`
}
