package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/types"
)

// DefaultItems returns the built-in catalog the console falls back to when
// the backing store is unreachable or empty. It mirrors the studio's
// baseline price list and keeps the console fully interactive in degraded
// mode.
func DefaultItems() []Item {
	price := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	return []Item{
		{ID: "m1", Category: types.CategoryMembership, NameZh: "日卡", SessionMode: types.SessionModeSingle, Price: price(35)},
		{ID: "m2", Category: types.CategoryMembership, NameZh: "周卡", SessionMode: types.SessionModeWeeklyPass, Price: price(99)},
		{ID: "m3", Category: types.CategoryMembership, NameZh: "月卡", SessionMode: types.SessionModeMonthlyPass, Price: price(175)},
		{ID: "m4", Category: types.CategoryMembership, NameZh: "年卡（按月付）", SessionMode: types.SessionModeMonthlyPass, Price: price(99),
			Meta: map[string]any{"note": "年卡每个月支付99"}},
		{ID: "g1", Category: types.CategoryGroupClass, NameZh: "单次课程", MemberType: types.MemberTypeMember, SessionMode: types.SessionModeSingle, Price: price(20)},
		{ID: "g2", Category: types.CategoryGroupClass, NameZh: "单次课程", MemberType: types.MemberTypeNonMember, SessionMode: types.SessionModeSingle, Price: price(35)},
		{ID: "s1", Category: types.CategoryStoredValue, NameZh: "储值卡3000", Price: price(3000),
			Meta: map[string]any{"gift_membership": "1个月", "gift_amount": 300, "gift_total_value": 595}},
		{ID: "s2", Category: types.CategoryStoredValue, NameZh: "储值卡6000", Price: price(6000),
			Meta: map[string]any{"gift_membership": "6个月", "gift_amount": 600, "gift_total_value": 1314}},
		{ID: "s3", Category: types.CategoryStoredValue, NameZh: "储值卡9000", Price: price(9000),
			Meta: map[string]any{"gift_membership": "1年", "gift_amount": 1500, "gift_total_value": 3161}},
		{ID: "c1", Category: types.CategoryCyclePlan, NameZh: "6周计划",
			Meta: map[string]any{"weeks": 6, "min_sessions": 12, "sessions_per_week": "2-4"}},
		{ID: "c2", Category: types.CategoryCyclePlan, NameZh: "12周计划",
			Meta: map[string]any{"weeks": 12, "min_sessions": 24, "sessions_per_week": "2-4"}},
		{ID: "c3", Category: types.CategoryCyclePlan, NameZh: "24周计划",
			Meta: map[string]any{"weeks": 24, "min_sessions": 48, "sessions_per_week": "2-4"}},
	}
}
