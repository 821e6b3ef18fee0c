package rule

// PromotionHighlight is a marketing card shown next to the comparison
// tables. The copy is fixed; Active reflects whether the backing store
// currently carries a live rule with the same code.
type PromotionHighlight struct {
	Group      string `json:"group"`
	GroupLabel string `json:"group_label"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
	RuleCode   string `json:"rule_code"`
	Active     bool   `json:"active"`
}

// PromotionHighlights returns the highlight cards with their active state
// resolved against the given rule set
func PromotionHighlights(rules []Rule) []PromotionHighlight {
	highlights := []PromotionHighlight{
		{
			Group:      "new",
			GroupLabel: "新客优惠 / New Client",
			Title:      "Within 30 days after first trial / 首次体验课后30天内",
			Detail:     "20% of completed sessions converted to Training Credit for renewal / 上课节数的20%可转为续费抵扣积分",
			RuleCode:   "TRIAL_30D_20PCT_CREDIT",
		},
		{
			Group:      "renewal",
			GroupLabel: "续费优惠 / Renewal",
			Title:      "Renew within 30 days after trial / 体验后30天内续课",
			Detail:     "40% of completed sessions converted to Training Credit / 上课节数的40%可转为续费积分",
			RuleCode:   "RENEW_30D_40PCT_CREDIT",
		},
		{
			Group:      "referral",
			GroupLabel: "推荐优惠 / Referral",
			Title:      "Referral Program / 推荐优惠",
			Detail:     "After referee spends $1,000, both get 1-month membership / 带新客消费满$1,000，双方各赠送1个月会员",
			RuleCode:   "REFERRAL_BOTH_GET_1MONTH",
		},
		{
			Group:      "upgrade",
			GroupLabel: "升级优惠 / Upgrade",
			Title:      "Monthly to Annual Upgrade / 月卡升年卡",
			Detail:     "Paid monthly amount can be used as annual credit / 已付金额可抵扣年卡",
			RuleCode:   "MONTHLY_TO_ANNUAL_CREDIT",
		},
		{
			Group:      "upgrade",
			GroupLabel: "升级优惠 / Upgrade",
			Title:      "Annual Prepayment / 年卡一次性付清",
			Detail:     "Activation fee waived / 免激活费",
			RuleCode:   "ANNUAL_PREPAY_WAIVE_ACTIVATION",
		},
	}

	for i := range highlights {
		highlights[i].Active = HasActiveCode(rules, highlights[i].RuleCode)
	}
	return highlights
}
