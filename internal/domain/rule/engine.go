package rule

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/types"
)

// RechargeMatch is the recommendation for a stored-value recharge amount
type RechargeMatch struct {
	Plan     string   `json:"plan"`
	Benefits []string `json:"benefits"`
}

// SessionMatch is the recommendation for a personal-training session count
type SessionMatch struct {
	Plan       string `json:"plan"`
	Conditions string `json:"conditions"`
}

// MatchRecharge returns the stored-value plan recommendation for a recharge
// amount. Rules are evaluated in their given order (ascending priority from
// the store, ties by fetch order) and the first active recharge rule whose
// [amount_gte, amount_lt) interval contains the amount wins. Without a
// match the legacy tier table applies.
func MatchRecharge(rules []Rule, amount float64) RechargeMatch {
	for _, r := range rules {
		if !r.IsActive || r.TriggerType != types.TriggerRecharge {
			continue
		}
		if !r.Contains("amount_gte", "amount_lt", amount) {
			continue
		}
		benefits, ok := r.ResultStrings("benefits")
		if !ok {
			benefits = []string{"Rule based benefits"}
		}
		return RechargeMatch{Plan: r.ResultPlan(), Benefits: benefits}
	}

	switch {
	case amount >= 9000:
		return RechargeMatch{Plan: "储值卡9000", Benefits: []string{"赠送1年会员", "赠送金额1500", "赠送总价值3161"}}
	case amount >= 6000:
		return RechargeMatch{Plan: "储值卡6000", Benefits: []string{"赠送6个月会员", "赠送金额600", "赠送总价值1314"}}
	case amount >= 3000:
		return RechargeMatch{Plan: "储值卡3000", Benefits: []string{"赠送1个月会员", "赠送金额300", "赠送总价值595"}}
	default:
		return RechargeMatch{Plan: "未匹配档位", Benefits: []string{"建议从$3000开始"}}
	}
}

// MatchSessions returns the cycle-plan recommendation for a session count.
// Same matching discipline as MatchRecharge over [sessions_gte, sessions_lt).
func MatchSessions(rules []Rule, sessions float64) SessionMatch {
	for _, r := range rules {
		if !r.IsActive || r.TriggerType != types.TriggerBuySessions {
			continue
		}
		if !r.Contains("sessions_gte", "sessions_lt", sessions) {
			continue
		}
		conditions, ok := r.ResultStrings("conditions")
		if !ok {
			return SessionMatch{Plan: r.ResultPlan(), Conditions: "参考计划条件"}
		}
		return SessionMatch{Plan: r.ResultPlan(), Conditions: strings.Join(conditions, "，")}
	}

	switch {
	case sessions >= 48:
		return SessionMatch{Plan: "24周计划", Conditions: "每周2-4次，最少48节"}
	case sessions >= 24:
		return SessionMatch{Plan: "12周计划", Conditions: "每周2-4次，最少24节"}
	case sessions >= 12:
		return SessionMatch{Plan: "6周计划", Conditions: "每周2-4次，最少12节"}
	default:
		return SessionMatch{Plan: "未匹配计划", Conditions: "建议至少12节"}
	}
}

// HasActiveCode reports whether any rule in the set carries the given code.
// Promotion highlight cards light up when their policy code is live.
func HasActiveCode(rules []Rule, code string) bool {
	for _, r := range rules {
		if r.IsActive && r.RuleCode == code {
			return true
		}
	}
	return false
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return decimal.NewFromFloat(s).String()
	default:
		return fmt.Sprintf("%v", s)
	}
}
