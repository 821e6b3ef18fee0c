package rule

import (
	"github.com/oxygenfit/salesconsole/internal/types"
)

// Rule is a declarative trigger→result mapping maintained in the backing
// store. The trigger carries optional numeric bounds; the result carries a
// matched plan plus benefit or condition copy.
type Rule struct {
	ID string `json:"id"`

	// RuleCode cross-references promotional copy, e.g. RENEW_30D_40PCT_CREDIT
	RuleCode string `json:"rule_code"`

	TriggerType types.TriggerType `json:"trigger_type"`

	// Trigger holds optional bounds such as amount_gte, amount_lt,
	// sessions_gte, sessions_lt
	Trigger map[string]any `json:"trigger_json"`

	// Result holds matched_plan and either a benefits or a conditions list
	Result map[string]any `json:"result_json"`

	// Priority sorts ascending, lower value wins
	Priority int `json:"priority"`

	IsActive bool `json:"is_active"`
}

// Bound reads a numeric trigger bound. A missing or malformed value means
// the rule is unbounded on that side.
func (r Rule) Bound(key string) *float64 {
	if r.Trigger == nil {
		return nil
	}
	return types.AsNumber(r.Trigger[key])
}

// Contains evaluates the half-open interval [gte, lt) against a value
func (r Rule) Contains(gteKey, ltKey string, value float64) bool {
	gte := r.Bound(gteKey)
	lt := r.Bound(ltKey)
	return (gte == nil || value >= *gte) && (lt == nil || value < *lt)
}

// ResultPlan reads the matched plan name from the result payload
func (r Rule) ResultPlan() string {
	if r.Result != nil {
		if plan, ok := r.Result["matched_plan"].(string); ok && plan != "" {
			return plan
		}
	}
	return "Matched Plan"
}

// ResultStrings reads a list field from the result payload, stringifying
// loosely typed entries
func (r Rule) ResultStrings(key string) ([]string, bool) {
	if r.Result == nil {
		return nil, false
	}
	raw, ok := r.Result[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, stringify(v))
	}
	return out, true
}
