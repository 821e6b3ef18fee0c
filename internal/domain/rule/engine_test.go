package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxygenfit/salesconsole/internal/types"
)

func TestMatchRechargeFallbackTiers(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		wantPlan string
	}{
		{name: "below first tier", amount: 2999, wantPlan: "未匹配档位"},
		{name: "first tier lower bound", amount: 3000, wantPlan: "储值卡3000"},
		{name: "just below second tier", amount: 5999, wantPlan: "储值卡3000"},
		{name: "second tier lower bound", amount: 6000, wantPlan: "储值卡6000"},
		{name: "just below third tier", amount: 8999, wantPlan: "储值卡6000"},
		{name: "third tier lower bound", amount: 9000, wantPlan: "储值卡9000"},
		{name: "far above third tier", amount: 50000, wantPlan: "储值卡9000"},
		{name: "zero", amount: 0, wantPlan: "未匹配档位"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchRecharge(nil, tt.amount)
			assert.Equal(t, tt.wantPlan, got.Plan)
			assert.NotEmpty(t, got.Benefits)
		})
	}
}

func TestMatchRechargeHalfOpenInterval(t *testing.T) {
	rules := []Rule{
		{
			ID:          "r1",
			TriggerType: types.TriggerRecharge,
			Trigger:     map[string]any{"amount_gte": float64(1000), "amount_lt": float64(2000)},
			Result:      map[string]any{"matched_plan": "档位A", "benefits": []any{"权益A"}},
			IsActive:    true,
		},
	}

	assert.Equal(t, "档位A", MatchRecharge(rules, 1000).Plan, "amount equal to gte matches")
	assert.Equal(t, "档位A", MatchRecharge(rules, 1999).Plan)
	assert.Equal(t, "未匹配档位", MatchRecharge(rules, 2000).Plan, "amount equal to lt falls through")
	assert.Equal(t, "未匹配档位", MatchRecharge(rules, 999).Plan)
}

func TestMatchRechargeRuleSelection(t *testing.T) {
	rules := []Rule{
		{
			ID:          "inactive",
			TriggerType: types.TriggerRecharge,
			Trigger:     map[string]any{"amount_gte": float64(0)},
			Result:      map[string]any{"matched_plan": "不该出现"},
			IsActive:    false,
		},
		{
			ID:          "wrong-trigger",
			TriggerType: types.TriggerBuySessions,
			Trigger:     map[string]any{"amount_gte": float64(0)},
			Result:      map[string]any{"matched_plan": "不该出现"},
			IsActive:    true,
		},
		{
			ID:          "first-match",
			TriggerType: types.TriggerRecharge,
			Trigger:     map[string]any{"amount_gte": float64(500)},
			Result:      map[string]any{"matched_plan": "先到先得", "benefits": []any{"b1", float64(1500)}},
			IsActive:    true,
		},
		{
			ID:          "shadowed",
			TriggerType: types.TriggerRecharge,
			Trigger:     map[string]any{"amount_gte": float64(500)},
			Result:      map[string]any{"matched_plan": "永远轮不到"},
			IsActive:    true,
		},
	}

	got := MatchRecharge(rules, 800)
	assert.Equal(t, "先到先得", got.Plan)
	assert.Equal(t, []string{"b1", "1500"}, got.Benefits, "numeric benefit entries stringify")
}

func TestMatchRechargeResultDefaults(t *testing.T) {
	rules := []Rule{
		{
			ID:          "r1",
			TriggerType: types.TriggerRecharge,
			Trigger:     map[string]any{"amount_gte": float64(100)},
			Result:      map[string]any{},
			IsActive:    true,
		},
	}

	got := MatchRecharge(rules, 100)
	assert.Equal(t, "Matched Plan", got.Plan)
	assert.Equal(t, []string{"Rule based benefits"}, got.Benefits)
}

func TestMatchRechargeUnboundedRule(t *testing.T) {
	rules := []Rule{
		{
			ID:          "catch-all",
			TriggerType: types.TriggerRecharge,
			Result:      map[string]any{"matched_plan": "全部匹配"},
			IsActive:    true,
		},
	}

	assert.Equal(t, "全部匹配", MatchRecharge(rules, 0).Plan)
	assert.Equal(t, "全部匹配", MatchRecharge(rules, 99999).Plan)
}

func TestMatchSessionsFallbackTiers(t *testing.T) {
	tests := []struct {
		name     string
		sessions float64
		wantPlan string
	}{
		{name: "below minimum", sessions: 11, wantPlan: "未匹配计划"},
		{name: "six week lower bound", sessions: 12, wantPlan: "6周计划"},
		{name: "just below twelve week", sessions: 23, wantPlan: "6周计划"},
		{name: "twelve week lower bound", sessions: 24, wantPlan: "12周计划"},
		{name: "just below twenty four week", sessions: 47, wantPlan: "12周计划"},
		{name: "twenty four week lower bound", sessions: 48, wantPlan: "24周计划"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSessions(nil, tt.sessions)
			assert.Equal(t, tt.wantPlan, got.Plan)
			assert.NotEmpty(t, got.Conditions)
		})
	}
}

func TestMatchSessionsRuleConditions(t *testing.T) {
	rules := []Rule{
		{
			ID:          "r1",
			TriggerType: types.TriggerBuySessions,
			Trigger:     map[string]any{"sessions_gte": float64(10), "sessions_lt": float64(20)},
			Result:      map[string]any{"matched_plan": "入门计划", "conditions": []any{"每周2次", "最少10节"}},
			IsActive:    true,
		},
		{
			ID:          "r2",
			TriggerType: types.TriggerBuySessions,
			Trigger:     map[string]any{"sessions_gte": float64(20)},
			Result:      map[string]any{"matched_plan": "进阶计划"},
			IsActive:    true,
		},
	}

	got := MatchSessions(rules, 15)
	assert.Equal(t, "入门计划", got.Plan)
	assert.Equal(t, "每周2次，最少10节", got.Conditions, "conditions join with full-width comma")

	got = MatchSessions(rules, 20)
	assert.Equal(t, "进阶计划", got.Plan)
	assert.Equal(t, "参考计划条件", got.Conditions, "missing conditions use the default copy")
}

func TestHasActiveCode(t *testing.T) {
	rules := []Rule{
		{ID: "r1", RuleCode: "RENEW_30D_40PCT_CREDIT", IsActive: true},
		{ID: "r2", RuleCode: "ANNUAL_PREPAY_WAIVE_ACTIVATION", IsActive: false},
	}

	assert.True(t, HasActiveCode(rules, "RENEW_30D_40PCT_CREDIT"))
	assert.False(t, HasActiveCode(rules, "ANNUAL_PREPAY_WAIVE_ACTIVATION"), "inactive rules do not light up")
	assert.False(t, HasActiveCode(rules, "UNKNOWN_CODE"))
}
