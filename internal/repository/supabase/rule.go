package supabase

import (
	"context"
	"sort"

	supa "github.com/nedpals/supabase-go"

	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type ruleRepository struct {
	client *supa.Client
	log    *logger.Logger
}

func NewRuleRepository(client *supa.Client, log *logger.Logger) rule.Repository {
	return &ruleRepository{client: client, log: log}
}

type ruleRow struct {
	ID          string         `json:"id"`
	RuleCode    string         `json:"rule_code"`
	TriggerType string         `json:"trigger_type"`
	TriggerJSON map[string]any `json:"trigger_json"`
	ResultJSON  map[string]any `json:"result_json"`
	Priority    int            `json:"priority"`
	IsActive    bool           `json:"is_active"`
}

func (r *ruleRepository) ListRules(ctx context.Context) ([]rule.Rule, error) {
	var rows []ruleRow
	err := r.client.DB.From("pricing_rules").
		Select("id", "rule_code", "trigger_type", "trigger_json", "result_json", "priority", "is_active").
		Eq("is_active", "true").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch pricing rules").
			Mark(ierr.ErrDatabase)
	}

	// ascending priority, ties keep fetch order
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Priority < rows[j].Priority })

	rules := make([]rule.Rule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, rule.Rule{
			ID:          row.ID,
			RuleCode:    row.RuleCode,
			TriggerType: types.TriggerType(row.TriggerType),
			Trigger:     row.TriggerJSON,
			Result:      row.ResultJSON,
			Priority:    row.Priority,
			IsActive:    row.IsActive,
		})
	}

	r.log.Debugw("fetched pricing rules", "count", len(rules))
	return rules, nil
}
