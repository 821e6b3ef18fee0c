package dto

import (
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	"github.com/oxygenfit/salesconsole/internal/types"
)

// Numeric request fields are loosely typed on purpose: the console sends
// whatever the rep typed, and unparseable input coerces to zero.

type RechargeRecommendationRequest struct {
	Amount any `json:"amount"`
}

func (r *RechargeRecommendationRequest) AmountValue() float64 {
	if f := types.AsNumber(r.Amount); f != nil {
		return *f
	}
	return 0
}

type RechargeRecommendationResponse struct {
	Amount float64 `json:"amount"`
	rule.RechargeMatch
}

type SessionsRecommendationRequest struct {
	Sessions any `json:"sessions"`
}

func (r *SessionsRecommendationRequest) SessionsValue() float64 {
	if f := types.AsNumber(r.Sessions); f != nil {
		return *f
	}
	return 0
}

type SessionsRecommendationResponse struct {
	Sessions float64 `json:"sessions"`
	rule.SessionMatch
}
