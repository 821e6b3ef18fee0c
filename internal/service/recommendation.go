package service

import (
	"context"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
)

type RecommendationService interface {
	RecommendRecharge(ctx context.Context, req *dto.RechargeRecommendationRequest) *dto.RechargeRecommendationResponse
	RecommendSessions(ctx context.Context, req *dto.SessionsRecommendationRequest) *dto.SessionsRecommendationResponse
}

type recommendationService struct {
	ServiceParams
	catalogService CatalogService
}

func NewRecommendationService(params ServiceParams, catalogService CatalogService) RecommendationService {
	return &recommendationService{ServiceParams: params, catalogService: catalogService}
}

func (s *recommendationService) RecommendRecharge(ctx context.Context, req *dto.RechargeRecommendationRequest) *dto.RechargeRecommendationResponse {
	amount := req.AmountValue()
	snapshot := s.catalogService.GetSnapshot(ctx)
	match := rule.MatchRecharge(snapshot.Rules, amount)

	s.logQuery(ctx, querylog.Entry{
		QueryText: "recharge recommendation",
		Intent:    querylog.IntentRecharge,
		Input:     map[string]any{"amount": amount},
		Output:    map[string]any{"plan": match.Plan, "benefits": match.Benefits},
	})

	return &dto.RechargeRecommendationResponse{Amount: amount, RechargeMatch: match}
}

func (s *recommendationService) RecommendSessions(ctx context.Context, req *dto.SessionsRecommendationRequest) *dto.SessionsRecommendationResponse {
	sessions := req.SessionsValue()
	snapshot := s.catalogService.GetSnapshot(ctx)
	match := rule.MatchSessions(snapshot.Rules, sessions)

	s.logQuery(ctx, querylog.Entry{
		QueryText: "sessions recommendation",
		Intent:    querylog.IntentSessions,
		Input:     map[string]any{"sessions": sessions},
		Output:    map[string]any{"plan": match.Plan, "conditions": match.Conditions},
	})

	return &dto.SessionsRecommendationResponse{Sessions: sessions, SessionMatch: match}
}

func (s *recommendationService) logQuery(ctx context.Context, entry querylog.Entry) {
	logQueryAsync(ctx, s.ServiceParams, entry)
}
