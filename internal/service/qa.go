package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	"github.com/oxygenfit/salesconsole/internal/domain/querylog"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
)

// The Q&A box is two regex checks, not NLU: a number plus a recharge word
// answers from the recharge rules, a number plus a session word answers
// from the session rules, anything else returns the usage hint.
var (
	digitsPattern   = regexp.MustCompile(`\d+`)
	rechargePattern = regexp.MustCompile(`充|充值|储值|recharge`)
	sessionsPattern = regexp.MustCompile(`课|节|session`)
)

const qaUsageHint = "示例：冲6000有什么权益？ / What are the benefits for $6000 recharge?"

type QAService interface {
	Answer(ctx context.Context, req *dto.QARequest) (*dto.QAResponse, error)
}

type qaService struct {
	ServiceParams
	catalogService CatalogService
}

func NewQAService(params ServiceParams, catalogService CatalogService) QAService {
	return &qaService{ServiceParams: params, catalogService: catalogService}
}

func (s *qaService) Answer(ctx context.Context, req *dto.QARequest) (*dto.QAResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	question := req.Question
	number := firstNumber(question)

	resp := &dto.QAResponse{Question: question, Intent: querylog.IntentQA, Answer: qaUsageHint}
	switch {
	case number != nil && rechargePattern.MatchString(question):
		snapshot := s.catalogService.GetSnapshot(ctx)
		match := rule.MatchRecharge(snapshot.Rules, *number)
		resp.Intent = querylog.IntentRecharge
		resp.Answer = fmt.Sprintf("匹配方案：%s。权益：%s", match.Plan, strings.Join(match.Benefits, "、"))
	case number != nil && sessionsPattern.MatchString(question):
		snapshot := s.catalogService.GetSnapshot(ctx)
		match := rule.MatchSessions(snapshot.Rules, *number)
		resp.Intent = querylog.IntentSessions
		resp.Answer = fmt.Sprintf("匹配计划：%s。条件：%s", match.Plan, match.Conditions)
	}

	s.logQuery(ctx, question, resp)
	return resp, nil
}

func firstNumber(question string) *float64 {
	matched := digitsPattern.FindString(question)
	if matched == "" {
		return nil
	}
	var n float64
	if _, err := fmt.Sscanf(matched, "%f", &n); err != nil {
		return nil
	}
	return &n
}

func (s *qaService) logQuery(ctx context.Context, question string, resp *dto.QAResponse) {
	entry := querylog.Entry{
		QueryText: question,
		Intent:    resp.Intent,
		Input:     map[string]any{"question": question},
		Output:    map[string]any{"answer": resp.Answer},
	}
	logQueryAsync(ctx, s.ServiceParams, entry)
}
