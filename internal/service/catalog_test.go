package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/testutil"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCatalogService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		CatalogRepo:  s.GetStores().CatalogRepo,
		RuleRepo:     s.GetStores().RuleRepo,
		QueryLogRepo: s.GetStores().QueryLogRepo,
		AuthProvider: testutil.NewFakeAuthProvider(),
	})
}

func (s *CatalogServiceSuite) seedItems(items ...catalog.Item) {
	s.GetStores().CatalogRepo.(*testutil.InMemoryCatalogStore).SetItems(items)
}

func (s *CatalogServiceSuite) TestGetSnapshotReturnsStoreData() {
	price := decimal.NewFromInt(1280)
	s.seedItems(catalog.Item{
		ID:       "item-1",
		Category: types.CategoryMembership,
		NameZh:   "月卡",
		NameEn:   "Monthly Pass",
		Price:    &price,
	})

	snapshot := s.service.GetSnapshot(s.GetContext())

	s.False(snapshot.Degraded)
	s.Len(snapshot.Items, 1)
	s.Equal("月卡", snapshot.Items[0].NameZh)
}

func (s *CatalogServiceSuite) TestGetSnapshotFallsBackWhenStoreFails() {
	s.GetStores().CatalogRepo.(*testutil.InMemoryCatalogStore).FailNext()

	snapshot := s.service.GetSnapshot(s.GetContext())

	s.True(snapshot.Degraded)
	s.Empty(snapshot.Rules)
	s.Empty(snapshot.Benefits)
	s.Equal(catalog.DefaultItems(), snapshot.Items)
}

func (s *CatalogServiceSuite) TestGetSnapshotIsCached() {
	price := decimal.NewFromInt(1280)
	s.seedItems(catalog.Item{ID: "item-1", Category: types.CategoryMembership, NameZh: "月卡", Price: &price})

	first := s.service.GetSnapshot(s.GetContext())
	s.Len(first.Items, 1)

	// store changes are invisible until the snapshot is invalidated
	s.seedItems()
	second := s.service.GetSnapshot(s.GetContext())
	s.Len(second.Items, 1)

	s.service.Invalidate(s.GetContext())
	third := s.service.GetSnapshot(s.GetContext())
	s.Empty(third.Items)
}

func (s *CatalogServiceSuite) TestGetSectionsRejectsUnknownCategory() {
	_, err := s.service.GetSections(s.GetContext(), &dto.SectionsRequest{Category: "bogus"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CatalogServiceSuite) TestGetSectionsEmptyFilterKeepsEveryCategory() {
	member := decimal.NewFromInt(500)
	weeks := float64(6)
	s.seedItems(
		catalog.Item{ID: "pt-1", Category: types.CategoryPersonalTraining, NameZh: "私教课", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v1, Price: &member},
		catalog.Item{ID: "cy-1", Category: types.CategoryCyclePlan, NameZh: "6周计划", Meta: map[string]any{"weeks": weeks, "min_sessions": float64(12)}},
	)

	resp, err := s.service.GetSections(s.GetContext(), &dto.SectionsRequest{})
	s.NoError(err)
	s.NotNil(resp.Sections.PtSection)
	s.Len(resp.Sections.CyclePlanRows, 1)
	s.Len(resp.Highlights, 5)
}

func (s *CatalogServiceSuite) TestGetSectionsHighlightsLightUpFromRuleCodes() {
	s.GetStores().RuleRepo.(*testutil.InMemoryRuleStore).SetRules([]rule.Rule{
		{ID: "r-1", RuleCode: "ANNUAL_PREPAY_WAIVE_ACTIVATION", TriggerType: types.TriggerGeneric, IsActive: true},
	})

	resp, err := s.service.GetSections(s.GetContext(), &dto.SectionsRequest{Category: types.CategoryFilter(types.CategoryMembership)})
	s.NoError(err)

	active := lo.Filter(resp.Highlights, func(h rule.PromotionHighlight, _ int) bool { return h.Active })
	s.Len(active, 1)
	s.Equal("ANNUAL_PREPAY_WAIVE_ACTIVATION", active[0].RuleCode)
}
