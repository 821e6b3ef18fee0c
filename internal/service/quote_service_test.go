package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/testutil"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type QuoteServiceSuite struct {
	testutil.BaseServiceTestSuite
	service QuoteService
}

func TestQuoteService(t *testing.T) {
	suite.Run(t, new(QuoteServiceSuite))
}

func (s *QuoteServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		CatalogRepo:  s.GetStores().CatalogRepo,
		RuleRepo:     s.GetStores().RuleRepo,
		QueryLogRepo: s.GetStores().QueryLogRepo,
		AuthProvider: testutil.NewFakeAuthProvider(),
	}
	s.service = NewQuoteService(params, NewCatalogService(params))
	s.seedCatalog()
}

func (s *QuoteServiceSuite) seedCatalog() {
	member1v1 := decimal.NewFromInt(500)
	member1v2 := decimal.NewFromInt(350)
	nonMember1v1 := decimal.NewFromInt(650)
	s.GetStores().CatalogRepo.(*testutil.InMemoryCatalogStore).SetItems([]catalog.Item{
		{ID: "pt-1", Category: types.CategoryPersonalTraining, NameZh: "私教体能课", NameEn: "PT Conditioning", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v1, Price: &member1v1},
		{ID: "pt-2", Category: types.CategoryPersonalTraining, NameZh: "私教体能课", NameEn: "PT Conditioning", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v2, Price: &member1v2},
		{ID: "pt-3", Category: types.CategoryPersonalTraining, NameZh: "私教体能课", NameEn: "PT Conditioning", MemberType: types.MemberTypeNonMember, SessionMode: types.SessionMode1v1, Price: &nonMember1v1},
		{ID: "cy-1", Category: types.CategoryCyclePlan, NameZh: "12周计划", Meta: map[string]any{"weeks": float64(12), "min_sessions": float64(24)}},
	})
}

func (s *QuoteServiceSuite) openPtQuote() *dto.QuoteResponse {
	resp, err := s.service.Create(s.GetContext(), &dto.CreateQuoteRequest{
		Source:     types.CategoryPersonalTraining,
		RowKey:     "私教体能课",
		ClientName: "王女士",
		QuoteDate:  "2026-03-01",
	})
	s.Require().NoError(err)
	return resp
}

func (s *QuoteServiceSuite) TestCreateFromPtRow() {
	resp := s.openPtQuote()

	s.NotEmpty(resp.ID)
	s.Equal("私教体能课", resp.ItemNameZh)
	s.Equal("王女士", resp.ClientName)
	s.Equal("2026-03-01", resp.QuoteDate)
	s.Equal(types.PresetMember1v1, resp.ActivePreset)
	s.Len(resp.Lines, 4)

	for _, line := range resp.Lines {
		s.Equal(12, line.Quantity, "preset %s", line.Preset)
	}

	// 500 * 12 = 6000, tax 780, total 6780
	s.True(resp.Totals.Subtotal.Equal(decimal.NewFromInt(6000)))
	s.True(resp.Totals.Tax.Equal(decimal.NewFromInt(780)))
	s.True(resp.Totals.Total.Equal(decimal.NewFromInt(6780)))
}

func (s *QuoteServiceSuite) TestCreateFromCycleRow() {
	resp, err := s.service.Create(s.GetContext(), &dto.CreateQuoteRequest{
		Source: types.CategoryCyclePlan,
		RowKey: "12周计划 / 12-Week Program",
	})
	s.Require().NoError(err)

	s.Equal("12周计划 / 12-Week Program", resp.ItemNameZh)
	for _, line := range resp.Lines {
		s.Equal(24, line.Quantity)
		s.True(line.UnitPrice.IsZero())
	}
}

func (s *QuoteServiceSuite) TestCreateUnknownRow() {
	_, err := s.service.Create(s.GetContext(), &dto.CreateQuoteRequest{
		Source: types.CategoryPersonalTraining,
		RowKey: "不存在的课程",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *QuoteServiceSuite) TestCreateRejectsNonQuotableSource() {
	_, err := s.service.Create(s.GetContext(), &dto.CreateQuoteRequest{
		Source: types.CategoryMembership,
		RowKey: "月卡",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *QuoteServiceSuite) TestGetUnknownID() {
	_, err := s.service.Get(s.GetContext(), "quote_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *QuoteServiceSuite) TestApplyPresetZeroesOtherLines() {
	created := s.openPtQuote()

	resp, err := s.service.ApplyPreset(s.GetContext(), created.ID, &dto.QuotePresetRequest{
		Preset: types.PresetNonMember1v1,
	})
	s.Require().NoError(err)

	s.Equal(types.PresetNonMember1v1, resp.ActivePreset)
	for _, line := range resp.Lines {
		if line.Preset == types.PresetNonMember1v1 {
			s.Equal(12, line.Quantity)
		} else {
			s.Zero(line.Quantity)
		}
	}
	// 650 * 12 = 7800
	s.True(resp.Totals.Subtotal.Equal(decimal.NewFromInt(7800)))
}

func (s *QuoteServiceSuite) TestSetLineAndCredit() {
	created := s.openPtQuote()

	resp, err := s.service.SetLine(s.GetContext(), created.ID, &dto.QuoteLineRequest{
		Preset:    types.PresetMember1v1,
		UnitPrice: "480",
		Quantity:  10,
	})
	s.Require().NoError(err)
	s.True(resp.Totals.Subtotal.Equal(decimal.NewFromInt(4800)))

	resp, err = s.service.SetCredit(s.GetContext(), created.ID, &dto.QuoteCreditRequest{Credit: 800})
	s.Require().NoError(err)
	s.True(resp.Totals.AfterCredit.Equal(decimal.NewFromInt(4000)))
	s.True(resp.Totals.Tax.Equal(decimal.NewFromInt(520)))
	s.True(resp.Totals.Total.Equal(decimal.NewFromInt(4520)))
}

func (s *QuoteServiceSuite) TestRestoreBasePricesKeepsQuantities() {
	created := s.openPtQuote()

	_, err := s.service.SetLine(s.GetContext(), created.ID, &dto.QuoteLineRequest{
		Preset:    types.PresetMember1v1,
		UnitPrice: 999,
		Quantity:  7,
	})
	s.Require().NoError(err)

	resp, err := s.service.RestoreBasePrices(s.GetContext(), created.ID)
	s.Require().NoError(err)

	for _, line := range resp.Lines {
		if line.Preset == types.PresetMember1v1 {
			s.True(line.UnitPrice.Equal(decimal.NewFromInt(500)))
			s.Equal(7, line.Quantity)
		}
	}
}

func (s *QuoteServiceSuite) TestClearQuantities() {
	created := s.openPtQuote()

	resp, err := s.service.ClearQuantities(s.GetContext(), created.ID)
	s.Require().NoError(err)

	for _, line := range resp.Lines {
		s.Zero(line.Quantity)
	}
	s.True(resp.Totals.Total.IsZero())
}

func (s *QuoteServiceSuite) TestEditsSurviveRefetch() {
	created := s.openPtQuote()

	_, err := s.service.SetCredit(s.GetContext(), created.ID, &dto.QuoteCreditRequest{Credit: 300})
	s.Require().NoError(err)

	resp, err := s.service.Get(s.GetContext(), created.ID)
	s.Require().NoError(err)
	s.True(resp.Credit.Equal(decimal.NewFromInt(300)))
}
