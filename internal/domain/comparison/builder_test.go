package comparison

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/types"
)

func price(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func membershipItems() []catalog.Item {
	return []catalog.Item{
		{ID: "m1", Category: types.CategoryMembership, NameZh: "月卡", SessionMode: types.SessionModeMonthlyPass, Price: price(168)},
		{ID: "m2", Category: types.CategoryMembership, NameZh: "年卡", Price: price(1288)},
		{ID: "m3", Category: types.CategoryMembership, NameZh: "日卡", Price: price(35)},
		{ID: "m4", Category: types.CategoryMembership, NameZh: "年卡（按月付）", SessionMode: types.SessionModeMonthlyPass, Price: price(99)},
	}
}

func TestBuildSectionsMembershipOrderAndDecoration(t *testing.T) {
	sections := BuildSections(membershipItems(), nil, types.CategoryFilterAll)
	require.Len(t, sections.StandardSections, 1)

	section := sections.StandardSections[0]
	assert.Equal(t, types.CategoryMembership, section.Category)

	names := make([]string, 0, len(section.Rows))
	for _, row := range section.Rows {
		names = append(names, row.NameZh)
	}
	require.Len(t, names, 4)
	// 年卡（按月付） ranks as a month row (month is matched before year),
	// so it shares the middle bucket with 月卡
	assert.Equal(t, "日卡", names[0], "day cycle sorts first")
	assert.Equal(t, "年卡", names[3], "pure annual cycle sorts last")
	assert.ElementsMatch(t, []string{"月卡", "年卡（按月付）"}, names[1:3])

	byName := make(map[string]CompareRow, len(section.Rows))
	for _, row := range section.Rows {
		byName[row.NameZh] = row
	}

	day := byName["日卡"]
	assert.Equal(t, "日卡 / Day", day.CycleLabel)
	assert.Equal(t, "-", day.ActivationFee)
	assert.Empty(t, day.BonusVouchers)

	monthly := byName["月卡"]
	assert.Equal(t, "月卡 / Month", monthly.CycleLabel)
	assert.Contains(t, monthly.ActivationFee, "$120（需收取）")
	require.Len(t, monthly.BonusVouchers, 3)
	assert.Equal(t, 1, monthly.BonusVouchers[0].Quantity)

	annual := byName["年卡"]
	assert.Equal(t, "年卡 / Annual", annual.CycleLabel)
	assert.Contains(t, annual.ActivationFee, "年卡一次性付清可免")
	require.Len(t, annual.BonusVouchers, 3)
	assert.Equal(t, 3, annual.BonusVouchers[0].Quantity)

	assert.NotEmpty(t, section.AnnualBenefits)
}

func TestBuildSectionsMembershipHeadline(t *testing.T) {
	items := append(membershipItems(),
		catalog.Item{ID: "m5", Category: types.CategoryMembership, NameZh: "VIP年卡", Price: price(2888)},
		catalog.Item{ID: "m6", Category: types.CategoryMembership, NameZh: "Plus月卡", Price: price(268)},
		catalog.Item{ID: "m7", Category: types.CategoryMembership, NameZh: "月卡豪华版", Price: price(188)},
	)

	sections := BuildSections(items, nil, types.CategoryFilterAll)
	require.Len(t, sections.StandardSections, 1)
	headline := sections.StandardSections[0].Headline

	seen := make(map[types.MembershipTier]int)
	for _, row := range headline {
		tier := types.MembershipTierOf(row.NameZh)
		assert.NotEqual(t, types.TierNone, tier, "VIP/Plus rows never occupy a headline slot")
		seen[tier]++
	}
	for tier, count := range seen {
		assert.Equal(t, 1, count, "tier %d picked more than once", tier)
	}

	// 月卡 sorts before 月卡豪华版, so the plain monthly row takes the slot
	for _, row := range headline {
		if types.MembershipTierOf(row.NameZh) == types.TierMonth {
			assert.Equal(t, "月卡", row.NameZh)
		}
	}
}

func TestBuildSectionsActivationFeeItemExcluded(t *testing.T) {
	items := append(membershipItems(),
		catalog.Item{ID: "m8", Category: types.CategoryMembership, NameZh: "会籍激活费", Price: price(120)},
	)

	sections := BuildSections(items, nil, types.CategoryFilterAll)
	require.Len(t, sections.StandardSections, 1)
	for _, row := range sections.StandardSections[0].Rows {
		assert.NotContains(t, row.NameZh, "激活费")
	}
}

func TestBuildSectionsGroupClassRows(t *testing.T) {
	items := []catalog.Item{
		{ID: "g1", Category: types.CategoryGroupClass, NameZh: "团课月通", MemberType: types.MemberTypeMember, SessionMode: types.SessionModeMonthlyPass, Price: price(300)},
		{ID: "g2", Category: types.CategoryGroupClass, NameZh: "团课月通", MemberType: types.MemberTypeNonMember, SessionMode: types.SessionModeMonthlyPass, Price: price(420)},
		{ID: "g3", Category: types.CategoryGroupClass, NameZh: "团课单次", MemberType: types.MemberTypeMember, SessionMode: types.SessionModeSingle, Price: price(20)},
		{ID: "g4", Category: types.CategoryGroupClass, NameZh: "团课单次", MemberType: types.MemberTypeNonMember, SessionMode: types.SessionModeSingle, Price: price(35)},
	}

	sections := BuildSections(items, nil, types.CategoryFilterAll)
	require.Len(t, sections.StandardSections, 1)
	rows := sections.StandardSections[0].Rows
	require.Len(t, rows, 2)

	assert.Equal(t, "团课单次", rows[0].NameZh, "single mode sorts before monthly pass")
	single := rows[0]
	require.NotNil(t, single.SaveAmount)
	assert.True(t, single.SaveAmount.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, single.SavePercent)
	assert.True(t, single.SavePercent.Equal(decimal.NewFromInt(43)), "save percent rounds to whole: got %s", single.SavePercent)
	assert.Nil(t, single.MemberPerDay, "single passes have no per-day breakdown")

	monthly := rows[1]
	assert.Equal(t, 30, monthly.PassDays)
	require.NotNil(t, monthly.MemberPerDay)
	assert.True(t, monthly.MemberPerDay.Equal(decimal.NewFromInt(10)))
	require.NotNil(t, monthly.NonMemberPerDay)
	assert.True(t, monthly.NonMemberPerDay.Equal(decimal.NewFromInt(14)))
}

func TestBuildSectionsLastWriteWinsOnDuplicateSlot(t *testing.T) {
	items := []catalog.Item{
		{ID: "a1", Category: types.CategoryAssessment, NameZh: "体测", Price: price(100)},
		{ID: "a2", Category: types.CategoryAssessment, NameZh: "体测", Price: price(150)},
	}

	sections := BuildSections(items, nil, types.CategoryFilterAll)
	require.Len(t, sections.StandardSections, 1)
	rows := sections.StandardSections[0].Rows
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].GeneralPrice)
	assert.True(t, rows[0].GeneralPrice.Equal(decimal.NewFromInt(150)), "later item overwrites the slot")
	assert.Equal(t, []string{"a1", "a2"}, rows[0].ItemIDs, "both source items stay referenced")
}

func TestBuildSectionsPtRows(t *testing.T) {
	items := []catalog.Item{
		{ID: "p1", Category: types.CategoryPersonalTraining, NameZh: "体型重塑", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v1, Price: price(120)},
		{ID: "p2", Category: types.CategoryPersonalTraining, NameZh: "体型重塑", MemberType: types.MemberTypeNonMember, SessionMode: types.SessionMode1v1, Price: price(150)},
		{ID: "p3", Category: types.CategoryPersonalTraining, NameZh: "体型重塑", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v2, Price: price(90)},
		{ID: "p4", Category: types.CategoryPersonalTraining, NameZh: "基础力量训练", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v1, Price: price(100)},
		{ID: "p5", Category: types.CategoryPersonalTraining, NameZh: "无价计划"},
	}

	sections := BuildSections(items, nil, types.CategoryFilterAll)
	require.NotNil(t, sections.PtSection)
	rows := sections.PtSection.Rows
	require.Len(t, rows, 3)

	assert.Equal(t, "基础力量训练", rows[0].NameZh, "cheapest best price first")
	assert.Equal(t, "体型重塑", rows[1].NameZh)
	assert.Equal(t, "无价计划", rows[2].NameZh, "priceless rows sink to the end")

	reshape := rows[1]
	assert.Equal(t, []string{"p1", "p2", "p3"}, reshape.ItemIDs)
	require.NotNil(t, reshape.Member1v1)
	assert.True(t, reshape.Member1v1.Equal(decimal.NewFromInt(120)))
	require.NotNil(t, reshape.Member1v2)
	assert.True(t, reshape.Member1v2.Equal(decimal.NewFromInt(90)))
	assert.Nil(t, reshape.NonMember1v2)
}

func TestBuildSectionsCycleRows(t *testing.T) {
	items := []catalog.Item{
		{ID: "c2", Category: types.CategoryCyclePlan, NameZh: "12周计划", Meta: map[string]any{"weeks": float64(12), "min_sessions": float64(24)}},
		{ID: "c1", Category: types.CategoryCyclePlan, NameZh: "6周计划", Meta: map[string]any{"weeks": float64(6), "min_sessions": float64(12)}},
		{ID: "c3", Category: types.CategoryCyclePlan, NameZh: "24周计划", Meta: map[string]any{"weeks": float64(24), "min_sessions": float64(48), "sessions_per_week": "3-4"}},
		{ID: "c4", Category: types.CategoryCyclePlan, NameZh: "特训营", Meta: map[string]any{}},
	}

	sections := BuildSections(items, nil, types.CategoryFilterAll)
	rows := sections.CyclePlanRows
	require.Len(t, rows, 4)

	assert.Equal(t, "6周计划 / 6-Week Program", rows[0].Program)
	assert.Equal(t, "3", rows[0].WpdFollowups)
	assert.Equal(t, "2", rows[0].AssessmentsReports)
	assert.Equal(t, "12", rows[0].MinSessions)
	assert.Equal(t, 12, rows[0].MinSessionsCount)
	assert.Equal(t, "2-4", rows[0].WeeklySessions, "missing sessions_per_week defaults")
	assert.Equal(t, "6-Week Membership / 6周会员", rows[0].MembershipGift)

	assert.Equal(t, "12周计划 / 12-Week Program", rows[1].Program)
	assert.Equal(t, "6", rows[1].WpdFollowups)

	assert.Equal(t, "24周计划 / 24-Week Program", rows[2].Program)
	assert.Equal(t, "3-4", rows[2].WeeklySessions)
	assert.Equal(t, "12", rows[2].WpdFollowups)
	assert.Equal(t, "6", rows[2].AssessmentsReports)

	last := rows[3]
	assert.Equal(t, "-周计划 / --Week Program", last.Program, "weekless plans render placeholder labels")
	assert.Equal(t, "-", last.WpdFollowups)
	assert.Equal(t, "-", last.MinSessions)
	assert.Equal(t, "-", last.MembershipGift)
}

func TestBuildSectionsStoredValueRows(t *testing.T) {
	items := []catalog.Item{
		{ID: "s2", Category: types.CategoryStoredValue, NameZh: "储值卡6000", Price: price(6000), Meta: map[string]any{"gift_membership": "6个月", "gift_amount": float64(600), "gift_total_value": float64(1314)}},
		{ID: "s1", Category: types.CategoryStoredValue, NameZh: "储值卡3000", Price: price(3000), Meta: map[string]any{"gift_membership": "1个月", "gift_amount": float64(300), "gift_total_value": float64(595)}},
	}

	sections := BuildSections(items, nil, types.CategoryFilterAll)
	rows := sections.StoredValueRows
	require.Len(t, rows, 2)

	assert.Equal(t, "储值卡3000", rows[0].NameZh, "tiers sort by amount")
	assert.Equal(t, "1个月", rows[0].GiftMembership)
	assert.Equal(t, "300", rows[0].GiftAmount)
	assert.Equal(t, "595", rows[0].GiftTotalValue)
}

func TestBuildSectionsCategoryFilter(t *testing.T) {
	items := append(membershipItems(),
		catalog.Item{ID: "p1", Category: types.CategoryPersonalTraining, NameZh: "体型重塑", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v1, Price: price(120)},
	)

	sections := BuildSections(items, nil, types.CategoryFilter("personal_training"))
	assert.Empty(t, sections.StandardSections)
	require.NotNil(t, sections.PtSection)
	assert.Len(t, sections.PtSection.Rows, 1)

	sections = BuildSections(items, nil, types.CategoryFilter("membership"))
	assert.Len(t, sections.StandardSections, 1)
	assert.Nil(t, sections.PtSection)
}

func TestBuildSectionsBenefitsFold(t *testing.T) {
	items := []catalog.Item{
		{ID: "g1", Category: types.CategoryGroupClass, NameZh: "团课单次", MemberType: types.MemberTypeMember, SessionMode: types.SessionModeSingle, Price: price(20)},
		{ID: "g2", Category: types.CategoryGroupClass, NameZh: "团课单次", MemberType: types.MemberTypeNonMember, SessionMode: types.SessionModeSingle, Price: price(35)},
	}
	benefits := map[string][]string{
		"g1": {"免费毛巾", "储物柜"},
		"g2": {"储物柜", "饮品折扣"},
	}

	sections := BuildSections(items, benefits, types.CategoryFilterAll)
	require.Len(t, sections.StandardSections, 1)
	require.Len(t, sections.StandardSections[0].Rows, 1)
	assert.Equal(t, []string{"免费毛巾", "储物柜", "饮品折扣"}, sections.StandardSections[0].Rows[0].Benefits)
}

func TestBuildSectionsIdempotent(t *testing.T) {
	items := append(membershipItems(),
		catalog.Item{ID: "p1", Category: types.CategoryPersonalTraining, NameZh: "体型重塑", MemberType: types.MemberTypeMember, SessionMode: types.SessionMode1v1, Price: price(120)},
		catalog.Item{ID: "c1", Category: types.CategoryCyclePlan, NameZh: "6周计划", Meta: map[string]any{"weeks": float64(6), "min_sessions": float64(12)}},
	)

	first := BuildSections(items, nil, types.CategoryFilterAll)
	second := BuildSections(items, nil, types.CategoryFilterAll)
	assert.Equal(t, first, second)
}
