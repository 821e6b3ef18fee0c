package comparison

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/types"
)

// standardCategories render as generic comparison tables; personal
// training, cycle plans and stored value each have a bespoke shape
var standardCategories = []types.PricingCategory{
	types.CategoryMembership,
	types.CategoryGroupClass,
	types.CategoryAssessment,
}

// cycle plan follow-up and assessment counts by program length in weeks
var cycleSchedule = map[int]struct{ followups, assessments int }{
	6:  {3, 2},
	12: {6, 3},
	24: {12, 6},
}

// BuildSections derives the full comparison view from the catalog.
// Grouping is last-write-wins per (name, mode) price slot, so the store's
// fetch order decides duplicates. The result is pure and recomputed on
// every call; callers cache it per filter.
func BuildSections(items []catalog.Item, benefits map[string][]string, filter types.CategoryFilter) Sections {
	grouped := make(map[types.PricingCategory][]catalog.Item)
	for _, item := range items {
		if !item.Category.Validate() || !filter.Matches(item.Category) {
			continue
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	// collators carry internal buffers and are not safe for concurrent
	// use, so each build gets its own
	col := collate.New(language.Chinese)
	nameCmp := func(a, b string) int { return col.CompareString(a, b) }

	var out Sections
	for _, category := range standardCategories {
		if len(grouped[category]) == 0 {
			continue
		}
		out.StandardSections = append(out.StandardSections,
			buildStandardSection(category, grouped[category], benefits, nameCmp))
	}
	if pt := grouped[types.CategoryPersonalTraining]; len(pt) > 0 {
		out.PtSection = buildPtSection(pt, benefits, nameCmp)
	}
	if plans := grouped[types.CategoryCyclePlan]; len(plans) > 0 {
		out.CyclePlanRows = buildCycleRows(plans)
	}
	if stored := grouped[types.CategoryStoredValue]; len(stored) > 0 {
		out.StoredValueRows = buildStoredValueRows(stored, nameCmp)
	}
	return out
}

func buildStandardSection(category types.PricingCategory, items []catalog.Item, benefits map[string][]string, nameCmp func(x, y string) int) StandardSection {
	rowsByKey := make(map[string]*CompareRow)
	var order []string

	for _, item := range items {
		if category == types.CategoryMembership && strings.Contains(item.NameZh, types.ActivationFeeMarker) {
			continue
		}

		mode := "general"
		if item.SessionMode != "" {
			mode = string(item.SessionMode)
		}
		key := item.NameZh + "|" + mode

		row, ok := rowsByKey[key]
		if !ok {
			row = &CompareRow{
				Key:     key,
				NameZh:  item.NameZh,
				NameEn:  item.NameEn,
				ModeKey: item.SessionMode,
			}
			if item.SessionMode != "" {
				row.Mode = item.SessionMode.DisplayLabel()
			}
			rowsByKey[key] = row
			order = append(order, key)
		}
		row.ItemIDs = appendUnique(row.ItemIDs, item.ID)

		switch item.MemberType {
		case types.MemberTypeMember:
			row.MemberPrice = item.Price
		case types.MemberTypeNonMember:
			row.NonMemberPrice = item.Price
		default:
			row.GeneralPrice = item.Price
		}
	}

	policy := policyFor(category)
	rows := make([]CompareRow, 0, len(order))
	for _, key := range order {
		row := rowsByKey[key]
		row.Benefits = foldBenefits(row.ItemIDs, benefits)
		policy.Decorate(row)
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return policy.Less(rows[i], rows[j], nameCmp)
	})

	section := StandardSection{
		Category: category,
		Label:    category.DisplayLabel(),
		Rows:     rows,
	}
	if category == types.CategoryMembership {
		section.Headline = membershipHeadline(rows)
		section.AnnualBenefits = annualMembershipBenefits()
	}
	return section
}

// membershipHeadline picks one representative row per billing cycle tier,
// first seen in sorted order. VIP and Plus rows never occupy a slot.
func membershipHeadline(rows []CompareRow) []CompareRow {
	byTier := make(map[types.MembershipTier]CompareRow)
	for _, row := range rows {
		tier := types.MembershipTierOf(row.NameZh)
		if tier == types.TierNone {
			continue
		}
		if _, taken := byTier[tier]; !taken {
			byTier[tier] = row
		}
	}

	headline := make([]CompareRow, 0, len(types.MembershipTiers))
	for _, tier := range types.MembershipTiers {
		if row, ok := byTier[tier]; ok {
			headline = append(headline, row)
		}
	}
	return headline
}

func annualMembershipBenefits() []string {
	return []string{
		"首月包括一次一对一专属身体评估 / 1 Professional Personal Wellness Consultation by Program Director",
		"一份专属训练计划 / 1 Month Wellness Training Program by Program Director",
		"一次营养评估及饮食计划设计 / 1 Personal Nutrition Assessment and Planning",
		"一次团课体验 / 1 Group Training Session",
	}
}

func buildPtSection(items []catalog.Item, benefits map[string][]string, nameCmp func(x, y string) int) *PtSection {
	rowsByName := make(map[string]*PtRow)
	var order []string

	for _, item := range items {
		row, ok := rowsByName[item.NameZh]
		if !ok {
			row = &PtRow{Key: item.NameZh, NameZh: item.NameZh, NameEn: item.NameEn}
			rowsByName[item.NameZh] = row
			order = append(order, item.NameZh)
		}
		row.ItemIDs = appendUnique(row.ItemIDs, item.ID)

		switch {
		case item.MemberType == types.MemberTypeMember && item.SessionMode == types.SessionMode1v1:
			row.Member1v1 = item.Price
		case item.MemberType == types.MemberTypeMember && item.SessionMode == types.SessionMode1v2:
			row.Member1v2 = item.Price
		case item.MemberType == types.MemberTypeNonMember && item.SessionMode == types.SessionMode1v1:
			row.NonMember1v1 = item.Price
		case item.MemberType == types.MemberTypeNonMember && item.SessionMode == types.SessionMode1v2:
			row.NonMember1v2 = item.Price
		}
	}

	rows := make([]PtRow, 0, len(order))
	for _, name := range order {
		row := rowsByName[name]
		row.Benefits = foldBenefits(row.ItemIDs, benefits)
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].BestPrice(), rows[j].BestPrice()
		switch {
		case a == nil && b == nil:
			return nameCmp(rows[i].NameZh, rows[j].NameZh) < 0
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.LessThan(*b)
		default:
			return nameCmp(rows[i].NameZh, rows[j].NameZh) < 0
		}
	})

	return &PtSection{
		Category: types.CategoryPersonalTraining,
		Label:    types.CategoryPersonalTraining.DisplayLabel(),
		Rows:     rows,
	}
}

var firstIntPattern = regexp.MustCompile(`(\d+)`)

func buildCycleRows(items []catalog.Item) []CyclePlanRow {
	rows := make([]CyclePlanRow, 0, len(items))
	for _, item := range items {
		weeks := item.MetaNumber("weeks")
		minSessions := item.MetaNumber("min_sessions")
		sessionsPerWeek := item.MetaString("sessions_per_week", "2-4")

		followups, assessments := "-", "-"
		membershipGift := "-"
		if weeks != nil {
			if sched, ok := cycleSchedule[wholeInt(*weeks)]; ok {
				followups = strconv.Itoa(sched.followups)
				assessments = strconv.Itoa(sched.assessments)
			}
			membershipGift = fmt.Sprintf("%s-Week Membership / %s周会员", numString(weeks), numString(weeks))
		}

		zhPart := item.NameZh
		if !strings.Contains(zhPart, "计划") {
			zhPart = numString(weeks) + "周计划"
		}

		row := CyclePlanRow{
			Program:            fmt.Sprintf("%s / %s-Week Program", zhPart, numString(weeks)),
			WeeklySessions:     sessionsPerWeek,
			WpdFollowups:       followups,
			AssessmentsReports: assessments,
			MinSessions:        "-",
			MembershipGift:     membershipGift,
			ExtraBenefits:      "Member-rate packages / 会员价购买套餐课",
		}
		if minSessions != nil {
			row.MinSessions = numString(minSessions)
			if n := wholeInt(*minSessions); n > 0 {
				row.MinSessionsCount = n
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return cycleRank(rows[i].Program) < cycleRank(rows[j].Program)
	})
	return rows
}

// cycleRank sorts cycle rows by the first integer in the program label;
// rows without one sink to the end
func cycleRank(program string) int {
	matched := firstIntPattern.FindString(program)
	if matched == "" {
		return math.MaxInt
	}
	n, err := strconv.Atoi(matched)
	if err != nil {
		return math.MaxInt
	}
	return n
}

func buildStoredValueRows(items []catalog.Item, nameCmp func(x, y string) int) []StoredValueRow {
	rows := make([]StoredValueRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, StoredValueRow{
			NameZh:         item.NameZh,
			Amount:         item.Price,
			GiftMembership: item.MetaString("gift_membership", "-"),
			GiftAmount:     item.MetaString("gift_amount", "-"),
			GiftTotalValue: item.MetaString("gift_total_value", "-"),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Amount, rows[j].Amount
		switch {
		case a == nil && b == nil:
			return nameCmp(rows[i].NameZh, rows[j].NameZh) < 0
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.LessThan(*b)
		default:
			return nameCmp(rows[i].NameZh, rows[j].NameZh) < 0
		}
	})
	return rows
}

func foldBenefits(itemIDs []string, benefits map[string][]string) []string {
	folded := lo.FlatMap(itemIDs, func(id string, _ int) []string {
		return benefits[id]
	})
	if len(folded) == 0 {
		return nil
	}
	return lo.Uniq(folded)
}

func appendUnique(ids []string, id string) []string {
	if lo.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func numString(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func wholeInt(v float64) int {
	if v != math.Trunc(v) {
		return -1
	}
	return int(v)
}
