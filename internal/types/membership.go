package types

import (
	"regexp"
	"strings"
)

// MembershipTier buckets a membership offering by its billing cycle,
// detected from the display name. The name is the only signal the catalog
// carries for this.
type MembershipTier int

const (
	TierNone  MembershipTier = -1
	TierDay   MembershipTier = 0
	TierWeek  MembershipTier = 1
	TierMonth MembershipTier = 2
	TierYear  MembershipTier = 3
)

// MembershipTiers lists the headline tiers in display order
var MembershipTiers = []MembershipTier{TierDay, TierWeek, TierMonth, TierYear}

var (
	dayPattern   = regexp.MustCompile(`(?i)日|day`)
	weekPattern  = regexp.MustCompile(`(?i)周|week`)
	monthPattern = regexp.MustCompile(`(?i)月|month`)
	yearPattern  = regexp.MustCompile(`(?i)年|year|annual`)
)

// MembershipSortRank orders membership rows by cycle length:
// day < week < month < year, unrecognized last.
func MembershipSortRank(nameZh string) int {
	switch {
	case dayPattern.MatchString(nameZh):
		return 0
	case weekPattern.MatchString(nameZh):
		return 1
	case monthPattern.MatchString(nameZh):
		return 2
	case yearPattern.MatchString(nameZh):
		return 3
	default:
		return 4
	}
}

// MembershipTierOf buckets a row for the headline display. VIP and Plus
// memberships are intentionally excluded from the headline slots. Year is
// checked before month so names like 年卡（按月付） land in the year tier.
func MembershipTierOf(nameZh string) MembershipTier {
	n := strings.ToLower(nameZh)
	switch {
	case strings.Contains(n, "vip") || strings.Contains(n, "plus"):
		return TierNone
	case strings.Contains(n, "日") || strings.Contains(n, "day"):
		return TierDay
	case strings.Contains(n, "周") || strings.Contains(n, "week"):
		return TierWeek
	case strings.Contains(n, "年") || strings.Contains(n, "year") || strings.Contains(n, "annual"):
		return TierYear
	case strings.Contains(n, "月") || strings.Contains(n, "month") || strings.Contains(n, "monthly"):
		return TierMonth
	default:
		return TierNone
	}
}

// MembershipCycleLabel returns the bilingual cycle label for a membership row
func MembershipCycleLabel(nameZh string) string {
	n := strings.ToLower(nameZh)
	switch {
	case strings.Contains(n, "日") || strings.Contains(n, "day"):
		return "日卡 / Day"
	case strings.Contains(n, "周") || strings.Contains(n, "week"):
		return "周卡 / Week"
	case strings.Contains(n, "月") || strings.Contains(n, "month") || strings.Contains(n, "monthly"):
		return "月卡 / Month"
	case strings.Contains(n, "年") || strings.Contains(n, "year") || strings.Contains(n, "annual"):
		return "年卡 / Annual"
	default:
		return "会籍 / Membership"
	}
}

// IsMonthlyMembership reports whether a membership name denotes a monthly cycle
func IsMonthlyMembership(nameZh string) bool {
	n := strings.ToLower(nameZh)
	return strings.Contains(n, "月") || strings.Contains(n, "month") || strings.Contains(n, "monthly")
}

// IsAnnualMembership reports whether a membership name denotes an annual cycle
func IsAnnualMembership(nameZh string) bool {
	n := strings.ToLower(nameZh)
	return strings.Contains(n, "年") || strings.Contains(n, "year") || strings.Contains(n, "annual")
}

// ActivationFeeMarker flags membership items that are activation-fee line
// items rather than memberships. They never appear in comparison rows.
const ActivationFeeMarker = "激活费"
