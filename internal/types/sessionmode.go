package types

// SessionMode is the delivery format of a priced offering
type SessionMode string

const (
	SessionMode1v1         SessionMode = "1v1"
	SessionMode1v2         SessionMode = "1v2"
	SessionModeSingle      SessionMode = "single"
	SessionModeWeeklyPass  SessionMode = "weekly_pass"
	SessionModeMonthlyPass SessionMode = "monthly_pass"
)

// DisplayLabel returns the bilingual label used on comparison rows
func (m SessionMode) DisplayLabel() string {
	switch m {
	case SessionModeSingle:
		return "Single / 单次"
	case SessionModeWeeklyPass:
		return "Weekly / 周通"
	case SessionModeMonthlyPass:
		return "Monthly / 月通"
	case SessionMode1v1:
		return "1v1"
	case SessionMode1v2:
		return "1v2"
	default:
		return string(m)
	}
}

// SortRank orders group-class rows: single first, then weekly and monthly
// passes. Unrecognized modes sink to the bottom.
func (m SessionMode) SortRank() int {
	switch m {
	case SessionModeSingle:
		return 0
	case SessionModeWeeklyPass:
		return 1
	case SessionModeMonthlyPass:
		return 2
	default:
		return 99
	}
}

// PassDays returns the pass duration in days for per-day price breakdowns,
// or 0 when the mode has no duration.
func (m SessionMode) PassDays() int {
	switch m {
	case SessionModeWeeklyPass:
		return 7
	case SessionModeMonthlyPass:
		return 30
	default:
		return 0
	}
}
