package types

// QuotePreset is one of the four member-status × session-mode combinations
// selectable in the quotation calculator
type QuotePreset string

const (
	PresetMember1v1    QuotePreset = "member_1v1"
	PresetNonMember1v1 QuotePreset = "non_member_1v1"
	PresetMember1v2    QuotePreset = "member_1v2"
	PresetNonMember1v2 QuotePreset = "non_member_1v2"
)

// QuotePresets lists the presets in calculator line order
var QuotePresets = []QuotePreset{
	PresetMember1v1,
	PresetNonMember1v1,
	PresetMember1v2,
	PresetNonMember1v2,
}

func (p QuotePreset) Validate() bool {
	for _, known := range QuotePresets {
		if p == known {
			return true
		}
	}
	return false
}

// DisplayLabel returns the bilingual plan label shown on the active quote
func (p QuotePreset) DisplayLabel() string {
	switch p {
	case PresetMember1v1:
		return "会员 1v1 / Member 1v1"
	case PresetNonMember1v1:
		return "非会员 1v1 / Non-member 1v1"
	case PresetMember1v2:
		return "会员 1v2 / Member 1v2"
	case PresetNonMember1v2:
		return "非会员 1v2 / Non-member 1v2"
	default:
		return string(p)
	}
}

// MemberType returns the member bucket half of the preset
func (p QuotePreset) MemberType() MemberType {
	switch p {
	case PresetMember1v1, PresetMember1v2:
		return MemberTypeMember
	default:
		return MemberTypeNonMember
	}
}

// SessionMode returns the session-mode half of the preset
func (p QuotePreset) SessionMode() SessionMode {
	switch p {
	case PresetMember1v1, PresetNonMember1v1:
		return SessionMode1v1
	default:
		return SessionMode1v2
	}
}
