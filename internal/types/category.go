package types

// PricingCategory is the catalog category of a priced offering
type PricingCategory string

const (
	CategoryMembership       PricingCategory = "membership"
	CategoryGroupClass       PricingCategory = "group_class"
	CategoryPersonalTraining PricingCategory = "personal_training"
	CategoryAssessment       PricingCategory = "assessment"
	CategoryCyclePlan        PricingCategory = "cycle_plan"
	CategoryStoredValue      PricingCategory = "stored_value"
)

// PricingCategories lists all categories in their display order
var PricingCategories = []PricingCategory{
	CategoryMembership,
	CategoryGroupClass,
	CategoryPersonalTraining,
	CategoryAssessment,
	CategoryCyclePlan,
	CategoryStoredValue,
}

func (c PricingCategory) Validate() bool {
	for _, known := range PricingCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayLabel returns the bilingual section heading for the category
func (c PricingCategory) DisplayLabel() string {
	switch c {
	case CategoryMembership:
		return "Membership · 会员会籍"
	case CategoryGroupClass:
		return "Group Classes · 团体课程"
	case CategoryPersonalTraining:
		return "Personal Training · 私教课程"
	case CategoryAssessment:
		return "Assessments · 专项评估"
	case CategoryCyclePlan:
		return "Program Cycles · 周期计划"
	case CategoryStoredValue:
		return "Stored Value · 储值计划"
	default:
		return string(c)
	}
}

// CategoryFilter narrows section building to one category. The zero value
// (or CategoryFilterAll) keeps every category.
type CategoryFilter string

const CategoryFilterAll CategoryFilter = "all"

func (f CategoryFilter) Matches(c PricingCategory) bool {
	return f == "" || f == CategoryFilterAll || string(f) == string(c)
}

func (f CategoryFilter) Validate() bool {
	if f == "" || f == CategoryFilterAll {
		return true
	}
	return PricingCategory(f).Validate()
}

// MemberType differentiates the two parallel price points of one offering
type MemberType string

const (
	MemberTypeMember    MemberType = "member"
	MemberTypeNonMember MemberType = "non_member"
)
