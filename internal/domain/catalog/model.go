package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/types"
)

// Item is a single priced SKU in the studio catalog. Items are created and
// edited in the backing store; the console only ever reads them.
//
// Within a category, items sharing (NameZh, SessionMode) are the same
// offering priced per member type; the comparison builder folds them into
// one row.
type Item struct {
	// ID uuid identifier for the catalog item
	ID string `json:"id"`

	// Category buckets the item into one of the six catalog sections
	Category types.PricingCategory `json:"category"`

	// NameZh is the required display name, also the grouping and sort key
	NameZh string `json:"name_zh"`

	// NameEn is the optional English display name
	NameEn string `json:"name_en,omitempty"`

	// MemberType is empty for offerings priced the same for everyone
	MemberType types.MemberType `json:"member_type,omitempty"`

	// SessionMode is the delivery format, empty for mode-less items
	SessionMode types.SessionMode `json:"session_mode,omitempty"`

	// Price in main currency units, nil when the item carries no price
	// (e.g. cycle plans priced through their sessions)
	Price *decimal.Decimal `json:"price,omitempty"`

	// Meta is an open map of auxiliary fields, e.g. weeks, min_sessions,
	// sessions_per_week, gift_amount
	Meta map[string]any `json:"meta,omitempty"`
}

// Benefit is a free-text benefit attached to a catalog item. Multiple
// benefits per item are concatenated de-duplicated, order preserving.
type Benefit struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	BenefitType string `json:"benefit_type,omitempty"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// MetaNumber reads a numeric meta field, nil when absent or malformed
func (i Item) MetaNumber(key string) *float64 {
	if i.Meta == nil {
		return nil
	}
	return types.AsNumber(i.Meta[key])
}

// MetaString reads a string meta field with a fallback
func (i Item) MetaString(key, fallback string) string {
	if i.Meta != nil {
		if s, ok := i.Meta[key].(string); ok && s != "" {
			return s
		}
		if n := types.AsNumber(i.Meta[key]); n != nil {
			d := decimal.NewFromFloat(*n)
			return d.String()
		}
	}
	return fallback
}

// BenefitsByItem folds benefits into per-item description lists, keeping
// the fetch order and dropping duplicate descriptions
func BenefitsByItem(benefits []Benefit) map[string][]string {
	byItem := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for _, b := range benefits {
		if b.Description == "" {
			continue
		}
		if seen[b.ItemID] == nil {
			seen[b.ItemID] = make(map[string]struct{})
		}
		if _, dup := seen[b.ItemID][b.Description]; dup {
			continue
		}
		seen[b.ItemID][b.Description] = struct{}{}
		byItem[b.ItemID] = append(byItem[b.ItemID], b.Description)
	}
	return byItem
}
