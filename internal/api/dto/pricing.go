package dto

import (
	"github.com/oxygenfit/salesconsole/internal/domain/comparison"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type SectionsRequest struct {
	Category types.CategoryFilter `form:"category"`
}

func (r *SectionsRequest) Validate() error {
	if !r.Category.Validate() {
		return ierr.NewError("unknown category filter").
			WithHint("Category must be all or one of the six catalog categories").
			WithReportableDetails(map[string]any{"category": string(r.Category)}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

type SectionsResponse struct {
	Sections   comparison.Sections       `json:"sections"`
	Highlights []rule.PromotionHighlight `json:"highlights"`
}
