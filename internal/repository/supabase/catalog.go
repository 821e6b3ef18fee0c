package supabase

import (
	"context"
	"sort"

	supa "github.com/nedpals/supabase-go"
	"github.com/shopspring/decimal"

	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/logger"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type catalogRepository struct {
	client *supa.Client
	log    *logger.Logger
}

func NewCatalogRepository(client *supa.Client, log *logger.Logger) catalog.Repository {
	return &catalogRepository{client: client, log: log}
}

// itemRow mirrors the pricing_items columns. The store's sort_order only
// exists to keep fetch order stable; it never reaches the domain model.
type itemRow struct {
	ID          string         `json:"id"`
	Category    string         `json:"category"`
	NameZh      string         `json:"name_zh"`
	NameEn      string         `json:"name_en"`
	MemberType  string         `json:"member_type"`
	SessionMode string         `json:"session_mode"`
	Price       *float64       `json:"price"`
	Meta        map[string]any `json:"meta"`
	SortOrder   int            `json:"sort_order"`
}

type benefitRow struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	BenefitType string `json:"benefit_type"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (r *catalogRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	var rows []itemRow
	err := r.client.DB.From("pricing_items").
		Select("id", "category", "name_zh", "name_en", "member_type", "session_mode", "price", "meta", "sort_order").
		Eq("is_active", "true").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch pricing items").
			Mark(ierr.ErrDatabase)
	}

	// postgrest row order is not contractual, sort here
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })

	items := make([]catalog.Item, 0, len(rows))
	for _, row := range rows {
		item := catalog.Item{
			ID:          row.ID,
			Category:    types.PricingCategory(row.Category),
			NameZh:      row.NameZh,
			NameEn:      row.NameEn,
			MemberType:  types.MemberType(row.MemberType),
			SessionMode: types.SessionMode(row.SessionMode),
			Meta:        row.Meta,
		}
		if row.Price != nil {
			price := decimal.NewFromFloat(*row.Price)
			item.Price = &price
		}
		items = append(items, item)
	}

	r.log.Debugw("fetched pricing items", "count", len(items))
	return items, nil
}

func (r *catalogRepository) ListBenefits(ctx context.Context) ([]catalog.Benefit, error) {
	var rows []benefitRow
	err := r.client.DB.From("pricing_benefits").
		Select("id", "item_id", "benefit_type", "description", "sort_order").
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch pricing benefits").
			Mark(ierr.ErrDatabase)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })

	benefits := make([]catalog.Benefit, 0, len(rows))
	for _, row := range rows {
		benefits = append(benefits, catalog.Benefit{
			ID:          row.ID,
			ItemID:      row.ItemID,
			BenefitType: row.BenefitType,
			Description: row.Description,
			SortOrder:   row.SortOrder,
		})
	}
	return benefits, nil
}
