package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	"github.com/oxygenfit/salesconsole/internal/cache"
	"github.com/oxygenfit/salesconsole/internal/domain/comparison"
	"github.com/oxygenfit/salesconsole/internal/domain/quote"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type QuoteService interface {
	Create(ctx context.Context, req *dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	Get(ctx context.Context, id string) (*dto.QuoteResponse, error)
	ApplyPreset(ctx context.Context, id string, req *dto.QuotePresetRequest) (*dto.QuoteResponse, error)
	SetLine(ctx context.Context, id string, req *dto.QuoteLineRequest) (*dto.QuoteResponse, error)
	SetCredit(ctx context.Context, id string, req *dto.QuoteCreditRequest) (*dto.QuoteResponse, error)
	RestoreBasePrices(ctx context.Context, id string) (*dto.QuoteResponse, error)
	ClearQuantities(ctx context.Context, id string) (*dto.QuoteResponse, error)

	// Quotation returns the raw calculator state for rendering
	Quotation(ctx context.Context, id string) (*quote.Quotation, error)
}

// quoteService keeps live quotations in the session cache. A quotation
// expires with the session; nothing is persisted to the backing store.
type quoteService struct {
	ServiceParams
	catalogService CatalogService
}

func NewQuoteService(params ServiceParams, catalogService CatalogService) QuoteService {
	return &quoteService{ServiceParams: params, catalogService: catalogService}
}

func (s *quoteService) Create(ctx context.Context, req *dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snapshot := s.catalogService.GetSnapshot(ctx)
	sections := comparison.BuildSections(snapshot.Items, snapshot.Benefits, types.CategoryFilter(req.Source))

	var q *quote.Quotation
	switch req.Source {
	case types.CategoryPersonalTraining:
		row, ok := findPtRow(sections, req.RowKey)
		if !ok {
			return nil, rowNotFound(req.RowKey)
		}
		q = quote.NewFromPtRow(row)
	case types.CategoryCyclePlan:
		row, ok := findCycleRow(sections, req.RowKey)
		if !ok {
			return nil, rowNotFound(req.RowKey)
		}
		q = quote.NewFromCycleRow(row)
	}

	if req.ClientName != "" || !req.Date().IsZero() {
		q.SetClient(req.ClientName, req.Date())
	}

	s.store(ctx, q)
	s.Logger.Infow("opened quotation", "quote_id", q.ID, "source", req.Source, "row_key", req.RowKey)
	return dto.NewQuoteResponse(q), nil
}

func (s *quoteService) Get(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	q, err := s.Quotation(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewQuoteResponse(q), nil
}

func (s *quoteService) ApplyPreset(ctx context.Context, id string, req *dto.QuotePresetRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(q *quote.Quotation) error {
		return q.ApplyPreset(req.Preset)
	})
}

func (s *quoteService) SetLine(ctx context.Context, id string, req *dto.QuoteLineRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(q *quote.Quotation) error {
		if price, ok := req.UnitPriceValue(); ok {
			if err := q.SetUnitPrice(req.Preset, price); err != nil {
				return err
			}
		}
		if qty, ok := req.QuantityValue(); ok {
			if err := q.SetQuantity(req.Preset, qty); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *quoteService) SetCredit(ctx context.Context, id string, req *dto.QuoteCreditRequest) (*dto.QuoteResponse, error) {
	return s.update(ctx, id, func(q *quote.Quotation) error {
		q.SetCredit(req.CreditValue())
		return nil
	})
}

func (s *quoteService) RestoreBasePrices(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	return s.update(ctx, id, func(q *quote.Quotation) error {
		q.RestoreBaseUnitPrices()
		return nil
	})
}

func (s *quoteService) ClearQuantities(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	return s.update(ctx, id, func(q *quote.Quotation) error {
		q.ClearQuantities()
		return nil
	})
}

func (s *quoteService) Quotation(ctx context.Context, id string) (*quote.Quotation, error) {
	cached, ok := s.Cache.Get(ctx, cache.GenerateKey(cache.PrefixQuote, id))
	if !ok {
		return nil, ierr.NewError("quotation not found").
			WithHint("The quote expired or was never opened").
			WithReportableDetails(map[string]any{"quote_id": id}).
			Mark(ierr.ErrNotFound)
	}
	q, ok := cached.(*quote.Quotation)
	if !ok {
		return nil, ierr.NewError("corrupt quotation cache entry").
			WithReportableDetails(map[string]any{"quote_id": id}).
			Mark(ierr.ErrSystem)
	}
	return q, nil
}

func (s *quoteService) update(ctx context.Context, id string, apply func(q *quote.Quotation) error) (*dto.QuoteResponse, error) {
	q, err := s.Quotation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(q); err != nil {
		return nil, err
	}
	s.store(ctx, q)
	return dto.NewQuoteResponse(q), nil
}

func (s *quoteService) store(ctx context.Context, q *quote.Quotation) {
	s.Cache.Set(ctx, cache.GenerateKey(cache.PrefixQuote, q.ID), q, cache.DefaultExpiration)
}

func findPtRow(sections comparison.Sections, key string) (comparison.PtRow, bool) {
	if sections.PtSection == nil {
		return comparison.PtRow{}, false
	}
	return lo.Find(sections.PtSection.Rows, func(row comparison.PtRow) bool {
		return row.Key == key
	})
}

func findCycleRow(sections comparison.Sections, key string) (comparison.CyclePlanRow, bool) {
	return lo.Find(sections.CyclePlanRows, func(row comparison.CyclePlanRow) bool {
		return row.Program == key
	})
}

func rowNotFound(key string) error {
	return ierr.NewError("row not found in catalog").
		WithHint("Open quotes from a visible comparison row").
		WithReportableDetails(map[string]any{"row_key": key}).
		Mark(ierr.ErrNotFound)
}
