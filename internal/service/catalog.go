package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	"github.com/oxygenfit/salesconsole/internal/cache"
	"github.com/oxygenfit/salesconsole/internal/domain/catalog"
	"github.com/oxygenfit/salesconsole/internal/domain/comparison"
	"github.com/oxygenfit/salesconsole/internal/domain/rule"
	"github.com/oxygenfit/salesconsole/internal/types"
)

// CatalogSnapshot is one session's view of the backing store: items,
// rules and folded benefits fetched together. A degraded snapshot (the
// built-in catalog, no rules, no benefits) is still fully usable.
type CatalogSnapshot struct {
	Items    []catalog.Item
	Rules    []rule.Rule
	Benefits map[string][]string

	// Degraded marks a snapshot that fell back to the built-in catalog
	Degraded bool
}

type CatalogService interface {
	// GetSnapshot fetches items, rules and benefits in parallel. Fetch
	// failures never surface: the built-in default catalog substitutes
	// silently and the session stays interactive.
	GetSnapshot(ctx context.Context) *CatalogSnapshot

	// GetSections derives the comparison view for one category filter
	GetSections(ctx context.Context, req *dto.SectionsRequest) (*dto.SectionsResponse, error)

	// Invalidate drops the cached snapshot so the next call refetches
	Invalidate(ctx context.Context)
}

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) GetSnapshot(ctx context.Context) *CatalogSnapshot {
	cacheKey := cache.GenerateKey(cache.PrefixCatalog, "snapshot")
	if cached, ok := s.Cache.Get(ctx, cacheKey); ok {
		if snapshot, ok := cached.(*CatalogSnapshot); ok {
			return snapshot
		}
	}

	var (
		items    []catalog.Item
		rules    []rule.Rule
		benefits []catalog.Benefit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.CatalogRepo.ListItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rules, err = s.RuleRepo.ListRules(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		benefits, err = s.CatalogRepo.ListBenefits(gctx)
		return err
	})

	snapshot := &CatalogSnapshot{}
	if err := g.Wait(); err != nil {
		// degraded but functional: built-in catalog, no rules, no benefits
		s.Logger.Warnw("catalog fetch failed, falling back to built-in catalog", "error", err)
		snapshot.Items = catalog.DefaultItems()
		snapshot.Benefits = map[string][]string{}
		snapshot.Degraded = true
	} else {
		snapshot.Items = items
		snapshot.Rules = rules
		snapshot.Benefits = catalog.BenefitsByItem(benefits)
	}

	s.Cache.Set(ctx, cacheKey, snapshot, cache.DefaultExpiration)
	return snapshot
}

func (s *catalogService) GetSections(ctx context.Context, req *dto.SectionsRequest) (*dto.SectionsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snapshot := s.GetSnapshot(ctx)
	filter := req.Category
	if filter == "" {
		filter = types.CategoryFilterAll
	}

	return &dto.SectionsResponse{
		Sections:   comparison.BuildSections(snapshot.Items, snapshot.Benefits, filter),
		Highlights: rule.PromotionHighlights(snapshot.Rules),
	}, nil
}

func (s *catalogService) Invalidate(ctx context.Context) {
	s.Cache.DeleteByPrefix(ctx, cache.PrefixCatalog)
}
