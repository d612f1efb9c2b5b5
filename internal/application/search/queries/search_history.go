package queries

import (
	"context"
	"fmt"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
)

// SearchHistoryQuery lists recent completed runs, newest first.
type SearchHistoryQuery struct {
	Limit int
}

// BestForProductQuery returns the most profitable stored run for a product.
type BestForProductQuery struct {
	Product string
}

// SearchStatusQuery returns a snapshot of the named engine's session.
type SearchStatusQuery struct {
	Engine string
}

// SearchHistoryHandler serves SearchHistoryQuery from the run store.
type SearchHistoryHandler struct {
	store appsearch.RunStore
}

func NewSearchHistoryHandler(store appsearch.RunStore) *SearchHistoryHandler {
	return &SearchHistoryHandler{store: store}
}

func (h *SearchHistoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(SearchHistoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type for SearchHistoryHandler: %T", request)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	runs, err := h.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}
	return runs, nil
}

// BestForProductHandler serves BestForProductQuery from the run store.
type BestForProductHandler struct {
	store appsearch.RunStore
}

func NewBestForProductHandler(store appsearch.RunStore) *BestForProductHandler {
	return &BestForProductHandler{store: store}
}

func (h *BestForProductHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(BestForProductQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type for BestForProductHandler: %T", request)
	}

	run, err := h.store.BestForProduct(ctx, query.Product)
	if err != nil {
		return nil, fmt.Errorf("failed to load best run: %w", err)
	}
	return run, nil
}

// SearchStatusHandler serves SearchStatusQuery from the live engines.
type SearchStatusHandler struct {
	engines appsearch.EngineResolver
}

func NewSearchStatusHandler(engines appsearch.EngineResolver) *SearchStatusHandler {
	return &SearchStatusHandler{engines: engines}
}

func (h *SearchStatusHandler) Handle(_ context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(SearchStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type for SearchStatusHandler: %T", request)
	}
	engine, err := h.engines.Engine(query.Engine)
	if err != nil {
		return nil, err
	}
	return engine.Progress(), nil
}
