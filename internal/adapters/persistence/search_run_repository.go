package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

// GormSearchRunRepository implements RunStore using GORM
type GormSearchRunRepository struct {
	db *gorm.DB
}

var _ appsearch.RunStore = (*GormSearchRunRepository)(nil)

// NewGormSearchRunRepository creates a new GORM search run repository
func NewGormSearchRunRepository(db *gorm.DB) *GormSearchRunRepository {
	return &GormSearchRunRepository{db: db}
}

// RecordRun persists a completed run. The write runs from the coordinator's
// receive loop, so a storage failure is logged instead of propagated and the
// search result stays usable.
func (r *GormSearchRunRepository) RecordRun(ctx context.Context, record appsearch.RunRecord) {
	model, err := r.recordToModel(record)
	if err != nil {
		common.LoggerFromContext(ctx).Log("ERROR", "failed to encode search run", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		common.LoggerFromContext(ctx).Log("ERROR", "failed to persist search run", map[string]interface{}{
			"error":   result.Error.Error(),
			"product": record.Product,
		})
	}
}

// Recent returns the most recent runs, newest first.
func (r *GormSearchRunRepository) Recent(ctx context.Context, limit int) ([]appsearch.StoredRun, error) {
	var models []SearchRunModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list search runs: %w", result.Error)
	}

	runs := make([]appsearch.StoredRun, 0, len(models))
	for _, model := range models {
		run, err := r.modelToRun(&model)
		if err != nil {
			continue // Skip rows with undecodable mixes
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// BestForProduct returns the highest-profit stored run for a product, or nil
// when the product has no runs yet.
func (r *GormSearchRunRepository) BestForProduct(ctx context.Context, product string) (*appsearch.StoredRun, error) {
	var model SearchRunModel
	result := r.db.WithContext(ctx).Where("product = ?", product).Order("profit DESC").First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find best run: %w", result.Error)
	}

	run, err := r.modelToRun(&model)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *GormSearchRunRepository) recordToModel(record appsearch.RunRecord) (*SearchRunModel, error) {
	mixJSON, err := json.Marshal(record.Best.Mix)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mix: %w", err)
	}

	createdAt := record.FinishedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &SearchRunModel{
		ID:         uuid.NewString(),
		Engine:     record.Engine,
		Product:    record.Product,
		MaxDepth:   record.MaxDepth,
		Mix:        string(mixJSON),
		Profit:     record.Best.Profit,
		Sequences:  record.Sequences,
		DurationMs: record.Duration.Milliseconds(),
		CreatedAt:  createdAt,
	}, nil
}

func (r *GormSearchRunRepository) modelToRun(model *SearchRunModel) (appsearch.StoredRun, error) {
	var mix mixing.Mix
	if model.Mix != "" {
		if err := json.Unmarshal([]byte(model.Mix), &mix); err != nil {
			return appsearch.StoredRun{}, fmt.Errorf("invalid mix in database: %w", err)
		}
	}

	return appsearch.StoredRun{
		ID:        model.ID,
		Engine:    model.Engine,
		Product:   model.Product,
		MaxDepth:  model.MaxDepth,
		Mix:       mix,
		Profit:    model.Profit,
		Sequences: model.Sequences,
		Duration:  time.Duration(model.DurationMs) * time.Millisecond,
		CreatedAt: model.CreatedAt,
	}, nil
}
