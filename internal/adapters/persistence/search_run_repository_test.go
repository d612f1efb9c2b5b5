package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrakeCaesar/scheduleI/internal/adapters/persistence"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/test/helpers"
)

func record(engine, product string, profit float64, mix ...string) appsearch.RunRecord {
	return appsearch.RunRecord{
		Engine:     engine,
		Product:    product,
		MaxDepth:   len(mix),
		Best:       search.BestResult{Mix: mixing.Mix(mix), Profit: profit},
		Sequences:  42,
		Duration:   1500 * time.Millisecond,
		FinishedAt: time.Now(),
	}
}

func TestSearchRunRepository_RecordAndRecent(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSearchRunRepository(db)
	ctx := context.Background()

	// Act
	repo.RecordRun(ctx, record("parallel", "OG Kush", 67, "Cuke", "Banana"))
	repo.RecordRun(ctx, record("native", "OG Kush", 46, "Cuke"))

	runs, err := repo.Recent(ctx, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, "OG Kush", run.Product)
	}
}

func TestSearchRunRepository_RecentRespectsLimit(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSearchRunRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		repo.RecordRun(ctx, record("parallel", "Sour Diesel", float64(i), "Cuke"))
	}

	// Act
	runs, err := repo.Recent(ctx, 3)

	// Assert
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestSearchRunRepository_BestForProduct(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSearchRunRepository(db)
	ctx := context.Background()

	repo.RecordRun(ctx, record("parallel", "OG Kush", 46, "Cuke"))
	repo.RecordRun(ctx, record("parallel", "OG Kush", 67, "Cuke", "Banana"))
	repo.RecordRun(ctx, record("parallel", "Meth", 120, "Gasoline"))

	// Act
	best, err := repo.BestForProduct(ctx, "OG Kush")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 67.0, best.Profit)
	assert.Equal(t, mixing.Mix{"Cuke", "Banana"}, best.Mix)
	assert.Equal(t, 1500*time.Millisecond, best.Duration)
}

func TestSearchRunRepository_BestForProduct_NoRuns(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSearchRunRepository(db)

	// Act
	best, err := repo.BestForProduct(context.Background(), "Green Crack")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, best)
}
