package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/DrakeCaesar/scheduleI/internal/adapters/metrics"
	"github.com/DrakeCaesar/scheduleI/internal/adapters/native"
	"github.com/DrakeCaesar/scheduleI/internal/adapters/persistence"
	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/application/setup"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
	"github.com/DrakeCaesar/scheduleI/internal/infrastructure/config"
	"github.com/DrakeCaesar/scheduleI/internal/infrastructure/database"
)

// App wires the catalog, engines, storage and mediator for one CLI
// invocation
type App struct {
	Config   *config.Config
	Catalog  *mixing.Catalog
	Mediator common.Mediator
	Registry *setup.HandlerRegistry
	Logger   common.SearchLogger

	db            *gorm.DB
	metricsServer *metrics.Server
}

// newApp builds the application container. withDB controls whether the run
// history database is opened; catalog-only commands skip it.
func newApp(withDB bool) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := &common.StderrLogger{MinLevel: strings.ToUpper(cfg.Logging.Level)}
	if verbose {
		logger.MinLevel = "DEBUG"
	}

	catalog := mixing.DefaultCatalog()
	if cfg.Search.CatalogPath != "" {
		catalog, err = mixing.LoadCatalogFile(cfg.Search.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	app := &App{
		Config:  cfg,
		Catalog: catalog,
		Logger:  logger,
	}

	var recorders []appsearch.RunRecorder
	var store appsearch.RunStore

	if withDB {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		repo := persistence.NewGormSearchRunRepository(db)
		app.db = db
		store = repo
		recorders = append(recorders, repo)
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		collector := metrics.NewSearchMetricsCollector()
		if err := collector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		recorders = append(recorders, collector)

		if server := metrics.NewServer(&cfg.Metrics); server != nil {
			app.metricsServer = server
			go func() {
				if err := server.Start(); err != nil {
					logger.Log("ERROR", "metrics server stopped", map[string]interface{}{
						"error": err.Error(),
					})
				}
			}()
		}
	}

	clock := shared.NewRealClock()
	registry := setup.NewHandlerRegistry(store, clock)
	registry.AddEngine(appsearch.EngineParallel,
		appsearch.NewCoordinator(catalog, clock, cfg.Search.ProgressInterval, recorders...))
	registry.AddEngine(native.EngineNative,
		native.NewAdapter(catalog, native.Config{
			Binary:   cfg.Engine.Binary,
			Timeout:  cfg.Engine.Timeout,
			Fallback: mixing.Mix(cfg.Engine.FallbackMix),
		}, clock, recorders...))
	registry.AddEngine(appsearch.EngineReference,
		appsearch.NewReferenceEngine(catalog, clock, recorders...))

	mediator := common.NewMediator()
	if err := registry.RegisterSearchHandlers(mediator); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}
	app.Mediator = mediator
	app.Registry = registry

	return app, nil
}

// Context returns a base context carrying the app logger
func (a *App) Context() context.Context {
	return common.WithLogger(context.Background(), a.Logger)
}

// Close releases the database and stops the metrics server
func (a *App) Close() {
	if a.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = a.metricsServer.Shutdown(ctx)
		cancel()
	}
	if a.db != nil {
		_ = database.Close(a.db)
	}
}
