package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leads-cli/internal/batch"
	"github.com/sells-group/leads-cli/internal/cleaner"
	"github.com/sells-group/leads-cli/internal/enrich"
	"github.com/sells-group/leads-cli/internal/entity"
	"github.com/sells-group/leads-cli/internal/store"
)

// pipelineEnv holds the initialized cleaner, processor, and optional store
// needed by the process/clean/serve commands.
type pipelineEnv struct {
	Cleaner   *cleaner.Cleaner
	Processor *batch.Processor
	Store     store.Store // nil when store.driver is "none"
}

// Close releases resources held by the pipeline environment.
func (pe *pipelineEnv) Close() {
	if pe.Store != nil {
		_ = pe.Store.Close()
	}
}

// initPipeline builds the enricher, entity extractor, cleaner, and batch
// processor from config. Callers should defer env.Close().
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	rules, err := enrich.LoadRules(cfg.Clean.RulesPath)
	if err != nil {
		return nil, err
	}
	enricher := enrich.New(rules)

	var extractor entity.Extractor = entity.Disabled{}
	if cfg.NLP.Enabled {
		prose, err := entity.NewProse()
		if err != nil {
			zap.L().Warn("NLP model unavailable, entity extraction disabled", zap.Error(err))
		} else {
			extractor = prose
		}
	} else {
		zap.L().Info("entity extraction disabled by config")
	}

	c := cleaner.New(cfg.Clean.DefaultRegion, enricher, extractor)
	p := batch.New(c, cfg.Dedupe.Keys, cfg.Batch.MaxConcurrentFiles)

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	if st != nil {
		if err := st.Migrate(ctx); err != nil {
			_ = st.Close()
			return nil, eris.Wrap(err, "migrate store")
		}
	}

	return &pipelineEnv{Cleaner: c, Processor: p, Store: st}, nil
}

// initStore opens the configured run-history backend; driver "none"
// returns a nil store.
func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "", "none":
		return nil, nil
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "leads.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, cfg.Store.Pool)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}
