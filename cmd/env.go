package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/registry-enrich/internal/fetcher"
	"github.com/sells-group/registry-enrich/internal/pipeline"
	"github.com/sells-group/registry-enrich/internal/store"
)

// pipelineEnv holds the initialized store, fetch engine, and pipeline needed
// by the enrich/lookup/serve commands.
type pipelineEnv struct {
	Store    *store.SQLiteStore
	Pipeline *pipeline.Pipeline
}

// Close releases resources held by the pipeline environment.
func (pe *pipelineEnv) Close() {
	if pe.Store != nil {
		_ = pe.Store.Close()
	}
}

// initPipeline sets up the store and builds the fetch engine and pipeline.
// Callers should defer env.Close().
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	// The register tolerates plain HTTP; the directory sits behind browser
	// checks, so it gets the headless transport unless disabled.
	var directory fetcher.Transport = fetcher.NewPlainTransport(cfg.Fetch.Timeout())
	if cfg.Fetch.UseBrowser {
		directory = fetcher.NewBrowserTransport(cfg.Fetch.Timeout())
	}
	transports := map[fetcher.HostClass]fetcher.Transport{
		fetcher.HostRegistry:  fetcher.NewPlainTransport(cfg.Fetch.Timeout()),
		fetcher.HostDirectory: directory,
	}

	engine := fetcher.NewEngine(transports, fetcher.DefaultPolicies())

	p := pipeline.New(engine, pipeline.Sources{
		RegistrySearchURL:   cfg.Registry.SearchURL,
		RegistryBaseURL:     cfg.Registry.BaseURL,
		DirectorySearchURL:  cfg.Directory.SearchURL,
		DirectoryDetailBase: cfg.Directory.DetailBase,
	})

	return &pipelineEnv{Store: st, Pipeline: p}, nil
}
