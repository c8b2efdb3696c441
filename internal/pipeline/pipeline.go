// Package pipeline orchestrates the per-company enrichment flow and the
// checkpointed batch loop over input names.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/registry-enrich/internal/extract"
	"github.com/sells-group/registry-enrich/internal/fetcher"
	"github.com/sells-group/registry-enrich/internal/merge"
	"github.com/sells-group/registry-enrich/internal/model"
	"github.com/sells-group/registry-enrich/internal/resolve"
)

// Sources holds the endpoint addresses for both host classes.
type Sources struct {
	RegistrySearchURL   string // search query appended
	RegistryBaseURL     string // detail paths resolved against this
	DirectorySearchURL  string // search query appended
	DirectoryDetailBase string // {base}/{number}-{slug}
}

// Pipeline runs the fetch → extract → resolve → merge sequence for one
// business name at a time.
type Pipeline struct {
	engine  *fetcher.Engine
	sources Sources
}

// New creates a Pipeline over the given fetch engine and source endpoints.
func New(engine *fetcher.Engine, sources Sources) *Pipeline {
	return &Pipeline{engine: engine, sources: sources}
}

// Run enriches a single business name. Any fault while processing the
// company is caught at this boundary and recorded as a note on the record;
// a single company's failure never aborts a batch.
func (p *Pipeline) Run(ctx context.Context, companyName string) (record model.CanonicalRecord) {
	log := zap.L().With(zap.String("company", companyName))

	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline: company processing fault", zap.Any("fault", r))
			record = model.NewCanonicalRecord(companyName)
			record.Notes = fmt.Sprintf("Error: %v", r)
			record.ResearchedAt = today()
		}
	}()

	log.Info("pipeline: processing company")

	registry := p.registryPhase(ctx, companyName)
	dirSearch := p.directorySearchPhase(ctx, companyName)

	companyNumber := registry.CompanyNumber
	if !model.IsSet(companyNumber) {
		companyNumber = dirSearch.CompanyNumber
	}

	dirDetail := model.NewDirectoryDetailResult()
	if model.IsSet(companyNumber) {
		dirDetail = p.directoryDetailPhase(ctx, companyNumber, companyName)
	}

	record = merge.Merge(companyName, merge.Records{
		Registry:        registry,
		DirectorySearch: dirSearch,
		DirectoryDetail: dirDetail,
	})
	record.ResearchedAt = today()

	log.Info("pipeline: company complete",
		zap.String("company_number", record.CompanyNumber),
		zap.String("source", string(record.Source)),
	)
	return record
}

// registryPhase runs the registry search and, when a detail link and
// company number were found, the registry detail fetch. The raw search-page
// address is resolved into street/city/postcode here so the merge engine
// only sees normalized fields.
func (p *Pipeline) registryPhase(ctx context.Context, companyName string) model.RegistryResult {
	log := zap.L().With(zap.String("company", companyName))

	searchURL := p.sources.RegistrySearchURL + searchQuery(companyName)
	outcome := p.engine.Fetch(ctx, fetcher.Request{
		URL:     searchURL,
		Host:    fetcher.HostRegistry,
		Purpose: fetcher.PurposeSearch,
	})
	if outcome.TerminalFailure {
		log.Warn("pipeline: registry search fetch failed")
		return model.NewRegistryResult()
	}

	doc, err := parseDocument(outcome.Body)
	if err != nil {
		log.Warn("pipeline: registry search page unparseable", zap.Error(err))
		return model.NewRegistryResult()
	}

	registry := extract.RegistrySearch(doc, companyName)
	if model.IsSet(registry.FullAddress) {
		addr := resolve.ParseAddress(registry.FullAddress)
		registry.StreetAddress = addr.Street
		registry.City = addr.City
		registry.Postcode = addr.Postcode
	}

	if registry.DetailPath == "" || !model.IsSet(registry.CompanyNumber) {
		return registry
	}

	detailURL := p.sources.RegistryBaseURL + registry.DetailPath
	outcome = p.engine.Fetch(ctx, fetcher.Request{
		URL:     detailURL,
		Host:    fetcher.HostRegistry,
		Purpose: fetcher.PurposeDetail,
	})
	if outcome.TerminalFailure {
		log.Warn("pipeline: registry detail fetch failed",
			zap.String("company_number", registry.CompanyNumber),
		)
		return registry
	}

	detailDoc, err := parseDocument(outcome.Body)
	if err != nil {
		log.Warn("pipeline: registry detail page unparseable", zap.Error(err))
		return registry
	}

	return extract.RegistryDetail(detailDoc, registry)
}

// directorySearchPhase runs the defense-sensitive directory search. The
// fetch policy gives it a single attempt; a block simply yields an
// all-sentinel result.
func (p *Pipeline) directorySearchPhase(ctx context.Context, companyName string) model.DirectorySearchResult {
	searchURL := p.sources.DirectorySearchURL + searchQuery(companyName)
	outcome := p.engine.Fetch(ctx, fetcher.Request{
		URL:     searchURL,
		Host:    fetcher.HostDirectory,
		Purpose: fetcher.PurposeSearch,
	})
	if outcome.TerminalFailure {
		zap.L().Warn("pipeline: directory search fetch failed", zap.String("company", companyName))
		return model.NewDirectorySearchResult()
	}

	doc, err := parseDocument(outcome.Body)
	if err != nil {
		zap.L().Warn("pipeline: directory search page unparseable", zap.Error(err))
		return model.NewDirectorySearchResult()
	}

	return extract.DirectorySearch(doc, companyName)
}

// directoryDetailPhase fetches the directory detail page, whose address is
// constructed from the company number and slugified name.
func (p *Pipeline) directoryDetailPhase(ctx context.Context, companyNumber, companyName string) model.DirectoryDetailResult {
	detailURL := extract.DirectoryDetailURL(p.sources.DirectoryDetailBase, companyNumber, companyName)
	outcome := p.engine.Fetch(ctx, fetcher.Request{
		URL:     detailURL,
		Host:    fetcher.HostDirectory,
		Purpose: fetcher.PurposeDetail,
	})
	if outcome.TerminalFailure {
		zap.L().Warn("pipeline: directory detail fetch failed",
			zap.String("company", companyName),
			zap.String("company_number", companyNumber),
		)
		return model.NewDirectoryDetailResult()
	}

	doc, err := parseDocument(outcome.Body)
	if err != nil {
		zap.L().Warn("pipeline: directory detail page unparseable", zap.Error(err))
		return model.NewDirectoryDetailResult()
	}

	return extract.DirectoryDetail(doc)
}

func parseDocument(body string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

// searchQuery encodes a company name the way both hosts expect: spaces
// become plus signs.
func searchQuery(companyName string) string {
	return strings.ReplaceAll(companyName, " ", "+")
}

func today() string {
	return time.Now().Format("2006-01-02")
}
