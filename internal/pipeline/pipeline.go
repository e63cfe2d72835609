package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rohmanhakim/parks-explorer/internal/config"
	"github.com/rohmanhakim/parks-explorer/internal/extractor"
	"github.com/rohmanhakim/parks-explorer/internal/fetcher"
)

/*
Responsibilities

- Compose fetcher and extractor into the two user-facing lookups:
  sites of a state and places near a site
- Every outbound request goes through the read-through cache; the
  pipeline itself never touches the network

Failure Semantics

- The first failing step aborts the whole operation; no partial result
  is ever returned
- Fetch and extraction errors propagate to the caller unchanged
*/

// directoryIndexPage is the path of the page carrying the state
// dropdown, relative to the directory domain.
const directoryIndexPage = "index.htm"

type Pipeline struct {
	fetch   *fetcher.ReadThroughFetcher
	extract *extractor.PageExtractor
	cfg     config.Config
}

func NewPipeline(
	fetch *fetcher.ReadThroughFetcher,
	extract *extractor.PageExtractor,
	cfg config.Config,
) Pipeline {
	return Pipeline{
		fetch:   fetch,
		extract: extract,
		cfg:     cfg,
	}
}

// StateIndex returns the mapping from lowercased state name to
// state-page URL, scraped from the directory index page. The index
// page itself is cached like any other fetch.
func (p *Pipeline) StateIndex(ctx context.Context) (map[string]string, error) {
	indexURL := strings.TrimRight(p.cfg.DirectoryDomain(), "/") + "/" + directoryIndexPage

	entry, err := p.fetch.FetchPage(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	index, extractErr := p.extract.StateIndex(entry.Bytes(), p.cfg.DirectoryDomain())
	if extractErr != nil {
		return nil, extractErr
	}
	return index, nil
}

// SitesForState returns every site listed on the state page for the
// given state name. The lookup is case-insensitive. A state absent
// from the directory, or any failing fetch or parse along the way,
// aborts the whole lookup.
func (p *Pipeline) SitesForState(ctx context.Context, state string) ([]extractor.Site, error) {
	index, err := p.StateIndex(ctx)
	if err != nil {
		return nil, err
	}

	stateURL, listed := index[strings.ToLower(strings.TrimSpace(state))]
	if !listed {
		return nil, &PipelineError{
			Message: fmt.Sprintf("unknown state: %q", state),
			Cause:   ErrCauseStateUnknown,
		}
	}

	statePage, err := p.fetch.FetchPage(ctx, stateURL)
	if err != nil {
		return nil, err
	}

	siteURLs, extractErr := p.extract.SiteURLs(statePage.Bytes(), p.cfg.DirectoryDomain())
	if extractErr != nil {
		return nil, extractErr
	}

	sites := make([]extractor.Site, 0, len(siteURLs))
	for _, siteURL := range siteURLs {
		detailPage, err := p.fetch.FetchPage(ctx, siteURL)
		if err != nil {
			return nil, err
		}
		site, extractErr := p.extract.SiteFromDetailPage(detailPage.Bytes())
		if extractErr != nil {
			return nil, extractErr
		}
		sites = append(sites, site)
	}

	return sites, nil
}

// NearbyPlaces returns the places within the configured radius of the
// site's postal code. Requires a search API key; without one the
// operation fails before any fetch.
func (p *Pipeline) NearbyPlaces(ctx context.Context, site extractor.Site) ([]extractor.PlaceResult, error) {
	if p.cfg.APIKey() == "" {
		return nil, &PipelineError{
			Message: "no search API key configured",
			Cause:   ErrCauseAPIKeyMissing,
		}
	}

	entry, err := p.fetch.FetchQuery(ctx, p.cfg.SearchEndpoint(), p.searchParams(site))
	if err != nil {
		return nil, err
	}

	places, extractErr := p.extract.PlacesFromSearchJSON(entry.Bytes())
	if extractErr != nil {
		return nil, extractErr
	}
	return places, nil
}

func (p *Pipeline) searchParams(site extractor.Site) map[string]string {
	return map[string]string{
		"key":         p.cfg.APIKey(),
		"origin":      site.PostalCode,
		"radius":      strconv.Itoa(p.cfg.Radius()),
		"maxMatches":  strconv.Itoa(p.cfg.MaxMatches()),
		"ambiguities": "ignore",
		"outFormat":   "json",
	}
}
