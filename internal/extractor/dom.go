package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/parks-explorer/internal/metadata"
	"github.com/rohmanhakim/parks-explorer/pkg/failure"
	"github.com/rohmanhakim/parks-explorer/pkg/urlutil"
)

/*
Responsibilities
- Parse raw payloads into domain entities
- Fail fast when a document no longer matches the assumed structure

Extraction Strategy
- Pure conversions over the payload bytes; nothing here knows whether
  the payload came from the network or the cache
- Every extracted text field is trimmed of surrounding whitespace
- Element order in the output follows document order, which is the list
  order shown to the end user later
*/

type PageExtractor struct {
	sink metadata.EventSink
}

func NewPageExtractor(sink metadata.EventSink) PageExtractor {
	return PageExtractor{
		sink: sink,
	}
}

// StateIndex parses the directory index page into a mapping from
// lowercased state name to absolute state-page URL under domain.
func (p *PageExtractor) StateIndex(htmlByte []byte, domain string) (map[string]string, failure.ClassifiedError) {
	index, err := stateIndex(htmlByte, domain)
	if err != nil {
		return nil, p.recordExtractionError("PageExtractor.StateIndex", err)
	}
	return index, nil
}

// SiteURLs parses a state page into the ordered sequence of absolute
// detail-page URLs, in document order.
func (p *PageExtractor) SiteURLs(htmlByte []byte, domain string) ([]string, failure.ClassifiedError) {
	urls, err := siteURLs(htmlByte, domain)
	if err != nil {
		return nil, p.recordExtractionError("PageExtractor.SiteURLs", err)
	}
	return urls, nil
}

// SiteFromDetailPage extracts the five labeled fields of a site detail
// page. A missing element is a hard failure for the page.
func (p *PageExtractor) SiteFromDetailPage(htmlByte []byte) (Site, failure.ClassifiedError) {
	site, err := siteFromDetailPage(htmlByte)
	if err != nil {
		return Site{}, p.recordExtractionError("PageExtractor.SiteFromDetailPage", err)
	}
	return site, nil
}

func (p *PageExtractor) recordExtractionError(action string, err error) failure.ClassifiedError {
	var extractionError *ExtractionError
	errors.As(err, &extractionError)
	p.sink.RecordError(
		time.Now(),
		"extractor",
		action,
		mapExtractionErrorToMetadataCause(extractionError),
		extractionError.Message,
		nil,
	)
	return extractionError
}

func stateIndex(htmlByte []byte, domain string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlByte))
	if err != nil {
		return nil, &ExtractionError{
			Message:   fmt.Sprintf("failed to parse HTML: %v", err),
			Retryable: false,
			Cause:     ErrCauseMalformedPayload,
		}
	}

	entries := doc.Find(selectorStateList)
	if entries.Length() == 0 {
		return nil, &ExtractionError{
			Message:   "state dropdown list not found",
			Retryable: false,
			Cause:     ErrCauseElementMissing,
		}
	}

	index := make(map[string]string, entries.Length())
	var extractionErr *ExtractionError
	entries.EachWithBreak(func(i int, entry *goquery.Selection) bool {
		href, exists := entry.Find("a").First().Attr("href")
		if !exists {
			extractionErr = &ExtractionError{
				Message:   fmt.Sprintf("state entry %d has no link", i),
				Retryable: false,
				Cause:     ErrCauseElementMissing,
			}
			return false
		}
		stateName := strings.ToLower(strings.TrimSpace(entry.Text()))
		index[stateName] = urlutil.Absolutize(domain, href)
		return true
	})
	if extractionErr != nil {
		return nil, extractionErr
	}
	return index, nil
}

func siteURLs(htmlByte []byte, domain string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlByte))
	if err != nil {
		return nil, &ExtractionError{
			Message:   fmt.Sprintf("failed to parse HTML: %v", err),
			Retryable: false,
			Cause:     ErrCauseMalformedPayload,
		}
	}

	entries := doc.Find(selectorSiteList)
	if entries.Length() == 0 {
		return nil, &ExtractionError{
			Message:   "park list not found",
			Retryable: false,
			Cause:     ErrCauseElementMissing,
		}
	}

	urls := make([]string, 0, entries.Length())
	var extractionErr *ExtractionError
	entries.EachWithBreak(func(i int, entry *goquery.Selection) bool {
		href, exists := entry.Find(selectorSiteListLink).First().Attr("href")
		if !exists {
			extractionErr = &ExtractionError{
				Message:   fmt.Sprintf("park entry %d has no detail link", i),
				Retryable: false,
				Cause:     ErrCauseElementMissing,
			}
			return false
		}
		detailURL := urlutil.Absolutize(domain, href)
		if !strings.HasSuffix(detailURL, "/") {
			detailURL += "/"
		}
		urls = append(urls, detailURL+detailPageSuffix)
		return true
	})
	if extractionErr != nil {
		return nil, extractionErr
	}
	return urls, nil
}

func siteFromDetailPage(htmlByte []byte) (Site, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlByte))
	if err != nil {
		return Site{}, &ExtractionError{
			Message:   fmt.Sprintf("failed to parse HTML: %v", err),
			Retryable: false,
			Cause:     ErrCauseMalformedPayload,
		}
	}

	fields := map[string]string{}
	for label, selector := range map[string]string{
		"name":     selectorSiteName,
		"category": selectorSiteCategory,
		"locality": selectorSiteLocality,
		"region":   selectorSiteRegion,
		"postal":   selectorSitePostal,
		"phone":    selectorSitePhone,
	} {
		match := doc.Find(selector).First()
		if match.Length() == 0 {
			return Site{}, &ExtractionError{
				Message:   fmt.Sprintf("detail page is missing the %s field", label),
				Retryable: false,
				Cause:     ErrCauseElementMissing,
			}
		}
		fields[label] = strings.TrimSpace(match.Text())
	}

	return Site{
		Category:   fields["category"],
		Name:       fields["name"],
		Address:    fields["locality"] + ", " + fields["region"],
		PostalCode: fields["postal"],
		Phone:      fields["phone"],
	}, nil
}
