package extractor

import (
	"github.com/rohmanhakim/parks-explorer/pkg/failure"
	"github.com/tidwall/gjson"
)

// searchResultsPath locates the result array in the geographic-search
// response; each item carries its display fields in a sub-object.
const (
	searchResultsPath = "searchResults"
	searchFieldsKey   = "fields"
)

// PlacesFromSearchJSON maps a search-service payload to the ordered
// sequence of PlaceResult, following the order returned by the service.
// Display fields the service returns empty are replaced with fixed
// placeholders; the name field passes through untouched.
func (p *PageExtractor) PlacesFromSearchJSON(jsonByte []byte) ([]PlaceResult, failure.ClassifiedError) {
	places, err := placesFromSearchJSON(jsonByte)
	if err != nil {
		return nil, p.recordExtractionError("PageExtractor.PlacesFromSearchJSON", err)
	}
	return places, nil
}

func placesFromSearchJSON(jsonByte []byte) ([]PlaceResult, error) {
	if !gjson.ValidBytes(jsonByte) {
		return nil, &ExtractionError{
			Message:   "search payload is not valid JSON",
			Retryable: false,
			Cause:     ErrCauseMalformedPayload,
		}
	}

	results := gjson.GetBytes(jsonByte, searchResultsPath)
	if !results.Exists() || !results.IsArray() {
		return nil, &ExtractionError{
			Message:   "search payload has no searchResults array",
			Retryable: false,
			Cause:     ErrCauseElementMissing,
		}
	}

	var places []PlaceResult
	var extractionErr *ExtractionError
	results.ForEach(func(_, item gjson.Result) bool {
		fields := item.Get(searchFieldsKey)
		if !fields.Exists() {
			extractionErr = &ExtractionError{
				Message:   "search result item has no fields object",
				Retryable: false,
				Cause:     ErrCauseElementMissing,
			}
			return false
		}
		places = append(places, PlaceResult{
			Name:     fields.Get("name").String(),
			Category: orPlaceholder(fields.Get("group_sic_code_name_ext").String(), placeholderCategory),
			Address:  orPlaceholder(fields.Get("address").String(), placeholderAddress),
			City:     orPlaceholder(fields.Get("city").String(), placeholderCity),
		})
		return true
	})
	if extractionErr != nil {
		return nil, extractionErr
	}
	return places, nil
}

func orPlaceholder(value string, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
