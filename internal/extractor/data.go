package extractor

import "fmt"

// Site is one real-world recreational site, constructed only from a
// detail-page payload. Immutable after construction.
type Site struct {
	Category   string
	Name       string
	Address    string
	PostalCode string
	Phone      string
}

// Info returns the one-line summary shown to the end user,
// e.g. "Isle Royale (National Park): Houghton, MI 49931".
func (s Site) Info() string {
	return fmt.Sprintf("%s (%s): %s %s", s.Name, s.Category, s.Address, s.PostalCode)
}

// PlaceResult is a point of interest returned by the geographic search,
// one per search hit.
type PlaceResult struct {
	Name     string
	Category string
	Address  string
	City     string
}

// Info returns the one-line summary shown to the end user,
// e.g. "Cafe X (Restaurant): no address, Houghton".
func (p PlaceResult) Info() string {
	return fmt.Sprintf("%s (%s): %s, %s", p.Name, p.Category, p.Address, p.City)
}

// Placeholders substituted for display fields the search service returns
// empty. The name field has no such fallback.
const (
	placeholderCategory = "no category"
	placeholderAddress  = "no address"
	placeholderCity     = "no city"
)
