package extractor

// Selectors for the site-directory service's pages. The document
// structure is assumed invariant; a missing match is a hard failure for
// the page it appears on.
const (
	// Directory index: the state dropdown list.
	selectorStateList = "ul.dropdown-menu.SearchBar-keywordSearch > li"

	// State page: the park listing.
	selectorSiteList     = "ul#list_parks > li"
	selectorSiteListLink = "h3 a"

	// Detail page: the five labeled fields.
	selectorSiteName     = "a.Hero-title"
	selectorSiteCategory = "span.Hero-designation"
	selectorSiteLocality = "span[itemprop='addressLocality']"
	selectorSiteRegion   = "span[itemprop='addressRegion']"
	selectorSitePostal   = "span.postal-code"
	selectorSitePhone    = "span[itemprop='telephone']"
)

// detailPageSuffix is appended to each relative site link from a state
// page to form the canonical detail URL.
const detailPageSuffix = "index.htm"
