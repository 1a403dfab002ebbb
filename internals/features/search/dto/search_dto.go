package dto

// SearchHit is one match of the global search, shaped for the quick-result
// dropdown: a title line, an optional subtitle, and the detail-page href.
type SearchHit struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Href     string  `json:"href"`
	Photo    *string `json:"photo,omitempty"`
}

// SearchResponse groups hits per entity type.
type SearchResponse struct {
	Query    string      `json:"query"`
	Students []SearchHit `json:"students"`
	Parents  []SearchHit `json:"parents"`
	Teachers []SearchHit `json:"teachers"`
	Classes  []SearchHit `json:"classes"`
	Rooms    []SearchHit `json:"rooms"`
	Subjects []SearchHit `json:"subjects"`
}
