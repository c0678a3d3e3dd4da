package domain

// Product is the normalized listing shape every catalog provider maps into.
type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	Badge            string  `json:"badge"`
	Description      string  `json:"description"`
	Source           string  `json:"source"`
	Rating           float64 `json:"rating,omitempty"`
	FirstPublishYear int     `json:"first_publish_year,omitempty"`
}

// BookDetail is the full view of a single volume.
type BookDetail struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	Cover         string   `json:"cover"`
	Authors       string   `json:"authors"`
	PublishedYear string   `json:"published_year,omitempty"`
	PageCount     int64    `json:"page_count,omitempty"`
	Dimensions    string   `json:"dimensions,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
}

// Sort modes for a fetched result page.
const (
	SortRelevance  = "relevance"
	SortRatingDesc = "rating_desc"
	SortYearDesc   = "year_desc"
	SortYearAsc    = "year_asc"
)
