package artic

// SearchResponse represents the artwork search API response structure.
type SearchResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []Artwork  `json:"data"`
	Config     APIConfig  `json:"config"`
}

type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

type Artwork struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	ArtistDisplay string  `json:"artist_display"`
	ImageID       *string `json:"image_id"`
	Description   *string `json:"description"`
	DateDisplay   string  `json:"date_display"`
	MediumDisplay string  `json:"medium_display"`
}

func (a Artwork) hasImage() bool {
	return a.ImageID != nil && *a.ImageID != ""
}

type APIConfig struct {
	IIIFURL    string `json:"iiif_url"`
	WebsiteURL string `json:"website_url"`
}
