package apod

// Item represents the APOD API response structure.
type Item struct {
	Date           string `json:"date"`
	MediaType      string `json:"media_type"`
	URL            string `json:"url"`
	HDURL          string `json:"hdurl"`
	ThumbnailURL   string `json:"thumbnail_url"`
	Title          string `json:"title"`
	Explanation    string `json:"explanation"`
	Copyright      string `json:"copyright"`
	ServiceVersion string `json:"service_version"`
}

const mediaTypeVideo = "video"
