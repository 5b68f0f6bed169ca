package model

// DownloadRecord is one entry of the backend's recent-downloads history.
// Records are owned by the backend and read-only here; the collection keeps
// whatever order the backend returned.
type DownloadRecord struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	Platform  Platform `json:"platform"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Duration  Seconds  `json:"duration"`
}

// DisplayTitle returns the title, falling back to the URL when the backend
// stored none
func (r *DownloadRecord) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.URL
}
