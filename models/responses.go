package models

// ContextListResponse is returned by the contexts endpoint
type ContextListResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

// DatasetNamesResponse is returned by the dataset names endpoint
type DatasetNamesResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

// DatasetDetailsResponse contains every dataset matching a requested name
type DatasetDetailsResponse struct {
	Items []Dataset `json:"items"`
	Count int       `json:"count"`
}

// Dataset is the public view of a resolved dataset
type Dataset struct {
	ID              string   `json:"id"`
	Name            string   `json:"name,omitempty"`
	Context         string   `json:"context"`
	PublicationDate string   `json:"publication_date,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	DownloadLinks   []string `json:"download_links"`
}

// DownloadLinksResponse contains the download links of every dataset matching a requested name
type DownloadLinksResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}
