package models

// DatasetDetailPayload is the body of the datasetdetails lookup
type DatasetDetailPayload struct {
	DatasetDetail DatasetDetail `json:"datasetDetail"`
}

// DatasetDetail contains the full description of a dataset, including the
// documents it can be downloaded as
type DatasetDetail struct {
	ID              string      `json:"id"`
	Names           Names       `json:"names"`
	PublicationDate string      `json:"publicationDate"`
	Documents       Documents   `json:"documents"`
	RefMetadata     RefMetadata `json:"refMetadata"`
}

// Documents wraps the document elements of a dataset detail
type Documents struct {
	Document List[Document] `json:"document"`
}

// Document is a downloadable representation of a dataset, e.g. a CSV extract
type Document struct {
	Type string               `json:"@type"`
	Href List[LocalizedValue] `json:"href"`
}

// RefMetadata contains the reference metadata items of a dataset
type RefMetadata struct {
	RefMetadataItem List[RefMetadataItem] `json:"refMetadataItem"`
}

// RefMetadataItem is a single item of descriptive metadata
type RefMetadataItem struct {
	Descriptions Descriptions `json:"descriptions"`
}

// Descriptions wraps the localized description elements of a metadata item
type Descriptions struct {
	Description List[LocalizedValue] `json:"description"`
}
