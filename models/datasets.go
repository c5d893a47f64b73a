package models

// DatasetsPayload is the body of the datasets lookup
type DatasetsPayload struct {
	DatasetList DatasetList `json:"datasetList"`
}

// DatasetList contains the datasets of the requested context
type DatasetList struct {
	Contexts DatasetListContexts `json:"contexts"`
}

// DatasetListContexts wraps the context element of a dataset list
type DatasetListContexts struct {
	Context List[DatasetListContext] `json:"context"`
}

// DatasetListContext contains the datasets belonging to one context
type DatasetListContext struct {
	ContextName string   `json:"contextName"`
	Datasets    Datasets `json:"datasets"`
}

// Datasets wraps the dataset elements of a context
type Datasets struct {
	Dataset List[DatasetSummary] `json:"dataset"`
}

// DatasetSummary is the listing record of a single dataset
type DatasetSummary struct {
	ID                    string `json:"id"`
	GeographicalHierarchy string `json:"geographicalHierarchy"`
	Names                 Names  `json:"names"`
}

// Summaries returns every dataset in the payload, in payload order
func (p DatasetsPayload) Summaries() []DatasetSummary {
	var summaries []DatasetSummary
	for _, c := range p.DatasetList.Contexts.Context {
		summaries = append(summaries, c.Datasets.Dataset...)
	}
	return summaries
}
