package onsapi

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/ONSdigital/dp-onsapi/models"
	"github.com/pkg/errors"
)

const publicationDateLength = len("2006-01-02")

// DatasetMetadata wraps the details of a single dataset and derives the views
// callers need from it, filtered by the language and download type of the
// Client that fetched it. It holds no connection and never re-fetches.
type DatasetMetadata struct {
	contextName  string
	detail       models.DatasetDetail
	language     string
	downloadType string
}

func newDatasetMetadata(contextName string, detail models.DatasetDetail, language, downloadType string) *DatasetMetadata {
	return &DatasetMetadata{
		contextName:  contextName,
		detail:       detail,
		language:     language,
		downloadType: downloadType,
	}
}

// NewDatasetMetadata wraps an already decoded dataset detail
func NewDatasetMetadata(detail models.DatasetDetail, language, downloadType string) *DatasetMetadata {
	return newDatasetMetadata("", detail, language, downloadType)
}

// ID returns the dataset id
func (m *DatasetMetadata) ID() string { return m.detail.ID }

// Context returns the context the dataset was resolved in
func (m *DatasetMetadata) Context() string { return m.contextName }

// Name returns the dataset name in the configured language
func (m *DatasetMetadata) Name() (string, bool) {
	return models.First(m.detail.Names.Name, m.language)
}

// Documents returns every document of the dataset, unfiltered
func (m *DatasetMetadata) Documents() []models.Document {
	return m.detail.Documents.Document
}

// DownloadLinks returns the hrefs of the documents matching both the configured
// download type and language, in document order
func (m *DatasetMetadata) DownloadLinks() []string {
	links := []string{}
	for _, doc := range m.detail.Documents.Document {
		if doc.Type != m.downloadType {
			continue
		}
		links = append(links, models.All(doc.Href, m.language)...)
	}
	return links
}

// HasPublicationDate reports whether the dataset carries a publication date
func (m *DatasetMetadata) HasPublicationDate() bool {
	return m.detail.PublicationDate != ""
}

// PublicationDate returns the calendar date the dataset was published. Only
// the leading YYYY-MM-DD of the upstream value is read; no timezone applies.
func (m *DatasetMetadata) PublicationDate() (civil.Date, error) {
	raw := m.detail.PublicationDate
	if len(raw) > publicationDateLength {
		raw = raw[:publicationDateLength]
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, errors.Wrapf(err, "invalid publication date %q", m.detail.PublicationDate)
	}
	return d, nil
}

// Summary joins the descriptions in the configured language of every
// reference metadata item with newlines. Text is returned as published,
// including any markup.
func (m *DatasetMetadata) Summary() string {
	var parts []string
	for _, item := range m.detail.RefMetadata.RefMetadataItem {
		parts = append(parts, models.All(item.Descriptions.Description, m.language)...)
	}
	return strings.Join(parts, "\n")
}
