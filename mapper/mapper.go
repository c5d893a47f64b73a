package mapper

import (
	"github.com/ONSdigital/dp-onsapi/models"
	"github.com/ONSdigital/dp-onsapi/onsapi"
	"github.com/pkg/errors"
)

// MapDataset maps the metadata of a resolved dataset to its public view. A
// dataset with no publication date is mapped without one; a publication date
// that cannot be parsed is an error.
func MapDataset(m *onsapi.DatasetMetadata) (models.Dataset, error) {
	d := models.Dataset{
		ID:            m.ID(),
		Context:       m.Context(),
		Summary:       m.Summary(),
		DownloadLinks: m.DownloadLinks(),
	}
	if name, ok := m.Name(); ok {
		d.Name = name
	}

	if m.HasPublicationDate() {
		date, err := m.PublicationDate()
		if err != nil {
			return models.Dataset{}, errors.Wrapf(err, "failed to map dataset %q", m.ID())
		}
		d.PublicationDate = date.String()
	}
	return d, nil
}

// MapDatasets maps every dataset, failing on the first that cannot be mapped
func MapDatasets(metadata []*onsapi.DatasetMetadata) (models.DatasetDetailsResponse, error) {
	items := make([]models.Dataset, 0, len(metadata))
	for _, m := range metadata {
		d, err := MapDataset(m)
		if err != nil {
			return models.DatasetDetailsResponse{}, err
		}
		items = append(items, d)
	}
	return models.DatasetDetailsResponse{Items: items, Count: len(items)}, nil
}
