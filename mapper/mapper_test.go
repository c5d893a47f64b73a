package mapper

import (
	"testing"

	"github.com/ONSdigital/dp-onsapi/models"
	"github.com/ONSdigital/dp-onsapi/onsapi"
	. "github.com/smartystreets/goconvey/convey"
)

func detail(publicationDate string) models.DatasetDetail {
	return models.DatasetDetail{
		ID:              "QS104EW",
		Names:           models.Names{Name: models.List[models.LocalizedValue]{{Lang: "en", Value: "Sex"}}},
		PublicationDate: publicationDate,
		Documents: models.Documents{Document: models.List[models.Document]{
			{Type: "CSV", Href: models.List[models.LocalizedValue]{{Lang: "en", Value: "http://x/qs104ew.csv"}}},
		}},
		RefMetadata: models.RefMetadata{RefMetadataItem: models.List[models.RefMetadataItem]{
			{Descriptions: models.Descriptions{Description: models.List[models.LocalizedValue]{{Lang: "en", Value: "Usual residents by sex"}}}},
		}},
	}
}

func TestMapDataset(t *testing.T) {
	Convey("Given the metadata of a published dataset", t, func() {
		m := onsapi.NewDatasetMetadata(detail("2013-01-30T09:30:00Z"), "en", "CSV")

		Convey("Then every view is mapped", func() {
			d, err := MapDataset(m)
			So(err, ShouldBeNil)
			So(d, ShouldResemble, models.Dataset{
				ID:              "QS104EW",
				Name:            "Sex",
				PublicationDate: "2013-01-30",
				Summary:         "Usual residents by sex",
				DownloadLinks:   []string{"http://x/qs104ew.csv"},
			})
		})
	})

	Convey("Given the metadata of a dataset with no publication date", t, func() {
		m := onsapi.NewDatasetMetadata(detail(""), "en", "CSV")

		Convey("Then it is mapped without one", func() {
			d, err := MapDataset(m)
			So(err, ShouldBeNil)
			So(d.PublicationDate, ShouldBeEmpty)
		})
	})

	Convey("Given the metadata of a dataset with an invalid publication date", t, func() {
		m := onsapi.NewDatasetMetadata(detail("soon"), "en", "CSV")

		Convey("Then mapping fails", func() {
			_, err := MapDataset(m)
			So(err, ShouldNotBeNil)

			_, err = MapDatasets([]*onsapi.DatasetMetadata{onsapi.NewDatasetMetadata(detail(""), "en", "CSV"), m})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given no metadata", t, func() {
		resp, err := MapDatasets(nil)
		So(err, ShouldBeNil)
		So(resp.Count, ShouldEqual, 0)
		So(resp.Items, ShouldNotBeNil)
	})
}
