package onsapi_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/ONSdigital/dp-onsapi/models"
	"github.com/ONSdigital/dp-onsapi/onsapi"
	json "github.com/goccy/go-json"
	. "github.com/smartystreets/goconvey/convey"
)

func decodeDetail(body string) models.DatasetDetail {
	var payload struct {
		ONS models.DatasetDetailPayload `json:"ons"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		panic(err)
	}
	return payload.ONS.DatasetDetail
}

func TestDownloadLinksFiltering(t *testing.T) {
	Convey("Given a dataset with CSV and XLS documents in two languages", t, func() {
		detail := decodeDetail(gdp1DetailBody)

		Convey("Then english CSV selects only the english CSV", func() {
			m := onsapi.NewDatasetMetadata(detail, "en", "CSV")
			So(m.DownloadLinks(), ShouldResemble, []string{"http://x/gdp.csv"})
		})

		Convey("Then welsh CSV selects only the welsh CSV", func() {
			m := onsapi.NewDatasetMetadata(detail, "cy", "CSV")
			So(m.DownloadLinks(), ShouldResemble, []string{"http://x/gdp-cy.csv"})
		})

		Convey("Then english XLS selects only the english XLS", func() {
			m := onsapi.NewDatasetMetadata(detail, "en", "XLS")
			So(m.DownloadLinks(), ShouldResemble, []string{"http://x/gdp.xls"})
		})

		Convey("Then a type with no documents yields an empty list", func() {
			m := onsapi.NewDatasetMetadata(detail, "en", "ZIP")
			So(m.DownloadLinks(), ShouldNotBeNil)
			So(m.DownloadLinks(), ShouldBeEmpty)
		})

		Convey("Then every document stays available unfiltered", func() {
			m := onsapi.NewDatasetMetadata(detail, "en", "CSV")
			So(m.Documents(), ShouldHaveLength, 3)
		})
	})
}

func TestPublicationDate(t *testing.T) {
	Convey("Given a timestamped publication date", t, func() {
		m := onsapi.NewDatasetMetadata(models.DatasetDetail{PublicationDate: "2020-03-15T00:00:00"}, "en", "CSV")

		Convey("Then the calendar date is returned", func() {
			d, err := m.PublicationDate()
			So(err, ShouldBeNil)
			So(d, ShouldResemble, civil.Date{Year: 2020, Month: 3, Day: 15})
		})
	})

	Convey("Given a bare date", t, func() {
		m := onsapi.NewDatasetMetadata(models.DatasetDetail{PublicationDate: "2021-06-01"}, "en", "CSV")

		Convey("Then it is parsed", func() {
			d, err := m.PublicationDate()
			So(err, ShouldBeNil)
			So(d.String(), ShouldEqual, "2021-06-01")
		})
	})

	Convey("Given publication dates that are not dates", t, func() {
		for _, raw := range []string{"not-a-date", "", "2020-02-30T00:00:00"} {
			m := onsapi.NewDatasetMetadata(models.DatasetDetail{PublicationDate: raw}, "en", "CSV")
			_, err := m.PublicationDate()
			So(err, ShouldNotBeNil)
		}
	})
}

func TestSummary(t *testing.T) {
	Convey("Given an english and a welsh description", t, func() {
		detail := decodeDetail(gdp1DetailBody)

		Convey("Then only the english text is returned", func() {
			So(onsapi.NewDatasetMetadata(detail, "en", "CSV").Summary(), ShouldEqual, "Foo")
		})

		Convey("Then only the welsh text is returned in welsh", func() {
			So(onsapi.NewDatasetMetadata(detail, "cy", "CSV").Summary(), ShouldEqual, "Bar")
		})
	})

	Convey("Given several metadata items with markup", t, func() {
		detail := decodeDetail(`{"ons":{"datasetDetail":{"refMetadata":{"refMetadataItem":[
			{"descriptions":{"description":[{"@xml.lang":"en","$":"<p>One</p>"},{"@xml.lang":"en","$":"Two"}]}},
			{"descriptions":{"description":{"@xml.lang":"cy","$":"Dau"}}},
			{"descriptions":{"description":{"@xml.lang":"en","$":"Three"}}}
		]}}}}`)

		Convey("Then matching texts are joined with newlines in order, unchanged", func() {
			So(onsapi.NewDatasetMetadata(detail, "en", "CSV").Summary(), ShouldEqual, "<p>One</p>\nTwo\nThree")
		})
	})

	Convey("Given no metadata", t, func() {
		Convey("Then the summary is empty", func() {
			So(onsapi.NewDatasetMetadata(models.DatasetDetail{}, "en", "CSV").Summary(), ShouldBeEmpty)
		})
	})
}

func TestName(t *testing.T) {
	Convey("Given a detail named only in english", t, func() {
		detail := decodeDetail(gdp1DetailBody)

		So(onsapi.NewDatasetMetadata(detail, "en", "CSV").Context(), ShouldBeEmpty)

		name, ok := onsapi.NewDatasetMetadata(detail, "en", "CSV").Name()
		So(ok, ShouldBeTrue)
		So(name, ShouldEqual, "GDP")

		_, ok = onsapi.NewDatasetMetadata(detail, "cy", "CSV").Name()
		So(ok, ShouldBeFalse)
	})
}
