package models

import (
	"testing"

	json "github.com/goccy/go-json"
	. "github.com/smartystreets/goconvey/convey"
)

func TestList(t *testing.T) {
	Convey("Given a repeated element rendered as an array", t, func() {
		var names Names
		err := json.Unmarshal([]byte(`{"name":[{"@xml.lang":"en","$":"GDP"},{"@xml.lang":"cy","$":"CMC"}]}`), &names)

		Convey("Then every item is decoded", func() {
			So(err, ShouldBeNil)
			So(names.Name, ShouldResemble, List[LocalizedValue]{{Lang: "en", Value: "GDP"}, {Lang: "cy", Value: "CMC"}})
		})
	})

	Convey("Given a repeated element rendered as a single object", t, func() {
		var names Names
		err := json.Unmarshal([]byte(`{"name":{"@xml.lang":"en","$":"GDP"}}`), &names)

		Convey("Then it is decoded as a list of one", func() {
			So(err, ShouldBeNil)
			So(names.Name, ShouldResemble, List[LocalizedValue]{{Lang: "en", Value: "GDP"}})
		})
	})

	Convey("Given a missing or null element", t, func() {
		var names Names
		So(json.Unmarshal([]byte(`{"name":null}`), &names), ShouldBeNil)
		So(names.Name, ShouldBeEmpty)
		So(json.Unmarshal([]byte(`{}`), &names), ShouldBeNil)
		So(names.Name, ShouldBeEmpty)
	})

	Convey("Given an element of the wrong shape", t, func() {
		var names Names
		So(json.Unmarshal([]byte(`{"name":"GDP"}`), &names), ShouldNotBeNil)
	})
}

func TestLocalizedSelection(t *testing.T) {
	values := []LocalizedValue{
		{Lang: "en", Value: "One"},
		{Lang: "cy", Value: "Un"},
		{Lang: "en", Value: "Two"},
	}

	Convey("First returns the first match only", t, func() {
		v, ok := First(values, "en")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "One")
	})

	Convey("First reports a missing language", t, func() {
		_, ok := First(values, "fr")
		So(ok, ShouldBeFalse)
	})

	Convey("All returns every match in order", t, func() {
		So(All(values, "en"), ShouldResemble, []string{"One", "Two"})
		So(All(values, "fr"), ShouldBeEmpty)
	})
}

func TestSummaries(t *testing.T) {
	Convey("Given a dataset list with datasets under several context elements", t, func() {
		var payload DatasetsPayload
		err := json.Unmarshal([]byte(`{"datasetList":{"contexts":{"context":[
			{"contextName":"Economy","datasets":{"dataset":{"id":"A"}}},
			{"contextName":"Economy","datasets":{"dataset":[{"id":"B"},{"id":"C"}]}}
		]}}}`), &payload)
		So(err, ShouldBeNil)

		Convey("Then they are flattened in order", func() {
			summaries := payload.Summaries()
			So(summaries, ShouldHaveLength, 3)
			So(summaries[0].ID, ShouldEqual, "A")
			So(summaries[2].ID, ShouldEqual, "C")
		})
	})
}
