package onsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ONSdigital/dp-onsapi/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookupURL(t *testing.T) {
	Convey("Given an xml client", t, func() {
		c := New(Config{Root: "http://localhost/api/", Format: FormatXML}, nil)

		Convey("Then lookups are suffixed with the format", func() {
			So(c.lookupURL("contexts"), ShouldEqual, "http://localhost/api/contexts.xml")
			So(c.lookupURL("datasetdetails/QS104EW"), ShouldEqual, "http://localhost/api/datasetdetails/QS104EW.xml")
		})
	})
}

func TestRedact(t *testing.T) {
	Convey("The api key is masked", t, func() {
		So(redact("http://localhost/contexts.json?apikey=secret&context=Census"), ShouldEqual,
			"http://localhost/contexts.json?apikey=xxxxx&context=Census")
	})

	Convey("URLs without a key are unchanged", t, func() {
		So(redact("http://localhost/contexts.json?context=Census"), ShouldEqual, "http://localhost/contexts.json?context=Census")
	})
}

func TestQuery(t *testing.T) {
	Convey("Given an ONS API served over http", t, func() {
		var got url.Values
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			w.Write([]byte(`{"ons":{"contextList":{"statisticalContext":[{"contextName":"Census"}]}}}`))
		}))
		defer ts.Close()

		c := New(Config{Root: ts.URL + "/", APIKey: "secret"}, nil)

		Convey("When a lookup is queried with parameters", func() {
			params := url.Values{"context": []string{"Census"}}
			var payload models.ContextsPayload
			err := c.query(context.Background(), "contexts", params, &payload)

			Convey("Then the payload inside the envelope is decoded", func() {
				So(err, ShouldBeNil)
				So(payload.Names(), ShouldResemble, []string{"Census"})
			})

			Convey("Then the api key is sent alongside the caller parameters", func() {
				So(got.Get("apikey"), ShouldEqual, "secret")
				So(got.Get("context"), ShouldEqual, "Census")
			})

			Convey("Then the caller parameters are left untouched", func() {
				So(params, ShouldResemble, url.Values{"context": []string{"Census"}})
			})
		})
	})
}
