package onsapi_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ONSdigital/dp-onsapi/onsapi/mock"
)

const (
	contextsBody = `{"ons":{"contextList":{"statisticalContext":[{"contextName":"Economy"},{"contextName":"Census"}]}}}`

	economyDatasetsBody = `{"ons":{"datasetList":{"contexts":{"context":{"contextName":"Economy","datasets":{"dataset":[
		{"id":"GDP1","geographicalHierarchy":"2011WARDH","names":{"name":[{"@xml.lang":"en","$":"GDP"},{"@xml.lang":"cy","$":"CMC"}]}},
		{"id":"INF1","geographicalHierarchy":"2011WARDH","names":{"name":{"@xml.lang":"cy","$":"Chwyddiant"}}}
	]}}}}}}`

	censusDatasetsBody = `{"ons":{"datasetList":{"contexts":{"context":{"contextName":"Census","datasets":{"dataset":[
		{"id":"GDP2","geographicalHierarchy":"2011STATH","names":{"name":{"@xml.lang":"en","$":"GDP"}}},
		{"id":"POP1","geographicalHierarchy":"2011STATH","names":{"name":{"@xml.lang":"en","$":"Population"}}}
	]}}}}}}`

	gdp1DetailBody = `{"ons":{"datasetDetail":{"id":"GDP1","names":{"name":{"@xml.lang":"en","$":"GDP"}},
		"publicationDate":"2020-03-15T00:00:00",
		"documents":{"document":[
			{"@type":"CSV","href":{"@xml.lang":"en","$":"http://x/gdp.csv"}},
			{"@type":"CSV","href":{"@xml.lang":"cy","$":"http://x/gdp-cy.csv"}},
			{"@type":"XLS","href":{"@xml.lang":"en","$":"http://x/gdp.xls"}}
		]},
		"refMetadata":{"refMetadataItem":{"descriptions":{"description":[{"@xml.lang":"en","$":"Foo"},{"@xml.lang":"cy","$":"Bar"}]}}}}}}`

	gdp2DetailBody = `{"ons":{"datasetDetail":{"id":"GDP2","publicationDate":"2021-06-01",
		"documents":{"document":{"@type":"CSV","href":{"@xml.lang":"en","$":"http://x/gdp-census.csv"}}}}}}`

	notFoundBody = `{"ons":{"error":"context not found"}}`
)

type stubResponse struct {
	status int
	body   string
}

// key identifies a request by lookup path and context parameter, e.g. "datasets.json?context=Economy"
func key(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	lookup := strings.TrimPrefix(u.Path, "/ons/api/data/")
	if c := u.Query().Get("context"); c != "" {
		return lookup + "?context=" + c
	}
	return lookup
}

func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// stubONS returns a transport answering from routes, and a 404 for anything else
func stubONS(routes map[string]stubResponse) *mock.HTTPClientMock {
	return &mock.HTTPClientMock{
		GetFunc: func(ctx context.Context, uri string) (*http.Response, error) {
			r, ok := routes[key(uri)]
			if !ok {
				return newResponse(http.StatusNotFound, notFoundBody), nil
			}
			return newResponse(r.status, r.body), nil
		},
	}
}

func defaultRoutes() map[string]stubResponse {
	return map[string]stubResponse{
		"contexts.json":                            {http.StatusOK, contextsBody},
		"datasets.json?context=Economy":            {http.StatusOK, economyDatasetsBody},
		"datasets.json?context=Census":             {http.StatusOK, censusDatasetsBody},
		"datasetdetails/GDP1.json?context=Economy": {http.StatusOK, gdp1DetailBody},
		"datasetdetails/GDP2.json?context=Census":  {http.StatusOK, gdp2DetailBody},
	}
}
