package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ONSdigital/dp-onsapi/mapper"
	"github.com/ONSdigital/dp-onsapi/models"
	"github.com/ONSdigital/dp-onsapi/onsapi"
	"github.com/ONSdigital/log.go/v2/log"
	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

//go:generate moq -out mocks_handlers.go . ONSClient

// ONSClient is an interface with methods required for an ONS API client
type ONSClient interface {
	Contexts(ctx context.Context) ([]string, error)
	DatasetNames(ctx context.Context, contextName string, since time.Time) ([]string, error)
	DatasetDetails(ctx context.Context, name, contextName string, since time.Time) ([]*onsapi.DatasetMetadata, error)
	DownloadLinks(ctx context.Context, name, contextName string, since time.Time) ([]string, error)
}

// ClientError is an interface that can be used to retrieve the status code if a client has errored
type ClientError interface {
	error
	Code() int
}

type badRequestError struct {
	err error
}

func (e badRequestError) Error() string { return e.err.Error() }
func (e badRequestError) Code() int     { return http.StatusBadRequest }

func setStatusCode(req *http.Request, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if err, ok := errors.Cause(err).(ClientError); ok {
		if err.Code() == http.StatusNotFound || err.Code() == http.StatusBadRequest {
			status = err.Code()
		}
	}
	log.Error(req.Context(), "setting response status", err, log.Data{"status": status})
	w.WriteHeader(status)
}

// filter reads the optional context and from query parameters
func filter(req *http.Request) (contextName string, since time.Time, err error) {
	q := req.URL.Query()
	contextName = q.Get("context")
	if from := q.Get("from"); from != "" {
		d, err := civil.ParseDate(from)
		if err != nil {
			return "", time.Time{}, badRequestError{err: err}
		}
		since = d.In(time.UTC)
	}
	return contextName, since, nil
}

func writeJSON(req *http.Request, w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error(req.Context(), "error marshalling response", err)
		setStatusCode(req, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		log.Error(req.Context(), "error writing response", err)
	}
}

// ContextList returns the statistical contexts of the ONS API
func ContextList(cli ONSClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		contexts, err := cli.Contexts(ctx)
		if err != nil {
			log.Error(ctx, "error getting contexts", err)
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, models.ContextListResponse{Items: contexts, Count: len(contexts)})
	}
}

// DatasetNames returns the sorted names of the datasets in a context, or in all contexts
func DatasetNames(cli ONSClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		contextName, since, err := filter(req)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}
		logData := log.Data{"context": contextName, "since": since}

		names, err := cli.DatasetNames(ctx, contextName, since)
		if err != nil {
			log.Error(ctx, "error getting dataset names", err, logData)
			setStatusCode(req, w, err)
			return
		}
		sort.Strings(names)

		writeJSON(req, w, models.DatasetNamesResponse{Items: names, Count: len(names)})
	}
}

// DatasetDetails returns the details of every dataset with the requested name
func DatasetDetails(cli ONSClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		name := mux.Vars(req)["name"]

		contextName, since, err := filter(req)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}
		logData := log.Data{"name": name, "context": contextName, "since": since}

		metadata, err := cli.DatasetDetails(ctx, name, contextName, since)
		if err != nil {
			log.Error(ctx, "error getting dataset details", err, logData)
			setStatusCode(req, w, err)
			return
		}

		resp, err := mapper.MapDatasets(metadata)
		if err != nil {
			log.Error(ctx, "error mapping dataset details", err, logData)
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, resp)
	}
}

// DownloadLinks returns the download links of every dataset with the requested name
func DownloadLinks(cli ONSClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		name := mux.Vars(req)["name"]

		contextName, since, err := filter(req)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}
		logData := log.Data{"name": name, "context": contextName, "since": since}

		links, err := cli.DownloadLinks(ctx, name, contextName, since)
		if err != nil {
			log.Error(ctx, "error getting download links", err, logData)
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, models.DownloadLinksResponse{Items: links, Count: len(links)})
	}
}
