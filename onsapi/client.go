package onsapi

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	dphttp "github.com/ONSdigital/dp-net/http"
	"github.com/ONSdigital/dp-onsapi/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

//go:generate moq -out mock/httpclient.go -pkg mock . HTTPClient

// DefaultRoot is the base address of the ONS data API
const DefaultRoot = "http://data.ons.gov.uk/ons/api/data/"

// Lookup names
const (
	contextsLookup       = "contexts"
	datasetsLookup       = "datasets"
	datasetDetailsLookup = "datasetdetails/"
)

// sinceDateFormat is the DD-MM-YYYY layout the datasets lookup expects for "from"
const sinceDateFormat = "02-01-2006"

// Format is the representation requested from the ONS API
type Format string

// Possible response formats
const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Defaults applied to a zero Config
const (
	DefaultLanguage     = "en"
	DefaultDownloadType = "CSV"
)

// HTTPClient is the transport used to reach the ONS API
type HTTPClient interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Config holds the settings of a Client. Zero fields take their defaults.
type Config struct {
	Root         string
	APIKey       string
	Format       Format
	Language     string
	DownloadType string
}

// Client resolves ONS dataset names into download links
type Client struct {
	cli          HTTPClient
	root         string
	apiKey       string
	format       Format
	language     string
	downloadType string

	mu       sync.Mutex
	contexts []string
	loading  singleflight.Group
}

// New creates a Client. If cli is nil a dp-net http client is used.
func New(cfg Config, cli HTTPClient) *Client {
	if cli == nil {
		cli = dphttp.NewClient()
	}
	c := &Client{
		cli:          cli,
		root:         cfg.Root,
		apiKey:       cfg.APIKey,
		format:       cfg.Format,
		language:     cfg.Language,
		downloadType: cfg.DownloadType,
	}
	if c.root == "" {
		c.root = DefaultRoot
	}
	if c.format == "" {
		c.format = FormatJSON
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	if c.downloadType == "" {
		c.downloadType = DefaultDownloadType
	}
	return c
}

// Language returns the language used to select names, descriptions and links
func (c *Client) Language() string { return c.language }

// DownloadType returns the document type download links are filtered by
func (c *Client) DownloadType() string { return c.downloadType }

// Contexts returns the names of all statistical contexts. The list is fetched
// on first use and kept for the lifetime of the Client. Concurrent first
// callers share one lookup, which is not cancelled when any one caller's ctx
// is; each caller stops waiting when its own ctx is done.
func (c *Client) Contexts(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	contexts := c.contexts
	c.mu.Unlock()
	if contexts != nil {
		return contexts, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.loading.DoChan(contextsLookup, func() (interface{}, error) {
		var payload models.ContextsPayload
		if err := c.query(loadCtx, contextsLookup, nil, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to list contexts")
		}
		names := payload.Names()

		c.mu.Lock()
		c.contexts = names
		c.mu.Unlock()
		return names, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "stopped waiting for contexts")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]string), nil
	}
}

// ResolveContexts returns the contexts an operation should cover: the one
// given, or every context when none is given
func (c *Client) ResolveContexts(ctx context.Context, contextName string) ([]string, error) {
	if contextName != "" {
		return []string{contextName}, nil
	}
	return c.Contexts(ctx)
}

// Datasets lists the datasets of a context, optionally only those published
// since the given date. A context the API does not know yields no datasets.
func (c *Client) Datasets(ctx context.Context, contextName string, since time.Time) ([]models.DatasetSummary, error) {
	params := url.Values{"context": []string{contextName}}
	if !since.IsZero() {
		params.Set("from", since.Format(sinceDateFormat))
	}

	var payload models.DatasetsPayload
	if err := c.query(ctx, datasetsLookup, params, &payload); err != nil {
		if e, ok := errors.Cause(err).(*UpstreamError); ok && e.StatusCode == http.StatusNotFound {
			log.Info(ctx, "no datasets found for context", log.Data{"context": contextName})
			return []models.DatasetSummary{}, nil
		}
		return nil, errors.Wrapf(err, "failed to list datasets for context %q", contextName)
	}

	summaries := payload.Summaries()
	if summaries == nil {
		summaries = []models.DatasetSummary{}
	}
	return summaries, nil
}

// LocalizedName returns the name of the dataset in the configured language
func (c *Client) LocalizedName(dataset models.DatasetSummary) (string, bool) {
	return models.First(dataset.Names.Name, c.language)
}

// DatasetNames returns the distinct localized names of the datasets in the
// given context, or in all contexts. Order is not guaranteed.
func (c *Client) DatasetNames(ctx context.Context, contextName string, since time.Time) ([]string, error) {
	contexts, err := c.ResolveContexts(ctx, contextName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := []string{}
	for _, cn := range contexts {
		datasets, err := c.Datasets(ctx, cn, since)
		if err != nil {
			return nil, err
		}
		for _, d := range datasets {
			name, ok := c.LocalizedName(d)
			if !ok {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names, nil
}

// FindDatasets returns the datasets whose localized name is exactly name
func (c *Client) FindDatasets(ctx context.Context, name, contextName string, since time.Time) ([]models.DatasetSummary, error) {
	matches, err := c.findDatasets(ctx, name, contextName, since)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.DatasetSummary, 0, len(matches))
	for _, m := range matches {
		summaries = append(summaries, m.summary)
	}
	return summaries, nil
}

type match struct {
	context string
	summary models.DatasetSummary
}

func (c *Client) findDatasets(ctx context.Context, name, contextName string, since time.Time) ([]match, error) {
	contexts, err := c.ResolveContexts(ctx, contextName)
	if err != nil {
		return nil, err
	}

	var matches []match
	for _, cn := range contexts {
		datasets, err := c.Datasets(ctx, cn, since)
		if err != nil {
			return nil, err
		}
		for _, d := range datasets {
			if n, ok := c.LocalizedName(d); ok && n == name {
				matches = append(matches, match{context: cn, summary: d})
			}
		}
	}
	return matches, nil
}

// DatasetDetails fetches the details of every dataset named name
func (c *Client) DatasetDetails(ctx context.Context, name, contextName string, since time.Time) ([]*DatasetMetadata, error) {
	matches, err := c.findDatasets(ctx, name, contextName, since)
	if err != nil {
		return nil, err
	}

	details := make([]*DatasetMetadata, 0, len(matches))
	for _, m := range matches {
		params := url.Values{
			"context": []string{m.context},
			"geog":    []string{m.summary.GeographicalHierarchy},
		}

		var payload models.DatasetDetailPayload
		if err := c.query(ctx, datasetDetailsLookup+m.summary.ID, params, &payload); err != nil {
			return nil, errors.Wrapf(err, "failed to get details of dataset %q", m.summary.ID)
		}
		details = append(details, newDatasetMetadata(m.context, payload.DatasetDetail, c.language, c.downloadType))
	}
	return details, nil
}

// DownloadLinks returns the download links of every dataset named name,
// filtered by the configured language and download type
func (c *Client) DownloadLinks(ctx context.Context, name, contextName string, since time.Time) ([]string, error) {
	details, err := c.DatasetDetails(ctx, name, contextName, since)
	if err != nil {
		return nil, err
	}

	links := []string{}
	for _, d := range details {
		links = append(links, d.DownloadLinks()...)
	}
	return links, nil
}
