package onsapi

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/ONSdigital/log.go/v2/log"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const apiKeyParam = "apikey"

// envelope is the fixed top level object wrapping every ONS API payload
type envelope struct {
	ONS json.RawMessage `json:"ons"`
}

// lookupURL builds the URL of a lookup, without query parameters
func (c *Client) lookupURL(lookup string) string {
	return c.root + lookup + "." + string(c.format)
}

// query performs a GET on the given lookup and decodes the payload inside the
// envelope into v. The api key is always attached; params is not modified.
func (c *Client) query(ctx context.Context, lookup string, params url.Values, v interface{}) error {
	values := url.Values{}
	for k, vs := range params {
		values[k] = append([]string(nil), vs...)
	}
	values.Set(apiKeyParam, c.apiKey)

	uri := c.lookupURL(lookup) + "?" + values.Encode()
	logData := log.Data{"lookup": lookup, "url": redact(uri)}
	log.Info(ctx, "querying ons api", logData)

	resp, err := c.cli.Get(ctx, uri)
	if err != nil {
		log.Error(ctx, "failed to query ons api", err, logData)
		return errors.Wrapf(err, "failed to query %s", redact(uri))
	}
	defer closeResponseBody(ctx, resp)

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read response body from %s", redact(uri))
	}

	if resp.StatusCode != http.StatusOK {
		logData["status"] = resp.StatusCode
		log.Info(ctx, "unexpected status from ons api", logData)
		return newUpstreamError(redact(uri), resp.StatusCode, b)
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return &MalformedResponseError{URL: redact(uri), Err: err}
	}
	if len(env.ONS) == 0 || string(env.ONS) == "null" {
		return &MalformedResponseError{URL: redact(uri), Err: errors.New("missing ons envelope")}
	}
	if err := json.Unmarshal(env.ONS, v); err != nil {
		return &MalformedResponseError{URL: redact(uri), Err: err}
	}
	return nil
}

// redact removes the api key from a URL so it can be logged or returned in errors
func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	q := u.Query()
	if q.Get(apiKeyParam) == "" {
		return uri
	}
	q.Set(apiKeyParam, "xxxxx")
	u.RawQuery = q.Encode()
	return u.String()
}

func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}
