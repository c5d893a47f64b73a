package onsapi

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// UpstreamError is returned when the ONS API responds with a status other than 200
type UpstreamError struct {
	URL        string
	StatusCode int
	// Body is the decoded error body, nil when the body is not valid JSON
	Body interface{}
	// Raw is the undecoded error body
	Raw []byte
}

func newUpstreamError(uri string, status int, raw []byte) *UpstreamError {
	e := &UpstreamError{URL: uri, StatusCode: status, Raw: raw}
	var body interface{}
	if err := json.Unmarshal(raw, &body); err == nil {
		e.Body = body
	}
	return e
}

func (e *UpstreamError) Error() string {
	if e.Body != nil {
		return fmt.Sprintf("unable to access the api for %s because of %v (status %d)", e.URL, e.Body, e.StatusCode)
	}
	return fmt.Sprintf("unable to access the api for %s because of %q (status %d)", e.URL, string(e.Raw), e.StatusCode)
}

// Code returns the status code received from the ONS API
func (e *UpstreamError) Code() int {
	return e.StatusCode
}

// MalformedResponseError is returned when a successful response cannot be decoded
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

// Unwrap returns the decoding error
func (e *MalformedResponseError) Unwrap() error { return e.Err }
