package onsapi

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-onsapi/models"
	"github.com/pkg/errors"
)

// MsgHealthy is the check message reported when the ONS API responds
const MsgHealthy = "ONS API is healthy"

// Checker queries the contexts lookup and updates the check state with the
// outcome. The memoized contexts are neither read nor written.
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	var payload models.ContextsPayload
	if err := c.query(ctx, contextsLookup, nil, &payload); err != nil {
		code := 0
		if e, ok := errors.Cause(err).(*UpstreamError); ok {
			code = e.StatusCode
		}
		return state.Update(healthcheck.StatusCritical, err.Error(), code)
	}
	return state.Update(healthcheck.StatusOK, MsgHealthy, http.StatusOK)
}
