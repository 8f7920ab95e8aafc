// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup fetches a short description and a thumbnail image for a
// term from a DBpedia SPARQL endpoint.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/dbpedia-info/internal/httputil"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// DefaultEndpoint is the public DBpedia SPARQL endpoint.
const DefaultEndpoint = "http://dbpedia.org/sparql"

// ResultsFormat is the format parameter sent with every query.
const ResultsFormat = "application/sparql-results+json"

// ErrNoBindings is returned when the endpoint knows nothing about a term.
var ErrNoBindings = errors.New("no bindings in SPARQL result")

// LookupError reports a failed lookup. Err is ErrNoBindings, a
// *httputil.StatusError, or the transport or decode error.
type LookupError struct {
	Term string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("looking up %q: %v", e.Term, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Client queries the knowledge endpoint. It holds no per-lookup state and
// is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient returns a Client for cfg. A nil httpClient gets one with
// cfg.Timeout; a nil logger discards log output.
func NewClient(cfg types.LookupConfig, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		userAgent:  cfg.UserAgent,
		limiter:    limiter,
		logger:     logger,
	}
}

// Lookup returns the description and image of the resource labelled term.
// Every failure, including an empty result set, is a *LookupError.
func (c *Client) Lookup(ctx context.Context, term string) (types.LookupResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return types.LookupResult{}, &LookupError{Term: term, Err: err}
		}
	}

	params := url.Values{
		"format": {ResultsFormat},
		"query":  {BuildQuery(term)},
	}

	var sr sparqlResponse
	if err := httputil.GetJSON(ctx, c.httpClient, c.endpoint, params, c.userAgent, &sr); err != nil {
		c.logger.Debug("lookup failed", zap.String("term", term), zap.Error(err))
		return types.LookupResult{}, &LookupError{Term: term, Err: err}
	}

	if len(sr.Results.Bindings) == 0 {
		return types.LookupResult{}, &LookupError{Term: term, Err: ErrNoBindings}
	}

	first := sr.Results.Bindings[0]
	result := types.LookupResult{
		Description: valueOf(first, "description"),
		Image:       valueOf(first, "image"),
	}
	c.logger.Debug("lookup resolved",
		zap.String("term", term),
		zap.Bool("description", result.Description.IsPresent()),
		zap.Bool("image", result.Image.IsPresent()))
	return result, nil
}

func valueOf(b sparqlBinding, name string) types.Optional[string] {
	v, ok := b[name]
	if !ok {
		return types.None[string]()
	}
	return types.Some(v.Value)
}

// SPARQL 1.1 JSON results structures.
type sparqlResponse struct {
	Head    sparqlHead    `json:"head"`
	Results sparqlResults `json:"results"`
}

type sparqlHead struct {
	Vars []string `json:"vars"`
}

type sparqlResults struct {
	Bindings []sparqlBinding `json:"bindings"`
}

type sparqlBinding map[string]sparqlValue

type sparqlValue struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}
