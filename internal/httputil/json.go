// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across components.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// MaxBodyBytes caps how much of a response body GetJSON will decode.
const MaxBodyBytes = 4 << 20

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
}

// GetJSON issues a GET request for base with params appended to its query
// string and decodes the JSON response body into v.
//
// A non-2xx response yields a *StatusError; its body is drained and
// discarded. A body that is not valid JSON yields a wrapped decode error.
func GetJSON(ctx context.Context, client *http.Client, base string, params url.Values, userAgent string, v any) error {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("parsing endpoint %q: %w", base, err)
	}
	q := u.Query()
	for k, vs := range params {
		for _, val := range vs {
			q.Add(k, val)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodyBytes))
		return &StatusError{StatusCode: resp.StatusCode, URL: base}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
