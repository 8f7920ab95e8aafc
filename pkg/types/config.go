// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "dbpedia-info/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DetectConfig holds settings for Wikipedia reference detection.
type DetectConfig struct {
	// TrimWhitespaceInSpan hints only the visible text of a block. When
	// false the hint covers the raw [start, end] block range.
	TrimWhitespaceInSpan bool `json:"trim_whitespace_in_span" yaml:"trim_whitespace_in_span"`

	// RequiredPredicates restricts detection to blocks whose innermost
	// annotation asserts one of these predicates. Empty means any predicate.
	RequiredPredicates []string `json:"required_predicates" yaml:"required_predicates"`

	// UnderscoresAsSpaces rewrites article title underscores as spaces.
	UnderscoresAsSpaces bool `json:"underscores_as_spaces" yaml:"underscores_as_spaces"`
}

// DefaultDetectConfig returns the whitespace-normalizing configuration.
func DefaultDetectConfig() DetectConfig {
	return DetectConfig{TrimWhitespaceInSpan: true}
}

// LookupConfig holds settings for the knowledge endpoint client.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the SPARQL endpoint URL (default http://dbpedia.org/sparql).
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// RequestsPerSecond caps outbound lookups. Zero disables the limit.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// Burst is the limiter bucket size (default 1).
	Burst int `json:"burst" yaml:"burst"`
}

// RegistryConfig holds settings for the persistent hints registry.
type RegistryConfig struct {
	// Path is the SQLite database file. Empty selects an in-memory registry.
	Path string `json:"path" yaml:"path"`
}

// Config groups all component configurations.
type Config struct {
	Detect   DetectConfig   `json:"detect" yaml:"detect"`
	Lookup   LookupConfig   `json:"lookup" yaml:"lookup"`
	Registry RegistryConfig `json:"registry" yaml:"registry"`
}
