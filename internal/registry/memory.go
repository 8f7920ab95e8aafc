// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry stores the hints plugins submit for display. Memory keeps
// them for the life of the process; Store persists them in SQLite.
package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// Entry is a stored card together with who submitted it.
type Entry struct {
	SubmissionID string     `json:"submission_id" yaml:"submission_id"`
	PluginID     string     `json:"plugin_id" yaml:"plugin_id"`
	Card         types.Card `json:"card" yaml:"card"`
}

// Memory is an in-process hints registry safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemory returns an empty registry.
func NewMemory() *Memory {
	return &Memory{}
}

// RemoveHintsInRegion drops pluginID's hints lying inside region.
func (m *Memory) RemoveHintsInRegion(_ context.Context, region types.Region, _ string, pluginID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.PluginID == pluginID && region.Contains(e.Card.Location) {
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return nil
}

// AddHints stores cards under pluginID.
func (m *Memory) AddHints(_ context.Context, submissionID, pluginID string, cards []types.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range cards {
		m.entries = append(m.entries, Entry{SubmissionID: submissionID, PluginID: pluginID, Card: c})
	}
	return nil
}

// Hints returns pluginID's entries ordered by location.
func (m *Memory) Hints(_ context.Context, pluginID string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Entry
	for _, e := range m.entries {
		if e.PluginID == pluginID {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out, nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Card.Location, entries[j].Card.Location
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})
}
