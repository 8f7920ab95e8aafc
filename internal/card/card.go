// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package card implements the info card that displays what the knowledge
// endpoint knows about a hinted term. A card looks its term up exactly once,
// when it is mounted, and cancels the lookup when it is closed.
package card

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/dbpedia-info/internal/lookup"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// Status is the display state of a card.
type Status int

const (
	// StatusIdle means the card has not been mounted.
	StatusIdle Status = iota
	// StatusPending means the lookup is in flight.
	StatusPending
	// StatusLoaded means the lookup resolved.
	StatusLoaded
	// StatusFailed means the lookup failed or was cancelled. The card renders nothing.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// State is a snapshot of what a card displays.
type State struct {
	Term        string
	Status      Status
	Description types.Optional[string]
	Image       types.Optional[string]
}

// Card displays one hint.
type Card struct {
	info     types.Card
	lookuper lookup.Lookuper
	logger   *zap.Logger

	mountOnce sync.Once
	closeOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}

	mu    sync.Mutex
	state State
}

// New returns an unmounted card for info.
func New(info types.Card, l lookup.Lookuper, logger *zap.Logger) *Card {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Card{
		info:     info,
		lookuper: l,
		logger:   logger,
		done:     make(chan struct{}),
		state:    State{Term: info.Info.Term, Status: StatusIdle},
	}
}

// Info returns the card descriptor this card displays.
func (c *Card) Info() types.Card { return c.info }

// Mount starts the lookup for the card's term. Only the first call has any
// effect; the lookup runs until it resolves, ctx ends, or Close is called.
func (c *Card) Mount(ctx context.Context) {
	c.mountOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		c.mu.Lock()
		c.cancel = cancel
		c.state.Status = StatusPending
		c.mu.Unlock()

		go c.fetch(ctx)
	})
}

func (c *Card) fetch(ctx context.Context) {
	defer close(c.done)

	res, err := c.lookuper.Lookup(ctx, c.info.Info.Term)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Debug("card lookup failed", zap.String("term", c.info.Info.Term), zap.Error(err))
		c.state.Status = StatusFailed
		return
	}
	c.state.Status = StatusLoaded
	c.state.Description = res.Description
	c.state.Image = res.Image
}

// Done is closed once a mounted card's lookup has finished. It never
// closes for a card that was not mounted.
func (c *Card) Done() <-chan struct{} { return c.done }

// State returns the current display state.
func (c *Card) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close cancels an in-flight lookup and waits for it to return. It is safe
// to call on a card that was never mounted, and more than once.
func (c *Card) Close() {
	c.closeOnce.Do(func() {
		// Block further mounts so the lookup goroutine cannot start after Close.
		mounted := true
		c.mountOnce.Do(func() { mounted = false })
		if !mounted {
			return
		}
		c.mu.Lock()
		cancel := c.cancel
		c.mu.Unlock()
		cancel()
		<-c.done
	})
}
