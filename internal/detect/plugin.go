// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// ComponentID identifies this plugin in the hints registry and names the
// component that renders its cards.
const ComponentID = "editor-plugins/dbpedia-info-card"

// HintsRegistry is the host editor's store of displayed hints. It may be
// shared with other plugins and is assumed to synchronize itself.
type HintsRegistry interface {
	RemoveHintsInRegion(ctx context.Context, region types.Region, submissionID, pluginID string) error
	AddHints(ctx context.Context, submissionID, pluginID string, cards []types.Card) error
}

// Plugin handles one submission of annotated blocks from the host editor.
type Plugin struct {
	detector *Detector
	logger   *zap.Logger
}

// NewPlugin returns a Plugin that detects hints with d.
func NewPlugin(d *Detector, logger *zap.Logger) *Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Plugin{detector: d, logger: logger}
}

// Execute clears this plugin's hints from the region of every block, then
// submits the cards for all detected references in a single batch. An
// empty block list touches nothing; an empty batch is not submitted.
func (p *Plugin) Execute(ctx context.Context, submissionID string, blocks []types.AnnotatedBlock, reg HintsRegistry) ([]types.Card, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	for _, b := range blocks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := reg.RemoveHintsInRegion(ctx, b.Region(), submissionID, ComponentID); err != nil {
			return nil, fmt.Errorf("removing hints in %s: %w", b.Region(), err)
		}
	}

	hints := p.detector.Detect(blocks)
	cards := make([]types.Card, 0, len(hints))
	for _, h := range hints {
		cards = append(cards, NewCard(h))
	}

	p.logger.Debug("submission processed",
		zap.String("submission", submissionID),
		zap.Int("blocks", len(blocks)),
		zap.Int("cards", len(cards)))

	if len(cards) == 0 {
		return cards, nil
	}
	if err := reg.AddHints(ctx, submissionID, ComponentID, cards); err != nil {
		return nil, fmt.Errorf("adding hints: %w", err)
	}
	return cards, nil
}
