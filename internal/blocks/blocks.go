// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blocks loads editor submissions from YAML or JSON files. It is the
// boundary where loosely shaped annotation data becomes typed blocks: each
// optional annotation attribute is checked here, once.
package blocks

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// Submission is one invocation from the host editor.
type Submission struct {
	ID     string
	Blocks []types.AnnotatedBlock
}

// LoadFile reads a submission from path.
func LoadFile(path string) (Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return Submission{}, fmt.Errorf("opening submission: %w", err)
	}
	defer f.Close()

	sub, err := Decode(f)
	if err != nil {
		return Submission{}, fmt.Errorf("%s: %w", path, err)
	}
	return sub, nil
}

// Decode parses a submission document. JSON documents are accepted as YAML.
func Decode(r io.Reader) (Submission, error) {
	var doc submissionDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Submission{}, nil
		}
		return Submission{}, fmt.Errorf("parsing submission: %w", err)
	}

	sub := Submission{ID: doc.SubmissionID}
	for i, b := range doc.Blocks {
		block, err := b.toBlock()
		if err != nil {
			return Submission{}, fmt.Errorf("block %d: %w", i, err)
		}
		sub.Blocks = append(sub.Blocks, block)
	}
	return sub, nil
}

// Submission file structures.
type submissionDoc struct {
	SubmissionID string     `yaml:"submission_id"`
	Blocks       []blockDoc `yaml:"blocks"`
}

type blockDoc struct {
	Text    string    `yaml:"text"`
	Start   *int      `yaml:"start"`
	End     *int      `yaml:"end"`
	Context []nodeDoc `yaml:"context"`
}

type nodeDoc struct {
	Object    *string `yaml:"object"`
	Href      *string `yaml:"href"`
	Predicate *string `yaml:"predicate"`
}

func (b blockDoc) toBlock() (types.AnnotatedBlock, error) {
	if b.Start == nil {
		return types.AnnotatedBlock{}, fmt.Errorf("missing start")
	}
	start := *b.Start
	end := start + len([]rune(b.Text))
	if b.End != nil {
		end = *b.End
	}
	if start < 0 {
		return types.AnnotatedBlock{}, fmt.Errorf("negative start %d", start)
	}
	if end < start {
		return types.AnnotatedBlock{}, fmt.Errorf("end %d before start %d", end, start)
	}

	block := types.AnnotatedBlock{Text: b.Text, Start: start, End: end}
	for _, n := range b.Context {
		block.SemanticContext = append(block.SemanticContext, types.AnnotationNode{
			Object:    nonEmpty(n.Object),
			Href:      nonEmpty(n.Href),
			Predicate: nonEmpty(n.Predicate),
		})
	}
	return block, nil
}

// nonEmpty treats a missing or blank attribute as absent.
func nonEmpty(p *string) types.Optional[string] {
	if p == nil || *p == "" {
		return types.None[string]()
	}
	return types.Some(*p)
}
