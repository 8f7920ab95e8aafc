// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the dbpedia-info plugin:
// annotated blocks delivered by the host editor, the hints and cards built
// from them, and the knowledge lookup result a card displays.
package types

import "fmt"

// AnnotationNode is one level of RDFa annotation wrapping a block of text.
// Object is the node's object URI; Href is the raw href attribute some
// editors emit instead. Predicate is the relation the node asserts.
type AnnotationNode struct {
	Object    Optional[string] `json:"object" yaml:"object"`
	Href      Optional[string] `json:"href" yaml:"href"`
	Predicate Optional[string] `json:"predicate" yaml:"predicate"`
}

// ReferenceURI returns Object when present and Href otherwise.
func (n AnnotationNode) ReferenceURI() (string, bool) {
	if v, ok := n.Object.Get(); ok {
		return v, true
	}
	return n.Href.Get()
}

// AnnotatedBlock is a contiguous text span of the parent document together
// with its semantic context, outermost annotation first.
type AnnotatedBlock struct {
	Text            string           `json:"text" yaml:"text"`
	Start           int              `json:"start" yaml:"start"`
	End             int              `json:"end" yaml:"end"`
	SemanticContext []AnnotationNode `json:"context" yaml:"context"`
}

// Region returns the block's [Start, End] range in the parent document.
func (b AnnotatedBlock) Region() Region {
	return Region{Start: b.Start, End: b.End}
}

// Innermost returns the most deeply nested annotation node.
func (b AnnotatedBlock) Innermost() (AnnotationNode, bool) {
	if len(b.SemanticContext) == 0 {
		return AnnotationNode{}, false
	}
	return b.SemanticContext[len(b.SemanticContext)-1], true
}

// Region is a [Start, End] character range in the parent document.
type Region struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether loc lies entirely inside r.
func (r Region) Contains(loc Location) bool {
	return loc[0] >= r.Start && loc[1] <= r.End
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// Location is an absolute [start, end] span in the parent document.
type Location [2]int

// Hint is a detected Wikipedia reference not yet turned into a card.
type Hint struct {
	Term     string   `json:"term" yaml:"term"`
	Location Location `json:"location" yaml:"location"`
}

// CardInfo is the payload handed to the card component.
type CardInfo struct {
	Term string `json:"term" yaml:"term"`
}

// CardOptions tunes how the host displays a card.
type CardOptions struct {
	NoHighlight bool `json:"noHighlight" yaml:"no_highlight"`
}

// Card is the renderable unit submitted to the hints registry. Card names
// the component that renders it.
type Card struct {
	Card     string      `json:"card" yaml:"card"`
	Info     CardInfo    `json:"info" yaml:"info"`
	Location Location    `json:"location" yaml:"location"`
	Options  CardOptions `json:"options" yaml:"options"`
}

// LookupResult is what the knowledge endpoint knows about a term. Either
// field may be absent.
type LookupResult struct {
	Description Optional[string] `json:"description" yaml:"description"`
	Image       Optional[string] `json:"image" yaml:"image"`
}
