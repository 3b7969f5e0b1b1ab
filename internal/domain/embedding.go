package domain

import (
	"context"
	"math"
	"slices"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/common"
)

// Embedding is a text paired with its vector representation and the route labels it belongs to.
type Embedding struct {
	Text          string
	Vector        []float64
	Labels        []string
	AuxiliaryData *string
}

// WithLabels returns a copy of the embedding carrying the given labels in addition to
// the existing ones. Labels keep set semantics and insertion order.
func (e Embedding) WithLabels(labels ...string) Embedding {
	merged := slices.Clone(e.Labels)
	for _, l := range labels {
		if !slices.Contains(merged, l) {
			merged = append(merged, l)
		}
	}
	e.Labels = merged
	return e
}

// HasLabel reports whether the embedding carries the given label.
func (e Embedding) HasLabel(label string) bool {
	return slices.Contains(e.Labels, label)
}

// EmbeddingCollection is an immutable ordered set of embeddings.
// Updates produce a new collection, so a published collection can be read
// concurrently without synchronization.
type EmbeddingCollection struct {
	items []Embedding
}

// NewEmbeddingCollection creates a collection holding a copy of the given embeddings.
func NewEmbeddingCollection(embeddings ...Embedding) *EmbeddingCollection {
	return &EmbeddingCollection{items: slices.Clone(embeddings)}
}

// Len returns the number of embeddings in the collection.
func (c *EmbeddingCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of the embeddings in the collection.
func (c *EmbeddingCollection) Items() []Embedding {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Append returns a new collection with the given embeddings added after the existing ones.
func (c *EmbeddingCollection) Append(embeddings ...Embedding) *EmbeddingCollection {
	next := make([]Embedding, 0, c.Len()+len(embeddings))
	if c != nil {
		next = append(next, c.items...)
	}
	next = append(next, embeddings...)
	return &EmbeddingCollection{items: next}
}

// Labels returns the distinct labels present in the collection in first-seen order.
func (c *EmbeddingCollection) Labels() []string {
	var labels []string
	for _, e := range c.Items() {
		for _, l := range e.Labels {
			if !slices.Contains(labels, l) {
				labels = append(labels, l)
			}
		}
	}
	return labels
}

// FindAllAbove returns every embedding whose similarity to query is greater than or
// equal to threshold, preserving collection order.
func (c *EmbeddingCollection) FindAllAbove(query []float64, threshold float64) ([]Embedding, error) {
	var matches []Embedding
	for _, e := range c.Items() {
		score, err := common.CosineSimilarity(query, e.Vector)
		if err != nil {
			return nil, err
		}
		if score >= threshold {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// FindClosest returns the embedding most similar to query and its score.
// When several embeddings tie for the best score the last one wins.
func (c *EmbeddingCollection) FindClosest(query []float64) (Embedding, float64, error) {
	if c.Len() == 0 {
		return Embedding{}, 0, ErrEmptyCollection
	}

	closest := c.items[0]
	best := math.Inf(-1)
	for _, e := range c.items {
		score, err := common.CosineSimilarity(query, e.Vector)
		if err != nil {
			return Embedding{}, 0, err
		}
		if score >= best {
			best = score
			closest = e
		}
	}
	return closest, best, nil
}

// TextEmbedder turns texts into embeddings.
type TextEmbedder interface {
	// Embed returns one embedding per input text, in input order.
	Embed(ctx context.Context, texts []string) ([]Embedding, error)
}
