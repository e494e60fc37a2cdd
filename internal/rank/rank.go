// Package rank orders sentences by salience.
//
// Three interchangeable strategies implement the Ranker interface:
//   - Frequency: sum of corpus term frequencies, length weighted
//   - Centrality: TextRank-style power iteration over a Jaccard similarity graph
//   - BM25: field-weighted BM25 against a query built from the most frequent terms
//
// Usage Example:
//
//	ranker := rank.NewRanker(rank.Centrality)
//	ordered := ranker.Rank(docs, freq)
//	// ordered[0] is the most salient sentence
//
// Every strategy returns one Scored entry per input document, sorted by score
// descending with ties broken by original position, so that the output is
// deterministic for a given input.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chriscorrea/mindmap/internal/lexical"
)

// Document is one rankable sentence with its pre-computed scoring tokens.
type Document struct {
	Index     int      // position in document order
	Text      string   // sentence text
	Tokens    []string // scoring keys, see lexical.Tokenizer
	WordCount int      // whitespace-delimited words in Text
}

// Scored pairs a document index with its salience score.
type Scored struct {
	Index int
	Score float64
}

// Ranker defines the interface for sentence salience strategies.
type Ranker interface {
	// Rank scores every document and returns them ordered by salience.
	Rank(docs []Document, freq lexical.FrequencyTable) []Scored

	// Name returns a human-readable name for this strategy (for logging).
	Name() string
}

// Method represents the available ranking strategies.
type Method int

const (
	// Centrality uses TextRank power iteration (default)
	Centrality Method = iota
	// Frequency uses length-weighted term frequency
	Frequency
	// BM25 scores sentences against the top-frequency terms
	BM25
)

// String returns the string representation of the ranking method.
func (m Method) String() string {
	switch m {
	case Centrality:
		return "centrality"
	case Frequency:
		return "frequency"
	case BM25:
		return "bm25"
	default:
		return "unknown"
	}
}

// ParseMethod converts a method name into a Method. Matching is case-insensitive.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "centrality", "textrank", "":
		return Centrality, nil
	case "frequency", "freq":
		return Frequency, nil
	case "bm25":
		return BM25, nil
	default:
		return Centrality, fmt.Errorf("unknown ranking method %q", name)
	}
}

// NewRanker creates a Ranker for the specified method.
// Unknown methods fall back to Centrality.
func NewRanker(method Method) Ranker {
	switch method {
	case Frequency:
		return NewFrequencyRanker()
	case BM25:
		return NewBM25Ranker()
	default:
		return NewCentralityRanker()
	}
}

// sortScored orders by score descending; equal scores keep document order.
func sortScored(scored []Scored) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Index < scored[j].Index
	})
}

// Top returns the first n entries of ranked (all of them when n exceeds the length).
func Top(ranked []Scored, n int) []Scored {
	if n < 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
