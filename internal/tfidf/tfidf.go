// Package tfidf provides TF-IDF (Term Frequency-Inverse Document Frequency) term weighting.
//
// This package implements a corpus-based approach to term and document scoring
// using classical information retrieval techniques. Each sentence of the input
// is treated as one document; term frequencies and document frequencies are
// pre-calculated once per corpus.
//
// The TF-IDF algorithm combines:
//   - Term Frequency (TF): How frequently a term appears in a document
//   - Inverse Document Frequency (IDF): How rare a term is across the corpus
//
// Usage Example:
//
//	corpus := tfidf.NewCorpus(tokenizedSentences)
//	score := corpus.Score([]string{"giáo", "dục"}, 0)
//	keywords := corpus.TopTerms(8)
//
// Documents are supplied already tokenized so that the corpus shares the
// caller's stopword filtering and normalization.
package tfidf

import (
	"log/slog"
	"math"
	"sort"
)

// Corpus holds the docs and pre-calculated TF-IDF data for efficient querying.
type Corpus struct {
	Documents       [][]string           // tokenized documents
	TermFrequencies []map[string]float64 // TF for each document
	DocFrequencies  map[string]int       // Document frequency for each term
	TotalDocuments  int                  // Total number of documents
}

// NewCorpus creates a new TF-IDF corpus from a collection of tokenized documents.
// It pre-calculates term frequencies and document frequencies for efficient scoring.
func NewCorpus(documents [][]string) *Corpus {
	if len(documents) == 0 {
		slog.Debug("Empty document collection provided")
		return &Corpus{
			Documents:       [][]string{},
			TermFrequencies: []map[string]float64{},
			DocFrequencies:  map[string]int{},
			TotalDocuments:  0,
		}
	}

	corpus := &Corpus{
		Documents:       documents,
		TermFrequencies: make([]map[string]float64, len(documents)),
		DocFrequencies:  make(map[string]int),
		TotalDocuments:  len(documents),
	}

	// calculate term frequencies for each document
	for docIdx, tokens := range documents {
		corpus.TermFrequencies[docIdx] = calculateTermFrequency(tokens)

		// track document frequency for each unique term
		for term := range corpus.TermFrequencies[docIdx] {
			corpus.DocFrequencies[term]++
		}
	}

	slog.Debug("TF-IDF corpus created", "totalTerms", len(corpus.DocFrequencies), "documents", corpus.TotalDocuments)
	return corpus
}

// IDF returns the smoothed inverse document frequency of term:
// log(1 + total_docs / docs_containing_term). Unknown terms return 0.
//
// The +1 smoothing keeps terms that occur in every sentence from collapsing
// to zero weight, which matters for the very small corpora built from a
// single input text.
func (c *Corpus) IDF(term string) float64 {
	docFreq := c.DocFrequencies[term]
	if docFreq == 0 || c.TotalDocuments == 0 {
		return 0
	}
	return math.Log(1 + float64(c.TotalDocuments)/float64(docFreq))
}

// Score calculates the TF-IDF relevance score of query terms against a specific document.
// Terms that appear frequently in the document but rarely in the corpus receive higher scores.
func (c *Corpus) Score(query []string, docIndex int) float64 {
	if docIndex < 0 || docIndex >= len(c.Documents) {
		slog.Debug("Invalid document index", "docIndex", docIndex, "totalDocs", len(c.Documents))
		return 0.0
	}
	if len(query) == 0 {
		return 0.0
	}

	docTF := c.TermFrequencies[docIndex]
	var totalScore float64
	for _, term := range query {
		tf := docTF[term]
		if tf == 0 {
			continue // term not in document
		}
		totalScore += tf * c.IDF(term)
	}

	return totalScore
}

// TermWeights sums the TF-IDF weight of every term over all documents.
func (c *Corpus) TermWeights() map[string]float64 {
	weights := make(map[string]float64, len(c.DocFrequencies))
	for _, docTF := range c.TermFrequencies {
		for term, tf := range docTF {
			weights[term] += tf * c.IDF(term)
		}
	}
	return weights
}

// TopTerms returns up to n terms ordered by aggregate TF-IDF weight
// descending; ties are broken alphabetically for deterministic output.
func (c *Corpus) TopTerms(n int) []string {
	weights := c.TermWeights()

	terms := make([]string, 0, len(weights))
	for term := range weights {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if weights[terms[i]] != weights[terms[j]] {
			return weights[terms[i]] > weights[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if n >= 0 && len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// calculateTermFrequency computes the term frequency for a slice of tokens.
// Term frequency is calculated as: (count of term in document) / (total terms in document)
func calculateTermFrequency(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	termCounts := make(map[string]int)
	for _, token := range tokens {
		termCounts[token]++
	}

	// calculate TF as relative frequency
	totalTerms := float64(len(tokens))
	termFreqs := make(map[string]float64)
	for term, count := range termCounts {
		termFreqs[term] = float64(count) / totalTerms
	}

	return termFreqs
}
