package rank

import (
	"log/slog"
	"math"

	"github.com/chriscorrea/mindmap/internal/lexical"
)

// FrequencyRanker scores a sentence by the corpus frequency of its tokens,
// normalized by the corpus total and weighted by log(wordCount+1).
type FrequencyRanker struct{}

// NewFrequencyRanker creates a new FrequencyRanker.
func NewFrequencyRanker() *FrequencyRanker {
	return &FrequencyRanker{}
}

// Rank implements Ranker.
func (r *FrequencyRanker) Rank(docs []Document, freq lexical.FrequencyTable) []Scored {
	scored := make([]Scored, len(docs))
	total := float64(freq.Total())

	for i, doc := range docs {
		scored[i] = Scored{Index: doc.Index}
		if total == 0 {
			continue
		}

		sum := 0
		for _, token := range doc.Tokens {
			sum += freq[token]
		}
		scored[i].Score = float64(sum) / total * math.Log(float64(doc.WordCount)+1)
	}

	sortScored(scored)
	slog.Debug("Frequency ranking complete", "documents", len(docs), "corpusTokens", int(total))
	return scored
}

// Name returns the name of this ranking method.
func (r *FrequencyRanker) Name() string {
	return "frequency"
}
