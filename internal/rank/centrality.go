package rank

import (
	"log/slog"
	"math"

	"github.com/chriscorrea/mindmap/internal/lexical"
)

// default TextRank parameters
const (
	defaultDamping   = 0.85
	defaultMaxIter   = 30
	defaultTolerance = 1e-4
)

// CentralityRanker implements TextRank over sentences: a graph whose edge
// weights are the Jaccard similarity of token sets, scored by PageRank-style
// power iteration. The similarity matrix diagonal is 0, so a sentence never
// votes for itself.
type CentralityRanker struct {
	Damping   float64
	MaxIter   int
	Tolerance float64
}

// NewCentralityRanker creates a CentralityRanker with the default damping (0.85),
// iteration cap and convergence tolerance.
func NewCentralityRanker() *CentralityRanker {
	return &CentralityRanker{
		Damping:   defaultDamping,
		MaxIter:   defaultMaxIter,
		Tolerance: defaultTolerance,
	}
}

// Rank implements Ranker. The frequency table is not used by this strategy.
func (r *CentralityRanker) Rank(docs []Document, _ lexical.FrequencyTable) []Scored {
	scores := r.Scores(docs)

	scored := make([]Scored, len(docs))
	for i, doc := range docs {
		scored[i] = Scored{Index: doc.Index, Score: scores[i]}
	}

	sortScored(scored)
	return scored
}

// Scores returns the centrality score of every document in input order.
// Scores sum to 1 for non-empty input.
func (r *CentralityRanker) Scores(docs []Document) []float64 {
	n := len(docs)
	if n == 0 {
		return []float64{}
	}

	sim := similarityMatrix(docs)

	rowSum := make([]float64, n)
	for i := range sim {
		for _, w := range sim[i] {
			rowSum[i] += w
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	nf := float64(n)
	iterations := 0
	for iterations < r.MaxIter {
		iterations++
		next := make([]float64, n)

		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if sim[j][i] > 0 && rowSum[j] > 0 {
					sum += sim[j][i] / rowSum[j] * scores[j]
				}
			}
			next[i] = (1-r.Damping)/nf + r.Damping*sum
		}
		normalize(next)

		maxDelta := 0.0
		for i := range next {
			if delta := math.Abs(next[i] - scores[i]); delta > maxDelta {
				maxDelta = delta
			}
		}

		scores = next
		if maxDelta < r.Tolerance {
			break
		}
	}

	slog.Debug("Centrality ranking complete", "documents", n, "iterations", iterations)
	return scores
}

// Name returns the name of this ranking method.
func (r *CentralityRanker) Name() string {
	return "centrality"
}

// similarityMatrix builds the symmetric n x n Jaccard matrix with a zero diagonal.
func similarityMatrix(docs []Document) [][]float64 {
	n := len(docs)
	sets := make([]map[string]struct{}, n)
	for i, doc := range docs {
		sets[i] = lexical.Set(doc.Tokens)
	}

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := lexical.Jaccard(sets[i], sets[j])
			sim[i][j] = w
			sim[j][i] = w
		}
	}
	return sim
}

// normalize scales scores so they sum to 1.
func normalize(scores []float64) {
	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		return
	}
	for i := range scores {
		scores[i] /= total
	}
}
