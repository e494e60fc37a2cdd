package rank

import (
	"log/slog"
	"strings"

	"github.com/chriscorrea/bm25md"
	"github.com/chriscorrea/mindmap/internal/lexical"
)

// defaultQueryTerms is the number of most frequent terms used as the BM25 query.
const defaultQueryTerms = 5

// BM25Ranker scores each sentence against a pseudo-query made of the most
// frequent corpus terms, using bm25md field-weighted BM25.
type BM25Ranker struct {
	QueryTerms int
}

// NewBM25Ranker creates a BM25Ranker with the default query size.
func NewBM25Ranker() *BM25Ranker {
	return &BM25Ranker{QueryTerms: defaultQueryTerms}
}

// Rank implements Ranker.
func (r *BM25Ranker) Rank(docs []Document, freq lexical.FrequencyTable) []Scored {
	scored := make([]Scored, len(docs))
	for i, doc := range docs {
		scored[i] = Scored{Index: doc.Index}
	}
	if len(docs) == 0 {
		return scored
	}

	query := strings.Join(freq.Top(r.QueryTerms), " ")
	if query == "" {
		sortScored(scored)
		return scored
	}

	// create BM25md corpus with default field weights and parameters
	corpus := bm25md.NewCorpus()

	// index the scoring tokens rather than raw text so that query and
	// documents share stopword filtering and stemming
	parser := bm25md.NewMarkdownFieldParser()
	for i, doc := range docs {
		text := strings.Join(doc.Tokens, " ")
		corpus.AddDocument(bm25md.Document{
			ID:       i,
			Fields:   parser.ParseDocument(text),
			Original: doc.Text,
		})
	}

	for i := range docs {
		scored[i].Score = corpus.Score(query, i)
	}

	sortScored(scored)
	slog.Debug("BM25 ranking complete", "documents", len(docs), "query", query)
	return scored
}

// Name returns the name of this ranking method.
func (r *BM25Ranker) Name() string {
	return "bm25"
}
