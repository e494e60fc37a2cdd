package mindmap

import (
	"log/slog"
	"time"

	"github.com/chriscorrea/mindmap/internal/classify"
	"github.com/chriscorrea/mindmap/internal/rank"
	"github.com/chriscorrea/mindmap/internal/segment"
	"github.com/chriscorrea/mindmap/internal/vocab"
)

// Config holds the tunable bounds and thresholds of the generator.
type Config struct {
	// segmentation
	MaxTextLength    int
	MinSentenceLen   int
	MaxSentenceLen   int
	MinSentenceWords int
	MaxSentences     int
	MinParagraphLen  int
	MaxParagraphs    int

	// lexical analysis and ranking
	MaxKeyPhrases     int
	TopSentences      int // ranked sentences considered as theme candidates
	CentralCandidates int // ranked sentences considered for the central topic
	MaxKeywords       int
	Ranker            rank.Method

	// display caps, in runes
	TopicMaxLen    int
	ThemeMaxLen    int
	SubTopicMaxLen int
	MinSubTopicLen int

	// thresholds
	SentenceRelevance   float64 // sentence accepted as sub-topic above this relevance
	PhraseRelevance     float64 // key phrase accepted as sub-topic above this relevance
	SimilarityThreshold float64 // Jaccard above this marks a near-duplicate
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	limits := segment.DefaultLimits()
	return Config{
		MaxTextLength:    limits.MaxTextLength,
		MinSentenceLen:   limits.MinSentenceLen,
		MaxSentenceLen:   limits.MaxSentenceLen,
		MinSentenceWords: limits.MinSentenceWords,
		MaxSentences:     limits.MaxSentences,
		MinParagraphLen:  limits.MinParagraphLen,
		MaxParagraphs:    limits.MaxParagraphs,

		MaxKeyPhrases:     20,
		TopSentences:      10,
		CentralCandidates: 5,
		MaxKeywords:       8,
		Ranker:            rank.Centrality,

		TopicMaxLen:    45,
		ThemeMaxLen:    40,
		SubTopicMaxLen: 60,
		MinSubTopicLen: 8,

		SentenceRelevance:   0.3,
		PhraseRelevance:     0.4,
		SimilarityThreshold: 0.5,
	}
}

// limits returns the segmentation bounds of the configuration.
func (c Config) limits() segment.Limits {
	return segment.Limits{
		MaxTextLength:    c.MaxTextLength,
		MinSentenceLen:   c.MinSentenceLen,
		MaxSentenceLen:   c.MaxSentenceLen,
		MinSentenceWords: c.MinSentenceWords,
		MaxSentences:     c.MaxSentences,
		MinParagraphLen:  c.MinParagraphLen,
		MaxParagraphs:    c.MaxParagraphs,
	}
}

// Option configures a Generator.
type Option func(*Generator)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithVocabulary replaces the default Vietnamese tables.
func WithVocabulary(v *vocab.Vocabulary) Option {
	return func(g *Generator) {
		if v != nil {
			g.vocab = v
		}
	}
}

// WithRanker overrides the ranking strategy selected by Config.Ranker.
func WithRanker(r rank.Ranker) Option {
	return func(g *Generator) {
		g.ranker = r
	}
}

// WithClassifier replaces the heuristic token classifier.
func WithClassifier(c classify.TokenClassifier) Option {
	return func(g *Generator) {
		g.classifier = c
	}
}

// WithClock sets the time source used for Metadata.Timestamp.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}
