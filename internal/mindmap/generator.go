// Package mindmap turns a block of prose into a three-level mind map:
// a central topic, a handful of thematic branches, and supporting sub-topics.
//
// The pipeline is purely extractive:
//
//	normalize → segment → tokenize/frequency/key phrases → rank
//	→ central topic → themes → branches → confidence
//
// Generate is total: empty, degenerate or otherwise unusable input, and any
// fault inside a stage, produce the deterministic fallback mind map instead
// of an error.
//
// Usage Example:
//
//	g := mindmap.New()
//	result := g.Generate(text, mindmap.Academic, mindmap.Detailed)
//	out, _ := json.Marshal(result)
package mindmap

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/chriscorrea/mindmap/internal/classify"
	"github.com/chriscorrea/mindmap/internal/counter"
	"github.com/chriscorrea/mindmap/internal/lexical"
	"github.com/chriscorrea/mindmap/internal/rank"
	"github.com/chriscorrea/mindmap/internal/segment"
	"github.com/chriscorrea/mindmap/internal/tfidf"
	"github.com/chriscorrea/mindmap/internal/vocab"
	"github.com/google/uuid"
)

var (
	// ErrInputEmpty reports input that is empty after normalization.
	ErrInputEmpty = errors.New("input is empty")
	// ErrSegmentationDegenerate reports input without a usable sentence.
	ErrSegmentationDegenerate = errors.New("no usable sentences")
)

// Generator builds mind maps. A Generator holds no per-call state and is safe
// for concurrent use.
type Generator struct {
	cfg        Config
	vocab      *vocab.Vocabulary
	tokenizer  *lexical.Tokenizer
	ranker     rank.Ranker
	classifier classify.TokenClassifier
	words      counter.Counter
	now        func() time.Time
	logger     *slog.Logger

	topicLead    *regexp.Regexp // leading connectives
	subTopicLead *regexp.Regexp // leading connectives and fillers
}

// New creates a Generator with the default configuration and vocabulary,
// modified by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		cfg:    DefaultConfig(),
		vocab:  vocab.Vietnamese(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.ranker == nil {
		g.ranker = rank.NewRanker(g.cfg.Ranker)
	}
	if g.classifier == nil {
		g.classifier = classify.NewHeuristicClassifier(g.vocab)
	}
	g.tokenizer = lexical.NewTokenizer(g.vocab)
	g.words = counter.NewWordCounter()
	g.topicLead = leadPattern(g.vocab.LeadingConnectives)
	g.subTopicLead = leadPattern(append(append([]string{}, g.vocab.LeadingConnectives...), g.vocab.SubTopicFillers...))

	return g
}

// Generate builds a mind map from text using the default generator.
func Generate(text string, style Style, complexity Complexity) Result {
	return New().Generate(text, style, complexity)
}

// Generate builds a mind map from text. Unknown style and complexity values
// fall back to Balanced and Medium. Generate never fails: unusable input and
// internal faults yield the fallback mind map.
func (g *Generator) Generate(text string, style Style, complexity Complexity) (result Result) {
	style = ParseStyle(string(style))
	complexity = ParseComplexity(string(complexity))
	log := g.logger.With("run", uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			log.Error("Mind map generation failed, using fallback", "panic", r)
			result = g.fallback(style, complexity)
		}
	}()

	var err error
	result, err = g.generate(text, style, complexity, log)
	if err != nil {
		log.Debug("Using fallback mind map", "reason", err)
		return g.fallback(style, complexity)
	}
	return result
}

// analysis carries the intermediate products of one Generate call.
type analysis struct {
	text       string // normalized
	sentences  []segment.Sentence
	paragraphs []segment.Paragraph
	tokens     [][]string            // scoring keys per sentence
	sets       []map[string]struct{} // distinct scoring keys per sentence
	freq       lexical.FrequencyTable
	keyPhrases []string
	ranked     []rank.Scored
	keywords   []string
	wordCount  int
}

func (g *Generator) generate(text string, style Style, complexity Complexity, log *slog.Logger) (Result, error) {
	a, err := g.analyze(text, log)
	if err != nil {
		return Result{}, fmt.Errorf("failed to analyze text: %w", err)
	}

	topic := g.selectCentralTopic(a)
	themes := g.selectThemes(a, topic, complexity.BranchCount(), log)
	branches := g.buildBranches(a, topic, themes, style, complexity, log)

	log.Debug("Mind map generated",
		"centralTopic", topic,
		"themes", len(themes),
		"branches", len(branches),
		"ranker", g.ranker.Name())

	return Result{
		CentralTopic: topic,
		MainBranches: branches,
		Analysis: Analysis{
			TotalSentences:  len(a.sentences),
			TotalParagraphs: len(a.paragraphs),
			TotalWords:      a.wordCount,
			Keywords:        a.keywords,
			Confidence:      Confidence(len(a.sentences), len(a.paragraphs), a.wordCount),
		},
		Metadata: g.metadata(style, complexity),
	}, nil
}

// analyze runs normalization, segmentation, lexical scoring and ranking.
func (g *Generator) analyze(raw string, log *slog.Logger) (*analysis, error) {
	limits := g.cfg.limits()

	a := &analysis{}
	a.text = segment.Normalize(raw, limits.MaxTextLength)
	if a.text == "" {
		return nil, ErrInputEmpty
	}

	a.sentences = segment.SplitSentences(a.text, limits)
	a.paragraphs = segment.SplitParagraphs(raw, limits)
	if len(a.sentences) == 0 {
		return nil, ErrSegmentationDegenerate
	}

	texts := make([]string, len(a.sentences))
	docs := make([]rank.Document, len(a.sentences))
	a.tokens = make([][]string, len(a.sentences))
	a.sets = make([]map[string]struct{}, len(a.sentences))
	for i, s := range a.sentences {
		texts[i] = s.Text
		a.tokens[i] = g.tokenizer.Tokenize(s.Text)
		a.sets[i] = lexical.Set(a.tokens[i])
		docs[i] = rank.Document{Index: i, Text: s.Text, Tokens: a.tokens[i], WordCount: s.WordCount}
	}

	a.freq = lexical.WordFrequency(a.tokens)
	a.keyPhrases = g.tokenizer.KeyPhrases(texts, g.cfg.MaxKeyPhrases)
	a.ranked = g.ranker.Rank(docs, a.freq)
	a.keywords = tfidf.NewCorpus(a.tokens).TopTerms(g.cfg.MaxKeywords)
	a.wordCount = g.words.Count(a.text)

	log.Debug("Text analyzed",
		"sentences", len(a.sentences),
		"paragraphs", len(a.paragraphs),
		"keyPhrases", len(a.keyPhrases),
		"words", a.wordCount)

	return a, nil
}

func (g *Generator) metadata(style Style, complexity Complexity) Metadata {
	return Metadata{
		GeneratedBy: GeneratedBy,
		Style:       string(style),
		Complexity:  string(complexity),
		Timestamp:   g.now().UTC().Format(time.RFC3339),
		Version:     Version,
	}
}
