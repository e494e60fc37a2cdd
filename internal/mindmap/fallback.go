package mindmap

import (
	"github.com/chriscorrea/mindmap/internal/vocab"
)

// Fallback returns the generic mind map used when the input cannot support a
// real one. Apart from the timestamp it depends only on style and complexity.
func Fallback(style Style, complexity Complexity) Result {
	return New().Fallback(style, complexity)
}

// Fallback returns the generic mind map built from g's vocabulary and clock.
func (g *Generator) Fallback(style Style, complexity Complexity) Result {
	return g.fallback(ParseStyle(string(style)), ParseComplexity(string(complexity)))
}

func (g *Generator) fallback(style Style, complexity Complexity) Result {
	themes := g.fallbackThemes()

	branches := make([]Branch, 0, minBranches)
	for i := 0; i < minBranches; i++ {
		branches = append(branches, Branch{
			Title:     g.branchTitle(style, i, themes[i%len(themes)]),
			SubTopics: g.genericSubTopics(i),
		})
	}

	return Result{
		CentralTopic: g.placeholder(),
		MainBranches: branches,
		Analysis: Analysis{
			Keywords:   []string{},
			Confidence: fallbackConfidence,
		},
		Metadata: g.metadata(style, complexity),
	}
}

// IsFallback reports whether r has the shape of a fallback mind map.
func IsFallback(r Result) bool {
	return r.Analysis.TotalSentences == 0 && r.Analysis.Confidence == fallbackConfidence
}

// placeholder, fallbackThemes and fallbackTitles fall back to the default
// vocabulary when a substituted one leaves the table empty.

func (g *Generator) placeholder() string {
	if g.vocab.PlaceholderTopic != "" {
		return g.vocab.PlaceholderTopic
	}
	return vocab.Vietnamese().PlaceholderTopic
}

func (g *Generator) fallbackThemes() []string {
	if len(g.vocab.FallbackThemes) > 0 {
		return g.vocab.FallbackThemes
	}
	return vocab.Vietnamese().FallbackThemes
}

func (g *Generator) fallbackTitles() []string {
	if len(g.vocab.FallbackTitles) > 0 {
		return g.vocab.FallbackTitles
	}
	return vocab.Vietnamese().FallbackTitles
}
