package mindmap

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/chriscorrea/mindmap/internal/lexical"
	"github.com/chriscorrea/mindmap/internal/segment"
)

// minBranches is the smallest number of branches in any result.
const minBranches = 2

// minPhraseSubTopicLen is the length a key phrase must exceed to become a sub-topic.
const minPhraseSubTopicLen = 10

// genericPerBranch is the number of generic sub-topics given to a branch
// without relevant content.
const genericPerBranch = 2

// usedContent tracks every sub-topic already placed in the tree. Later
// branches cannot reuse or closely paraphrase earlier content.
type usedContent struct {
	keys map[string]struct{}
	sets []map[string]struct{}
}

func newUsedContent(labels ...string) *usedContent {
	u := &usedContent{keys: make(map[string]struct{})}
	for _, l := range labels {
		u.keys[strings.ToLower(l)] = struct{}{}
	}
	return u
}

func (u *usedContent) add(key string, tokens map[string]struct{}) {
	u.keys[key] = struct{}{}
	u.sets = append(u.sets, tokens)
}

func (u *usedContent) has(key string) bool {
	_, ok := u.keys[key]
	return ok
}

// similar reports whether tokens is a near-duplicate of any used sub-topic.
func (u *usedContent) similar(tokens map[string]struct{}, threshold float64) bool {
	for _, s := range u.sets {
		if lexical.Jaccard(tokens, s) > threshold {
			return true
		}
	}
	return false
}

// branchTitle formats the title of the i-th branch.
func (g *Generator) branchTitle(style Style, i int, label string) string {
	prefixes := g.vocab.Prefixes(string(style))
	if len(prefixes) == 0 {
		return label
	}
	return prefixes[i%len(prefixes)] + ": " + label
}

// buildBranches assembles one branch per theme. Branches without sub-topics
// are dropped unless fewer than two branches would remain, in which case the
// earliest of them receive generic sub-topics; fallback branches pad the
// result to two.
func (g *Generator) buildBranches(a *analysis, topic string, themes []string, style Style, complexity Complexity, log *slog.Logger) []Branch {
	limit := complexity.BranchCount()
	if len(themes) > limit {
		themes = themes[:limit]
	}

	used := newUsedContent(append([]string{topic}, themes...)...)
	candidates := make([]Branch, len(themes))
	filled := 0
	for i, theme := range themes {
		title := g.branchTitle(style, i, theme)
		subs := g.subTopics(a, theme, title, used, style.SubTopicLimit())
		candidates[i] = Branch{Title: title, SubTopics: subs}
		if len(subs) > 0 {
			filled++
		}
	}

	generic := 0
	branches := make([]Branch, 0, limit)
	for _, b := range candidates {
		if len(b.SubTopics) == 0 {
			if filled >= minBranches {
				log.Debug("Dropping branch without sub-topics", "title", b.Title)
				continue
			}
			b.SubTopics = g.genericSubTopics(generic)
			generic++
			filled++
		}
		branches = append(branches, b)
	}

	for k := 0; len(branches) < minBranches; k++ {
		titles := g.fallbackTitles()
		label := titles[k%len(titles)]
		branches = append(branches, Branch{
			Title:     g.branchTitle(style, len(branches), label),
			SubTopics: g.genericSubTopics(generic),
		})
		generic++
	}

	return branches
}

// subTopics gathers sub-topics for a theme: sentences in document order
// first, then key phrases, each accepted above its relevance threshold.
func (g *Generator) subTopics(a *analysis, theme, title string, used *usedContent, limit int) []string {
	themeTokens := g.tokenizer.TokenSet(theme)
	titleTokens := g.tokenizer.TokenSet(title)
	subs := make([]string, 0, limit)

	try := func(text string) {
		if len(subs) >= limit {
			return
		}
		clean := g.cleanSubTopic(text)
		if clean == "" {
			return
		}
		key := strings.ToLower(clean)
		if used.has(key) {
			return
		}
		tokens := g.tokenizer.TokenSet(clean)
		if len(tokens) == 0 {
			return
		}
		// restating half the theme is a near-duplicate of the branch itself
		if len(themeTokens) > 0 && 2*lexical.Shared(tokens, themeTokens) >= len(themeTokens) {
			return
		}
		threshold := g.cfg.SimilarityThreshold
		if lexical.Jaccard(tokens, titleTokens) > threshold {
			return
		}
		if used.similar(tokens, threshold) {
			return
		}
		used.add(key, tokens)
		subs = append(subs, clean)
	}

	for i, s := range a.sentences {
		if lexical.Relevance(themeTokens, a.sets[i]) > g.cfg.SentenceRelevance {
			try(s.Text)
		}
	}
	for _, p := range a.keyPhrases {
		if utf8.RuneCountInString(p) <= minPhraseSubTopicLen {
			continue
		}
		if lexical.Relevance(themeTokens, g.tokenizer.TokenSet(p)) > g.cfg.PhraseRelevance {
			try(p)
		}
	}

	return subs
}

// cleanSubTopic strips leading connectives and fillers and trailing
// punctuation, then caps the length at a word boundary. Results shorter than
// MinSubTopicLen are discarded.
func (g *Generator) cleanSubTopic(text string) string {
	text = stripLead(g.subTopicLead, text)
	text = strings.TrimRight(text, trailingPunct)
	text = segment.TruncateWords(text, g.cfg.SubTopicMaxLen)
	if utf8.RuneCountInString(text) < g.cfg.MinSubTopicLen {
		return ""
	}
	return capitalize(text)
}

// genericSubTopics returns the n-th pair of generic sub-topics.
func (g *Generator) genericSubTopics(n int) []string {
	pool := g.vocab.FallbackSubTopics
	if len(pool) == 0 {
		return []string{g.placeholder()}
	}

	subs := make([]string, 0, genericPerBranch)
	for k := 0; k < genericPerBranch && k < len(pool); k++ {
		subs = append(subs, pool[(n*genericPerBranch+k)%len(pool)])
	}
	return subs
}
