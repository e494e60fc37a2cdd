package mindmap

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chriscorrea/mindmap/internal/classify"
	"github.com/chriscorrea/mindmap/internal/lexical"
	"github.com/chriscorrea/mindmap/internal/segment"
)

// topic length window that earns the length bonus, in runes
const (
	topicFitMin = 15
	topicFitMax = 80
)

// topicMaxWords is the number of words kept when a topic is abbreviated.
const topicMaxWords = 6

// trailingPunct is trimmed from the end of every label.
const trailingPunct = " \t.,!?;:-"

// minLeadLen is the length a paragraph's first sentence must exceed to become a theme.
const minLeadLen = 15

// minPhraseThemeLen is the length a key phrase must exceed to become a theme.
const minPhraseThemeLen = 8

// leadPattern matches one leading word or phrase from words, case-insensitively,
// together with the separators that follow it. Longer alternatives are tried first.
func leadPattern(words []string) *regexp.Regexp {
	alts := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			alts = append(alts, regexp.QuoteMeta(w))
		}
	}
	if len(alts) == 0 {
		return nil
	}
	sort.SliceStable(alts, func(i, j int) bool {
		return utf8.RuneCountInString(alts[i]) > utf8.RuneCountInString(alts[j])
	})
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(alts, "|") + `)[\s,;:\-]+`)
}

// stripLead removes leading matches of re until none remain.
func stripLead(re *regexp.Regexp, text string) string {
	text = strings.TrimSpace(text)
	if re == nil {
		return text
	}
	for {
		loc := re.FindStringIndex(text)
		if loc == nil || loc[1] == 0 {
			return text
		}
		text = strings.TrimSpace(text[loc[1]:])
	}
}

// capitalize upper-cases the first rune of text.
func capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// abbreviate shortens text longer than maxLen runes to its first few words
// plus an ellipsis.
func abbreviate(text string, maxLen, maxWords int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	words := strings.Fields(text)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	for len(words) > 1 {
		short := strings.TrimRight(strings.Join(words, " "), trailingPunct) + "..."
		if utf8.RuneCountInString(short) <= maxLen {
			return short
		}
		words = words[:len(words)-1]
	}
	return segment.TruncateWords(text, maxLen)
}

// cleanTopic turns a sentence into a central topic label.
func (g *Generator) cleanTopic(text string) string {
	text = stripLead(g.topicLead, text)
	text = strings.TrimRight(text, trailingPunct)
	text = abbreviate(text, g.cfg.TopicMaxLen, topicMaxWords)
	return capitalize(text)
}

// cleanTheme turns a sentence or phrase into a theme label.
func (g *Generator) cleanTheme(text string) string {
	text = stripLead(g.topicLead, text)
	text = strings.TrimRight(text, trailingPunct)
	text = segment.TruncateWords(text, g.cfg.ThemeMaxLen)
	return capitalize(text)
}

// selectCentralTopic picks the best of the top ranked sentences by a composite
// of length fitness, document position and key phrase coverage. Sentences
// without a significant token are skipped; when none remain the placeholder
// topic is returned.
func (g *Generator) selectCentralTopic(a *analysis) string {
	candidates := a.ranked
	if len(candidates) > g.cfg.CentralCandidates {
		candidates = candidates[:g.cfg.CentralCandidates]
	}

	topPhrases := a.keyPhrases
	if len(topPhrases) > 3 {
		topPhrases = topPhrases[:3]
	}

	n := float64(len(a.sentences))
	best, bestScore := "", -1.0
	for _, c := range candidates {
		s := a.sentences[c.Index]
		if len(a.sets[c.Index]) == 0 {
			continue
		}

		score := 1 - float64(s.Index)/n
		if s.Length >= topicFitMin && s.Length <= topicFitMax {
			score++
		}
		lower := strings.ToLower(s.Text)
		for _, p := range topPhrases {
			if strings.Contains(lower, strings.ToLower(p)) {
				score += 0.5
			}
		}

		// ties keep the higher ranked candidate
		if score > bestScore {
			best, bestScore = s.Text, score
		}
	}

	topic := g.cleanTopic(best)
	if topic == "" || len(g.tokenizer.TokenSet(topic)) == 0 {
		return g.placeholder()
	}
	return topic
}

// themeCandidates lists raw theme sources in priority order: paragraph lead
// sentences, key phrases (action-headed ones last), then top ranked sentences.
func (g *Generator) themeCandidates(a *analysis) []string {
	var candidates []string

	for _, p := range a.paragraphs {
		if lead := segment.FirstSentence(p.Text); utf8.RuneCountInString(lead) > minLeadLen {
			candidates = append(candidates, lead)
		}
	}

	phrases := make([]string, 0, len(a.keyPhrases))
	for _, p := range a.keyPhrases {
		if utf8.RuneCountInString(p) > minPhraseThemeLen {
			phrases = append(phrases, p)
		}
	}
	sort.SliceStable(phrases, func(i, j int) bool {
		return !g.actionHeaded(phrases[i]) && g.actionHeaded(phrases[j])
	})
	candidates = append(candidates, phrases...)

	top := a.ranked
	if len(top) > g.cfg.TopSentences {
		top = top[:g.cfg.TopSentences]
	}
	for _, s := range top {
		candidates = append(candidates, a.sentences[s.Index].Text)
	}

	return candidates
}

// actionHeaded reports whether the first word of phrase is classified as an action.
func (g *Generator) actionHeaded(phrase string) bool {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return false
	}
	return g.classifier.Classify(words[0], nil) == classify.Action
}

// selectThemes returns up to limit distinct theme labels. A candidate is
// rejected when it has no significant token, when it collapses into the
// central topic, or when it duplicates an accepted theme by containment or
// by Jaccard similarity above the threshold. The fallback themes are used
// when nothing qualifies.
func (g *Generator) selectThemes(a *analysis, topic string, limit int, log *slog.Logger) []string {
	topicTokens := g.tokenizer.TokenSet(topic)
	topicLower := strings.ToLower(topic)
	collapse := min(2, len(topicTokens))

	type accepted struct {
		lower  string
		tokens map[string]struct{}
	}
	var kept []accepted
	themes := make([]string, 0, limit)

	for _, raw := range g.themeCandidates(a) {
		if len(themes) >= limit {
			break
		}

		theme := g.cleanTheme(raw)
		tokens := g.tokenizer.TokenSet(theme)
		if len(tokens) == 0 {
			continue
		}
		lower := strings.ToLower(theme)

		if collapse > 0 && lexical.Shared(tokens, topicTokens) >= collapse {
			continue
		}
		if strings.Contains(topicLower, lower) || strings.Contains(lower, topicLower) {
			continue
		}

		duplicate := false
		for _, k := range kept {
			if strings.Contains(k.lower, lower) || strings.Contains(lower, k.lower) ||
				lexical.Jaccard(tokens, k.tokens) > g.cfg.SimilarityThreshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, accepted{lower: lower, tokens: tokens})
		themes = append(themes, theme)
	}

	if len(themes) == 0 {
		themes = append(themes, g.fallbackThemes()...)
		if len(themes) > limit {
			themes = themes[:limit]
		}
	}

	log.Debug("Themes selected", "themes", themes)
	return themes
}
