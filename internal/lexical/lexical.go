// Package lexical implements tokenization, term frequency and key phrase
// extraction for the mind map pipeline.
//
// Two token views are produced from the same input:
//   - Words: surface words (case preserved) after stopword, length and digit
//     filtering; used to build readable key phrases.
//   - Tokenize: lowercase scoring keys derived from Words; pure-ASCII words
//     (typically English loan words in Vietnamese prose) are stemmed so that
//     "models" and "model" share a key.
//
// All similarity measures in this package operate on sets of scoring keys.
package lexical

import (
	"log/slog"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chriscorrea/mindmap/internal/vocab"
	"github.com/kljensen/snowball"
)

// minTokenRunes is the longest token length that is still discarded.
const minTokenRunes = 2

// key phrase length windows, in runes (inclusive)
const (
	minBigramLen  = 5
	maxBigramLen  = 30
	minTrigramLen = 8
	maxTrigramLen = 40
)

// Tokenizer splits text into filtered words and scoring keys.
type Tokenizer struct {
	vocab *vocab.Vocabulary
}

// NewTokenizer creates a Tokenizer backed by the given vocabulary.
func NewTokenizer(v *vocab.Vocabulary) *Tokenizer {
	if v == nil {
		v = vocab.Vietnamese()
	}
	return &Tokenizer{vocab: v}
}

// Words returns the surface words of text that survive filtering: edge
// punctuation is trimmed, and words of two runes or fewer, stopwords and
// words containing digits are discarded.
func (t *Tokenizer) Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))

	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(word) <= minTokenRunes {
			continue
		}
		if strings.IndexFunc(word, unicode.IsDigit) >= 0 {
			continue
		}
		if t.vocab.IsStopword(word) {
			continue
		}
		words = append(words, word)
	}

	return words
}

// Tokenize returns the scoring keys of text in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	words := t.Words(text)
	tokens := make([]string, len(words))
	for i, w := range words {
		tokens[i] = t.Key(w)
	}
	return tokens
}

// Key maps a surface word to its scoring key.
func (t *Tokenizer) Key(word string) string {
	lower := strings.ToLower(word)
	if !isASCIIWord(lower) {
		return lower
	}

	stemmed, err := snowball.Stem(lower, "english", true)
	if err != nil || stemmed == "" {
		return lower
	}
	return stemmed
}

// TokenSet returns the distinct scoring keys of text.
func (t *Tokenizer) TokenSet(text string) map[string]struct{} {
	return Set(t.Tokenize(text))
}

// isASCIIWord reports whether s consists only of ASCII letters.
func isASCIIWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// FrequencyTable maps a scoring key to its number of occurrences.
type FrequencyTable map[string]int

// WordFrequency counts every token across the given token lists.
func WordFrequency(docs [][]string) FrequencyTable {
	table := make(FrequencyTable)
	for _, tokens := range docs {
		for _, token := range tokens {
			table[token]++
		}
	}
	return table
}

// Total returns the sum of all counts.
func (f FrequencyTable) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Top returns up to n keys ordered by count descending, then key ascending.
func (f FrequencyTable) Top(n int) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if f[keys[i]] != f[keys[j]] {
			return f[keys[i]] > f[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// phrase is a candidate n-gram with its word count.
type phrase struct {
	text  string
	words int
}

// KeyPhrases slides 2- and 3-word windows over the filtered words of every
// sentence and returns up to limit distinct phrases. Trigrams rank above
// bigrams, longer phrases above shorter ones, and remaining ties are broken
// lexicographically. Duplicates are detected case-insensitively; the first
// surface form wins.
func (t *Tokenizer) KeyPhrases(sentences []string, limit int) []string {
	seen := make(map[string]struct{})
	var candidates []phrase

	add := func(text string, words, minLen, maxLen int) {
		length := utf8.RuneCountInString(text)
		if length < minLen || length > maxLen {
			return
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, phrase{text: text, words: words})
	}

	for _, sentence := range sentences {
		words := t.Words(sentence)
		for i := 0; i+1 < len(words); i++ {
			if i+2 < len(words) {
				add(words[i]+" "+words[i+1]+" "+words[i+2], 3, minTrigramLen, maxTrigramLen)
			}
			add(words[i]+" "+words[i+1], 2, minBigramLen, maxBigramLen)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.words != b.words {
			return a.words > b.words
		}
		la, lb := utf8.RuneCountInString(a.text), utf8.RuneCountInString(b.text)
		if la != lb {
			return la > lb
		}
		return strings.ToLower(a.text) < strings.ToLower(b.text)
	})

	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.text
	}

	slog.Debug("Key phrases extracted", "sentences", len(sentences), "phrases", len(result))
	return result
}

// Shared counts keys present in both sets.
func Shared(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	shared := Shared(a, b)
	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

// Relevance returns the fraction of theme keys found in candidate.
func Relevance(theme, candidate map[string]struct{}) float64 {
	if len(theme) == 0 {
		return 0
	}
	return float64(Shared(theme, candidate)) / float64(len(theme))
}

// Set converts a token list into a set.
func Set(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
