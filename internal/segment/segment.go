// Package segment provides text normalization and segmentation for the mind map pipeline.
//
// Input text is first normalized (NFC composition, truncation, allow-list
// character filtering, whitespace collapsing) and then split into units using
// a small set of delimiter strategies:
//  1. Paragraph boundaries (one or more newlines)
//  2. Sentence boundaries (runs of '.', '!' or '?')
//
// Every unit is bounded by length and count limits so that downstream stages
// run in predictable time.
//
// Usage Example:
//
//	limits := segment.DefaultLimits()
//	clean := segment.Normalize(raw, limits.MaxTextLength)
//	sentences := segment.SplitSentences(clean, limits)
package segment

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Limits bounds the size and number of segmented units.
type Limits struct {
	MaxTextLength    int // runes kept from the raw input
	MinSentenceLen   int // inclusive, in runes
	MaxSentenceLen   int // inclusive, in runes
	MinSentenceWords int
	MaxSentences     int
	MinParagraphLen  int // exclusive, in runes
	MaxParagraphs    int
}

// DefaultLimits returns the limits used by the default generator.
func DefaultLimits() Limits {
	return Limits{
		MaxTextLength:    1500,
		MinSentenceLen:   8,
		MaxSentenceLen:   200,
		MinSentenceWords: 3,
		MaxSentences:     25,
		MinParagraphLen:  15,
		MaxParagraphs:    10,
	}
}

// Sentence is a bounded substring of the normalized text.
type Sentence struct {
	Text      string
	Length    int // runes
	WordCount int
	Index     int // position among accepted sentences
}

// Paragraph is a normalized block of text delimited by blank lines.
type Paragraph struct {
	Text   string
	Length int // runes
	Index  int
}

// splitStrategy defines a method for breaking up text.
type splitStrategy struct {
	name      string
	delimiter *regexp.Regexp
}

var (
	paragraphStrategy = splitStrategy{name: "paragraph", delimiter: regexp.MustCompile(`\n+`)}
	sentenceStrategy  = splitStrategy{name: "sentence", delimiter: regexp.MustCompile(`[.!?]+`)}
)

// disallowed matches every rune outside the allow-list: ASCII word characters,
// whitespace, the Vietnamese accented letters and sentence punctuation.
var disallowed = regexp.MustCompile(`[^\w\s.,!?;:()\-ÀÁÂÃÈÉÊÌÍÒÓÔÕÙÚÝàáâãèéêìíòóôõùúýĂăĐđĨĩŨũƠơƯưẠ-ỹ]`)

var whitespaceRun = regexp.MustCompile(`\s+`)

var blankLine = regexp.MustCompile(`\n[ \t\r]*\n\s*`)

// unitTrim is the cutset trimmed from both ends of a segmented unit.
const unitTrim = " \t\r\n,;:-"

// Normalize composes the text to NFC, truncates it to maxLen runes, replaces
// every character outside the allow-list with a space, collapses whitespace
// runs and trims the result. A maxLen <= 0 disables truncation.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)
	text = Truncate(text, maxLen)
	text = disallowed.ReplaceAllString(text, " ")
	text = whitespaceRun.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Truncate returns at most maxLen runes of text. A maxLen <= 0 returns text unchanged.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	count := 0
	for i := range text {
		if count == maxLen {
			return text[:i]
		}
		count++
	}
	return text
}

// SplitSentences splits normalized text on runs of sentence punctuation and
// keeps pieces whose rune length and word count fall within the limits.
func SplitSentences(text string, limits Limits) []Sentence {
	pieces := split(text, sentenceStrategy)

	sentences := make([]Sentence, 0, len(pieces))
	for _, piece := range pieces {
		if limits.MaxSentences > 0 && len(sentences) >= limits.MaxSentences {
			break
		}

		length := utf8.RuneCountInString(piece)
		if length < limits.MinSentenceLen || (limits.MaxSentenceLen > 0 && length > limits.MaxSentenceLen) {
			continue
		}

		words := len(strings.Fields(piece))
		if words < limits.MinSentenceWords {
			continue
		}

		sentences = append(sentences, Sentence{
			Text:      piece,
			Length:    length,
			WordCount: words,
			Index:     len(sentences),
		})
	}

	slog.Debug("Sentences segmented", "pieces", len(pieces), "kept", len(sentences))
	return sentences
}

// SplitParagraphs splits raw (not yet normalized) text on newlines, normalizes
// each block and keeps blocks longer than MinParagraphLen runes.
func SplitParagraphs(raw string, limits Limits) []Paragraph {
	raw = Truncate(norm.NFC.String(raw), limits.MaxTextLength)
	pieces := split(raw, paragraphStrategy)

	paragraphs := make([]Paragraph, 0, len(pieces))
	for _, piece := range pieces {
		if limits.MaxParagraphs > 0 && len(paragraphs) >= limits.MaxParagraphs {
			break
		}

		clean := Normalize(piece, 0)
		length := utf8.RuneCountInString(clean)
		if length <= limits.MinParagraphLen {
			continue
		}

		paragraphs = append(paragraphs, Paragraph{
			Text:   clean,
			Length: length,
			Index:  len(paragraphs),
		})
	}

	slog.Debug("Paragraphs segmented", "pieces", len(pieces), "kept", len(paragraphs))
	return paragraphs
}

// Blocks splits raw text on blank lines and returns the trimmed, non-empty
// blocks unchanged otherwise. Single newlines stay inside a block.
func Blocks(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := blankLine.Split(strings.ReplaceAll(raw, "\r\n", "\n"), -1)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}

// FirstSentence returns the first non-empty sentence piece of text.
func FirstSentence(text string) string {
	pieces := split(text, sentenceStrategy)
	if len(pieces) == 0 {
		return ""
	}
	return pieces[0]
}

// split breaks text with the strategy delimiter and trims every piece,
// dropping empty ones.
func split(text string, strategy splitStrategy) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	parts := strategy.delimiter.Split(text, -1)
	pieces := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.Trim(part, unitTrim); trimmed != "" {
			pieces = append(pieces, trimmed)
		}
	}
	return pieces
}

// ellipsis marks text shortened by TruncateWords.
const ellipsis = "..."

// TruncateWords shortens text to at most maxLen runes, cutting at a word
// boundary and appending an ellipsis. Text that already fits is returned
// unchanged.
func TruncateWords(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	budget := maxLen - utf8.RuneCountInString(ellipsis)
	if budget <= 0 {
		return Truncate(text, maxLen)
	}

	packed := packWords(strings.Fields(text), budget)
	if packed == "" {
		// a single word longer than the budget
		packed = Truncate(text, budget)
	}

	return strings.TrimRight(packed, unitTrim+".!?") + ellipsis
}

// packWords joins words with single spaces while the result stays within budget runes.
func packWords(words []string, budget int) string {
	var b strings.Builder
	length := 0

	for _, word := range words {
		needed := utf8.RuneCountInString(word)
		if b.Len() > 0 {
			needed++ // for space separator
		}
		if length+needed > budget {
			break
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(word)
		length += needed
	}

	return b.String()
}
