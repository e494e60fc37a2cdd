package counter

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// tokenEncoding is the BPE vocabulary used for token limits.
const tokenEncoding = "cl100k_base"

// loadEncoding parses the BPE ranks once per process; every TokenCounter
// shares the result.
var loadEncoding = sync.OnceValues(func() (*tiktoken.Tiktoken, error) {
	slog.Debug("Loading token encoding", "encoding", tokenEncoding)
	return tiktoken.GetEncoding(tokenEncoding)
})

// TokenCounter counts BPE tokens. Vietnamese syllables usually span several
// tokens because their diacritics are multi-byte, so a token budget covers
// far fewer words than it would for English text.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter creates a TokenCounter backed by the shared encoding.
func NewTokenCounter() (Counter, error) {
	encoding, err := loadEncoding()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s encoding: %w", tokenEncoding, err)
	}
	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in text.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(tc.encoding.Encode(text, nil, nil))
}

// Name returns the name of this counting method.
func (tc *TokenCounter) Name() string {
	return "tokens (" + tokenEncoding + ")"
}

// Truncate returns the longest prefix of text that fits in maxTokens and
// ends on a whole syllable. A token boundary can fall inside a multi-byte
// letter or a syllable; the partial tail is dropped rather than emitted as
// a broken character. When the first syllable alone exceeds the budget the
// decoded prefix is returned with only the broken character removed.
func (tc *TokenCounter) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 || text == "" {
		return text
	}

	tokens := tc.encoding.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}

	prefix := trimBrokenRune(tc.encoding.Decode(tokens[:maxTokens]))

	// the prefix ends mid-syllable unless the next rune in text is a space
	next, _ := utf8.DecodeRuneInString(text[len(prefix):])
	if !unicode.IsSpace(next) {
		if cut := strings.LastIndexFunc(prefix, unicode.IsSpace); cut > 0 {
			prefix = prefix[:cut]
		}
	}
	prefix = strings.TrimRightFunc(prefix, unicode.IsSpace)

	// re-encoding a shortened piece can cost more tokens than the original
	for prefix != "" && tc.Count(prefix) > maxTokens {
		_, size := utf8.DecodeLastRuneInString(prefix)
		prefix = strings.TrimRightFunc(prefix[:len(prefix)-size], unicode.IsSpace)
	}

	slog.Debug("Truncated text to token limit",
		"originalTokens", len(tokens),
		"maxTokens", maxTokens,
		"runes", utf8.RuneCountInString(prefix))
	return prefix
}

// trimBrokenRune removes an incomplete UTF-8 sequence from the end of s.
func trimBrokenRune(s string) string {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || size > 1 {
			return s
		}
		s = s[:len(s)-1]
	}
	return s
}
