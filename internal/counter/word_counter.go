package counter

import (
	"log/slog"
	"strings"
	"unicode"
)

// WordCounter implements word counting using whitespace splitting.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of words in the given text using strings.Fields()
// This method splits on any Unicode whitespace and filters out empty strings.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	// strings.Fields splits on whitespace and filters empty strings
	wordCount := len(strings.Fields(text))

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Truncate keeps the first maxUnits words of text. Whitespace between kept
// words (including newlines, so paragraph breaks survive) is preserved.
func (wc *WordCounter) Truncate(text string, maxUnits int) string {
	if maxUnits <= 0 {
		return text
	}

	words := 0
	inWord := false
	for i, r := range text {
		space := unicode.IsSpace(r)
		if !space && !inWord {
			if words == maxUnits {
				return strings.TrimRightFunc(text[:i], unicode.IsSpace)
			}
			words++
		}
		inWord = !space
	}
	return text
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}
