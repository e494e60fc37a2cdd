// Package counter measures and limits text size for the mindmap CLI.
//
// Three counting strategies are available: tokens (OpenAI's tiktoken with the
// cl100k_base encoding), whitespace-delimited words, and Unicode characters.
// Words feed the analysis word count of a generated mind map; every strategy
// can cap input text before generation.
//
// Usage Example:
//
//	c, err := counter.NewCounter(counter.Words)
//	n := c.Count("Xin chào thế giới")  // 4
//	head := c.Truncate(text, 300)      // first 300 words
package counter

import (
	"fmt"
	"strings"
)

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in given text.
	Count(text string) int

	// Truncate returns the longest prefix of text holding at most maxUnits units.
	// A maxUnits <= 0 returns text unchanged.
	Truncate(text string, maxUnits int) string

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens CountingMethod = iota
	// Words counts words using whitespace splitting
	Words
	// Characters counts individual characters including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Tokens:
		return "tokens"
	case Words:
		return "words"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// ParseMethod converts a counting method name into a CountingMethod.
func ParseMethod(name string) (CountingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tokens", "token":
		return Tokens, nil
	case "words", "word":
		return Words, nil
	case "characters", "chars", "character":
		return Characters, nil
	default:
		return Words, fmt.Errorf("unknown counting method %q", name)
	}
}

// NewCounter creates a new Counter instance based on the specified method.
// This functions as a factory; it returns concrete Counter types,
// providing a single, simple entry point to get a counter instance.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Tokens:
		return NewTokenCounter()
	case Characters:
		return NewCharCounter(), nil
	default:
		return NewWordCounter(), nil // words are the default unit for prose
	}
}
