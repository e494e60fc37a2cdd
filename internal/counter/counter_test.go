package counter

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWordCounter(t *testing.T) {
	counter := NewWordCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"single word", "hello", 1},
		{"multiple words", "hello world test", 3},
		{"whitespace handling", "  hello   world  ", 2},
		{"vietnamese syllables", "Xin chào thế giới", 4},
		{"newlines", "Học máy.\n\nDữ liệu lớn.", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := counter.Count(tt.text)
			if result != tt.expected {
				t.Errorf("WordCounter.Count(%q) = %d, want %d", tt.text, result, tt.expected)
			}
		})
	}

	if counter.Name() != "words" {
		t.Errorf("WordCounter.Name() = %q, want %q", counter.Name(), "words")
	}
}

func TestWordCounterTruncate(t *testing.T) {
	counter := NewWordCounter()

	tests := []struct {
		name     string
		text     string
		max      int
		expected string
	}{
		{"no limit", "một hai ba", 0, "một hai ba"},
		{"under limit", "một hai ba", 5, "một hai ba"},
		{"exact limit", "một hai ba", 3, "một hai ba"},
		{"cut", "một hai ba bốn", 2, "một hai"},
		{"keeps paragraph break", "một hai.\n\nba bốn", 3, "một hai.\n\nba"},
		{"leading whitespace", "  một hai", 1, "  một"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := counter.Truncate(tt.text, tt.max)
			if result != tt.expected {
				t.Errorf("WordCounter.Truncate(%q, %d) = %q, want %q", tt.text, tt.max, result, tt.expected)
			}
		})
	}
}

func TestCharCounter(t *testing.T) {
	counter := NewCharCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"single char", "a", 1},
		{"multiple chars", "hello", 5},
		{"vietnamese chars", "thế giới", 8}, // precomposed letters are one rune each
		{"whitespace included", "a b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := counter.Count(tt.text)
			if result != tt.expected {
				t.Errorf("CharCounter.Count(%q) = %d, want %d", tt.text, result, tt.expected)
			}
		})
	}

	if counter.Name() != "characters" {
		t.Errorf("CharCounter.Name() = %q, want %q", counter.Name(), "characters")
	}
}

func TestCharCounterTruncate(t *testing.T) {
	counter := NewCharCounter()

	tests := []struct {
		text     string
		max      int
		expected string
	}{
		{"thế giới", 3, "thế"},
		{"thế giới", 0, "thế giới"},
		{"thế giới", 100, "thế giới"},
	}

	for _, tt := range tests {
		result := counter.Truncate(tt.text, tt.max)
		if result != tt.expected {
			t.Errorf("CharCounter.Truncate(%q, %d) = %q, want %q", tt.text, tt.max, result, tt.expected)
		}
	}
}

func TestTokenCounter(t *testing.T) {
	counter, err := NewTokenCounter()
	if err != nil {
		t.Fatalf("Failed to create TokenCounter: %v", err)
	}

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"simple text", "hello world"},
		{"vietnamese", "Trí tuệ nhân tạo đang thay đổi thế giới."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := counter.Count(tt.text)
			// exact token counts can vary with encoding versions
			if tt.text == "" {
				if result != 0 {
					t.Errorf("TokenCounter.Count(%q) = %d, want 0 for empty string", tt.text, result)
				}
			} else if result <= 0 {
				t.Errorf("TokenCounter.Count(%q) = %d, want positive number for non-empty text", tt.text, result)
			}
		})
	}

	if counter.Name() != "tokens (cl100k_base)" {
		t.Errorf("TokenCounter.Name() = %q, want %q", counter.Name(), "tokens (cl100k_base)")
	}
}

func TestTokenCounterTruncate(t *testing.T) {
	counter, err := NewTokenCounter()
	if err != nil {
		t.Fatalf("Failed to create TokenCounter: %v", err)
	}

	text := strings.Repeat("hello world ", 50)
	head := counter.Truncate(text, 10)
	if got := counter.Count(head); got > 10 {
		t.Errorf("Truncate(text, 10) kept %d tokens", got)
	}
	if !strings.HasPrefix(text, head) {
		t.Errorf("Truncate result %q is not a prefix of the input", head)
	}
	if got := counter.Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate under limit = %q, want %q", got, "hello")
	}
}

func TestTokenCounterTruncateVietnamese(t *testing.T) {
	counter, err := NewTokenCounter()
	if err != nil {
		t.Fatalf("Failed to create TokenCounter: %v", err)
	}

	text := "Nghiên cứu khoa học đòi hỏi sự kiên nhẫn và phương pháp đúng đắn."
	total := counter.Count(text)

	for max := 1; max < total; max++ {
		head := counter.Truncate(text, max)
		if !utf8.ValidString(head) {
			t.Errorf("Truncate(text, %d) = %q, not valid UTF-8", max, head)
		}
		if !strings.HasPrefix(text, head) {
			t.Errorf("Truncate(text, %d) = %q, not a prefix of the input", max, head)
			continue
		}
		if got := counter.Count(head); got > max {
			t.Errorf("Truncate(text, %d) kept %d tokens", max, got)
		}
		// once a whole syllable fits, the cut lands between syllables
		if strings.Contains(head, " ") && text[len(head)] != ' ' {
			t.Errorf("Truncate(text, %d) = %q, cuts a syllable", max, head)
		}
	}
}

func TestNewCounter(t *testing.T) {
	tests := []struct {
		name         string
		method       CountingMethod
		expectedName string
	}{
		{"tokens", Tokens, "tokens (cl100k_base)"},
		{"words", Words, "words"},
		{"characters", Characters, "characters"},
		{"unknown defaults to words", CountingMethod(999), "words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter, err := NewCounter(tt.method)
			if err != nil {
				t.Errorf("NewCounter(%v) unexpected error: %v", tt.method, err)
				return
			}

			if counter.Name() != tt.expectedName {
				t.Errorf("NewCounter(%v).Name() = %q, want %q", tt.method, counter.Name(), tt.expectedName)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input       string
		expected    CountingMethod
		expectError bool
	}{
		{"tokens", Tokens, false},
		{"Words", Words, false},
		{" chars ", Characters, false},
		{"syllables", Words, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if (err != nil) != tt.expectError {
				t.Fatalf("ParseMethod(%q) error = %v, expectError %v", tt.input, err, tt.expectError)
			}
			if got != tt.expected {
				t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCountingMethodString(t *testing.T) {
	tests := []struct {
		method   CountingMethod
		expected string
	}{
		{Tokens, "tokens"},
		{Words, "words"},
		{Characters, "characters"},
		{CountingMethod(999), "unknown"}, // invalid method
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.method.String()
			if result != tt.expected {
				t.Errorf("CountingMethod(%d).String() = %q, want %q", int(tt.method), result, tt.expected)
			}
		})
	}
}
