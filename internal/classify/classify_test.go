package classify_test

import (
	"testing"

	"github.com/chriscorrea/mindmap/internal/classify"
)

func TestNewClassifier(t *testing.T) {
	classifier := classify.NewClassifier()
	if classifier == nil {
		t.Fatal("NewClassifier() returned nil")
	}
}

func TestClassifier_IsExtraneous(t *testing.T) {
	classifier := classify.NewClassifier()

	tests := []struct {
		name        string
		text        string
		index       int
		total       int
		expected    bool
		description string
	}{
		{
			name:        "empty paragraph",
			text:        "",
			index:       0,
			total:       1,
			expected:    true,
			description: "empty paragraphs should be classified as extraneous",
		},
		{
			name:        "whitespace only paragraph",
			text:        "   \n\t  ",
			index:       0,
			total:       1,
			expected:    true,
			description: "whitespace-only paragraphs should be classified as extraneous",
		},
		{
			name:        "copyright footer at end",
			text:        "Copyright 2026. All rights reserved. This text may not be reproduced without permission.",
			index:       9,
			total:       10,
			expected:    true,
			description: "copyright text at document end should be classified as extraneous",
		},
		{
			name:        "navigation header at beginning",
			text:        "Home About Profile Share Content Navigation Footer",
			index:       0,
			total:       10,
			expected:    true,
			description: "navigation text at document beginning should be classified as extraneous",
		},
		{
			name:        "main content in middle",
			text:        "Solar panels convert sunlight into electricity with steadily improving efficiency. Wind turbines complement solar output because strong winds often blow at night and during winter storms.",
			index:       5,
			total:       10,
			expected:    false,
			description: "main content in middle should not be classified as extraneous",
		},
		{
			name:        "mixed content with some stopwords",
			text:        "Grid operators balance supply and demand every few seconds. The page contained detailed forecasts for this important step in battery dispatch planning.",
			index:       3,
			total:       8,
			expected:    false,
			description: "content with moderate stopwords should not be extraneous",
		},
		{
			name:        "isbn and publishing info",
			text:        "ISBN 479-04550 Published by Publications Department of Federal Publishing Standards",
			index:       0,
			total:       5,
			expected:    true,
			description: "publishing metadata should be classified as extraneous",
		},
		{
			name:        "single paragraph document",
			text:        "This is the complete content of a very short document about storing energy in batteries.",
			index:       0,
			total:       1,
			expected:    false,
			description: "single paragraph documents should use moderate threshold",
		},
		{
			name:        "academic appendix",
			text:        "Appendix A: Figure 1 References: Lorem Ipsum Foundation Publications, 2023.",
			index:       7,
			total:       8,
			expected:    true,
			description: "academic appendices should be classified as extraneous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.IsExtraneous(tt.text, tt.index, tt.total)
			if result != tt.expected {
				t.Errorf("IsExtraneous() = %v, expected %v\nText: %q\nPosition: %d/%d\nDescription: %s",
					result, tt.expected, tt.text, tt.index+1, tt.total, tt.description)
			}
		})
	}
}

func TestClassifier_ThresholdCalculation(t *testing.T) {
	classifier := classify.NewClassifier()

	// We can't directly test the threshold calculation,
	// but we can test behavior with identical content at different positions

	// example ambiguous text that could be classified either way.
	moderateStopwordText := "Hello there! This is some valid text that contains a bit of publishing terminology copyright 2025"

	tests := []struct {
		name        string
		index       int
		total       int
		description string
	}{
		{
			name:        "beginning position",
			index:       0,
			total:       10,
			description: "first paragraph should have lower threshold",
		},
		{
			name:        "end position",
			index:       9,
			total:       10,
			description: "last paragraph should have lower threshold",
		},
		{
			name:        "middle position",
			index:       5,
			total:       10,
			description: "middle paragraph should have higher threshold",
		},
	}

	beginningResult := classifier.IsExtraneous(moderateStopwordText, tests[0].index, tests[0].total)
	endResult := classifier.IsExtraneous(moderateStopwordText, tests[1].index, tests[1].total)
	middleResult := classifier.IsExtraneous(moderateStopwordText, tests[2].index, tests[2].total)

	t.Logf("Position-based classification results:")
	t.Logf("  Beginning (0/10): %v", beginningResult)
	t.Logf("  End (9/10): %v", endResult)
	t.Logf("  Middle (5/10): %v", middleResult)

	// confirm that edges are classified as extraneous but not middle
	if !beginningResult {
		t.Error("Expected beginning position to be classified as extraneous")
	}
	if !endResult {
		t.Error("Expected end position to be classified as extraneous")
	}
	if middleResult {
		t.Error("Expected middle position to NOT be classified as extraneous")
	}
}

func TestClassifier_EdgeCases(t *testing.T) {
	classifier := classify.NewClassifier()

	tests := []struct {
		name        string
		text        string
		index       int
		total       int
		expected    bool
		description string
	}{
		{
			name:        "zero total paragraphs",
			text:        "some text",
			index:       0,
			total:       0,
			expected:    false,
			description: "should handle zero total paragraphs gracefully",
		},
		{
			name:        "negative index",
			text:        "some text",
			index:       -1,
			total:       5,
			expected:    false,
			description: "should handle negative index gracefully",
		},
		{
			name:        "index beyond total",
			text:        "some text",
			index:       10,
			total:       5,
			expected:    false,
			description: "should handle index beyond total gracefully",
		},
		{
			name:        "very long text with no stopwords",
			text:        "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt ut labore et dolore magna aliqua ut enim ad minim veniam quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur",
			index:       2,
			total:       5,
			expected:    false,
			description: "long text with no stopwords should not be extraneous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// should not panic and should return a reasonable result
			result := classifier.IsExtraneous(tt.text, tt.index, tt.total)
			if result != tt.expected {
				t.Errorf("IsExtraneous() = %v, expected %v for edge case: %s",
					result, tt.expected, tt.description)
			}
		})
	}
}

func TestClassifier_Vietnamese(t *testing.T) {
	classifier := classify.NewClassifier()

	tests := []struct {
		name     string
		text     string
		index    int
		total    int
		expected bool
	}{
		{
			name:     "copyright footer",
			text:     "Bản quyền thuộc về tác giả. Vui lòng ghi rõ nguồn khi chia sẻ.",
			index:    9,
			total:    10,
			expected: true,
		},
		{
			name:     "navigation header",
			text:     "Trang chủ Đăng nhập Đăng ký Liên hệ",
			index:    0,
			total:    10,
			expected: true,
		},
		{
			name:     "common syllables at the edge are content",
			text:     "Văn bản cơ bản giúp học sinh nắm chủ đề và xem xét tác động của công nghệ.",
			index:    0,
			total:    10,
			expected: false,
		},
		{
			name:     "main content in middle",
			text:     "Giáo dục hiện đại giúp học sinh phát triển tư duy phản biện và kỹ năng giải quyết vấn đề.",
			index:    5,
			total:    10,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.IsExtraneous(tt.text, tt.index, tt.total)
			if result != tt.expected {
				t.Errorf("IsExtraneous(%q, %d, %d) = %v, expected %v", tt.text, tt.index, tt.total, result, tt.expected)
			}
		})
	}
}

func TestHeuristicClassifier(t *testing.T) {
	classifier := classify.NewHeuristicClassifier(nil)

	tests := []struct {
		name    string
		token   string
		context []string
		want    classify.TokenClass
	}{
		{"empty token", "", nil, classify.Other},
		{"plain noun", "máy", nil, classify.Other},
		{"concept marker itself", "sự", nil, classify.Concept},
		{"action syllable", "tạo", nil, classify.Action},
		{"action syllable is case-insensitive", "Giúp", nil, classify.Action},
		{"preceded by concept marker", "phát", []string{"sự"}, classify.Concept},
		{"preceded by action marker", "triển", []string{"chúng", "ta", "sẽ"}, classify.Action},
		{"english concept suffix", "education", nil, classify.Concept},
		{"english action suffix", "optimizing", nil, classify.Action},
		{"short english word ignored", "sing", nil, classify.Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.token, tt.context); got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.token, tt.context, got, tt.want)
			}
		})
	}
}

func TestTokenClassString(t *testing.T) {
	tests := []struct {
		class classify.TokenClass
		want  string
	}{
		{classify.Concept, "concept"},
		{classify.Action, "action"},
		{classify.Other, "other"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("TokenClass(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}
