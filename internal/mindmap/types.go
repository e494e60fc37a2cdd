package mindmap

import (
	"strings"

	"github.com/chriscorrea/mindmap/internal/vocab"
)

// Version is reported in Result.Metadata.
const Version = "3.1.0"

// GeneratedBy identifies this generator in Result.Metadata.
const GeneratedBy = "mindmap heuristic generator"

// Result is the generated mind map. Its JSON encoding is the wire contract
// shared with every consumer of the generator.
type Result struct {
	CentralTopic string   `json:"centralTopic"`
	MainBranches []Branch `json:"mainBranches"`
	Analysis     Analysis `json:"analysis"`
	Metadata     Metadata `json:"metadata"`
}

// Branch is one theme of the mind map with its supporting points.
type Branch struct {
	Title     string   `json:"title"`
	SubTopics []string `json:"subTopics"`
}

// Analysis summarizes the input that the mind map was built from.
type Analysis struct {
	TotalSentences  int      `json:"totalSentences"`
	TotalParagraphs int      `json:"totalParagraphs"`
	TotalWords      int      `json:"totalWords"`
	Keywords        []string `json:"keywords"`
	Confidence      float64  `json:"confidence"`
}

// Metadata records how the mind map was produced.
type Metadata struct {
	GeneratedBy string `json:"generatedBy"`
	Style       string `json:"style"`
	Complexity  string `json:"complexity"`
	Timestamp   string `json:"timestamp"` // RFC 3339, UTC
	Version     string `json:"version"`
}

// Style selects the vocabulary used for branch title prefixes.
type Style string

const (
	Academic Style = vocab.Academic
	Creative Style = vocab.Creative
	Business Style = vocab.Business
	Balanced Style = vocab.Balanced
)

// ParseStyle maps a style name to a Style. Unknown names yield Balanced.
func ParseStyle(name string) Style {
	switch s := Style(strings.ToLower(strings.TrimSpace(name))); s {
	case Academic, Creative, Business, Balanced:
		return s
	default:
		return Balanced
	}
}

// SubTopicLimit is the maximum number of sub-topics per branch for the style.
func (s Style) SubTopicLimit() int {
	if s == Academic {
		return 5
	}
	return 4
}

// Complexity controls how many branches are produced.
type Complexity string

const (
	Simple        Complexity = "simple"
	Medium        Complexity = "medium"
	Detailed      Complexity = "detailed"
	Comprehensive Complexity = "comprehensive"
)

// ParseComplexity maps a complexity name to a Complexity. Unknown names yield Medium.
func ParseComplexity(name string) Complexity {
	switch c := Complexity(strings.ToLower(strings.TrimSpace(name))); c {
	case Simple, Medium, Detailed, Comprehensive:
		return c
	default:
		return Medium
	}
}

// BranchCount is the target number of branches for the complexity.
func (c Complexity) BranchCount() int {
	switch c {
	case Simple:
		return 2
	case Detailed:
		return 4
	case Comprehensive:
		return 5
	default:
		return 3
	}
}
