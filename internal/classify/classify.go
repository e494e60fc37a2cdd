// Package classify provides text classification for the mind map pipeline.
//
// Two classifiers live here:
//   - Classifier identifies non-essential paragraphs such as headers, footers,
//     navigation elements, and publishing metadata, in English or Vietnamese.
//     It uses boilerplate-word analysis and position-based thresholding.
//   - TokenClassifier labels a single word as a concept, an action or neither,
//     standing in for part-of-speech tagging (see token.go).
package classify

import (
	"math"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// extraneousStopwords contains stemmed English words that commonly appear in extraneous
// content such as headers, footers, navigation, and publishing metadata
var extraneousStopwords = map[string]struct{}{
	// --- Publishing & Document Structure ---
	"author":    {},
	"appendix":  {},
	"book":      {},
	"chapter":   {},
	"content":   {}, // from "table of contents"
	"edit":      {}, // from "edition"
	"ebook":     {},
	"footer":    {},
	"glossari":  {},
	"gutenberg": {}, // from "Project Gutenberg"
	"navig":     {},
	"note":      {},
	"page":      {},
	"project":   {},
	"publish":   {},
	"text":      {}, // from "full text", "plain text"

	// --- Navigation & Interaction ---
	"about":  {},
	"locat":  {}, // from "location"
	"profil": {},
	"share":  {},
	"updat":  {},

	// --- Legal & Footer Text ---
	"copyright": {},
	"manag":     {},
	"permiss":   {},
	"polici":    {},
	"privaci":   {},
	"public":    {},
	"purpos":    {},
	"reproduc":  {},
	"reserv":    {},
	"right":     {},
	"risk":      {},
	"standard":  {},
	"term":      {},
	"use":       {},

	// --- Academic & Technical References ---
	"citat":   {},
	"depart":  {},
	"edu":     {},
	"feder":   {},
	"foundat": {},
	"https":   {}, // from URLs
	"isbn":    {},
	"refer":   {},

	// --- Social & Account ---
	"comment":   {},
	"cooki":     {},
	"facebook":  {},
	"login":     {},
	"subscrib":  {},
	"twitter":   {},
	"newslett":  {},
	"advertis":  {},
	"sponsor":   {},
	"trademark": {},
}

// extraneousPhrases contains two-syllable Vietnamese words from the same kinds
// of boilerplate. Single syllables such as "bản" or "chủ" are too common in
// prose to count alone; Vietnamese is not stemmed.
var extraneousPhrases = map[string]struct{}{
	"bản quyền":  {},
	"tác giả":    {},
	"chia sẻ":    {},
	"đăng nhập":  {},
	"đăng ký":    {},
	"liên hệ":    {},
	"bình luận":  {},
	"quảng cáo":  {},
	"theo dõi":   {},
	"trang chủ":  {},
	"danh mục":   {},
	"xem thêm":   {},
	"tin liên":   {}, // "tin liên quan"
	"nguồn tin":  {},
	"điều khoản": {},
}

// Classifier identifies and filters extraneous paragraphs using stopword analysis
// and position-based thresholding
type Classifier struct {
	// tokenRegex extracts letter-only word tokens from text
	tokenRegex *regexp.Regexp
}

// NewClassifier creates and initializes a new Classifier instance
func NewClassifier() *Classifier {
	return &Classifier{
		tokenRegex: regexp.MustCompile(`\p{L}+`),
	}
}

// IsExtraneous determines if a paragraph should be classified as extraneous content.
// It analyzes the ratio of boilerplate words to total tokens and applies a
// position-adjusted threshold that is lower for paragraphs at the beginning and
// end of documents.
//
// Parameters:
//   - text: the paragraph to analyze
//   - index: zero-based index of the paragraph within the document
//   - total: total number of paragraphs in the document
//
// Returns true if the paragraph is classified as extraneous and should be filtered out.
func (c *Classifier) IsExtraneous(text string, index int, total int) bool {
	// edge cases; invalid params should not be classified as extraneous
	if total <= 0 || index < 0 || index >= total {
		return false
	}

	// extract word tokens from the paragraph
	tokens := c.tokenRegex.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		// empty paragraphs are considered extraneous
		return true
	}

	stopwordCount := 0
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) {
			if _, ok := extraneousPhrases[tokens[i]+" "+tokens[i+1]]; ok {
				stopwordCount += 2
				i++
				continue
			}
		}
		if isBoilerplate(tokens[i]) {
			stopwordCount++
		}
	}

	// calculate the ratio of stopwords to total tokens
	stopwordRatio := float64(stopwordCount) / float64(len(tokens))

	// calculate position-adjusted threshold
	threshold := c.calculateThreshold(index, total)

	// classify as extraneous if stopword ratio exceeds the threshold
	return stopwordRatio > threshold
}

// isBoilerplate reports whether a lowercase token stems to an English
// boilerplate word.
func isBoilerplate(token string) bool {
	stemmed, err := snowball.Stem(token, "english", true)
	if err != nil {
		// if stemming fails, use the original token
		stemmed = token
	}
	_, ok := extraneousStopwords[stemmed]
	return ok
}

// calculateThreshold computes a dynamic threshold based on paragraph position.
// The threshold is lower for paragraphs at the beginning and end of documents
// (where headers, footers, and navigation are most commonly placed) and higher
// in the middle (where higher-density content is more likely).
func (c *Classifier) calculateThreshold(index int, total int) float64 {
	// edge cases
	if total <= 0 {
		return 0.33 // Default moderate threshold
	}
	if index < 0 || index >= total {
		return 0.33 // default for out-of-bounds indices
	}
	if total <= 3 {
		// For small docs, use a high threshold to avoid false positive
		return 0.5
	}

	// calculate relative position (0.0 to 1.0)
	relativePosition := float64(index) / float64(total-1)

	// deploy inverted V curve
	positionFactor := 1.0 - math.Abs(2.0*relativePosition-1.0)

	// define threshold range: 0.1 (edges) to 0.33 (middle)
	minThreshold := 0.1  // Low threshold for first/last 10%
	maxThreshold := 0.33 // High threshold for middle content

	// interpolate between min & max based on position factor
	threshold := minThreshold + (maxThreshold-minThreshold)*positionFactor

	return threshold
}
