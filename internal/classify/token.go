package classify

import (
	"strings"

	"github.com/chriscorrea/mindmap/internal/vocab"
)

// TokenClass is the coarse role of a word within a phrase.
type TokenClass int

const (
	// Other is any word without a concept or action cue
	Other TokenClass = iota
	// Concept is a word that names an idea or thing
	Concept
	// Action is a word that names an activity
	Action
)

// String returns the string representation of the token class.
func (tc TokenClass) String() string {
	switch tc {
	case Concept:
		return "concept"
	case Action:
		return "action"
	default:
		return "other"
	}
}

// TokenClassifier labels a word given the words that precede it.
// Implementations can range from suffix heuristics to a trained tagger.
type TokenClassifier interface {
	Classify(token string, context []string) TokenClass
}

// english suffix cues, checked on lowercase ASCII words
var (
	conceptSuffixes = []string{"tion", "sion", "ment", "ness", "ity", "ism", "ence", "ance", "ogy"}
	actionSuffixes  = []string{"ing", "ize", "ise", "ify", "ate"}
)

// HeuristicClassifier classifies words using vocabulary markers and English suffixes.
type HeuristicClassifier struct {
	vocab *vocab.Vocabulary
}

// NewHeuristicClassifier creates a HeuristicClassifier backed by v
// (the default Vietnamese vocabulary when v is nil).
func NewHeuristicClassifier(v *vocab.Vocabulary) *HeuristicClassifier {
	if v == nil {
		v = vocab.Vietnamese()
	}
	return &HeuristicClassifier{vocab: v}
}

// Classify implements TokenClassifier. The closest preceding word wins over
// cues on the word itself: "sự phát triển" is a concept although "phát" is
// an action syllable.
func (h *HeuristicClassifier) Classify(token string, context []string) TokenClass {
	word := strings.ToLower(strings.TrimSpace(token))
	if word == "" {
		return Other
	}

	if len(context) > 0 {
		prev := strings.ToLower(context[len(context)-1])
		if _, ok := h.vocab.ConceptMarkers[prev]; ok {
			return Concept
		}
		if _, ok := h.vocab.ActionMarkers[prev]; ok {
			return Action
		}
	}

	if _, ok := h.vocab.ConceptMarkers[word]; ok {
		return Concept
	}
	if _, ok := h.vocab.ActionWords[word]; ok {
		return Action
	}

	if isASCII(word) && len(word) > 5 {
		for _, suffix := range conceptSuffixes {
			if strings.HasSuffix(word, suffix) {
				return Concept
			}
		}
		for _, suffix := range actionSuffixes {
			if strings.HasSuffix(word, suffix) {
				return Action
			}
		}
	}

	return Other
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
