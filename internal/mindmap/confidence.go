package mindmap

// maxConfidence caps the confidence score.
const maxConfidence = 0.95

// fallbackConfidence is reported by the fallback mind map.
const fallbackConfidence = 0.5

// Confidence estimates how well the input supports a mind map, from 0 to
// 0.95. Each threshold reached adds a fixed amount, so the score never
// decreases when any count grows.
func Confidence(sentences, paragraphs, words int) float64 {
	score := 0.0
	if sentences >= 3 {
		score += 0.3
	}
	if sentences >= 8 {
		score += 0.2
	}
	if paragraphs >= 2 {
		score += 0.2
	}
	if paragraphs >= 4 {
		score += 0.1
	}
	if words >= 50 {
		score += 0.2
	}
	return min(score, maxConfidence)
}
