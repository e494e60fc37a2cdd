// Package vocab holds the fixed word tables used by the mind map pipeline.
//
// Tables are built once and treated as read-only. The pipeline receives a
// *Vocabulary through configuration rather than reading package globals, so
// tests can substitute smaller tables.
package vocab

import "strings"

// Style names understood by StylePrefixes. Kept as plain strings so that this
// package has no dependency on the generator.
const (
	Academic = "academic"
	Creative = "creative"
	Business = "business"
	Balanced = "balanced"
)

// Vocabulary groups every language-dependent table consumed by the pipeline.
type Vocabulary struct {
	// Stopwords are lowercase tokens ignored for scoring and key phrases.
	Stopwords map[string]struct{}

	// LeadingConnectives are stripped from the start of topic and theme strings.
	LeadingConnectives []string

	// SubTopicFillers are stripped from the start of sub-topics, in addition
	// to LeadingConnectives.
	SubTopicFillers []string

	// StylePrefixes maps a style name to the rotation of branch title prefixes.
	StylePrefixes map[string][]string

	// PlaceholderTopic is the central topic used when nothing can be derived.
	PlaceholderTopic string

	// FallbackThemes replace themes when none qualify.
	FallbackThemes []string

	// FallbackTitles pad the branch list up to the two-branch minimum.
	FallbackTitles []string

	// FallbackSubTopics fill branches for which no relevant content was found.
	FallbackSubTopics []string

	// ConceptMarkers precede nouns that name an idea ("sự", "việc", ...).
	ConceptMarkers map[string]struct{}

	// ActionMarkers precede verbs ("sẽ", "đang", "cần", ...).
	ActionMarkers map[string]struct{}

	// ActionWords are common verb syllables.
	ActionWords map[string]struct{}

	// Emoji is the decoration pool for presentation layers.
	Emoji []string
}

// IsStopword reports whether the lowercase token is a stopword.
func (v *Vocabulary) IsStopword(token string) bool {
	_, ok := v.Stopwords[strings.ToLower(token)]
	return ok
}

// Prefixes returns the prefix rotation for style, falling back to Balanced.
func (v *Vocabulary) Prefixes(style string) []string {
	if p, ok := v.StylePrefixes[style]; ok && len(p) > 0 {
		return p
	}
	return v.StylePrefixes[Balanced]
}

var vietnamese = buildVietnamese()

// Vietnamese returns the shared default vocabulary. Callers must not mutate it.
func Vietnamese() *Vocabulary {
	return vietnamese
}

func buildVietnamese() *Vocabulary {
	return &Vocabulary{
		Stopwords: setOf(
			// conjunctions and particles
			"và", "của", "là", "có", "được", "trong", "ngoài", "trên", "dưới", "với",
			"như", "theo", "từ", "về", "sau", "trước", "khi", "nếu", "thì", "mà",
			"này", "đó", "kia", "ai", "gì", "nào", "sao", "vì", "tại", "do", "bởi",
			"cho", "đến", "lên", "xuống", "ra", "vào", "ở", "bằng", "đang",
			"sẽ", "đã", "rất", "quá", "cũng", "vẫn", "cứ", "chỉ", "mỗi", "từng",
			// numerals and quantifiers
			"một", "hai", "ba", "bốn", "năm", "mấy", "nhiều", "ít", "các", "những",
			"mọi", "toàn", "cả", "chính", "ngay", "luôn", "vừa", "mới", "đều", "chưa",
			// pronouns and misc
			"tôi", "chúng", "họ", "bạn", "mình", "nhưng", "hoặc", "hay", "thể", "cần",
			"phải", "không", "còn", "nên", "vậy", "rằng", "để", "lại", "thêm",
		),
		LeadingConnectives: []string{
			"và", "nhưng", "tuy nhiên", "do đó", "vì vậy", "đầu tiên", "thứ nhất",
			"thứ hai", "thứ ba", "sau đó", "ngoài ra", "bên cạnh đó", "cuối cùng",
			"hơn nữa", "mặt khác", "trước hết", "tóm lại", "nói chung", "ví dụ",
		},
		SubTopicFillers: []string{
			"có thể", "được", "là", "của", "trong", "cũng", "đã", "sẽ", "đang",
		},
		StylePrefixes: map[string][]string{
			Academic: {"Phân tích", "Nghiên cứu", "Khái niệm", "Ứng dụng", "Lý thuyết"},
			Creative: {"Ý tưởng", "Giải pháp", "Phát triển", "Sáng tạo", "Đổi mới"},
			Business: {"Chiến lược", "Kế hoạch", "Giải pháp", "Triển khai", "Phát triển"},
			Balanced: {"Khía cạnh", "Góc nhìn", "Phương diện", "Ứng dụng", "Quan điểm"},
		},
		PlaceholderTopic: "Nội dung chính",
		FallbackThemes:   []string{"Phân tích chi tiết", "Ứng dụng thực tế"},
		FallbackTitles: []string{
			"Thông tin chính", "Chi tiết bổ sung", "Nội dung liên quan", "Điểm nổi bật",
		},
		FallbackSubTopics: []string{
			"Điểm quan trọng cần lưu ý", "Các yếu tố liên quan", "Ví dụ minh họa", "Hướng phát triển",
		},
		ConceptMarkers: setOf(
			"sự", "việc", "cuộc", "nền", "tính", "khả", "niềm", "nỗi", "hệ", "quá",
		),
		ActionMarkers: setOf(
			"sẽ", "đang", "đã", "cần", "phải", "nên", "hãy", "đừng", "muốn", "thể",
		),
		ActionWords: setOf(
			"tạo", "giúp", "xây", "làm", "tăng", "giảm", "cải", "phát", "thay", "dùng",
			"thực", "triển", "nâng", "thúc", "hỗ", "bảo", "quản", "đạt", "mở", "chọn",
		),
		Emoji: []string{"💡", "🌱", "🚀", "🎯", "✨", "🔍", "📌", "🧩"},
	}
}

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
