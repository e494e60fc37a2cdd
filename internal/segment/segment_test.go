package segment_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/chriscorrea/mindmap/internal/segment"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"empty string", "", 100, ""},
		{"whitespace only", "   \n\t  ", 100, ""},
		{"collapses whitespace", "Học   máy\n\nrất   hay", 100, "Học máy rất hay"},
		{"keeps sentence punctuation", "Xin chào, bạn! (thử) a-b; c: d?", 100, "Xin chào, bạn! (thử) a-b; c: d?"},
		{"strips symbols", "Giá $100 & 50% #tag", 100, "Giá 100 50 tag"},
		{"strips emoji", "Tuyệt vời 🚀 lắm", 100, "Tuyệt vời lắm"},
		{"truncates by runes", "Đường phố Hà Nội", 6, "Đường"},
		{"no truncation when maxLen is zero", "Đường phố", 0, "Đường phố"},
		{"composes decomposed input", "Vie\u0302\u0323t Nam", 100, "Việt Nam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.Normalize(tt.text, tt.maxLen)
			if got != tt.want {
				t.Errorf("Normalize(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"...!!!???",
		"a",
		"Trí tuệ nhân tạo 🤖 đang thay đổi   thế giới!\n\nNó giúp con người làm việc hiệu quả hơn.",
		"<b>html</b> & symbols @#$%^*",
		strings.Repeat("Giáo dục là nền tảng của sự phát triển. ", 300),
	}

	for _, in := range inputs {
		once := segment.Normalize(in, 1500)
		twice := segment.Normalize(once, 1500)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q:\n once  = %q\n twice = %q", in, once, twice)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"shorter than limit", "abc", 5, "abc"},
		{"exact limit", "abc", 3, "abc"},
		{"multibyte runes", "ươngđ", 3, "ươn"},
		{"disabled", "abcdef", 0, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segment.Truncate(tt.text, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	limits := segment.DefaultLimits()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "mixed delimiters",
			text: "Học máy là một lĩnh vực. Nó có nhiều ứng dụng thực tế! Bạn đã thử chưa?",
			want: []string{"Học máy là một lĩnh vực", "Nó có nhiều ứng dụng thực tế", "Bạn đã thử chưa"},
		},
		{
			name: "runs of punctuation",
			text: "Thật tuyệt vời quá đi?!... Chúng ta cùng bắt đầu nhé",
			want: []string{"Thật tuyệt vời quá đi", "Chúng ta cùng bắt đầu nhé"},
		},
		{
			name: "too short and too few words dropped",
			text: "Ngắn. Wonderful things. Câu này đủ dài và đủ từ.",
			want: []string{"Câu này đủ dài và đủ từ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.SplitSentences(tt.text, limits)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitSentences() returned %d sentences, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, s := range got {
				if s.Text != tt.want[i] {
					t.Errorf("sentence[%d] = %q, want %q", i, s.Text, tt.want[i])
				}
				if s.Index != i {
					t.Errorf("sentence[%d].Index = %d, want %d", i, s.Index, i)
				}
				if s.Length != utf8.RuneCountInString(s.Text) {
					t.Errorf("sentence[%d].Length = %d, want rune count %d", i, s.Length, utf8.RuneCountInString(s.Text))
				}
			}
		})
	}
}

func TestSplitSentencesBounds(t *testing.T) {
	limits := segment.DefaultLimits()
	limits.MaxSentences = 5

	long := strings.Repeat("từ ", 120)
	text := strings.Repeat("Đây là một câu mẫu hợp lệ. ", 10) + long + ". Câu cuối cùng cũng hợp lệ."

	got := segment.SplitSentences(text, limits)
	if len(got) != limits.MaxSentences {
		t.Fatalf("SplitSentences() returned %d sentences, want cap %d", len(got), limits.MaxSentences)
	}
	for i, s := range got {
		if s.Length < limits.MinSentenceLen || s.Length > limits.MaxSentenceLen {
			t.Errorf("sentence[%d] length %d outside [%d, %d]", i, s.Length, limits.MinSentenceLen, limits.MaxSentenceLen)
		}
		if s.WordCount < limits.MinSentenceWords {
			t.Errorf("sentence[%d] word count %d below %d", i, s.WordCount, limits.MinSentenceWords)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	limits := segment.DefaultLimits()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty input", "", 0},
		{"whitespace only", "\n\n  \n", 0},
		{"single paragraph", "Giáo dục là nền tảng của sự phát triển bền vững.", 1},
		{"short paragraphs dropped", "Ngắn quá.\n\nĐoạn văn này đủ dài để được giữ lại.", 1},
		{"blank-line separated", "Đoạn thứ nhất đủ dài để giữ.\n\nĐoạn thứ hai cũng đủ dài.\nĐoạn thứ ba viết liền dòng.", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.SplitParagraphs(tt.text, limits)
			if len(got) != tt.want {
				t.Errorf("SplitParagraphs() returned %d paragraphs, want %d: %+v", len(got), tt.want, got)
			}
			for _, p := range got {
				if p.Length <= limits.MinParagraphLen {
					t.Errorf("paragraph %q length %d not above %d", p.Text, p.Length, limits.MinParagraphLen)
				}
			}
		})
	}
}

func TestSplitParagraphsCap(t *testing.T) {
	limits := segment.DefaultLimits()
	text := strings.Repeat("Một đoạn văn khá dài để kiểm tra.\n\n", 20)

	got := segment.SplitParagraphs(text, limits)
	if len(got) != limits.MaxParagraphs {
		t.Errorf("SplitParagraphs() returned %d paragraphs, want cap %d", len(got), limits.MaxParagraphs)
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"Câu đầu tiên. Câu thứ hai.", "Câu đầu tiên"},
		{"...Bắt đầu bằng dấu chấm", "Bắt đầu bằng dấu chấm"},
	}

	for _, tt := range tests {
		if got := segment.FirstSentence(tt.text); got != tt.want {
			t.Errorf("FirstSentence(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "  \n\n ", []string{}},
		{"single block keeps line breaks", "Dòng một\nDòng hai", []string{"Dòng một\nDòng hai"}},
		{"blank lines split", "Khối một.\n\nKhối hai.\n \n\nKhối ba.", []string{"Khối một.", "Khối hai.", "Khối ba."}},
		{"crlf", "A.\r\n\r\nB.", []string{"A.", "B."}},
		{"keeps punctuation", "© 2024 · Chia sẻ\n\nNội dung", []string{"© 2024 · Chia sẻ", "Nội dung"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.Blocks(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("Blocks(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Blocks(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"fits unchanged", "Học máy hiện đại", 20, "Học máy hiện đại"},
		{"cuts at word boundary", "Trí tuệ nhân tạo đang thay đổi thế giới", 20, "Trí tuệ nhân tạo..."},
		{"drops trailing punctuation before ellipsis", "Một, hai, ba, bốn, năm, sáu", 12, "Một, hai..."},
		{"single oversized word", "Supercalifragilistic", 10, "Superca..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.TruncateWords(tt.text, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateWords(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
			if utf8.RuneCountInString(got) > tt.maxLen {
				t.Errorf("TruncateWords() result %q exceeds %d runes", got, tt.maxLen)
			}
		})
	}
}
