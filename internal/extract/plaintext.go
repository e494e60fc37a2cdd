package extract

import (
	"regexp"
	"strings"
	"sync"
)

// markdownPatterns holds compiled regex patterns for markdown syntax
type markdownPatterns struct {
	header     *regexp.Regexp
	bulletList *regexp.Regexp
	numberList *regexp.Regexp
	blockquote *regexp.Regexp
	codeFence  *regexp.Regexp
	inlineCode *regexp.Regexp
	image      *regexp.Regexp
	link       *regexp.Regexp
	bold       *regexp.Regexp
	italic     *regexp.Regexp
	rule       *regexp.Regexp
}

var (
	patterns     *markdownPatterns
	patternsOnce sync.Once
)

// getPatterns returns the singleton instance of compiled regex patterns
func getPatterns() *markdownPatterns {
	patternsOnce.Do(func() {
		patterns = &markdownPatterns{
			header:     regexp.MustCompile(`^\s*#{1,6}\s+`),
			bulletList: regexp.MustCompile(`^\s*[-*+]\s+`),
			numberList: regexp.MustCompile(`^\s*\d+\.\s+`),
			blockquote: regexp.MustCompile(`^\s*(?:>\s?)+`),
			codeFence:  regexp.MustCompile("^\\s*(?:\x60{3}|~{3})"),
			inlineCode: regexp.MustCompile("\x60([^\x60]+)\x60"),
			image:      regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`),
			link:       regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`),
			bold:       regexp.MustCompile(`(\*\*|__)([^*_]+)(\*\*|__)`),
			italic:     regexp.MustCompile(`(^|[^\pL\pN*_])[*_]([^*_\s][^*_]*)[*_]`),
			rule:       regexp.MustCompile(`^\s*(?:[-*_=]\s*){3,}$`),
		}
	})
	return patterns
}

// StripMarkdown removes Markdown syntax and keeps the prose. Code blocks are
// dropped entirely; list items become sentences on their own lines; blank
// lines between blocks are preserved so paragraphs survive.
func StripMarkdown(markdown string) string {
	p := getPatterns()

	lines := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	inCode := false
	for _, line := range lines {
		if p.codeFence.MatchString(line) {
			inCode = !inCode
			continue
		}
		if inCode || p.rule.MatchString(line) {
			continue
		}

		line = p.header.ReplaceAllString(line, "")
		line = p.blockquote.ReplaceAllString(line, "")
		line = p.bulletList.ReplaceAllString(line, "")
		line = p.numberList.ReplaceAllString(line, "")
		line = p.image.ReplaceAllString(line, "")
		line = p.link.ReplaceAllString(line, "$1")
		line = p.inlineCode.ReplaceAllString(line, "$1")
		line = p.bold.ReplaceAllString(line, "$2")
		line = p.italic.ReplaceAllString(line, "$1$2")

		out = append(out, strings.TrimSpace(line))
	}

	text := strings.Join(out, "\n")
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}
