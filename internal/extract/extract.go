// Package extract turns fetched HTML into prose the mind map generator can
// segment: main-content extraction with go-readability or a CSS selector,
// Markdown conversion, and Markdown-to-plain-text stripping.
package extract

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// sniffLen is the number of leading bytes inspected when detecting HTML.
const sniffLen = 512

// Options controls how HTML content is reduced before conversion.
type Options struct {
	// Selector keeps only elements matching a CSS selector. It overrides
	// IncludeAll.
	Selector string

	// IncludeAll converts the whole document instead of the readability
	// main content.
	IncludeAll bool

	// BaseURL gives readability context for relative links. May be nil.
	BaseURL *url.URL
}

// ToMarkdown extracts the main content from HTML and converts it to Markdown.
// Optional CSS selector filtering is supported.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector to filter content (empty string for main content extraction)
//   - includeAll: if true, skips readability extraction and converts all HTML content
//   - baseURL: optional URL for context during readability extraction (can be nil)
//
// Returns clean Markdown string or error if extraction/conversion fails.
func ToMarkdown(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	if selector != "" {
		return extractWithSelector(content, selector)
	}

	if includeAll {
		return convertAllHTML(content)
	}

	return extractMainContent(content, baseURL)
}

// ToText reads a source and returns plain prose. HTML input (detected when
// isHTML is set or by sniffing the leading bytes) goes through ToMarkdown
// and StripMarkdown; anything else is read as-is with Markdown syntax
// stripped.
func ToText(content io.Reader, isHTML bool, opts Options) (string, error) {
	br := bufio.NewReaderSize(content, sniffLen)
	if !isHTML {
		head, _ := br.Peek(sniffLen)
		isHTML = LooksLikeHTML(head)
	}

	if isHTML {
		markdown, err := ToMarkdown(br, opts.Selector, opts.IncludeAll, opts.BaseURL)
		if err != nil {
			return "", err
		}
		return StripMarkdown(markdown), nil
	}

	raw, err := io.ReadAll(br)
	if err != nil {
		return "", fmt.Errorf("failed to read text content: %w", err)
	}
	return StripMarkdown(string(raw)), nil
}

// LooksLikeHTML reports whether head, the first bytes of a document, is HTML.
func LooksLikeHTML(head []byte) bool {
	head = bytes.TrimLeft(head, " \t\r\n\ufeff")
	if len(head) == 0 || head[0] != '<' {
		return false
	}
	return strings.HasPrefix(http.DetectContentType(head), "text/html")
}

// extractMainContent uses go-readability to extract the main article content
func extractMainContent(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	return convertToMarkdown(article.Content)
}

// extractWithSelector uses a CSS selector to extract specific content
func extractWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	// wrap each element in its own tag so paragraph structure survives
	var htmlParts []string
	selection.Each(func(i int, s *goquery.Selection) {
		html, err := s.Html()
		if err == nil {
			tagName := goquery.NodeName(s)
			htmlParts = append(htmlParts, fmt.Sprintf("<%s>%s</%s>", tagName, html, tagName))
		}
	})

	if len(htmlParts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	return convertToMarkdown(strings.Join(htmlParts, "\n"))
}

// convertAllHTML converts all HTML content to Markdown without filtering
func convertAllHTML(content io.Reader) (string, error) {
	htmlBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}

	return convertToMarkdown(string(htmlBytes))
}

// convertToMarkdown converts HTML string to clean Markdown
func convertToMarkdown(htmlString string) (string, error) {
	converter := md.NewConverter("", true, nil)

	converter.Use(md.Plugin(func(c *md.Converter) []md.Rule {
		return []md.Rule{
			// tidy up excessive whitespace
			{
				Filter: []string{"*"},
				Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
					cleaned := strings.TrimSpace(content)
					result := strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
					return &result
				},
			},
		}
	}))

	markdown, err := converter.ConvertString(htmlString)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	cleaned := strings.TrimSpace(markdown)
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")

	return cleaned, nil
}
