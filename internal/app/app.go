// Package app contains the core application logic for the mindmap CLI.
// It turns sources into text and text into a rendered mind map, separated
// from CLI concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chriscorrea/mindmap/internal/classify"
	"github.com/chriscorrea/mindmap/internal/counter"
	"github.com/chriscorrea/mindmap/internal/extract"
	"github.com/chriscorrea/mindmap/internal/fetch"
	"github.com/chriscorrea/mindmap/internal/mindmap"
	"github.com/chriscorrea/mindmap/internal/rank"
	"github.com/chriscorrea/mindmap/internal/render"
	"github.com/chriscorrea/mindmap/internal/segment"
	"github.com/chriscorrea/mindmap/internal/spinner"
	"github.com/chriscorrea/mindmap/internal/vocab"
)

// Config holds all configuration options for the mindmap application.
type Config struct {
	Sources    []string // URLs, file paths, or "-" for stdin
	Selector   string   // CSS selector for HTML content extraction
	IncludeAll bool     // skip readability and boilerplate filtering

	FetchTimeout time.Duration // HTTP timeout per URL source (0 = fetch default)
	UserAgent    string        // User-Agent for URL sources ("" = fetch default)
	MaxBytes     int64         // size limit per source (0 = fetch default)

	MaxUnits       int                    // input budget applied before generation (0 = none)
	CountingMethod counter.CountingMethod // unit of MaxUnits

	Style         mindmap.Style
	Complexity    mindmap.Complexity
	Ranker        rank.Method
	MaxTextLength int           // runes the generator analyzes (0 = default)
	Timeout       time.Duration // generation deadline (0 = none)

	Format render.Format
	Render render.Options

	Quiet bool          // suppress warnings and the spinner
	Stdin io.ReadCloser // replaces os.Stdin for "-" when set
}

// Run executes the mindmap pipeline with the given configuration and returns
// the rendered output.
//
// Processing Pipeline:
// 1. Fetch every source and reduce it to plain text (extractAndCombineContent)
// 2. Drop boilerplate blocks unless IncludeAll (filterBoilerplate)
// 3. Apply the input budget (applySizeLimit)
// 4. Generate under the deadline (GenerateWithDeadline) and render
//
// Errors are returned only for transport problems; generation itself always
// yields a mind map.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}

	var sp *spinner.Spinner
	if !cfg.Quiet && spinner.Enabled(os.Stderr) {
		sp = spinner.New(ctx, os.Stderr, "Đang đọc nguồn...")
		sp.Start()
	}
	stop := func() {
		if sp != nil {
			sp.Stop()
		}
	}

	text, err := extractAndCombineContent(ctx, cfg)
	if err != nil {
		stop()
		return "", err
	}

	if !cfg.IncludeAll {
		text = filterBoilerplate(text)
	}

	text, err = applySizeLimit(text, cfg.MaxUnits, cfg.CountingMethod)
	if err != nil {
		stop()
		return "", err
	}

	if sp != nil {
		sp.UpdateMessage("Đang tạo sơ đồ tư duy...")
	}
	result := GenerateWithDeadline(ctx, newGenerator(cfg), text, cfg.Style, cfg.Complexity, cfg.Timeout)
	stop()

	opts := cfg.Render
	if opts.Emoji && len(opts.EmojiPool) == 0 {
		opts.EmojiPool = vocab.Vietnamese().Emoji
	}

	var out strings.Builder
	if err := render.Write(&out, result, cfg.Format, opts); err != nil {
		return "", err
	}
	return out.String(), nil
}

// newGenerator builds a generator from the application settings.
func newGenerator(cfg Config) *mindmap.Generator {
	mc := mindmap.DefaultConfig()
	mc.Ranker = cfg.Ranker
	if cfg.MaxTextLength > 0 {
		mc.MaxTextLength = cfg.MaxTextLength
	}
	return mindmap.New(mindmap.WithConfig(mc))
}

// extractAndCombineContent processes all sources and joins their text with
// blank lines so each source starts a new paragraph.
func extractAndCombineContent(ctx context.Context, cfg Config) (string, error) {
	opts := []fetch.Option{
		fetch.WithTimeout(cfg.FetchTimeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBytes(cfg.MaxBytes),
	}
	if cfg.Stdin != nil {
		opts = append(opts, fetch.WithStdin(cfg.Stdin))
	}
	fetcher := fetch.New(opts...)

	var combinedContent strings.Builder
	for _, source := range cfg.Sources {
		content, err := processSource(ctx, fetcher, source, cfg.Selector, cfg.IncludeAll)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}

		if combinedContent.Len() > 0 {
			combinedContent.WriteString("\n\n")
		}
		combinedContent.WriteString(content)
	}

	if combinedContent.Len() == 0 {
		return "", fmt.Errorf("no content extracted from any source")
	}

	return combinedContent.String(), nil
}

// processSource fetches content from a single source and reduces it to plain text
func processSource(ctx context.Context, fetcher *fetch.Fetcher, source, selector string, includeAll bool) (string, error) {
	content, err := fetcher.Get(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to fetch content: %w", err)
	}
	defer content.Close()

	// parse source URL for readability context (if it's a URL)
	var baseURL *url.URL
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		baseURL, _ = url.Parse(source)
	}

	text, err := extract.ToText(content, content.IsHTML(), extract.Options{
		Selector:   selector,
		IncludeAll: includeAll,
		BaseURL:    baseURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no content extracted")
	}

	return text, nil
}

// filterBoilerplate drops blocks the classifier marks as extraneous (share
// buttons, copyright lines, navigation). When every block is extraneous the
// text is returned unchanged.
func filterBoilerplate(text string) string {
	blocks := segment.Blocks(text)
	if len(blocks) == 0 {
		return text
	}

	classifier := classify.NewClassifier()
	kept := make([]string, 0, len(blocks))
	for i, block := range blocks {
		if classifier.IsExtraneous(block, i, len(blocks)) {
			slog.Debug("Dropping boilerplate block", "index", i, "block", block)
			continue
		}
		kept = append(kept, block)
	}

	if len(kept) == 0 {
		slog.Debug("Every block looked like boilerplate, keeping the original text")
		return text
	}
	return strings.Join(kept, "\n\n")
}

// applySizeLimit truncates text to maxUnits units of the given method.
func applySizeLimit(text string, maxUnits int, method counter.CountingMethod) (string, error) {
	if maxUnits <= 0 {
		return text, nil
	}

	textCounter, err := counter.NewCounter(method)
	if err != nil {
		return "", fmt.Errorf("failed to create %s counter: %w", method, err)
	}

	limited := textCounter.Truncate(text, maxUnits)
	slog.Debug("Applied input budget", "method", textCounter.Name(), "maxUnits", maxUnits,
		"before", textCounter.Count(text), "after", textCounter.Count(limited))
	return limited, nil
}
