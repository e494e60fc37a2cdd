// Package render formats a generated mind map for output: indented JSON for
// programs, a lipgloss tree for terminals, and a Markdown outline for notes.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/chriscorrea/mindmap/internal/mindmap"
)

// Format selects the output representation.
type Format int

const (
	// JSON is the wire contract encoding of a Result.
	JSON Format = iota
	// Tree draws the mind map as an indented terminal tree.
	Tree
	// Outline writes a Markdown bullet outline.
	Outline
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Tree:
		return "tree"
	case Outline:
		return "outline"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON, nil
	case "tree":
		return Tree, nil
	case "outline", "markdown", "md":
		return Outline, nil
	default:
		return JSON, fmt.Errorf("unknown output format %q", name)
	}
}

// Options controls decoration of the human-readable formats.
type Options struct {
	// Emoji prefixes the topic and branch titles with an emoji drawn from
	// EmojiPool.
	Emoji bool

	// Seed makes the emoji choice reproducible.
	Seed int64

	// EmojiPool is the set of decorations to draw from.
	EmojiPool []string
}

var (
	topicStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	branchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	subTopicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	enumeratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginRight(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Write renders r in the given format to w.
func Write(w io.Writer, r mindmap.Result, format Format, opts Options) error {
	switch format {
	case Tree:
		_, err := fmt.Fprintln(w, RenderTree(r, opts))
		return err
	case Outline:
		_, err := io.WriteString(w, RenderOutline(r, opts))
		return err
	default:
		return WriteJSON(w, r)
	}
}

// WriteJSON encodes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r mindmap.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode mind map: %w", err)
	}
	return nil
}

// RenderTree draws the central topic as the root, branches as children and
// sub-topics as leaves, followed by a one-line analysis footer.
func RenderTree(r mindmap.Result, opts Options) string {
	labels := newLabeler(opts)

	t := tree.Root(labels.label(r.CentralTopic)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle).
		RootStyle(topicStyle).
		ItemStyle(branchStyle)

	for _, b := range r.MainBranches {
		branch := tree.Root(labels.label(b.Title)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(enumeratorStyle).
			ItemStyle(subTopicStyle)
		for _, s := range b.SubTopics {
			branch.Child(s)
		}
		t.Child(branch)
	}

	return t.String() + "\n\n" + footerStyle.Render(footer(r))
}

// RenderOutline writes the mind map as a Markdown heading and nested list.
func RenderOutline(r mindmap.Result, opts Options) string {
	labels := newLabeler(opts)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", labels.label(r.CentralTopic))
	for _, b := range r.MainBranches {
		fmt.Fprintf(&sb, "- **%s**\n", labels.label(b.Title))
		for _, s := range b.SubTopics {
			fmt.Fprintf(&sb, "  - %s\n", s)
		}
	}
	if len(r.Analysis.Keywords) > 0 {
		fmt.Fprintf(&sb, "\n_%s_\n", strings.Join(r.Analysis.Keywords, ", "))
	}
	return sb.String()
}

func footer(r mindmap.Result) string {
	return fmt.Sprintf("%d câu · %d đoạn · %d từ · độ tin cậy %.2f",
		r.Analysis.TotalSentences, r.Analysis.TotalParagraphs, r.Analysis.TotalWords, r.Analysis.Confidence)
}

// labeler decorates labels with emoji drawn from a seeded source, so the
// same seed always yields the same decoration.
type labeler struct {
	pool []string
	rng  *rand.Rand
}

func newLabeler(opts Options) *labeler {
	if !opts.Emoji || len(opts.EmojiPool) == 0 {
		return &labeler{}
	}
	return &labeler{
		pool: opts.EmojiPool,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
}

func (l *labeler) label(text string) string {
	if l.rng == nil {
		return text
	}
	return l.pool[l.rng.Intn(len(l.pool))] + " " + text
}
