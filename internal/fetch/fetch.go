// Package fetch retrieves source text for mind map generation from standard
// input, local files, and HTTP(S) URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Default size limits to prevent memory overload
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // 50MB limit for files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // 100MB limit for HTTP content (may not have Content-Length)
)

// HTTPRequestTimeout is the default end-to-end timeout of a URL fetch.
const HTTPRequestTimeout = 30 * time.Second

// UserAgent identifies the CLI to remote servers.
const UserAgent = "mindmap/0.1"

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// Content is an open source stream plus what is known about its format.
type Content struct {
	io.ReadCloser

	// Source is the name the content was requested by ("-" for stdin).
	Source string

	// ContentType is the media type reported by the server, or inferred
	// from the file extension. Empty when unknown.
	ContentType string
}

// IsHTML reports whether the content was declared as HTML.
func (c *Content) IsHTML() bool {
	return strings.Contains(strings.ToLower(c.ContentType), "html")
}

// Fetcher opens sources with configurable limits.
type Fetcher struct {
	client       *http.Client
	maxFileBytes int64
	maxHTTPBytes int64
	userAgent    string
	stdin        io.ReadCloser
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the HTTP request timeout; the dial, TLS and header
// phases get proportional shares of it.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.client = newHTTPClient(d)
		}
	}
}

// WithMaxBytes sets the size limit applied to every source.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxFileBytes = n
			f.maxHTTPBytes = n
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with URL fetches.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithStdin replaces os.Stdin as the source of "-".
func WithStdin(r io.ReadCloser) Option {
	return func(f *Fetcher) {
		f.stdin = r
	}
}

// newHTTPClient builds a client whose phase timeouts derive from the total.
// Keep-alives are disabled; each fetch is a one-shot request.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: timeout / 6,
			}).DialContext,
			TLSHandshakeTimeout:   timeout / 6,
			ResponseHeaderTimeout: timeout / 2,
			DisableKeepAlives:     true,
		},
	}
}

// New creates a Fetcher with default limits.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       newHTTPClient(HTTPRequestTimeout),
		maxFileBytes: MaxFileSizeBytes,
		maxHTTPBytes: MaxHTTPSizeBytes,
		userAgent:    UserAgent,
		stdin:        os.Stdin,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFetcher = New()

// GetContent retrieves content with the default Fetcher.
func GetContent(ctx context.Context, source string) (*Content, error) {
	return defaultFetcher.Get(ctx, source)
}

// Get retrieves content from one of three source types:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// ctx allows for cancellation and timeout control of fetch operations.
func (f *Fetcher) Get(ctx context.Context, source string) (*Content, error) {
	switch {
	case source == "-":
		return &Content{
			ReadCloser: &limitedReadCloser{
				ReadCloser: f.stdin,
				N:          f.maxFileBytes,
				source:     "stdin",
			},
			Source: source,
		}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return f.fetchURL(ctx, source)
	default:
		return f.fetchFile(source)
	}
}

// fetchURL retrieves content from an HTTP or HTTPS URL.
func (f *Fetcher) fetchURL(ctx context.Context, url string) (*Content, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %d %s", url, resp.StatusCode, resp.Status)
	}

	// reject oversized content early when the server declares its length
	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > f.maxHTTPBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", size, f.maxHTTPBytes)
		}
	}

	return &Content{
		ReadCloser: &limitedReadCloser{
			ReadCloser: resp.Body,
			N:          f.maxHTTPBytes,
			source:     url,
		},
		Source:      url,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// fetchFile opens a local file for reading.
func (f *Fetcher) fetchFile(path string) (*Content, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	if fileInfo.Size() > f.maxFileBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), f.maxFileBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return &Content{
		ReadCloser:  file,
		Source:      path,
		ContentType: contentTypeByExt(path),
	}, nil
}

func contentTypeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return "text/html"
	case ".md", ".markdown":
		return "text/markdown"
	case ".txt":
		return "text/plain"
	default:
		return ""
	}
}
