package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/chriscorrea/mindmap/internal/mindmap"
)

// GenerateWithDeadline runs g.Generate in its own goroutine and waits for it
// until ctx is done or timeout elapses, whichever comes first. On expiry it
// returns g's fallback mind map; the abandoned generation finishes in the
// background and its result is discarded. A timeout <= 0 waits on ctx alone.
func GenerateWithDeadline(ctx context.Context, g *mindmap.Generator, text string, style mindmap.Style, complexity mindmap.Complexity, timeout time.Duration) mindmap.Result {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// buffered so the goroutine never blocks after we stop listening
	done := make(chan mindmap.Result, 1)
	go func() {
		done <- g.Generate(text, style, complexity)
	}()

	select {
	case result := <-done:
		return result
	case <-ctx.Done():
		slog.Debug("Mind map generation deadline reached, using fallback", "timeout", timeout, "reason", ctx.Err())
		return g.Fallback(style, complexity)
	}
}
