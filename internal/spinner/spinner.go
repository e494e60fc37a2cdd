// Package spinner shows a terminal progress indicator while a mind map is
// fetched and generated.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultFrames is the animation used unless withFrames overrides it.
var DefaultFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

// Spinner represents a spinning progress indicator.
type Spinner struct {
	frames  []string
	delay   time.Duration
	writer  io.Writer
	style   lipgloss.Style
	active  bool
	mu      sync.RWMutex
	ctx     context.Context
	cancel  context.CancelFunc
	message string
	started time.Time
	wg      sync.WaitGroup
}

// Option configures a Spinner.
type Option func(*Spinner)

// withFrames replaces the animation frames.
func withFrames(frames ...string) Option {
	return func(s *Spinner) {
		if len(frames) > 0 {
			s.frames = frames
		}
	}
}

// withDelay sets the time between frames.
func withDelay(d time.Duration) Option {
	return func(s *Spinner) {
		if d > 0 {
			s.delay = d
		}
	}
}

// withStyle sets the lipgloss style applied to each frame.
func withStyle(style lipgloss.Style) Option {
	return func(s *Spinner) {
		s.style = style
	}
}

// New creates a new spinner writing to writer.
// ctx allows for cancellation of the spinner goroutine.
func New(ctx context.Context, writer io.Writer, message string, opts ...Option) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	s := &Spinner{
		frames:  DefaultFrames,
		delay:   100 * time.Millisecond,
		writer:  writer,
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether w is an interactive terminal worth animating.
func Enabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	s.active = true
	s.started = time.Now()

	s.wg.Add(1)
	go s.run()
}

// Stop stops the spinner animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}

	s.active = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	// clear the whole line on terminals; a carriage return elsewhere
	if Enabled(s.writer) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

// IsActive returns whether the spinner is currently running
func (s *Spinner) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// UpdateMessage updates the spinner message, e.g. when moving from fetching
// to generation.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// run is the main spinner loop.
func (s *Spinner) run() {
	defer s.wg.Done()

	frameIndex := 0
	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			frame := s.style.Render(s.frames[frameIndex%len(s.frames)])
			message := s.message
			elapsed := time.Since(s.started).Truncate(100 * time.Millisecond)
			s.mu.RUnlock()

			fmt.Fprintf(s.writer, "\r%s %s (%s)", frame, message, elapsed)
			frameIndex++
		}
	}
}

// isTerminal helper function checks if is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
