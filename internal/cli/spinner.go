package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// spinnerFrames are drawn in turn while a spinner runs.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTick = 80 * time.Millisecond

// spinner shows that a slow step (PDF, PNG, graphviz) is still running,
// together with the time spent so far. It stops by itself when its context
// ends.
type spinner struct {
	w       io.Writer
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	start   time.Time

	mu    sync.Mutex
	width int // of the last drawn line, for clearing

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// spin runs fn while a spinner with message is shown on the status output.
func spin(ctx context.Context, message string, fn func() error) error {
	s := startSpinner(ctx, uiOut, message)
	defer s.Stop()
	return fn()
}

// startSpinner starts a spinner writing to w.
func startSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		w:       w,
		message: message,
		ctx:     sctx,
		cancel:  cancel,
		start:   time.Now(),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.stop:
			return
		case <-s.ctx.Done():
			s.clear()
			return
		case <-ticker.C:
			s.draw(spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func (s *spinner) draw(frame string) {
	elapsed := time.Since(s.start).Truncate(100 * time.Millisecond)
	line := fmt.Sprintf("%s %s %s", frame, s.message, elapsed)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = len([]rune(line))
	fmt.Fprintf(s.w, "\r%s %s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message), StyleDim.Render(elapsed.String()))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%*s\r", s.width, "")
	s.width = 0
}

// Stop ends the animation and clears the line. Calling it again is a no-op.
func (s *spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.stopped
		s.cancel()
		s.clear()
	})
}

// Cancelled reports whether the spinner's context ended before Stop.
func (s *spinner) Cancelled() bool {
	select {
	case <-s.stop:
		return false
	default:
		return s.ctx.Err() != nil
	}
}
