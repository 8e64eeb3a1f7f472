package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsFrames(t *testing.T) {
	var buf syncBuffer
	s := startSpinner(context.Background(), &buf, "Rendering...")
	time.Sleep(3 * spinnerTick)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering...") {
		t.Errorf("spinner output = %q, want the message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner output = %q, want the line cleared on stop", out)
	}
}

func TestSpinnerCancelled(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx, cancel
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 10*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			s := startSpinner(ctx, &syncBuffer{}, "working")
			time.Sleep(50 * time.Millisecond)
			if !s.Cancelled() {
				t.Error("Cancelled() = false after the context ended, want true")
			}
			s.Stop()
		})
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := startSpinner(context.Background(), &syncBuffer{}, "stopping")
	s.Stop()
	s.Stop()
	if s.Cancelled() {
		t.Error("Cancelled() = true after Stop, want false")
	}
}

func TestSpin(t *testing.T) {
	defer swapUIOut(&syncBuffer{})()

	want := errors.New("render failed")
	calls := 0
	err := spin(context.Background(), "Rendering...", func() error {
		calls++
		return want
	})
	if err != want || calls != 1 {
		t.Errorf("spin() = %v after %d calls, want %v after 1", err, calls, want)
	}
}
