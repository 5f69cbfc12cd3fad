package cli

import (
	"bytes"
	"context"
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

func quietSpinner(ctx context.Context, msg string) (*Spinner, *syncBuffer) {
	var w syncBuffer
	s := newSpinnerWithContext(ctx, msg)
	s.w = &w
	return s, &w
}

func TestSpinnerDrawsFrames(t *testing.T) {
	s, w := quietSpinner(context.Background(), "Rendering out.gv")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !bytes.Contains([]byte(w.String()), []byte("Rendering out.gv")) {
		t.Errorf("spinner output %q missing message", w.String())
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, _ := quietSpinner(ctx, "Rendering")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s, _ := quietSpinner(ctx, "Rendering")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Rendering")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Rendering")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop without Start should not block")
	}
}

func TestSpinnerStopWithMessage(t *testing.T) {
	var status bytes.Buffer
	restore := out
	out = &status
	defer func() { out = restore }()

	s, _ := quietSpinner(context.Background(), "Rendering")
	s.Start()
	s.StopWithSuccess("Rendered")

	s, _ = quietSpinner(context.Background(), "Rendering")
	s.Start()
	s.StopWithError("Render failed")

	got := status.String()
	if !bytes.Contains([]byte(got), []byte("Rendered")) || !bytes.Contains([]byte(got), []byte("Render failed")) {
		t.Errorf("status output = %q", got)
	}
}
