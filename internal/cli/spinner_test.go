package cli

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func quietSpinner(ctx context.Context) (*Spinner, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, "Rendering...")
	s.out = &buf
	return s, &buf
}

func TestSpinnerDraws(t *testing.T) {
	s, buf := quietSpinner(context.Background())
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !bytes.Contains(buf.Bytes(), []byte("Rendering...")) {
		t.Errorf("spinner output = %q, want message", buf.String())
	}
	if s.Cancelled() {
		t.Error("Cancelled after a plain Stop")
	}
}

func TestSpinnerCancelled(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) }},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 20*time.Millisecond)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()
			s, _ := quietSpinner(ctx)
			s.Start()
			if tt.name == "cancel" {
				cancel()
			}
			time.Sleep(100 * time.Millisecond)
			if !s.Cancelled() {
				t.Error("spinner not cancelled")
			}
		})
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := quietSpinner(context.Background())
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s, _ := quietSpinner(context.Background())
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that never started")
	}
}

func TestSpinnerStopWithMessage(t *testing.T) {
	s, _ := quietSpinner(context.Background())
	s.Start()
	s.StopWithSuccess("Done")

	s, _ = quietSpinner(context.Background())
	s.Start()
	s.StopWithError("Failed")
}
