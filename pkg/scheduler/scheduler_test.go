package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"brandtracker-api/pkg/log"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: log.LevelFatal})
}

func TestRunNowExecutesJob(t *testing.T) {
	var runs atomic.Int32
	s := New(testLogger(), "test", time.Hour, time.Hour, func(context.Context) {
		runs.Add(1)
	})

	if !s.RunNow(context.Background()) {
		t.Fatal("RunNow reported skipped, want executed")
	}
	if runs.Load() != 1 {
		t.Fatalf("job ran %d times, want 1", runs.Load())
	}
}

func TestRunNowIsSingleFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	s := New(testLogger(), "test", time.Hour, time.Hour, func(context.Context) {
		close(entered)
		<-release
	})

	go s.RunNow(context.Background())
	<-entered

	// A second invocation while the first is in flight must be refused.
	if s.RunNow(context.Background()) {
		t.Error("concurrent RunNow executed, want skipped")
	}

	close(release)
}

func TestStartRejectsDoubleStart(t *testing.T) {
	s := New(testLogger(), "test", time.Hour, time.Hour, func(context.Context) {})
	if err := s.Start(); err != nil {
		t.Fatalf("first Start returned error: %v", err)
	}
	defer s.Stop()

	if err := s.Start(); err == nil {
		t.Error("second Start returned nil, want error")
	}
}

func TestStopWaitsForInflightRun(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	s := New(testLogger(), "test", time.Hour, 10*time.Millisecond, func(context.Context) {
		close(entered)
		<-release
	})
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	<-entered

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while the job was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the job finished")
	}
}
