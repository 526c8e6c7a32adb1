package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerFiresOncePerPath(t *testing.T) {
	var called atomic.Int32

	delay := 50 * time.Millisecond
	d := NewDebouncer(delay, func(path string) {
		called.Add(1)
	})

	d.Add("/project/rawdata/sub-01")

	if !d.IsPending("/project/rawdata/sub-01") {
		t.Error("path should be pending after Add")
	}

	time.Sleep(delay + 50*time.Millisecond)

	if called.Load() != 1 {
		t.Errorf("expected callback to be called once, got %d", called.Load())
	}
	if d.IsPending("/project/rawdata/sub-01") {
		t.Error("path should not be pending after callback")
	}
}

func TestDebouncerCoalescesRapidEvents(t *testing.T) {
	var called atomic.Int32

	delay := 80 * time.Millisecond
	d := NewDebouncer(delay, func(path string) {
		called.Add(1)
	})

	for i := 0; i < 5; i++ {
		d.Add("/project/rawdata/sub-01")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(delay + 60*time.Millisecond)

	if called.Load() != 1 {
		t.Errorf("expected one coalesced callback, got %d", called.Load())
	}
}

func TestDebouncerTracksDistinctPaths(t *testing.T) {
	var called atomic.Int32

	d := NewDebouncer(40*time.Millisecond, func(path string) {
		called.Add(1)
	})

	d.Add("/project/rawdata/sub-01")
	d.Add("/project/rawdata/sub-02")

	if d.PendingCount() != 2 {
		t.Errorf("expected 2 pending, got %d", d.PendingCount())
	}

	time.Sleep(120 * time.Millisecond)

	if called.Load() != 2 {
		t.Errorf("expected two callbacks, got %d", called.Load())
	}
}

func TestDebouncerCancelAll(t *testing.T) {
	var called atomic.Int32

	d := NewDebouncer(40*time.Millisecond, func(path string) {
		called.Add(1)
	})

	d.Add("/project/rawdata/sub-01")
	d.Add("/project/rawdata/sub-02")
	d.CancelAll()

	if d.PendingCount() != 0 {
		t.Errorf("expected 0 pending after CancelAll, got %d", d.PendingCount())
	}

	time.Sleep(100 * time.Millisecond)

	if called.Load() != 0 {
		t.Errorf("expected no callbacks after CancelAll, got %d", called.Load())
	}
}
