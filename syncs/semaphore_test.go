package syncs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)
	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.AcquireContext(t.Context()); err != nil {
				t.Error(err)
				return
			}
			defer sem.Release()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
		}()
	}
	wg.Wait()
	if peak.Load() > 2 {
		t.Fatalf("got %v", peak.Load())
	}
}

func TestAcquireContext(t *testing.T) {
	sem := NewSemaphore(1)
	if err := sem.AcquireContext(t.Context()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := sem.AcquireContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	sem.Release()
	if err := sem.AcquireContext(ctx); err != nil {
		// a free slot wins or loses the select at random
		if !errors.Is(err, context.Canceled) {
			t.Fatal(err)
		}
	}
}
