package hotkeys

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// pumpHarness wires a pumpLoop to channel-backed hooks so tests can observe
// the goroutine handoff.
type pumpHarness struct {
	loop     pumpLoop
	quit     chan struct{}
	setupRan chan struct{}
	runDone  chan struct{}
	setupErr error
}

func newPumpHarness() *pumpHarness {
	h := &pumpHarness{
		quit:     make(chan struct{}),
		setupRan: make(chan struct{}, 4),
		runDone:  make(chan struct{}, 4),
	}
	h.loop.setup = func() error {
		h.setupRan <- struct{}{}
		return h.setupErr
	}
	h.loop.run = func() {
		<-h.quit
		h.runDone <- struct{}{}
	}
	h.loop.wake = func() { close(h.quit) }
	return h
}

func TestPumpLoopStartStopRoundTrip(t *testing.T) {
	h := newPumpHarness()

	if err := h.loop.start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	select {
	case <-h.setupRan:
	default:
		t.Fatal("start returned before setup completed")
	}

	if !h.loop.stop() {
		t.Fatal("stop should report a running loop was stopped")
	}
	select {
	case <-h.runDone:
	default:
		t.Fatal("stop returned before the pump goroutine exited")
	}
}

func TestPumpLoopStartCompletesWhileHoldingNoLockInHooks(t *testing.T) {
	// The pump goroutine must be able to finish setup while start itself is
	// still waiting, so start must not require any state the hooks also need.
	h := newPumpHarness()

	started := make(chan error, 1)
	go func() { started <- h.loop.start() }()

	select {
	case err := <-started:
		if err != nil {
			t.Fatalf("start failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("start did not complete; pump goroutine is blocked")
	}
	h.loop.stop()
}

func TestPumpLoopDuplicateStart(t *testing.T) {
	h := newPumpHarness()
	if err := h.loop.start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer h.loop.stop()

	if err := h.loop.start(); err == nil {
		t.Fatal("expected error for duplicate start")
	}
}

func TestPumpLoopSetupFailureLeavesLoopStopped(t *testing.T) {
	h := newPumpHarness()
	h.setupErr = errors.New("registration rejected")

	if err := h.loop.start(); err == nil {
		t.Fatal("expected setup error from start")
	}
	if h.loop.stop() {
		t.Fatal("loop should not be running after setup failure")
	}

	h.setupErr = nil
	if err := h.loop.start(); err != nil {
		t.Fatalf("restart after setup failure: %v", err)
	}
	h.loop.stop()
}

func TestPumpLoopStopBeforeStartIsNoop(t *testing.T) {
	var loop pumpLoop
	if loop.stop() {
		t.Fatal("stop on a never-started loop should report false")
	}
}

func TestPumpLoopConcurrentStop(t *testing.T) {
	h := newPumpHarness()
	if err := h.loop.start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	var wg sync.WaitGroup
	stopped := make(chan bool, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stopped <- h.loop.stop()
		}()
	}
	wg.Wait()
	close(stopped)

	count := 0
	for ok := range stopped {
		if ok {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one stop to win, got %d", count)
	}
}
