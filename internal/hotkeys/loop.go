package hotkeys

import (
	"errors"
	"runtime"
	"sync"
)

// pumpLoop runs a message pump on its own locked OS thread and serializes
// start and stop against it. The setup and run hooks execute on the pump
// goroutine and must not call back into the loop; wake runs on the stopping
// goroutine and must unblock run.
type pumpLoop struct {
	setup func() error
	run   func()
	wake  func()

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// start launches the pump goroutine and waits for setup to finish. A setup
// error is returned to the caller and leaves the loop stopped.
func (p *pumpLoop) start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return errors.New("hotkey listener already running")
	}

	ready := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)

		if p.setup != nil {
			if err := p.setup(); err != nil {
				ready <- err
				return
			}
		}
		ready <- nil

		if p.run != nil {
			p.run()
		}
	}()

	if err := <-ready; err != nil {
		return err
	}

	p.done = done
	p.running = true
	return nil
}

// stop wakes the pump and waits for the goroutine to exit. It reports whether
// a running loop was stopped; concurrent and repeated calls are safe.
func (p *pumpLoop) stop() bool {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return false
	}
	p.running = false
	done := p.done
	p.done = nil
	p.mu.Unlock()

	if p.wake != nil {
		p.wake()
	}
	<-done
	return true
}
