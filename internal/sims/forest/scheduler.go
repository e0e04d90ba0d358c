package forest

import (
	"errors"
	"sync"
	"time"

	"firesim/internal/core"
)

// ErrStopped is returned for tick or control requests after Stop.
var ErrStopped = errors.New("forest: scheduler stopped")

// Stats aggregates wall-clock timing for a finished run.
type Stats struct {
	// Ticks is the number of completed ticks.
	Ticks uint64
	// Elapsed is the total wall time spent inside ticks.
	Elapsed time.Duration
	// AvgTick is Elapsed / Ticks, zero when nothing ran.
	AvgTick time.Duration
}

// Scheduler drives a World from its own goroutine and serializes all
// external control against the tick barrier: parameter replacement lands
// between ticks, pause waits for the in-flight tick, and a started tick
// always runs to completion. Stop is terminal.
type Scheduler struct {
	mu   sync.Mutex
	wake *sync.Cond

	world   *World
	pending *Params

	started bool
	paused  bool
	stopped bool
	done    chan struct{}

	busy time.Duration
	pace *core.FixedStep
}

// NewScheduler wraps a world. The world must not be stepped by anyone else
// while the scheduler owns it.
func NewScheduler(world *World) *Scheduler {
	s := &Scheduler{
		world: world,
		done:  make(chan struct{}),
		pace:  core.NewFixedStep(world.Params().TickRate),
	}
	s.wake = sync.NewCond(&s.mu)
	return s
}

// Start launches the free-running loop. Starting twice or after Stop is an
// error.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return errors.New("forest: scheduler already started")
	}
	s.started = true
	go s.loop()
	return nil
}

func (s *Scheduler) loop() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for s.paused && !s.stopped {
			s.wake.Wait()
		}
		if s.stopped {
			s.mu.Unlock()
			return
		}
		s.applyPendingLocked()
		tps := s.world.Params().TickRate
		if tps <= 0 {
			// Parked: wait for a parameter change or stop.
			for s.pending == nil && !s.stopped {
				s.wake.Wait()
			}
			s.mu.Unlock()
			continue
		}
		s.pace.SetTPS(tps)
		if s.pace.ShouldStep() {
			s.tickLocked()
		}
		wait := s.pace.Remaining()
		s.mu.Unlock()
		if wait > 0 {
			time.Sleep(wait)
		}
	}
}

// tickLocked runs one tick while holding the mutex, which is what makes
// every control call sequence strictly between tick boundaries.
func (s *Scheduler) tickLocked() {
	start := time.Now()
	s.world.Step()
	s.busy += time.Since(start)
}

func (s *Scheduler) applyPendingLocked() {
	if s.pending != nil {
		s.world.SetParams(*s.pending)
		s.pending = nil
	}
}

// Tick advances the world by exactly one step synchronously. It shares the
// barrier with the free-running loop and refuses to run after Stop.
func (s *Scheduler) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	s.applyPendingLocked()
	s.tickLocked()
	return nil
}

// SetParameters validates and stages a replacement parameter record. It
// takes effect at the next tick barrier, never mid-tick.
func (s *Scheduler) SetParameters(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	staged := p
	s.pending = &staged
	s.wake.Broadcast()
	return nil
}

// Parameters returns the record the next tick will run with.
func (s *Scheduler) Parameters() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return *s.pending
	}
	return s.world.Params()
}

// Pause suspends the loop between completed ticks. It never interrupts an
// in-flight tick.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume lifts a pause. After Stop it has no effect: the tick counter keeps
// its final value and no draws are ever replayed.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	if !s.stopped {
		s.paused = false
		s.wake.Broadcast()
	}
	s.mu.Unlock()
}

// Paused reports whether the loop is suspended.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Stop terminates the run and returns its timing statistics. The in-flight
// tick, if any, completes first. Stop is idempotent.
func (s *Scheduler) Stop() Stats {
	s.mu.Lock()
	first := !s.stopped
	s.stopped = true
	started := s.started
	s.wake.Broadcast()
	s.mu.Unlock()

	if first && started {
		<-s.done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Ticks: s.world.TickCount(), Elapsed: s.busy}
	if st.Ticks > 0 {
		st.AvgTick = st.Elapsed / time.Duration(st.Ticks)
	}
	return st
}

// Latest returns a deep copy of the most recently completed frame and its
// tick number. Safe to call concurrently with an in-flight tick.
func (s *Scheduler) Latest() (*Frame, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Frame().Clone(), s.world.TickCount()
}
