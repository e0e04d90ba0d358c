package forest

import (
	"testing"
	"time"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	world, err := NewWithConfig(quietConfig(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	return NewScheduler(world)
}

func TestParametersApplyAtTickBarrier(t *testing.T) {
	s := newTestScheduler(t)

	next := s.world.Params()
	next.TreeGrowthRate = 0.125
	if err := s.SetParameters(next); err != nil {
		t.Fatal(err)
	}

	// Staged, not yet live: the world still runs the old record until the
	// next barrier.
	if got := s.world.Params().TreeGrowthRate; got != 0 {
		t.Fatalf("parameters applied mid-tick: growth=%v", got)
	}
	if got := s.Parameters().TreeGrowthRate; got != 0.125 {
		t.Fatalf("staged parameters not visible: growth=%v", got)
	}

	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if got := s.world.Params().TreeGrowthRate; got != 0.125 {
		t.Fatalf("staged parameters not applied at barrier: growth=%v", got)
	}
}

func TestSetParametersRejectsInvalid(t *testing.T) {
	s := newTestScheduler(t)
	bad := s.world.Params()
	bad.TreeGrowthRate = -0.5
	if err := s.SetParameters(bad); err == nil {
		t.Fatal("expected a configuration error for a negative rate")
	}
}

func TestStopIsTerminal(t *testing.T) {
	s := newTestScheduler(t)
	for i := 0; i < 4; i++ {
		if err := s.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	stats := s.Stop()
	if stats.Ticks != 4 {
		t.Fatalf("stats ticks: want 4, got %d", stats.Ticks)
	}
	if stats.Ticks > 0 && stats.AvgTick != stats.Elapsed/time.Duration(stats.Ticks) {
		t.Fatal("average tick time inconsistent with totals")
	}

	if err := s.Tick(); err != ErrStopped {
		t.Fatalf("Tick after Stop: want ErrStopped, got %v", err)
	}
	if err := s.SetParameters(s.world.Params()); err != ErrStopped {
		t.Fatalf("SetParameters after Stop: want ErrStopped, got %v", err)
	}
	if err := s.Start(); err != ErrStopped {
		t.Fatalf("Start after Stop: want ErrStopped, got %v", err)
	}

	// Resume must not re-arm a stopped scheduler, and the counter must
	// keep its final value so no draws could ever be replayed.
	s.Resume()
	if err := s.Tick(); err != ErrStopped {
		t.Fatalf("Resume revived a stopped scheduler: %v", err)
	}
	if s.world.TickCount() != 4 {
		t.Fatalf("tick counter moved after stop: %d", s.world.TickCount())
	}
}

func TestStartRunsAndStopsCleanly(t *testing.T) {
	world, err := NewWithConfig(quietConfig(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	p := world.Params()
	p.TickRate = 500
	world.SetParams(p)

	s := NewScheduler(world)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err == nil {
		t.Fatal("second Start must fail")
	}

	deadline := time.After(2 * time.Second)
	for {
		if _, tick := s.Latest(); tick > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("scheduler never ticked")
		case <-time.After(time.Millisecond):
		}
	}

	stats := s.Stop()
	if stats.Ticks == 0 {
		t.Fatal("stats lost the completed ticks")
	}
	after := stats.Ticks
	time.Sleep(20 * time.Millisecond)
	if _, tick := s.Latest(); tick != after {
		t.Fatalf("ticks continued after stop: %d -> %d", after, tick)
	}
}

func TestPauseSuspendsBetweenTicks(t *testing.T) {
	world, err := NewWithConfig(quietConfig(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	p := world.Params()
	p.TickRate = 500
	world.SetParams(p)

	s := NewScheduler(world)
	s.Pause()
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	time.Sleep(50 * time.Millisecond)
	if _, tick := s.Latest(); tick != 0 {
		t.Fatalf("paused scheduler ticked %d times", tick)
	}

	s.Resume()
	deadline := time.After(2 * time.Second)
	for {
		if _, tick := s.Latest(); tick > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("resume did not restart ticking")
		case <-time.After(time.Millisecond):
		}
	}
	s.Stop()
}
