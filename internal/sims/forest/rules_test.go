package forest

import "testing"

func TestBurnCountdownExtinguishes(t *testing.T) {
	p := DefaultConfig().Params
	prev := Cell{Tree: 1, Underbrush: 2, FireRemaining: 1}

	// Regardless of the draws, a cell one tick from burnout must end the
	// tick extinguished with its fuel consumed.
	for _, d := range []draws{
		{},
		{fireCatches: 0.999, treeDies: 0.999, treeGrows: 0.999, lightning: 0.999},
		{fireCatches: 0, treeDies: 0, treeGrows: 0, lightning: 0},
	} {
		next := transition(prev, neighborInfo{fires: 8, trees: 8, underbrush: 10}, p, 64, d)
		if next.FireRemaining != 0 {
			t.Fatalf("expected extinguished cell, got FireRemaining=%d", next.FireRemaining)
		}
		if next.Tree != 0 || next.Underbrush != 0 {
			t.Fatalf("burnout must consume fuel, got tree=%v underbrush=%v", next.Tree, next.Underbrush)
		}
	}
}

func TestBurnCountdownDecrementsByOne(t *testing.T) {
	p := DefaultConfig().Params
	cell := Cell{Tree: 1, FireRemaining: 5}
	for want := uint32(4); want > 0; want-- {
		cell = transition(cell, neighborInfo{}, p, 64, draws{treeDies: 0.999})
		if cell.FireRemaining != want {
			t.Fatalf("countdown skipped: want %d, got %d", want, cell.FireRemaining)
		}
	}
}

func TestBurningCellDoesNotReignite(t *testing.T) {
	p := DefaultConfig().Params
	p.FireSpreadRate = 1
	p.TreeFlammability = 100
	// Maximum spread pressure plus a certain lightning draw: the cell was
	// already burning, so the countdown continues instead of restarting.
	prev := Cell{Tree: 1, Underbrush: 5, FireRemaining: 3}
	next := transition(prev, neighborInfo{fires: 8}, p, 1, draws{fireCatches: 0, lightning: 0, treeDies: 0.999})
	if next.FireRemaining != 2 {
		t.Fatalf("burning cell restarted its countdown: got %d", next.FireRemaining)
	}
}

func TestIgnitionBySpread(t *testing.T) {
	p := DefaultConfig().Params
	p.FireSpreadRate = 1
	p.TreeFlammability = 1
	p.UnderbrushFlammability = 0
	p.TreeFireDuration = 7
	p.UnderbrushFireDuration = 0

	prev := Cell{Tree: 1}
	// chance = fires/8 * rate * flammability = 4/8 = 0.5
	n := neighborInfo{fires: 4}
	ignited := transition(prev, n, p, 64, draws{fireCatches: 0.49, lightning: 0.999, treeGrows: 0.999, treeDies: 0.999})
	if ignited.FireRemaining != 7 {
		t.Fatalf("expected ignition with duration 7, got %d", ignited.FireRemaining)
	}
	unlit := transition(prev, n, p, 64, draws{fireCatches: 0.51, lightning: 0.999, treeGrows: 0.999, treeDies: 0.999})
	if unlit.FireRemaining != 0 {
		t.Fatalf("expected no ignition, got %d", unlit.FireRemaining)
	}
}

func TestIgnitionByLightningOneByOneGrid(t *testing.T) {
	p := DefaultConfig().Params
	p.FireSpreadRate = 0
	p.LightningFrequency = 0.42
	p.TreeFireDuration = 3

	// On a 1x1 grid the per-cell strike chance equals the global frequency.
	prev := Cell{Tree: 1}
	hit := transition(prev, neighborInfo{}, p, 1, draws{lightning: 0.4199, fireCatches: 0.999, treeGrows: 0.999, treeDies: 0.999})
	if hit.FireRemaining != 3 {
		t.Fatalf("strike below frequency must ignite, got %d", hit.FireRemaining)
	}
	miss := transition(prev, neighborInfo{}, p, 1, draws{lightning: 0.4201, fireCatches: 0.999, treeGrows: 0.999, treeDies: 0.999})
	if miss.FireRemaining != 0 {
		t.Fatalf("strike above frequency must not ignite, got %d", miss.FireRemaining)
	}
}

func TestIgnitionWithoutFuelIsNoOp(t *testing.T) {
	p := DefaultConfig().Params
	p.LightningFrequency = 1
	p.TreeGrowthRate = 1

	// An empty cell has burn duration 0: the strike doesn't take, and the
	// cell still grows this tick.
	next := transition(Cell{}, neighborInfo{}, p, 1, draws{lightning: 0, treeGrows: 0, fireCatches: 0.999, treeDies: 0.999})
	if next.FireRemaining != 0 {
		t.Fatalf("no-fuel cell must not hold fire, got %d", next.FireRemaining)
	}
	if next.Tree != 1 {
		t.Fatal("no-op ignition must not suppress growth")
	}
}

func TestBurnDurationCombinesFuel(t *testing.T) {
	p := Params{TreeFireDuration: 10, UnderbrushFireDuration: 2}
	if got := burnDuration(Cell{Tree: 1, Underbrush: 3}, p); got != 16 {
		t.Fatalf("want duration 16, got %d", got)
	}
	if got := burnDuration(Cell{Underbrush: 0.4}, p); got != 0 {
		t.Fatalf("sub-unit underbrush rounds to no fuel, got %d", got)
	}
	if got := burnDuration(Cell{}, p); got != 0 {
		t.Fatalf("empty cell must have duration 0, got %d", got)
	}
}

func TestTreeDeathDepositsUnderbrush(t *testing.T) {
	p := Params{TreeDeathRate: 0.5, TreeDeathUnderbrush: 0.25, TreeUnderbrushGeneration: 0}
	prev := Cell{Tree: 1}
	next := transition(prev, neighborInfo{}, p, 64, draws{treeDies: 0.49, fireCatches: 0.999, lightning: 0.999, treeGrows: 0.999})
	if next.Tree != 0 {
		t.Fatal("tree should have died")
	}
	if next.Underbrush != 0.25 {
		t.Fatalf("death bonus missing: underbrush=%v", next.Underbrush)
	}
	alive := transition(prev, neighborInfo{}, p, 64, draws{treeDies: 0.51, fireCatches: 0.999, lightning: 0.999, treeGrows: 0.999})
	if alive.Tree != 1 || alive.Underbrush != 0 {
		t.Fatalf("surviving tree mutated: %+v", alive)
	}
}

func TestGrowthHindrance(t *testing.T) {
	p := Params{TreeGrowthRate: 0.5, UnderbrushTreeGrowthHindrance: 1}
	// effective rate = 0.5 * (1 - 1*0.5) = 0.25
	prev := Cell{Underbrush: 0.5}
	grown := transition(prev, neighborInfo{}, p, 64, draws{treeGrows: 0.24, fireCatches: 0.999, lightning: 0.999, treeDies: 0.999})
	if grown.Tree != 1 {
		t.Fatal("expected growth below hindered rate")
	}
	bare := transition(prev, neighborInfo{}, p, 64, draws{treeGrows: 0.26, fireCatches: 0.999, lightning: 0.999, treeDies: 0.999})
	if bare.Tree != 0 {
		t.Fatal("expected no growth above hindered rate")
	}
}

func TestUnderbrushAccumulatesFromTrees(t *testing.T) {
	p := Params{TreeUnderbrushGeneration: 0.01}
	prev := Cell{Tree: 1, Underbrush: 0.5}
	next := transition(prev, neighborInfo{trees: 3}, p, 64, draws{fireCatches: 0.999, lightning: 0.999, treeGrows: 0.999, treeDies: 0.999})
	want := float32(0.5) + float32((1.0+3.0)*0.01)
	if next.Underbrush != want {
		t.Fatalf("underbrush accumulation: want %v, got %v", want, next.Underbrush)
	}
}

func TestNoGrowthWhileBurningOrIgnited(t *testing.T) {
	p := Params{TreeGrowthRate: 1, TreeUnderbrushGeneration: 1, FireSpreadRate: 1, UnderbrushFlammability: 1, UnderbrushFireDuration: 1}

	// Mid-burn: step 4 is skipped entirely.
	burning := transition(Cell{Underbrush: 1, FireRemaining: 3}, neighborInfo{trees: 8}, p, 64, draws{treeGrows: 0, treeDies: 0.999})
	if burning.Underbrush != 1 {
		t.Fatalf("burning cell accumulated underbrush: %v", burning.Underbrush)
	}

	// Freshly ignited: same.
	lit := transition(Cell{Underbrush: 1}, neighborInfo{fires: 8, trees: 8}, p, 64, draws{fireCatches: 0, treeGrows: 0, treeDies: 0.999, lightning: 0.999})
	if lit.FireRemaining != 1 {
		t.Fatalf("expected ignition, got %d", lit.FireRemaining)
	}
	if lit.Underbrush != 1 || lit.Tree != 0 {
		t.Fatalf("ignited cell must keep step-1 values: %+v", lit)
	}
}

func TestProbabilityEdgeBehavior(t *testing.T) {
	// A derived chance >= 1 always happens, <= 0 never does, with no
	// clamping and no fault.
	p := Params{TreeGrowthRate: 3}
	if next := transition(Cell{}, neighborInfo{}, p, 64, draws{treeGrows: 0.999999, fireCatches: 0.999, lightning: 0.999, treeDies: 0.999}); next.Tree != 1 {
		t.Fatal("rate above 1 must always fire")
	}
	p.TreeGrowthRate = 0
	if next := transition(Cell{}, neighborInfo{}, p, 64, draws{treeGrows: 0, fireCatches: 0.999, lightning: 0.999, treeDies: 0.999}); next.Tree != 0 {
		t.Fatal("rate of 0 must never fire")
	}
}
