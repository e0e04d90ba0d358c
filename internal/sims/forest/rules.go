package forest

import (
	"math"

	pcore "firesim/pkg/core"
)

// draws carries one uniform value per independent stochastic decision for a
// single cell at a single tick.
type draws struct {
	fireCatches float64
	treeDies    float64
	treeGrows   float64
	lightning   float64
}

// drawsFor derives the cell's random values from the world seed, the cell
// index, and the tick counter. Only the counter advances between ticks, so
// replaying a tick replays its draws exactly.
func drawsFor(seed uint32, idx int, tick uint32) draws {
	cellSeed := seed ^ uint32(idx)
	return draws{
		fireCatches: pcore.Uniform(cellSeed, pcore.SlotFireCatches, tick),
		treeDies:    pcore.Uniform(cellSeed, pcore.SlotTreeDies, tick),
		treeGrows:   pcore.Uniform(cellSeed, pcore.SlotTreeGrows, tick),
		lightning:   pcore.Uniform(cellSeed, pcore.SlotLightning, tick),
	}
}

// burnDuration is the tick count a cell's fuel can sustain fire: whole units
// of underbrush each burn for UnderbrushFireDuration ticks, a tree for
// TreeFireDuration. A cell with no fuel yields 0 and cannot hold fire.
func burnDuration(c Cell, p Params) uint32 {
	return uint32(math.Round(float64(c.Underbrush)))*p.UnderbrushFireDuration +
		uint32(math.Round(float64(c.Tree)))*p.TreeFireDuration
}

// transition computes one cell's next state from its previous state, its
// neighbor summary, the tick's parameter snapshot, and its random draws. It
// reads no other cell and applies the rules in a fixed order:
//
//  1. burn countdown (reaching 0 consumes the fuel),
//  2. ignition by spread or lightning,
//  3. natural tree death,
//  4. growth and underbrush accumulation, skipped while burning or freshly
//     ignited.
//
// Probabilities are compared as-is: a derived chance >= 1 always happens and
// <= 0 never does, so out-of-range parameters degrade instead of faulting.
func transition(prev Cell, n neighborInfo, p Params, area int, d draws) Cell {
	next := prev

	// A cell that was burning at the end of the previous tick counts down
	// and never re-ignites this tick, including the tick it burns out.
	burning := prev.FireRemaining > 0
	if burning {
		next.FireRemaining = prev.FireRemaining - 1
		if next.FireRemaining == 0 {
			next.Tree = 0
			next.Underbrush = 0
		}
	}

	ignited := false
	if !burning {
		totalFlammability := float64(prev.Underbrush)*p.UnderbrushFlammability +
			float64(prev.Tree)*p.TreeFlammability
		spreadChance := float64(n.fires) / 8 * p.FireSpreadRate * totalFlammability
		strikeChance := p.LightningFrequency / float64(area)
		if d.fireCatches < spreadChance || d.lightning < strikeChance {
			if dur := burnDuration(prev, p); dur > 0 {
				next.FireRemaining = dur
				ignited = true
			}
		}
	}

	treeDied := false
	if prev.Tree > 0 && d.treeDies < p.TreeDeathRate {
		next.Tree = 0
		treeDied = true
	}

	if !burning && !ignited {
		if prev.Tree == 0 && d.treeGrows < p.TreeGrowthRate*(1-p.UnderbrushTreeGrowthHindrance*float64(prev.Underbrush)) {
			next.Tree = 1
		}
		next.Underbrush = prev.Underbrush +
			float32((float64(next.Tree)+float64(n.trees))*p.TreeUnderbrushGeneration)
		if treeDied {
			next.Underbrush += float32(p.TreeDeathUnderbrush)
		}
	}

	return next
}
