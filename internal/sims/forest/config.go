package forest

import (
	"fmt"
	"math"
	"strconv"
)

// Params holds the per-tick rates and durations driving the fire rules. A
// params record is replaced wholesale between ticks; no field is ever
// mutated mid-tick.
type Params struct {
	// TreeGrowthRate is the base chance (0-1) that a tree grows in an
	// empty cell each tick.
	TreeGrowthRate float64
	// UnderbrushTreeGrowthHindrance scales growth down with accumulated
	// underbrush: effective rate = rate * (1 - hindrance*underbrush).
	UnderbrushTreeGrowthHindrance float64
	// TreeUnderbrushGeneration is underbrush added per tree (own plus
	// neighboring) each tick.
	TreeUnderbrushGeneration float64
	// TreeDeathUnderbrush is the underbrush deposited by a natural death.
	TreeDeathUnderbrush float64
	// TreeDeathRate is the chance (0-1) that a tree dies each tick.
	TreeDeathRate float64
	// TreeFireDuration is how many ticks a single tree sustains fire.
	TreeFireDuration uint32
	// UnderbrushFireDuration is ticks of fire per unit of underbrush.
	UnderbrushFireDuration uint32
	// FireSpreadRate is the base chance (0-1) of fire spreading from one
	// burning neighbor.
	FireSpreadRate float64
	// TreeFlammability multiplies the spread chance for tree fuel.
	TreeFlammability float64
	// UnderbrushFlammability multiplies the spread chance per unit of
	// underbrush fuel.
	UnderbrushFlammability float64
	// LightningFrequency is the expected number of strikes per tick over
	// the whole grid; each cell gets frequency/area.
	LightningFrequency float64
	// TickRate is the target ticks per second for the free-running
	// scheduler. 0 parks the scheduler until a parameter change.
	TickRate int
}

// Validate rejects parameter records that cannot be evaluated. Probabilities
// above 1 are deliberately allowed: a derived chance >= 1 simply always
// happens.
func (p Params) Validate() error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("forest: parameter %s is not finite", name)
		}
		if v < 0 {
			return fmt.Errorf("forest: parameter %s is negative", name)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"tree_growth_rate", p.TreeGrowthRate},
		{"underbrush_tree_growth_hindrance", p.UnderbrushTreeGrowthHindrance},
		{"tree_underbrush_generation", p.TreeUnderbrushGeneration},
		{"tree_death_underbrush", p.TreeDeathUnderbrush},
		{"tree_death_rate", p.TreeDeathRate},
		{"fire_spread_rate", p.FireSpreadRate},
		{"tree_flammability", p.TreeFlammability},
		{"underbrush_flammability", p.UnderbrushFlammability},
		{"lightning_frequency", p.LightningFrequency},
	} {
		if err := check(c.name, c.v); err != nil {
			return err
		}
	}
	if p.TickRate < 0 {
		return fmt.Errorf("forest: tick_rate is negative")
	}
	return nil
}

// Set updates one field by its snake_case key, converting to the field's
// native type. Unknown keys return false. Validation happens when the whole
// record is submitted, not here.
func (p *Params) Set(key string, value float64) bool {
	switch key {
	case "tree_growth_rate":
		p.TreeGrowthRate = value
	case "underbrush_tree_growth_hindrance":
		p.UnderbrushTreeGrowthHindrance = value
	case "tree_underbrush_generation":
		p.TreeUnderbrushGeneration = value
	case "tree_death_underbrush":
		p.TreeDeathUnderbrush = value
	case "tree_death_rate":
		p.TreeDeathRate = value
	case "tree_fire_duration":
		if value < 0 {
			return false
		}
		p.TreeFireDuration = uint32(value)
	case "underbrush_fire_duration":
		if value < 0 {
			return false
		}
		p.UnderbrushFireDuration = uint32(value)
	case "fire_spread_rate":
		p.FireSpreadRate = value
	case "tree_flammability":
		p.TreeFlammability = value
	case "underbrush_flammability":
		p.UnderbrushFlammability = value
	case "lightning_frequency":
		p.LightningFrequency = value
	case "tick_rate":
		p.TickRate = int(value)
	default:
		return false
	}
	return true
}

// Config controls the forest world dimensions and starting state.
type Config struct {
	Width  int
	Height int

	Seed int64

	// InitialTreeDensity is the chance each cell starts with a tree.
	InitialTreeDensity float64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:              256,
		Height:             256,
		Seed:               1337,
		InitialTreeDensity: 0.3,
		Params: Params{
			TreeGrowthRate:                0.001,
			UnderbrushTreeGrowthHindrance: 0,
			TreeUnderbrushGeneration:      0.0001,
			TreeDeathUnderbrush:           0.01,
			TreeDeathRate:                 0.0001,
			TreeFireDuration:              10,
			UnderbrushFireDuration:        1,
			FireSpreadRate:                1.0,
			TreeFlammability:              0.5,
			UnderbrushFlammability:        1.0,
			LightningFrequency:            0.01,
			TickRate:                      60,
		},
	}
}

// Validate reports configuration errors eagerly, before any tick runs.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("forest: grid must have positive area, got %dx%d", c.Width, c.Height)
	}
	if math.IsNaN(c.InitialTreeDensity) || c.InitialTreeDensity < 0 || c.InitialTreeDensity > 1 {
		return fmt.Errorf("forest: initial_tree_density must be in [0,1]")
	}
	return c.Params.Validate()
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	setInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	setUint32 := func(key string, dst *uint32) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
				*dst = uint32(parsed)
			}
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	setInt("w", &c.Width)
	setInt("h", &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setFloat("initial_tree_density", &c.InitialTreeDensity)
	setFloat("tree_growth_rate", &c.Params.TreeGrowthRate)
	setFloat("underbrush_tree_growth_hindrance", &c.Params.UnderbrushTreeGrowthHindrance)
	setFloat("tree_underbrush_generation", &c.Params.TreeUnderbrushGeneration)
	setFloat("tree_death_underbrush", &c.Params.TreeDeathUnderbrush)
	setFloat("tree_death_rate", &c.Params.TreeDeathRate)
	setUint32("tree_fire_duration", &c.Params.TreeFireDuration)
	setUint32("underbrush_fire_duration", &c.Params.UnderbrushFireDuration)
	setFloat("fire_spread_rate", &c.Params.FireSpreadRate)
	setFloat("tree_flammability", &c.Params.TreeFlammability)
	setFloat("underbrush_flammability", &c.Params.UnderbrushFlammability)
	setFloat("lightning_frequency", &c.Params.LightningFrequency)
	setInt("tick_rate", &c.Params.TickRate)
	return c
}

// RealisticConfig expresses the simulation in real-world units and static
// forest properties; PerTick derives the internal rates from it.
type RealisticConfig struct {
	ForestWidth  int
	ForestHeight int
	// ForestAcres is derived from the dimensions at roughly one square
	// meter per cell.
	ForestAcres float64

	TicksPerMonth   float64
	MonthsPerSecond float64

	// LightningStrikesPerYearPerAcre is the regional strike density.
	LightningStrikesPerYearPerAcre float64
	// TreeGrowthYears is the average years for a tree to grow.
	TreeGrowthYears float64
	// TreeDeathYears is the average years for a tree to die naturally.
	TreeDeathYears float64

	UnderbrushTreeGrowthHindrance float64
	TreeUnderbrushGeneration      float64
	TreeDeathUnderbrush           float64
	TreeFireDuration              uint32
	UnderbrushFireDuration        uint32
	FireSpreadRate                float64
	TreeFlammability              float64
	UnderbrushFlammability        float64
}

const cellsPerAcre = 4047.0

// Realistic returns real-world defaults for a forest of the given size:
// one lightning strike per ~45 acres per year, 150-year tree growth,
// 200-year natural lifespan.
func Realistic(width, height int, ticksPerMonth, monthsPerSecond float64) RealisticConfig {
	return RealisticConfig{
		ForestWidth:                    width,
		ForestHeight:                   height,
		ForestAcres:                    float64(width) * float64(height) / cellsPerAcre,
		TicksPerMonth:                  ticksPerMonth,
		MonthsPerSecond:                monthsPerSecond,
		LightningStrikesPerYearPerAcre: 1.0 / 45.0,
		TreeGrowthYears:                150,
		TreeDeathYears:                 200,
		UnderbrushTreeGrowthHindrance:  0,
		TreeUnderbrushGeneration:       0.0001,
		TreeDeathUnderbrush:            0.01,
		TreeFireDuration:               1,
		UnderbrushFireDuration:         1,
		FireSpreadRate:                 1.0,
		TreeFlammability:               0.5,
		UnderbrushFlammability:         1.0,
	}
}

// PerTick converts the real-world units into per-tick rates.
func (rc RealisticConfig) PerTick() Params {
	ticksPerYear := rc.TicksPerMonth * 12
	return Params{
		TickRate:                      int(math.Round(rc.TicksPerMonth * rc.MonthsPerSecond)),
		LightningFrequency:            rc.LightningStrikesPerYearPerAcre * rc.ForestAcres / ticksPerYear,
		TreeGrowthRate:                1 / (ticksPerYear * rc.TreeGrowthYears),
		TreeDeathRate:                 1 / (ticksPerYear * rc.TreeDeathYears),
		UnderbrushTreeGrowthHindrance: rc.UnderbrushTreeGrowthHindrance,
		TreeUnderbrushGeneration:      rc.TreeUnderbrushGeneration,
		TreeDeathUnderbrush:           rc.TreeDeathUnderbrush,
		TreeFireDuration:              rc.TreeFireDuration,
		UnderbrushFireDuration:        rc.UnderbrushFireDuration,
		FireSpreadRate:                rc.FireSpreadRate,
		TreeFlammability:              rc.TreeFlammability,
		UnderbrushFlammability:        rc.UnderbrushFlammability,
	}
}
