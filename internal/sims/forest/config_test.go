package forest

import (
	"math"
	"testing"
)

func TestValidateRejectsNonFiniteRates(t *testing.T) {
	p := DefaultConfig().Params
	p.FireSpreadRate = math.NaN()
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for NaN rate")
	}
	p = DefaultConfig().Params
	p.LightningFrequency = math.Inf(1)
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for infinite rate")
	}
	p = DefaultConfig().Params
	p.TreeDeathRate = -1
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for negative rate")
	}
}

func TestValidateAllowsOverUnityProbabilities(t *testing.T) {
	// Rates above 1 are a degenerate but legal configuration: the event
	// simply always happens.
	p := DefaultConfig().Params
	p.LightningFrequency = 40
	p.TreeFlammability = 12
	if err := p.Validate(); err != nil {
		t.Fatalf("over-unity rates must validate: %v", err)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                   "120",
		"h":                   "80",
		"seed":                "-5",
		"tree_growth_rate":    "0.25",
		"tree_fire_duration":  "42",
		"lightning_frequency": "0.125",
		"tick_rate":           "30",
	})
	if c.Width != 120 || c.Height != 80 {
		t.Fatalf("dimensions not applied: %dx%d", c.Width, c.Height)
	}
	if c.Seed != -5 {
		t.Fatalf("seed not applied: %d", c.Seed)
	}
	if c.Params.TreeGrowthRate != 0.25 {
		t.Fatalf("growth rate not applied: %v", c.Params.TreeGrowthRate)
	}
	if c.Params.TreeFireDuration != 42 {
		t.Fatalf("fire duration not applied: %d", c.Params.TreeFireDuration)
	}
	if c.Params.LightningFrequency != 0.125 {
		t.Fatalf("lightning frequency not applied: %v", c.Params.LightningFrequency)
	}
	if c.Params.TickRate != 30 {
		t.Fatalf("tick rate not applied: %d", c.Params.TickRate)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	c := FromMap(map[string]string{"w": "banana", "tree_growth_rate": ""})
	d := DefaultConfig()
	if c.Width != d.Width || c.Params.TreeGrowthRate != d.Params.TreeGrowthRate {
		t.Fatal("unparseable values must keep defaults")
	}
}

func TestRealisticPerTickConversion(t *testing.T) {
	// 4047 cells = 1 acre, so the strike math is exact.
	rc := Realistic(4047, 1, 2, 36)
	p := rc.PerTick()

	if p.TickRate != 72 {
		t.Fatalf("tick rate: want 72, got %d", p.TickRate)
	}
	ticksPerYear := 24.0
	wantLightning := (1.0 / 45.0) * 1.0 / ticksPerYear
	if math.Abs(p.LightningFrequency-wantLightning) > 1e-12 {
		t.Fatalf("lightning frequency: want %v, got %v", wantLightning, p.LightningFrequency)
	}
	if math.Abs(p.TreeGrowthRate-1/(ticksPerYear*150)) > 1e-12 {
		t.Fatalf("growth rate: got %v", p.TreeGrowthRate)
	}
	if math.Abs(p.TreeDeathRate-1/(ticksPerYear*200)) > 1e-12 {
		t.Fatalf("death rate: got %v", p.TreeDeathRate)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("realistic parameters must validate: %v", err)
	}
}
