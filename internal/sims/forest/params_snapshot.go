package forest

import (
	"strconv"

	"firesim/internal/core"
)

// Parameters reports the current tunables for the HUD and control surfaces.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				floatParam("initial_tree_density", "Initial tree density", w.cfg.InitialTreeDensity),
			},
		},
		{
			Name: "Trees",
			Params: []core.Parameter{
				floatParam("tree_growth_rate", "Tree growth rate", params.TreeGrowthRate),
				floatParam("tree_death_rate", "Tree death rate", params.TreeDeathRate),
				floatParam("underbrush_tree_growth_hindrance", "Underbrush growth hindrance", params.UnderbrushTreeGrowthHindrance),
				floatParam("tree_underbrush_generation", "Underbrush generation", params.TreeUnderbrushGeneration),
				floatParam("tree_death_underbrush", "Underbrush from tree death", params.TreeDeathUnderbrush),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				uint32Param("tree_fire_duration", "Tree fire duration", params.TreeFireDuration),
				uint32Param("underbrush_fire_duration", "Underbrush fire duration", params.UnderbrushFireDuration),
				floatParam("fire_spread_rate", "Fire spread rate", params.FireSpreadRate),
				floatParam("tree_flammability", "Tree flammability", params.TreeFlammability),
				floatParam("underbrush_flammability", "Underbrush flammability", params.UnderbrushFlammability),
				floatParam("lightning_frequency", "Lightning frequency", params.LightningFrequency),
			},
		},
		{
			Name: "Pacing",
			Params: []core.Parameter{
				intParam("tick_rate", "Ticks per second", params.TickRate),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tree_growth_rate", Label: "Tree growth rate", Type: core.ParamTypeFloat, Step: 0.0005, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "tree_death_rate", Label: "Tree death rate", Type: core.ParamTypeFloat, Step: 0.0005, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "underbrush_tree_growth_hindrance", Label: "Growth hindrance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
		{Key: "tree_underbrush_generation", Label: "Underbrush generation", Type: core.ParamTypeFloat, Step: 0.0001, Min: 0, HasMin: true},
		{Key: "tree_death_underbrush", Label: "Death underbrush", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, HasMin: true},
		{Key: "tree_fire_duration", Label: "Tree fire duration", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "underbrush_fire_duration", Label: "Underbrush fire duration", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "fire_spread_rate", Label: "Fire spread rate", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "tree_flammability", Label: "Tree flammability", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
		{Key: "underbrush_flammability", Label: "Underbrush flammability", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
		{Key: "lightning_frequency", Label: "Lightning frequency", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, HasMin: true},
		{Key: "tick_rate", Label: "Ticks per second", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true, Max: 960, HasMax: true},
	}
}

// SetFloatParameter updates a single float tunable, clamping into its valid
// range. Returns false for unknown keys.
func (w *World) SetFloatParameter(key string, value float64) bool {
	clamped := value
	if clamped < 0 {
		clamped = 0
	}
	p := &w.cfg.Params
	switch key {
	case "tree_growth_rate":
		p.TreeGrowthRate = clampMax(clamped, 1)
	case "tree_death_rate":
		p.TreeDeathRate = clampMax(clamped, 1)
	case "underbrush_tree_growth_hindrance":
		p.UnderbrushTreeGrowthHindrance = clamped
	case "tree_underbrush_generation":
		p.TreeUnderbrushGeneration = clamped
	case "tree_death_underbrush":
		p.TreeDeathUnderbrush = clamped
	case "fire_spread_rate":
		p.FireSpreadRate = clampMax(clamped, 1)
	case "tree_flammability":
		p.TreeFlammability = clamped
	case "underbrush_flammability":
		p.UnderbrushFlammability = clamped
	case "lightning_frequency":
		p.LightningFrequency = clamped
	default:
		return false
	}
	return true
}

// SetIntParameter updates a single integer tunable. Returns false for
// unknown keys.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	p := &w.cfg.Params
	switch key {
	case "tree_fire_duration":
		p.TreeFireDuration = uint32(value)
	case "underbrush_fire_duration":
		p.UnderbrushFireDuration = uint32(value)
	case "tick_rate":
		p.TickRate = value
	default:
		return false
	}
	return true
}

func clampMax(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uint32Param(key, label string, value uint32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(uint64(value), 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
