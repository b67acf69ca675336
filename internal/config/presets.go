package config

import (
	"sort"

	"github.com/jroth137/rcfdtdpy/internal/source"
)

var presets = map[string]*Config{
	"vacuum": {
		VacuumPermittivity:   DefaultVacuumPermittivity,
		InfinityPermittivity: DefaultInfinityPermittivity,
		VacuumPermeability:   DefaultVacuumPermeability,
		DeltaT:               DefaultDeltaT,
		DeltaZ:               DefaultDeltaZ,
		NumN:                 200, NumI: 100,
		Workers: 1,
		Source:  source.Spec{Kind: "impulse", Index: 50, Amplitude: 0},
	},
	"impulse": {
		VacuumPermittivity:   DefaultVacuumPermittivity,
		InfinityPermittivity: DefaultInfinityPermittivity,
		VacuumPermeability:   DefaultVacuumPermeability,
		DeltaT:               DefaultDeltaT,
		DeltaZ:               DefaultDeltaZ,
		NumN:                 DefaultNumN, NumI: DefaultNumI,
		Workers: 1,
		Source:  source.Spec{Kind: "impulse", Index: DefaultNumI / 2, Amplitude: DefaultAmplitude},
	},
	"pulse": {
		VacuumPermittivity:   DefaultVacuumPermittivity,
		InfinityPermittivity: DefaultInfinityPermittivity,
		VacuumPermeability:   DefaultVacuumPermeability,
		DeltaT:               DefaultDeltaT,
		DeltaZ:               DefaultDeltaZ,
		NumN:                 DefaultNumN, NumI: DefaultNumI,
		Workers: 1,
		Source:  source.Spec{Kind: "gaussian", Index: DefaultNumI / 2, Amplitude: DefaultAmplitude, Width: 8},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
