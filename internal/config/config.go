// Package config loads and saves run configuration for the solver.
package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jroth137/rcfdtdpy/internal/fdtd"
	"github.com/jroth137/rcfdtdpy/internal/source"
)

const (
	DefaultVacuumPermittivity   = 8.854187817e-12
	DefaultVacuumPermeability   = 4 * math.Pi * 1e-7
	DefaultInfinityPermittivity = 1.0
	DefaultDeltaT               = 3e-4
	DefaultDeltaZ               = 3e4
	DefaultNumN                 = 500
	DefaultNumI                 = 250
	DefaultAmplitude            = 0.5
)

type Config struct {
	VacuumPermittivity    float64     `yaml:"vacuum_permittivity"`
	InfinityPermittivity  float64     `yaml:"infinity_permittivity"`
	VacuumPermeability    float64     `yaml:"vacuum_permeability"`
	DeltaT                float64     `yaml:"delta_t"`
	DeltaZ                float64     `yaml:"delta_z"`
	NumN                  int         `yaml:"num_n"`
	NumI                  int         `yaml:"num_i"`
	Susceptibility        float64     `yaml:"susceptibility"`
	InitialSusceptibility float64     `yaml:"initial_susceptibility"`
	Workers               int         `yaml:"workers"`
	Source                source.Spec `yaml:"source"`
}

func DefaultConfig() *Config {
	return &Config{
		VacuumPermittivity:   DefaultVacuumPermittivity,
		InfinityPermittivity: DefaultInfinityPermittivity,
		VacuumPermeability:   DefaultVacuumPermeability,
		DeltaT:               DefaultDeltaT,
		DeltaZ:               DefaultDeltaZ,
		NumN:                 DefaultNumN,
		NumI:                 DefaultNumI,
		Workers:              1,
		Source: source.Spec{
			Kind:      "impulse",
			Index:     DefaultNumI / 2,
			Amplitude: DefaultAmplitude,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the configuration onto the solver's parameter set.
func (c *Config) Params() fdtd.Params {
	return fdtd.Params{
		VacuumPermittivity:    c.VacuumPermittivity,
		InfinityPermittivity:  c.InfinityPermittivity,
		VacuumPermeability:    c.VacuumPermeability,
		DeltaT:                c.DeltaT,
		DeltaZ:                c.DeltaZ,
		NumN:                  c.NumN,
		NumI:                  c.NumI,
		Susceptibility:        c.Susceptibility,
		InitialSusceptibility: c.InitialSusceptibility,
	}
}

// Validate checks the configuration the way the solver will.
func (c *Config) Validate() error {
	return c.Params().Validate()
}
