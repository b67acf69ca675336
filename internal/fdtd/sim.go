package fdtd

import (
	"fmt"
	"sync"
)

// Params holds the physical constants and grid dimensions a simulation is
// built from. Susceptibility is a placeholder scalar carried for a future
// dispersive-medium model; InitialSusceptibility enters the coefficient
// derivation.
type Params struct {
	VacuumPermittivity    float64
	InfinityPermittivity  float64
	VacuumPermeability    float64
	DeltaT                float64
	DeltaZ                float64
	NumN                  int
	NumI                  int
	Susceptibility        float64
	InitialSusceptibility float64
}

// Validate rejects dimensions and constants the update coefficients cannot
// be derived from.
func (p Params) Validate() error {
	if p.NumN < 1 || p.NumI < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidParams, p.NumN, p.NumI)
	}
	if p.VacuumPermittivity == 0 {
		return fmt.Errorf("%w: vacuum permittivity is zero", ErrInvalidParams)
	}
	if p.VacuumPermeability == 0 {
		return fmt.Errorf("%w: vacuum permeability is zero", ErrInvalidParams)
	}
	if p.DeltaZ == 0 {
		return fmt.Errorf("%w: spatial step is zero", ErrInvalidParams)
	}
	if p.InfinityPermittivity+p.InitialSusceptibility == 0 {
		return fmt.Errorf("%w: infinity permittivity plus initial susceptibility is zero", ErrInvalidParams)
	}
	return nil
}

// Coefficients are the five scalar proportionality constants of the update
// equations, derived once at construction and immutable for the lifetime
// of the simulation.
type Coefficients struct {
	C1, C2, C3, C4, CH float64
}

func (c Coefficients) String() string {
	return fmt.Sprintf("c1=%.6g c2=%.6g c3=%.6g c4=%.6g ch=%.6g", c.C1, c.C2, c.C3, c.C4, c.CH)
}

// Observer is notified after each completed time step.
type Observer interface {
	OnStep(n int)
}

// Sim owns the three fields and drives the leapfrog update loop.
type Sim struct {
	params     Params
	coeff      Coefficients
	efield     *Field
	hfield     *Field
	cfield     *Field
	dispersion Dispersion
	kernel     []float64
	observers  []Observer
	workers    int
	scratch    []float64
}

// New builds a simulation from physical parameters and a caller-prepared
// current-source field, whose dimensions must match. The electric and
// magnetic fields are allocated zero-initialized and the coefficients are
// computed exactly once.
func New(p Params, current *Field) (*Sim, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("%w: nil current field", ErrDimensionMismatch)
	}
	if current.TimeLen() != p.NumN || current.SpaceLen() != p.NumI {
		return nil, fmt.Errorf("%w: current field is %dx%d, simulation is %dx%d",
			ErrDimensionMismatch, current.TimeLen(), current.SpaceLen(), p.NumN, p.NumI)
	}

	denom := p.InfinityPermittivity + p.InitialSusceptibility
	return &Sim{
		params: p,
		coeff: Coefficients{
			C1: p.InfinityPermittivity / denom,
			C2: 1.0 / denom,
			C3: p.DeltaT / (p.VacuumPermittivity * p.DeltaZ * denom),
			C4: p.DeltaT / (p.VacuumPermittivity * denom),
			CH: p.DeltaT / (p.VacuumPermeability * p.DeltaZ),
		},
		efield:     NewField(p.NumN, p.NumI),
		hfield:     NewField(p.NumN, p.NumI),
		cfield:     current,
		dispersion: NoDispersion{},
		workers:    1,
		scratch:    make([]float64, p.NumI),
	}, nil
}

func (s *Sim) VacuumPermittivity() float64    { return s.params.VacuumPermittivity }
func (s *Sim) InfinityPermittivity() float64  { return s.params.InfinityPermittivity }
func (s *Sim) VacuumPermeability() float64    { return s.params.VacuumPermeability }
func (s *Sim) Susceptibility() float64        { return s.params.Susceptibility }
func (s *Sim) InitialSusceptibility() float64 { return s.params.InitialSusceptibility }

func (s *Sim) DeltaT() float64 { return s.params.DeltaT }
func (s *Sim) DeltaZ() float64 { return s.params.DeltaZ }

func (s *Sim) TimeLen() int  { return s.params.NumN }
func (s *Sim) SpaceLen() int { return s.params.NumI }

// Coefficients returns the derived update coefficients, for logging and
// inspection.
func (s *Sim) Coefficients() Coefficients { return s.coeff }

// EField returns the electric field.
func (s *Sim) EField() *Field { return s.efield }

// HField returns the magnetic field.
func (s *Sim) HField() *Field { return s.hfield }

// CField returns the current-source field.
func (s *Sim) CField() *Field { return s.cfield }

// SetDispersion installs a polarization model and its susceptibility
// kernel. The default is NoDispersion with a nil kernel.
func (s *Sim) SetDispersion(d Dispersion, kernel []float64) {
	s.dispersion = d
	s.kernel = kernel
}

// AddObserver registers a per-step progress hook.
func (s *Sim) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// SetWorkers splits each spatial pass across n goroutines. The two passes
// of a step still run strictly one after the other; only the loop over
// spatial indices within a single pass is divided.
func (s *Sim) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// Simulate resets all three fields' cursors to 0, then runs TimeLen-1
// steps of the leapfrog scheme: the magnetic pass reads the pre-update
// electric field, the electric pass reads the just-updated magnetic field,
// and all three fields advance in lockstep. Any field error aborts the run
// wrapped in a StepError.
func (s *Sim) Simulate() error {
	for _, f := range []*Field{s.hfield, s.efield, s.cfield} {
		if err := f.SetTimeIndex(0); err != nil {
			return err
		}
	}

	for n := 0; n < s.params.NumN-1; n++ {
		if err := s.updateH(); err != nil {
			return &StepError{Step: n, Pass: "magnetic", Wrapped: err}
		}
		if err := s.updateE(); err != nil {
			return &StepError{Step: n, Pass: "electric", Wrapped: err}
		}
		if err := s.hfield.Advance(); err != nil {
			return &StepError{Step: n, Pass: "magnetic", Wrapped: err}
		}
		if err := s.efield.Advance(); err != nil {
			return &StepError{Step: n, Pass: "electric", Wrapped: err}
		}
		if err := s.cfield.Advance(); err != nil {
			return &StepError{Step: n, Pass: "current", Wrapped: err}
		}
		for _, o := range s.observers {
			o.OnStep(n)
		}
	}
	return nil
}

// updateH computes H[i] -= ch * (E[i+1] - E[i]) over the whole row. E
// beyond the last cell reads as zero. This pass must see the pre-update
// electric field, so it runs before updateE within a step.
func (s *Sim) updateH() error {
	s.eachCell(func(i int) {
		s.scratch[i] = s.hfield.Value(i) - s.coeff.CH*(s.efield.Value(i+1)-s.efield.Value(i))
	})
	return s.hfield.SetRow(s.scratch)
}

// updateE computes
//
//	E[i] = c1*E[i] + c2*psi - c3*(H[i] - H[i-1]) - c4*J[i]
//
// over the whole row, using the magnetic values just written by updateH.
// H before the first cell reads as zero.
func (s *Sim) updateE() error {
	s.eachCell(func(i int) {
		psi := s.dispersion.Psi(s.efield, s.kernel, i)
		s.scratch[i] = s.coeff.C1*s.efield.Value(i) +
			s.coeff.C2*psi -
			s.coeff.C3*(s.hfield.Value(i)-s.hfield.Value(i-1)) -
			s.coeff.C4*s.cfield.Value(i)
	})
	return s.efield.SetRow(s.scratch)
}

// eachCell runs fn over every spatial index, splitting the row across
// workers when configured. Each cell reads only values written before the
// pass started, so the split cannot race.
func (s *Sim) eachCell(fn func(i int)) {
	numI := s.params.NumI
	if s.workers <= 1 || numI < 2*s.workers {
		for i := 0; i < numI; i++ {
			fn(i)
		}
		return
	}

	chunk := (numI + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for start := 0; start < numI; start += chunk {
		end := start + chunk
		if end > numI {
			end = numI
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
