package fdtd

// Dispersion computes the polarization term psi for the electric field
// update at spatial index i: conceptually the convolution of the field's
// time history with a susceptibility kernel,
//
//	psi = sum over m of E[i, n-m] * kernel[m]
//
// The electric field carries its own history; its cursor marks the row
// being updated.
type Dispersion interface {
	Psi(e *Field, kernel []float64, i int) float64
}

// DispersionFunc adapts a plain function to the Dispersion interface.
type DispersionFunc func(e *Field, kernel []float64, i int) float64

func (fn DispersionFunc) Psi(e *Field, kernel []float64, i int) float64 {
	return fn(e, kernel, i)
}

// NoDispersion is the reference behavior: the medium has no dispersive
// response and psi is identically zero. A real susceptibility convolution
// can be substituted via Sim.SetDispersion without touching the update
// loop.
type NoDispersion struct{}

func (NoDispersion) Psi(*Field, []float64, int) float64 { return 0 }
