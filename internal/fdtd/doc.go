// Package fdtd implements a one-dimensional finite-difference time-domain
// solver for coupled electric/magnetic field propagation through a
// dielectric medium driven by an external current source.
//
// The package defines two types:
//
//   - [Field]: a time-major scalar field buffer with a movable time cursor
//   - [Sim]: the leapfrog update driver owning the electric, magnetic and
//     current fields
//
// # Example
//
//	current := fdtd.NewField(numN, numI)
//	current.SetValue(numI/2, 0.5)
//	sim, _ := fdtd.New(params, current)
//	if err := sim.Simulate(); err != nil {
//	    // handle
//	}
//	grid := sim.EField().Export()
//
// # Thread Safety
//
// Sim instances are NOT thread-safe: a run assumes exclusive ownership of
// all three fields and a single caller. SetWorkers only parallelizes the
// spatial loop inside one update pass, which is safe because each cell
// reads values written before the pass started.
package fdtd
