package fdtd_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jroth137/rcfdtdpy/internal/fdtd"
)

func unitParams(numN, numI int) fdtd.Params {
	return fdtd.Params{
		VacuumPermittivity:   1.0,
		InfinityPermittivity: 1.0,
		VacuumPermeability:   1.0,
		DeltaT:               0.1,
		DeltaZ:               1.0,
		NumN:                 numN,
		NumI:                 numI,
	}
}

var _ = Describe("Field", func() {
	It("reads zero outside the spatial range without error", func() {
		f := fdtd.NewField(2, 5)
		Expect(f.SetValue(0, 3.0)).To(Succeed())
		Expect(f.Value(-1)).To(BeZero())
		Expect(f.Value(5)).To(BeZero())
		Expect(f.Value(0)).To(Equal(3.0))
	})

	It("rejects a replacement row of the wrong length", func() {
		f := fdtd.NewField(2, 5)
		err := f.SetRow(make([]float64, 6))
		Expect(err).To(MatchError(fdtd.ErrLengthMismatch))
	})

	It("copies the active row forward on advance", func() {
		f := fdtd.NewField(3, 4)
		Expect(f.SetRow([]float64{1, 2, 3, 4})).To(Succeed())
		Expect(f.Advance()).To(Succeed())
		Expect(f.TimeIndex()).To(Equal(1))
		Expect(f.Row()).To(Equal([]float64{1, 2, 3, 4}))
	})

	It("refuses to advance past the final row", func() {
		f := fdtd.NewField(2, 2)
		Expect(f.Advance()).To(Succeed())
		Expect(f.Advance()).To(MatchError(fdtd.ErrTimeExhausted))
		Expect(f.TimeIndex()).To(Equal(1))
	})
})

var _ = Describe("Leapfrog scheme", func() {
	It("keeps an undriven simulation at the zero fixpoint", func() {
		sim, err := fdtd.New(unitParams(5, 10), fdtd.NewField(5, 10))
		Expect(err).NotTo(HaveOccurred())
		Expect(sim.Simulate()).To(Succeed())

		for _, row := range sim.EField().Export() {
			Expect(row).To(HaveEach(0.0))
		}
		for _, row := range sim.HField().Export() {
			Expect(row).To(HaveEach(0.0))
		}
	})

	It("updates the magnetic field from the pre-update electric field", func() {
		// With E starting at zero, the first magnetic pass must be a
		// no-op even though the electric pass that follows it in the
		// same step produces a nonzero E. A swapped ordering would
		// leave a nonzero H in the first time row.
		current := fdtd.NewField(2, 7)
		Expect(current.SetValue(3, 1.0)).To(Succeed())

		sim, err := fdtd.New(unitParams(2, 7), current)
		Expect(err).NotTo(HaveOccurred())
		Expect(sim.Simulate()).To(Succeed())

		Expect(sim.HField().Export()[0]).To(HaveEach(0.0))
		Expect(sim.EField().Export()[0][3]).NotTo(BeZero())
	})

	It("advances all three fields in lockstep", func() {
		sim, err := fdtd.New(unitParams(6, 4), fdtd.NewField(6, 4))
		Expect(err).NotTo(HaveOccurred())
		Expect(sim.Simulate()).To(Succeed())

		Expect(sim.EField().TimeIndex()).To(Equal(5))
		Expect(sim.HField().TimeIndex()).To(Equal(5))
		Expect(sim.CField().TimeIndex()).To(Equal(5))
	})

	It("confines a point drive to the causality cone", func() {
		current := fdtd.NewField(6, 11)
		Expect(current.SetValue(5, 1.0)).To(Succeed())

		sim, err := fdtd.New(unitParams(6, 11), current)
		Expect(err).NotTo(HaveOccurred())
		Expect(sim.Simulate()).To(Succeed())

		grid := sim.EField().Export()
		for n, row := range grid {
			for i, v := range row {
				dist := i - 5
				if dist < 0 {
					dist = -dist
				}
				if dist > n {
					Expect(v).To(BeZero(), "E[%d][%d] leaked outside the cone", n, i)
				}
			}
		}
	})

	It("substitutes a dispersion model without changing the loop", func() {
		sim, err := fdtd.New(unitParams(2, 4), fdtd.NewField(2, 4))
		Expect(err).NotTo(HaveOccurred())

		sim.SetDispersion(fdtd.DispersionFunc(func(e *fdtd.Field, kernel []float64, i int) float64 {
			return kernel[0]
		}), []float64{3.0})
		Expect(sim.Simulate()).To(Succeed())

		want := sim.Coefficients().C2 * 3.0
		Expect(sim.EField().Export()[0]).To(HaveEach(want))
	})
})
