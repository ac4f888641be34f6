package regulation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kmsahu/genesim/internal/grn"
	"github.com/kmsahu/genesim/internal/regulation"
)

var _ = Describe("HillActivator", func() {
	const (
		beta = 5.0
		k    = 5.0
		n    = 2.0
	)

	It("stays within [0, beta) for positive input", func() {
		act, err := regulation.NewHillActivator(beta, k, n)
		Expect(err).NotTo(HaveOccurred())

		for _, x := range []float64{0.01, 0.5, 5, 50, 5000} {
			rate := act.Rate([]float64{x})
			Expect(rate).To(BeNumerically(">=", 0))
			Expect(rate).To(BeNumerically("<", beta))
		}
	})

	It("is strictly increasing in the regulator", func() {
		act, err := regulation.NewHillActivator(beta, k, n)
		Expect(err).NotTo(HaveOccurred())

		prev := act.Rate([]float64{0.1})
		for _, x := range []float64{0.5, 1, 2, 5, 10, 30} {
			rate := act.Rate([]float64{x})
			Expect(rate).To(BeNumerically(">", prev))
			prev = rate
		}
	})

	It("is half-maximal at X = K", func() {
		act, err := regulation.NewHillActivator(beta, k, n)
		Expect(err).NotTo(HaveOccurred())
		Expect(act.Rate([]float64{k})).To(BeNumerically("~", beta/2, 1e-12))
	})

	It("returns zero at zero input", func() {
		act, err := regulation.NewHillActivator(beta, k, n)
		Expect(err).NotTo(HaveOccurred())
		Expect(act.Rate([]float64{0})).To(BeZero())
	})

	It("rejects invalid parameters", func() {
		_, err := regulation.NewHillActivator(beta, 0, n)
		Expect(err).To(MatchError(grn.ErrInvalidParameter))

		_, err = regulation.NewHillActivator(-1, k, n)
		Expect(err).To(MatchError(grn.ErrInvalidParameter))

		_, err = regulation.NewHillActivator(beta, k, 0.5)
		Expect(err).To(MatchError(grn.ErrInvalidParameter))
	})
})

var _ = Describe("HillRepressor", func() {
	const (
		beta = 5.0
		k    = 5.0
		n    = 2.0
	)

	It("is half-maximal at X = K", func() {
		rep, err := regulation.NewHillRepressor(beta, k, n)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Rate([]float64{k})).To(BeNumerically("~", beta/2, 1e-12))
	})

	It("decreases monotonically from beta", func() {
		rep, err := regulation.NewHillRepressor(beta, k, n)
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Rate([]float64{0})).To(Equal(beta))
		prev := rep.Rate([]float64{0.1})
		for _, x := range []float64{0.5, 1, 2, 5, 10, 30} {
			rate := rep.Rate([]float64{x})
			Expect(rate).To(BeNumerically("<", prev))
			prev = rate
		}
	})

	It("complements the activator: rates sum to beta at every input", func() {
		// beta/(1+(X/K)^n) = beta*K^n/(K^n+X^n), so the repressor is the
		// activator's exact complement.
		act, err := regulation.NewHillActivator(beta, k, n)
		Expect(err).NotTo(HaveOccurred())
		rep, err := regulation.NewHillRepressor(beta, k, n)
		Expect(err).NotTo(HaveOccurred())

		for _, x := range []float64{0.5, 1, 2, 7, 20} {
			in := []float64{x}
			sum := act.Rate(in) + rep.Rate(in)
			Expect(sum).To(BeNumerically("~", beta, 1e-12))
		}
	})
})

var _ = Describe("Logic rules", func() {
	const (
		beta = 3.0
		k    = 1.0
	)

	It("activator is binary and agrees with the sign of X-K", func() {
		act, err := regulation.NewLogicActivator(beta, k)
		Expect(err).NotTo(HaveOccurred())

		Expect(act.Rate([]float64{1.5})).To(Equal(beta))
		Expect(act.Rate([]float64{0.5})).To(BeZero())
		Expect(act.Rate([]float64{k})).To(BeZero())
	})

	It("repressor is binary and agrees with the sign of K-X", func() {
		rep, err := regulation.NewLogicRepressor(beta, k)
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Rate([]float64{0.5})).To(Equal(beta))
		Expect(rep.Rate([]float64{1.5})).To(BeZero())
		Expect(rep.Rate([]float64{k})).To(BeZero())
	})
})

var _ = Describe("Gates", func() {
	const (
		beta = 2.0
		kx   = 1.0
		ky   = 1.0
	)

	DescribeTable("AND gate truth table",
		func(x, y, want float64) {
			gate, err := regulation.NewANDGate(beta, kx, ky)
			Expect(err).NotTo(HaveOccurred())
			Expect(gate.Rate([]float64{x, y})).To(Equal(want))
		},
		Entry("both above", 2.0, 2.0, beta),
		Entry("only x above", 2.0, 0.5, 0.0),
		Entry("only y above", 0.5, 2.0, 0.0),
		Entry("neither above", 0.5, 0.5, 0.0),
	)

	DescribeTable("OR gate truth table",
		func(x, y, want float64) {
			gate, err := regulation.NewORGate(beta, kx, ky)
			Expect(err).NotTo(HaveOccurred())
			Expect(gate.Rate([]float64{x, y})).To(Equal(want))
		},
		Entry("both above", 2.0, 2.0, beta),
		Entry("only x above", 2.0, 0.5, beta),
		Entry("only y above", 0.5, 2.0, beta),
		Entry("neither above", 0.5, 0.5, 0.0),
	)

	It("SUM gate adds gated contributions independently", func() {
		gate, err := regulation.NewSUMGate(2.0, kx, 3.0, ky)
		Expect(err).NotTo(HaveOccurred())

		Expect(gate.Rate([]float64{2, 2})).To(Equal(5.0))
		Expect(gate.Rate([]float64{2, 0.5})).To(Equal(2.0))
		Expect(gate.Rate([]float64{0.5, 2})).To(Equal(3.0))
		Expect(gate.Rate([]float64{0.5, 0.5})).To(BeZero())
	})
})

var _ = Describe("PhaseRule", func() {
	const (
		beta1 = 1.0
		beta2 = 0.1
		kx    = 0.5
		ky    = 5.0
	)

	var rule *regulation.PhaseRule

	BeforeEach(func() {
		var err error
		rule, err = regulation.NewPhaseRule(beta1, beta2, kx, ky)
		Expect(err).NotTo(HaveOccurred())
	})

	It("produces at full rate while the repressor is low", func() {
		Expect(rule.Rate([]float64{1, 0})).To(Equal(beta1))
		Expect(rule.Rate([]float64{1, 4.9})).To(Equal(beta1))
	})

	It("drops to the leaky rate once the repressor accumulates", func() {
		Expect(rule.Rate([]float64{1, 6})).To(Equal(beta2))
	})

	It("engages repression non-strictly at the boundary", func() {
		Expect(rule.Rate([]float64{1, ky})).To(Equal(beta2))
	})

	It("is silent without the activator", func() {
		Expect(rule.Rate([]float64{0, 0})).To(BeZero())
		Expect(rule.Rate([]float64{kx, 10})).To(BeZero())
	})
})
