package packing_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bottle/internal/packing"
)

const tol = 1e-9

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

var bottle = packing.Request{
	Count:        17,
	Container:    packing.Size{Width: 290, Height: 345},
	CornerRadius: 85,
	CircleRadius: 20,
}

func expectValidLayout(req packing.Request, pts []packing.Point) {
	region, ok := req.Region()
	Expect(ok).To(BeTrue())
	Expect(len(pts)).To(BeNumerically("<=", req.Count))
	for i, p := range pts {
		Expect(region.InBounds(p)).To(BeTrue(), "point %d out of bounds: %v", i, p)
		Expect(region.InCorners(p)).To(BeTrue(), "point %d outside rounded corner: %v", i, p)
		for j := i + 1; j < len(pts); j++ {
			Expect(p.DistanceFrom(pts[j])).To(BeNumerically(">=", req.Spacing()-tol),
				"points %d and %d overlap", i, j)
		}
	}
}

var _ = Describe("Packer", func() {
	Describe("Pack", func() {
		DescribeTable("returns nothing for zero circles",
			func(w, h, corner, radius float64) {
				pts := packing.Pack(0, packing.Size{Width: w, Height: h}, corner, radius, packing.NewSource(1))
				Expect(pts).To(BeEmpty())
			},
			Entry("bottle", 290.0, 345.0, 85.0, 20.0),
			Entry("tiny", 50.0, 50.0, 10.0, 20.0),
			Entry("square corners", 400.0, 400.0, 0.0, 5.0),
		)

		DescribeTable("returns nothing for undefined input",
			func(count int, w, h, radius float64) {
				pts := packing.Pack(count, packing.Size{Width: w, Height: h}, 20, radius, packing.NewSource(1))
				Expect(pts).To(BeEmpty())
			},
			Entry("negative count", -3, 290.0, 345.0, 20.0),
			Entry("zero radius", 5, 290.0, 345.0, 0.0),
			Entry("negative radius", 5, 290.0, 345.0, -4.0),
			Entry("zero width", 5, 0.0, 345.0, 20.0),
			Entry("negative height", 5, 290.0, -1.0, 20.0),
			Entry("NaN radius", 5, 290.0, 345.0, math.NaN()),
		)

		It("places all 17 circles in the bottle", func() {
			for seed := int64(1); seed <= 5; seed++ {
				pts := packing.NewHybrid(packing.NewSource(seed)).Pack(bottle)
				Expect(pts).To(HaveLen(17))
				expectValidLayout(bottle, pts)
			}
		})

		It("terminates with many small circles", func() {
			req := bottle
			req.Count = 200
			req.CircleRadius = 5
			pts := packing.NewHybrid(packing.NewSource(7)).Pack(req)
			expectValidLayout(req, pts)
		})

		It("drops circles that do not fit", func() {
			pts := packing.Pack(5, packing.Size{Width: 50, Height: 50}, 10, 20, packing.NewSource(3))
			Expect(len(pts)).To(BeNumerically("<", 5))
		})

		It("drops circles once the container is full", func() {
			req := packing.Request{
				Count:        40,
				Container:    packing.Size{Width: 150, Height: 150},
				CornerRadius: 40,
				CircleRadius: 15,
			}
			l := packing.NewHybrid(packing.NewSource(11)).Layout(req)
			Expect(l.Placed()).To(BeNumerically("<", 40))
			Expect(l.Dropped).To(HaveLen(l.Shortfall()))
			expectValidLayout(req, l.Points)
		})

		It("places a single circle", func() {
			req := bottle
			req.Count = 1
			pts := packing.NewHybrid(packing.NewSource(99)).Pack(req)
			Expect(pts).To(HaveLen(1))
			expectValidLayout(req, pts)
		})
	})

	Describe("strategies", func() {
		It("accepts the first random candidate when it is legal", func() {
			req := bottle
			req.Count = 1
			l := packing.NewHybrid(constSource(0.5)).Layout(req)
			Expect(l.Phases).To(Equal([]string{"random"}))
			Expect(l.Points[0].X).To(BeNumerically("~", 145, tol))
			Expect(l.Points[0].Y).To(BeNumerically("~", 172.5, tol))
		})

		It("falls back to the grid when random search fails", func() {
			req := bottle
			req.Count = 2
			// Every candidate lands on the cut-off bounds corner.
			l := packing.NewHybrid(constSource(0)).Layout(req)
			Expect(l.Phases).To(Equal([]string{"grid", "grid"}))
			Expect(l.Points[0].X).To(BeNumerically("~", 123, tol))
			Expect(l.Points[0].Y).To(BeNumerically("~", 167, tol))
			Expect(l.Points[1].X).To(BeNumerically("~", 79, tol))
			Expect(l.Points[1].Y).To(BeNumerically("~", 123, tol))
		})

		It("is deterministic on the grid path", func() {
			region, ok := bottle.Region()
			Expect(ok).To(BeTrue())
			placed := []packing.Point{{X: 123, Y: 167}, {X: 79, Y: 123}}

			a, okA := packing.SpiralGrid{}.Place(region, placed)
			b, okB := packing.SpiralGrid{}.Place(region, placed)
			Expect(okA).To(BeTrue())
			Expect(okB).To(BeTrue())
			Expect(a).To(Equal(b))

			grid := packing.New(packing.SpiralGrid{})
			Expect(grid.Pack(bottle)).To(Equal(grid.Pack(bottle)))
		})

		It("uses the grid alone when no source is given", func() {
			pts := packing.Pack(17, bottle.Container, bottle.CornerRadius, bottle.CircleRadius, nil)
			Expect(pts).To(HaveLen(17))
			expectValidLayout(bottle, pts)
		})

		It("reproduces a layout from the same seed", func() {
			a := packing.NewHybrid(packing.NewSource(5)).Pack(bottle)
			b := packing.NewHybrid(packing.NewSource(5)).Pack(bottle)
			Expect(a).To(Equal(b))
		})
	})

	Describe("PackExact", func() {
		It("succeeds when everything fits", func() {
			pts, err := packing.NewHybrid(packing.NewSource(1)).PackExact(bottle)
			Expect(err).NotTo(HaveOccurred())
			Expect(pts).To(HaveLen(17))
		})

		It("reports the shortfall", func() {
			req := packing.Request{Count: 5, Container: packing.Size{Width: 50, Height: 50}, CornerRadius: 10, CircleRadius: 20}
			pts, err := packing.NewHybrid(packing.NewSource(1)).PackExact(req)
			Expect(err).To(MatchError(packing.ErrCapacity))

			var capErr *packing.CapacityError
			Expect(errors.As(err, &capErr)).To(BeTrue())
			Expect(capErr.Requested).To(Equal(5))
			Expect(capErr.Placed).To(Equal(len(pts)))
		})
	})
})
