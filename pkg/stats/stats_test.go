package stats

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStats(t *testing.T) {
	Convey("While computing mean", t, func() {
		Convey("Empty input should yield zero", func() {
			So(Mean([]float64{}), ShouldEqual, 0.0)
			So(Mean(nil), ShouldEqual, 0.0)
		})

		Convey("It should be the arithmetic mean", func() {
			So(Mean([]float64{10, 20, 30}), ShouldEqual, 20.0)
			So(Mean([]float64{1, 2, 2}), ShouldAlmostEqual, 1.6667, 0.0001)
		})
	})

	Convey("While computing standard deviation", t, func() {
		Convey("Fewer than two elements should yield zero", func() {
			So(Stdev(nil), ShouldEqual, 0.0)
			So(Stdev([]float64{42}), ShouldEqual, 0.0)
		})

		Convey("It should be the sample standard deviation", func() {
			So(Stdev([]float64{1, 2, 3}), ShouldEqual, 1.0)
			So(Stdev([]float64{10, 20, 30}), ShouldEqual, 10.0)
			So(Stdev([]float64{100, 100, 100}), ShouldEqual, 0.0)
		})
	})

	Convey("While computing quantile", t, func() {
		Convey("Empty input should yield zero", func() {
			value, err := Quantile(nil, 0.99)
			So(err, ShouldBeNil)
			So(value, ShouldEqual, 0.0)
		})

		Convey("It should be within sketch accuracy", func() {
			xs := []float64{}
			for i := 1; i <= 100; i++ {
				xs = append(xs, float64(i))
			}
			value, err := Quantile(xs, 0.99)
			So(err, ShouldBeNil)
			So(value, ShouldAlmostEqual, 99, 99*quantileAccuracy*2)
		})
	})

	Convey("Integer conversions should keep values and order", t, func() {
		So(Ints([]int{1, 0, 2}), ShouldResemble, []float64{1, 0, 2})
		So(Int64s([]int64{100, 5}), ShouldResemble, []float64{100, 5})
	})
}

func TestStatsProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("stdev of a single element is zero", prop.ForAll(
		func(x float64) bool {
			return Stdev([]float64{x}) == 0
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("mean lies between min and max", prop.ForAll(
		func(xs []float64) bool {
			if len(xs) == 0 {
				return Mean(xs) == 0
			}
			min, max := xs[0], xs[0]
			for _, x := range xs {
				min = math.Min(min, x)
				max = math.Max(max, x)
			}
			mean := Mean(xs)
			return mean >= min-1e-6 && mean <= max+1e-6
		},
		gen.SliceOf(gen.Float64Range(0, 1e6)),
	))

	properties.Property("stdev is non-negative and shift invariant", prop.ForAll(
		func(xs []float64, shift float64) bool {
			shifted := make([]float64, len(xs))
			for i, x := range xs {
				shifted[i] = x + shift
			}
			return Stdev(xs) >= 0 && math.Abs(Stdev(xs)-Stdev(shifted)) < 1e-6
		},
		gen.SliceOf(gen.Float64Range(0, 1000)),
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
