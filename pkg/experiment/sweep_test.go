package experiment_test

import (
	"testing"

	"github.com/intelsdi-x/comprbench/pkg/compression"
	"github.com/intelsdi-x/comprbench/pkg/experiment"
	"github.com/intelsdi-x/comprbench/pkg/experiment/mocks"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

func TestSweep(t *testing.T) {
	Convey("While sweeping the configuration space", t, func() {
		catalog := compression.NewCatalog(compression.DefaultClassPrefix, []int{3})
		runner := new(mocks.TrialRunner)
		measurement := experiment.Measurement{DurationMs: 10, SpaceBytes: 100, Stalls: []int{1}}

		Convey("Zero repetitions should be rejected", func() {
			_, err := experiment.NewSweep(catalog, runner, 0)
			So(err, ShouldNotBeNil)
		})

		sweep, err := experiment.NewSweep(catalog, runner, 2)
		So(err, ShouldBeNil)

		Convey("Every configuration should be run for every chunk length in given order", func() {
			runner.On("Run", mock.AnythingOfType("compression.Config"), 2).
				Return([]experiment.Measurement{measurement, measurement}, nil)

			result, err := sweep.Run([]int{16, 4})
			So(err, ShouldBeNil)
			So(result, ShouldHaveLength, 2)
			So(result[0].ChunkLen, ShouldEqual, 16)
			So(result[1].ChunkLen, ShouldEqual, 4)

			var names []string
			for _, config := range result[0].Configs {
				names = append(names, config.Name)
				So(config.Measurements, ShouldHaveLength, 2)
			}
			So(names, ShouldResemble, []string{"None", "LZ4", "Snappy", "Deflate", "Zstd 3"})
			runner.AssertNumberOfCalls(t, "Run", 10)
		})

		Convey("Empty chunk list should produce empty sweep", func() {
			result, err := sweep.Run(nil)
			So(err, ShouldBeNil)
			So(result, ShouldBeEmpty)
			runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		})

		Convey("Non-positive chunk length should be rejected before running anything", func() {
			_, err := sweep.Run([]int{4, 0})
			So(err, ShouldNotBeNil)
			runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		})

		Convey("First failure should abort the sweep", func() {
			runner.On("Run", mock.AnythingOfType("compression.Config"), 2).Return(nil, errors.New("flush failed")).Once()

			result, err := sweep.Run([]int{4, 16})
			So(err, ShouldNotBeNil)
			So(result, ShouldBeNil)
			runner.AssertNumberOfCalls(t, "Run", 1)
		})
	})
}
