package results

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"math"
	"os"
	"path"
	"testing"

	"github.com/intelsdi-x/comprbench/pkg/experiment"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAggregate(t *testing.T) {
	Convey("While aggregating three trials of None", t, func() {
		measurements := []experiment.Measurement{
			{DurationMs: 10, SpaceBytes: 100, Stalls: []int{1}},
			{DurationMs: 20, SpaceBytes: 100, Stalls: []int{}},
			{DurationMs: 30, SpaceBytes: 100, Stalls: []int{2, 2}},
		}

		result, err := Aggregate("None", measurements)
		So(err, ShouldBeNil)

		Convey("Flush time and space should be averaged over trials", func() {
			So(result.Name, ShouldEqual, "None")
			So(result.FlushTimeMean, ShouldEqual, 20.0)
			So(result.FlushTimeStdev, ShouldAlmostEqual, 10.0, 1e-9)
			So(result.Space, ShouldEqual, 100.0)
		})

		Convey("Stall counts should be averaged over trials", func() {
			So(result.StallNumMean, ShouldEqual, 1.0)
			So(result.StallNumStdev, ShouldAlmostEqual, 1.0, 1e-9)
		})

		Convey("Stall times should be pooled across trials", func() {
			So(result.StallTimeMean, ShouldAlmostEqual, 5.0/3.0, 1e-9)
			So(result.StallTimeStdev, ShouldAlmostEqual, 0.57735, 1e-4)
			So(result.StallTimeP99, ShouldAlmostEqual, 2.0, 0.05)
		})
	})

	Convey("Aggregating no trials should give zeros", t, func() {
		result, err := Aggregate("LZ4", nil)
		So(err, ShouldBeNil)
		So(result, ShouldResemble, AggregatedResult{Name: "LZ4"})
	})
}

func TestBuild(t *testing.T) {
	Convey("Build should keep order of chunk lengths and configurations", t, func() {
		measurement := experiment.Measurement{DurationMs: 1, SpaceBytes: 2}
		sweep := []experiment.ChunkMeasurements{
			{ChunkLen: 64, Configs: []experiment.ConfigMeasurements{
				{Name: "None", Measurements: []experiment.Measurement{measurement}},
				{Name: "Zstd 1", Measurements: []experiment.Measurement{measurement}},
			}},
			{ChunkLen: 4, Configs: []experiment.ConfigMeasurements{
				{Name: "None", Measurements: []experiment.Measurement{measurement}},
			}},
		}

		document, err := Build(sweep)
		So(err, ShouldBeNil)
		So(document, ShouldHaveLength, 2)
		So(document[0].ChunkLen, ShouldEqual, 64)
		So(document[0].Results, ShouldHaveLength, 2)
		So(document[0].Results[1].Name, ShouldEqual, "Zstd 1")
		So(document[1].ChunkLen, ShouldEqual, 4)
	})
}

func TestWriteRead(t *testing.T) {
	Convey("While persisting results", t, func() {
		dir, err := ioutil.TempDir("", "results")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)
		output := path.Join(dir, "results.json")

		document := []ResultSet{{
			ChunkLen: 16,
			Results: []AggregatedResult{{
				Name:           "Zstd 5",
				FlushTimeMean:  153.25,
				FlushTimeStdev: 3.5,
				Space:          1048576,
				StallNumMean:   0.5,
				StallNumStdev:  0.7071,
				StallTimeMean:  12.5,
				StallTimeStdev: 2.1,
			}},
		}}
		So(Write(output, document), ShouldBeNil)

		Convey("Reading should give back the same document", func() {
			read, err := Read(output)
			So(err, ShouldBeNil)
			So(read, ShouldResemble, document)
		})

		Convey("Keys should follow the result format", func() {
			data, err := ioutil.ReadFile(output)
			So(err, ShouldBeNil)
			for _, key := range []string{
				"chunk_len", "results", "name", "flush_time_mean", "flush_time_stdev", "space",
				"stall_num_mean", "stall_num_stdev", "stall_time_mean", "stall_time_stdev",
			} {
				So(string(data), ShouldContainSubstring, "\""+key+"\"")
			}
			So(string(data), ShouldNotContainSubstring, "p99")
			So(string(data), ShouldContainSubstring, "\"chunk_len\": 16,")
		})

		Convey("Whole statistics should be written as floats", func() {
			whole := []ResultSet{{ChunkLen: 4, Results: []AggregatedResult{{
				Name: "None", FlushTimeMean: 20, FlushTimeStdev: 10, Space: 100, StallNumMean: 1,
			}}}}
			So(Write(output, whole), ShouldBeNil)

			data, err := ioutil.ReadFile(output)
			So(err, ShouldBeNil)
			var raw []struct {
				ChunkLen json.RawMessage              `json:"chunk_len"`
				Results  []map[string]json.RawMessage `json:"results"`
			}
			So(json.Unmarshal(data, &raw), ShouldBeNil)
			So(string(raw[0].ChunkLen), ShouldEqual, "4")
			result := raw[0].Results[0]
			So(string(result["flush_time_mean"]), ShouldEqual, "20.0")
			So(string(result["flush_time_stdev"]), ShouldEqual, "10.0")
			So(string(result["space"]), ShouldEqual, "100.0")
			So(string(result["stall_num_mean"]), ShouldEqual, "1.0")
			So(string(result["stall_time_mean"]), ShouldEqual, "0.0")

			read, err := Read(output)
			So(err, ShouldBeNil)
			So(read, ShouldResemble, whole)
		})

		Convey("Values which are not numbers should not be written", func() {
			broken := []ResultSet{{ChunkLen: 4, Results: []AggregatedResult{{Name: "None", FlushTimeMean: math.NaN()}}}}
			So(Write(output, broken), ShouldNotBeNil)
		})

		Convey("Reading a missing file should fail", func() {
			_, err := Read(path.Join(dir, "missing.json"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDrawSummary(t *testing.T) {
	Convey("Summary should have a row per configuration", t, func() {
		document := []ResultSet{{
			ChunkLen: 4,
			Results: []AggregatedResult{
				{Name: "None", FlushTimeMean: 20, Space: 100},
				{Name: "Snappy", FlushTimeMean: 12.3456, Space: 3 * 1024 * 1024, StallTimeP99: 2},
			},
		}}

		var buffer bytes.Buffer
		DrawSummary(&buffer, document)
		So(buffer.String(), ShouldContainSubstring, "Snappy")
		So(buffer.String(), ShouldContainSubstring, "20.000")
		So(buffer.String(), ShouldContainSubstring, "12.346")
		So(buffer.String(), ShouldContainSubstring, "100B")
		So(buffer.String(), ShouldContainSubstring, "3M")
	})
}
