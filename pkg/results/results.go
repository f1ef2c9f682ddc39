// Package results aggregates sweep measurements into the persisted result document.
package results

import (
	"encoding/json"
	"io/ioutil"
	"math"
	"strconv"
	"strings"

	"github.com/intelsdi-x/comprbench/pkg/experiment"
	"github.com/intelsdi-x/comprbench/pkg/stats"
	"github.com/pkg/errors"
)

// AggregatedResult summarizes every trial of a single configuration.
type AggregatedResult struct {
	Name           string  `json:"name"`
	FlushTimeMean  float64 `json:"flush_time_mean"`
	FlushTimeStdev float64 `json:"flush_time_stdev"`
	Space          float64 `json:"space"`
	StallNumMean   float64 `json:"stall_num_mean"`
	StallNumStdev  float64 `json:"stall_num_stdev"`
	StallTimeMean  float64 `json:"stall_time_mean"`
	StallTimeStdev float64 `json:"stall_time_stdev"`
	// StallTimeP99 is approximate. It is shown in the summary only.
	StallTimeP99 float64 `json:"-"`
}

// fraction is a float which is always encoded with a fractional part, so whole values
// stay floats for any JSON reader.
type fraction float64

func (f fraction) MarshalJSON() ([]byte, error) {
	value := float64(f)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errors.Errorf("cannot encode %v", value)
	}
	encoded := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(encoded, ".") {
		encoded += ".0"
	}
	return []byte(encoded), nil
}

// MarshalJSON encodes every statistic with a fractional part.
func (r AggregatedResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name           string   `json:"name"`
		FlushTimeMean  fraction `json:"flush_time_mean"`
		FlushTimeStdev fraction `json:"flush_time_stdev"`
		Space          fraction `json:"space"`
		StallNumMean   fraction `json:"stall_num_mean"`
		StallNumStdev  fraction `json:"stall_num_stdev"`
		StallTimeMean  fraction `json:"stall_time_mean"`
		StallTimeStdev fraction `json:"stall_time_stdev"`
	}{
		Name:           r.Name,
		FlushTimeMean:  fraction(r.FlushTimeMean),
		FlushTimeStdev: fraction(r.FlushTimeStdev),
		Space:          fraction(r.Space),
		StallNumMean:   fraction(r.StallNumMean),
		StallNumStdev:  fraction(r.StallNumStdev),
		StallTimeMean:  fraction(r.StallTimeMean),
		StallTimeStdev: fraction(r.StallTimeStdev),
	})
}

// ResultSet groups results of a single chunk length.
type ResultSet struct {
	ChunkLen int                `json:"chunk_len"`
	Results  []AggregatedResult `json:"results"`
}

// Aggregate reduces measurements of a configuration. Stall time statistics are computed over
// every stall of every trial.
func Aggregate(name string, measurements []experiment.Measurement) (AggregatedResult, error) {
	durations := make([]float64, 0, len(measurements))
	spaces := make([]float64, 0, len(measurements))
	counts := make([]float64, 0, len(measurements))
	var stallTimes []float64
	for _, measurement := range measurements {
		durations = append(durations, measurement.DurationMs)
		spaces = append(spaces, float64(measurement.SpaceBytes))
		counts = append(counts, float64(len(measurement.Stalls)))
		stallTimes = append(stallTimes, stats.Ints(measurement.Stalls)...)
	}

	p99, err := stats.Quantile(stallTimes, 0.99)
	if err != nil {
		return AggregatedResult{}, errors.Wrapf(err, "cannot aggregate stalls of %q", name)
	}

	return AggregatedResult{
		Name:           name,
		FlushTimeMean:  stats.Mean(durations),
		FlushTimeStdev: stats.Stdev(durations),
		Space:          stats.Mean(spaces),
		StallNumMean:   stats.Mean(counts),
		StallNumStdev:  stats.Stdev(counts),
		StallTimeMean:  stats.Mean(stallTimes),
		StallTimeStdev: stats.Stdev(stallTimes),
		StallTimeP99:   p99,
	}, nil
}

// Build aggregates a sweep preserving the order of chunk lengths and configurations.
func Build(sweep []experiment.ChunkMeasurements) ([]ResultSet, error) {
	document := make([]ResultSet, 0, len(sweep))
	for _, chunk := range sweep {
		set := ResultSet{ChunkLen: chunk.ChunkLen, Results: make([]AggregatedResult, 0, len(chunk.Configs))}
		for _, config := range chunk.Configs {
			result, err := Aggregate(config.Name, config.Measurements)
			if err != nil {
				return nil, err
			}
			set.Results = append(set.Results, result)
		}
		document = append(document, set)
	}
	return document, nil
}

// Write stores document as JSON at path.
func Write(path string, document []ResultSet) error {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot encode results")
	}
	if err := ioutil.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "cannot write results to %q", path)
	}
	return nil
}

// Read loads document written by Write.
func Read(path string) ([]ResultSet, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read results from %q", path)
	}
	var document []ResultSet
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, errors.Wrapf(err, "cannot decode results from %q", path)
	}
	return document, nil
}
