package experiment

import (
	"github.com/intelsdi-x/comprbench/pkg/compression"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TrialRunner runs repetitions trials of a single configuration.
type TrialRunner interface {
	Run(config compression.Config, repetitions int) ([]Measurement, error)
}

// ConfigMeasurements are measurements of every trial of a named configuration.
type ConfigMeasurements struct {
	Name         string
	Measurements []Measurement
}

// ChunkMeasurements are measurements of every configuration swept for a chunk length.
type ChunkMeasurements struct {
	ChunkLen int
	Configs  []ConfigMeasurements
}

// Sweep runs every catalog configuration for every chunk length.
type Sweep struct {
	catalog     compression.Catalog
	runner      TrialRunner
	repetitions int
}

// NewSweep returns Sweep running repetitions trials of each configuration.
func NewSweep(catalog compression.Catalog, runner TrialRunner, repetitions int) (Sweep, error) {
	if repetitions < 1 {
		return Sweep{}, errors.Errorf("number of repetitions must be positive, got %d", repetitions)
	}
	return Sweep{catalog: catalog, runner: runner, repetitions: repetitions}, nil
}

// Run sweeps chunkSizes in given order. Results are returned only when every trial succeeded.
func (s Sweep) Run(chunkSizes []int) ([]ChunkMeasurements, error) {
	for _, chunkSize := range chunkSizes {
		if chunkSize <= 0 {
			return nil, errors.Errorf("chunk size must be positive, got %d", chunkSize)
		}
	}

	space := s.catalog.Generate(chunkSizes)
	sweep := make([]ChunkMeasurements, 0, len(space))
	for _, chunk := range space {
		chunkMeasurements := ChunkMeasurements{
			ChunkLen: chunk.ChunkLen,
			Configs:  make([]ConfigMeasurements, 0, len(chunk.Configs)),
		}
		for _, named := range chunk.Configs {
			logrus.Infof("Chunk %d KB: running %q", chunk.ChunkLen, named.Name)
			measurements, err := s.runner.Run(named.Config, s.repetitions)
			if err != nil {
				return nil, errors.Wrapf(err, "configuration %q with chunk %d KB failed", named.Name, chunk.ChunkLen)
			}
			chunkMeasurements.Configs = append(chunkMeasurements.Configs, ConfigMeasurements{
				Name:         named.Name,
				Measurements: measurements,
			})
		}
		sweep = append(sweep, chunkMeasurements)
	}
	return sweep, nil
}
