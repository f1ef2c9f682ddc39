// Package experiment runs trials of compression configurations against the engine.
//
// A trial drops and recreates the benchmarked table, loads the corpus, flushes it and measures
// the flush duration, the reactor stalls logged during the flush and the on-disk size.
// Trials run strictly one after another since they share the engine and its disk.
package experiment

import (
	"io"
	"os"
	"time"

	"github.com/intelsdi-x/comprbench/pkg/compression"
	"github.com/intelsdi-x/comprbench/pkg/corpus"
	"github.com/intelsdi-x/comprbench/pkg/engine"
	"github.com/intelsdi-x/comprbench/pkg/stalls"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"
)

// Measurement is the outcome of a single trial.
type Measurement struct {
	DurationMs float64
	SpaceBytes int64
	// Stalls are durations [ms] of reactor stalls logged during the flush, in log order.
	Stalls []int
}

// Store executes schema and data statements on the engine.
type Store interface {
	DropTable(table string) error
	CreateTable(table string, config compression.Config) error
	Insert(table string, partition, clustering int, payload string) error
}

// Flusher persists memtables of a table to disk.
type Flusher interface {
	Flush(keyspace, table string) error
}

// DataDir removes and measures the on-disk data of the benchmarked keyspace.
type DataDir interface {
	Remove(dir string) error
	Usage(dir string) (int64, error)
}

// StallLog is a cursor over the engine log.
type StallLog interface {
	MarkWindowStart() error
	DrainWindow() ([]int, error)
	Close() error
}

// Configuration of trials.
type Configuration struct {
	Keyspace   string
	Table      string
	DataDir    string
	CorpusPath string
	LogPath    string
	BlockSize  int
	Budget     int64
	Partitions int
	// Progress shows a progress bar of the load on stderr.
	Progress bool
}

// DefaultConfiguration returns Configuration from flags. Corpus and log paths are left empty.
func DefaultConfiguration() Configuration {
	return Configuration{
		Keyspace:   engine.KeyspaceFlag.Value(),
		Table:      engine.TableFlag.Value(),
		DataDir:    engine.DataDirFlag.Value(),
		BlockSize:  LoadBlockSizeFlag.Value(),
		Budget:     int64(LoadBudgetFlag.Value()),
		Partitions: LoadPartitionsFlag.Value(),
	}
}

// Validate returns error for configuration no trial can run with.
func (c Configuration) Validate() error {
	switch {
	case c.Table == "":
		return errors.New("table name must not be empty")
	case c.DataDir == "":
		return errors.New("data directory must not be empty")
	case c.BlockSize <= 0:
		return errors.Errorf("block size must be positive, got %d", c.BlockSize)
	case c.Budget < 0:
		return errors.Errorf("load budget must not be negative, got %d", c.Budget)
	case c.Partitions <= 0:
		return errors.Errorf("number of partitions must be positive, got %d", c.Partitions)
	}
	return nil
}

// Runner runs trials of a single configuration.
type Runner struct {
	config  Configuration
	store   Store
	flusher Flusher
	dataDir DataDir
	openLog func(path string) (StallLog, error)
}

// NewRunner returns Runner reading stalls from the log file at config.LogPath.
func NewRunner(config Configuration, store Store, flusher Flusher, dataDir DataDir) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		config:  config,
		store:   store,
		flusher: flusher,
		dataDir: dataDir,
		openLog: func(path string) (StallLog, error) {
			return stalls.Open(path)
		},
	}, nil
}

// Run runs repetitions trials of config. First failure aborts the run, nothing is retried.
func (r *Runner) Run(config compression.Config, repetitions int) ([]Measurement, error) {
	measurements := make([]Measurement, 0, repetitions)
	for repetition := 0; repetition < repetitions; repetition++ {
		measurement, err := r.trial(config)
		if err != nil {
			return nil, errors.Wrapf(err, "trial %d of %s failed", repetition+1, config.CQL())
		}
		logrus.Infof("Trial %d/%d: flush %.3f ms, space %d B, %d stalls",
			repetition+1, repetitions, measurement.DurationMs, measurement.SpaceBytes, len(measurement.Stalls))
		measurements = append(measurements, measurement)
	}
	return measurements, nil
}

func (r *Runner) trial(config compression.Config) (Measurement, error) {
	if err := r.reset(config); err != nil {
		return Measurement{}, err
	}

	if err := r.load(); err != nil {
		return Measurement{}, err
	}

	log, err := r.openLog(r.config.LogPath)
	if err != nil {
		return Measurement{}, err
	}
	defer log.Close()

	if err := log.MarkWindowStart(); err != nil {
		return Measurement{}, err
	}

	logrus.Debugf("Flushing %s.%s", r.config.Keyspace, r.config.Table)
	start := time.Now()
	if err := r.flusher.Flush(r.config.Keyspace, r.config.Table); err != nil {
		return Measurement{}, err
	}
	duration := time.Since(start)

	stallDurations, err := log.DrainWindow()
	if err != nil {
		return Measurement{}, err
	}

	space, err := r.dataDir.Usage(r.config.DataDir)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		DurationMs: float64(duration) / float64(time.Millisecond),
		SpaceBytes: space,
		Stalls:     stallDurations,
	}, nil
}

// reset drops the table together with the data directory and creates the table with config.
func (r *Runner) reset(config compression.Config) error {
	if err := r.store.DropTable(r.config.Table); err != nil {
		return err
	}
	if err := r.dataDir.Remove(r.config.DataDir); err != nil {
		return err
	}
	return r.store.CreateTable(r.config.Table, config)
}

// load inserts corpus blocks round-robin across partitions. Clustering key counts rows
// within a partition.
func (r *Runner) load() error {
	producer, err := corpus.Open(r.config.CorpusPath, r.config.BlockSize, r.config.Budget)
	if err != nil {
		return err
	}
	defer producer.Close()

	bar := r.startProgressBar()
	clustering := make([]int, r.config.Partitions)
	partition, rows := 0, 0
	for {
		block, err := producer.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		payload, err := corpus.Text(block)
		if err != nil {
			return err
		}
		if err := r.store.Insert(r.config.Table, partition, clustering[partition], payload); err != nil {
			return err
		}

		clustering[partition]++
		partition = (partition + 1) % r.config.Partitions
		rows++
		if bar != nil {
			bar.Add(len(block))
		}
	}
	if bar != nil {
		bar.Finish()
	}

	if producer.Loaded() < r.config.Budget {
		logrus.Warnf("Corpus %q exhausted after %d of %d bytes", r.config.CorpusPath, producer.Loaded(), r.config.Budget)
	}
	logrus.Debugf("Loaded %d bytes in %d rows", producer.Loaded(), rows)
	return nil
}

func (r *Runner) startProgressBar() *pb.ProgressBar {
	if !r.config.Progress {
		return nil
	}
	bar := pb.New64(r.config.Budget)
	bar.Output = os.Stderr
	bar.SetUnits(pb.U_BYTES)
	bar.Prefix("Inserting data ")
	bar.ShowTimeLeft = true
	return bar.Start()
}
