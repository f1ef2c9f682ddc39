// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/intelsdi-x/comprbench/pkg/compression"
	"github.com/intelsdi-x/comprbench/pkg/conf"
	"github.com/intelsdi-x/comprbench/pkg/disk"
	"github.com/intelsdi-x/comprbench/pkg/engine"
	"github.com/intelsdi-x/comprbench/pkg/executor"
	"github.com/intelsdi-x/comprbench/pkg/experiment"
	"github.com/intelsdi-x/comprbench/pkg/metadata"
	"github.com/intelsdi-x/comprbench/pkg/net"
	"github.com/intelsdi-x/comprbench/pkg/results"
	"github.com/intelsdi-x/comprbench/pkg/utils/errutil"
	"github.com/intelsdi-x/comprbench/pkg/utils/fs"
	"github.com/intelsdi-x/comprbench/pkg/utils/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	corpusArg = conf.NewStringArg("corpus", "Corpus file loaded in every trial (.zst and .gz are decompressed)")
	outputArg = conf.NewStringArg("output", "Path of the JSON result document")
	logArg    = conf.NewStringArg("log_file", "Engine log file scanned for reactor stalls")

	dumpConfigFlag = conf.NewBoolFlag("dump_config", "Print the effective configuration and exit", false)
	summaryFlag    = conf.NewBoolFlag("summary", "Print a summary table after the sweep when stdout is a terminal", true)
)

func loadCatalog() (compression.Catalog, error) {
	if path := experiment.CatalogFileFlag.Value(); path != "" {
		return compression.LoadCatalog(path)
	}
	levels, err := experiment.ZstdLevelsFlag.Value()
	if err != nil {
		return compression.Catalog{}, err
	}
	return compression.NewCatalog(compression.DefaultClassPrefix, levels), nil
}

func newRecorder(sweepID string) (*metadata.Cassandra, error) {
	if !metadata.Enabled() {
		return nil, nil
	}
	logrus.Infof("Recording metadata in %s", conf.MetadataCassandraAddress.Value())
	return metadata.NewCassandra(sweepID, metadata.DefaultConfig())
}

func run() error {
	// Missing inputs end the run before anything is connected.
	if err := fs.CheckFilesExist(corpusArg.Value(), logArg.Value()); err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	chunkSizes, err := experiment.ChunkSizesFlag.Value()
	if err != nil {
		return err
	}

	sweepID, err := uuid.New()
	if err != nil {
		return err
	}
	logrus.Infof("Starting sweep %s: %d configurations for each of %v KB chunks", sweepID, catalog.Len(), chunkSizes)

	recorder, err := newRecorder(sweepID)
	if err != nil {
		return err
	}
	if recorder != nil {
		defer recorder.Close()
		if err := metadata.RecordRuntimeEnv(recorder, time.Now()); err != nil {
			return err
		}
	}

	engineConfig := engine.DefaultConfig()
	shell, err := executor.NewShell(engineConfig.Address)
	if err != nil {
		return err
	}

	store, err := engine.NewCassandra(engineConfig)
	if err != nil {
		return err
	}
	defer store.Close()

	config := experiment.DefaultConfiguration()
	config.CorpusPath = corpusArg.Value()
	config.LogPath = logArg.Value()
	// Progress bar would interleave with log lines.
	config.Progress = conf.LogLevel() == logrus.ErrorLevel

	runner, err := experiment.NewRunner(
		config,
		store,
		engine.NewNodetool(shell, engine.FlushCommandFlag.Value()),
		disk.NewProbe(shell, disk.UsageCommandFlag.Value(), net.IsAddrLocal(engineConfig.Address)),
	)
	if err != nil {
		return err
	}

	sweep, err := experiment.NewSweep(catalog, runner, experiment.RepetitionsFlag.Value())
	if err != nil {
		return err
	}

	measurements, err := sweep.Run(chunkSizes)
	if err != nil {
		return err
	}

	document, err := results.Build(measurements)
	if err != nil {
		return err
	}
	if err := results.Write(outputArg.Value(), document); err != nil {
		return err
	}
	logrus.Infof("Results written to %q", outputArg.Value())

	if summaryFlag.Value() && term.IsTerminal(int(os.Stdout.Fd())) {
		results.DrawSummary(os.Stdout, document)
	}

	if recorder != nil {
		return metadata.RecordResults(recorder, document)
	}
	return nil
}

func main() {
	conf.SetAppName("compression-sweep")
	conf.SetHelp(`Compression sweep measures flush time, on-disk size and reactor stalls of the engine
for every compression algorithm, level and chunk length. See README.md for details.`)

	errutil.Check(conf.ParseFlags())
	logrus.SetLevel(conf.LogLevel())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})

	if dumpConfigFlag.Value() {
		fmt.Print(conf.DumpConfig())
		os.Exit(0)
	}

	err := run()
	if fs.IsMissingFile(err) {
		errutil.CheckWithContext(err, "Missing input")
	}
	errutil.Check(err)
}
