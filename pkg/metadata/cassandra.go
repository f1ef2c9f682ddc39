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

// Package metadata records sweep configuration and results in Cassandra.
package metadata

import (
	"os"
	"strconv"
	"time"

	"github.com/gocql/gocql"
	"github.com/intelsdi-x/comprbench/pkg/conf"
	"github.com/intelsdi-x/comprbench/pkg/engine"
	"github.com/intelsdi-x/comprbench/pkg/results"
	"github.com/pkg/errors"
)

// Kinds of recorded maps.
const (
	TypeEmpty  = ""
	TypeFlags  = "flags"
	TypeResult = "result"
)

// Recorder stores maps associated with a sweep id.
type Recorder interface {
	RecordMap(metadata map[string]string, kind string) error
}

// Cassandra keeps the session to the metadata keyspace and the sweep id to tag the metadata with.
type Cassandra struct {
	sweepID string
	session engine.Session
}

// DefaultConfig returns connection settings from metadata flags.
func DefaultConfig() engine.Config {
	return engine.Config{
		Address:        conf.MetadataCassandraAddress.Value(),
		Port:           conf.MetadataCassandraPort.Value(),
		Keyspace:       conf.MetadataCassandraKeyspace.Value(),
		CreateKeyspace: true,
		Timeout:        conf.MetadataCassandraTimeout.Value(),
		ConnectTimeout: conf.MetadataCassandraTimeout.Value(),
	}
}

// Enabled tells if metadata recording was requested.
func Enabled() bool {
	return conf.MetadataCassandraAddress.Value() != ""
}

// NewCassandra connects to the metadata keyspace and creates the metadata table if needed.
func NewCassandra(sweepID string, config engine.Config) (*Cassandra, error) {
	session, err := engine.NewSession(config)
	if err != nil {
		return nil, err
	}
	m, err := NewCassandraWithSession(sweepID, session)
	if err != nil {
		session.Close()
		return nil, err
	}
	return m, nil
}

// NewCassandraWithSession returns Cassandra using an already established session.
func NewCassandraWithSession(sweepID string, session engine.Session) (*Cassandra, error) {
	err := session.Exec("CREATE TABLE IF NOT EXISTS metadata (experiment_id text, kind text, time timestamp, timeuuid TIMEUUID, metadata map<text,text>, PRIMARY KEY ((experiment_id), timeuuid)) WITH CLUSTERING ORDER BY (timeuuid DESC)")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create metadata table")
	}
	return &Cassandra{sweepID: sweepID, session: session}, nil
}

// RecordMap stores a map and associates it with the sweep id.
func (m *Cassandra) RecordMap(metadata map[string]string, kind string) error {
	err := m.session.Exec(`INSERT INTO metadata (experiment_id, kind, time, timeuuid, metadata) VALUES (?, ?, ?, ?, ?)`,
		m.sweepID, kind, time.Now(), gocql.TimeUUID(), metadata)
	return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
}

// Close releases the session.
func (m *Cassandra) Close() {
	m.session.Close()
}

// RecordRuntimeEnv stores flags, host and start time of the sweep.
func RecordRuntimeEnv(recorder Recorder, sweepStart time.Time) error {
	if err := recorder.RecordMap(conf.GetFlags(), TypeFlags); err != nil {
		return err
	}

	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve hostname")
	}
	return recorder.RecordMap(map[string]string{"time": sweepStart.Format(time.RFC822Z), "host": hostname}, TypeEmpty)
}

// ResultToMap flattens an aggregated result of given chunk length.
func ResultToMap(chunkLen int, result results.AggregatedResult) map[string]string {
	format := func(value float64) string {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return map[string]string{
		"chunk_len":        strconv.Itoa(chunkLen),
		"name":             result.Name,
		"flush_time_mean":  format(result.FlushTimeMean),
		"flush_time_stdev": format(result.FlushTimeStdev),
		"space":            format(result.Space),
		"stall_num_mean":   format(result.StallNumMean),
		"stall_num_stdev":  format(result.StallNumStdev),
		"stall_time_mean":  format(result.StallTimeMean),
		"stall_time_stdev": format(result.StallTimeStdev),
		"stall_time_p99":   format(result.StallTimeP99),
	}
}

// RecordResults stores every aggregated result of the document.
func RecordResults(recorder Recorder, document []results.ResultSet) error {
	for _, set := range document {
		for _, result := range set.Results {
			if err := recorder.RecordMap(ResultToMap(set.ChunkLen, result), TypeResult); err != nil {
				return err
			}
		}
	}
	return nil
}
