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

package metadata

import (
	"testing"

	"github.com/intelsdi-x/comprbench/pkg/conf"
	"github.com/intelsdi-x/comprbench/pkg/metadata"
	"github.com/intelsdi-x/comprbench/pkg/results"
	"github.com/intelsdi-x/comprbench/pkg/utils/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

// TestCassandraRecorder requires Cassandra at BENCH_METADATA_CASSANDRA_ADDR.
func TestCassandraRecorder(t *testing.T) {
	Convey("While using metadata package", t, func() {
		So(conf.ParseEnv(), ShouldBeNil)

		if !metadata.Enabled() {
			SkipConvey("BENCH_METADATA_CASSANDRA_ADDR is not set", func() {})
			return
		}

		id, err := uuid.New()
		So(err, ShouldBeNil)

		recorder, err := metadata.NewCassandra(id, metadata.DefaultConfig())
		So(err, ShouldBeNil)
		defer recorder.Close()

		Convey("Recording results shall succeed", func() {
			document := []results.ResultSet{{ChunkLen: 4, Results: []results.AggregatedResult{{Name: "None", FlushTimeMean: 20}}}}
			So(metadata.RecordResults(recorder, document), ShouldBeNil)
		})
	})
}
