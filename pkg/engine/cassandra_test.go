package engine

import (
	"errors"
	"testing"

	"github.com/intelsdi-x/comprbench/pkg/compression"
	"github.com/intelsdi-x/comprbench/pkg/engine/mocks"
	"github.com/intelsdi-x/comprbench/pkg/executor"
	executorMocks "github.com/intelsdi-x/comprbench/pkg/executor/mocks"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCassandra(t *testing.T) {
	Convey("While using engine statements", t, func() {
		session := new(mocks.Session)
		cassandra := NewCassandraWithSession(session)

		Convey("Dropping table should be conditional", func() {
			session.On("Exec", "DROP TABLE IF EXISTS test_struct").Return(nil).Once()

			So(cassandra.DropTable("test_struct"), ShouldBeNil)
			So(session.AssertExpectations(t), ShouldBeTrue)
		})

		Convey("Creating table should carry compression options", func() {
			config := compression.DefaultCatalog().Generate([]int{4})[0].Configs[1].Config
			session.On("Exec", "CREATE TABLE test_struct (a int, b int, c text, PRIMARY KEY (a, b)) WITH compression = "+
				"{'sstable_compression': 'org.apache.cassandra.io.compress.LZ4Compressor', 'chunk_length_in_kb': '4'}").Return(nil).Once()

			So(cassandra.CreateTable("test_struct", config), ShouldBeNil)
			So(session.AssertExpectations(t), ShouldBeTrue)
		})

		Convey("Inserting should bind partition, clustering and payload", func() {
			session.On("Exec", "INSERT INTO test_struct (a, b, c) VALUES (?, ?, ?)", 3, 7, "payload").Return(nil).Once()

			So(cassandra.Insert("test_struct", 3, 7, "payload"), ShouldBeNil)
			So(session.AssertExpectations(t), ShouldBeTrue)
		})

		Convey("Statement failure should be wrapped with context", func() {
			session.On("Exec", "DROP TABLE IF EXISTS test_struct").Return(errors.New("connection lost")).Once()

			err := cassandra.DropTable("test_struct")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "connection lost")
			So(err.Error(), ShouldContainSubstring, "test_struct")
		})

		Convey("Closing should close the session", func() {
			session.On("Close").Return().Once()

			cassandra.Close()
			So(session.AssertExpectations(t), ShouldBeTrue)
		})
	})
}

func TestNodetool(t *testing.T) {
	Convey("While flushing with nodetool", t, func() {
		Convey("Successful command should flush", func() {
			So(NewNodetool(executor.NewLocal(), "true").Flush("test_ks", "test_struct"), ShouldBeNil)
		})

		Convey("Command failure should be reported", func() {
			err := NewNodetool(executor.NewLocal(), "false").Flush("test_ks", "test_struct")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "flush of test_ks.test_struct failed")
		})

		Convey("Executor failure should be reported", func() {
			mockedExecutor := new(executorMocks.Executor)
			mockedExecutor.On("Execute", "nodetool flush test_ks test_struct").Return(nil, errors.New("no shell")).Once()
			mockedExecutor.On("Name").Return("mocked")

			err := NewNodetool(mockedExecutor, "nodetool flush").Flush("test_ks", "test_struct")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no shell")
			So(mockedExecutor.AssertExpectations(t), ShouldBeTrue)
		})
	})
}
