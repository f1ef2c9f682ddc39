package disk

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/intelsdi-x/comprbench/pkg/executor"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseUsage(t *testing.T) {
	Convey("While parsing du output", t, func() {
		Convey("First field should be the size", func() {
			size, err := parseUsage("123456\t/var/lib/scylla/data/test_ks\n")
			So(err, ShouldBeNil)
			So(size, ShouldEqual, int64(123456))
		})

		Convey("Empty output should be an error", func() {
			_, err := parseUsage("\n")
			So(err, ShouldNotBeNil)
		})

		Convey("Human readable output should be an error", func() {
			_, err := parseUsage("1.2M\t/data")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestProbe(t *testing.T) {
	Convey("While probing a local directory", t, func() {
		dir, err := ioutil.TempDir("", "disk")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		data := path.Join(dir, "test_ks")
		So(os.MkdirAll(data, 0755), ShouldBeNil)
		So(ioutil.WriteFile(path.Join(data, "Data.db"), make([]byte, 4096), 0644), ShouldBeNil)

		Convey("Usage should report the command output", func() {
			probe := NewProbe(executor.NewLocal(), "echo 4096 #", true)
			size, err := probe.Usage(data)
			So(err, ShouldBeNil)
			So(size, ShouldEqual, int64(4096))
		})

		Convey("Failing usage command should be reported", func() {
			probe := NewProbe(executor.NewLocal(), "false", true)
			_, err := probe.Usage(data)
			So(err, ShouldNotBeNil)
		})

		Convey("Local removal should remove the tree", func() {
			probe := NewProbe(executor.NewLocal(), "du -sb", true)
			So(probe.Remove(data), ShouldBeNil)
			_, err := os.Stat(data)
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Command based removal should remove the tree", func() {
			probe := NewProbe(executor.NewLocal(), "du -sb", false)
			So(probe.Remove(data), ShouldBeNil)
			_, err := os.Stat(data)
			So(os.IsNotExist(err), ShouldBeTrue)
		})
	})
}
