package fs

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCheckFilesExist(t *testing.T) {
	Convey("While checking input files", t, func() {
		dir, err := ioutil.TempDir("", "fs")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		existing := path.Join(dir, "corpus.txt")
		So(ioutil.WriteFile(existing, []byte("data"), 0644), ShouldBeNil)
		missing := path.Join(dir, "missing.log")

		Convey("Existing files should pass", func() {
			So(CheckFilesExist(existing), ShouldBeNil)
		})

		Convey("The first missing file should be reported", func() {
			err := CheckFilesExist(existing, missing)
			So(err, ShouldNotBeNil)
			So(IsMissingFile(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, missing)
		})

		Convey("Removing a directory tree should be idempotent", func() {
			tree := path.Join(dir, "ks", "table")
			So(os.MkdirAll(tree, 0755), ShouldBeNil)

			So(RemoveDirIfExists(path.Join(dir, "ks")), ShouldBeNil)
			_, err := os.Stat(tree)
			So(os.IsNotExist(err), ShouldBeTrue)

			So(RemoveDirIfExists(path.Join(dir, "ks")), ShouldBeNil)
		})
	})
}
