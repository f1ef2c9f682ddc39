package executor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewShell(t *testing.T) {
	Convey("Local addresses should get Local executor", t, func() {
		for _, host := range []string{"", "127.0.0.1", "localhost"} {
			shell, err := NewShell(host)
			So(err, ShouldBeNil)
			So(shell.Name(), ShouldEqual, "Local Executor")
		}
	})
}
