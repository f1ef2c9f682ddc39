// Package disk measures and resets on-disk state of the engine data directory.
package disk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/intelsdi-x/comprbench/pkg/conf"
	"github.com/intelsdi-x/comprbench/pkg/executor"
	"github.com/intelsdi-x/comprbench/pkg/utils/fs"
	"github.com/pkg/errors"
)

// UsageCommandFlag is the command printing apparent size in bytes of a directory as first field.
var UsageCommandFlag = conf.NewStringFlag("du_command", "Command printing size in bytes of a directory given as last argument", "du -sb")

// Probe runs disk usage and removal on the host holding the data directory.
type Probe struct {
	executor     executor.Executor
	usageCommand string
	local        bool
}

// NewProbe returns a Probe. Local probes remove directories directly, remote ones with rm.
func NewProbe(executor executor.Executor, usageCommand string, local bool) Probe {
	return Probe{executor: executor, usageCommand: usageCommand, local: local}
}

// Usage returns size of directory in bytes.
func (p Probe) Usage(dir string) (int64, error) {
	output, err := executor.RunAndWait(p.executor, fmt.Sprintf("%s %s", p.usageCommand, dir))
	if err != nil {
		return 0, errors.Wrapf(err, "cannot get disk usage of %q", dir)
	}
	return parseUsage(output)
}

func parseUsage(output string) (int64, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return 0, errors.New("disk usage output is empty")
	}
	size, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse disk usage from %q", output)
	}
	return size, nil
}

// Remove removes directory tree. A missing directory is not an error.
func (p Probe) Remove(dir string) error {
	if p.local {
		return fs.RemoveDirIfExists(dir)
	}
	_, err := executor.RunAndWait(p.executor, fmt.Sprintf("rm -rf -- %s", dir))
	return errors.Wrapf(err, "cannot remove %q", dir)
}
