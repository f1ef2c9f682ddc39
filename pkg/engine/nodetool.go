package engine

import (
	"fmt"

	"github.com/intelsdi-x/comprbench/pkg/executor"
	"github.com/pkg/errors"
)

// Nodetool flushes memtables of a table to on-disk segments.
type Nodetool struct {
	executor executor.Executor
	command  string
}

// NewNodetool returns Nodetool running flush command with given executor.
func NewNodetool(executor executor.Executor, command string) Nodetool {
	return Nodetool{executor: executor, command: command}
}

// Flush blocks until the flush command terminates.
func (n Nodetool) Flush(keyspace, table string) error {
	command := fmt.Sprintf("%s %s %s", n.command, keyspace, table)
	_, err := executor.RunAndWait(n.executor, command)
	return errors.Wrapf(err, "flush of %s.%s failed", keyspace, table)
}
