package executor

import (
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"
)

// outputFiles creates files for stdout and stderr of a task.
func outputFiles() (stdout *os.File, stderr *os.File, err error) {
	stdout, err = ioutil.TempFile("", "stdout")
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot create stdout file")
	}
	stderr, err = ioutil.TempFile("", "stderr")
	if err != nil {
		stdout.Close()
		os.Remove(stdout.Name())
		return nil, nil, errors.Wrap(err, "cannot create stderr file")
	}
	return stdout, stderr, nil
}

// removeOutputFiles closes and removes output files of a task which never started.
func removeOutputFiles(files ...*os.File) {
	for _, file := range files {
		file.Close()
		os.Remove(file.Name())
	}
}

// taskHandle implements TaskHandle for tasks whose completion is signalled on waitEndChannel.
type taskHandle struct {
	address        string
	stdoutFile     *os.File
	stderrFile     *os.File
	waitEndChannel chan struct{}
	// exitCode is written before waitEndChannel is closed.
	exitCode int
	stop     func() error
}

func newTaskHandle(address string, stdoutFile, stderrFile *os.File, stop func() error) *taskHandle {
	return &taskHandle{
		address:        address,
		stdoutFile:     stdoutFile,
		stderrFile:     stderrFile,
		waitEndChannel: make(chan struct{}),
		stop:           stop,
	}
}

// complete records exit code and releases every waiter.
func (t *taskHandle) complete(exitCode int) {
	t.exitCode = exitCode
	close(t.waitEndChannel)
}

func (t *taskHandle) isTerminated() bool {
	select {
	case <-t.waitEndChannel:
		return true
	default:
		return false
	}
}

// Stop terminates the task and waits for it.
func (t *taskHandle) Stop() error {
	if t.isTerminated() {
		return nil
	}
	if err := t.stop(); err != nil {
		return errors.Wrap(err, "cannot stop task")
	}
	<-t.waitEndChannel
	return nil
}

// Status returns a state of the task.
func (t *taskHandle) Status() TaskState {
	if !t.isTerminated() {
		return RUNNING
	}
	return TERMINATED
}

// ExitCode returns exit code of terminated task.
func (t *taskHandle) ExitCode() (int, error) {
	if !t.isTerminated() {
		return -1, errors.New("task is not terminated")
	}
	return t.exitCode, nil
}

// StdoutFile returns a file handle for file to the task's stdout file.
func (t *taskHandle) StdoutFile() (*os.File, error) {
	if _, err := t.stdoutFile.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "cannot rewind %q", t.stdoutFile.Name())
	}
	return t.stdoutFile, nil
}

// StderrFile returns a file handle for file to the task's stderr file.
func (t *taskHandle) StderrFile() (*os.File, error) {
	if _, err := t.stderrFile.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "cannot rewind %q", t.stderrFile.Name())
	}
	return t.stderrFile, nil
}

// Wait blocks until task is terminated or timeout appeared.
// Returns true when task terminates before timeout, otherwise false.
func (t *taskHandle) Wait(timeout time.Duration) bool {
	if timeout == 0 {
		<-t.waitEndChannel
		return true
	}

	select {
	case <-t.waitEndChannel:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Clean closes output files.
func (t *taskHandle) Clean() error {
	if err := t.stdoutFile.Close(); err != nil {
		return errors.Wrapf(err, "cannot close %q", t.stdoutFile.Name())
	}
	return errors.Wrapf(t.stderrFile.Close(), "cannot close %q", t.stderrFile.Name())
}

// EraseOutput removes output files.
func (t *taskHandle) EraseOutput() error {
	if err := os.Remove(t.stdoutFile.Name()); err != nil {
		return errors.Wrapf(err, "cannot remove %q", t.stdoutFile.Name())
	}
	return errors.Wrapf(os.Remove(t.stderrFile.Name()), "cannot remove %q", t.stderrFile.Name())
}

// Address returns address where task was located.
func (t *taskHandle) Address() string {
	return t.address
}
