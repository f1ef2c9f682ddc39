package executor

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ExitError is returned by RunAndWait when the command terminated with non-zero exit code.
type ExitError struct {
	Command  string
	Address  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q on %q exited with code %d", e.Command, e.Address, e.ExitCode)
}

// RunAndWait executes command, blocks until it terminates and returns its standard output.
// Non-zero exit code is reported as ExitError. Task output files are removed afterwards.
func RunAndWait(executor Executor, command string) (stdout string, err error) {
	handle, err := executor.Execute(command)
	if err != nil {
		return "", errors.Wrapf(err, "cannot execute %q with %s", command, executor.Name())
	}
	defer func() {
		if cleanErr := handle.Clean(); cleanErr != nil {
			logrus.Warnf("Cleaning after %q failed: %v", command, cleanErr)
			return
		}
		if eraseErr := handle.EraseOutput(); eraseErr != nil {
			logrus.Warnf("Erasing output of %q failed: %v", command, eraseErr)
		}
	}()

	handle.Wait(0)

	exitCode, err := handle.ExitCode()
	if err != nil {
		return "", errors.Wrapf(err, "cannot get exit code of %q", command)
	}
	if exitCode != 0 {
		LogUnsucessfulExecution(command, executor.Name(), handle)
		return "", &ExitError{Command: command, Address: handle.Address(), ExitCode: exitCode}
	}
	LogSuccessfulExecution(command, executor.Name(), handle)

	stdoutFile, err := handle.StdoutFile()
	if err != nil {
		return "", err
	}
	output, err := ioutil.ReadAll(stdoutFile)
	if err != nil {
		return "", errors.Wrapf(err, "cannot read output of %q", command)
	}
	return string(output), nil
}
