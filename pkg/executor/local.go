package executor

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const localAddress = "127.0.0.1"

// Local is responsible for running commands on local machine via exec.Command.
// It runs command as current user.
type Local struct{}

// NewLocal returns a Local instance.
func NewLocal() Local {
	return Local{}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local Executor"
}

// Execute runs the command given as input.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string) (TaskHandle, error) {
	stdoutFile, stderrFile, err := outputFiles()
	if err != nil {
		return nil, err
	}

	logrus.Debug("Starting ", command)

	cmd := exec.Command("sh", "-c", command)
	// Own process group gives ability to kill all the children processes.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	if err := cmd.Start(); err != nil {
		removeOutputFiles(stdoutFile, stderrFile)
		return nil, errors.Wrapf(err, "cannot start %q", command)
	}

	logrus.Debug("Started with pid ", cmd.Process.Pid)

	handle := newTaskHandle(localAddress, stdoutFile, stderrFile, func() error {
		// The kill syscall interprets a negated PID N as the process group N belongs to.
		logrus.Debug("Sending SIGTERM to PID ", -cmd.Process.Pid)
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	})

	go func() {
		// Process state is inspected below in any case, so the error itself matters less.
		cmd.Wait()

		var exitCode int
		status := cmd.ProcessState.Sys().(syscall.WaitStatus)
		if status.Exited() {
			exitCode = status.ExitStatus()
		} else {
			// Show what signal caused the termination.
			exitCode = -int(status.Signal())
		}

		logrus.Debug(
			"Ended ", command,
			" with output in file: ", stdoutFile.Name(),
			" with err output in file: ", stderrFile.Name(),
			" with status code: ", exitCode)

		handle.complete(exitCode)
	}()

	return handle, nil
}
