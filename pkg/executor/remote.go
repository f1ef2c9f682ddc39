package executor

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// Remote is responsible for running commands on remote machine via ssh.
type Remote struct {
	sshConfig *SSHConfig
}

// NewRemote returns a Remote instance.
func NewRemote(sshConfig *SSHConfig) Remote {
	return Remote{sshConfig}
}

// Name returns user-friendly name of executor.
func (remote Remote) Name() string {
	return "Remote Executor"
}

// Execute runs the command given as input.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (remote Remote) Execute(command string) (TaskHandle, error) {
	address := net.JoinHostPort(remote.sshConfig.Host, fmt.Sprintf("%d", remote.sshConfig.Port))
	client, err := ssh.Dial("tcp", address, remote.sshConfig.ClientConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to %q", address)
	}

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "cannot create session on %q", address)
	}

	stdoutFile, stderrFile, err := outputFiles()
	if err != nil {
		session.Close()
		client.Close()
		return nil, err
	}
	session.Stdout = stdoutFile
	session.Stderr = stderrFile

	logrus.Debugf("Starting %q on %q", command, address)
	if err := session.Start(command); err != nil {
		session.Close()
		client.Close()
		removeOutputFiles(stdoutFile, stderrFile)
		return nil, errors.Wrapf(err, "cannot start %q on %q", command, address)
	}

	handle := newTaskHandle(remote.sshConfig.Host, stdoutFile, stderrFile, func() error {
		return session.Signal(ssh.SIGTERM)
	})

	go func() {
		exitCode := 0
		if err := session.Wait(); err != nil {
			if exitErr, ok := err.(*ssh.ExitError); ok {
				exitCode = exitErr.ExitStatus()
			} else {
				logrus.Errorf("Waiting for %q on %q failed: %v", command, address, err)
				exitCode = -1
			}
		}
		session.Close()
		client.Close()

		logrus.Debugf("Ended %q on %q with status code %d", command, address, exitCode)
		handle.complete(exitCode)
	}()

	return handle, nil
}
