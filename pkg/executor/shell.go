package executor

import (
	"os/user"

	"github.com/intelsdi-x/comprbench/pkg/net"
	"github.com/pkg/errors"
)

// NewShell returns Local executor for local host and Remote executor with the current user's
// SSH key otherwise.
func NewShell(host string) (Executor, error) {
	if net.IsAddrLocal(host) {
		return NewLocal(), nil
	}

	current, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get current user")
	}

	sshConfig, err := NewSSHConfig(host, DefaultSSHPort, current)
	if err != nil {
		return nil, err
	}

	return NewRemote(sshConfig), nil
}
