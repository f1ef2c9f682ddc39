package executor

import (
	"io/ioutil"
	"os"
	"os/user"
	"path"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const (
	// DefaultSSHPort represent default port of SSH server (22).
	DefaultSSHPort        = 22
	defaultSSHKeyPath     = ".ssh/id_rsa"
	defaultKnownHostsPath = ".ssh/known_hosts"
)

// SSHConfig with clientConfig, host and port to connect.
type SSHConfig struct {
	ClientConfig *ssh.ClientConfig
	Host         string
	Port         int
}

// getAuthMethod which uses given key.
func getAuthMethod(keyPath string) (ssh.AuthMethod, error) {
	buffer, err := ioutil.ReadFile(keyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read SSH key %q", keyPath)
	}

	key, err := ssh.ParsePrivateKey(buffer)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse SSH key %q", keyPath)
	}

	return ssh.PublicKeys(key), nil
}

// NewSSHConfig creates a new ssh config for user.
// NOTE: Assumed that private key & known hosts are available in default dirs (<home_dir>/.ssh/).
func NewSSHConfig(host string, port int, user *user.User) (*SSHConfig, error) {
	keyPath := path.Join(user.HomeDir, defaultSSHKeyPath)
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		return nil, errors.Errorf("SSH keys not found in %s", keyPath)
	}

	authMethod, err := getAuthMethod(keyPath)
	if err != nil {
		return nil, err
	}

	hostKeyCallback, err := knownhosts.New(path.Join(user.HomeDir, defaultKnownHostsPath))
	if err != nil {
		return nil, errors.Wrap(err, "cannot read known hosts")
	}

	clientConfig := &ssh.ClientConfig{
		User:            user.Username,
		Auth:            []ssh.AuthMethod{authMethod},
		HostKeyCallback: hostKeyCallback,
	}

	return &SSHConfig{
		ClientConfig: clientConfig,
		Host:         host,
		Port:         port,
	}, nil
}
