package uuid

import (
	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

// New returns new random (version 4) uuid in XXXXXXXX-XXXX-... format.
func New() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "cannot generate uuid")
	}
	return id.String(), nil
}
