package fs

import (
	"os/exec"
	"strconv"

	"github.com/pkg/errors"
)

// ReadTail returns last lineCount lines of the file.
func ReadTail(filePath string, lineCount int) (tail string, err error) {
	output, err := exec.Command("tail", "-n", strconv.Itoa(lineCount), filePath).CombinedOutput()

	if err != nil {
		return "", errors.Wrapf(err, "could not read tail of %q", filePath)
	}

	return string(output), nil
}
