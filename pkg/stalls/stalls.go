// Package stalls extracts reactor stall durations from the engine log.
//
// The log is an append-only file shared with the engine. Extractor keeps a single cursor
// into it: MarkWindowStart moves the cursor to the current end of the log and DrainWindow
// reads everything appended since, so every stall line is attributed to exactly one window.
package stalls

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var stallRegex = regexp.MustCompile(`Reactor stalled for (\d+) ms`)

// Extractor reads stall events from the engine log.
// It is not safe for concurrent use.
type Extractor struct {
	log    io.ReadSeeker
	closer io.Closer
	// offset is the cursor: everything before it has been consumed.
	offset int64
}

// New returns an Extractor reading from log with the cursor at its beginning.
func New(log io.ReadSeeker) *Extractor {
	return &Extractor{log: log}
}

// Open opens the log file read-only. Close must be called to release the handle.
func Open(path string) (*Extractor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open log %q", path)
	}
	e := New(file)
	e.closer = file
	return e, nil
}

// Close releases the log handle if the Extractor owns one.
func (e *Extractor) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// MarkWindowStart moves the cursor to the current end of the log.
// Everything written before is discarded.
func (e *Extractor) MarkWindowStart() error {
	end, err := e.log.Seek(0, io.SeekEnd)
	if err != nil {
		return errors.Wrap(err, "cannot seek to the end of log")
	}
	e.offset = end
	return nil
}

// DrainWindow returns durations in ms of stalls logged since the cursor, in log order,
// and moves the cursor to the end of the log. Lines without a stall are skipped.
// The flush has finished by the time of the drain, so an unterminated last line is
// complete and is parsed as well.
func (e *Extractor) DrainWindow() ([]int, error) {
	if _, err := e.log.Seek(e.offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "cannot seek log to %d", e.offset)
	}

	appended, err := readAll(e.log)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read log")
	}
	e.offset += int64(len(appended))

	stalls := []int{}
	for _, line := range bytes.Split(appended, []byte{'\n'}) {
		if stall, ok := parseStall(line); ok {
			stalls = append(stalls, stall)
		}
	}
	return stalls, nil
}

func readAll(r io.Reader) ([]byte, error) {
	buffer := &bytes.Buffer{}
	_, err := buffer.ReadFrom(r)
	return buffer.Bytes(), err
}
func parseStall(line []byte) (int, bool) {
	match := stallRegex.FindSubmatch(line)
	if match == nil {
		return 0, false
	}
	stall, err := strconv.Atoi(string(match[1]))
	if err != nil {
		logrus.Debugf("Skipping stall line with unparsable duration %q: %v", line, err)
		return 0, false
	}
	return stall, true
}
