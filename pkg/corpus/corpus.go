// Package corpus produces the data blocks loaded into the engine during a trial.
package corpus

import (
	"io"
	"os"
	"path/filepath"

	"github.com/intelsdi-x/comprbench/pkg/utils/err_collection"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Producer yields fixed-size blocks of the corpus until the corpus is exhausted or the byte
// budget is reached, whichever comes first. The last block may be shorter.
// A Producer is single pass; open a new one for every trial.
type Producer struct {
	reader    io.Reader
	closers   []func() error
	blockSize int
	loaded    int64
}

// NewProducer returns a Producer reading at most budget bytes from r in blocks of blockSize.
func NewProducer(r io.Reader, blockSize int, budget int64) *Producer {
	return &Producer{
		reader:    io.LimitReader(r, budget),
		blockSize: blockSize,
	}
}

// Open opens corpus file. Files ending with .zst or .gz are decompressed and the budget
// applies to decompressed bytes.
func Open(path string, blockSize int, budget int64) (*Producer, error) {
	if blockSize <= 0 {
		return nil, errors.Errorf("block size must be positive, got %d", blockSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open corpus %q", path)
	}
	closers := []func() error{file.Close}

	var reader io.Reader = file
	switch filepath.Ext(path) {
	case ".zst":
		decoder, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, errors.Wrapf(err, "cannot read zstd corpus %q", path)
		}
		closers = append([]func() error{func() error { decoder.Close(); return nil }}, closers...)
		reader = decoder
	case ".gz":
		decoder, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, errors.Wrapf(err, "cannot read gzip corpus %q", path)
		}
		closers = append([]func() error{decoder.Close}, closers...)
		reader = decoder
	}

	p := NewProducer(reader, blockSize, budget)
	p.closers = closers
	return p, nil
}

// Next returns the next block or io.EOF when the corpus or the budget is exhausted.
func (p *Producer) Next() ([]byte, error) {
	block := make([]byte, p.blockSize)
	n, err := io.ReadFull(p.reader, block)
	switch err {
	case nil, io.ErrUnexpectedEOF:
		p.loaded += int64(n)
		return block[:n], nil
	case io.EOF:
		return nil, io.EOF
	default:
		return nil, errors.Wrap(err, "cannot read corpus")
	}
}

// Loaded returns number of bytes produced so far.
func (p *Producer) Loaded() int64 {
	return p.loaded
}

// Close releases the corpus file and decoders.
func (p *Producer) Close() error {
	var errColl errcollection.ErrorCollection
	for _, closer := range p.closers {
		errColl.Add(closer())
	}
	p.closers = nil
	return errColl.GetErrIfAny()
}

// Text decodes block as ISO-8859-1, so any byte sequence becomes valid text.
func Text(block []byte) (string, error) {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(block)
	if err != nil {
		return "", errors.Wrap(err, "cannot decode block")
	}
	return string(text), nil
}
