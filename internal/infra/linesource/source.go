package linesource

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/ports"
)

// maxLineBytes bounds a single command line.
const maxLineBytes = 1 << 20

// Reader yields lines from an io.Reader.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	return &Reader{sc: sc}
}

var _ ports.CommandSource = (*Reader)(nil)

func (r *Reader) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", &domain.OpError{
				Op:   "linesource.read",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.sc.Text(), " \t\r"), nil
}

// File is a Reader over an opened script file.
type File struct {
	*Reader
	f *os.File
}

// Open opens path for reading. Callers must Close the returned File.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "linesource.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return &File{Reader: NewReader(f), f: f}, nil
}

func (f *File) Close() error {
	return f.f.Close()
}
