package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/hulla/docugen"
)

// DefaultChunkSize is the read buffer size used by NewReader.
const DefaultChunkSize = 32 * 1024

// Ensure Reader implements docugen.FileReader at compile time.
var _ docugen.FileReader = (*Reader)(nil)

// Reader reads source files in chunks, checking for cancellation between
// chunks.
type Reader struct {
	chunkSize int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithChunkSize sets the read buffer size.
func WithChunkSize(n int) ReaderOption {
	return func(r *Reader) {
		if n > 0 {
			r.chunkSize = n
		}
	}
}

// NewReader creates a new Reader.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFile returns the content of path. It returns ctx.Err() as soon as the
// context is done, even while a read is blocked.
func (r *Reader) ReadFile(ctx context.Context, path string) (string, error) {
	type result struct {
		content string
		err     error
	}
	done := make(chan result, 1)

	go func() {
		content, err := r.read(ctx, path)
		done <- result{content, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.content, res.err
	}
}

func (r *Reader) read(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", docugen.Errorf(docugen.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	buf := make([]byte, r.chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := f.Read(buf)
		b.Write(buf[:n])
		if err == io.EOF {
			return b.String(), nil
		} else if err != nil {
			return "", err
		}
	}
}
