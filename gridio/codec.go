package gridio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Compression selects the on-disk encoding of a grid file.
type Compression int

const (
	// Plain is uncompressed text.
	Plain Compression = iota
	// LZ4 is an LZ4 frame.
	LZ4
	// Zstd is a Zstandard frame.
	Zstd
)

// CompressionFor picks the encoding from the file extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lz4":
		return LZ4
	case ".zst", ".zstd":
		return Zstd
	default:
		return Plain
	}
}

// readCloser closes the decoder (if any) and then the file.
type readCloser struct {
	io.Reader
	closeFn func() error
}

func (r *readCloser) Close() error { return r.closeFn() }

// openReader opens path and wraps it in the decoder its extension calls for.
func openReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch CompressionFor(path) {
	case LZ4:
		return &readCloser{Reader: lz4.NewReader(f), closeFn: f.Close}, nil
	case Zstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &readCloser{Reader: dec, closeFn: func() error {
			dec.Close()
			return f.Close()
		}}, nil
	default:
		return f, nil
	}
}

// writeCloser flushes the encoder (if any) and then closes the file.
type writeCloser struct {
	io.Writer
	closeFn func() error
}

func (w *writeCloser) Close() error { return w.closeFn() }

// createWriter creates path and wraps it in the encoder its extension calls for.
func createWriter(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	var enc io.WriteCloser
	switch CompressionFor(path) {
	case LZ4:
		enc = lz4.NewWriter(f)
	case Zstd:
		zw, err := zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		enc = zw
	default:
		return f, nil
	}

	return &writeCloser{Writer: enc, closeFn: func() error {
		if err := enc.Close(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}}, nil
}
