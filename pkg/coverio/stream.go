package coverio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// CompressedSuffix marks files stored as snappy framed streams
const CompressedSuffix = ".sz"

// Compressed reports whether path is read and written through snappy
func Compressed(path string) bool {
	return strings.HasSuffix(path, CompressedSuffix)
}

type readCloser struct {
	io.Reader
	file *os.File
}

func (r *readCloser) Close() error {
	return r.file.Close()
}

// Open opens path for reading, decompressing .sz files on the fly
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !Compressed(path) {
		return f, nil
	}
	return &readCloser{Reader: snappy.NewReader(f), file: f}, nil
}

type writeCloser struct {
	*snappy.Writer
	file *os.File
}

// Close flushes the snappy stream before closing the file
func (w *writeCloser) Close() error {
	if err := w.Writer.Close(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// Create truncates path for writing, compressing .sz files
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if !Compressed(path) {
		return f, nil
	}
	return &writeCloser{Writer: snappy.NewBufferedWriter(f), file: f}, nil
}
