package store

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/Nao-Mk2/usedlog/internal/model"
)

// File is the append-only log store backed by a single plain-text file.
type File struct {
	path string
}

// NewFile returns a store for the log at path. The file is not touched.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the location of the log file.
func (f *File) Path() string { return f.path }

// Ensure creates the log with empty content if it does not exist yet.
func (f *File) Ensure() error {
	fh, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return &StorageError{Op: "create", Path: f.path, Err: err}
	}
	if err := fh.Close(); err != nil {
		return &StorageError{Op: "close", Path: f.path, Err: err}
	}
	return nil
}

// Append writes one line per record, in order, creating the file if absent.
// Records already written before a failure stay in the log.
func (f *File) Append(records []model.LogRecord) error {
	fh, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &StorageError{Op: "open", Path: f.path, Err: err}
	}

	var b strings.Builder
	for _, r := range records {
		b.WriteString(FormatRecord(r))
	}
	if _, err := fh.WriteString(b.String()); err != nil {
		_ = fh.Close()
		return &StorageError{Op: "write", Path: f.path, Err: err}
	}
	if err := fh.Sync(); err != nil {
		_ = fh.Close()
		return &StorageError{Op: "sync", Path: f.path, Err: err}
	}
	if err := fh.Close(); err != nil {
		return &StorageError{Op: "close", Path: f.path, Err: err}
	}
	return nil
}

// MaxLineSize is the longest line Lines yields intact. Longer lines are
// consumed and yielded as an empty line so readers treat them as malformed.
const MaxLineSize = 1024 * 1024

// Lines returns the log as a lazy sequence of lines without their newline.
// An open or read failure is yielded once as a *StorageError, after which
// the sequence ends.
func (f *File) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		fh, err := os.Open(f.path)
		if err != nil {
			yield("", &StorageError{Op: "open", Path: f.path, Err: err})
			return
		}
		defer fh.Close()

		r := bufio.NewReaderSize(fh, 64*1024)
		var (
			buf      []byte
			overlong bool
		)
		for {
			frag, isPrefix, err := r.ReadLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				yield("", &StorageError{Op: "read", Path: f.path, Err: err})
				return
			}
			if !overlong {
				if len(buf)+len(frag) > MaxLineSize {
					overlong = true
					buf = buf[:0]
				} else {
					buf = append(buf, frag...)
				}
			}
			if isPrefix {
				continue
			}
			line := string(buf)
			if overlong {
				line = ""
			}
			buf, overlong = buf[:0], false
			if !yield(line, nil) {
				return
			}
		}
	}
}
