package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// GacheFs adapts the afero filesystem to the gache.FileSystem interface.
//
// Truncating writes are staged in a sibling temporary file and renamed over
// the target on Close, so a process killed mid-write leaves the previous
// document intact.
type GacheFs struct{}

// OpenFile opens a file using the current filesystem backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	if flag&os.O_TRUNC != 0 && flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return CreateAtomic(name, perm)
	}
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates a directory using the current filesystem backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}

// AtomicFile buffers writes into path+".tmp" until Close swaps it into place.
type AtomicFile struct {
	afero.File
	fs     afero.Afero
	target string
	closed bool
}

// CreateAtomic starts an atomic replacement of name.
func CreateAtomic(name string, perm os.FileMode) (*AtomicFile, error) {
	fs := API()
	tmp, err := fs.OpenFile(name+".tmp", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return nil, err
	}
	return &AtomicFile{File: tmp, fs: fs, target: name}, nil
}

// Close flushes the staged file and renames it over the target.
func (f *AtomicFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	tmp := f.File.Name()
	if err := f.File.Sync(); err != nil {
		_ = f.File.Close()
		_ = f.fs.Remove(tmp)
		return err
	}
	if err := f.File.Close(); err != nil {
		_ = f.fs.Remove(tmp)
		return err
	}
	if err := f.fs.Rename(tmp, f.target); err != nil {
		_ = f.fs.Remove(tmp)
		return err
	}
	return nil
}
