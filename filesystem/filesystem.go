// Package filesystem routes every file access through a swappable afero
// backend, so tests can run against memory instead of the disk.
package filesystem

import "github.com/spf13/afero"

var backend afero.Afero

func init() {
	SetOsFs()
}

func use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the real filesystem.
func SetOsFs() {
	use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	use(afero.NewMemMapFs())
}
