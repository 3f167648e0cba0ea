package testutil

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// ErrClose is returned by files created through CloseErrorFs
var ErrClose = errors.New("close failed")

// CloseErrorFs is an in-memory filesystem whose created files fail on Close,
// the way a full disk surfaces a failed flush.
type CloseErrorFs struct {
	afero.Fs
}

// NewCloseErrorFs returns a CloseErrorFs backed by a MemMapFs
func NewCloseErrorFs() *CloseErrorFs {
	return &CloseErrorFs{Fs: afero.NewMemMapFs()}
}

func (fs *CloseErrorFs) Create(name string) (afero.File, error) {
	f, err := fs.Fs.Create(name)
	if err != nil {
		return nil, err
	}
	return closeErrorFile{f}, nil
}

func (fs *CloseErrorFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return closeErrorFile{f}, nil
}

type closeErrorFile struct {
	afero.File
}

func (f closeErrorFile) Close() error {
	_ = f.File.Close()
	return ErrClose
}
