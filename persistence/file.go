//go:build amd64 || arm64

package persistence

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/fcoded/frontcoded/frontcoded"
)

// SaveToFile atomically writes list to filename: it writes to a temp file
// in the same directory, fsyncs it, then renames it into place, so a
// crash mid-write never leaves filename truncated or partially written.
func SaveToFile[T frontcoded.Element](filename string, list *frontcoded.FrontCodedList[T], opts ...Option) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()
	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := Save(buf, list, opts...); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	tmpName = ""
	return nil
}

// LoadFromFile opens filename and loads a FrontCodedList[T] from it.
func LoadFromFile[T frontcoded.Element](filename string, opts ...Option) (*frontcoded.FrontCodedList[T], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := bufio.NewReaderSize(f, 256*1024)
	return Load[T](buf, opts...)
}
