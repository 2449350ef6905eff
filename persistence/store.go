//go:build amd64 || arm64

package persistence

import (
	"bytes"
	"context"
	"io"

	"github.com/fcoded/frontcoded/frontcoded"
	"github.com/fcoded/frontcoded/blobstore"
)

// LoadFromStore opens name on store and loads a FrontCodedList[T] from it,
// composing blobstore.Open with Load. Backends that implement
// blobstore.Mappable (LocalStore) are read with zero extra copies; others
// are read fully into memory first since Load needs a complete buffer to
// verify the header's checksum before handing back a list.
func LoadFromStore[T frontcoded.Element](ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*frontcoded.FrontCodedList[T], error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	if m, ok := b.(blobstore.Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		return Load[T](bytes.NewReader(data), opts...)
	}

	r, err := storeReader(ctx, b)
	if err != nil {
		return nil, err
	}
	return Load[T](r, opts...)
}

// SaveToStore encodes list with Save and writes the result to name on
// store via a single atomic Put, so a reader never observes a partially
// written blob.
func SaveToStore[T frontcoded.Element](ctx context.Context, store blobstore.BlobStore, name string, list *frontcoded.FrontCodedList[T], opts ...Option) error {
	var buf bytes.Buffer
	if err := Save(&buf, list, opts...); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// storeReader reads b fully into memory, preferring a single Size-sized
// ReadAt over the chunked style blobstore.WarmLoadAll uses, since a lone
// LoadFromStore call has no batch to amortize across.
func storeReader(ctx context.Context, b blobstore.Blob) (io.Reader, error) {
	size := b.Size()
	buf := make([]byte, size)
	off := int64(0)
	for off < size {
		n, err := b.ReadAt(ctx, buf[off:], off)
		off += int64(n)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
	}
	return bytes.NewReader(buf[:off]), nil
}
