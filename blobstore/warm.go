package blobstore

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultWarmLoadConcurrency bounds how many blobs WarmLoadAll reads in
// parallel when the caller doesn't override it via WithWarmLoadConcurrency.
const DefaultWarmLoadConcurrency = 16

// WarmLoadOption configures WarmLoadAll.
type WarmLoadOption func(*warmLoadConfig)

type warmLoadConfig struct {
	concurrency int
}

// WithWarmLoadConcurrency overrides the number of blobs read in parallel.
func WithWarmLoadConcurrency(n int) WarmLoadOption {
	return func(c *warmLoadConfig) { c.concurrency = n }
}

// WarmLoadAll opens and fully reads every blob in names concurrently,
// bounded by concurrency (DefaultWarmLoadConcurrency unless overridden).
// It is meant to prime a CachingStore's block cache, or to front-load
// persistence.LoadFromStore calls over a batch of lists, before the
// individual loads run. The first error encountered aborts the remaining
// reads and is returned; successfully read blobs are still present in the
// returned map.
func WarmLoadAll(ctx context.Context, store BlobStore, names []string, opts ...WarmLoadOption) (map[string][]byte, error) {
	cfg := warmLoadConfig{concurrency: DefaultWarmLoadConcurrency}
	for _, o := range opts {
		o(&cfg)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	var mu sync.Mutex
	out := make(map[string][]byte, len(names))

	for _, name := range names {
		name := name
		g.Go(func() error {
			data, err := readAll(ctx, store, name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}

// readAll opens name and reads it fully, preferring the zero-copy Mappable
// path when the backend offers one.
func readAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}

	size := b.Size()
	buf := make([]byte, size)
	off := int64(0)
	for off < size {
		n, err := b.ReadAt(ctx, buf[off:], off)
		off += int64(n)
		if err != nil {
			if err == io.EOF && off == size {
				break
			}
			if err == io.EOF {
				return buf[:off], nil
			}
			return nil, err
		}
	}
	return buf, nil
}
