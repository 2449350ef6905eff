package persistence

import "github.com/fcoded/frontcoded/frontcoded"

// config holds Save/Load behavior, mirroring frontcoded's own functional
// options shape.
type config struct {
	codec  Codec
	logger *frontcoded.Logger
}

// Option configures Save/Load/LoadFromStore.
type Option func(*config)

// WithCompression selects the codec applied to the buffer section on Save.
// Load auto-detects the codec from the file's header flags, so it is safe
// to pass WithCompression(CodecNone) (or omit it) when loading.
func WithCompression(codec Codec) Option {
	return func(c *config) { c.codec = codec }
}

// WithLogger attaches a logger used to report load/save progress and
// checksum failures.
func WithLogger(l *frontcoded.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{codec: CodecNone}
	for _, o := range opts {
		o(c)
	}
	return c
}
