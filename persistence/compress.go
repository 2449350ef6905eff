package persistence

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the compression applied to the encoded buffer section of
// a persisted list.
type Codec uint8

const (
	// CodecNone stores the buffer uncompressed.
	CodecNone Codec = 0
	// CodecLZ4 trades compression ratio for speed, good for hot reloads.
	CodecLZ4 Codec = 1
	// CodecZSTD trades speed for ratio, good for cold/archival storage.
	CodecZSTD Codec = 2
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) { zstdEncoderPool.Put(enc) }

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) { zstdDecoderPool.Put(dec) }

// compress compresses data with the given codec. CodecNone returns data
// unchanged. applied is false when the codec declined to compress (LZ4
// reports the block as incompressible); the caller should then store the
// data uncompressed rather than treat this as an error.
func compress(data []byte, codec Codec) (out []byte, applied bool, err error) {
	switch codec {
	case CodecNone:
		return data, false, nil
	case CodecLZ4:
		bound := lz4.CompressBlockBound(len(data))
		dst := make([]byte, bound)
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, false, err
		}
		if n == 0 {
			return data, false, nil
		}
		return dst[:n], true, nil
	case CodecZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		return enc.EncodeAll(data, nil), true, nil
	default:
		return nil, false, fmt.Errorf("persistence: unknown codec %d", codec)
	}
}

// decompress reverses compress, given the known uncompressed byte length.
func decompress(data []byte, codec Codec, uncompressedLen int) ([]byte, error) {
	switch codec {
	case CodecNone:
		return data, nil
	case CodecLZ4:
		dst := make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			return nil, err
		}
		if n != uncompressedLen {
			return nil, fmt.Errorf("persistence: lz4 decompressed size mismatch: got %d want %d", n, uncompressedLen)
		}
		return dst, nil
	case CodecZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		decoded, err := dec.DecodeAll(data, make([]byte, 0, uncompressedLen))
		if err != nil {
			return nil, err
		}
		if len(decoded) != uncompressedLen {
			return nil, fmt.Errorf("persistence: zstd decompressed size mismatch: got %d want %d", len(decoded), uncompressedLen)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("persistence: unknown codec %d", codec)
	}
}
