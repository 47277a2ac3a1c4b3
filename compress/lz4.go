package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// Block modes written in the first byte of an LZ4 payload.
const (
	lz4ModeRaw   byte = 0
	lz4ModeBlock byte = 1
)

var errLZ4Corrupt = errors.New("lz4: corrupt payload")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec is LZ4 block compression with a small framing header.
//
// Payload layout:
//
//	mode(1) | uvarint(original length) | block   (mode 1)
//	mode(1) | original bytes                      (mode 0, incompressible input)
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4 returns an LZ4 codec.
func NewLZ4() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses data as one LZ4 block. Input that LZ4 cannot shrink is
// stored raw.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 1+binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	dst[0] = lz4ModeBlock
	hdr := 1 + binary.PutUvarint(dst[1:], uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[hdr:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 || hdr+n >= 1+len(data) {
		raw := make([]byte, 1+len(data))
		raw[0] = lz4ModeRaw
		copy(raw[1:], data)

		return raw, nil
	}

	return dst[:hdr+n], nil
}

// Decompress restores a payload produced by Compress.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case lz4ModeRaw:
		out := make([]byte, len(data)-1)
		copy(out, data[1:])

		return out, nil
	case lz4ModeBlock:
		size, k := binary.Uvarint(data[1:])
		if k <= 0 || size == 0 || size > maxDecodedSize {
			return nil, errLZ4Corrupt
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(data[1+k:], out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		if n != int(size) {
			return nil, errLZ4Corrupt
		}

		return out, nil
	default:
		return nil, errLZ4Corrupt
	}
}
