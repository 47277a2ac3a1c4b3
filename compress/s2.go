package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Codec is S2 block compression.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2 returns an S2 codec.
func NewS2() S2Codec {
	return S2Codec{}
}

// Compress compresses data as a single S2 block.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
