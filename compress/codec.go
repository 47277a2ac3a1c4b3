package compress

import (
	"fmt"

	"github.com/arloliu/growthcast/format"
)

// maxDecodedSize bounds the size of any decompressed payload.
const maxDecodedSize = 64 << 20

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error when data is corrupted or was produced by a different
// algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoop(),
	format.CompressionZstd: NewZstd(),
	format.CompressionS2:   NewS2(),
	format.CompressionLZ4:  NewLZ4(),
}

// New returns the built-in Codec for compressionType.
//
// Parameters:
//   - compressionType: One of format.CompressionNone, Zstd, S2 or LZ4
//
// Returns:
//   - Codec: Shared codec instance, safe for concurrent use
//   - error: Unsupported compression type
func New(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Ratio returns compressed/original, or 0 when original is zero.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}

	return float64(compressed) / float64(original)
}
