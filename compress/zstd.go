package compress

// ZstdCodec is Zstandard compression.
//
// The default build uses the pure Go klauspost/compress encoder. Building with
// the gozstd tag (and cgo enabled) switches to the valyala/gozstd bindings;
// both produce standard Zstandard frames and decode each other's output.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstd returns a Zstd codec.
func NewZstd() ZstdCodec {
	return ZstdCodec{}
}
