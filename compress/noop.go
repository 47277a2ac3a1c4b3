package compress

// NoopCodec stores data unchanged.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

// NewNoop returns a codec that performs no compression.
func NewNoop() NoopCodec {
	return NoopCodec{}
}

// Compress returns data itself; the result shares memory with the input.
func (NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself; the result shares memory with the input.
func (NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
