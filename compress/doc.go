// Package compress provides the codecs used to store encoded responses compactly.
//
// Every codec implements Codec:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Four algorithms are available, selected by format.CompressionType:
//
//   - None: data is stored as is
//   - Zstd: best ratio, moderate speed (pure Go by default, cgo gozstd with
//     the gozstd build tag)
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// JSON forecast responses are repetitive text, so Zstd and S2 usually shrink
// them three to five times. Codecs are stateless values and safe for
// concurrent use; Zstd and LZ4 keep pooled encoder state internally.
//
// Example:
//
//	codec, err := compress.New(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(body)
package compress
