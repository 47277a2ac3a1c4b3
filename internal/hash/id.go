// Package hash computes xxHash64 fingerprints of requests for response caching.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fingerprint accumulates request fields into one xxHash64 digest.
//
// Every field is framed (strings and slices are length-prefixed), so
// ("ab", "c") and ("a", "bc") hash differently. Floats hash by bit pattern.
// The zero value is not usable; call NewFingerprint.
type Fingerprint struct {
	d   *xxhash.Digest
	buf [binary.MaxVarintLen64]byte
}

// NewFingerprint starts a fingerprint in the namespace kind, e.g. "predict".
func NewFingerprint(kind string) *Fingerprint {
	f := &Fingerprint{d: xxhash.New()}
	f.String(kind)

	return f
}

// String adds a string field.
func (f *Fingerprint) String(s string) *Fingerprint {
	f.Uint(uint64(len(s)))
	_, _ = f.d.WriteString(s)

	return f
}

// Uint adds an unsigned integer field.
func (f *Fingerprint) Uint(v uint64) *Fingerprint {
	n := binary.PutUvarint(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:n])

	return f
}

// Int adds a signed integer field.
func (f *Fingerprint) Int(v int64) *Fingerprint {
	n := binary.PutVarint(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:n])

	return f
}

// Float adds a float64 field by its IEEE 754 bits.
func (f *Fingerprint) Float(v float64) *Fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:8], math.Float64bits(v))
	_, _ = f.d.Write(f.buf[:8])

	return f
}

// Floats adds a length-prefixed float64 slice.
func (f *Fingerprint) Floats(vs []float64) *Fingerprint {
	f.Uint(uint64(len(vs)))
	for _, v := range vs {
		f.Float(v)
	}

	return f
}

// Sum returns the digest of all fields added so far.
func (f *Fingerprint) Sum() uint64 {
	return f.d.Sum64()
}
