// Package hash provides the order-sensitive checksum accumulator behind the
// base16384 checksum trailer.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum accumulates an xxHash64 digest over the raw bytes covered by a
// checksum trailer. The zero value is not usable; call New.
type Checksum struct {
	d *xxhash.Digest
}

// New returns an empty accumulator.
func New() *Checksum {
	return &Checksum{d: xxhash.New()}
}

// Write adds p to the digest. It never fails.
func (c *Checksum) Write(p []byte) (int, error) {
	return c.d.Write(p)
}

// Sum64 returns the digest of everything written so far.
func (c *Checksum) Sum64() uint64 {
	return c.d.Sum64()
}

// Reset clears the accumulator for reuse.
func (c *Checksum) Reset() {
	c.d.Reset()
}

// Sum returns the digest of data in one call.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
