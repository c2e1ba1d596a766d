// Package sha512 implements the SHA-512 hash algorithm (FIPS 180-4) on top
// of the block-primitive driver.
package sha512

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"
	"io"
	"os"

	"github.com/SooryaN/raaz/internal/hexutil"
	"github.com/SooryaN/raaz/primitive"
)

// Size is the size of a SHA-512 checksum in bytes.
const Size = 64

// BlockSize is the block size of SHA-512 in bytes.
const BlockSize = 128

// Digest is a SHA-512 output.
type Digest [Size]byte

// String returns the digest as a lowercase hexadecimal string.
func (d Digest) String() string {
	return hexutil.Encode(d[:])
}

// NewDigestFromStr parses a hexadecimal string into a Digest.
func NewDigestFromStr(s string) (Digest, error) {
	var d Digest
	err := hexutil.Decode(d[:], s)
	return d, err
}

// IsEqual reports whether two digests are equal in constant time.
func (d *Digest) IsEqual(other *Digest) bool {
	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}

// Initial chaining values from FIPS 180-4 section 5.3.5.
const (
	init0 = 0x6a09e667f3bcc908
	init1 = 0xbb67ae8584caa73b
	init2 = 0x3c6ef372fe94f82b
	init3 = 0xa54ff53a5f1d36f1
	init4 = 0x510e527fade682d1
	init5 = 0x9b05688c2b3e6c1f
	init6 = 0x1f83d9abfb41bd6b
	init7 = 0x5be0cd19137e2179
)

// state is the SHA-512 chaining state.  The message length is tracked in
// bytes; the 128-bit bit count required by the padding rule is derived from
// it in ProcessLast.
type state struct {
	h   [8]uint64
	len uint64
}

func (s *state) init() {
	s.h = [8]uint64{init0, init1, init2, init3, init4, init5, init6, init7}
	s.len = 0
}

func (s *state) BlockSize() int { return BlockSize }

func (s *state) ProcessBlocks(p []byte) {
	s.len += uint64(len(p))
	blocks(s, p)
}

func (s *state) ProcessLast(p []byte) {
	l := s.len + uint64(len(p))
	var tmp [2 * BlockSize]byte
	n := copy(tmp[:], p)
	tmp[n] = 0x80
	padded := BlockSize
	if n+1+16 > BlockSize {
		padded = 2 * BlockSize
	}
	binary.BigEndian.PutUint64(tmp[padded-16:], l>>61)
	binary.BigEndian.PutUint64(tmp[padded-8:], l<<3)
	blocks(s, tmp[:padded])
}

func (s *state) digest() Digest {
	var d Digest
	for i, v := range s.h {
		binary.BigEndian.PutUint64(d[i*8:], v)
	}
	return d
}

// Hasher computes a SHA-512 digest over a stream of writes.  It implements
// hash.Hash.
type Hasher struct {
	state state
	drv   *primitive.Driver
}

// New returns an initialized SHA-512 hasher.
func New() *Hasher {
	h := new(Hasher)
	h.state.init()
	h.drv = primitive.NewDriver(&h.state)
	return h
}

// Write absorbs p.  It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.drv.Write(p)
}

// Sum512 finalizes a copy of the running state and returns the digest.
func (h *Hasher) Sum512() Digest {
	s := h.state
	drv := h.drv.Clone(&s)
	drv.Finalize()
	return s.digest()
}

// Sum appends the current digest to b and returns the result, satisfying
// hash.Hash.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum512()
	return append(b, d[:]...)
}

// Reset restores the hasher to its initial state.
func (h *Hasher) Reset() {
	h.state.init()
	h.drv.Reset()
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the block size in bytes.
func (h *Hasher) BlockSize() int { return BlockSize }

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) Digest {
	h := New()
	h.Write(data)
	return h.Sum512()
}

// SumReader returns the SHA-512 digest of everything readable from r.
func SumReader(r io.Reader) (Digest, error) {
	h := New()
	if _, err := h.drv.ReadFrom(r); err != nil {
		return Digest{}, err
	}
	return h.Sum512(), nil
}

// SumFile returns the SHA-512 digest of the named file.
func SumFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	return SumReader(f)
}

var _ hash.Hash = (*Hasher)(nil)
