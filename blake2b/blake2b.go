// Package blake2b implements the BLAKE2b hash algorithm (RFC 7693) on top of
// the block-primitive driver.
//
// The parameter block is fixed: 64-byte digests, sequential mode, no key,
// salt, or personalisation.
package blake2b

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"
	"io"
	"os"

	"github.com/SooryaN/raaz/internal/hexutil"
	"github.com/SooryaN/raaz/primitive"
)

// Size is the size of a BLAKE2b-512 checksum in bytes.
const Size = 64

// BlockSize is the block size of BLAKE2b in bytes.
const BlockSize = 128

// Digest is a BLAKE2b output.
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

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// state is the BLAKE2b chaining state.  The last compression must carry the
// finalisation flag, so one full block is always held back from
// ProcessBlocks and flushed by ProcessLast.
type state struct {
	h          [8]uint64
	t          [2]uint64
	pending    [BlockSize]byte
	hasPending bool
}

func (s *state) init() {
	s.h = iv
	// Parameter block: digest length 64, fanout 1, depth 1, rest zero.
	s.h[0] ^= uint64(Size) | 1<<16 | 1<<24
	s.t[0] = 0
	s.t[1] = 0
	s.hasPending = false
}

// incr advances the 128-bit byte counter.
func (s *state) incr(n uint64) {
	s.t[0] += n
	if s.t[0] < n {
		s.t[1]++
	}
}

func (s *state) BlockSize() int { return BlockSize }

func (s *state) ProcessBlocks(p []byte) {
	for len(p) >= BlockSize {
		if s.hasPending {
			s.incr(BlockSize)
			compress(s, s.pending[:], false)
		}
		copy(s.pending[:], p[:BlockSize])
		s.hasPending = true
		p = p[BlockSize:]
	}
}

func (s *state) ProcessLast(p []byte) {
	if len(p) == 0 && s.hasPending {
		s.incr(BlockSize)
		compress(s, s.pending[:], true)
		s.hasPending = false
		return
	}
	if s.hasPending {
		s.incr(BlockSize)
		compress(s, s.pending[:], false)
		s.hasPending = false
	}
	var block [BlockSize]byte
	copy(block[:], p)
	s.incr(uint64(len(p)))
	compress(s, block[:], true)
}

func (s *state) digest() Digest {
	var d Digest
	for i, v := range s.h {
		binary.LittleEndian.PutUint64(d[i*8:], v)
	}
	return d
}

// Hasher computes a BLAKE2b digest over a stream of writes.  It implements
// hash.Hash.
type Hasher struct {
	state state
	drv   *primitive.Driver
}

// New returns an initialized BLAKE2b hasher.
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

// Sum512 returns the BLAKE2b-512 digest of data.
func Sum512(data []byte) Digest {
	h := New()
	h.Write(data)
	return h.Sum512()
}

// SumReader returns the BLAKE2b-512 digest of everything readable from r.
func SumReader(r io.Reader) (Digest, error) {
	h := New()
	if _, err := h.drv.ReadFrom(r); err != nil {
		return Digest{}, err
	}
	return h.Sum512(), nil
}

// SumFile returns the BLAKE2b-512 digest of the named file.
func SumFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	return SumReader(f)
}

var _ hash.Hash = (*Hasher)(nil)
