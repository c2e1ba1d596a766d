// Package sha256 implements the SHA-256 hash algorithm (FIPS 180-4) on top
// of the block-primitive driver, along with a distinct fixed-size Digest type
// supporting lowercase hex display, hex parsing, and constant-time equality.
package sha256

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"
	"io"
	"os"

	"github.com/SooryaN/raaz/internal/hexutil"
	"github.com/SooryaN/raaz/primitive"
)

// Size is the size of a SHA-256 checksum in bytes.
const Size = 32

// BlockSize is the block size of SHA-256 in bytes.
const BlockSize = 64

// Digest is a SHA-256 output.  Digests of different hashes are distinct
// types, so comparing them is a compile error.
type Digest [Size]byte

// String returns the digest as a lowercase hexadecimal string.
func (d Digest) String() string {
	return hexutil.Encode(d[:])
}

// NewDigestFromStr parses a hexadecimal string into a Digest.  The error has
// kind hexutil.ErrInvalidDigestEncoding when the string is not valid hex of
// the expected length.
func NewDigestFromStr(s string) (Digest, error) {
	var d Digest
	err := hexutil.Decode(d[:], s)
	return d, err
}

// IsEqual reports whether two digests are equal in time dependent only on
// the digest length, never on where they first differ.
func (d *Digest) IsEqual(other *Digest) bool {
	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}

// Initial chaining values from FIPS 180-4 section 5.3.3.
const (
	init0 = 0x6a09e667
	init1 = 0xbb67ae85
	init2 = 0x3c6ef372
	init3 = 0xa54ff53a
	init4 = 0x510e527f
	init5 = 0x9b05688c
	init6 = 0x1f83d9ab
	init7 = 0x5be0cd19
)

// state is the SHA-256 chaining state.  It satisfies primitive.Block; the
// length counter advances in ProcessBlocks and the Merkle-Damgård length
// padding happens in ProcessLast.
type state struct {
	h   [8]uint32
	len uint64
}

func (s *state) init() {
	s.h = [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
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
	if n+1+8 > BlockSize {
		padded = 2 * BlockSize
	}
	binary.BigEndian.PutUint64(tmp[padded-8:], l<<3)
	blocks(s, tmp[:padded])
}

func (s *state) digest() Digest {
	var d Digest
	for i, v := range s.h {
		binary.BigEndian.PutUint32(d[i*4:], v)
	}
	return d
}

// Hasher computes a SHA-256 digest over a stream of writes.  It implements
// hash.Hash.  A Hasher is not safe for concurrent use.
type Hasher struct {
	state state
	drv   *primitive.Driver
}

// New returns an initialized SHA-256 hasher.
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

// Sum256 finalizes a copy of the running state and returns the digest.  The
// hasher itself keeps absorbing.
func (h *Hasher) Sum256() Digest {
	s := h.state
	drv := h.drv.Clone(&s)
	drv.Finalize()
	return s.digest()
}

// Sum appends the current digest to b and returns the result, satisfying
// hash.Hash.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum256()
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

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) Digest {
	h := New()
	h.Write(data)
	return h.Sum256()
}

// SumReader returns the SHA-256 digest of everything readable from r.
func SumReader(r io.Reader) (Digest, error) {
	h := New()
	if _, err := h.drv.ReadFrom(r); err != nil {
		return Digest{}, err
	}
	return h.Sum256(), nil
}

// SumFile returns the SHA-256 digest of the named file, streaming its
// contents block by block.
func SumFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	return SumReader(f)
}

var _ hash.Hash = (*Hasher)(nil)
