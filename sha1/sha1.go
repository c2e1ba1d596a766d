// Package sha1 implements the SHA-1 hash algorithm (FIPS 180-4) on top of
// the block-primitive driver.
//
// SHA-1 is cryptographically broken.  It is provided for compatibility with
// legacy HMAC-SHA1 deployments only and is deliberately not offered as a
// checksum target by the command line tool.
package sha1

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"
	"io"
	"os"

	"github.com/SooryaN/raaz/internal/hexutil"
	"github.com/SooryaN/raaz/primitive"
)

// Size is the size of a SHA-1 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-1 in bytes.
const BlockSize = 64

// Digest is a SHA-1 output.
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

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

type state struct {
	h   [5]uint32
	len uint64
}

func (s *state) init() {
	s.h = [5]uint32{init0, init1, init2, init3, init4}
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

// Hasher computes a SHA-1 digest over a stream of writes.  It implements
// hash.Hash.
type Hasher struct {
	state state
	drv   *primitive.Driver
}

// New returns an initialized SHA-1 hasher.
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

// Sum1 finalizes a copy of the running state and returns the digest.
func (h *Hasher) Sum1() Digest {
	s := h.state
	drv := h.drv.Clone(&s)
	drv.Finalize()
	return s.digest()
}

// Sum appends the current digest to b and returns the result, satisfying
// hash.Hash.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum1()
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

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) Digest {
	h := New()
	h.Write(data)
	return h.Sum1()
}

// SumReader returns the SHA-1 digest of everything readable from r.
func SumReader(r io.Reader) (Digest, error) {
	h := New()
	if _, err := h.drv.ReadFrom(r); err != nil {
		return Digest{}, err
	}
	return h.Sum1(), nil
}

// SumFile returns the SHA-1 digest of the named file.
func SumFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	return SumReader(f)
}

var _ hash.Hash = (*Hasher)(nil)
