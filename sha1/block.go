package sha1

import (
	"encoding/binary"
	"math/bits"
)

// Round constants from FIPS 180-4 section 4.2.1.
const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// blocks runs the compression function over len(p)/BlockSize whole blocks.
func blocks(s *state, p []byte) {
	var w [80]uint32
	h0, h1, h2, h3, h4 := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4]
	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4
		for i := 0; i < 20; i++ {
			t := bits.RotateLeft32(a, 5) + ((b & c) | (^b & d)) + e + w[i] + _K0
			e = d
			d = c
			c = bits.RotateLeft32(b, 30)
			b = a
			a = t
		}
		for i := 20; i < 40; i++ {
			t := bits.RotateLeft32(a, 5) + (b ^ c ^ d) + e + w[i] + _K1
			e = d
			d = c
			c = bits.RotateLeft32(b, 30)
			b = a
			a = t
		}
		for i := 40; i < 60; i++ {
			t := bits.RotateLeft32(a, 5) + ((b & c) | (b & d) | (c & d)) + e + w[i] + _K2
			e = d
			d = c
			c = bits.RotateLeft32(b, 30)
			b = a
			a = t
		}
		for i := 60; i < 80; i++ {
			t := bits.RotateLeft32(a, 5) + (b ^ c ^ d) + e + w[i] + _K3
			e = d
			d = c
			c = bits.RotateLeft32(b, 30)
			b = a
			a = t
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[BlockSize:]
	}
	s.h[0], s.h[1], s.h[2], s.h[3], s.h[4] = h0, h1, h2, h3, h4
}
