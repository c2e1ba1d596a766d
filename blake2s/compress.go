package blake2s

import (
	"encoding/binary"
	"math/bits"
)

// Permutation of {0..15} used by the BLAKE2 round function.  BLAKE2s uses
// the first ten rows.
var sigma = [10][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// compress applies the BLAKE2s compression function to one 64-byte block.
func compress(s *state, block []byte, final bool) {
	var m, v [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}
	for i := 0; i < 8; i++ {
		v[i] = s.h[i]
	}
	v[8] = iv[0]
	v[9] = iv[1]
	v[10] = iv[2]
	v[11] = iv[3]
	v[12] = s.t[0] ^ iv[4]
	v[13] = s.t[1] ^ iv[5]
	v[14] = iv[6]
	if final {
		v[14] = ^iv[6]
	}
	v[15] = iv[7]

	g := func(r, i, a, b, c, d int) {
		v[a] = v[a] + v[b] + m[sigma[r][2*i+0]]
		v[d] = bits.RotateLeft32(v[d]^v[a], -16)
		v[c] = v[c] + v[d]
		v[b] = bits.RotateLeft32(v[b]^v[c], -12)
		v[a] = v[a] + v[b] + m[sigma[r][2*i+1]]
		v[d] = bits.RotateLeft32(v[d]^v[a], -8)
		v[c] = v[c] + v[d]
		v[b] = bits.RotateLeft32(v[b]^v[c], -7)
	}
	for r := 0; r < 10; r++ {
		g(r, 0, 0, 4, 8, 12)
		g(r, 1, 1, 5, 9, 13)
		g(r, 2, 2, 6, 10, 14)
		g(r, 3, 3, 7, 11, 15)
		g(r, 4, 0, 5, 10, 15)
		g(r, 5, 1, 6, 11, 12)
		g(r, 6, 2, 7, 8, 13)
		g(r, 7, 3, 4, 9, 14)
	}
	for i := 0; i < 8; i++ {
		s.h[i] ^= v[i] ^ v[i+8]
	}
}
