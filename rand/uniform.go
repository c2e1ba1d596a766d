// Uniform random algorithms modified from the Go math/rand/v2 package.

package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/bits"
	"time"
)

// The typed generators below are defined only for values that are uniformly
// distributed over their entire byte representation.  Types with refined
// ranges go through the *N variants, which reject rather than fold so the
// result carries no modulo bias.
//
// All of them panic if a scheduled reseed fails, which can only happen when
// the OS entropy source breaks after the PRNG was successfully created.

// Uint32 returns a uniform random uint32.
func (p *PRNG) Uint32() uint32 {
	var b [4]byte
	p.mustRead(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Uint64 returns a uniform random uint64.
func (p *PRNG) Uint64() uint64 {
	var b [8]byte
	p.mustRead(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
func (p *PRNG) Uint32N(n uint32) uint32 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return p.Uint32() & (n - 1)
	}
	return uint32(p.Uint64N(uint64(n)))
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
func (p *PRNG) Uint64N(n uint64) uint64 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return p.Uint64() & (n - 1)
	}

	// Scale a uniform 64-bit sample into [0,n) via the high half of a
	// double-width multiply, rejecting the handful of samples that would
	// introduce bias.  See
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	hi, lo := bits.Mul64(p.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(p.Uint64(), n)
		}
	}
	return hi
}

// Int32 returns a random 31-bit non-negative integer as an int32.
func (p *PRNG) Int32() int32 {
	return int32(p.Uint32() & 0x7FFFFFFF)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (p *PRNG) Int32N(n int32) int32 {
	if n <= 0 {
		panic("rand: invalid argument to Int32N")
	}
	return int32(p.Uint32N(uint32(n)))
}

// Int64 returns a random 63-bit non-negative integer as an int64.
func (p *PRNG) Int64() int64 {
	return int64(p.Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (p *PRNG) Int64N(n int64) int64 {
	if n <= 0 {
		panic("rand: invalid argument to Int64N")
	}
	return int64(p.Uint64N(uint64(n)))
}

// Int returns a non-negative integer without bias.
func (p *PRNG) Int() int {
	return int(uint(p.Uint64()) << 1 >> 1)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func (p *PRNG) IntN(n int) int {
	if n <= 0 {
		panic("rand: invalid argument to IntN")
	}
	return int(p.Uint64N(uint64(n)))
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
func (p *PRNG) UintN(n uint) uint {
	return uint(p.Uint64N(uint64(n)))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (p *PRNG) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("rand: invalid argument to Duration")
	}
	return time.Duration(p.Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (p *PRNG) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("rand: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle.
	for i := n - 1; i > 0; i-- {
		j := int(p.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0.
func (p *PRNG) BigInt(max *big.Int) *big.Int {
	// Never errors with our reader.
	n, _ := cryptorand.Int(panicReader{p}, max)
	return n
}

// panicReader adapts the PRNG for crypto/rand.Int with the same
// panic-on-reseed-failure policy as the other typed generators.
type panicReader struct{ p *PRNG }

func (r panicReader) Read(b []byte) (int, error) {
	r.p.mustRead(b)
	return len(b), nil
}
