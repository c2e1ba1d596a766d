package rand

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/SooryaN/raaz/securemem"
)

// lockingPRNG serialises access to a shared PRNG.
type lockingPRNG struct {
	*PRNG
	mu sync.Mutex
}

var globalRand *lockingPRNG

func init() {
	p, err := NewPRNG()
	if err != nil {
		panic(err)
	}
	globalRand = &lockingPRNG{PRNG: p}
}

func (p *lockingPRNG) Read(s []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Read(s)
}

// Reader returns the default fast-key-erasure PRNG.  The returned Reader is
// safe for concurrent access.
func Reader() io.Reader {
	return globalRand
}

// Read fills b with random bytes obtained from the default PRNG.
func Read(b []byte) error {
	// Mutex is acquired by (*lockingPRNG).Read.
	_, err := globalRand.Read(b)
	return err
}

// Bytes returns n random bytes obtained from the default PRNG.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// FillSecure writes random bytes directly into an existing secure buffer.
func FillSecure(b *securemem.Buffer) error {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.FillSecure(b)
}

// Reseed forces the default PRNG to reseed from OS entropy.
func Reseed() error {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Reseed()
}

// Uint32 returns a uniform random uint32.
func Uint32() uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Uint32()
}

// Uint64 returns a uniform random uint64.
func Uint64() uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Uint64()
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
func Uint32N(n uint32) uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Uint32N(n)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
func Uint64N(n uint64) uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Uint64N(n)
}

// Int32 returns a random 31-bit non-negative integer as an int32.
func Int32() int32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Int32()
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int32N(n int32) int32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Int32N(n)
}

// Int64 returns a random 63-bit non-negative integer as an int64.
func Int64() int64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Int64()
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int64N(n int64) int64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Int64N(n)
}

// Int returns a non-negative integer without bias.
func Int() int {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Int()
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func IntN(n int) int {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.IntN(n)
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
func UintN(n uint) uint {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.UintN(n)
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.Duration(n)
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	globalRand.PRNG.Shuffle(n, swap)
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0.
func BigInt(max *big.Int) *big.Int {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.PRNG.BigInt(max)
}
