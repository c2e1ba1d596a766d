package blake2s

import (
	"testing"

	xblake2s "golang.org/x/crypto/blake2s"
)

// hasherVecTests houses known-good vectors from RFC 7693 and the BLAKE2
// reference test suite.
var hasherVecTests = []struct {
	name string
	data []byte
	hash string
}{{
	name: "empty",
	data: nil,
	hash: "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9",
}, {
	name: "abc",
	data: []byte("abc"),
	hash: "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982",
}, {
	name: "one block",
	data: []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
	hash: "6f4df5116a6f332edab1d9e10ee87df6557beab6259d7663f3bcd5722c13f189",
}, {
	name: "quick brown fox",
	data: []byte("The quick brown fox jumps over the lazy dog"),
	hash: "606beeec743ccbeff6cbcdf5d5302aa855c256c29b88c8ed331ea1a6bf3c8812",
}}

// TestVectors ensures the hasher computes the correct digest for all of the
// known-good vectors.
func TestVectors(t *testing.T) {
	t.Parallel()

	for _, test := range hasherVecTests {
		if got := Sum256(test.data).String(); got != test.hash {
			t.Errorf("%q: got %q, want %q", test.name, got, test.hash)
		}
	}
}

// TestVectorsMultiWrite ensures chunked absorption matches single-shot
// absorption, in particular around the held-back final block.
func TestVectorsMultiWrite(t *testing.T) {
	t.Parallel()

	for _, test := range hasherVecTests {
		splits := [][]int{{1}, {63}, {64}, {65}, {32, 32, 32}}
		for _, split := range splits {
			h := New()
			rest := test.data
			for _, n := range split {
				if n > len(rest) {
					n = len(rest)
				}
				h.Write(rest[:n])
				rest = rest[n:]
			}
			h.Write(rest)
			if got := h.Sum256().String(); got != test.hash {
				t.Errorf("%q split %v: got %q, want %q", test.name, split,
					got, test.hash)
			}
		}
	}
}

// TestAgainstXCrypto cross-checks every message length through several block
// boundaries against golang.org/x/crypto/blake2s.
func TestAgainstXCrypto(t *testing.T) {
	t.Parallel()

	msg := make([]byte, 3*BlockSize)
	for i := range msg {
		msg[i] = byte(i * 17)
	}
	for n := 0; n <= len(msg); n++ {
		got := Sum256(msg[:n])
		want := xblake2s.Sum256(msg[:n])
		if got != Digest(want) {
			t.Fatalf("length %d: got %s", n, got)
		}
	}
}

// TestDigestIsEqual exercises the constant-time comparison.
func TestDigestIsEqual(t *testing.T) {
	t.Parallel()

	a := Sum256([]byte("abc"))
	b := a
	if !a.IsEqual(&b) {
		t.Fatal("equal digests compared unequal")
	}
	b[0] ^= 1
	if a.IsEqual(&b) {
		t.Fatal("unequal digests compared equal")
	}
}
