package chacha20

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	yawning "gitlab.com/yawning/chacha20.git"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  It must only be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestBlockVector checks the keystream block function against the vector
// from RFC 7539 section 2.3.2.
func TestBlockVector(t *testing.T) {
	t.Parallel()

	key := hexToBytes("000102030405060708090a0b0c0d0e0f" +
		"101112131415161718191a1b1c1d1e1f")
	nonce := hexToBytes("000000090000004a00000000")
	want := "10f1e7e4d13b5915500fdd1fa32071c4c7d1f4c733c068030422aa9ac3d46c4e" +
		"d2826446079faa0914c2d705d98b02a2b5129cd1de164eb9cbd083e8a2503c4e"

	c, err := NewCipher(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	c.Seek(1)
	stream := make([]byte, BlockSize)
	if err := c.KeyStream(stream); err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(stream); got != want {
		t.Fatalf("block: got %s, want %s", got, want)
	}
}

// TestZeroKeyVector checks the all-zero key and nonce keystream from RFC
// 7539 appendix A.1.
func TestZeroKeyVector(t *testing.T) {
	t.Parallel()

	want := "76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7" +
		"da41597c5157488d7724e03fb8d84a376a43b8f41518a11cc387b669b2ee6586"

	c, err := NewCipher(make([]byte, KeySize), make([]byte, NonceSize))
	if err != nil {
		t.Fatal(err)
	}
	stream := make([]byte, BlockSize)
	if err := c.KeyStream(stream); err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(stream); got != want {
		t.Fatalf("block: got %s, want %s", got, want)
	}
}

// TestEncryptVector checks the full encryption example from RFC 7539
// section 2.4.2, including the partial final block.
func TestEncryptVector(t *testing.T) {
	t.Parallel()

	key := hexToBytes("000102030405060708090a0b0c0d0e0f" +
		"101112131415161718191a1b1c1d1e1f")
	nonce := hexToBytes("000000000000004a00000000")
	plaintext := []byte("Ladies and Gentlemen of the class of '99: If I " +
		"could offer you only one tip for the future, sunscreen would be it.")
	want := "6e2e359a2568f98041ba0728dd0d6981e97e7aec1d4360c20a27afccfd9fae0b" +
		"f91b65c5524733ab8f593dabcd62b3571639d624e65152ab8f530c359f0861d8" +
		"07ca0dbf500d6a6156a38e088a22b65e52bc514d16ccf806818ce91ab7793736" +
		"5af90bbf74a35be6b40b8eedf2785e42874d"

	c, err := NewCipher(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	c.Seek(1)
	ciphertext := make([]byte, len(plaintext))
	if err := c.XORKeyStream(ciphertext, plaintext); err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(ciphertext); got != want {
		t.Fatalf("ciphertext: got %s, want %s", got, want)
	}
}

// TestInvolution ensures decrypting a ciphertext with the same key, nonce,
// and counter restores the plaintext for lengths around block boundaries.
func TestInvolution(t *testing.T) {
	t.Parallel()

	key := hexToBytes("808182838485868788898a8b8c8d8e8f" +
		"909192939495969798999a9b9c9d9e9f")
	nonce := hexToBytes("404142434445464748494a4b")
	for _, n := range []int{0, 1, 63, 64, 65, 128, 1000} {
		msg := bytes.Repeat([]byte{0xc5}, n)
		enc, _ := NewCipher(key, nonce)
		ct := make([]byte, n)
		if err := enc.XORKeyStream(ct, msg); err != nil {
			t.Fatal(err)
		}
		dec, _ := NewCipher(key, nonce)
		pt := make([]byte, n)
		if err := dec.XORKeyStream(pt, ct); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(pt, msg) {
			t.Fatalf("length %d: decrypt(encrypt(m)) != m", n)
		}
	}
}

// TestAgainstYawning cross-checks the IETF-nonce keystream against
// gitlab.com/yawning/chacha20.
func TestAgainstYawning(t *testing.T) {
	t.Parallel()

	key := hexToBytes("000102030405060708090a0b0c0d0e0f" +
		"101112131415161718191a1b1c1d1e1f")
	nonce := hexToBytes("0f1e2d3c4b5a69780f1e2d3c")
	msg := bytes.Repeat([]byte("interop"), 555)

	ours, err := NewCipher(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]byte, len(msg))
	if err := ours.XORKeyStream(got, msg); err != nil {
		t.Fatal(err)
	}

	theirs, err := yawning.New(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, len(msg))
	theirs.XORKeyStream(want, msg)

	if !bytes.Equal(got, want) {
		t.Fatal("keystream disagrees with yawning/chacha20")
	}
}

// TestCounterExhausted ensures a request that would push the block counter
// to 2^32 fails up front with ErrCounterExhausted and that rekeying clears
// the condition.
func TestCounterExhausted(t *testing.T) {
	t.Parallel()

	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	c, err := NewCipher(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	c.Seek(0xffffffff)
	buf := make([]byte, BlockSize)
	if err := c.XORKeyStream(buf, buf); !errors.Is(err, ErrCounterExhausted) {
		t.Fatalf("error %v, want ErrCounterExhausted", err)
	}

	if err := c.ReKey(key, nonce); err != nil {
		t.Fatal(err)
	}
	if err := c.XORKeyStream(buf, buf); err != nil {
		t.Fatalf("XORKeyStream after rekey: %v", err)
	}
}

// TestBadKeyNonceSizes ensures constructor validation.
func TestBadKeyNonceSizes(t *testing.T) {
	t.Parallel()

	if _, err := NewCipher(make([]byte, 16), make([]byte, NonceSize)); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("short key: error %v, want ErrInvalidKey", err)
	}
	if _, err := NewCipher(make([]byte, KeySize), make([]byte, 8)); !errors.Is(err, ErrInvalidNonce) {
		t.Fatalf("short nonce: error %v, want ErrInvalidNonce", err)
	}
}

// TestReset ensures Reset zeroises the cipher state words.
func TestReset(t *testing.T) {
	t.Parallel()

	c, err := NewCipher(hexToBytes("000102030405060708090a0b0c0d0e0f"+
		"101112131415161718191a1b1c1d1e1f"), make([]byte, NonceSize))
	if err != nil {
		t.Fatal(err)
	}
	c.Reset()
	for i, v := range c.input {
		if v != 0 {
			t.Fatalf("state word %d survived reset: %#x", i, v)
		}
	}
}
