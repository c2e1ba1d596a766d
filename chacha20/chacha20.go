// Package chacha20 implements the ChaCha20 stream cipher in its IETF form
// (RFC 7539): a 256-bit key, a 96-bit nonce, a 32-bit block counter, and 20
// rounds over 64-byte blocks.
package chacha20

import (
	"encoding/binary"
	"fmt"

	"github.com/SooryaN/raaz/securemem"
)

const (
	// KeySize is the ChaCha20 key size in bytes.
	KeySize = 32

	// NonceSize is the IETF ChaCha20 nonce size in bytes.
	NonceSize = 12

	// BlockSize is the keystream block size in bytes.
	BlockSize = 64
)

const (
	sigma0 = 0x61707865 // "expa"
	sigma1 = 0x3320646e // "nd 3"
	sigma2 = 0x79622d32 // "2-by"
	sigma3 = 0x6b206574 // "te k"
)

// Cipher is a ChaCha20 cipher instance carrying key, nonce, and block
// counter.  A Cipher is not safe for concurrent use.
type Cipher struct {
	input [16]uint32
}

// NewCipher returns a cipher for the given key and nonce with the block
// counter at zero.
func NewCipher(key, nonce []byte) (*Cipher, error) {
	c := new(Cipher)
	if err := c.ReKey(key, nonce); err != nil {
		return nil, err
	}
	return c, nil
}

// ReKey reinitializes the cipher with a new key and nonce and resets the
// block counter to zero.  The previous state words are overwritten.
func (c *Cipher) ReKey(key, nonce []byte) error {
	if len(key) != KeySize {
		str := fmt.Sprintf("invalid key length %d, want %d", len(key), KeySize)
		return makeError(ErrInvalidKey, str)
	}
	if len(nonce) != NonceSize {
		str := fmt.Sprintf("invalid nonce length %d, want %d", len(nonce),
			NonceSize)
		return makeError(ErrInvalidNonce, str)
	}
	c.input[0] = sigma0
	c.input[1] = sigma1
	c.input[2] = sigma2
	c.input[3] = sigma3
	for i := 0; i < 8; i++ {
		c.input[4+i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	c.input[12] = 0
	c.input[13] = binary.LittleEndian.Uint32(nonce[0:])
	c.input[14] = binary.LittleEndian.Uint32(nonce[4:])
	c.input[15] = binary.LittleEndian.Uint32(nonce[8:])
	return nil
}

// Seek sets the block counter, so the next keystream byte is the first byte
// of block counter.
func (c *Cipher) Seek(counter uint32) {
	c.input[12] = counter
}

// Counter returns the current block counter.
func (c *Cipher) Counter() uint32 {
	return c.input[12]
}

// Reset zeroises the cipher state.  The cipher must be rekeyed before reuse.
func (c *Cipher) Reset() {
	for i := range c.input {
		c.input[i] = 0
	}
}

// XORKeyStream XORs src with the keystream and writes the result to dst,
// which must be at least as long as src and may be src itself.  Whole blocks
// advance the counter by one each; a trailing partial block consumes the
// leading bytes of one more keystream block.  An error with kind
// ErrCounterExhausted is returned, before any output is produced, when the
// requested length would wrap the 32-bit counter.
func (c *Cipher) XORKeyStream(dst, src []byte) error {
	if len(dst) < len(src) {
		panic("chacha20: output smaller than input")
	}
	// The counter must stay strictly below 2^32 after the call so it can
	// never silently wrap into keystream reuse.
	blocks := uint64(len(src)+BlockSize-1) / BlockSize
	if uint64(c.input[12])+blocks >= 1<<32 {
		str := fmt.Sprintf("keystream exhausted: %d blocks requested at "+
			"counter %d", blocks, c.input[12])
		return makeError(ErrCounterExhausted, str)
	}

	var stream [BlockSize]byte
	for len(src) >= BlockSize {
		core(&stream, &c.input)
		c.input[12]++
		for i := 0; i < BlockSize; i++ {
			dst[i] = src[i] ^ stream[i]
		}
		dst = dst[BlockSize:]
		src = src[BlockSize:]
	}
	if len(src) > 0 {
		core(&stream, &c.input)
		c.input[12]++
		for i := range src {
			dst[i] = src[i] ^ stream[i]
		}
	}
	securemem.Zero(stream[:])
	return nil
}

// KeyStream fills dst with raw keystream bytes.
func (c *Cipher) KeyStream(dst []byte) error {
	securemem.Zero(dst)
	return c.XORKeyStream(dst, dst)
}
