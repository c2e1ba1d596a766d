// Package rand provides a cryptographically secure userspace pseudorandom
// number generator built on ChaCha20 with fast key erasure.
//
// The generator keeps a sampling buffer of 16 keystream blocks in locked
// memory.  After every refill the leading bytes of the buffer immediately
// replace the key and nonce that produced it and are erased, so a compromise
// of the current state reveals nothing about earlier output.  Every byte
// handed to a caller is likewise erased from the buffer as it is copied out.
package rand

import (
	"github.com/SooryaN/raaz/chacha20"
	"github.com/SooryaN/raaz/securemem"
)

const (
	// bufferSize is the sampling buffer size: 16 ChaCha20 blocks.
	bufferSize = 16 * chacha20.BlockSize

	// rekeySize is the number of leading buffer bytes consumed to rekey
	// the generator after each refill.
	rekeySize = chacha20.KeySize + chacha20.NonceSize

	// reseedInterval is the number of generated bytes after which fresh
	// OS entropy is mixed in: 2^30 blocks, 64 GiB.
	reseedInterval = 1 << 36

	// stateSize is the locked allocation: key, nonce, sampling buffer.
	stateSize = chacha20.KeySize + chacha20.NonceSize + bufferSize
)

// PRNG is a seeded fast-key-erasure generator.  PRNG methods are not safe
// for concurrent access; callers wanting shared access should use the
// package-level functions, and independent goroutines should each own a
// separately seeded PRNG.
type PRNG struct {
	state     *securemem.Buffer // key | nonce | sampling buffer
	counter   uint32            // ChaCha20 block counter under the current key
	pos       int               // next unconsumed buffer byte
	seedBytes uint64            // bytes generated since the last reseed
	rekeys    uint64            // refill count, observable in tests
	reseeds   uint64            // reseed count, observable in tests
	dead      bool
}

// NewPRNG returns a generator seeded from OS entropy.  The only possible
// error has kind ErrEntropyUnavailable (or ErrShortRead) and means the
// platform entropy source is broken.
func NewPRNG() (*PRNG, error) {
	p := &PRNG{state: securemem.New(stateSize)}
	if err := p.reseed(); err != nil {
		p.state.Destroy()
		return nil, err
	}
	return p, nil
}

func (p *PRNG) key() []byte {
	return p.state.Bytes()[:chacha20.KeySize]
}

func (p *PRNG) nonce() []byte {
	return p.state.Bytes()[chacha20.KeySize:rekeySize]
}

func (p *PRNG) buf() []byte {
	return p.state.Bytes()[rekeySize:]
}

// reseed replaces the key and nonce with fresh OS entropy, resets the block
// counter, and refills the sampling buffer.
func (p *PRNG) reseed() error {
	tmp := securemem.New(rekeySize)
	defer tmp.Destroy()
	if err := fillEntropy(tmp.Bytes()); err != nil {
		return err
	}
	copy(p.key(), tmp.Bytes()[:chacha20.KeySize])
	copy(p.nonce(), tmp.Bytes()[chacha20.KeySize:])
	p.counter = 0
	p.seedBytes = 0
	p.reseeds++
	p.refill()
	return nil
}

// refill regenerates the sampling buffer and immediately rekeys from its
// leading bytes, erasing them.
func (p *PRNG) refill() {
	var cipher chacha20.Cipher
	// The key and nonce always have the correct sizes and the reseed
	// interval keeps the counter far from 2^32, so neither call can fail.
	if err := cipher.ReKey(p.key(), p.nonce()); err != nil {
		panic(err)
	}
	cipher.Seek(p.counter)
	if err := cipher.KeyStream(p.buf()); err != nil {
		panic(err)
	}
	p.counter += bufferSize / chacha20.BlockSize
	cipher.Reset()

	buf := p.buf()
	copy(p.key(), buf[:chacha20.KeySize])
	copy(p.nonce(), buf[chacha20.KeySize:rekeySize])
	securemem.Zero(buf[:rekeySize])
	p.pos = rekeySize
	p.rekeys++
}

// Read fills s with len(s) cryptographically secure random bytes.  Each byte
// returned is erased from the sampling buffer as it is copied out.  Read
// only errors when a scheduled reseed cannot obtain OS entropy.
func (p *PRNG) Read(s []byte) (int, error) {
	if p.dead {
		panic("rand: read from a destroyed PRNG")
	}
	var n int
	buf := p.buf()
	for len(s) > 0 {
		if p.pos == len(buf) {
			p.refill()
		}
		take := copy(s, buf[p.pos:])
		securemem.Zero(buf[p.pos : p.pos+take])
		p.pos += take
		p.seedBytes += uint64(take)
		s = s[take:]
		n += take
	}
	if p.seedBytes >= reseedInterval {
		if err := p.reseed(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// mustRead is Read for the typed generators, which have no error path.
func (p *PRNG) mustRead(s []byte) {
	if _, err := p.Read(s); err != nil {
		panic(err)
	}
}

// Reseed forces an immediate reseed from OS entropy.
func (p *PRNG) Reseed() error {
	if p.dead {
		panic("rand: reseed of a destroyed PRNG")
	}
	return p.reseed()
}

// FillSecure writes random bytes directly into an existing secure buffer, so
// the generated value never exists in unlocked memory.
func (p *PRNG) FillSecure(b *securemem.Buffer) error {
	_, err := p.Read(b.Bytes())
	return err
}

// Bytes returns n fresh random bytes.
func (p *PRNG) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := p.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Destroy zeroises and releases the generator state.  The PRNG is unusable
// afterwards; Destroy is idempotent.
func (p *PRNG) Destroy() {
	if p.dead {
		return
	}
	p.state.Destroy()
	p.counter = 0
	p.pos = 0
	p.dead = true
}
