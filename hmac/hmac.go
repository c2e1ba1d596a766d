// Package hmac implements the keyed-hash message authentication code from
// RFC 2104, generically over any of the module's block hashes.
//
// MAC outputs are distinct types from the underlying hash digests, so a MAC
// can never be compared against a plain digest by accident.
package hmac

import (
	"hash"

	"github.com/SooryaN/raaz/securemem"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// Hasher computes an HMAC over a stream of writes.  It implements hash.Hash.
// A Hasher is not safe for concurrent use.
type Hasher struct {
	newHash func() hash.Hash
	inner   hash.Hash
	ipadKey []byte
	opadKey []byte
}

// New returns an HMAC hasher for the hash constructed by newHash, keyed with
// key.  A key longer than the hash block size is replaced by its digest; a
// shorter key is zero-padded to the block size.
func New(newHash func() hash.Hash, key []byte) *Hasher {
	h := &Hasher{newHash: newHash, inner: newHash()}
	bs := h.inner.BlockSize()

	k := make([]byte, bs)
	if len(key) > bs {
		d := newHash()
		d.Write(key)
		copy(k, d.Sum(nil))
	} else {
		copy(k, key)
	}

	h.ipadKey = make([]byte, bs)
	h.opadKey = make([]byte, bs)
	for i, v := range k {
		h.ipadKey[i] = v ^ ipadByte
		h.opadKey[i] = v ^ opadByte
	}
	securemem.Zero(k)

	h.inner.Write(h.ipadKey)
	return h
}

// Write absorbs message bytes.  It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// Sum appends the current MAC to b and returns the result.  The hasher keeps
// absorbing afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	innerSum := h.inner.Sum(nil)
	outer := h.newHash()
	outer.Write(h.opadKey)
	outer.Write(innerSum)
	return outer.Sum(b)
}

// Reset restores the hasher to its freshly keyed state.
func (h *Hasher) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipadKey)
}

// Destroy zeroises the derived pad keys.  The hasher is unusable afterwards.
func (h *Hasher) Destroy() {
	securemem.Zero(h.ipadKey)
	securemem.Zero(h.opadKey)
	h.inner.Reset()
}

// Size returns the MAC size in bytes.
func (h *Hasher) Size() int { return h.inner.Size() }

// BlockSize returns the underlying hash block size in bytes.
func (h *Hasher) BlockSize() int { return h.inner.BlockSize() }

var _ hash.Hash = (*Hasher)(nil)

// sum computes a one-shot MAC into out, which must be Size() bytes.
func sum(newHash func() hash.Hash, key, msg, out []byte) {
	h := New(newHash, key)
	h.Write(msg)
	mac := h.Sum(nil)
	copy(out, mac)
	h.Destroy()
	securemem.Zero(mac)
}
