// Package primitive provides the block-oriented driver shared by every
// hashing primitive in the module.
//
// A primitive consumes input in fixed-size blocks and applies its own
// padding or finalisation rule to the final partial block.  The Driver is
// primitive-agnostic: it owns the partial-block buffer, feeds the primitive
// whole blocks as they become available, and routes the remainder through the
// primitive's last-block path exactly once.
package primitive

import (
	"io"
	"unsafe"
)

// Block is the contract a block-oriented primitive satisfies.  The driver
// never passes ProcessBlocks a slice whose length is not a multiple of the
// block size, and never passes ProcessLast a slice as long as a block.
//
// Implementations track their own message-length or block counters across
// calls; both operations are pure state transformations with no I/O.
type Block interface {
	// BlockSize returns the primitive block size in bytes.
	BlockSize() int

	// ProcessBlocks consumes len(p) bytes of input where len(p) is a
	// nonzero multiple of the block size.
	ProcessBlocks(p []byte)

	// ProcessLast consumes the final partial block, 0 <= len(p) <
	// BlockSize(), applying the primitive's padding rule.
	ProcessLast(p []byte)
}

// Aligner is optionally implemented by primitives whose block-processing
// implementation requires input buffers at a stricter alignment than Go
// guarantees, for example SIMD cores.  The driver copies input through an
// aligned scratch buffer whenever the inbound slice does not satisfy the
// contract.
type Aligner interface {
	// BufferAlignment returns the required buffer alignment in bytes.
	// It must be a power of two.
	BufferAlignment() int

	// AdditionalBlocks returns how many scratch blocks beyond the message
	// the implementation needs.
	AdditionalBlocks() int
}

// Driver orchestrates absorption of a byte stream into a Block primitive.
// It implements io.Writer and io.ReaderFrom.  A Driver is not safe for
// concurrent use.
type Driver struct {
	prim      Block
	blockSize int
	align     int
	buf       []byte // one block of stashed partial input
	scratch   []byte // aligned copy area, allocated on first use
	nx        int
	finalized bool
}

// NewDriver returns a driver feeding the given primitive.
func NewDriver(p Block) *Driver {
	d := &Driver{
		prim:      p,
		blockSize: p.BlockSize(),
		align:     1,
	}
	if a, ok := p.(Aligner); ok {
		d.align = a.BufferAlignment()
	}
	d.buf = d.alignedBlocks(1)
	return d
}

// alignedBlocks allocates n blocks at the primitive's required alignment.
func (d *Driver) alignedBlocks(n int) []byte {
	extra := 0
	if a, ok := d.prim.(Aligner); ok {
		extra = a.AdditionalBlocks()
	}
	size := (n + extra) * d.blockSize
	if d.align <= 1 {
		return make([]byte, size)[:n*d.blockSize]
	}
	raw := make([]byte, size+d.align-1)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & uintptr(d.align-1)); rem != 0 {
		off = d.align - rem
	}
	return raw[off : off+n*d.blockSize]
}

// aligned reports whether the slice satisfies the primitive's alignment
// contract.
func (d *Driver) aligned(p []byte) bool {
	if d.align <= 1 || len(p) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&p[0]))&uintptr(d.align-1) == 0
}

// processBlocks hands whole blocks to the primitive, copying through the
// scratch area when the inbound slice violates the alignment contract.
func (d *Driver) processBlocks(p []byte) {
	if d.aligned(p) {
		d.prim.ProcessBlocks(p)
		return
	}
	const scratchBlocks = 8
	if d.scratch == nil {
		d.scratch = d.alignedBlocks(scratchBlocks)
	}
	for len(p) > 0 {
		n := copy(d.scratch, p)
		n -= n % d.blockSize
		d.prim.ProcessBlocks(d.scratch[:n])
		p = p[n:]
	}
}

// Write absorbs p into the primitive.  It buffers any trailing partial block
// and never returns an error.
func (d *Driver) Write(p []byte) (int, error) {
	if d.finalized {
		panic("primitive: write after finalize")
	}
	n := len(p)
	bs := d.blockSize
	if d.nx > 0 {
		c := copy(d.buf[d.nx:], p)
		d.nx += c
		p = p[c:]
		if d.nx == bs {
			d.prim.ProcessBlocks(d.buf)
			d.nx = 0
		}
	}
	if len(p) >= bs {
		nn := len(p) - len(p)%bs
		d.processBlocks(p[:nn])
		p = p[nn:]
	}
	if len(p) > 0 {
		d.nx = copy(d.buf, p)
	}
	return n, nil
}

// Buffered returns the number of stashed partial-block bytes, always in
// [0, BlockSize).
func (d *Driver) Buffered() int {
	return d.nx
}

// Finalize routes the stashed partial block through the primitive's
// last-block path.  The session is consumed: further writes panic until
// Reset is called.
func (d *Driver) Finalize() {
	if d.finalized {
		panic("primitive: finalize called twice")
	}
	d.prim.ProcessLast(d.buf[:d.nx])
	d.nx = 0
	d.finalized = true
}

// Clone returns a new driver feeding p that carries over the stashed
// partial-block bytes.  It is used to finalize a copy of a session while the
// original keeps absorbing.
func (d *Driver) Clone(p Block) *Driver {
	nd := NewDriver(p)
	nd.nx = copy(nd.buf, d.buf[:d.nx])
	nd.finalized = d.finalized
	return nd
}

// Reset discards all buffered input and makes the driver reusable.  The
// primitive's own state reset is the primitive's responsibility.
func (d *Driver) Reset() {
	d.nx = 0
	d.finalized = false
}

// ReadFrom absorbs r until EOF, streaming through a block-multiple chunk
// buffer.  It returns the number of bytes absorbed.
func (d *Driver) ReadFrom(r io.Reader) (int64, error) {
	chunk := make([]byte, 256*d.blockSize)
	var total int64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			total += int64(n)
			d.Write(chunk[:n])
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
