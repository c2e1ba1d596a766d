// Package securemem provides byte buffers for key material that are locked
// against paging where the operating system permits it and that are
// guaranteed to be zeroised before they are released.
package securemem

import (
	"fmt"
	"log"
	"sync"
)

// Zero sets all the bytes in b to 0x00.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Buffer is a fixed-size byte region holding sensitive data.  The backing
// pages are locked in physical memory on a best-effort basis and the contents
// are wiped when the buffer is destroyed.
//
// A Buffer is owned by exactly one holder and is not safe for concurrent use.
type Buffer struct {
	buf    []byte
	locked bool
	dead   bool
}

var warnOnce sync.Once

// New allocates a buffer of n bytes and attempts to lock its backing pages.
// When the lock fails, for example due to RLIMIT_MEMLOCK, a warning is logged
// once per process and the buffer proceeds unlocked.
func New(n int) *Buffer {
	b := &Buffer{buf: make([]byte, n)}
	if err := lockMemory(b.buf); err != nil {
		warnOnce.Do(func() {
			log.Printf("securemem: memory locking unavailable, "+
				"key material may be swapped to disk: %v", err)
		})
		return b
	}
	b.locked = true
	return b
}

// NewLocked allocates a buffer of n bytes whose backing pages must be locked.
// Unlike New it does not downgrade: when the lock fails the allocation is
// released and an error with kind ErrSecureAllocFailure is returned.
func NewLocked(n int) (*Buffer, error) {
	b := &Buffer{buf: make([]byte, n)}
	if err := lockMemory(b.buf); err != nil {
		str := fmt.Sprintf("unable to lock %d bytes: %v", n, err)
		return nil, makeError(ErrSecureAllocFailure, str)
	}
	b.locked = true
	return b, nil
}

// Bytes returns the backing byte slice.  The slice must not be retained past
// a call to Destroy.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Size returns the length of the buffer in bytes.
func (b *Buffer) Size() int {
	return len(b.buf)
}

// Locked reports whether the backing pages are locked in physical memory.
func (b *Buffer) Locked() bool {
	return b.locked
}

// Wipe overwrites the entire buffer with zero bytes.  The buffer remains
// usable afterwards.
func (b *Buffer) Wipe() {
	Zero(b.buf)
}

// Destroy wipes the buffer, unlocks its backing pages, and marks it dead.
// Destroy is idempotent.  Accessing the buffer contents after Destroy yields
// only zeros.
func (b *Buffer) Destroy() {
	if b.dead {
		return
	}
	Zero(b.buf)
	if b.locked {
		// Unlock failures leave the pages locked which is the safe
		// direction; nothing useful can be done with the error.
		_ = unlockMemory(b.buf)
		b.locked = false
	}
	b.dead = true
}
