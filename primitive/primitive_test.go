package primitive

import (
	"bytes"
	"testing"
)

// recorder is a test primitive that replays every byte it is handed into a
// transcript so driver chunking can be verified byte-for-byte.
type recorder struct {
	blockSize  int
	transcript bytes.Buffer
	blockCalls []int
	lastCalls  []int
}

func (r *recorder) BlockSize() int { return r.blockSize }

func (r *recorder) ProcessBlocks(p []byte) {
	if len(p) == 0 || len(p)%r.blockSize != 0 {
		panic("process blocks with bad length")
	}
	r.blockCalls = append(r.blockCalls, len(p))
	r.transcript.Write(p)
}

func (r *recorder) ProcessLast(p []byte) {
	if len(p) >= r.blockSize {
		panic("process last with a full block")
	}
	r.lastCalls = append(r.lastCalls, len(p))
	r.transcript.Write(p)
}

// alignedRecorder additionally demands 32-byte aligned buffers.
type alignedRecorder struct {
	recorder
}

func (r *alignedRecorder) BufferAlignment() int  { return 32 }
func (r *alignedRecorder) AdditionalBlocks() int { return 1 }

// TestDriverChunking ensures the driver delivers every absorbed byte exactly
// once, in order, regardless of how the input is split across writes.
func TestDriverChunking(t *testing.T) {
	t.Parallel()

	msg := make([]byte, 1000)
	for i := range msg {
		msg[i] = byte(i * 7)
	}

	splits := [][]int{
		{1000},
		{1, 999},
		{63, 1, 64, 872},
		{64, 64, 64, 808},
		{10, 10, 10, 970},
		{999, 1},
		{500, 500},
	}
	for _, split := range splits {
		rec := &recorder{blockSize: 64}
		d := NewDriver(rec)
		rest := msg
		for _, n := range split {
			d.Write(rest[:n])
			rest = rest[n:]
			if d.Buffered() >= 64 {
				t.Fatalf("split %v: buffered %d >= block size", split,
					d.Buffered())
			}
		}
		d.Finalize()
		if !bytes.Equal(rec.transcript.Bytes(), msg) {
			t.Fatalf("split %v: transcript does not match input", split)
		}
		if len(rec.lastCalls) != 1 {
			t.Fatalf("split %v: ProcessLast called %d times", split,
				len(rec.lastCalls))
		}
		if want := len(msg) % 64; rec.lastCalls[0] != want {
			t.Fatalf("split %v: last block had %d bytes, want %d", split,
				rec.lastCalls[0], want)
		}
	}
}

// TestDriverEmptyMessage ensures finalizing with no input routes an empty
// slice through ProcessLast.
func TestDriverEmptyMessage(t *testing.T) {
	t.Parallel()

	rec := &recorder{blockSize: 128}
	d := NewDriver(rec)
	d.Finalize()
	if len(rec.blockCalls) != 0 {
		t.Fatal("ProcessBlocks called for empty message")
	}
	if len(rec.lastCalls) != 1 || rec.lastCalls[0] != 0 {
		t.Fatalf("ProcessLast calls: %v", rec.lastCalls)
	}
}

// TestDriverExactBlocks ensures a message that is an exact multiple of the
// block size still finalizes through an empty last block.
func TestDriverExactBlocks(t *testing.T) {
	t.Parallel()

	rec := &recorder{blockSize: 64}
	d := NewDriver(rec)
	msg := bytes.Repeat([]byte{0xab}, 256)
	d.Write(msg)
	d.Finalize()
	if !bytes.Equal(rec.transcript.Bytes(), msg) {
		t.Fatal("transcript does not match input")
	}
	if len(rec.lastCalls) != 1 || rec.lastCalls[0] != 0 {
		t.Fatalf("ProcessLast calls: %v", rec.lastCalls)
	}
}

// TestDriverAlignment ensures all buffers handed to an alignment-demanding
// primitive satisfy the contract even when the caller's slice does not.
func TestDriverAlignment(t *testing.T) {
	t.Parallel()

	rec := &alignedRecorder{recorder{blockSize: 64}}
	d := NewDriver(rec)

	// Offset the input so its base pointer is misaligned.
	backing := make([]byte, 1024+1)
	msg := backing[1:]
	for i := range msg {
		msg[i] = byte(i)
	}
	d.Write(msg)
	d.Finalize()
	if !bytes.Equal(rec.transcript.Bytes(), msg) {
		t.Fatal("transcript does not match input")
	}
}

// TestDriverReset ensures a reset driver produces a fresh transcript.
func TestDriverReset(t *testing.T) {
	t.Parallel()

	rec := &recorder{blockSize: 64}
	d := NewDriver(rec)
	d.Write([]byte("leftover"))
	d.Reset()
	rec.transcript.Reset()
	d.Write([]byte("fresh"))
	d.Finalize()
	if got := rec.transcript.String(); got != "fresh" {
		t.Fatalf("transcript after reset: %q", got)
	}
}

// TestDriverWriteAfterFinalizePanics ensures a consumed session refuses
// further input.
func TestDriverWriteAfterFinalizePanics(t *testing.T) {
	t.Parallel()

	d := NewDriver(&recorder{blockSize: 64})
	d.Finalize()
	defer func() {
		if recover() == nil {
			t.Fatal("write after finalize did not panic")
		}
	}()
	d.Write([]byte{1})
}

// TestDriverReadFrom ensures streaming from a reader matches a single write.
func TestDriverReadFrom(t *testing.T) {
	t.Parallel()

	msg := make([]byte, 100000)
	for i := range msg {
		msg[i] = byte(i % 251)
	}
	rec := &recorder{blockSize: 64}
	d := NewDriver(rec)
	n, err := d.ReadFrom(bytes.NewReader(msg))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if n != int64(len(msg)) {
		t.Fatalf("ReadFrom absorbed %d bytes, want %d", n, len(msg))
	}
	d.Finalize()
	if !bytes.Equal(rec.transcript.Bytes(), msg) {
		t.Fatal("transcript does not match input")
	}
}
