// Package pool provides pooled byte buffers for snapshot encoding.
package pool

import "sync"

const (
	// SnapshotBufferDefaultSize is the initial capacity of pooled buffers.
	SnapshotBufferDefaultSize = 1024 * 16 // 16KiB

	// SnapshotBufferMaxThreshold is the capacity above which a buffer is
	// dropped instead of returned to the pool, so one oversized snapshot
	// does not pin memory forever.
	SnapshotBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte slice with a bytes.Buffer-like surface.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer has capacity for n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}
	grown := make([]byte, len(bb.B), len(bb.B)+n)
	copy(grown, bb.B)
	bb.B = grown
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var snapshotBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(SnapshotBufferDefaultSize)
	},
}

// GetSnapshotBuffer returns a reset ByteBuffer from the pool.
func GetSnapshotBuffer() *ByteBuffer {
	bb, _ := snapshotBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutSnapshotBuffer returns a ByteBuffer to the pool unless it grew past
// SnapshotBufferMaxThreshold.
func PutSnapshotBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > SnapshotBufferMaxThreshold {
		return
	}
	snapshotBufferPool.Put(bb)
}
