// Package pool recycles scratch encode buffers so hot paths that serialize
// elements (fingerprinting) do not allocate per element or per call.
package pool

import "sync"

const (
	// scratchDefaultSize covers typical fixed-width element encodings.
	scratchDefaultSize = 64

	// scratchMaxThreshold caps what the pool retains; buffers grown past it
	// are discarded to avoid pinning memory after one oversized element.
	scratchMaxThreshold = 64 * 1024
)

// Buffer is a reusable byte slice. Callers append through B and hand the
// Buffer back with PutScratch.
type Buffer struct {
	B []byte
}

// Reset empties the buffer, retaining its allocation.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

var scratchPool = sync.Pool{
	New: func() any {
		return &Buffer{B: make([]byte, 0, scratchDefaultSize)}
	},
}

// GetScratch retrieves an empty scratch buffer from the pool.
func GetScratch() *Buffer {
	b, _ := scratchPool.Get().(*Buffer)
	return b
}

// PutScratch returns a scratch buffer to the pool for reuse. Oversized
// buffers are dropped rather than retained.
func PutScratch(b *Buffer) {
	if b == nil || cap(b.B) > scratchMaxThreshold {
		return
	}

	b.Reset()
	scratchPool.Put(b)
}
