package iso8583

import "sync"

const (
	composeBufferSize = 512
	maxPooledBuffer   = 8192
)

// composeBuffers recycles the scratch space Compose assembles a message in.
// Messages themselves are never pooled; they escape to the caller.
var composeBuffers = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, composeBufferSize)
		return &buf
	},
}

func getBuffer() *[]byte {
	bp := composeBuffers.Get().(*[]byte)
	*bp = (*bp)[:0]
	return bp
}

func putBuffer(bp *[]byte) {
	if cap(*bp) > maxPooledBuffer {
		return
	}
	composeBuffers.Put(bp)
}
