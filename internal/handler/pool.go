package handler

import (
	"bytes"
	"sync"
)

const (
	pooledBufferSize = 4 << 10
	// A full catalog export can grow a buffer well past the usual response;
	// those are dropped instead of pinned in the pool.
	maxPooledBufferSize = 256 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, pooledBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
