package handler

import (
	"bytes"
	"sync"
)

// encodeBufferPool recycles buffers across JSON responses. Most payloads are
// a few hundred bytes, so buffers start at 512 and grow as needed.
var encodeBufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return encodeBufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	encodeBufferPool.Put(buf)
}
