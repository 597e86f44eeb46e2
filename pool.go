package kaleido

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

// Format renders node into a freshly allocated byte slice.
func Format(node Node, opts FormatOptions) []byte {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	buf.Reset()
	node.Format(buf, "", opts)
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}
