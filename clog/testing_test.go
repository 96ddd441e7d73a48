package clog

import "bytes"

// withBuffer 把日志写入 buf，配合 Output: "buffer" 使用
func withBuffer(buf *bytes.Buffer) Option {
	return func(o *options) {
		o.buffer = buf
	}
}
