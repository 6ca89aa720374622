// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

import "strconv"

// Chunk is a single segment of a body sent with
// "Transfer-Encoding: chunked".
type Chunk struct {
	size int
	body []byte
}

// NewChunk creates a chunk with the given size and body.
func NewChunk(size int, body []byte) Chunk {
	return Chunk{size: size, body: body}
}

// Size returns the declared size of the chunk.
func (c *Chunk) Size() int {
	return c.size
}

// Body returns the payload of the chunk.
func (c *Chunk) Body() []byte {
	return c.body
}

// AppendTo appends the wire form of the chunk to dst:
// the size in hex, CRLF, the body, CRLF.
func (c *Chunk) AppendTo(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(c.size), 16)
	dst = append(dst, "\r\n"...)
	dst = append(dst, c.body...)
	return append(dst, "\r\n"...)
}
