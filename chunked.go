// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

import (
	"bytes"

	"github.com/valyala/bytebufferpool"
)

const (
	maxUint = ^uint(0)
	maxInt  = int(maxUint >> 1)

	// maxChunkSize caps the declared size of a single chunk so that
	// accumulating another hex digit can never overflow.
	maxChunkSize = maxInt >> 4
)

// chunkedDecoder consumes a body in the chunked transfer-coding
// grammar, "<hex-size>[;ext]CRLF<size bytes>CRLF" repeated until a
// zero-size chunk, and appends the decoded chunk bodies to the message
// body buffer instead of retaining the chunks themselves.
//
// The size is accumulated digit by digit, so a size line split across
// feed calls resumes where it stopped. Chunk extensions are skipped;
// trailer lines between the zero chunk and the final CRLF are parsed
// like headers and appended to the message headers.
type chunkedDecoder struct {
	state     int8
	size      int
	remaining int
	digits    bool
	line      []byte
}

// feed consumes data until it runs out, the terminating CRLF is read,
// or the grammar is violated. It returns the number of bytes consumed;
// done reports the body as complete.
func (d *chunkedDecoder) feed(data []byte, body *bytebufferpool.ByteBuffer, headers *Headers) (n int, done bool, err error) {
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch d.state {
		case chunkStateSize:
			switch {
			case isHex(c):
				if d.size >= maxChunkSize {
					return i + 1, false, ErrMissingHeaders
				}
				d.size = d.size<<4 | int(hexValue(c))
				d.digits = true
			case c == '\r':
				if !d.digits {
					return i + 1, false, ErrMissingHeaders
				}
				d.state = chunkStateSizeLF
			case c == '\n':
				return i + 1, false, ErrMissingHeaders
			default:
				// chunk extension or padding between size and CRLF
				if !d.digits {
					return i + 1, false, ErrMissingHeaders
				}
				d.state = chunkStateExt
			}
		case chunkStateExt:
			switch c {
			case '\r':
				d.state = chunkStateSizeLF
			case '\n':
				return i + 1, false, ErrMissingHeaders
			}
		case chunkStateSizeLF:
			if c != '\n' {
				return i + 1, false, ErrMissingHeaders
			}
			if d.size == 0 {
				d.line = d.line[:0]
				d.state = chunkStateTrailerOrEnd
				continue
			}
			d.remaining = d.size
			d.state = chunkStateData
		case chunkStateData:
			m := len(data) - i
			if m > d.remaining {
				m = d.remaining
			}
			_, _ = body.Write(data[i : i+m])
			d.remaining -= m
			i += m - 1
			if d.remaining == 0 {
				d.state = chunkStateDataCR
			}
		case chunkStateDataCR:
			if c != '\r' {
				return i + 1, false, ErrMissingHeaders
			}
			d.state = chunkStateDataLF
		case chunkStateDataLF:
			if c != '\n' {
				return i + 1, false, ErrMissingHeaders
			}
			d.size = 0
			d.digits = false
			d.state = chunkStateSize
		case chunkStateTrailerOrEnd:
			d.line = append(d.line, c)
			if c != '\n' {
				continue
			}
			line := d.line
			d.line = d.line[:0]
			if len(line) < 2 || line[len(line)-2] != '\r' {
				return i + 1, false, ErrMissingHeaders
			}
			line = line[:len(line)-2]
			if len(line) == 0 {
				d.state = chunkStateComplete
				return i + 1, true, nil
			}
			if err := appendTrailer(line, headers); err != nil {
				return i + 1, false, err
			}
		case chunkStateComplete:
			return i, true, nil
		}
	}
	return len(data), false, nil
}

// appendTrailer parses a single trailer line, "Key: Value", and
// appends it to the message headers.
func appendTrailer(line []byte, headers *Headers) error {
	idx := bytes.IndexByte(line, ':')
	if idx < 0 {
		return ErrMissingHeaders
	}
	key := bytes.Trim(line[:idx], " ")
	if len(key) == 0 {
		return ErrMissingHeaders
	}
	value := bytes.Trim(line[idx+1:], " ")
	headers.Append(HeaderKey(key), StringValue(string(value)))
	return nil
}
