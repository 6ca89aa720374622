// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package httparse provides the HTTP/1.x message model together with
// incremental parsers that rebuild requests and responses from data
// arriving in arbitrarily sized, arbitrarily split chunks, the way
// non-blocking reads deliver it.
//
// A parser instance parses exactly one message: Feed it data as it
// arrives, and once Feed reports the message as done, call Finish to
// get the parsed value. Reset starts the next message on the same
// instance.
package httparse

import (
	"strconv"

	"github.com/Lol3rrr/stream-httparse/mempool"
	"github.com/valyala/bytebufferpool"
)

// DefaultBufferSize is the buffer capacity used when a parser is
// created with a capacity <= 0.
const DefaultBufferSize = 2048

// parser is the resumable state machine shared by ReqParser and
// RespParser. It scans each Feed slice exactly once: completed tokens
// are materialized at their boundary, and only the unconsumed tail of
// an in-progress token is kept across calls, cached through the
// mempool.
type parser struct {
	isClient bool

	state int8
	err   error

	// cached holds the unconsumed tail when a Feed call ends mid-token.
	cached   *[]byte
	capacity int

	method     Method
	path       string
	proto      string
	statusCode StatusCode

	headers   Headers
	headerKey string

	contentLength int
	chunked       bool
	chunk         chunkedDecoder
	body          *bytebufferpool.ByteBuffer
}

// feed scans as much of data as the current state allows.
//
// consumed is len(data) unless the message ends strictly inside data;
// the remaining bytes then belong to whatever follows this message,
// e.g. a pipelined next message, and are left untouched. Once the
// parser is in a terminal state, feed is a no-op returning (true, 0).
func (p *parser) feed(data []byte) (done bool, consumed int) {
	switch p.state {
	case stateDone, stateFailed:
		return true, 0
	}
	if len(data) == 0 {
		return false, 0
	}

	offset := 0
	if p.cached != nil {
		offset = len(*p.cached)
	}
	if offset > 0 {
		p.cached = mempool.Append(p.cached, data...)
		data = *p.cached
	}

	var start = 0
	var c byte
	for i := offset; i < len(data); i++ {
		c = data[i]
		switch p.state {
		case stateMethodBefore:
			if !isValidMethodChar(c) {
				return true, p.terminate(i+1, offset, ErrMissingMethod)
			}
			start = i
			p.state = stateMethod
		case stateMethod:
			if c == ' ' {
				method, ok := ParseMethod(string(data[start:i]))
				if !ok {
					return true, p.terminate(i+1, offset, ErrMissingMethod)
				}
				p.method = method
				start = i + 1
				p.state = statePathBefore
				continue
			}
			if !isValidMethodChar(c) {
				return true, p.terminate(i+1, offset, ErrMissingMethod)
			}
		case statePathBefore:
			switch c {
			case ' ':
			case '\r', '\n':
				return true, p.terminate(i+1, offset, ErrMissingPath)
			default:
				start = i
				p.state = statePath
			}
		case statePath:
			switch c {
			case ' ':
				p.path = string(data[start:i])
				start = i + 1
				p.state = stateProtoBefore
			case '\r', '\n':
				return true, p.terminate(i+1, offset, ErrMissingProtocol)
			}
		case stateProtoBefore:
			switch c {
			case ' ':
			case '\r', '\n':
				return true, p.terminate(i+1, offset, ErrMissingProtocol)
			default:
				start = i
				p.state = stateProto
			}
		case stateProto:
			switch c {
			case ' ':
				if p.proto == "" {
					p.proto = string(data[start:i])
				}
			case '\r':
				if p.proto == "" {
					p.proto = string(data[start:i])
				}
				p.state = stateProtoLF
			case '\n':
				return true, p.terminate(i+1, offset, ErrMissingProtocol)
			}
		case stateProtoLF:
			if c != '\n' {
				return true, p.terminate(i+1, offset, ErrMissingProtocol)
			}
			start = i + 1
			p.state = stateHeaderKeyBefore
		case stateRespProtoBefore:
			switch c {
			case ' ':
			case '\r', '\n':
				return true, p.terminate(i+1, offset, ErrMissingProtocol)
			default:
				start = i
				p.state = stateRespProto
			}
		case stateRespProto:
			switch c {
			case ' ':
				p.proto = string(data[start:i])
				start = i + 1
				p.state = stateStatusCodeBefore
			case '\r', '\n':
				return true, p.terminate(i+1, offset, ErrMissingStatusCode)
			}
		case stateStatusCodeBefore:
			switch {
			case c == ' ':
			case c == '\r' || c == '\n':
				return true, p.terminate(i+1, offset, ErrMissingStatusCode)
			case isNum(c):
				start = i
				p.state = stateStatusCode
			default:
				return true, p.terminate(i+1, offset, ErrInvalidStatusCode)
			}
		case stateStatusCode:
			switch {
			case c == ' ' || c == '\r':
				if i-start != 3 {
					return true, p.terminate(i+1, offset, ErrInvalidStatusCode)
				}
				statusCode, ok := ParseStatusCode(string(data[start:i]))
				if !ok {
					return true, p.terminate(i+1, offset, ErrInvalidStatusCode)
				}
				p.statusCode = statusCode
				start = i + 1
				if c == ' ' {
					p.state = stateStatusReason
				} else {
					p.state = stateStatusLF
				}
			case isNum(c):
			default:
				return true, p.terminate(i+1, offset, ErrInvalidStatusCode)
			}
		case stateStatusReason:
			// The reason phrase is not part of the message model, only
			// the CRLF ending the line matters.
			if c == '\r' {
				start = i + 1
				p.state = stateStatusLF
			}
		case stateStatusLF:
			if c != '\n' {
				return true, p.terminate(i+1, offset, ErrMissingStatusCode)
			}
			start = i + 1
			p.state = stateHeaderKeyBefore
		case stateHeaderKeyBefore:
			switch {
			case c == '\r':
				start = i + 1
				p.state = stateHeaderOverLF
			case c == ' ':
				if p.headers.Len() == 0 {
					return true, p.terminate(i+1, offset, ErrMissingHeaders)
				}
			case isToken(c):
				start = i
				p.state = stateHeaderKey
			default:
				return true, p.terminate(i+1, offset, ErrMissingHeaders)
			}
		case stateHeaderKey:
			switch {
			case c == ':':
				if p.headerKey == "" {
					p.headerKey = string(data[start:i])
				}
				start = i + 1
				p.state = stateHeaderValueBefore
			case c == ' ':
				if p.headerKey == "" {
					p.headerKey = string(data[start:i])
				}
			case isToken(c):
				// a space ends the key, only ':' may follow it
				if p.headerKey != "" {
					return true, p.terminate(i+1, offset, ErrMissingHeaders)
				}
			default:
				// includes CR and LF: a header line without a colon
				return true, p.terminate(i+1, offset, ErrMissingHeaders)
			}
		case stateHeaderValueBefore:
			switch c {
			case ' ':
			case '\r':
				p.commitHeader("")
				start = i + 1
				p.state = stateHeaderValueLF
			case '\n':
				return true, p.terminate(i+1, offset, ErrMissingHeaders)
			default:
				start = i
				p.state = stateHeaderValue
			}
		case stateHeaderValue:
			switch c {
			case '\r':
				end := i
				for end > start && data[end-1] == ' ' {
					end--
				}
				p.commitHeader(string(data[start:end]))
				start = i + 1
				p.state = stateHeaderValueLF
			case '\n':
				return true, p.terminate(i+1, offset, ErrMissingHeaders)
			}
		case stateHeaderValueLF:
			if c != '\n' {
				return true, p.terminate(i+1, offset, ErrMissingHeaders)
			}
			start = i + 1
			p.state = stateHeaderKeyBefore
		case stateHeaderOverLF:
			if c != '\n' {
				return true, p.terminate(i+1, offset, ErrMissingHeaders)
			}
			start = i + 1
			p.selectBodyMode()
			switch {
			case p.chunked:
				p.state = stateBodyChunked
			case p.contentLength > 0:
				p.state = stateBodyContentLength
			default:
				return true, p.terminate(i+1, offset, nil)
			}
		case stateBodyContentLength:
			n := len(data) - i
			if n > p.contentLength {
				n = p.contentLength
			}
			_, _ = p.body.Write(data[i : i+n])
			p.contentLength -= n
			start = i + n
			i = start - 1
			if p.contentLength == 0 {
				return true, p.terminate(start, offset, nil)
			}
		case stateBodyChunked:
			n, finished, err := p.chunk.feed(data[i:], p.body, &p.headers)
			if err != nil {
				return true, p.terminate(i+n, offset, err)
			}
			start = i + n
			i = start - 1
			if finished {
				return true, p.terminate(start, offset, nil)
			}
		}
	}

	left := len(data) - start
	if left > 0 {
		if p.cached == nil {
			size := left
			if size < p.capacity {
				size = p.capacity
			}
			p.cached = mempool.Malloc(size)
			*p.cached = (*p.cached)[:left]
			copy(*p.cached, data[start:])
		} else if start > 0 {
			old := p.cached
			p.cached = mempool.Malloc(left)
			copy(*p.cached, data[start:])
			mempool.Free(old)
		}
	} else if p.cached != nil {
		mempool.Free(p.cached)
		p.cached = nil
	}

	return false, len(data) - offset
}

// terminate moves the parser into one of the two terminal states and
// returns the consumed count for the current feed call. end is the
// index of the first byte past the message within the concatenated
// cached+new data.
func (p *parser) terminate(end, offset int, err error) int {
	if err != nil {
		p.err = err
		p.state = stateFailed
		p.releaseBody()
	} else {
		p.state = stateDone
	}
	if p.cached != nil {
		mempool.Free(p.cached)
		p.cached = nil
	}
	return end - offset
}

func (p *parser) commitHeader(value string) {
	p.headers.Append(HeaderKey(p.headerKey), StringValue(value))
	p.headerKey = ""
}

// selectBodyMode inspects the parsed headers once the blank line has
// been seen: Transfer-Encoding "chunked" wins over Content-Length, a
// Content-Length that does not parse as a non-negative number counts
// as absent.
func (p *parser) selectBodyMode() {
	p.contentLength = 0
	if value, ok := p.headers.Get("Transfer-Encoding"); ok {
		if caselessEqual(value.String(), "chunked") {
			p.chunked = true
			p.body = bytebufferpool.Get()
			return
		}
	}
	if value, ok := p.headers.Get("Content-Length"); ok {
		length, err := strconv.Atoi(value.String())
		if err == nil && length > 0 {
			p.contentLength = length
			p.body = bytebufferpool.Get()
		}
	}
}

// finishErr maps the state the parser got stuck in to the stage that
// never completed.
func (p *parser) finishErr() error {
	switch p.state {
	case stateFailed:
		return p.err
	case stateMethodBefore, stateMethod:
		return ErrMissingMethod
	case statePathBefore, statePath:
		return ErrMissingPath
	case stateProtoBefore, stateProto, stateProtoLF, stateRespProtoBefore, stateRespProto:
		return ErrMissingProtocol
	case stateStatusCodeBefore, stateStatusCode, stateStatusReason, stateStatusLF:
		return ErrMissingStatusCode
	}
	return ErrMissingHeaders
}

// takeBody copies the accumulated body out of the pooled buffer and
// releases the buffer.
func (p *parser) takeBody() []byte {
	if p.body == nil {
		return nil
	}
	body := make([]byte, len(p.body.B))
	copy(body, p.body.B)
	p.releaseBody()
	return body
}

func (p *parser) releaseBody() {
	if p.body != nil {
		bytebufferpool.Put(p.body)
		p.body = nil
	}
}

func (p *parser) reset(state int8) {
	if p.cached != nil {
		mempool.Free(p.cached)
		p.cached = nil
	}
	p.releaseBody()
	*p = parser{
		isClient: p.isClient,
		state:    state,
		capacity: p.capacity,
	}
}

// ReqParser is an incremental parser for a single HTTP request.
type ReqParser struct {
	c   parser
	req *Request
}

// NewReqParser creates a request parser whose internal buffer starts
// out with the given capacity. A capacity <= 0 falls back to
// DefaultBufferSize.
func NewReqParser(capacity int) *ReqParser {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &ReqParser{
		c: parser{
			state:    stateMethodBefore,
			capacity: capacity,
		},
	}
}

// Feed hands the next slice of received data to the parser. It reports
// whether the request is complete and how many bytes of data belong to
// it; bytes past the end of the request are never consumed.
func (p *ReqParser) Feed(data []byte) (done bool, consumed int) {
	return p.c.feed(data)
}

// Finish materializes the parsed request. It returns the stored parse
// error for malformed input, and the stage that never completed when
// the request is still unfinished.
func (p *ReqParser) Finish() (*Request, error) {
	if p.req != nil {
		return p.req, nil
	}
	if p.c.state != stateDone {
		return nil, p.c.finishErr()
	}
	p.req = &Request{
		Method:  p.c.method,
		Path:    p.c.path,
		Proto:   p.c.proto,
		Headers: p.c.headers,
		Body:    p.c.takeBody(),
	}
	return p.req, nil
}

// Reset makes the parser ready for the next request, releasing all
// buffers held for the previous one.
func (p *ReqParser) Reset() {
	p.c.reset(stateMethodBefore)
	p.req = nil
}
