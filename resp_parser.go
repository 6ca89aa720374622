// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

// RespParser is an incremental parser for a single HTTP response.
type RespParser struct {
	c    parser
	resp *Response
}

// NewRespParser creates a response parser whose internal buffer starts
// out with the given capacity. A capacity <= 0 falls back to
// DefaultBufferSize.
func NewRespParser(capacity int) *RespParser {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &RespParser{
		c: parser{
			isClient: true,
			state:    stateRespProtoBefore,
			capacity: capacity,
		},
	}
}

// Feed hands the next slice of received data to the parser. It reports
// whether the response is complete and how many bytes of data belong
// to it; bytes past the end of the response are never consumed.
func (p *RespParser) Feed(data []byte) (done bool, consumed int) {
	return p.c.feed(data)
}

// Finish materializes the parsed response. It returns the stored parse
// error for malformed input, and the stage that never completed when
// the response is still unfinished.
func (p *RespParser) Finish() (*Response, error) {
	if p.resp != nil {
		return p.resp, nil
	}
	if p.c.state != stateDone {
		return nil, p.c.finishErr()
	}
	p.resp = &Response{
		StatusCode: p.c.statusCode,
		Proto:      p.c.proto,
		Headers:    p.c.headers,
		Body:       p.c.takeBody(),
	}
	return p.resp, nil
}

// Reset makes the parser ready for the next response, releasing all
// buffers held for the previous one.
func (p *RespParser) Reset() {
	p.c.reset(stateRespProtoBefore)
	p.resp = nil
}
