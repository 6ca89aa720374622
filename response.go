// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

// Response is a single parsed or to-be-serialized HTTP response.
type Response struct {
	StatusCode StatusCode
	Proto      string
	Headers    Headers
	Body       []byte
}

// NewResponse creates a response from its parts.
func NewResponse(proto string, statusCode StatusCode, headers Headers, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Proto:      proto,
		Headers:    headers,
		Body:       body,
	}
}

// Serialize returns the wire form of the response as a (head, body)
// pair. The status line carries the code together with its reason
// phrase, e.g. "HTTP/1.1 200 OK".
func (r *Response) Serialize() ([]byte, []byte) {
	statusCode := r.StatusCode.String()
	head := make([]byte, 0, len(r.Proto)+1+len(statusCode)+4)

	head = append(head, r.Proto...)
	head = append(head, ' ')
	head = append(head, statusCode...)
	head = append(head, "\r\n"...)

	head = r.Headers.AppendTo(head)

	head = append(head, "\r\n"...)
	return head, r.Body
}

// SetBody replaces the body and updates the Content-Length header to
// the new length.
func (r *Response) SetBody(body []byte) {
	r.Body = body
	r.Headers.Set("Content-Length", NumberValue(len(body)))
}

// IsChunked reports whether the response is sent with
// "Transfer-Encoding: chunked".
func (r *Response) IsChunked() bool {
	value, ok := r.Headers.Get("Transfer-Encoding")
	return ok && value.EqualIgnoreCase(StringValue("chunked"))
}
