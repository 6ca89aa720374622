// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

// Request is a single parsed or to-be-serialized HTTP request.
type Request struct {
	Method  Method
	Path    string
	Proto   string
	Headers Headers
	Body    []byte
}

// NewRequest creates a request from its parts.
func NewRequest(proto string, method Method, path string, headers Headers, body []byte) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Proto:   proto,
		Headers: headers,
		Body:    body,
	}
}

// Serialize returns the wire form of the request as a (head, body)
// pair. The head is "METHOD SP PATH SP PROTO CRLF", the header lines
// and the blank line that ends the head.
func (r *Request) Serialize() ([]byte, []byte) {
	method := r.Method.String()
	head := make([]byte, 0, len(method)+1+len(r.Path)+1+len(r.Proto)+4)

	head = append(head, method...)
	head = append(head, ' ')
	head = append(head, r.Path...)
	head = append(head, ' ')
	head = append(head, r.Proto...)
	head = append(head, "\r\n"...)

	head = r.Headers.AppendTo(head)

	head = append(head, "\r\n"...)
	return head, r.Body
}

// IsKeepAlive reports whether the request asks for a keep-alive
// connection.
func (r *Request) IsKeepAlive() bool {
	value, ok := r.Headers.Get("Connection")
	return ok && value.EqualIgnoreCase(StringValue("Keep-Alive"))
}

// SetPath replaces the request path, e.g. after rewriting a route
// prefix.
func (r *Request) SetPath(path string) {
	r.Path = path
}
