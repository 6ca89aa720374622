// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

// Method is one of the HTTP request methods defined by
// RFC 2616 Section 5.1.1.
type Method int8

const (
	// MethodOptions requests the communication options available
	// for a given resource.
	MethodOptions Method = iota
	// MethodGet retrieves the specified resource.
	MethodGet
	// MethodHead is identical to GET, but the server is not
	// required to return a response body.
	MethodHead
	// MethodPost posts data to the server.
	MethodPost
	// MethodPut stores the supplied body under the given resource URI.
	MethodPut
	// MethodDelete requests that the resource is deleted.
	MethodDelete
	// MethodTrace invokes a remote application-layer loopback.
	MethodTrace
	// MethodConnect is reserved for use with tunneling proxies.
	MethodConnect
)

var methodValues = map[string]Method{
	"OPTIONS": MethodOptions,
	"GET":     MethodGet,
	"HEAD":    MethodHead,
	"POST":    MethodPost,
	"PUT":     MethodPut,
	"DELETE":  MethodDelete,
	"TRACE":   MethodTrace,
	"CONNECT": MethodConnect,
}

// ParseMethod matches the raw method token against the known methods.
// The token is matched exactly, so lowercased methods are rejected.
func ParseMethod(raw string) (Method, bool) {
	m, ok := methodValues[raw]
	return m, ok
}

// String returns the wire form of the method.
func (m Method) String() string {
	switch m {
	case MethodOptions:
		return "OPTIONS"
	case MethodGet:
		return "GET"
	case MethodHead:
		return "HEAD"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	case MethodTrace:
		return "TRACE"
	case MethodConnect:
		return "CONNECT"
	}
	return ""
}
