// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

// HeaderKey is the name part of a header. Keys compare
// ASCII-case-insensitive, so "content-length" and "Content-Length"
// address the same header while keeping their original spelling for
// serialization.
type HeaderKey string

// Equal compares two keys ignoring ASCII case.
func (k HeaderKey) Equal(other HeaderKey) bool {
	return caselessEqual(string(k), string(other))
}

// AppendTo appends the wire form of the key to dst.
func (k HeaderKey) AppendTo(dst []byte) []byte {
	return append(dst, k...)
}

// Header is a single key-value pair.
type Header struct {
	Key   HeaderKey
	Value HeaderValue
}

// AppendTo appends the full header line, "Key: Value\r\n", to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = h.Key.AppendTo(dst)
	dst = append(dst, ": "...)
	dst = h.Value.AppendTo(dst)
	return append(dst, "\r\n"...)
}

// caselessEqual reports whether a and b are equal under ASCII case
// folding, without building lowercased copies.
func caselessEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
