// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

import "strconv"

// HeaderValue is the value part of a header. It holds either text or a
// raw number; a number is only rendered to text when the value gets
// serialized, so setting e.g. Content-Length does not allocate a string
// up front.
type HeaderValue struct {
	text    string
	number  int
	numeric bool
}

// StringValue wraps text as a header value.
func StringValue(s string) HeaderValue {
	return HeaderValue{text: s}
}

// NumberValue wraps a raw number as a header value.
func NumberValue(n int) HeaderValue {
	return HeaderValue{number: n, numeric: true}
}

// String returns the value as text.
func (v HeaderValue) String() string {
	if v.numeric {
		return strconv.Itoa(v.number)
	}
	return v.text
}

// Len returns the size in bytes of the value as text.
func (v HeaderValue) Len() int {
	if !v.numeric {
		return len(v.text)
	}
	n, w := v.number, 1
	if n < 0 {
		n = -n
		w++
	}
	for n > 9 {
		n /= 10
		w++
	}
	return w
}

// AppendTo appends the wire form of the value to dst.
func (v HeaderValue) AppendTo(dst []byte) []byte {
	if v.numeric {
		return strconv.AppendInt(dst, int64(v.number), 10)
	}
	return append(dst, v.text...)
}

// EqualIgnoreCase compares two values ignoring ASCII case. A numeric
// value never compares equal.
func (v HeaderValue) EqualIgnoreCase(other HeaderValue) bool {
	if v.numeric || other.numeric {
		return false
	}
	return caselessEqual(v.text, other.text)
}
