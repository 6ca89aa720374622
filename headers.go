// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

// Headers is an ordered collection of header pairs. The zero value is
// an empty collection ready for use.
//
// Set replaces, Append does not: repeated headers such as Set-Cookie
// must go through Append so every pair survives.
type Headers struct {
	headers      []Header
	maxValueSize int
}

// NewHeaders creates a collection with room for capacity headers
// before the first reallocation.
func NewHeaders(capacity int) Headers {
	return Headers{headers: make([]Header, 0, capacity)}
}

func (h *Headers) find(key HeaderKey) int {
	for i := range h.headers {
		if h.headers[i].Key.Equal(key) {
			return i
		}
	}
	return -1
}

func (h *Headers) track(value HeaderValue) {
	if n := value.Len(); n > h.maxValueSize {
		h.maxValueSize = n
	}
}

// Set stores the value under the key. If a header with an equal key
// already exists it is removed first; the new pair always ends up at
// the end of the collection.
func (h *Headers) Set(key HeaderKey, value HeaderValue) {
	if i := h.find(key); i >= 0 {
		h.headers = append(h.headers[:i], h.headers[i+1:]...)
	}
	h.track(value)
	h.headers = append(h.headers, Header{Key: key, Value: value})
}

// Append adds the pair to the end of the collection without checking
// for an existing header with the same key.
func (h *Headers) Append(key HeaderKey, value HeaderValue) {
	h.track(value)
	h.headers = append(h.headers, Header{Key: key, Value: value})
}

// Remove drops the first header that matches the key.
func (h *Headers) Remove(key HeaderKey) {
	if i := h.find(key); i >= 0 {
		h.headers = append(h.headers[:i], h.headers[i+1:]...)
	}
}

// Get returns the value of the first header that matches the key.
func (h *Headers) Get(key HeaderKey) (HeaderValue, bool) {
	if i := h.find(key); i >= 0 {
		return h.headers[i].Value, true
	}
	return HeaderValue{}, false
}

// Len returns the number of headers in the collection.
func (h *Headers) Len() int {
	return len(h.headers)
}

// All returns the underlying header pairs in order. The slice is shared
// with the collection and must not be modified.
func (h *Headers) All() []Header {
	return h.headers
}

// MaxValueSize returns the size in bytes of the biggest value as text,
// so all values in the collection fit in a buffer of this size.
func (h *Headers) MaxValueSize() int {
	return h.maxValueSize
}

// AppendTo appends all header lines to dst.
func (h *Headers) AppendTo(dst []byte) []byte {
	for i := range h.headers {
		dst = h.headers[i].AppendTo(dst)
	}
	return dst
}

// Clone returns an independent copy of the collection.
func (h *Headers) Clone() Headers {
	n := Headers{
		headers:      make([]Header, len(h.headers)),
		maxValueSize: h.maxValueSize,
	}
	copy(n.headers, h.headers)
	return n
}
