// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package mempool recycles the byte buffers the parsers use to carry
// the unconsumed tail of a message across feed calls, so that many
// short-lived half-packet buffers do not hit the garbage collector.
package mempool

import (
	"sync"
)

// Allocator allocates and recycles byte buffers.
type Allocator interface {
	Malloc(size int) *[]byte
	Realloc(pbuf *[]byte, size int) *[]byte
	Append(pbuf *[]byte, more ...byte) *[]byte
	AppendString(pbuf *[]byte, more string) *[]byte
	Free(pbuf *[]byte)
}

// MemPool is a sync.Pool backed Allocator. Buffers larger than its
// free limit are handed to the garbage collector instead of being
// pooled again.
type MemPool struct {
	bufSize  int
	freeSize int
	pool     *sync.Pool
}

// New creates a MemPool that hands out buffers of at least bufSize
// capacity and recycles buffers up to freeSize.
func New(bufSize, freeSize int) Allocator {
	if bufSize <= 0 {
		bufSize = 64
	}
	if freeSize <= 0 {
		freeSize = 64 * 1024
	}
	if freeSize < bufSize {
		freeSize = bufSize
	}

	mp := &MemPool{
		bufSize:  bufSize,
		freeSize: freeSize,
		pool:     &sync.Pool{},
	}
	mp.pool.New = func() interface{} {
		buf := make([]byte, bufSize)
		return &buf
	}
	return mp
}

// Malloc .
func (mp *MemPool) Malloc(size int) *[]byte {
	if size > mp.freeSize {
		buf := make([]byte, size)
		return &buf
	}
	pbuf := mp.pool.Get().(*[]byte)
	n := cap(*pbuf)
	if n < size {
		*pbuf = append((*pbuf)[:n], make([]byte, size-n)...)
	}
	*pbuf = (*pbuf)[:size]
	return pbuf
}

// Realloc .
func (mp *MemPool) Realloc(pbuf *[]byte, size int) *[]byte {
	if size <= cap(*pbuf) {
		*pbuf = (*pbuf)[:size]
		return pbuf
	}
	npbuf := mp.Malloc(size)
	copy(*npbuf, *pbuf)
	mp.Free(pbuf)
	return npbuf
}

// Append .
func (mp *MemPool) Append(pbuf *[]byte, more ...byte) *[]byte {
	*pbuf = append(*pbuf, more...)
	return pbuf
}

// AppendString .
func (mp *MemPool) AppendString(pbuf *[]byte, more string) *[]byte {
	*pbuf = append(*pbuf, more...)
	return pbuf
}

// Free .
func (mp *MemPool) Free(pbuf *[]byte) {
	if cap(*pbuf) > mp.freeSize {
		return
	}
	mp.pool.Put(pbuf)
}

// DefaultMemPool is the allocator behind the package-level functions.
var DefaultMemPool = New(1024, 1024*1024*1024)

// Malloc .
func Malloc(size int) *[]byte {
	return DefaultMemPool.Malloc(size)
}

// Realloc .
func Realloc(pbuf *[]byte, size int) *[]byte {
	return DefaultMemPool.Realloc(pbuf, size)
}

// Append .
func Append(pbuf *[]byte, more ...byte) *[]byte {
	return DefaultMemPool.Append(pbuf, more...)
}

// AppendString .
func AppendString(pbuf *[]byte, more string) *[]byte {
	return DefaultMemPool.AppendString(pbuf, more)
}

// Free .
func Free(pbuf *[]byte) {
	DefaultMemPool.Free(pbuf)
}
