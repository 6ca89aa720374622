// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

const (
	// terminal
	stateFailed int8 = iota

	// state: request line
	stateMethodBefore
	stateMethod
	statePathBefore
	statePath
	stateProtoBefore
	stateProto
	stateProtoLF

	// state: status line
	stateRespProtoBefore
	stateRespProto
	stateStatusCodeBefore
	stateStatusCode
	stateStatusReason
	stateStatusLF

	// state: headers
	stateHeaderKeyBefore
	stateHeaderKey
	stateHeaderValueBefore
	stateHeaderValue
	stateHeaderValueLF
	stateHeaderOverLF

	// state: body
	stateBodyContentLength
	stateBodyChunked

	// terminal
	stateDone
)

// chunked body sub-machine
const (
	chunkStateSize int8 = iota
	chunkStateExt
	chunkStateSizeLF
	chunkStateData
	chunkStateDataCR
	chunkStateDataLF
	chunkStateTrailerOrEnd
	chunkStateComplete
)
