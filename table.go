// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

var (
	tokenCharMap       [256]bool
	numCharMap         [256]bool
	hexCharMap         [256]bool
	hexValueMap        [256]int8
	validMethodCharMap [256]bool
)

func init() {
	for i := range hexValueMap {
		hexValueMap[i] = -1
	}

	for c := byte('0'); c <= '9'; c++ {
		numCharMap[c] = true
		tokenCharMap[c] = true
		hexCharMap[c] = true
		hexValueMap[c] = int8(c - '0')
	}
	for c := byte('a'); c <= 'f'; c++ {
		hexCharMap[c] = true
		hexCharMap[c-('a'-'A')] = true
		hexValueMap[c] = int8(c - 'a' + 10)
		hexValueMap[c-('a'-'A')] = int8(c - 'a' + 10)
	}
	for c := byte('a'); c <= 'z'; c++ {
		tokenCharMap[c] = true
		tokenCharMap[c-('a'-'A')] = true
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		tokenCharMap[c] = true
	}

	for m := range methodValues {
		for i := 0; i < len(m); i++ {
			validMethodCharMap[m[i]] = true
			validMethodCharMap[m[i]+('a'-'A')] = true
		}
	}
}

func isToken(c byte) bool {
	return tokenCharMap[c]
}

func isNum(c byte) bool {
	return numCharMap[c]
}

func isHex(c byte) bool {
	return hexCharMap[c]
}

func hexValue(c byte) int8 {
	return hexValueMap[c]
}

func isValidMethodChar(c byte) bool {
	return validMethodCharMap[c]
}
