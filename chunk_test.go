// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

import "testing"

func TestChunkAppendTo(t *testing.T) {
	chunk := NewChunk(9, []byte("Developer"))
	if got := string(chunk.AppendTo(nil)); got != "9\r\nDeveloper\r\n" {
		t.Fatalf("unexpected serialization: %q", got)
	}
}

func TestChunkAppendToHexSize(t *testing.T) {
	body := make([]byte, 0x1f)
	for i := range body {
		body[i] = 'x'
	}
	chunk := NewChunk(len(body), body)
	want := "1f\r\n" + string(body) + "\r\n"
	if got := string(chunk.AppendTo(nil)); got != want {
		t.Fatalf("unexpected serialization: %q", got)
	}
}

func TestChunkLast(t *testing.T) {
	chunk := NewChunk(0, nil)
	if got := string(chunk.AppendTo(nil)); got != "0\r\n\r\n" {
		t.Fatalf("unexpected serialization: %q", got)
	}
	if chunk.Size() != 0 || len(chunk.Body()) != 0 {
		t.Fatalf("unexpected chunk: %d %q", chunk.Size(), chunk.Body())
	}
}
