// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestRespParserSimple(t *testing.T) {
	data := []byte("HTTP/1.1 200 OK\r\nContent-Length: 4\r\n\r\nbody")

	parser := NewRespParser(2048)
	done, consumed := parser.Feed(data)
	if !done || consumed != len(data) {
		t.Fatalf("done=%v consumed=%d", done, consumed)
	}

	resp, err := parser.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if resp.StatusCode != StatusOK {
		t.Fatalf("unexpected status: %v", resp.StatusCode)
	}
	if resp.Proto != "HTTP/1.1" {
		t.Fatalf("unexpected protocol: %q", resp.Proto)
	}
	if string(resp.Body) != "body" {
		t.Fatalf("unexpected body: %q", resp.Body)
	}
}

func TestRespParserByteAtATime(t *testing.T) {
	data := []byte("HTTP/1.1 404 Not Found\r\nServer: test\r\nContent-Length: 9\r\n\r\nnot found")

	parser := NewRespParser(2048)
	total := 0
	for i := 0; i < len(data); i++ {
		done, consumed := parser.Feed(data[i : i+1])
		total += consumed
		if done != (i == len(data)-1) {
			t.Fatalf("done at byte %d of %d", i, len(data))
		}
	}
	if total != len(data) {
		t.Fatalf("consumed %d of %d bytes", total, len(data))
	}

	resp, err := parser.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if resp.StatusCode != StatusNotFound {
		t.Fatalf("unexpected status: %v", resp.StatusCode)
	}
	if string(resp.Body) != "not found" {
		t.Fatalf("unexpected body: %q", resp.Body)
	}
}

func TestRespParserRandomSplits(t *testing.T) {
	data := []byte("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n6\r\nstream\r\n8\r\nhttparse\r\n0\r\n\r\n")

	rng := rand.New(rand.NewSource(7))
	for loop := 0; loop < 1000; loop++ {
		parser := NewRespParser(16)
		rest := data
		total := 0
		done := false
		for len(rest) > 0 {
			n := rng.Intn(len(rest)) + 1
			var consumed int
			done, consumed = parser.Feed(rest[:n])
			rest = rest[n:]
			total += consumed
		}
		if !done || total != len(data) {
			t.Fatalf("loop %d: done=%v consumed=%d", loop, done, total)
		}
		resp, err := parser.Finish()
		if err != nil {
			t.Fatalf("loop %d: finish failed: %v", loop, err)
		}
		if string(resp.Body) != "streamhttparse" {
			t.Fatalf("loop %d: unexpected body: %q", loop, resp.Body)
		}
	}
}

func TestRespParserStatusWithoutReason(t *testing.T) {
	data := []byte("HTTP/1.1 204\r\n\r\n")

	parser := NewRespParser(2048)
	done, consumed := parser.Feed(data)
	if !done || consumed != len(data) {
		t.Fatalf("done=%v consumed=%d", done, consumed)
	}

	resp, err := parser.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if resp.StatusCode != StatusNoContent {
		t.Fatalf("unexpected status: %v", resp.StatusCode)
	}
}

func TestRespParserInvalidStatus(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"non numeric", "HTTP/1.1 abc OK\r\n\r\n"},
		{"unknown code", "HTTP/1.1 299 Custom\r\n\r\n"},
		{"letters inside", "HTTP/1.1 2a0 OK\r\n\r\n"},
		{"too many digits", "HTTP/1.1 2000 OK\r\n\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewRespParser(2048)
			done, _ := parser.Feed([]byte(tt.data))
			if !done {
				t.Fatal("failure not reported as done")
			}
			if _, err := parser.Finish(); !errors.Is(err, ErrInvalidStatusCode) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRespParserPrematureFinish(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"partial protocol", "HTTP/1", ErrMissingProtocol},
		{"no status yet", "HTTP/1.1 ", ErrMissingStatusCode},
		{"partial status", "HTTP/1.1 20", ErrMissingStatusCode},
		{"inside reason", "HTTP/1.1 200 O", ErrMissingStatusCode},
		{"headers not over", "HTTP/1.1 200 OK\r\n", ErrMissingHeaders},
		{"truncated body", "HTTP/1.1 200 OK\r\nContent-Length: 10\r\n\r\nbod", ErrMissingHeaders},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewRespParser(2048)
			done, _ := parser.Feed([]byte(tt.data))
			if done {
				t.Fatal("unexpectedly done")
			}
			if _, err := parser.Finish(); !errors.Is(err, tt.err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRespParserPipelined(t *testing.T) {
	data := []byte("HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nokHTTP/1.1 500 Internal Server Error\r\n\r\n")

	parser := NewRespParser(2048)
	done, consumed := parser.Feed(data)
	if !done {
		t.Fatal("first response not done")
	}
	resp, err := parser.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if resp.StatusCode != StatusOK || string(resp.Body) != "ok" {
		t.Fatalf("unexpected response: %v %q", resp.StatusCode, resp.Body)
	}

	parser.Reset()
	done, rest := parser.Feed(data[consumed:])
	if !done || consumed+rest != len(data) {
		t.Fatalf("second response: done=%v consumed=%d", done, consumed+rest)
	}
	resp, err = parser.Finish()
	if err != nil {
		t.Fatalf("second finish failed: %v", err)
	}
	if resp.StatusCode != StatusInternalServerError {
		t.Fatalf("unexpected status: %v", resp.StatusCode)
	}
}

func TestRespParserContentLengthZero(t *testing.T) {
	data := []byte("HTTP/1.1 204 No Content\r\nContent-Length: 0\r\n\r\n")

	parser := NewRespParser(2048)
	done, consumed := parser.Feed(data)
	if !done || consumed != len(data) {
		t.Fatalf("done=%v consumed=%d", done, consumed)
	}

	resp, err := parser.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if len(resp.Body) != 0 {
		t.Fatalf("unexpected body: %q", resp.Body)
	}
}

func TestRespParserBadContentLength(t *testing.T) {
	// a Content-Length that does not parse counts as no body at all
	inputs := []string{
		"HTTP/1.1 200 OK\r\nContent-Length: abc\r\n\r\n",
		"HTTP/1.1 200 OK\r\nContent-Length: -5\r\n\r\n",
	}

	for _, input := range inputs {
		parser := NewRespParser(2048)
		done, consumed := parser.Feed([]byte(input))
		if !done || consumed != len(input) {
			t.Fatalf("%q: done=%v consumed=%d", input, done, consumed)
		}
		resp, err := parser.Finish()
		if err != nil {
			t.Fatalf("%q: finish failed: %v", input, err)
		}
		if len(resp.Body) != 0 {
			t.Fatalf("%q: unexpected body: %q", input, resp.Body)
		}
	}
}

func TestRespParserChunkedPreferred(t *testing.T) {
	// chunked wins even when Content-Length is also present
	data := []byte("HTTP/1.1 200 OK\r\nContent-Length: 9999\r\nTransfer-Encoding: chunked\r\n\r\n2\r\nhi\r\n0\r\n\r\n")

	parser := NewRespParser(2048)
	done, consumed := parser.Feed(data)
	if !done || consumed != len(data) {
		t.Fatalf("done=%v consumed=%d", done, consumed)
	}

	resp, err := parser.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if string(resp.Body) != "hi" {
		t.Fatalf("unexpected body: %q", resp.Body)
	}
}

func TestRespParserFinishRepeatable(t *testing.T) {
	data := []byte("HTTP/1.1 200 OK\r\nContent-Length: 4\r\n\r\nbody")

	parser := NewRespParser(2048)
	parser.Feed(data)

	first, err := parser.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	second, err := parser.Finish()
	if err != nil {
		t.Fatalf("second finish failed: %v", err)
	}
	if first != second {
		t.Fatal("finish returned a different value")
	}
	if !bytes.Equal(first.Body, []byte("body")) {
		t.Fatalf("unexpected body: %q", first.Body)
	}
}
