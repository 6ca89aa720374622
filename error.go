// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

import (
	"errors"
)

// The parse errors form a closed set. Each of them is terminal for the
// parser instance that raised it; they also double as the truncation
// signal when Finish is called before the message is complete, naming
// the stage that never finished.
var (
	// ErrMissingMethod .
	ErrMissingMethod = errors.New("missing or unknown HTTP method")

	// ErrMissingPath .
	ErrMissingPath = errors.New("missing request path")

	// ErrMissingProtocol .
	ErrMissingProtocol = errors.New("missing protocol")

	// ErrMissingHeaders .
	ErrMissingHeaders = errors.New("missing or malformed headers")

	// ErrMissingStatusCode .
	ErrMissingStatusCode = errors.New("missing status code")

	// ErrInvalidStatusCode .
	ErrInvalidStatusCode = errors.New("invalid status code")
)
