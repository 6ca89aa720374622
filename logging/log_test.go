// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)

	SetLevel(LevelWarn)
	defer SetLevel(LevelInfo)

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	out := buf.String()
	if strings.Contains(out, "[DBG]") || strings.Contains(out, "[INF]") {
		t.Fatalf("levels below warn not filtered: %q", out)
	}
	if !strings.Contains(out, "[WRN] warn message") {
		t.Fatalf("missing warn output: %q", out)
	}
	if !strings.Contains(out, "[ERR] error message") {
		t.Fatalf("missing error output: %q", out)
	}
}

func TestSetLoggerInvalidLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)

	SetLevel(12345)
	if !strings.Contains(buf.String(), "invalid log level") {
		t.Fatalf("invalid level not reported: %q", buf.String())
	}
}
