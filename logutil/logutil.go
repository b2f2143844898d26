// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package logutil has helpers for logging multi-line text and naming debug
// dump files.
package logutil

import (
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

// logLinesMu protects LogLines so calls from multiple goroutines don't
// interleave their lines.
var logLinesMu sync.Mutex

// LogLines logs each line of text as a separate message at the given klog
// verbosity level, so long texts (IR dumps, shape listings) don't get
// truncated or mangled by line-based log collectors.
func LogLines(level klog.Level, text string) {
	logLinesMu.Lock()
	defer logLinesMu.Unlock()
	for _, line := range strings.Split(text, "\n") {
		klog.V(level).Info(line)
	}
}

// Reindent strips each line of text of surrounding whitespace and prefixes it
// with indentation.
func Reindent(text, indentation string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indentation + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// SanitizeFileName replaces the characters that would confuse a file system or
// a shell ('/', '\', '[', ']' and space) by underscores, making an arbitrary
// label (e.g. a shape or computation name) safe to use as a dump file name.
func SanitizeFileName(fileName string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '[', ']', ' ':
			return '_'
		}
		return r
	}, fileName)
}
