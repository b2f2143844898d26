// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package errutil annotates errors with context text, either before or after
// the original message, preserving the cause chain.
package errutil

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Prepend returns err annotated as "context: err".
//
// Contract: err != nil -- only failures get context; a nil err panics.
func Prepend(err error, format string, args ...any) error {
	if err == nil {
		exceptions.Panicf("errutil.Prepend: cannot annotate a nil error")
	}
	return errors.WithMessagef(err, format, args...)
}

// Append returns err annotated as "err: context".
//
// Contract: err != nil -- only failures get context; a nil err panics.
func Append(err error, format string, args ...any) error {
	if err == nil {
		exceptions.Panicf("errutil.Append: cannot annotate a nil error")
	}
	return &appended{cause: err, context: fmt.Sprintf(format, args...)}
}

type appended struct {
	cause   error
	context string
}

func (e *appended) Error() string { return e.cause.Error() + ": " + e.context }

// Cause implements the pkg/errors causer interface.
func (e *appended) Cause() error { return e.cause }

// Unwrap implements the standard errors chain.
func (e *appended) Unwrap() error { return e.cause }
