// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors is used in place of the standard errors package.
// On top of [New], [Is] and [As] it has helpers for call sites where
// an error can only be reported, or can only mean a programming bug.
package errors

import (
	"errors"
	"log/slog"
)

// Log reports a non-nil err on the default logger at error level
// and returns err unchanged, so that it can wrap a call:
//
//	return errors.Log(p.SetColor(c))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 is [Log] for calls that also return a value. The value is
// passed through as is; on error that is usually the zero value.
//
//	rgba := errors.Log1(colors.ToArray(s))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must panics on a non-nil err. Use it where an error can only come
// from a bug, such as registering a fixed validation.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// New calls [errors.New].
func New(text string) error { return errors.New(text) }

// Is calls [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As calls [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }
