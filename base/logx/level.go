// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [slog] logger
// from the verbosity selected by the user.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the lowest level that reaches the log output once
// [SetDefaultLoggerTo] has run. Warnings and errors are shown unless
// the command line says otherwise.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the -vv, -v and -q command line flags to a
// level. The most verbose flag set wins, so -vv with -q still logs
// debug messages; no flag at all gives [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLoggerTo makes a text logger on w, filtered at
// [UserLevel], the default [slog] logger.
func SetDefaultLoggerTo(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}
