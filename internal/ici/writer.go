// This file is part of aoc - https://github.com/oelrich/aoc
//
// Copyright 2019 The aoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ici holds small helpers shared by the icc packages and commands.
package ici

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and remembers the first write error. Once an
// error has occurred, all subsequent writes are no-ops that return it, so
// callers can check Err once after a batch of writes.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter returns an ErrWriter writing to w. If w already is an
// ErrWriter, it is returned as is.
func NewErrWriter(w io.Writer) *ErrWriter {
	if ew, ok := w.(*ErrWriter); ok {
		return ew
	}
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s.
func (w *ErrWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// WriteInt writes the decimal representation of v.
func (w *ErrWriter) WriteInt(v int64) error {
	var b [24]byte
	_, err := w.Write(strconv.AppendInt(b[:0], v, 10))
	return err
}

// WriteList writes the values in a separated by sep.
func (w *ErrWriter) WriteList(a []int64, sep string) error {
	for n, v := range a {
		if n > 0 {
			w.WriteString(sep)
		}
		w.WriteInt(v)
	}
	return w.Err
}
