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

package ici_test

import (
	"bytes"
	"testing"

	"github.com/oelrich/aoc/internal/ici"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter int

func (f *failWriter) Write(p []byte) (int, error) {
	if *f == 0 {
		return 0, errors.New("disk full")
	}
	*f--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := ici.NewErrWriter(&b)
	assert.Same(t, w, ici.NewErrWriter(w))
	require.NoError(t, w.WriteList([]int64{1, -2, 3}, ","))
	w.WriteString(" ")
	require.NoError(t, w.WriteInt(42))
	assert.Equal(t, "1,-2,3 42", b.String())

	f := failWriter(1)
	w = ici.NewErrWriter(&f)
	w.WriteString("ok")
	assert.NoError(t, w.Err)
	w.WriteString("ko")
	require.Error(t, w.Err)
	_, err := w.WriteString("again")
	assert.Equal(t, w.Err, err)
	assert.Equal(t, failWriter(0), f)
	assert.Contains(t, w.Err.Error(), "disk full")
}
