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

package main

import (
	"io"
	"sort"

	"github.com/oelrich/aoc/internal/ici"
	"github.com/oelrich/aoc/vm"
)

func dumpList(w *ici.ErrWriter, a []vm.Cell) error {
	l := make([]int64, len(a))
	for n, v := range a {
		l[n] = int64(v)
	}
	return w.WriteList(l, ",")
}

// dumpSparse writes far away cells as addr:value pairs, by increasing address.
func dumpSparse(w *ici.ErrWriter, s map[vm.Cell]vm.Cell) error {
	addrs := make([]vm.Cell, 0, len(s))
	for a := range s {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	for n, a := range addrs {
		if n > 0 {
			w.WriteString(",")
		}
		w.WriteInt(int64(a))
		w.WriteString(":")
		w.WriteInt(int64(s[a]))
	}
	return w.Err
}

// dumpVM writes the registers and memory of i to w:
//
//	pc rb
//	memory cells, comma separated
//	far away cells as addr:value, comma separated (only if any)
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	ew.WriteInt(int64(i.PC))
	ew.WriteString(" ")
	ew.WriteInt(int64(i.RB))
	ew.WriteString("\n")
	m := i.Memory()
	dumpList(ew, m.Snapshot())
	ew.WriteString("\n")
	if s := m.Sparse(); s != nil {
		dumpSparse(ew, s)
		ew.WriteString("\n")
	}
	return ew.Err
}
