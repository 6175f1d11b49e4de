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

package asm

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/scanner"

	"github.com/oelrich/aoc/internal/ici"
	"github.com/oelrich/aoc/vm"
)

// ErrAsm is the error type returned by Assemble. It lists the errors found in
// the source, in order of appearance.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for n, err := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func (e ErrAsm) sort() {
	sort.SliceStable(e, func(i, j int) bool { return e[i].Pos.Offset < e[j].Pos.Offset })
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	return newParser().Parse(name, r)
}

// Disassemble writes a disassembly of the instruction at address pc in m to
// the specified io.Writer and returns the address of the next instruction and
// any write error.
//
// Cells that do not hold a valid instruction are written as a .dat directive.
func Disassemble(m *vm.Memory, pc vm.Cell, w io.Writer) (next vm.Cell, err error) {
	return disassemble(m, pc, -1, ici.NewErrWriter(w))
}

// disassemble writes the instruction at pc. If limit >= 0, instructions whose
// operands extend past limit are written as .dat.
func disassemble(m *vm.Memory, pc, limit vm.Cell, ew *ici.ErrWriter) (vm.Cell, error) {
	v, err := m.Read(pc)
	if err != nil {
		return pc, err
	}
	ins, next, err := vm.Decode(m, pc)
	if err != nil || ins.Encode() != v || limit >= 0 && next > limit {
		ew.WriteString(".dat ")
		ew.WriteInt(int64(v))
		return pc + 1, ew.Err
	}
	ew.WriteString(ins.Op.String())
	for _, a := range ins.Operands() {
		ew.WriteString(" ")
		ew.WriteString(a.String())
	}
	return next, ew.Err
}

// DisassembleAll writes a disassembly of prog to the specified io.Writer, one
// instruction per line. The base argument specifies the real address of the
// first cell (prog[0]). It will return any write error.
func DisassembleAll(prog vm.Program, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	m := vm.NewMemory(prog)
	end := vm.Cell(len(prog))
	for pc := vm.Cell(0); pc < end; {
		fmt.Fprintf(ew, "% 6d\t", base+int(pc))
		pc, _ = disassemble(m, pc, end, ew)
		ew.WriteString("\n")
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
