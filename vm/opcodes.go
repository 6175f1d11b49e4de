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

package vm

import "strconv"

// Opcode is the operation selector found in the two low decimal digits of an
// instruction cell.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLess       Opcode = 7
	OpEqual      Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

var opcodes = map[Opcode]struct {
	name  string
	arity int
	dest  int // index of the destination operand, -1 if none
}{
	OpAdd:        {"add", 3, 2},
	OpMul:        {"mul", 3, 2},
	OpIn:         {"in", 1, 0},
	OpOut:        {"out", 1, -1},
	OpJumpTrue:   {"jnz", 2, -1},
	OpJumpFalse:  {"jz", 2, -1},
	OpLess:       {"lt", 3, 2},
	OpEqual:      {"eq", 3, 2},
	OpAdjustBase: {"arb", 1, -1},
	OpHalt:       {"hlt", 0, -1},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of operands of op.
func (op Opcode) Arity() int {
	return opcodes[op].arity
}

// Dest returns the index of the destination operand of op, or -1 if op does
// not write to memory.
func (op Opcode) Dest() int {
	if o, ok := opcodes[op]; ok {
		return o.dest
	}
	return -1
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if o, ok := opcodes[op]; ok {
		return o.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode is an operand addressing mode.
type Mode uint8

// Addressing modes. The values match the mode digits of an instruction cell.
const (
	Position  Mode = 0 // operand is an absolute address
	Immediate Mode = 1 // operand is the value itself
	Relative  Mode = 2 // operand is an address relative to the relative base
)

// SourceMode returns the addressing mode for a source operand mode digit.
func SourceMode(digit Cell) (Mode, error) {
	switch digit {
	case 0, 1, 2:
		return Mode(digit), nil
	}
	return 0, &ModeError{Digit: digit}
}

// DestMode returns the addressing mode for a destination operand mode digit.
func DestMode(digit Cell) (Mode, error) {
	switch digit {
	case 0, 2:
		return Mode(digit), nil
	}
	return 0, &ModeError{Digit: digit, Dest: true}
}

// Value is a decoded instruction operand.
type Value struct {
	Mode Mode
	N    Cell
}

func (v Value) String() string {
	n := strconv.FormatInt(int64(v.N), 10)
	switch v.Mode {
	case Immediate:
		return "#" + n
	case Relative:
		return "~" + n
	}
	return n
}

// Instruction is a decoded instruction.
type Instruction struct {
	Op   Opcode
	Args [3]Value
}

// Operands returns the operands of the instruction.
func (ins *Instruction) Operands() []Value {
	return ins.Args[:ins.Op.Arity()]
}

var pow10 = [...]Cell{100, 1000, 10000}

// Decode decodes the instruction at address pc in m. It returns the decoded
// instruction and the address of the next instruction.
func Decode(m *Memory, pc Cell) (ins Instruction, next Cell, err error) {
	v, err := m.Read(pc)
	if err != nil {
		return ins, pc, err
	}
	ins.Op = Opcode(v % 100)
	o, ok := opcodes[ins.Op]
	if !ok {
		return ins, pc, &OperandError{Value: v}
	}
	for n := 0; n < o.arity; n++ {
		digit := (v / pow10[n]) % 10
		var mode Mode
		if n == o.dest {
			mode, err = DestMode(digit)
		} else {
			mode, err = SourceMode(digit)
		}
		if err != nil {
			err.(*ModeError).Operand = n
			return ins, pc, err
		}
		var arg Cell
		if arg, err = m.Read(pc + 1 + Cell(n)); err != nil {
			return ins, pc, err
		}
		ins.Args[n] = Value{mode, arg}
	}
	return ins, pc + 1 + Cell(o.arity), nil
}

// Encode returns the instruction cell for ins: the opcode plus the mode digits
// of its operands. Operand values are not included.
func (ins *Instruction) Encode() Cell {
	v := Cell(ins.Op)
	for n, a := range ins.Operands() {
		v += Cell(a.Mode) * pow10[n]
	}
	return v
}
