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

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrNoInput is returned when a program requests more input values than are
// available.
var ErrNoInput = errors.New("program requested input but none is left")

// AddressError is raised when reading or writing a negative address.
type AddressError struct {
	Addr Cell
}

func (e *AddressError) Error() string {
	return "invalid address " + strconv.FormatInt(int64(e.Addr), 10)
}

// ModeError is raised when an operand's addressing mode digit is not valid
// for its position. Dest is true for destination operands, which may never
// be immediate.
type ModeError struct {
	Digit   Cell
	Operand int
	Dest    bool
}

func (e *ModeError) Error() string {
	kind := "source"
	if e.Dest {
		kind = "destination"
	}
	return "invalid mode " + strconv.FormatInt(int64(e.Digit), 10) + " for " + kind + " operand " + strconv.Itoa(e.Operand)
}

// OperandError is raised when decoding an unknown opcode. Value is the raw
// contents of the instruction cell.
type OperandError struct {
	Value Cell
}

func (e *OperandError) Error() string {
	return "invalid opcode " + strconv.FormatInt(int64(e.Value), 10)
}

// OverflowError is raised when an arithmetic operation does not fit in a
// Cell.
type OverflowError struct {
	Op   Opcode
	A, B Cell
}

func (e *OverflowError) Error() string {
	return "integer overflow: " + e.Op.String() + " " + strconv.FormatInt(int64(e.A), 10) + ", " + strconv.FormatInt(int64(e.B), 10)
}
