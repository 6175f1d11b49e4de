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
	"github.com/oelrich/aoc/internal/checked"
)

// load returns the value designated by operand v.
func (i *Instance) load(v Value) (Cell, error) {
	switch v.Mode {
	case Immediate:
		return v.N, nil
	case Position:
		return i.mem.Read(v.N)
	case Relative:
		addr, err := i.relative(v.N)
		if err != nil {
			return 0, err
		}
		return i.mem.Read(addr)
	}
	return 0, &ModeError{Digit: Cell(v.Mode)}
}

// store writes x to the address designated by operand v.
func (i *Instance) store(v Value, x Cell) error {
	switch v.Mode {
	case Position:
		return i.mem.Write(v.N, x)
	case Relative:
		addr, err := i.relative(v.N)
		if err != nil {
			return err
		}
		return i.mem.Write(addr, x)
	}
	return &ModeError{Digit: Cell(v.Mode), Dest: true}
}

func (i *Instance) relative(n Cell) (Cell, error) {
	addr, ok := checked.AddInt64(int64(i.RB), int64(n))
	if !ok {
		return 0, &OverflowError{Op: i.op, A: i.RB, B: n}
	}
	return Cell(addr), nil
}

// execute performs the effect of ins. i.PC already points to the next
// instruction.
func (i *Instance) execute(ins *Instruction) (State, Cell, error) {
	switch ins.Op {
	case OpAdd, OpMul, OpLess, OpEqual:
		a, err := i.load(ins.Args[0])
		if err != nil {
			return Crashed, 0, err
		}
		b, err := i.load(ins.Args[1])
		if err != nil {
			return Crashed, 0, err
		}
		var r Cell
		switch ins.Op {
		case OpAdd:
			s, ok := checked.AddInt64(int64(a), int64(b))
			if !ok {
				return Crashed, 0, &OverflowError{ins.Op, a, b}
			}
			r = Cell(s)
		case OpMul:
			p, ok := checked.MulInt64(int64(a), int64(b))
			if !ok {
				return Crashed, 0, &OverflowError{ins.Op, a, b}
			}
			r = Cell(p)
		case OpLess:
			if a < b {
				r = 1
			}
		case OpEqual:
			if a == b {
				r = 1
			}
		}
		if err = i.store(ins.Args[2], r); err != nil {
			return Crashed, 0, err
		}
	case OpJumpTrue, OpJumpFalse:
		c, err := i.load(ins.Args[0])
		if err != nil {
			return Crashed, 0, err
		}
		if (c != 0) == (ins.Op == OpJumpTrue) {
			if i.PC, err = i.load(ins.Args[1]); err != nil {
				return Crashed, 0, err
			}
		}
	case OpAdjustBase:
		d, err := i.load(ins.Args[0])
		if err != nil {
			return Crashed, 0, err
		}
		rb, ok := checked.AddInt64(int64(i.RB), int64(d))
		if !ok {
			return Crashed, 0, &OverflowError{ins.Op, i.RB, d}
		}
		i.RB = Cell(rb)
	case OpIn:
		i.pending = ins.Args[0]
		return Input, 0, nil
	case OpOut:
		v, err := i.load(ins.Args[0])
		if err != nil {
			return Crashed, 0, err
		}
		return Output, v, nil
	case OpHalt:
		// stay on the halt instruction
		i.PC = i.ipc
		return Halted, 0, nil
	default:
		return Crashed, 0, &OperandError{Value: Cell(ins.Op)}
	}
	return Running, 0, nil
}

// Step executes a single instruction and returns the resulting state. If that
// state is Output, the returned Cell is the output value.
//
// Calling Step on an instance waiting for input, halted or crashed is a no-op
// that returns the current state.
func (i *Instance) Step() (State, Cell) {
	switch i.state {
	case Input, Halted, Crashed:
		return i.state, 0
	}
	i.state = Running
	i.ipc = i.PC
	ins, next, err := Decode(i.mem, i.PC)
	if err != nil {
		return i.crash(err)
	}
	i.PC = next
	i.op = ins.Op
	i.insCount++
	st, v, err := i.execute(&ins)
	if err != nil {
		return i.crash(err)
	}
	i.state = st
	if st != Running {
		i.log.Tracef("vm %d: %v %d @pc=%d", i.ID, st, v, i.ipc)
	}
	return st, v
}

// Run executes the program until it requests input, produces an output,
// halts or crashes, and returns the corresponding state. If that state is
// Output, the returned Cell is the output value.
//
// If the instance is waiting for input, Run returns Input without executing
// anything; supply a value with Deliver first. After an Output, Run resumes
// execution right after the output instruction. Calling Run on a halted or
// crashed instance returns the same state.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error.
func (i *Instance) Run() (State, Cell) {
	for {
		if st, v := i.Step(); st != Running {
			return st, v
		}
	}
}

// InputFunc supplies input values to Drive.
type InputFunc func() (Cell, error)

// OutputFunc receives output values from Drive.
type OutputFunc func(Cell) error

// Drive runs the instance to completion. Each time the program requests
// input, in is called and its result delivered; each output value is passed
// to out. A nil in makes any input request fail with ErrNoInput, a nil out
// discards outputs.
//
// Drive returns nil once the program has halted, the crash cause if it
// crashed, or the first error returned by in or out.
func (i *Instance) Drive(in InputFunc, out OutputFunc) error {
	for {
		st, v := i.Run()
		switch st {
		case Input:
			if in == nil {
				return ErrNoInput
			}
			x, err := in()
			if err != nil {
				return err
			}
			i.Deliver(x)
		case Output:
			if out == nil {
				continue
			}
			if err := out(v); err != nil {
				return err
			}
		case Halted:
			return nil
		case Crashed:
			return i.err
		}
	}
}

// RunToEnd runs the instance to completion, feeding it the given input values
// in order, and returns all output values. If the program crashes or
// requests more input than supplied, the outputs produced so far are returned
// along with the error.
func (i *Instance) RunToEnd(input ...Cell) ([]Cell, error) {
	var output []Cell
	err := i.Drive(
		func() (Cell, error) {
			if len(input) == 0 {
				return 0, ErrNoInput
			}
			v := input[0]
			input = input[1:]
			return v, nil
		},
		func(v Cell) error {
			output = append(output, v)
			return nil
		})
	return output, err
}

// Exec loads prog in a new instance and runs it to completion with the given
// input values. See RunToEnd.
func Exec(prog Program, input ...Cell) ([]Cell, error) {
	i, err := New(0, prog)
	if err != nil {
		return nil, err
	}
	return i.RunToEnd(input...)
}
