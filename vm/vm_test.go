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

package vm_test

import (
	"testing"

	"github.com/oelrich/aoc/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []vm.Cell

func setup(t *testing.T, code C, opts ...vm.Option) *vm.Instance {
	t.Helper()
	i, err := vm.New(0, vm.Program(code), opts...)
	require.NoError(t, err)
	return i
}

var quine = C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}

var lessEqual8 = C{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
	1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
	999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}

var tests = [...]struct {
	name   string
	code   C
	input  C
	output C
	mem    C // expected memory contents, unchecked if nil
}{
	{"add", C{1, 0, 0, 0, 99}, nil, nil, C{2, 0, 0, 0, 99}},
	{"mul", C{2, 3, 0, 3, 99}, nil, nil, C{2, 3, 0, 6, 99}},
	{"mul_far", C{2, 4, 4, 5, 99, 0}, nil, nil, C{2, 4, 4, 5, 99, 9801}},
	{"self_modify", C{1, 1, 1, 4, 99, 5, 6, 0, 99}, nil, nil, C{30, 1, 1, 4, 2, 5, 6, 0, 99}},
	{"compute", C{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, nil, nil, C{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
	{"immediate", C{1002, 4, 3, 4, 33}, nil, nil, C{1002, 4, 3, 4, 99}},
	{"negative", C{1101, 100, -1, 4, 0}, nil, nil, C{1101, 100, -1, 4, 99}},
	{"input", C{3, 0, 99}, C{42}, nil, C{42, 0, 99}},
	{"input2", C{3, 0, 3, 1, 99}, C{42, 7}, nil, C{42, 7, 3, 1, 99}},
	{"output", C{4, 0, 99}, nil, C{4}, nil},
	{"output2", C{4, 0, 4, 4, 99}, nil, C{4, 99}, nil},
	{"echo", C{3, 0, 4, 0, 99}, C{42}, C{42}, nil},
	{"eq_pos_true", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{8}, C{1}, nil},
	{"eq_pos_false", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{42}, C{0}, nil},
	{"lt_pos_true", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, C{5}, C{1}, nil},
	{"lt_pos_false", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, C{42}, C{0}, nil},
	{"eq_imm_true", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, C{8}, C{1}, nil},
	{"eq_imm_false", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, C{42}, C{0}, nil},
	{"lt_imm_true", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, C{5}, C{1}, nil},
	{"lt_imm_false", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, C{42}, C{0}, nil},
	{"jz_pos", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, C{0}, C{0}, nil},
	{"jz_pos_nz", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, C{5}, C{1}, nil},
	{"jnz_imm", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, C{0}, C{0}, nil},
	{"jnz_imm_nz", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, C{3}, C{1}, nil},
	{"below_8", lessEqual8, C{7}, C{999}, nil},
	{"equal_8", lessEqual8, C{8}, C{1000}, nil},
	{"above_8", lessEqual8, C{9}, C{1001}, nil},
	{"quine", quine, nil, quine, nil},
	{"big_mul", C{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, nil, C{1219070632396864}, nil},
	{"big_literal", C{104, 1125899906842624, 99}, nil, C{1125899906842624}, nil},
	{"relative_far", C{109, 2000, 109, 19, 204, -34, 99}, nil, C{0}, nil},
	{"relative_input", C{109, 5, 203, 2, 204, 2, 99}, C{77}, C{77}, nil},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code)
			out, err := i.RunToEnd(test.input...)
			require.NoError(t, err)
			assert.Equal(t, vm.Halted, i.State())
			assert.Equal(t, []vm.Cell(test.output), out)
			if test.mem != nil {
				assert.Equal(t, []vm.Cell(test.mem), i.Memory().Snapshot())
			}
		})
	}
}

func TestAdjustBase(t *testing.T) {
	i := setup(t, C{109, 19, 99})
	st, _ := i.Run()
	assert.Equal(t, vm.Halted, st)
	assert.Equal(t, vm.Cell(19), i.RB)
	assert.Equal(t, vm.Cell(2), i.PC)
	assert.Equal(t, int64(2), i.InstructionCount())
}

func TestSuspend(t *testing.T) {
	i := setup(t, C{3, 0, 4, 0, 4, 0, 99})
	assert.Equal(t, vm.Ready, i.State())
	assert.False(t, i.Deliver(1), "deliver before start")

	st, _ := i.Run()
	require.Equal(t, vm.Input, st)
	pc := i.PC
	// no input delivered: nothing must happen
	for n := 0; n < 3; n++ {
		st, _ = i.Run()
		assert.Equal(t, vm.Input, st)
		assert.Equal(t, pc, i.PC)
		assert.Equal(t, int64(1), i.InstructionCount())
	}

	require.True(t, i.Deliver(12))
	assert.False(t, i.Deliver(13), "second delivery")
	v, _ := i.Peek(0)
	assert.Equal(t, vm.Cell(12), v)

	st, v = i.Run()
	assert.Equal(t, vm.Output, st)
	assert.Equal(t, vm.Cell(12), v)
	assert.False(t, i.Deliver(14), "deliver while in output")
	st, v = i.Run()
	assert.Equal(t, vm.Output, st)
	assert.Equal(t, vm.Cell(12), v)
	st, _ = i.Run()
	assert.Equal(t, vm.Halted, st)
	assert.Equal(t, "operational", i.ErrorDescription())
}

func TestDeliverNoop(t *testing.T) {
	i := setup(t, C{4, 0, 99})
	st, _ := i.Run()
	require.Equal(t, vm.Output, st)
	before := i.Memory().Snapshot()
	pc := i.PC
	assert.False(t, i.Deliver(5))
	assert.Equal(t, before, i.Memory().Snapshot())
	assert.Equal(t, pc, i.PC)
}

func TestTerminalIdempotence(t *testing.T) {
	i := setup(t, C{1101, 1, 2, 5, 99, 0})
	st, _ := i.Run()
	require.Equal(t, vm.Halted, st)
	mem := i.Memory().Snapshot()
	for n := 0; n < 2; n++ {
		st, _ = i.Run()
		assert.Equal(t, vm.Halted, st)
		assert.Equal(t, mem, i.Memory().Snapshot())
	}

	i = setup(t, C{1101, 1, 2, 7, 42, 0, 0, 0})
	st, _ = i.Run()
	require.Equal(t, vm.Crashed, st)
	mem = i.Memory().Snapshot()
	count := i.InstructionCount()
	for n := 0; n < 2; n++ {
		st, _ = i.Run()
		assert.Equal(t, vm.Crashed, st)
		assert.Equal(t, mem, i.Memory().Snapshot())
		assert.Equal(t, count, i.InstructionCount())
	}
}

func TestCrash(t *testing.T) {
	cases := []struct {
		name  string
		code  C
		input C
		pc    vm.Cell
		check func(t *testing.T, err error)
	}{
		{"read_negative", C{4, -1, 99}, nil, 0, func(t *testing.T, err error) {
			e, ok := err.(*vm.AddressError)
			if assert.True(t, ok, "%T", err) {
				assert.Equal(t, vm.Cell(-1), e.Addr)
			}
		}},
		{"write_negative", C{1101, 1, 1, -3, 99}, nil, 0, func(t *testing.T, err error) {
			assert.IsType(t, &vm.AddressError{}, err)
		}},
		{"relative_negative", C{109, -10, 2201, 0, 0, 0, 99}, nil, 2, func(t *testing.T, err error) {
			assert.IsType(t, &vm.AddressError{}, err)
		}},
		{"input_negative", C{109, -10, 203, 0, 99}, C{1}, 2, func(t *testing.T, err error) {
			assert.IsType(t, &vm.AddressError{}, err)
		}},
		{"jump_negative", C{1105, 1, -4, 99}, nil, -4, func(t *testing.T, err error) {
			assert.IsType(t, &vm.AddressError{}, err)
		}},
		{"immediate_dest", C{11101, 1, 1, 0, 99}, nil, 0, func(t *testing.T, err error) {
			e, ok := err.(*vm.ModeError)
			if assert.True(t, ok, "%T", err) {
				assert.True(t, e.Dest)
				assert.Equal(t, 2, e.Operand)
				assert.Equal(t, vm.Cell(1), e.Digit)
			}
		}},
		{"immediate_input", C{103, 0, 99}, nil, 0, func(t *testing.T, err error) {
			e, ok := err.(*vm.ModeError)
			if assert.True(t, ok, "%T", err) {
				assert.True(t, e.Dest)
				assert.Equal(t, 0, e.Operand)
			}
		}},
		{"bad_source_mode", C{304, 0, 99}, nil, 0, func(t *testing.T, err error) {
			e, ok := err.(*vm.ModeError)
			if assert.True(t, ok, "%T", err) {
				assert.False(t, e.Dest)
				assert.Equal(t, vm.Cell(3), e.Digit)
			}
		}},
		{"bad_opcode", C{1101, 41, 1, 4, 0}, nil, 4, func(t *testing.T, err error) {
			e, ok := err.(*vm.OperandError)
			if assert.True(t, ok, "%T", err) {
				assert.Equal(t, vm.Cell(42), e.Value)
			}
		}},
		{"mul_overflow", C{1102, 4611686018427387904, 2, 0, 99}, nil, 0, func(t *testing.T, err error) {
			e, ok := err.(*vm.OverflowError)
			if assert.True(t, ok, "%T", err) {
				assert.Equal(t, vm.OpMul, e.Op)
			}
		}},
		{"add_overflow", C{1101, 9223372036854775807, 1, 0, 99}, nil, 0, func(t *testing.T, err error) {
			assert.IsType(t, &vm.OverflowError{}, err)
		}},
		{"base_overflow", C{109, 9223372036854775807, 109, 1, 99}, nil, 2, overflowIn(vm.OpAdjustBase)},
		{"relative_out_overflow", C{109, 9223372036854775807, 204, 1, 99}, nil, 2, overflowIn(vm.OpOut)},
		{"relative_in_overflow", C{109, 9223372036854775807, 203, 1, 99}, C{5}, 2, overflowIn(vm.OpIn)},
		{"relative_add_overflow", C{109, 9223372036854775807, 1201, 1, 0, 0, 99}, nil, 2, overflowIn(vm.OpAdd)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			i := setup(t, c.code)
			_, err := i.RunToEnd(c.input...)
			require.Error(t, err)
			assert.Equal(t, vm.Crashed, i.State())
			assert.Equal(t, c.pc, i.PC, "pc")
			assert.Equal(t, err, i.Err())
			assert.Equal(t, err.Error(), i.ErrorDescription())
			c.check(t, errors.Cause(err))
		})
	}
}

func overflowIn(op vm.Opcode) func(*testing.T, error) {
	return func(t *testing.T, err error) {
		e, ok := err.(*vm.OverflowError)
		if assert.True(t, ok, "%T", err) {
			assert.Equal(t, op, e.Op)
		}
	}
}

func TestNoInput(t *testing.T) {
	i := setup(t, C{3, 0, 4, 0, 3, 0, 99})
	out, err := i.RunToEnd(5)
	assert.Equal(t, vm.ErrNoInput, err)
	assert.Equal(t, []vm.Cell{5}, out)
	assert.Equal(t, vm.Input, i.State())
}

func TestPatch(t *testing.T) {
	i := setup(t, C{1, 0, 0, 0, 99}, vm.Patch(1, 4), vm.Patch(2, 4))
	_, err := i.RunToEnd()
	require.NoError(t, err)
	v, ok := i.Peek(0)
	assert.True(t, ok)
	assert.Equal(t, vm.Cell(198), v)

	_, err = vm.New(0, vm.Program{99}, vm.Patch(-1, 0))
	assert.Error(t, err)
}

func TestPeekPoke(t *testing.T) {
	i := setup(t, C{99})
	v, ok := i.Peek(1 << 40)
	assert.True(t, ok)
	assert.Equal(t, vm.Cell(0), v)
	_, ok = i.Peek(-1)
	assert.False(t, ok)
	require.NoError(t, i.Poke(1<<40, 7))
	v, _ = i.Peek(1 << 40)
	assert.Equal(t, vm.Cell(7), v)
	assert.Error(t, i.Poke(-2, 7))
}

func TestExec(t *testing.T) {
	out, err := vm.Exec(vm.Program(lessEqual8), 8)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{1000}, out)
}

func Benchmark_Quine(b *testing.B) {
	for n := 0; n < b.N; n++ {
		vm.Exec(vm.Program(quine))
	}
}
