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
	"fmt"
	"io"

	"github.com/oelrich/aoc/asm"
	"github.com/oelrich/aoc/vm"
	"github.com/spf13/cobra"
)

// traceRun works like i.Run, but writes each instruction to w before
// executing it.
func traceRun(i *vm.Instance, w io.Writer) (vm.State, vm.Cell) {
	for {
		switch i.State() {
		case vm.Input, vm.Halted, vm.Crashed:
			return i.Step()
		}
		fmt.Fprintf(w, "%d\t% 6d\t", i.ID, i.PC)
		asm.Disassemble(i.Memory(), i.PC, w)
		fmt.Fprintf(w, "\t( rb=%d )\n", i.RB)
		if st, v := i.Step(); st != vm.Running {
			return st, v
		}
	}
}

// drive runs i to completion on console c.
func drive(i *vm.Instance, c *console, trace io.Writer) error {
	run := i.Run
	if trace != nil {
		run = func() (vm.State, vm.Cell) { return traceRun(i, trace) }
	}
	for {
		st, v := run()
		switch st {
		case vm.Input:
			x, err := c.input()
			if err != nil {
				return err
			}
			i.Deliver(x)
		case vm.Output:
			if err := c.output(v); err != nil {
				return err
			}
		case vm.Halted:
			return nil
		case vm.Crashed:
			return i.Err()
		}
	}
}

func newRunCmd(o *options) *cobra.Command {
	var (
		input []int64
		trace bool
		dump  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a program",
		Long: `Run a program, reading input values from --input first, then from
standard input, one per line. Output values are printed one per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := o.loadProgram()
			if err != nil {
				return err
			}
			i, err := vm.New(0, prog)
			if err != nil {
				return err
			}
			o.ran = append(o.ran, i)

			c, err := newConsole(cmd.InOrStdin(), cmd.OutOrStdout(), cells(input))
			if err != nil {
				return err
			}
			defer c.Close()

			var tw io.Writer
			if trace {
				tw = cmd.ErrOrStderr()
			}
			if err = drive(i, c, tw); err != nil {
				return err
			}
			if dump {
				return dumpVM(i, cmd.OutOrStdout())
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64SliceVarP(&input, "input", "i", nil, "comma separated input `values`")
	f.BoolVar(&trace, "trace", false, "disassemble each instruction to stderr before executing it")
	f.BoolVar(&dump, "dump", false, "dump registers and memory upon exit")
	return cmd
}
