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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/oelrich/aoc/asm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDisasmCmd(o *options) *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := o.loadProgram()
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(prog, base, w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&base, "base", 0, "`address` of the first cell")
	return cmd
}

func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm [file]",
		Short: "Assemble a source file",
		Long: `Assemble the given source file, or standard input if none is given or the
file name is "-", and print the program as comma separated values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) > 0 {
				name = args[0]
			}
			var r io.Reader = cmd.InOrStdin()
			if name != "-" {
				f, err := os.Open(name)
				if err != nil {
					return errors.Wrap(err, "asm")
				}
				defer f.Close()
				r = f
			}
			prog, err := asm.Assemble(name, r)
			if err != nil {
				return err
			}
			log.Debugf("assembled %d cells", len(prog))
			fmt.Fprintln(cmd.OutOrStdout(), prog)
			return nil
		},
	}
}
