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

	"github.com/oelrich/aoc/gravity"
	"github.com/oelrich/aoc/vm"
	"github.com/spf13/cobra"
)

func newGravityCmd(o *options) *cobra.Command {
	var noun, verb, target int64
	cmd := &cobra.Command{
		Use:   "gravity",
		Short: "Run a gravity assist program",
		Long: `Run the program with address 1 set to the noun and address 2 set to the
verb, and print the value left at address 0.

With --target, search for the noun and verb that produce the target value and
print them along with 100*noun+verb.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := o.loadProgram()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("target") {
				n, v, err := gravity.Search(prog, vm.Cell(target))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n, v, gravity.Answer(n, v))
				return nil
			}
			v, err := gravity.Restore(prog, vm.Cell(noun), vm.Cell(verb))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&noun, "noun", 12, "`value` stored at address 1")
	f.Int64Var(&verb, "verb", 2, "`value` stored at address 2")
	f.Int64Var(&target, "target", 0, "search for the noun and verb producing `value`")
	return cmd
}
