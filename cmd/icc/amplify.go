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

	"github.com/oelrich/aoc/ring"
	"github.com/oelrich/aoc/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAmplifyCmd(o *options) *cobra.Command {
	var (
		settings []int64
		search   bool
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "amplify",
		Short: "Run a ring of instances in a feedback loop",
		Long: `Run one instance of the program per setting, wired in a ring: the
output of each instance is the input of the next one, and the last instance
feeds the first. Each instance first receives its setting, then instance 0
receives the seed. The last value sent to instance 0 is printed.

With --search, all orderings of the settings are tried and the best signal
is printed along with the settings that produced it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(settings) == 0 {
				return errors.New("no settings")
			}
			prog, err := o.loadProgram()
			if err != nil {
				return err
			}
			s := cells(settings)
			if search {
				v, order, err := ring.MaxSignal(prog, s, vm.Cell(seed))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v, vm.Program(order))
				return nil
			}
			r, err := ring.New(prog, s)
			if err != nil {
				return err
			}
			for id := 0; id < r.Len(); id++ {
				o.ran = append(o.ran, r.Instance(id))
			}
			v, err := r.Run(vm.Cell(seed))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64SliceVarP(&settings, "settings", "s", []int64{5, 6, 7, 8, 9}, "comma separated instance `settings`")
	f.BoolVar(&search, "search", false, "try all orderings of the settings")
	f.Int64Var(&seed, "seed", 0, "initial `value` sent to instance 0")
	return cmd
}
