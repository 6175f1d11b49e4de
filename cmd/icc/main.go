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
	"os"

	"github.com/btcsuite/btclog"
	"github.com/oelrich/aoc/gravity"
	"github.com/oelrich/aoc/ring"
	"github.com/oelrich/aoc/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var log = btclog.Disabled

// options shared by all commands.
type options struct {
	logLevel string
	stats    bool
	program  string

	level btclog.Level
	// instances run by the last command, for --stats
	ran []*vm.Instance
}

// setupLogging creates a logging backend on w and hands subsystem loggers to
// the library packages.
func (o *options) setupLogging(w io.Writer) error {
	lvl, ok := btclog.LevelFromString(o.logLevel)
	if !ok {
		return errors.Errorf("invalid log level %q", o.logLevel)
	}
	o.level = lvl
	backend := btclog.NewBackend(w)
	for tag, use := range map[string]func(btclog.Logger){
		"VM":   vm.UseLogger,
		"RING": ring.UseLogger,
		"GRAV": gravity.UseLogger,
		"ICC":  func(l btclog.Logger) { log = l },
	} {
		l := backend.Logger(tag)
		l.SetLevel(lvl)
		use(l)
	}
	return nil
}

func (o *options) debug() bool {
	return o.level <= btclog.LevelDebug
}

func (o *options) loadProgram() (vm.Program, error) {
	p, err := vm.LoadFile(o.program)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d cells from %s", len(p), o.program)
	return p, nil
}

func (o *options) printStats(w io.Writer) {
	for _, i := range o.ran {
		fmt.Fprintf(w, "vm %d: %d instructions, %v, pc=%d rb=%d\n",
			i.ID, i.InstructionCount(), i.State(), i.PC, i.RB)
	}
}

func cells(a []int64) []vm.Cell {
	c := make([]vm.Cell, len(a))
	for n, v := range a {
		c[n] = vm.Cell(v)
	}
	return c
}

func newRootCmd() (*cobra.Command, *options) {
	o := &options{level: btclog.LevelOff}
	root := &cobra.Command{
		Use:           "icc",
		Short:         "Intcode computer",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setupLogging(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.stats {
				o.printStats(cmd.ErrOrStderr())
			}
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&o.logLevel, "log-level", "off", "log `level`: trace, debug, info, warn, error, critical or off")
	f.BoolVar(&o.stats, "stats", false, "print instruction counts on exit")
	f.StringVarP(&o.program, "program", "p", "input.csv", "load program from `file`")

	root.AddCommand(
		newRunCmd(o),
		newAmplifyCmd(o),
		newGravityCmd(o),
		newDisasmCmd(o),
		newAsmCmd(),
	)
	return root, o
}

// atExit reports err. With debug logging enabled, the error is printed with
// its stack trace, along with the state of any crashed instance.
func atExit(o *options, err error) {
	if err == nil {
		return
	}
	if !o.debug() {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	for _, i := range o.ran {
		if i.State() == vm.Crashed {
			v, _ := i.Peek(i.PC)
			fmt.Fprintf(os.Stderr, "vm %d: PC: %d (%d), RB: %d\n", i.ID, i.PC, v, i.RB)
		}
	}
	os.Exit(1)
}

func main() {
	root, o := newRootCmd()
	atExit(o, root.Execute())
}
