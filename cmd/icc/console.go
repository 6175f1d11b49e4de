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
	"strconv"
	"strings"

	"github.com/oelrich/aoc/vm"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// console connects a running program to the user. Input values are taken
// from a preset list first, then read one per line. When the input is a
// terminal, it is switched to raw mode and lines are read with a prompt.
type console struct {
	w           io.Writer
	preset      []vm.Cell
	readLine    func() (string, error)
	interactive bool
	restore     func()
}

func newConsole(in io.Reader, out io.Writer, preset []vm.Cell) (*console, error) {
	c := &console{w: out, preset: preset, restore: func() {}}
	if f, ok := in.(*os.File); ok && isTerminal(f.Fd()) {
		fd := int(f.Fd())
		st, err := term.MakeRaw(fd)
		if err != nil {
			return nil, errors.Wrap(err, "MakeRaw failed")
		}
		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{in, out}, "> ")
		c.w = t
		c.readLine = t.ReadLine
		c.interactive = true
		c.restore = func() { term.Restore(fd, st) }
		return c, nil
	}
	s := bufio.NewScanner(in)
	c.readLine = func() (string, error) {
		if s.Scan() {
			return s.Text(), nil
		}
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c, nil
}

// Close restores the terminal state.
func (c *console) Close() error {
	c.restore()
	return nil
}

// input returns the next input value. Blank lines are skipped. In interactive
// mode, invalid numbers are reported and the user is asked again.
func (c *console) input() (vm.Cell, error) {
	if len(c.preset) > 0 {
		v := c.preset[0]
		c.preset = c.preset[1:]
		return v, nil
	}
	for {
		l, err := c.readLine()
		if err == io.EOF {
			return 0, vm.ErrNoInput
		}
		if err != nil {
			return 0, errors.Wrap(err, "read failed")
		}
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		n, err := strconv.ParseInt(l, 10, 64)
		if err == nil {
			return vm.Cell(n), nil
		}
		if !c.interactive {
			return 0, errors.Wrap(err, "invalid input")
		}
		fmt.Fprintf(c.w, "not a number: %s\n", l)
	}
}

func (c *console) output(v vm.Cell) error {
	_, err := fmt.Fprintln(c.w, v)
	return err
}
