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

// Package gravity implements the gravity assist program helpers: restoring a
// program to a given noun/verb state and searching for the inputs that
// produce a target output.
//
// The noun and verb are the values stored at addresses 1 and 2 of the
// program before it runs. The output is the value left at address 0 once the
// program halts.
package gravity

import (
	"github.com/oelrich/aoc/vm"
	"github.com/pkg/errors"
)

// MaxInput is the highest value tried by Search for the noun and the verb.
const MaxInput = 99

// ErrNotFound is returned by Search when no noun/verb pair yields the target.
var ErrNotFound = errors.New("no noun/verb pair produces the target value")

// Restore runs a copy of prog with address 1 set to noun and address 2 set to
// verb, and returns the value at address 0 after the program halts. prog
// itself is left untouched.
func Restore(prog vm.Program, noun, verb vm.Cell) (vm.Cell, error) {
	i, err := vm.New(0, prog, vm.Patch(1, noun), vm.Patch(2, verb))
	if err != nil {
		return 0, err
	}
	if err = i.Drive(nil, nil); err != nil {
		return 0, errors.Wrapf(err, "noun %d, verb %d", noun, verb)
	}
	v, _ := i.Peek(0)
	return v, nil
}

// Search tries all noun/verb pairs in [0, MaxInput], noun first, and returns
// the first one for which Restore yields target. Pairs that make the program
// crash are skipped.
func Search(prog vm.Program, target vm.Cell) (noun, verb vm.Cell, err error) {
	for noun = 0; noun <= MaxInput; noun++ {
		for verb = 0; verb <= MaxInput; verb++ {
			v, rerr := Restore(prog, noun, verb)
			if rerr != nil {
				log.Tracef("skipping: %v", rerr)
				continue
			}
			if v == target {
				log.Debugf("found noun %d, verb %d for %d", noun, verb, target)
				return noun, verb, nil
			}
		}
	}
	return 0, 0, ErrNotFound
}

// Answer combines noun and verb into a single number: 100*noun + verb.
func Answer(noun, verb vm.Cell) vm.Cell {
	return 100*noun + verb
}
