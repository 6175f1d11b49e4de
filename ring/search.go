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

package ring

import (
	"github.com/oelrich/aoc/vm"
	"github.com/pkg/errors"
)

// Permute calls fn with every permutation of s, generated in place with
// Heap's algorithm. The slice passed to fn is s itself and is only valid until
// fn returns. Iteration stops early if fn returns false.
//
// On return, s holds the last permutation visited.
func Permute(s []vm.Cell, fn func([]vm.Cell) bool) {
	c := make([]int, len(s))
	if !fn(s) {
		return
	}
	for i := 0; i < len(s); {
		if c[i] >= i {
			c[i] = 0
			i++
			continue
		}
		if i&1 == 0 {
			s[0], s[i] = s[i], s[0]
		} else {
			s[c[i]], s[i] = s[i], s[c[i]]
		}
		if !fn(s) {
			return
		}
		c[i]++
		i = 0
	}
}

// MaxSignal runs a fresh ring for every ordering of settings and returns the
// highest signal obtained along with the settings that produced it. The
// settings slice is not modified.
//
// Any ring error aborts the search.
func MaxSignal(prog vm.Program, settings []vm.Cell, seed vm.Cell) (best vm.Cell, order []vm.Cell, err error) {
	if len(settings) == 0 {
		return 0, nil, errors.New("ring.MaxSignal: no settings")
	}
	s := append([]vm.Cell(nil), settings...)
	Permute(s, func(p []vm.Cell) bool {
		var r *Ring
		if r, err = New(prog, p); err != nil {
			return false
		}
		var v vm.Cell
		if v, err = r.Run(seed); err != nil {
			err = errors.Wrapf(err, "settings %v", p)
			return false
		}
		if order == nil || v > best {
			best = v
			order = append(order[:0], p...)
		}
		return true
	})
	if err != nil {
		return 0, nil, err
	}
	log.Debugf("max signal %d for settings %v", best, order)
	return best, order, nil
}
