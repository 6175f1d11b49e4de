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

// Writes up to len(cells)+denseSlack are stored in the dense slice, anything
// further away goes to the sparse map.
const denseSlack = 4096

// Memory is the addressable storage of an Instance. Cells that have never
// been written read as 0. Negative addresses are invalid.
//
// Memory is backed by a slice for the program image and its immediate
// surroundings, and by a map for far away writes, so that a program poking
// at address 1<<40 does not allocate terabytes.
type Memory struct {
	cells  []Cell
	sparse map[Cell]Cell
	top    Cell // highest written address + 1
}

// NewMemory returns a new Memory initialized with a copy of prog.
func NewMemory(prog Program) *Memory {
	c := make([]Cell, len(prog), len(prog)+len(prog)/4+16)
	copy(c, prog)
	return &Memory{cells: c, top: Cell(len(prog))}
}

// Read returns the value stored at address addr.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, &AddressError{Addr: addr}
	}
	if addr < Cell(len(m.cells)) {
		return m.cells[addr], nil
	}
	return m.sparse[addr], nil
}

// Write stores v at address addr, extending the memory if needed.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return &AddressError{Addr: addr}
	}
	switch l := Cell(len(m.cells)); {
	case addr < l:
		m.cells[addr] = v
	case addr < l+denseSlack:
		m.grow(addr)
		m.cells[addr] = v
	default:
		if m.sparse == nil {
			m.sparse = make(map[Cell]Cell)
		}
		m.sparse[addr] = v
	}
	if addr >= m.top {
		m.top = addr + 1
	}
	return nil
}

// grow extends the dense slice so that addr becomes a valid index, migrating
// any sparse cells that fall into the new range.
func (m *Memory) grow(addr Cell) {
	n := int(addr) + 1
	if n <= cap(m.cells) {
		m.cells = m.cells[:n]
	} else {
		c := make([]Cell, n, n+n/2)
		copy(c, m.cells)
		m.cells = c
	}
	for a, v := range m.sparse {
		if a < Cell(n) {
			m.cells[a] = v
			delete(m.sparse, a)
		}
	}
}

// Len returns the highest address ever written (or loaded) + 1.
func (m *Memory) Len() Cell {
	return m.top
}

// Snapshot returns a copy of the dense part of memory, starting at address 0.
// Cells written far beyond it are not included, see Sparse.
func (m *Memory) Snapshot() []Cell {
	return append([]Cell(nil), m.cells...)
}

// Sparse returns a copy of the cells stored outside of the dense part of
// memory, indexed by address. It returns nil if there are none.
func (m *Memory) Sparse() map[Cell]Cell {
	if len(m.sparse) == 0 {
		return nil
	}
	s := make(map[Cell]Cell, len(m.sparse))
	for a, v := range m.sparse {
		s[a] = v
	}
	return s
}
