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

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Program is an Intcode memory image. It becomes the initial contents of
// memory, starting at address 0.
type Program []Cell

// Clone returns a copy of p.
func (p Program) Clone() Program {
	return append(Program(nil), p...)
}

// String returns the comma separated representation of p.
func (p Program) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(c), 10))
	}
	return b.String()
}

// Parse reads comma separated programs from r, one per line. Empty lines are
// skipped and whitespace around values is ignored.
func Parse(r io.Reader) ([]Program, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	var progs []Program
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "Parse")
		}
		line, _ := cr.FieldPos(0)
		p := make(Program, 0, len(rec))
		for i, f := range rec {
			f = strings.TrimSpace(f)
			if f == "" && i == len(rec)-1 {
				// trailing comma
				continue
			}
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "Parse: line %d, field %d", line, i+1)
			}
			p = append(p, Cell(n))
		}
		progs = append(progs, p)
	}
	return progs, nil
}

// ParseString parses a single comma separated program.
func ParseString(s string) (Program, error) {
	progs, err := Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	if len(progs) == 0 {
		return nil, errors.New("ParseString: empty program")
	}
	return progs[0], nil
}

// LoadFile loads the first program found in file fileName.
func LoadFile(fileName string) (Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "LoadFile")
	}
	defer f.Close()
	progs, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	if len(progs) == 0 {
		return nil, errors.Errorf("LoadFile %v: no program found", fileName)
	}
	return progs[0], nil
}
