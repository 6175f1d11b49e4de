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

package asm

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/oelrich/aoc/vm"
)

// maxErrors is the number of errors after which the parser gives up.
const maxErrors = 10

var mnemonics = make(map[string]vm.Opcode)

func init() {
	for _, op := range []vm.Opcode{
		vm.OpAdd, vm.OpMul, vm.OpIn, vm.OpOut, vm.OpJumpTrue,
		vm.OpJumpFalse, vm.OpLess, vm.OpEqual, vm.OpAdjustBase, vm.OpHalt,
	} {
		mnemonics[op.String()] = op
	}
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	prog   vm.Program
	pc     int
	s      scanner.Scanner
	tok    string
	labels map[string]*label
	consts map[string]vm.Cell
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]*label),
		consts: make(map[string]vm.Cell),
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errs = append(p.errs, struct {
		Pos scanner.Position
		Msg string
	}{pos, msg})
}

func (p *parser) failed() bool {
	return len(p.errs) >= maxErrors
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.prog) {
		p.prog = append(p.prog, 0)
	}
	p.prog[p.pc] = v
	p.pc++
}

// next scans the next token, skipping comments. It returns false at EOF.
func (p *parser) next() bool {
	for {
		tok := p.s.Scan()
		if tok == scanner.EOF {
			return false
		}
		p.tok = p.s.TokenText()
		if p.tok != "(" {
			return true
		}
		start := p.s.Position
		for {
			if tok = p.s.Scan(); tok == scanner.EOF {
				p.error(start, "unterminated comment")
				return false
			}
			if p.s.TokenText() == ")" {
				break
			}
		}
	}
}

// literal converts the current token to a number. Accepted forms are Go
// integer literals, character literals and constant names.
func (p *parser) literal(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err == nil && tail == "" {
			return vm.Cell(r), true
		}
		return 0, false
	}
	v, ok := p.consts[s]
	return v, ok
}

// value writes the value designated by s at the current position. s is
// either a literal or a label reference.
func (p *parser) value(s string) {
	if v, ok := p.literal(s); ok {
		p.write(v)
		return
	}
	if !p.validName(s) {
		return
	}
	l := p.labels[s]
	if l == nil {
		l = &label{labelSite{p.s.Position, -1}, nil}
		p.labels[s] = l
	}
	l.uses = append(l.uses, labelSite{p.s.Position, p.pc})
	p.write(0)
}

func (p *parser) validName(s string) bool {
	switch {
	case s[0] == '\'':
		p.error(p.s.Position, "invalid character literal "+s)
	case s[0] == ':' || s[0] == '.' || s[0] == '#' || s[0] == '~':
		p.error(p.s.Position, "unexpected "+s)
	case mnemonics[s] != 0:
		p.error(p.s.Position, "unexpected mnemonic as argument: "+s)
	default:
		return true
	}
	return false
}

// argument reads the next token and returns it if it is not a directive or
// a label definition.
func (p *parser) argument(what string) (string, bool) {
	pos := p.s.Position
	if !p.next() {
		p.error(pos, "missing argument for "+what)
		return "", false
	}
	return p.tok, true
}

func (p *parser) instruction(op vm.Opcode) {
	ins := vm.Instruction{Op: op}
	pc := p.pc
	p.write(0)
	for n := range ins.Operands() {
		s, ok := p.argument(op.String())
		if !ok {
			return
		}
		var mode vm.Mode
		switch s[0] {
		case '#':
			mode, s = vm.Immediate, s[1:]
		case '~':
			mode, s = vm.Relative, s[1:]
		}
		if s == "" {
			p.error(p.s.Position, "missing operand value")
			return
		}
		if mode == vm.Immediate && op.Dest() == n {
			p.error(p.s.Position, "immediate destination operand for "+op.String())
		}
		ins.Args[n].Mode = mode
		p.value(s)
	}
	p.prog[pc] = ins.Encode()
}

func (p *parser) define(name string) {
	if name == "" {
		p.error(p.s.Position, "empty label name")
		return
	}
	if !p.validName(name) {
		return
	}
	if _, ok := p.consts[name]; ok {
		p.error(p.s.Position, "label redefinition: "+name+", previously defined as a constant")
		return
	}
	l := p.labels[name]
	if l == nil {
		p.labels[name] = &label{labelSite{p.s.Position, p.pc}, nil}
		return
	}
	if l.address != -1 {
		p.error(p.s.Position, "label redefinition: "+name+", previous definition here: "+l.pos.String())
		return
	}
	l.labelSite = labelSite{p.s.Position, p.pc}
}

func (p *parser) directive(d string) {
	switch d {
	case ".dat":
		if s, ok := p.argument(d); ok {
			p.value(s)
		}
	case ".org":
		s, ok := p.argument(d)
		if !ok {
			return
		}
		v, ok := p.literal(s)
		if !ok || v < 0 {
			p.error(p.s.Position, ".org: invalid address "+s)
			return
		}
		p.pc = int(v)
	case ".equ":
		name, ok := p.argument(d)
		if !ok {
			return
		}
		pos := p.s.Position
		if _, ok = p.labels[name]; ok {
			p.error(pos, ".equ: redefinition of "+name+", previously defined or used as a label")
			return
		}
		if !p.validName(name) {
			return
		}
		s, ok := p.argument(d)
		if !ok {
			return
		}
		v, ok := p.literal(s)
		if !ok {
			p.error(p.s.Position, ".equ: invalid value "+s)
			return
		}
		p.consts[name] = v
	default:
		p.error(p.s.Position, "unknown directive "+d)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Program, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for !p.failed() && p.next() {
		s := p.tok
		switch {
		case s[0] == ':':
			p.define(s[1:])
		case s[0] == '.':
			p.directive(s)
		case s == ")":
			p.error(p.s.Position, "unbalanced )")
		default:
			if op, ok := mnemonics[s]; ok {
				p.instruction(op)
			} else if strings.HasPrefix(s, "#") || strings.HasPrefix(s, "~") {
				p.error(p.s.Position, "operand outside of an instruction: "+s)
			} else {
				// raw cell
				p.value(s)
			}
		}
	}

	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.prog[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		p.errs.sort()
		return nil, p.errs
	}
	return p.prog, nil
}
