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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	args	description
//	------	---	----	------------------------------------------------------
//	1	add	a b d	d = a + b
//	2	mul	a b d	d = a * b
//	3	in	d	d = next input value
//	4	out	a	output a
//	5	jnz	a t	jump to t if a != 0
//	6	jz	a t	jump to t if a == 0
//	7	lt	a b d	d = 1 if a < b, else 0
//	8	eq	a b d	d = 1 if a == b, else 0
//	9	arb	a	add a to the relative base
//	99	hlt		halt
//
// Operands:
//
// Each operand is a value with an optional addressing mode prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42 itself
//	~42	relative mode: the value at address relative base + 42
//
// Destination operands (d above) cannot use immediate mode. The assembler
// computes the mode digits of the instruction cell from the prefixes, so that
// "mul 9 #2 10" compiles to 1002,9,2,10.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	( this is a
//	  multiline comment )
//	(this is not a comment and will be seen as a label reference )
//
// Comments do not nest.
//
// Literals and names:
//
// Input is split at white space into tokens. A value can be:
//
//	- a Go integer literal (see strconv.ParseInt), like 12, -4, 0x1F or 017.
//	- a Go character literal between single quotes, like 'A' or '\n'. Since
//	  tokens are split at white space, a space character must be written
//	  as '\x20'.
//	- the name of a constant defined with .equ.
//	- a label name. Labels may be referenced before they are defined.
//
// Wherever an instruction is expected, a value compiles as a raw cell, just
// like with the .dat directive.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and evaluate to the
// address of the next cell:
//
//	:loop	in buf
//		jnz buf #loop	( immediate: jump target is the address of loop )
//		hlt
//	:buf	.dat 0
//
// Label names cannot start with any of the characters ':', '.', '#', '~' or
// '\'' and cannot be mnemonics.
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant. The value must be an integer literal, character literal
// or previously defined constant.
//
//	.org <value>
//
// places the next cell at the given address. Skipped cells are zero.
//
//	.dat <value>
//
// compiles the given value as-is. The disassembler uses .dat for cells that
// do not hold a valid instruction.
package asm
