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

// The icc command line tool runs Intcode programs.
//
// Usage:
//
//	icc [global flags] command [flags]
//
// Commands:
//
//	run	run a program, reading input from --input then stdin
//	amplify	run a ring of instances in a feedback loop
//	gravity	run a gravity assist program or search for its inputs
//	disasm	disassemble a program
//	asm	assemble a source file and print the program
//
// Global flags:
//
//	--log-level level
//		log level: trace, debug, info, warn, error, critical or off
//		(default "off")
//	-p, --program file
//		load program from file (default "input.csv")
//	--stats
//		print instruction counts on exit
//
// Programs are read from comma separated text files. Only the first line of
// the file is used.
//
// run: when standard input is a terminal, it is switched to raw mode and input
// values are read with a line editing prompt. Otherwise values are read one
// per line. --trace writes each instruction to stderr before it executes;
// --dump prints the registers and memory once the program halts.
//
// With --log-level debug or trace, errors are printed with a full stack trace
// and the state of crashed instances.
package main
