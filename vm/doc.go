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

// Package vm implements the Intcode computer.
//
// An Instance executes a Program stored in a sparse, integer addressed
// memory. Unlike a classic run-to-completion interpreter, an Instance is
// suspendable: Run returns control to the caller whenever the program needs
// input or has produced a value, and picks up where it left off on the next
// call. This is what allows several instances to be chained together by a
// single goroutine (see package ring).
//
// The life cycle of an instance is:
//
//	Ready -> Running -> (Input | Output)* -> Halted | Crashed
//
// While in the Input state, Run keeps reporting Input and does not execute
// anything until a value has been supplied with Deliver. After an Output, the
// next call to Run resumes right after the output instruction. Halted and
// Crashed are terminal.
//
// All values are signed 64 bits integers. Additions and multiplications that
// would overflow crash the instance instead of silently wrapping around.
//
// For simple use cases where all inputs are known up front, RunToEnd and Exec
// will run a program to completion and collect its outputs.
//
// Known limitation: a program stuck in an infinite loop never returns from
// Run.
package vm
