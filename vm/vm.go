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
	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
)

// State is the run state of an Instance.
type State uint8

// Instance run states.
const (
	Ready   State = iota // loaded, not started yet
	Running              // executing instructions
	Input                // waiting for a value, see Deliver
	Output               // a value has been produced
	Halted               // program terminated normally
	Crashed              // program terminated with an error, see Err
)

var stateNames = [...]string{"ready", "running", "input", "output", "halted", "crashed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal returns true for the Halted and Crashed states.
func (s State) Terminal() bool {
	return s == Halted || s == Crashed
}

// Instance represents an Intcode VM instance.
type Instance struct {
	ID       int  // identity, used to tag outputs
	PC       Cell // Program Counter
	RB       Cell // Relative Base
	mem      *Memory
	state    State
	ipc      Cell   // address of the last decoded instruction
	op       Opcode // opcode of the last decoded instruction
	pending  Value  // destination of a pending input
	err      error
	insCount int64
	log      btclog.Logger
}

// Option interface
type Option func(*Instance) error

// Patch writes v at address addr before the program starts. This is used to
// alter a program before running it, like restoring the 1202 program alarm
// state of a gravity assist program.
func Patch(addr, v Cell) Option {
	return func(i *Instance) error {
		return errors.Wrap(i.mem.Write(addr, v), "Patch")
	}
}

// WithLogger sets the logger used to trace the instance's state changes. The
// default is the package logger, see UseLogger.
func WithLogger(l btclog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance with the given identity, loaded with
// a copy of prog. The returned error can only be caused by one of the
// options.
func New(id int, prog Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		ID:  id,
		mem: NewMemory(prog),
		log: log,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// State returns the current state of the instance.
func (i *Instance) State() State {
	return i.state
}

// Err returns the error that caused the instance to crash, nil otherwise.
func (i *Instance) Err() error {
	return i.err
}

// ErrorDescription returns a human readable description of the crash cause,
// or "operational" if the instance did not crash.
func (i *Instance) ErrorDescription() string {
	if i.err == nil {
		return "operational"
	}
	return i.err.Error()
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Memory returns the instance's memory.
func (i *Instance) Memory() *Memory {
	return i.mem
}

// Peek returns the value at address addr. The boolean is false if addr is not
// a valid address.
func (i *Instance) Peek(addr Cell) (Cell, bool) {
	v, err := i.mem.Read(addr)
	return v, err == nil
}

// Poke writes v at address addr.
func (i *Instance) Poke(addr, v Cell) error {
	return i.mem.Write(addr, v)
}

// Deliver supplies an input value to an instance in the Input state and
// returns true. The instance is left untouched and false is returned if it is
// not waiting for input.
//
// Execution does not resume until the next call to Run.
func (i *Instance) Deliver(v Cell) bool {
	if i.state != Input {
		return false
	}
	if err := i.store(i.pending, v); err != nil {
		i.crash(err)
		return true
	}
	i.log.Tracef("vm %d: input %d", i.ID, v)
	i.state = Running
	return true
}

func (i *Instance) crash(err error) (State, Cell) {
	i.err = errors.Wrapf(err, "vm %d crashed @pc=%d", i.ID, i.ipc)
	i.PC = i.ipc
	i.state = Crashed
	i.log.Debugf("%v", i.err)
	return Crashed, 0
}
