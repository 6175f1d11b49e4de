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

// Package ring chains several Intcode instances into a feedback loop.
//
// Each instance of a Ring is loaded with the same program and receives a
// distinct first input (its setting). The output of instance i is sent as
// input to instance (i+1) mod N; the output of the last instance is fed back
// to the first. All instances are driven round-robin by the calling
// goroutine: there is no parallel execution, and the message queue needs no
// locking.
package ring

import (
	"github.com/oelrich/aoc/vm"
	"github.com/pkg/errors"
)

var (
	// ErrDeadlock is returned by Run when every running instance is waiting
	// for input and no message is queued for any of them.
	ErrDeadlock = errors.New("all instances are waiting for input")
	// ErrNoSignal is returned by Run when all instances halted without any
	// value ever being sent to instance 0.
	ErrNoSignal = errors.New("no signal fed back to instance 0")
)

// Message is a value in transit to instance To.
type Message struct {
	To    int
	Value vm.Cell
}

// Ring is a set of instances wired in a closed loop.
type Ring struct {
	machines []*vm.Instance
	queue    []Message
	last     vm.Cell // last value sent to instance 0
	got      bool
	started  bool
}

// New creates a ring of len(settings) instances loaded with prog. Instance i
// has identity i and its setting is queued as its first input.
func New(prog vm.Program, settings []vm.Cell, opts ...vm.Option) (*Ring, error) {
	if len(settings) == 0 {
		return nil, errors.New("ring.New: no settings")
	}
	r := &Ring{
		machines: make([]*vm.Instance, len(settings)),
		queue:    make([]Message, 0, 2*len(settings)),
	}
	for id, s := range settings {
		m, err := vm.New(id, prog, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "ring.New: instance %d", id)
		}
		r.machines[id] = m
		r.queue = append(r.queue, Message{id, s})
	}
	return r, nil
}

// Len returns the number of instances in the ring.
func (r *Ring) Len() int {
	return len(r.machines)
}

// Instance returns instance number id.
func (r *Ring) Instance(id int) *vm.Instance {
	return r.machines[id]
}

// Queue returns the messages waiting to be delivered, oldest first.
func (r *Ring) Queue() []Message {
	return r.queue
}

func (r *Ring) next(id int) int {
	return (id + 1) % len(r.machines)
}

func (r *Ring) post(from int, v vm.Cell) {
	to := r.next(from)
	r.queue = append(r.queue, Message{to, v})
	if to == 0 {
		r.last, r.got = v, true
	}
	log.Debugf("%d -> %d: %d (queue depth %d)", from, to, v, len(r.queue))
}

// take removes the oldest message for instance id from the queue.
func (r *Ring) take(id int) (vm.Cell, bool) {
	for n, m := range r.queue {
		if m.To == id {
			r.queue = append(r.queue[:n], r.queue[n+1:]...)
			return m.Value, true
		}
	}
	return 0, false
}

// Run sends seed to instance 0 and drives all instances until they have all
// halted. It returns the last value that was sent to instance 0.
//
// Instances are resumed in turn; each call to an instance's Run counts as one
// turn, whether the instance made progress or not. An instance waiting for
// input receives the oldest message addressed to it, if any.
//
// If an instance crashes, Run returns its error. ErrDeadlock is returned if
// no instance can make progress.
func (r *Ring) Run(seed vm.Cell) (vm.Cell, error) {
	if r.started {
		return 0, errors.New("ring.Run: ring already started")
	}
	r.started = true
	r.queue = append(r.queue, Message{0, seed})
	active := len(r.machines)
	halted := make([]bool, len(r.machines))
	idle := 0 // consecutive turns without progress
	for id := 0; active > 0; id = r.next(id) {
		if halted[id] {
			continue
		}
		m := r.machines[id]
		st, v := m.Run()
		switch st {
		case vm.Output:
			r.post(id, v)
			idle = 0
		case vm.Input:
			if x, ok := r.take(id); ok {
				m.Deliver(x)
				idle = 0
			} else if idle++; idle >= active {
				return 0, ErrDeadlock
			}
		case vm.Halted:
			log.Debugf("%d halted", id)
			halted[id] = true
			active--
			idle = 0
		case vm.Crashed:
			return 0, errors.Wrapf(m.Err(), "ring: instance %d", id)
		}
	}
	if !r.got {
		return 0, ErrNoSignal
	}
	return r.last, nil
}
