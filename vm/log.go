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

import "github.com/btcsuite/btclog"

// log is the logger used by instances created without the WithLogger option.
// It is disabled by default.
var log = btclog.Disabled

// UseLogger sets the package-wide logger. It only affects instances created
// after the call.
func UseLogger(logger btclog.Logger) {
	log = logger
}
