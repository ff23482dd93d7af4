/*
 * Copyright 2024 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"
	"os"
)

// ViolationHandler is the replaceable sink invoked when Validate finds
// an object invalid. It receives the offending object's Handle.
//
// Exactly one handler is installed at a time; there is no ordered
// chain. Installing nil restores DefaultViolationHandler.
type ViolationHandler func(Handle)

// SpatialHandler is the replaceable sink invoked when AssertSpatial's
// condition is false. It carries no address: spatial checks are not
// tied to any particular tracked object.
type SpatialHandler func()

// DefaultViolationHandler writes a one-line diagnostic naming the
// offending handle to stderr and terminates the process.
func DefaultViolationHandler(h Handle) {
	fmt.Fprintf(os.Stderr, "depsafe: temporal violation on object %s\n", h)
	os.Exit(1)
}

// DefaultSpatialHandler writes a one-line diagnostic to stderr and
// terminates the process.
func DefaultSpatialHandler() {
	fmt.Fprintln(os.Stderr, "depsafe: spatial violation")
	os.Exit(1)
}
