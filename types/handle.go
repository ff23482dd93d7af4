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
	"bytes"

	"github.com/gofrs/uuid/v5"
)

// Handle is the opaque identity of a tracked object. It stands in for
// a raw object address: the engine never dereferences it, only
// compares it for bit-identity and uses it as a map/tree key.
type Handle uuid.UUID

// Zero is the reserved "no handle" value. It is never minted by
// NewHandle and never appears as a live registry key.
var Zero Handle

// NewHandle mints a fresh, process-unique Handle.
func NewHandle() Handle {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.Must(uuid.NewV4())
	}
	return Handle(id)
}

// String returns the handle's canonical textual form, used only for
// diagnostics (violation reports, test failure messages).
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// IsZero reports whether h is the reserved zero value.
func (h Handle) IsZero() bool {
	return h == Zero
}

// Compare imposes a total order over handles by raw byte comparison.
// The ordering carries no meaning beyond giving the splay tree a key
// to sort on; only equality is ever semantically significant.
func (h Handle) Compare(other Handle) int {
	a := uuid.UUID(h)
	b := uuid.UUID(other)
	return bytes.Compare(a[:], b[:])
}
