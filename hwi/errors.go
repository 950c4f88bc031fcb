// Copyright 2025 go-highway Authors
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

package hwi

import "fmt"

// InternalError is the panic value raised when a caller breaks an invariant
// of the metadata: an ID outside the registry, an element type outside the
// instruction range, or a refinement query on an intrinsic it does not apply
// to. Continuing with a default would silently corrupt generated code, so
// compilation of the current method must stop.
type InternalError struct {
	Op     string // query that detected the violation, e.g. "Lookup"
	ID     ID
	Detail string
}

func (e *InternalError) Error() string {
	if e.ID == IllegalID {
		return fmt.Sprintf("hwi: %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("hwi: %s: %s (id %d)", e.Op, e.Detail, e.ID)
}

// Fatalf panics with an [*InternalError].
func Fatalf(op string, id ID, format string, args ...any) {
	panic(&InternalError{Op: op, ID: id, Detail: fmt.Sprintf(format, args...)})
}

// Recover converts a panic carrying an [*InternalError] into an error stored
// in *errp. It must be called directly by defer:
//
//	func compileMethod(m *Method) (err error) {
//		defer hwi.Recover(&err)
//		...
//	}
//
// Any other panic value is re-raised.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(*InternalError)
	if !ok {
		panic(r)
	}
	*errp = ie
}
