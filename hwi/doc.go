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

// Package hwi holds the architecture-neutral half of the hardware intrinsic
// metadata used by a JIT backend.
//
// Every intrinsic the importer recognizes has exactly one immutable [Info]
// record: the ISA that guards it, its natural vector width, its argument
// count, the instruction to emit per element type, a [Category] that picks the
// generic lowering template and a [Flag] set of capabilities. Records live in
// a [Registry] that is built once, during package initialization of an
// architecture package, and only read afterwards, so any number of method
// compilations may query it concurrently.
//
// The architecture packages (hwi/xarch and hwi/arm64) own their tables, their
// name resolution and everything whose meaning differs between the two
// families. The most important of those is read/modify/write semantics: bit
// [FlagArchRMW] means "no RMW" on x86 and "has RMW" on arm64, so there is no
// HasRMWSemantics in this package. Use the accessor of the architecture
// package, or the one selected at build time by hwi/target.
//
// Errors come in two kinds. Expected negative answers ([IllegalID], an
// immediate that is out of range, an ISA that is not fully implemented) are
// ordinary return values. Violated invariants (an unknown ID, an element type
// outside [TypeByte, TypeDouble], a refinement query on an intrinsic it does
// not apply to) panic with an [*InternalError]; the driver compiling the
// current method turns that back into an error with [Recover].
//
// Usage:
//
//	func importIntrinsic(t hwi.Target, ctx hwi.ISASupport, class, method string) (err error) {
//		defer hwi.Recover(&err)
//		id := t.ResolveID(ctx, class, method, "")
//		if id == hwi.IllegalID {
//			return nil // ordinary call
//		}
//		info := t.Registry().Lookup(id)
//		...
//	}
package hwi
