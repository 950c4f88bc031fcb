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

// Package xarch holds the hardware intrinsic table of the x86 and x64
// family and the rules that are specific to it: the SSE-style read/modify/
// write default, imm8 bounds, gathers and the float comparison predicates.
package xarch

import "github.com/ajroetker/go-hwintrinsic/hwi"

// Registry returns the xarch intrinsic table.
func Registry() *hwi.Registry { return registry }

// Lookup returns the record of id. It is fatal for ids outside the table.
func Lookup(id hwi.ID) hwi.Info { return registry.Lookup(id) }

// Family implements [hwi.Target] for xarch.
type Family struct{}

var _ hwi.Target = Family{}

// Target returns the xarch family.
func Target() Family { return Family{} }

// Arch returns the family tag, hwi.ArchXArch.
func (Family) Arch() hwi.Arch { return hwi.ArchXArch }

// Registry returns the xarch intrinsic table.
func (Family) Registry() *hwi.Registry { return registry }

// HasRMWSemantics reports whether id overwrites its first source; see [HasRMWSemantics].
func (Family) HasRMWSemantics(id hwi.ID) bool { return HasRMWSemantics(id) }

// ResolveISA maps a class name to its ISA; see [ResolveISA].
func (Family) ResolveISA(className, enclosingClassName string) hwi.ISA {
	return ResolveISA(className, enclosingClassName)
}

// ClassNames returns the class names of isa; see [ClassNames].
func (Family) ClassNames(isa hwi.ISA) (string, string, bool) { return ClassNames(isa) }

// IsFullyImplementedISA reports whether every member of isa is in the table.
func (Family) IsFullyImplementedISA(isa hwi.ISA) bool { return IsFullyImplementedISA(isa) }

// IsScalarISA reports whether isa works on general purpose registers only.
func (Family) IsScalarISA(isa hwi.ISA) bool { return IsScalarISA(isa) }

// ImmUpperBound returns the largest immediate of the IMM intrinsic id; see [ImmUpperBound].
func (Family) ImmUpperBound(id hwi.ID) int { return ImmUpperBound(id) }

// IsLegalImm reports whether ival encodes as the immediate of id; see [IsInImmRange].
func (Family) IsLegalImm(id hwi.ID, ival int) bool { return IsInImmRange(id, ival) }

// ResolveID resolves a method call to an intrinsic ID; see [ResolveID].
func (Family) ResolveID(ctx hwi.ISASupport, className, methodName, enclosingClassName string) hwi.ID {
	return ResolveID(ctx, className, methodName, enclosingClassName)
}
