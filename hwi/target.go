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

import (
	"fmt"
	"strings"
)

// Arch is an architecture family with its own intrinsic table.
type Arch uint8

const (
	ArchUnknown Arch = iota

	// ArchXArch is x86 and x64.
	ArchXArch

	// ArchArm64 is AArch64.
	ArchArm64
)

// String returns "xarch", "arm64" or "unknown".
func (a Arch) String() string {
	switch a {
	case ArchXArch:
		return "xarch"
	case ArchArm64:
		return "arm64"
	default:
		return "unknown"
	}
}

// ParseArch accepts the family names and the usual GOARCH spellings.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xarch", "x64", "x86", "amd64", "386", "x86_64":
		return ArchXArch, nil
	case "arm64", "aarch64":
		return ArchArm64, nil
	default:
		return ArchUnknown, fmt.Errorf("unknown architecture %q", s)
	}
}

// ISASupport is the part of the compilation context the resolver needs. It
// belongs to the thread compiling the current method.
type ISASupport interface {
	// Supports reports whether the compilation may use isa.
	Supports(isa ISA) bool

	// ExactlyDependsOn reports whether the generated code may assume isa
	// is present, as opposed to merely using it when available.
	ExactlyDependsOn(isa ISA) bool

	// BaselineSIMDSupported reports whether the Vector helper classes are
	// usable at all.
	BaselineSIMDSupported() bool
}

// Target is the query surface of one architecture family. The two
// implementations, xarch.Target and arm64.Target, differ in the meaning of
// the RMW bit, in their ISA names and in their immediate rules.
type Target interface {
	Arch() Arch
	Registry() *Registry

	// HasRMWSemantics reports whether the destination of id's instruction is
	// also one of its sources.
	HasRMWSemantics(id ID) bool

	// ResolveID maps a (class, method) reference to an intrinsic. Ordinary
	// calls yield IllegalID.
	ResolveID(ctx ISASupport, className, methodName, enclosingClassName string) ID

	// ResolveISA classifies a class name. Unknown names yield ISAIllegal.
	ResolveISA(className, enclosingClassName string) ISA

	// ClassNames is the inverse of ResolveISA.
	ClassNames(isa ISA) (className, enclosingClassName string, ok bool)

	IsFullyImplementedISA(isa ISA) bool
	IsScalarISA(isa ISA) bool

	// ImmUpperBound returns the largest legal immediate of an IMM intrinsic.
	ImmUpperBound(id ID) int

	// IsLegalImm reports whether ival may be encoded as id's immediate.
	IsLegalImm(id ID, ival int) bool
}
