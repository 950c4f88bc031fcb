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

// ID identifies one intrinsic overload family. Valid IDs of a registry are
// the dense range 1..Len(); IllegalID is never valid.
type ID uint16

const (
	// IllegalID is what the resolver returns for ordinary calls.
	IllegalID ID = 0

	// Pseudo IDs produced by the resolver. They are named intrinsics the
	// importer expands itself and have no registry record.
	IsSupportedFalse ID = 0xFFF0 + iota
	IsSupportedTrue
	IsSupportedDynamic
	ThrowPlatformNotSupported
)

// IsPseudo reports whether id is one of the resolver's pseudo IDs.
func (id ID) IsPseudo() bool {
	return id >= IsSupportedFalse && id <= ThrowPlatformNotSupported
}

// ISA is a hardware feature tag. Values are defined by the architecture
// packages; ISAIllegal is shared.
type ISA uint8

// ISAIllegal means "no such instruction set".
const ISAIllegal ISA = 0

// Ins is a target instruction. Values are defined by the architecture
// packages; InsInvalid is shared and means "no instruction".
type Ins uint16

// InsInvalid fills instruction slots with no valid encoding.
const InsInvalid Ins = 0

// NoIval is the Ival of records without a fixed immediate.
const NoIval = -1

// VarArgs is the NumArgs of records whose arity depends on the call site.
const VarArgs = -1

// Info is the immutable description of one intrinsic.
type Info struct {
	ID       ID
	Name     string
	ISA      ISA
	Ival     int // fixed immediate, NoIval if none
	SimdSize int // natural vector width in bytes, 0 for scalar ops
	NumArgs  int // VarArgs if the count depends on the call site

	// Ins holds the instruction per element type, indexed by
	// type-TypeByte.
	Ins [NumElementTypes]Ins

	Category Category
	Flags    Flag
}

// InsFor returns the instruction for element type t, or InsInvalid if t is
// not an element type.
func (in Info) InsFor(t VarType) Ins {
	if !t.IsElementType() {
		return InsInvalid
	}
	return in.Ins[t-TypeByte]
}

// Flag predicates, one per bit. Each is a pure projection of Flags.

// IsCommutative reports whether the operands may be swapped.
func (in Info) IsCommutative() bool { return in.Flags&FlagCommutative != 0 }

// HasFullRangeImm reports whether the immediate accepts every imm8 value.
func (in Info) HasFullRangeImm() bool { return in.Flags&FlagFullRangeIMM != 0 }

// RequiresCodegen reports whether the intrinsic reaches code generation.
func (in Info) RequiresCodegen() bool { return in.Flags&FlagNoCodeGen == 0 }

// HasFixedSimdSize reports whether SimdSize holds at every call site.
func (in Info) HasFixedSimdSize() bool { return in.Flags&FlagUnfixedSIMDSize == 0 }

// GeneratesMultipleIns reports whether lowering emits more than one instruction.
func (in Info) GeneratesMultipleIns() bool { return in.Flags&FlagMultiIns != 0 }

// SupportsContainment reports whether a memory operand may be folded into the instruction.
func (in Info) SupportsContainment() bool { return in.Flags&FlagNoContainment == 0 }

// CopiesUpperBits reports whether the upper elements come from a source operand.
func (in Info) CopiesUpperBits() bool { return in.Flags&FlagCopyUpperBits != 0 }

// BaseTypeFromFirstArg reports whether the base type comes from the first argument.
func (in Info) BaseTypeFromFirstArg() bool { return in.Flags&FlagBaseTypeFromFirstArg != 0 }

// BaseTypeFromSecondArg reports whether the base type comes from the second argument.
func (in Info) BaseTypeFromSecondArg() bool { return in.Flags&FlagBaseTypeFromSecondArg != 0 }

// IsFloatingPointUsed reports whether using the intrinsic makes the method use
// floating point registers.
func (in Info) IsFloatingPointUsed() bool { return in.Flags&FlagNoFloatingPointUsed == 0 }

// MaybeImm reports whether the intrinsic has both immediate and vector overloads.
func (in Info) MaybeImm() bool { return in.Flags&FlagMaybeIMM != 0 }

// NoJmpTableImm reports whether a non-constant immediate needs no jump table.
func (in Info) NoJmpTableImm() bool { return in.Flags&FlagNoJmpTableIMM != 0 }

// HasSpecialCodegen reports whether the code generator special cases the intrinsic.
func (in Info) HasSpecialCodegen() bool { return in.Flags&FlagSpecialCodeGen != 0 }

// HasSpecialImport reports whether the importer special cases the intrinsic.
func (in Info) HasSpecialImport() bool { return in.Flags&FlagSpecialImport != 0 }

// MaybeMemoryLoad reports whether a pointer overload reads memory.
func (in Info) MaybeMemoryLoad() bool { return in.Flags&FlagMaybeMemoryLoad != 0 }

// MaybeMemoryStore reports whether a pointer overload writes memory.
func (in Info) MaybeMemoryStore() bool { return in.Flags&FlagMaybeMemoryStore != 0 }

// HasVarArgs reports whether the argument count comes from the call site.
func (in Info) HasVarArgs() bool { return in.NumArgs < 0 }
