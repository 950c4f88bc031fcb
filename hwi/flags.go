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

import "strings"

// Flag is a set of independent capabilities of an intrinsic.
//
// Test bits through the named accessors on [Info] and [Registry] rather than
// raw masks: the meaning of [FlagArchRMW] depends on the target family.
type Flag uint32

const (
	FlagNone Flag = 0

	// FlagCommutative marks binary ops (Add, Multiply, ...) whose op1 may be
	// swapped with op2 so that either one can be contained.
	FlagCommutative Flag = 0x1

	// FlagFullRangeIMM marks IMM intrinsics that accept every imm8 value.
	FlagFullRangeIMM Flag = 0x2

	// FlagNoCodeGen marks intrinsics the front end rewrites; they never reach
	// code generation.
	FlagNoCodeGen Flag = 0x8

	// FlagUnfixedSIMDSize marks intrinsics overloaded on several vector sizes;
	// the table size is then only nominal.
	FlagUnfixedSIMDSize Flag = 0x10

	// FlagMultiIns marks intrinsics that may emit more than one instruction.
	FlagMultiIns Flag = 0x20

	// FlagNoContainment marks intrinsics whose operands must not be
	// contained. Every intrinsic with explicit memory semantics has it.
	FlagNoContainment Flag = 0x40

	// FlagCopyUpperBits marks SIMD scalar intrinsics that copy the upper
	// elements from a source operand.
	FlagCopyUpperBits Flag = 0x80

	// FlagBaseTypeFromFirstArg selects the base type from the first argument.
	FlagBaseTypeFromFirstArg Flag = 0x100

	// FlagNoFloatingPointUsed means using the intrinsic does not by itself
	// make the method use floating point registers.
	FlagNoFloatingPointUsed Flag = 0x200

	// FlagMaybeIMM marks intrinsics with both imm and vector overloads.
	FlagMaybeIMM Flag = 0x400

	// FlagNoJmpTableIMM marks IMM intrinsics that need no jump table
	// fallback when the immediate is not a constant.
	FlagNoJmpTableIMM Flag = 0x800

	// FlagBaseTypeFromSecondArg selects the base type from the second argument.
	FlagBaseTypeFromSecondArg Flag = 0x1000

	// FlagSpecialCodeGen marks intrinsics that need a registered special case
	// in the code generator but may be table driven in the importer.
	FlagSpecialCodeGen Flag = 0x2000

	// FlagArchRMW is the read/modify/write bit. Its meaning is owned by the
	// architecture packages: xarch.FlagNoRMWSemantics, arm64.FlagHasRMWSemantics.
	FlagArchRMW Flag = 0x4000

	// FlagSpecialImport marks intrinsics that need a registered special case
	// in the importer but may be table driven in the code generator.
	FlagSpecialImport Flag = 0x8000

	// FlagMaybeMemoryLoad and FlagMaybeMemoryStore mark intrinsics with
	// pointer overloads that are not in a memory category.
	FlagMaybeMemoryLoad  Flag = 0x10000
	FlagMaybeMemoryStore Flag = 0x20000

	flagAll = FlagCommutative | FlagFullRangeIMM | FlagNoCodeGen | FlagUnfixedSIMDSize |
		FlagMultiIns | FlagNoContainment | FlagCopyUpperBits | FlagBaseTypeFromFirstArg |
		FlagNoFloatingPointUsed | FlagMaybeIMM | FlagNoJmpTableIMM | FlagBaseTypeFromSecondArg |
		FlagSpecialCodeGen | FlagArchRMW | FlagSpecialImport | FlagMaybeMemoryLoad | FlagMaybeMemoryStore
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagCommutative, "Commutative"},
	{FlagFullRangeIMM, "FullRangeIMM"},
	{FlagNoCodeGen, "NoCodeGen"},
	{FlagUnfixedSIMDSize, "UnfixedSIMDSize"},
	{FlagMultiIns, "MultiIns"},
	{FlagNoContainment, "NoContainment"},
	{FlagCopyUpperBits, "CopyUpperBits"},
	{FlagBaseTypeFromFirstArg, "BaseTypeFromFirstArg"},
	{FlagNoFloatingPointUsed, "NoFloatingPointUsed"},
	{FlagMaybeIMM, "MaybeIMM"},
	{FlagNoJmpTableIMM, "NoJmpTableIMM"},
	{FlagBaseTypeFromSecondArg, "BaseTypeFromSecondArg"},
	{FlagSpecialCodeGen, "SpecialCodeGen"},
	{FlagArchRMW, "ArchRMW"},
	{FlagSpecialImport, "SpecialImport"},
	{FlagMaybeMemoryLoad, "MaybeMemoryLoad"},
	{FlagMaybeMemoryStore, "MaybeMemoryStore"},
}

// Has reports whether every bit of mask is set in f.
func (f Flag) Has(mask Flag) bool {
	return f&mask == mask
}

// Names returns the names of the bits set in f, in bit order. rmwName
// replaces the neutral "ArchRMW" when not empty.
func (f Flag) Names(rmwName string) []string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag == 0 {
			continue
		}
		if fn.flag == FlagArchRMW && rmwName != "" {
			names = append(names, rmwName)
			continue
		}
		names = append(names, fn.name)
	}
	return names
}

// String joins the flag names with '|'.
func (f Flag) String() string {
	if f == FlagNone {
		return "None"
	}
	return strings.Join(f.Names(""), "|")
}
