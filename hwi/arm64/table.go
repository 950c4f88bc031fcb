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

package arm64

import "github.com/ajroetker/go-hwintrinsic/hwi"

type ins = [hwi.NumElementTypes]hwi.Ins

// Shorthands for the table below.
const (
	inv = hwi.InsInvalid

	catSimpleSIMD  = hwi.CategorySimpleSIMD
	catIMM         = hwi.CategoryIMM
	catScalar      = hwi.CategoryScalar
	catSIMDScalar  = hwi.CategorySIMDScalar
	catMemoryLoad  = hwi.CategoryMemoryLoad
	catMemoryStore = hwi.CategoryMemoryStore
	catHelper      = hwi.CategoryHelper
	catSpecial     = hwi.CategorySpecial

	none                  = hwi.FlagNone
	commutative           = hwi.FlagCommutative
	fullRangeIMM          = hwi.FlagFullRangeIMM
	noCodeGen             = hwi.FlagNoCodeGen
	unfixedSIMDSize       = hwi.FlagUnfixedSIMDSize
	multiIns              = hwi.FlagMultiIns
	noContainment         = hwi.FlagNoContainment
	copyUpperBits         = hwi.FlagCopyUpperBits
	baseTypeFromFirstArg  = hwi.FlagBaseTypeFromFirstArg
	noFloatingPointUsed   = hwi.FlagNoFloatingPointUsed
	maybeIMM              = hwi.FlagMaybeIMM
	noJmpTableIMM         = hwi.FlagNoJmpTableIMM
	baseTypeFromSecondArg = hwi.FlagBaseTypeFromSecondArg
	specialCodeGen        = hwi.FlagSpecialCodeGen
	hasRMWSemantics       = FlagHasRMWSemantics
	specialImport         = hwi.FlagSpecialImport
	maybeMemoryLoad       = hwi.FlagMaybeMemoryLoad
	maybeMemoryStore      = hwi.FlagMaybeMemoryStore
)

func hw(id hwi.ID, name string, isa hwi.ISA, ival, simdSize, numArgs int, sel ins, cat hwi.Category, flags hwi.Flag) hwi.Info {
	return hwi.Info{
		ID:       id,
		Name:     name,
		ISA:      isa,
		Ival:     ival,
		SimdSize: simdSize,
		NumArgs:  numArgs,
		Ins:      sel,
		Category: cat,
		Flags:    flags,
	}
}

var registry = hwi.MustBuild(hwi.Definition{
	Arch:       hwi.ArchArm64,
	Intrinsics: table[:],
	ISANames:   isaNames[:],
	InsNames:   insNames[:],
	BoundedImm: isBoundedImm,
})

// The table. Columns: ID, name, ISA, ival, SIMD size in bytes, number of
// arguments, instructions for
//
//	byte, ubyte, short, ushort, int, uint, long, ulong, float, double
//
// then category and flags. An ival or argument count of -1 means none or
// variable.
var table = [numIntrinsics]hwi.Info{
	// Vector64
	hw(Vector64_As, "As", Vector64, -1, 8, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector64_Create, "Create", Vector64, -1, 8, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, specialCodeGen),
	hw(Vector64_CreateScalarUnsafe, "CreateScalarUnsafe", Vector64, -1, 8, 1, ins{AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS}, catSIMDScalar, specialCodeGen|specialImport),
	hw(Vector64_GetElement, "GetElement", Vector64, -1, 8, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector64_ToScalar, "ToScalar", Vector64, -1, 8, 1, ins{ASMOV, AUMOV, ASMOV, AUMOV, AUMOV, AUMOV, AUMOV, AUMOV, ADUP, ADUP}, catSIMDScalar, baseTypeFromFirstArg|specialCodeGen),
	hw(Vector64_ToVector128, "ToVector128", Vector64, -1, 8, 1, ins{AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV}, catSimpleSIMD, baseTypeFromFirstArg|specialCodeGen),
	hw(Vector64_ToVector128Unsafe, "ToVector128Unsafe", Vector64, -1, 8, 1, ins{AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV}, catSimpleSIMD, baseTypeFromFirstArg|specialCodeGen),
	hw(Vector64_WithElement, "WithElement", Vector64, -1, 8, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector64_Zero, "Zero", Vector64, -1, 8, 0, ins{AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI}, catHelper, specialCodeGen),

	// Vector128
	hw(Vector128_As, "As", Vector128, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector128_Create, "Create", Vector128, -1, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, specialCodeGen),
	hw(Vector128_CreateScalarUnsafe, "CreateScalarUnsafe", Vector128, -1, 16, 1, ins{AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS}, catSIMDScalar, specialCodeGen|specialImport),
	hw(Vector128_GetElement, "GetElement", Vector128, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector128_GetLower, "GetLower", Vector128, -1, 16, 1, ins{AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV, AMOV}, catSimpleSIMD, baseTypeFromFirstArg|specialCodeGen),
	hw(Vector128_GetUpper, "GetUpper", Vector128, -1, 16, 1, ins{ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, ADUP}, catSimpleSIMD, baseTypeFromFirstArg|specialCodeGen),
	hw(Vector128_ToScalar, "ToScalar", Vector128, -1, 16, 1, ins{ASMOV, AUMOV, ASMOV, AUMOV, AUMOV, AUMOV, AUMOV, AUMOV, ADUP, ADUP}, catSIMDScalar, baseTypeFromFirstArg|specialCodeGen),
	hw(Vector128_WithElement, "WithElement", Vector128, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector128_Zero, "Zero", Vector128, -1, 16, 0, ins{AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI, AMOVI}, catHelper, specialCodeGen),

	// AdvSimd
	hw(AdvSimd_Abs, "Abs", AdvSimd, -1, 16, 1, ins{AABS, inv, AABS, inv, AABS, inv, inv, inv, AFABS, inv}, catSimpleSIMD, unfixedSIMDSize|baseTypeFromFirstArg),
	hw(AdvSimd_AbsScalar, "AbsScalar", AdvSimd, -1, 8, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFABS, AFABS}, catSIMDScalar, none),
	hw(AdvSimd_AbsoluteCompareGreaterThan, "AbsoluteCompareGreaterThan", AdvSimd, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFACGT, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_AbsoluteCompareGreaterThanOrEqual, "AbsoluteCompareGreaterThanOrEqual", AdvSimd, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFACGE, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_AbsoluteDifference, "AbsoluteDifference", AdvSimd, -1, 16, 2, ins{ASABD, AUABD, ASABD, AUABD, ASABD, AUABD, inv, inv, AFABD, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_AbsoluteDifferenceAdd, "AbsoluteDifferenceAdd", AdvSimd, -1, 16, 3, ins{ASABA, AUABA, ASABA, AUABA, ASABA, AUABA, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),
	hw(AdvSimd_Add, "Add", AdvSimd, -1, 16, 2, ins{AADD, AADD, AADD, AADD, AADD, AADD, AADD, AADD, AFADD, inv}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_AddPairwise, "AddPairwise", AdvSimd, -1, 16, 2, ins{AADDP, AADDP, AADDP, AADDP, AADDP, AADDP, inv, inv, AFADDP, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_AddSaturate, "AddSaturate", AdvSimd, -1, 16, 2, ins{ASQADD, AUQADD, ASQADD, AUQADD, ASQADD, AUQADD, ASQADD, AUQADD, inv, inv}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_AddScalar, "AddScalar", AdvSimd, -1, 8, 2, ins{inv, inv, inv, inv, inv, inv, AADD, AADD, AFADD, AFADD}, catSIMDScalar, commutative),
	hw(AdvSimd_And, "And", AdvSimd, -1, 16, 2, ins{AAND, AAND, AAND, AAND, AAND, AAND, AAND, AAND, AAND, AAND}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_BitwiseClear, "BitwiseClear", AdvSimd, -1, 16, 2, ins{ABIC, ABIC, ABIC, ABIC, ABIC, ABIC, ABIC, ABIC, ABIC, ABIC}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_BitwiseSelect, "BitwiseSelect", AdvSimd, -1, 16, 3, ins{ABSL, ABSL, ABSL, ABSL, ABSL, ABSL, ABSL, ABSL, ABSL, ABSL}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(AdvSimd_CompareEqual, "CompareEqual", AdvSimd, -1, 16, 2, ins{ACMEQ, ACMEQ, ACMEQ, ACMEQ, ACMEQ, ACMEQ, inv, inv, AFCMEQ, inv}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_CompareGreaterThan, "CompareGreaterThan", AdvSimd, -1, 16, 2, ins{ACMGT, ACMHI, ACMGT, ACMHI, ACMGT, ACMHI, inv, inv, AFCMGT, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_CompareGreaterThanOrEqual, "CompareGreaterThanOrEqual", AdvSimd, -1, 16, 2, ins{ACMGE, ACMHS, ACMGE, ACMHS, ACMGE, ACMHS, inv, inv, AFCMGE, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_CompareLessThan, "CompareLessThan", AdvSimd, -1, 16, 2, ins{ACMGT, ACMHI, ACMGT, ACMHI, ACMGT, ACMHI, inv, inv, AFCMGT, inv}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(AdvSimd_CompareLessThanOrEqual, "CompareLessThanOrEqual", AdvSimd, -1, 16, 2, ins{ACMGE, ACMHS, ACMGE, ACMHS, ACMGE, ACMHS, inv, inv, AFCMGE, inv}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(AdvSimd_CompareTest, "CompareTest", AdvSimd, -1, 16, 2, ins{ACMTST, ACMTST, ACMTST, ACMTST, ACMTST, ACMTST, inv, inv, ACMTST, inv}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_DivideScalar, "DivideScalar", AdvSimd, -1, 8, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFDIV, AFDIV}, catSIMDScalar, none),
	hw(AdvSimd_DuplicateSelectedScalarToVector64, "DuplicateSelectedScalarToVector64", AdvSimd, -1, 8, 2, ins{ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, inv, inv, ADUP, inv}, catIMM, unfixedSIMDSize|baseTypeFromFirstArg),
	hw(AdvSimd_DuplicateSelectedScalarToVector128, "DuplicateSelectedScalarToVector128", AdvSimd, -1, 16, 2, ins{ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, inv, inv, ADUP, inv}, catIMM, unfixedSIMDSize|baseTypeFromFirstArg),
	hw(AdvSimd_DuplicateToVector64, "DuplicateToVector64", AdvSimd, -1, 8, 1, ins{ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, inv, inv, ADUP, inv}, catSimpleSIMD, specialCodeGen|specialImport),
	hw(AdvSimd_DuplicateToVector128, "DuplicateToVector128", AdvSimd, -1, 16, 1, ins{ADUP, ADUP, ADUP, ADUP, ADUP, ADUP, inv, inv, ADUP, inv}, catSimpleSIMD, specialCodeGen|specialImport),
	hw(AdvSimd_Extract, "Extract", AdvSimd, -1, 16, 2, ins{ASMOV, AUMOV, ASMOV, AUMOV, AUMOV, AUMOV, AUMOV, AUMOV, ADUP, ADUP}, catIMM, unfixedSIMDSize|baseTypeFromFirstArg|specialCodeGen),
	hw(AdvSimd_ExtractVector64, "ExtractVector64", AdvSimd, -1, 8, 3, ins{AEXT, AEXT, AEXT, AEXT, AEXT, AEXT, inv, inv, AEXT, inv}, catIMM, none),
	hw(AdvSimd_ExtractVector128, "ExtractVector128", AdvSimd, -1, 16, 3, ins{AEXT, AEXT, AEXT, AEXT, AEXT, AEXT, AEXT, AEXT, AEXT, AEXT}, catIMM, none),
	hw(AdvSimd_FusedMultiplyAdd, "FusedMultiplyAdd", AdvSimd, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFMLA, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),
	hw(AdvSimd_FusedMultiplySubtract, "FusedMultiplySubtract", AdvSimd, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFMLS, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),
	hw(AdvSimd_Insert, "Insert", AdvSimd, -1, 16, 3, ins{AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS, AINS}, catIMM, unfixedSIMDSize|baseTypeFromFirstArg|hasRMWSemantics),
	hw(AdvSimd_LeadingSignCount, "LeadingSignCount", AdvSimd, -1, 16, 1, ins{ACLS, inv, ACLS, inv, ACLS, inv, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_LeadingZeroCount, "LeadingZeroCount", AdvSimd, -1, 16, 1, ins{ACLZ, ACLZ, ACLZ, ACLZ, ACLZ, ACLZ, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_LoadAndReplicateToVector64, "LoadAndReplicateToVector64", AdvSimd, -1, 8, 1, ins{ALD1R, ALD1R, ALD1R, ALD1R, ALD1R, ALD1R, inv, inv, ALD1R, inv}, catMemoryLoad, noContainment),
	hw(AdvSimd_LoadVector64, "LoadVector64", AdvSimd, -1, 8, 1, ins{ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1}, catMemoryLoad, noContainment),
	hw(AdvSimd_LoadVector128, "LoadVector128", AdvSimd, -1, 16, 1, ins{ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1, ALD1}, catMemoryLoad, noContainment),
	hw(AdvSimd_Max, "Max", AdvSimd, -1, 16, 2, ins{ASMAX, AUMAX, ASMAX, AUMAX, ASMAX, AUMAX, inv, inv, AFMAX, inv}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_MaxPairwise, "MaxPairwise", AdvSimd, -1, 16, 2, ins{ASMAXP, AUMAXP, ASMAXP, AUMAXP, ASMAXP, AUMAXP, inv, inv, AFMAXP, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Min, "Min", AdvSimd, -1, 16, 2, ins{ASMIN, AUMIN, ASMIN, AUMIN, ASMIN, AUMIN, inv, inv, AFMIN, inv}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_MinPairwise, "MinPairwise", AdvSimd, -1, 16, 2, ins{ASMINP, AUMINP, ASMINP, AUMINP, ASMINP, AUMINP, inv, inv, AFMINP, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Multiply, "Multiply", AdvSimd, -1, 16, 2, ins{AMUL, AMUL, AMUL, AMUL, AMUL, AMUL, inv, inv, AFMUL, inv}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_MultiplyAdd, "MultiplyAdd", AdvSimd, -1, 16, 3, ins{AMLA, AMLA, AMLA, AMLA, AMLA, AMLA, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),
	hw(AdvSimd_MultiplyScalar, "MultiplyScalar", AdvSimd, -1, 8, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFMUL, AFMUL}, catSIMDScalar, commutative),
	hw(AdvSimd_MultiplySubtract, "MultiplySubtract", AdvSimd, -1, 16, 3, ins{AMLS, AMLS, AMLS, AMLS, AMLS, AMLS, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),
	hw(AdvSimd_Negate, "Negate", AdvSimd, -1, 16, 1, ins{ANEG, inv, ANEG, inv, ANEG, inv, inv, inv, AFNEG, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_NegateScalar, "NegateScalar", AdvSimd, -1, 8, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFNEG, AFNEG}, catSIMDScalar, none),
	hw(AdvSimd_Not, "Not", AdvSimd, -1, 16, 1, ins{AMVN, AMVN, AMVN, AMVN, AMVN, AMVN, AMVN, AMVN, AMVN, AMVN}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Or, "Or", AdvSimd, -1, 16, 2, ins{AORR, AORR, AORR, AORR, AORR, AORR, AORR, AORR, AORR, AORR}, catSimpleSIMD, commutative|unfixedSIMDSize),
	hw(AdvSimd_OrNot, "OrNot", AdvSimd, -1, 16, 2, ins{AORN, AORN, AORN, AORN, AORN, AORN, AORN, AORN, AORN, AORN}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_PopCount, "PopCount", AdvSimd, -1, 16, 1, ins{ACNT, ACNT, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_ShiftLeftLogical, "ShiftLeftLogical", AdvSimd, -1, 16, 2, ins{ASHL, ASHL, ASHL, ASHL, ASHL, ASHL, ASHL, ASHL, inv, inv}, catIMM, unfixedSIMDSize),
	hw(AdvSimd_ShiftRightArithmetic, "ShiftRightArithmetic", AdvSimd, -1, 16, 2, ins{ASSHR, inv, ASSHR, inv, ASSHR, inv, ASSHR, inv, inv, inv}, catIMM, unfixedSIMDSize),
	hw(AdvSimd_ShiftRightLogical, "ShiftRightLogical", AdvSimd, -1, 16, 2, ins{AUSHR, AUSHR, AUSHR, AUSHR, AUSHR, AUSHR, AUSHR, AUSHR, inv, inv}, catIMM, unfixedSIMDSize),
	hw(AdvSimd_SqrtScalar, "SqrtScalar", AdvSimd, -1, 8, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFSQRT, AFSQRT}, catSIMDScalar, none),
	hw(AdvSimd_Store, "Store", AdvSimd, -1, 16, 2, ins{AST1, AST1, AST1, AST1, AST1, AST1, AST1, AST1, AST1, AST1}, catMemoryStore, unfixedSIMDSize|noContainment|baseTypeFromSecondArg),
	hw(AdvSimd_Subtract, "Subtract", AdvSimd, -1, 16, 2, ins{ASUB, ASUB, ASUB, ASUB, ASUB, ASUB, ASUB, ASUB, AFSUB, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_SubtractSaturate, "SubtractSaturate", AdvSimd, -1, 16, 2, ins{ASQSUB, AUQSUB, ASQSUB, AUQSUB, ASQSUB, AUQSUB, ASQSUB, AUQSUB, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_SubtractScalar, "SubtractScalar", AdvSimd, -1, 8, 2, ins{inv, inv, inv, inv, inv, inv, ASUB, ASUB, AFSUB, AFSUB}, catSIMDScalar, none),
	hw(AdvSimd_VectorTableLookup, "VectorTableLookup", AdvSimd, -1, 16, 2, ins{ATBL, ATBL, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Xor, "Xor", AdvSimd, -1, 16, 2, ins{AEOR, AEOR, AEOR, AEOR, AEOR, AEOR, AEOR, AEOR, AEOR, AEOR}, catSimpleSIMD, commutative|unfixedSIMDSize),

	// AdvSimd_Arm64
	hw(AdvSimd_Arm64_Abs, "Abs", AdvSimd_Arm64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, AABS, inv, inv, AFABS}, catSimpleSIMD, baseTypeFromFirstArg),
	hw(AdvSimd_Arm64_Add, "Add", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AFADD}, catSimpleSIMD, commutative),
	hw(AdvSimd_Arm64_AddAcross, "AddAcross", AdvSimd_Arm64, -1, 16, 1, ins{AADDV, AADDV, AADDV, AADDV, AADDV, AADDV, inv, inv, inv, inv}, catSIMDScalar, unfixedSIMDSize|baseTypeFromFirstArg),
	hw(AdvSimd_Arm64_CompareEqual, "CompareEqual", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, ACMEQ, ACMEQ, inv, AFCMEQ}, catSimpleSIMD, commutative),
	hw(AdvSimd_Arm64_CompareGreaterThan, "CompareGreaterThan", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, ACMGT, ACMHI, inv, AFCMGT}, catSimpleSIMD, none),
	hw(AdvSimd_Arm64_Divide, "Divide", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFDIV, AFDIV}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_Max, "Max", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AFMAX}, catSimpleSIMD, commutative),
	hw(AdvSimd_Arm64_MaxAcross, "MaxAcross", AdvSimd_Arm64, -1, 16, 1, ins{ASMAXV, AUMAXV, ASMAXV, AUMAXV, ASMAXV, AUMAXV, inv, inv, AFMAXV, inv}, catSIMDScalar, unfixedSIMDSize|baseTypeFromFirstArg),
	hw(AdvSimd_Arm64_Min, "Min", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AFMIN}, catSimpleSIMD, commutative),
	hw(AdvSimd_Arm64_MinAcross, "MinAcross", AdvSimd_Arm64, -1, 16, 1, ins{ASMINV, AUMINV, ASMINV, AUMINV, ASMINV, AUMINV, inv, inv, AFMINV, inv}, catSIMDScalar, unfixedSIMDSize|baseTypeFromFirstArg),
	hw(AdvSimd_Arm64_Multiply, "Multiply", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AFMUL}, catSimpleSIMD, commutative),
	hw(AdvSimd_Arm64_Negate, "Negate", AdvSimd_Arm64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, ANEG, inv, inv, AFNEG}, catSimpleSIMD, none),
	hw(AdvSimd_Arm64_ReverseElementBits, "ReverseElementBits", AdvSimd_Arm64, -1, 16, 1, ins{ARBIT, ARBIT, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_Sqrt, "Sqrt", AdvSimd_Arm64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AFSQRT, AFSQRT}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_Subtract, "Subtract", AdvSimd_Arm64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AFSUB}, catSimpleSIMD, none),
	hw(AdvSimd_Arm64_TransposeEven, "TransposeEven", AdvSimd_Arm64, -1, 16, 2, ins{ATRN1, ATRN1, ATRN1, ATRN1, ATRN1, ATRN1, ATRN1, ATRN1, ATRN1, ATRN1}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_TransposeOdd, "TransposeOdd", AdvSimd_Arm64, -1, 16, 2, ins{ATRN2, ATRN2, ATRN2, ATRN2, ATRN2, ATRN2, ATRN2, ATRN2, ATRN2, ATRN2}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_UnzipEven, "UnzipEven", AdvSimd_Arm64, -1, 16, 2, ins{AUZP1, AUZP1, AUZP1, AUZP1, AUZP1, AUZP1, AUZP1, AUZP1, AUZP1, AUZP1}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_UnzipOdd, "UnzipOdd", AdvSimd_Arm64, -1, 16, 2, ins{AUZP2, AUZP2, AUZP2, AUZP2, AUZP2, AUZP2, AUZP2, AUZP2, AUZP2, AUZP2}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_ZipHigh, "ZipHigh", AdvSimd_Arm64, -1, 16, 2, ins{AZIP2, AZIP2, AZIP2, AZIP2, AZIP2, AZIP2, AZIP2, AZIP2, AZIP2, AZIP2}, catSimpleSIMD, unfixedSIMDSize),
	hw(AdvSimd_Arm64_ZipLow, "ZipLow", AdvSimd_Arm64, -1, 16, 2, ins{AZIP1, AZIP1, AZIP1, AZIP1, AZIP1, AZIP1, AZIP1, AZIP1, AZIP1, AZIP1}, catSimpleSIMD, unfixedSIMDSize),

	// Aes
	hw(Aes_Decrypt, "Decrypt", Aes, -1, 16, 2, ins{inv, AAESD, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),
	hw(Aes_Encrypt, "Encrypt", Aes, -1, 16, 2, ins{inv, AAESE, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),
	hw(Aes_InverseMixColumns, "InverseMixColumns", Aes, -1, 16, 1, ins{inv, AAESIMC, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(Aes_MixColumns, "MixColumns", Aes, -1, 16, 1, ins{inv, AAESMC, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(Aes_PolynomialMultiplyWideningLower, "PolynomialMultiplyWideningLower", Aes, -1, 8, 2, ins{inv, inv, inv, inv, inv, inv, APMULL, APMULL, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg),

	// ArmBase
	hw(ArmBase_LeadingZeroCount, "LeadingZeroCount", ArmBase, -1, 0, 1, ins{inv, inv, inv, inv, ACLZ, ACLZ, inv, inv, inv, inv}, catScalar, baseTypeFromFirstArg|noFloatingPointUsed),
	hw(ArmBase_ReverseElementBits, "ReverseElementBits", ArmBase, -1, 0, 1, ins{inv, inv, inv, inv, ARBIT, ARBIT, inv, inv, inv, inv}, catScalar, noFloatingPointUsed),

	// ArmBase_Arm64
	hw(ArmBase_Arm64_LeadingSignCount, "LeadingSignCount", ArmBase_Arm64, -1, 0, 1, ins{inv, inv, inv, inv, ACLS, inv, ACLS, inv, inv, inv}, catScalar, baseTypeFromFirstArg|noFloatingPointUsed),
	hw(ArmBase_Arm64_LeadingZeroCount, "LeadingZeroCount", ArmBase_Arm64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, ACLZ, ACLZ, inv, inv}, catScalar, baseTypeFromFirstArg|noFloatingPointUsed),
	hw(ArmBase_Arm64_MultiplyHigh, "MultiplyHigh", ArmBase_Arm64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, ASMULH, AUMULH, inv, inv}, catScalar, commutative|noFloatingPointUsed),
	hw(ArmBase_Arm64_ReverseElementBits, "ReverseElementBits", ArmBase_Arm64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, ARBIT, ARBIT, inv, inv}, catScalar, noFloatingPointUsed),

	// Crc32
	hw(Crc32_ComputeCrc32, "ComputeCrc32", Crc32, -1, 0, 2, ins{inv, ACRC32B, inv, ACRC32H, inv, ACRC32W, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|baseTypeFromSecondArg),
	hw(Crc32_ComputeCrc32C, "ComputeCrc32C", Crc32, -1, 0, 2, ins{inv, ACRC32CB, inv, ACRC32CH, inv, ACRC32CW, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|baseTypeFromSecondArg),

	// Crc32_Arm64
	hw(Crc32_Arm64_ComputeCrc32, "ComputeCrc32", Crc32_Arm64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, inv, ACRC32X, inv, inv}, catScalar, noFloatingPointUsed|baseTypeFromSecondArg),
	hw(Crc32_Arm64_ComputeCrc32C, "ComputeCrc32C", Crc32_Arm64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, inv, ACRC32CX, inv, inv}, catScalar, noFloatingPointUsed|baseTypeFromSecondArg),

	// Dp
	hw(Dp_DotProduct, "DotProduct", Dp, -1, 16, 3, ins{inv, inv, inv, inv, ASDOT, AUDOT, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),
	hw(Dp_DotProductBySelectedQuadruplet, "DotProductBySelectedQuadruplet", Dp, -1, 16, 4, ins{inv, inv, inv, inv, ASDOT, AUDOT, inv, inv, inv, inv}, catIMM, unfixedSIMDSize|specialCodeGen|hasRMWSemantics),

	// Rdm
	hw(Rdm_MultiplyRoundedDoublingAndAddSaturateHigh, "MultiplyRoundedDoublingAndAddSaturateHigh", Rdm, -1, 16, 3, ins{inv, inv, ASQRDMLAH, inv, ASQRDMLAH, inv, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),
	hw(Rdm_MultiplyRoundedDoublingAndSubtractSaturateHigh, "MultiplyRoundedDoublingAndSubtractSaturateHigh", Rdm, -1, 16, 3, ins{inv, inv, ASQRDMLSH, inv, ASQRDMLSH, inv, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize|hasRMWSemantics),

	// Sha1
	hw(Sha1_FixedRotate, "FixedRotate", Sha1, -1, 8, 1, ins{inv, inv, inv, inv, inv, ASHA1H, inv, inv, inv, inv}, catSIMDScalar, noContainment),
	hw(Sha1_HashUpdateChoose, "HashUpdateChoose", Sha1, -1, 16, 3, ins{inv, inv, inv, inv, inv, ASHA1C, inv, inv, inv, inv}, catSimpleSIMD, specialCodeGen|hasRMWSemantics),
	hw(Sha1_HashUpdateMajority, "HashUpdateMajority", Sha1, -1, 16, 3, ins{inv, inv, inv, inv, inv, ASHA1M, inv, inv, inv, inv}, catSimpleSIMD, specialCodeGen|hasRMWSemantics),
	hw(Sha1_HashUpdateParity, "HashUpdateParity", Sha1, -1, 16, 3, ins{inv, inv, inv, inv, inv, ASHA1P, inv, inv, inv, inv}, catSimpleSIMD, specialCodeGen|hasRMWSemantics),
	hw(Sha1_ScheduleUpdate0, "ScheduleUpdate0", Sha1, -1, 16, 3, ins{inv, inv, inv, inv, inv, ASHA1SU0, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),
	hw(Sha1_ScheduleUpdate1, "ScheduleUpdate1", Sha1, -1, 16, 2, ins{inv, inv, inv, inv, inv, ASHA1SU1, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),

	// Sha256
	hw(Sha256_HashUpdate1, "HashUpdate1", Sha256, -1, 16, 3, ins{inv, inv, inv, inv, inv, ASHA256H, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),
	hw(Sha256_HashUpdate2, "HashUpdate2", Sha256, -1, 16, 3, ins{inv, inv, inv, inv, inv, ASHA256H2, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),
	hw(Sha256_ScheduleUpdate0, "ScheduleUpdate0", Sha256, -1, 16, 2, ins{inv, inv, inv, inv, inv, ASHA256SU0, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),
	hw(Sha256_ScheduleUpdate1, "ScheduleUpdate1", Sha256, -1, 16, 3, ins{inv, inv, inv, inv, inv, ASHA256SU1, inv, inv, inv, inv}, catSimpleSIMD, hasRMWSemantics),
}
