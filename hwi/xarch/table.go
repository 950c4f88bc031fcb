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

package xarch

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
	noRMWSemantics        = FlagNoRMWSemantics
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
	Arch:       hwi.ArchXArch,
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
	// Vector128
	hw(Vector128_As, "As", Vector128, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector128_Create, "Create", Vector128, -1, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, specialCodeGen),
	hw(Vector128_CreateScalarUnsafe, "CreateScalarUnsafe", Vector128, -1, 16, 1, ins{AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVQ, AMOVQ, AMOVSS, AMOVSD}, catSIMDScalar, specialCodeGen|noRMWSemantics|specialImport),
	hw(Vector128_GetElement, "GetElement", Vector128, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector128_ToScalar, "ToScalar", Vector128, -1, 16, 1, ins{AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVQ, AMOVQ, AMOVSS, AMOVSD}, catSIMDScalar, baseTypeFromFirstArg|specialCodeGen|noRMWSemantics),
	hw(Vector128_ToVector256, "ToVector256", Vector128, -1, 16, 1, ins{AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVUPS, AMOVUPD}, catHelper, baseTypeFromFirstArg|specialCodeGen|noRMWSemantics),
	hw(Vector128_ToVector256Unsafe, "ToVector256Unsafe", Vector128, -1, 16, 1, ins{AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVUPS, AMOVUPD}, catHelper, baseTypeFromFirstArg|specialCodeGen|noRMWSemantics),
	hw(Vector128_WithElement, "WithElement", Vector128, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector128_Zero, "Zero", Vector128, -1, 16, 0, ins{AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS}, catHelper, specialCodeGen|noRMWSemantics),

	// Vector256
	hw(Vector256_As, "As", Vector256, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector256_Create, "Create", Vector256, -1, 32, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, specialCodeGen),
	hw(Vector256_CreateScalarUnsafe, "CreateScalarUnsafe", Vector256, -1, 32, 1, ins{AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVQ, AMOVQ, AMOVSS, AMOVSD}, catSIMDScalar, specialCodeGen|noRMWSemantics|specialImport),
	hw(Vector256_GetElement, "GetElement", Vector256, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector256_GetLower, "GetLower", Vector256, -1, 32, 1, ins{AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVUPS, AMOVUPD}, catHelper, baseTypeFromFirstArg|specialCodeGen|noRMWSemantics),
	hw(Vector256_ToScalar, "ToScalar", Vector256, -1, 32, 1, ins{AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVD, AMOVQ, AMOVQ, AMOVSS, AMOVSD}, catSIMDScalar, baseTypeFromFirstArg|specialCodeGen|noRMWSemantics),
	hw(Vector256_WithElement, "WithElement", Vector256, -1, 32, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catHelper, noCodeGen|baseTypeFromFirstArg|specialImport),
	hw(Vector256_Zero, "Zero", Vector256, -1, 32, 0, ins{AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS, AXORPS}, catHelper, specialCodeGen|noRMWSemantics),

	// SSE
	hw(SSE_Add, "Add", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AADDPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_AddScalar, "AddScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AADDSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_And, "And", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AANDPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_AndNot, "AndNot", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AANDNPS, inv}, catSimpleSIMD, none),
	hw(SSE_CompareEqual, "CompareEqual", SSE, 0, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_CompareGreaterThan, "CompareGreaterThan", SSE, 1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, specialCodeGen),
	hw(SSE_CompareGreaterThanOrEqual, "CompareGreaterThanOrEqual", SSE, 2, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, specialCodeGen),
	hw(SSE_CompareLessThan, "CompareLessThan", SSE, 1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, none),
	hw(SSE_CompareLessThanOrEqual, "CompareLessThanOrEqual", SSE, 2, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, none),
	hw(SSE_CompareNotEqual, "CompareNotEqual", SSE, 4, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_CompareOrdered, "CompareOrdered", SSE, 7, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_CompareUnordered, "CompareUnordered", SSE, 3, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_CompareScalarEqual, "CompareScalarEqual", SSE, 0, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPSS, inv}, catSIMDScalar, commutative|copyUpperBits),
	hw(SSE_CompareScalarLessThan, "CompareScalarLessThan", SSE, 1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_CompareScalarOrderedEqual, "CompareScalarOrderedEqual", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACOMISS, inv}, catSIMDScalar, commutative|multiIns|noRMWSemantics),
	hw(SSE_CompareScalarOrderedLessThan, "CompareScalarOrderedLessThan", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACOMISS, inv}, catSIMDScalar, multiIns|noRMWSemantics),
	hw(SSE_CompareScalarUnorderedEqual, "CompareScalarUnorderedEqual", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AUCOMISS, inv}, catSIMDScalar, commutative|multiIns|noRMWSemantics),
	hw(SSE_ConvertScalarToVector128Single, "ConvertScalarToVector128Single", SSE, -1, 16, 2, ins{inv, inv, inv, inv, ACVTSI2SS, inv, inv, inv, inv, inv}, catSIMDScalar, copyUpperBits|baseTypeFromSecondArg),
	hw(SSE_ConvertToInt32, "ConvertToInt32", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACVTSS2SI, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE_ConvertToInt32WithTruncation, "ConvertToInt32WithTruncation", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACVTTSS2SI, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE_Divide, "Divide", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ADIVPS, inv}, catSimpleSIMD, none),
	hw(SSE_DivideScalar, "DivideScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ADIVSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_LoadAlignedVector128, "LoadAlignedVector128", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVAPS, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE_LoadHigh, "LoadHigh", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVHPS, inv}, catMemoryLoad, noContainment),
	hw(SSE_LoadLow, "LoadLow", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVLPS, inv}, catMemoryLoad, noContainment),
	hw(SSE_LoadScalarVector128, "LoadScalarVector128", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVSS, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE_LoadVector128, "LoadVector128", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVUPS, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE_Max, "Max", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMAXPS, inv}, catSimpleSIMD, none),
	hw(SSE_MaxScalar, "MaxScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMAXSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_Min, "Min", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMINPS, inv}, catSimpleSIMD, none),
	hw(SSE_MinScalar, "MinScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMINSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_MoveHighToLow, "MoveHighToLow", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVHLPS, inv}, catSimpleSIMD, noContainment),
	hw(SSE_MoveLowToHigh, "MoveLowToHigh", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVLHPS, inv}, catSimpleSIMD, noContainment),
	hw(SSE_MoveMask, "MoveMask", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVMSKPS, inv}, catSimpleSIMD, noContainment|baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE_MoveScalar, "MoveScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVSS, inv}, catSIMDScalar, noContainment),
	hw(SSE_Multiply, "Multiply", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMULPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_MultiplyScalar, "MultiplyScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMULSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_Or, "Or", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AORPS, inv}, catSimpleSIMD, commutative),
	hw(SSE_Prefetch0, "Prefetch0", SSE, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catSpecial, noFloatingPointUsed|specialCodeGen|noRMWSemantics),
	hw(SSE_Prefetch1, "Prefetch1", SSE, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catSpecial, noFloatingPointUsed|specialCodeGen|noRMWSemantics),
	hw(SSE_Prefetch2, "Prefetch2", SSE, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catSpecial, noFloatingPointUsed|specialCodeGen|noRMWSemantics),
	hw(SSE_PrefetchNonTemporal, "PrefetchNonTemporal", SSE, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catSpecial, noFloatingPointUsed|specialCodeGen|noRMWSemantics),
	hw(SSE_Reciprocal, "Reciprocal", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ARCPPS, inv}, catSimpleSIMD, noRMWSemantics),
	hw(SSE_ReciprocalScalar, "ReciprocalScalar", SSE, -1, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ARCPSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_ReciprocalSqrt, "ReciprocalSqrt", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ARSQRTPS, inv}, catSimpleSIMD, noRMWSemantics),
	hw(SSE_ReciprocalSqrtScalar, "ReciprocalSqrtScalar", SSE, -1, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ARSQRTSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_Shuffle, "Shuffle", SSE, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASHUFPS, inv}, catIMM, fullRangeIMM),
	hw(SSE_Sqrt, "Sqrt", SSE, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASQRTPS, inv}, catSimpleSIMD, noRMWSemantics),
	hw(SSE_SqrtScalar, "SqrtScalar", SSE, -1, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASQRTSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_Store, "Store", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVUPS, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE_StoreAligned, "StoreAligned", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVAPS, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE_StoreAlignedNonTemporal, "StoreAlignedNonTemporal", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVNTPS, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE_StoreFence, "StoreFence", SSE, -1, 0, 0, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catSpecial, noFloatingPointUsed|specialCodeGen|noRMWSemantics),
	hw(SSE_StoreHigh, "StoreHigh", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVHPS, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE_StoreLow, "StoreLow", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVLPS, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE_StoreScalar, "StoreScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVSS, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE_Subtract, "Subtract", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASUBPS, inv}, catSimpleSIMD, none),
	hw(SSE_SubtractScalar, "SubtractScalar", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASUBSS, inv}, catSIMDScalar, copyUpperBits),
	hw(SSE_UnpackHigh, "UnpackHigh", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AUNPCKHPS, inv}, catSimpleSIMD, none),
	hw(SSE_UnpackLow, "UnpackLow", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AUNPCKLPS, inv}, catSimpleSIMD, none),
	hw(SSE_Xor, "Xor", SSE, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AXORPS, inv}, catSimpleSIMD, commutative),

	// SSE_X64
	hw(SSE_X64_ConvertScalarToVector128Single, "ConvertScalarToVector128Single", SSE_X64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, ACVTSI2SS, inv, inv, inv}, catSIMDScalar, copyUpperBits|baseTypeFromSecondArg),
	hw(SSE_X64_ConvertToInt64, "ConvertToInt64", SSE_X64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACVTSS2SI, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE_X64_ConvertToInt64WithTruncation, "ConvertToInt64WithTruncation", SSE_X64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACVTTSS2SI, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),

	// SSE2
	hw(SSE2_Add, "Add", SSE2, -1, 16, 2, ins{APADDB, APADDB, APADDW, APADDW, APADDD, APADDD, APADDQ, APADDQ, inv, AADDPD}, catSimpleSIMD, commutative),
	hw(SSE2_AddSaturate, "AddSaturate", SSE2, -1, 16, 2, ins{APADDSB, APADDUSB, APADDSW, APADDUSW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE2_AddScalar, "AddScalar", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AADDSD}, catSIMDScalar, copyUpperBits),
	hw(SSE2_And, "And", SSE2, -1, 16, 2, ins{APAND, APAND, APAND, APAND, APAND, APAND, APAND, APAND, inv, AANDPD}, catSimpleSIMD, commutative),
	hw(SSE2_AndNot, "AndNot", SSE2, -1, 16, 2, ins{APANDN, APANDN, APANDN, APANDN, APANDN, APANDN, APANDN, APANDN, inv, AANDNPD}, catSimpleSIMD, none),
	hw(SSE2_Average, "Average", SSE2, -1, 16, 2, ins{inv, APAVGB, inv, APAVGW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE2_CompareEqual, "CompareEqual", SSE2, 0, 16, 2, ins{APCMPEQB, APCMPEQB, APCMPEQW, APCMPEQW, APCMPEQD, APCMPEQD, inv, inv, inv, ACMPPD}, catSimpleSIMD, commutative),
	hw(SSE2_CompareGreaterThan, "CompareGreaterThan", SSE2, 1, 16, 2, ins{APCMPGTB, inv, APCMPGTW, inv, APCMPGTD, inv, inv, inv, inv, ACMPPD}, catSimpleSIMD, specialCodeGen),
	hw(SSE2_CompareGreaterThanOrEqual, "CompareGreaterThanOrEqual", SSE2, 2, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACMPPD}, catSimpleSIMD, specialCodeGen),
	hw(SSE2_CompareLessThan, "CompareLessThan", SSE2, 1, 16, 2, ins{APCMPGTB, inv, APCMPGTW, inv, APCMPGTD, inv, inv, inv, inv, ACMPPD}, catSimpleSIMD, specialCodeGen),
	hw(SSE2_CompareLessThanOrEqual, "CompareLessThanOrEqual", SSE2, 2, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACMPPD}, catSimpleSIMD, none),
	hw(SSE2_CompareNotEqual, "CompareNotEqual", SSE2, 4, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACMPPD}, catSimpleSIMD, commutative),
	hw(SSE2_CompareOrdered, "CompareOrdered", SSE2, 7, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACMPPD}, catSimpleSIMD, commutative),
	hw(SSE2_CompareUnordered, "CompareUnordered", SSE2, 3, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACMPPD}, catSimpleSIMD, commutative),
	hw(SSE2_CompareScalarEqual, "CompareScalarEqual", SSE2, 0, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACMPSD}, catSIMDScalar, commutative|copyUpperBits),
	hw(SSE2_CompareScalarOrderedEqual, "CompareScalarOrderedEqual", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACOMISD}, catSIMDScalar, commutative|multiIns|noRMWSemantics),
	hw(SSE2_CompareScalarUnorderedEqual, "CompareScalarUnorderedEqual", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AUCOMISD}, catSIMDScalar, commutative|multiIns|noRMWSemantics),
	hw(SSE2_ConvertScalarToVector128Double, "ConvertScalarToVector128Double", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, ACVTSI2SD, inv, inv, inv, ACVTSS2SD, inv}, catSIMDScalar, copyUpperBits|baseTypeFromSecondArg),
	hw(SSE2_ConvertScalarToVector128Int32, "ConvertScalarToVector128Int32", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, AMOVD, inv, inv, inv, inv, inv}, catSIMDScalar, noRMWSemantics),
	hw(SSE2_ConvertScalarToVector128UInt32, "ConvertScalarToVector128UInt32", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, inv, AMOVD, inv, inv, inv, inv}, catSIMDScalar, noRMWSemantics),
	hw(SSE2_ConvertToInt32, "ConvertToInt32", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, AMOVD, inv, inv, inv, inv, ACVTSD2SI}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_ConvertToInt32WithTruncation, "ConvertToInt32WithTruncation", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACVTTSD2SI}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_ConvertToUInt32, "ConvertToUInt32", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, inv, AMOVD, inv, inv, inv, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_ConvertToVector128Double, "ConvertToVector128Double", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, ACVTDQ2PD, inv, inv, inv, ACVTPS2PD, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_ConvertToVector128Int32, "ConvertToVector128Int32", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACVTPS2DQ, ACVTPD2DQ}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_ConvertToVector128Int32WithTruncation, "ConvertToVector128Int32WithTruncation", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACVTTPS2DQ, ACVTTPD2DQ}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_ConvertToVector128Single, "ConvertToVector128Single", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, ACVTDQ2PS, inv, inv, inv, inv, ACVTPD2PS}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_Divide, "Divide", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ADIVPD}, catSimpleSIMD, none),
	hw(SSE2_DivideScalar, "DivideScalar", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ADIVSD}, catSIMDScalar, copyUpperBits),
	hw(SSE2_Extract, "Extract", SSE2, -1, 16, 2, ins{inv, inv, APEXTRW, APEXTRW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM|baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_Insert, "Insert", SSE2, -1, 16, 3, ins{inv, inv, APINSRW, APINSRW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM),
	hw(SSE2_LoadAlignedVector128, "LoadAlignedVector128", SSE2, -1, 16, 1, ins{AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, inv, AMOVAPD}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE2_LoadFence, "LoadFence", SSE2, -1, 0, 0, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catSpecial, noFloatingPointUsed|specialCodeGen|noRMWSemantics),
	hw(SSE2_LoadHigh, "LoadHigh", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AMOVHPD}, catMemoryLoad, noContainment),
	hw(SSE2_LoadLow, "LoadLow", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AMOVLPD}, catMemoryLoad, noContainment),
	hw(SSE2_LoadScalarVector128, "LoadScalarVector128", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, AMOVD, AMOVD, AMOVQ, AMOVQ, inv, AMOVSD}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE2_LoadVector128, "LoadVector128", SSE2, -1, 16, 1, ins{AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, inv, AMOVUPD}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE2_MaskMove, "MaskMove", SSE2, -1, 16, 3, ins{AMASKMOVDQU, AMASKMOVDQU, inv, inv, inv, inv, inv, inv, inv, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_Max, "Max", SSE2, -1, 16, 2, ins{inv, APMAXUB, APMAXSW, inv, inv, inv, inv, inv, inv, AMAXPD}, catSimpleSIMD, commutative),
	hw(SSE2_MaxScalar, "MaxScalar", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AMAXSD}, catSIMDScalar, copyUpperBits),
	hw(SSE2_MemoryFence, "MemoryFence", SSE2, -1, 0, 0, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, inv}, catSpecial, noFloatingPointUsed|specialCodeGen|noRMWSemantics),
	hw(SSE2_Min, "Min", SSE2, -1, 16, 2, ins{inv, APMINUB, APMINSW, inv, inv, inv, inv, inv, inv, AMINPD}, catSimpleSIMD, commutative),
	hw(SSE2_MinScalar, "MinScalar", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AMINSD}, catSIMDScalar, copyUpperBits),
	hw(SSE2_MoveMask, "MoveMask", SSE2, -1, 16, 1, ins{APMOVMSKB, APMOVMSKB, inv, inv, inv, inv, inv, inv, inv, AMOVMSKPD}, catSimpleSIMD, noContainment|baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_MoveScalar, "MoveScalar", SSE2, -1, 16, -1, ins{inv, inv, inv, inv, inv, inv, AMOVQ, AMOVQ, inv, AMOVSD}, catSIMDScalar, noContainment),
	hw(SSE2_Multiply, "Multiply", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, APMULUDQ, inv, AMULPD}, catSimpleSIMD, commutative),
	hw(SSE2_MultiplyAddAdjacent, "MultiplyAddAdjacent", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, APMADDWD, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE2_MultiplyHigh, "MultiplyHigh", SSE2, -1, 16, 2, ins{inv, inv, APMULHW, APMULHUW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE2_MultiplyLow, "MultiplyLow", SSE2, -1, 16, 2, ins{inv, inv, APMULLW, APMULLW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE2_MultiplyScalar, "MultiplyScalar", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AMULSD}, catSIMDScalar, copyUpperBits),
	hw(SSE2_Or, "Or", SSE2, -1, 16, 2, ins{APOR, APOR, APOR, APOR, APOR, APOR, APOR, APOR, inv, AORPD}, catSimpleSIMD, commutative),
	hw(SSE2_PackSignedSaturate, "PackSignedSaturate", SSE2, -1, 16, 2, ins{APACKSSWB, inv, APACKSSDW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSE2_PackUnsignedSaturate, "PackUnsignedSaturate", SSE2, -1, 16, 2, ins{inv, APACKUSWB, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSE2_ShiftLeftLogical, "ShiftLeftLogical", SSE2, -1, 16, 2, ins{inv, inv, APSLLW, APSLLW, APSLLD, APSLLD, APSLLQ, APSLLQ, inv, inv}, catIMM, fullRangeIMM|maybeIMM|noJmpTableIMM),
	hw(SSE2_ShiftLeftLogical128BitLane, "ShiftLeftLogical128BitLane", SSE2, -1, 16, 2, ins{APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, inv, inv}, catIMM, fullRangeIMM),
	hw(SSE2_ShiftRightArithmetic, "ShiftRightArithmetic", SSE2, -1, 16, 2, ins{inv, inv, APSRAW, inv, APSRAD, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM|maybeIMM|noJmpTableIMM),
	hw(SSE2_ShiftRightLogical, "ShiftRightLogical", SSE2, -1, 16, 2, ins{inv, inv, APSRLW, APSRLW, APSRLD, APSRLD, APSRLQ, APSRLQ, inv, inv}, catIMM, fullRangeIMM|maybeIMM|noJmpTableIMM),
	hw(SSE2_ShiftRightLogical128BitLane, "ShiftRightLogical128BitLane", SSE2, -1, 16, 2, ins{APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, inv, inv}, catIMM, fullRangeIMM),
	hw(SSE2_Shuffle, "Shuffle", SSE2, -1, 16, -1, ins{inv, inv, inv, inv, APSHUFD, APSHUFD, inv, inv, inv, ASHUFPD}, catIMM, fullRangeIMM),
	hw(SSE2_ShuffleHigh, "ShuffleHigh", SSE2, -1, 16, 2, ins{inv, inv, APSHUFHW, APSHUFHW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM),
	hw(SSE2_ShuffleLow, "ShuffleLow", SSE2, -1, 16, 2, ins{inv, inv, APSHUFLW, APSHUFLW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM),
	hw(SSE2_Sqrt, "Sqrt", SSE2, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ASQRTPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE2_SqrtScalar, "SqrtScalar", SSE2, -1, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ASQRTSD}, catSIMDScalar, copyUpperBits),
	hw(SSE2_Store, "Store", SSE2, -1, 16, 2, ins{AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, inv, AMOVUPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_StoreAligned, "StoreAligned", SSE2, -1, 16, 2, ins{AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, inv, AMOVAPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_StoreAlignedNonTemporal, "StoreAlignedNonTemporal", SSE2, -1, 16, 2, ins{AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, inv, AMOVNTPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_StoreHigh, "StoreHigh", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AMOVHPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_StoreLow, "StoreLow", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, AMOVQ, AMOVQ, inv, AMOVLPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_StoreNonTemporal, "StoreNonTemporal", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, AMOVNTI, AMOVNTI, inv, inv, inv, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_StoreScalar, "StoreScalar", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, AMOVD, AMOVD, AMOVQ, AMOVQ, inv, AMOVSD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(SSE2_Subtract, "Subtract", SSE2, -1, 16, 2, ins{APSUBB, APSUBB, APSUBW, APSUBW, APSUBD, APSUBD, APSUBQ, APSUBQ, inv, ASUBPD}, catSimpleSIMD, none),
	hw(SSE2_SubtractSaturate, "SubtractSaturate", SSE2, -1, 16, 2, ins{APSUBSB, APSUBUSB, APSUBSW, APSUBUSW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSE2_SubtractScalar, "SubtractScalar", SSE2, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ASUBSD}, catSIMDScalar, copyUpperBits),
	hw(SSE2_SumAbsoluteDifferences, "SumAbsoluteDifferences", SSE2, -1, 16, 2, ins{inv, inv, inv, APSADBW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSE2_UnpackHigh, "UnpackHigh", SSE2, -1, 16, 2, ins{APUNPCKHBW, APUNPCKHBW, APUNPCKHWD, APUNPCKHWD, APUNPCKHDQ, APUNPCKHDQ, APUNPCKHQDQ, APUNPCKHQDQ, inv, AUNPCKHPD}, catSimpleSIMD, none),
	hw(SSE2_UnpackLow, "UnpackLow", SSE2, -1, 16, 2, ins{APUNPCKLBW, APUNPCKLBW, APUNPCKLWD, APUNPCKLWD, APUNPCKLDQ, APUNPCKLDQ, APUNPCKLQDQ, APUNPCKLQDQ, inv, AUNPCKLPD}, catSimpleSIMD, none),
	hw(SSE2_Xor, "Xor", SSE2, -1, 16, 2, ins{APXOR, APXOR, APXOR, APXOR, APXOR, APXOR, APXOR, APXOR, inv, AXORPD}, catSimpleSIMD, commutative),

	// SSE2_X64
	hw(SSE2_X64_ConvertScalarToVector128Double, "ConvertScalarToVector128Double", SSE2_X64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, ACVTSI2SD, inv, inv, inv}, catSIMDScalar, copyUpperBits|baseTypeFromSecondArg),
	hw(SSE2_X64_ConvertScalarToVector128Int64, "ConvertScalarToVector128Int64", SSE2_X64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, AMOVQ, inv, inv, inv}, catSIMDScalar, specialCodeGen|noRMWSemantics),
	hw(SSE2_X64_ConvertScalarToVector128UInt64, "ConvertScalarToVector128UInt64", SSE2_X64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, AMOVQ, inv, inv}, catSIMDScalar, specialCodeGen|noRMWSemantics),
	hw(SSE2_X64_ConvertToInt64, "ConvertToInt64", SSE2_X64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, AMOVQ, inv, inv, ACVTSD2SI}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_X64_ConvertToInt64WithTruncation, "ConvertToInt64WithTruncation", SSE2_X64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACVTTSD2SI}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_X64_ConvertToUInt64, "ConvertToUInt64", SSE2_X64, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, AMOVQ, inv, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE2_X64_StoreNonTemporal, "StoreNonTemporal", SSE2_X64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, AMOVNTI, AMOVNTI, inv, inv}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),

	// SSE3
	hw(SSE3_AddSubtract, "AddSubtract", SSE3, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AADDSUBPS, AADDSUBPD}, catSimpleSIMD, none),
	hw(SSE3_HorizontalAdd, "HorizontalAdd", SSE3, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AHADDPS, AHADDPD}, catSimpleSIMD, none),
	hw(SSE3_HorizontalSubtract, "HorizontalSubtract", SSE3, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AHSUBPS, AHSUBPD}, catSimpleSIMD, none),
	hw(SSE3_LoadAndDuplicateToVector128, "LoadAndDuplicateToVector128", SSE3, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, ALDDQU, ALDDQU, inv, AMOVDDUP}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE3_LoadDquVector128, "LoadDquVector128", SSE3, -1, 16, 1, ins{ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, inv, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE3_MoveAndDuplicate, "MoveAndDuplicate", SSE3, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, AMOVDDUP}, catSimpleSIMD, noRMWSemantics),
	hw(SSE3_MoveHighAndDuplicate, "MoveHighAndDuplicate", SSE3, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVSHDUP, inv}, catSimpleSIMD, noRMWSemantics),
	hw(SSE3_MoveLowAndDuplicate, "MoveLowAndDuplicate", SSE3, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVSLDUP, inv}, catSimpleSIMD, noRMWSemantics),

	// SSSE3
	hw(SSSE3_Abs, "Abs", SSSE3, -1, 16, 1, ins{APABSB, inv, APABSW, inv, APABSD, inv, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(SSSE3_AlignRight, "AlignRight", SSSE3, -1, 16, 3, ins{APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, inv, inv}, catIMM, fullRangeIMM),
	hw(SSSE3_HorizontalAdd, "HorizontalAdd", SSSE3, -1, 16, 2, ins{inv, inv, APHADDW, inv, APHADDD, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSSE3_HorizontalAddSaturate, "HorizontalAddSaturate", SSSE3, -1, 16, 2, ins{inv, inv, APHADDSW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSSE3_HorizontalSubtract, "HorizontalSubtract", SSSE3, -1, 16, 2, ins{inv, inv, APHSUBW, inv, APHSUBD, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSSE3_HorizontalSubtractSaturate, "HorizontalSubtractSaturate", SSSE3, -1, 16, 2, ins{inv, inv, APHSUBSW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSSE3_MultiplyAddAdjacent, "MultiplyAddAdjacent", SSSE3, -1, 16, 2, ins{inv, inv, APMADDUBSW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSSE3_MultiplyHighRoundScale, "MultiplyHighRoundScale", SSSE3, -1, 16, 2, ins{inv, inv, APMULHRSW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSSE3_Shuffle, "Shuffle", SSSE3, -1, 16, 2, ins{APSHUFB, APSHUFB, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSSE3_Sign, "Sign", SSSE3, -1, 16, 2, ins{APSIGNB, inv, APSIGNW, inv, APSIGND, inv, inv, inv, inv, inv}, catSimpleSIMD, none),

	// SSE41
	hw(SSE41_Blend, "Blend", SSE41, -1, 16, 3, ins{inv, inv, APBLENDW, APBLENDW, inv, inv, inv, inv, ABLENDPS, ABLENDPD}, catIMM, fullRangeIMM),
	hw(SSE41_BlendVariable, "BlendVariable", SSE41, -1, 16, 3, ins{APBLENDVB, APBLENDVB, APBLENDVB, APBLENDVB, APBLENDVB, APBLENDVB, APBLENDVB, APBLENDVB, ABLENDVPS, ABLENDVPD}, catSimpleSIMD, none),
	hw(SSE41_Ceiling, "Ceiling", SSE41, 10, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_CeilingScalar, "CeilingScalar", SSE41, 10, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDSS, AROUNDSD}, catSIMDScalar, copyUpperBits),
	hw(SSE41_CompareEqual, "CompareEqual", SSE41, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, APCMPEQQ, APCMPEQQ, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE41_ConvertToVector128Int16, "ConvertToVector128Int16", SSE41, -1, 16, 1, ins{APMOVSXBW, APMOVZXBW, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics|maybeMemoryLoad),
	hw(SSE41_ConvertToVector128Int32, "ConvertToVector128Int32", SSE41, -1, 16, 1, ins{APMOVSXBD, APMOVZXBD, APMOVSXWD, APMOVZXWD, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics|maybeMemoryLoad),
	hw(SSE41_ConvertToVector128Int64, "ConvertToVector128Int64", SSE41, -1, 16, 1, ins{APMOVSXBQ, APMOVZXBQ, APMOVSXWQ, APMOVZXWQ, APMOVSXDQ, APMOVZXDQ, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics|maybeMemoryLoad),
	hw(SSE41_DotProduct, "DotProduct", SSE41, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, ADPPS, ADPPD}, catIMM, fullRangeIMM),
	hw(SSE41_Extract, "Extract", SSE41, -1, 16, 2, ins{APEXTRB, APEXTRB, inv, inv, APEXTRD, APEXTRD, inv, inv, AEXTRACTPS, inv}, catIMM, fullRangeIMM|multiIns|baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE41_Floor, "Floor", SSE41, 9, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_FloorScalar, "FloorScalar", SSE41, 9, 16, -1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDSS, AROUNDSD}, catSIMDScalar, copyUpperBits),
	hw(SSE41_Insert, "Insert", SSE41, -1, 16, 3, ins{APINSRB, APINSRB, inv, inv, APINSRD, APINSRD, inv, inv, AINSERTPS, inv}, catIMM, fullRangeIMM),
	hw(SSE41_LoadAlignedVector128NonTemporal, "LoadAlignedVector128NonTemporal", SSE41, -1, 16, 1, ins{AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, inv, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(SSE41_Max, "Max", SSE41, -1, 16, 2, ins{APMAXSB, inv, inv, APMAXUW, APMAXSD, APMAXUD, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE41_Min, "Min", SSE41, -1, 16, 2, ins{APMINSB, inv, inv, APMINUW, APMINSD, APMINUD, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE41_MinHorizontal, "MinHorizontal", SSE41, -1, 16, 1, ins{inv, inv, inv, APHMINPOSUW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_MultipleSumAbsoluteDifferences, "MultipleSumAbsoluteDifferences", SSE41, -1, 16, 3, ins{inv, inv, inv, AMPSADBW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM),
	hw(SSE41_Multiply, "Multiply", SSE41, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, APMULDQ, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE41_MultiplyLow, "MultiplyLow", SSE41, -1, 16, 2, ins{inv, inv, inv, inv, APMULLD, APMULLD, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(SSE41_PackUnsignedSaturate, "PackUnsignedSaturate", SSE41, -1, 16, 2, ins{inv, inv, inv, APACKUSDW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSE41_RoundCurrentDirection, "RoundCurrentDirection", SSE41, 4, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_RoundToNearestInteger, "RoundToNearestInteger", SSE41, 8, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_RoundToNegativeInfinity, "RoundToNegativeInfinity", SSE41, 9, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_RoundToPositiveInfinity, "RoundToPositiveInfinity", SSE41, 10, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_RoundToZero, "RoundToZero", SSE41, 11, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(SSE41_TestC, "TestC", SSE41, -1, 16, 2, ins{APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, inv, inv}, catSimpleSIMD, multiIns|baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE41_TestNotZAndNotC, "TestNotZAndNotC", SSE41, -1, 16, 2, ins{APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, inv, inv}, catSimpleSIMD, multiIns|baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE41_TestZ, "TestZ", SSE41, -1, 16, 2, ins{APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, inv, inv}, catSimpleSIMD, multiIns|baseTypeFromFirstArg|noRMWSemantics),

	// SSE41_X64
	hw(SSE41_X64_Extract, "Extract", SSE41_X64, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, APEXTRQ, APEXTRQ, inv, inv}, catIMM, fullRangeIMM|multiIns|baseTypeFromFirstArg|noRMWSemantics),
	hw(SSE41_X64_Insert, "Insert", SSE41_X64, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, APINSRQ, APINSRQ, inv, inv}, catIMM, fullRangeIMM),

	// SSE42
	hw(SSE42_CompareGreaterThan, "CompareGreaterThan", SSE42, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, APCMPGTQ, inv, inv, inv}, catSimpleSIMD, none),
	hw(SSE42_CompareLessThan, "CompareLessThan", SSE42, -1, 16, 2, ins{inv, inv, inv, inv, inv, inv, APCMPGTQ, inv, inv, inv}, catSimpleSIMD, specialCodeGen),
	hw(SSE42_Crc32, "Crc32", SSE42, -1, 0, 2, ins{inv, ACRC32, inv, ACRC32, inv, ACRC32, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|baseTypeFromSecondArg),

	// SSE42_X64
	hw(SSE42_X64_Crc32, "Crc32", SSE42_X64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, inv, ACRC32, inv, inv}, catScalar, noFloatingPointUsed|baseTypeFromSecondArg),

	// AVX
	hw(AVX_Add, "Add", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AADDPS, AADDPD}, catSimpleSIMD, commutative),
	hw(AVX_AddSubtract, "AddSubtract", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AADDSUBPS, AADDSUBPD}, catSimpleSIMD, none),
	hw(AVX_And, "And", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AANDPS, AANDPD}, catSimpleSIMD, commutative),
	hw(AVX_AndNot, "AndNot", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AANDNPS, AANDNPD}, catSimpleSIMD, none),
	hw(AVX_Blend, "Blend", AVX, -1, 32, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, ABLENDPS, ABLENDPD}, catIMM, fullRangeIMM),
	hw(AVX_BlendVariable, "BlendVariable", AVX, -1, 32, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVBLENDVPS, AVBLENDVPD}, catSimpleSIMD, none),
	hw(AVX_BroadcastScalarToVector128, "BroadcastScalarToVector128", AVX, -1, 16, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVBROADCASTSS, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX_BroadcastScalarToVector256, "BroadcastScalarToVector256", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVBROADCASTSS, AVBROADCASTSD}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX_BroadcastVector128ToVector256, "BroadcastVector128ToVector256", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVBROADCASTF128, AVBROADCASTF128}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX_Ceiling, "Ceiling", AVX, 10, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_Compare, "Compare", AVX, -1, 32, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, ACMPPD}, catIMM, unfixedSIMDSize|baseTypeFromFirstArg),
	hw(AVX_CompareEqual, "CompareEqual", AVX, 0, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, ACMPPD}, catSimpleSIMD, commutative),
	hw(AVX_CompareGreaterThan, "CompareGreaterThan", AVX, 1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, ACMPPD}, catSimpleSIMD, specialCodeGen),
	hw(AVX_CompareLessThan, "CompareLessThan", AVX, 1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, ACMPPD}, catSimpleSIMD, none),
	hw(AVX_CompareNotEqual, "CompareNotEqual", AVX, 4, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPPS, ACMPPD}, catSimpleSIMD, commutative),
	hw(AVX_CompareScalar, "CompareScalar", AVX, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACMPSS, ACMPSD}, catIMM, copyUpperBits),
	hw(AVX_ConvertToVector128Int32, "ConvertToVector128Int32", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACVTPD2DQ}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_ConvertToVector128Single, "ConvertToVector128Single", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, inv, ACVTPD2PS}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_ConvertToVector256Double, "ConvertToVector256Double", AVX, -1, 32, 1, ins{inv, inv, inv, inv, ACVTDQ2PD, inv, inv, inv, ACVTPS2PD, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_ConvertToVector256Int32, "ConvertToVector256Int32", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ACVTPS2DQ, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_ConvertToVector256Single, "ConvertToVector256Single", AVX, -1, 32, 1, ins{inv, inv, inv, inv, ACVTDQ2PS, inv, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_Divide, "Divide", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ADIVPS, ADIVPD}, catSimpleSIMD, none),
	hw(AVX_DotProduct, "DotProduct", AVX, -1, 32, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, ADPPS, inv}, catIMM, fullRangeIMM),
	hw(AVX_DuplicateEvenIndexed, "DuplicateEvenIndexed", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVSLDUP, AMOVDDUP}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_DuplicateOddIndexed, "DuplicateOddIndexed", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVSHDUP, inv}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_ExtractVector128, "ExtractVector128", AVX, -1, 32, 2, ins{AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128, AVEXTRACTF128}, catIMM, fullRangeIMM|noRMWSemantics),
	hw(AVX_Floor, "Floor", AVX, 9, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_HorizontalAdd, "HorizontalAdd", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AHADDPS, AHADDPD}, catSimpleSIMD, none),
	hw(AVX_HorizontalSubtract, "HorizontalSubtract", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AHSUBPS, AHSUBPD}, catSimpleSIMD, none),
	hw(AVX_InsertVector128, "InsertVector128", AVX, -1, 32, 3, ins{AVINSERTF128, AVINSERTF128, AVINSERTF128, AVINSERTF128, AVINSERTF128, AVINSERTF128, AVINSERTF128, AVINSERTF128, AVINSERTF128, AVINSERTF128}, catIMM, fullRangeIMM),
	hw(AVX_LoadAlignedVector256, "LoadAlignedVector256", AVX, -1, 32, 1, ins{AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVAPS, AMOVAPD}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX_LoadDquVector256, "LoadDquVector256", AVX, -1, 32, 1, ins{ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, ALDDQU, inv, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX_LoadVector256, "LoadVector256", AVX, -1, 32, 1, ins{AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVUPS, AMOVUPD}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX_MaskLoad, "MaskLoad", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVMASKMOVPS, AVMASKMOVPD}, catMemoryLoad, unfixedSIMDSize|noContainment|noRMWSemantics),
	hw(AVX_MaskStore, "MaskStore", AVX, -1, 32, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVMASKMOVPS, AVMASKMOVPD}, catMemoryStore, unfixedSIMDSize|noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(AVX_Max, "Max", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMAXPS, AMAXPD}, catSimpleSIMD, none),
	hw(AVX_Min, "Min", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMINPS, AMINPD}, catSimpleSIMD, none),
	hw(AVX_MoveMask, "MoveMask", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMOVMSKPS, AMOVMSKPD}, catSimpleSIMD, noContainment|baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_Multiply, "Multiply", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AMULPS, AMULPD}, catSimpleSIMD, commutative),
	hw(AVX_Or, "Or", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AORPS, AORPD}, catSimpleSIMD, commutative),
	hw(AVX_Permute, "Permute", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVPERMILPS, AVPERMILPD}, catIMM, fullRangeIMM|unfixedSIMDSize|noRMWSemantics),
	hw(AVX_Permute2x128, "Permute2x128", AVX, -1, 32, 3, ins{AVPERM2F128, AVPERM2F128, AVPERM2F128, AVPERM2F128, AVPERM2F128, AVPERM2F128, AVPERM2F128, AVPERM2F128, AVPERM2F128, AVPERM2F128}, catIMM, fullRangeIMM),
	hw(AVX_PermuteVar, "PermuteVar", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVPERMILPSVAR, AVPERMILPDVAR}, catSimpleSIMD, unfixedSIMDSize),
	hw(AVX_Reciprocal, "Reciprocal", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ARCPPS, inv}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_ReciprocalSqrt, "ReciprocalSqrt", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ARSQRTPS, inv}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_RoundCurrentDirection, "RoundCurrentDirection", AVX, 4, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_RoundToNearestInteger, "RoundToNearestInteger", AVX, 8, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_RoundToNegativeInfinity, "RoundToNegativeInfinity", AVX, 9, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_RoundToPositiveInfinity, "RoundToPositiveInfinity", AVX, 10, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_RoundToZero, "RoundToZero", AVX, 11, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, AROUNDPS, AROUNDPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_Shuffle, "Shuffle", AVX, -1, 32, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASHUFPS, ASHUFPD}, catIMM, fullRangeIMM),
	hw(AVX_Sqrt, "Sqrt", AVX, -1, 32, 1, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASQRTPS, ASQRTPD}, catSimpleSIMD, noRMWSemantics),
	hw(AVX_Store, "Store", AVX, -1, 32, 2, ins{AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVDQU, AMOVUPS, AMOVUPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(AVX_StoreAligned, "StoreAligned", AVX, -1, 32, 2, ins{AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVDQA, AMOVAPS, AMOVAPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(AVX_StoreAlignedNonTemporal, "StoreAlignedNonTemporal", AVX, -1, 32, 2, ins{AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTDQ, AMOVNTPS, AMOVNTPD}, catMemoryStore, noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(AVX_Subtract, "Subtract", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, ASUBPS, ASUBPD}, catSimpleSIMD, none),
	hw(AVX_TestC, "TestC", AVX, -1, 32, 2, ins{APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, AVTESTPS, AVTESTPD}, catSimpleSIMD, unfixedSIMDSize|multiIns|baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_TestNotZAndNotC, "TestNotZAndNotC", AVX, -1, 32, 2, ins{APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, AVTESTPS, AVTESTPD}, catSimpleSIMD, unfixedSIMDSize|multiIns|baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_TestZ, "TestZ", AVX, -1, 32, 2, ins{APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, APTEST, AVTESTPS, AVTESTPD}, catSimpleSIMD, unfixedSIMDSize|multiIns|baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX_UnpackHigh, "UnpackHigh", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AUNPCKHPS, AUNPCKHPD}, catSimpleSIMD, none),
	hw(AVX_UnpackLow, "UnpackLow", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AUNPCKLPS, AUNPCKLPD}, catSimpleSIMD, none),
	hw(AVX_Xor, "Xor", AVX, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, inv, inv, AXORPS, AXORPD}, catSimpleSIMD, commutative),

	// AVX2
	hw(AVX2_Abs, "Abs", AVX2, -1, 32, 1, ins{APABSB, inv, APABSW, inv, APABSD, inv, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX2_Add, "Add", AVX2, -1, 32, 2, ins{APADDB, APADDB, APADDW, APADDW, APADDD, APADDD, APADDQ, APADDQ, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_AddSaturate, "AddSaturate", AVX2, -1, 32, 2, ins{APADDSB, APADDUSB, APADDSW, APADDUSW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_AlignRight, "AlignRight", AVX2, -1, 32, 3, ins{APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, APALIGNR, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_And, "And", AVX2, -1, 32, 2, ins{APAND, APAND, APAND, APAND, APAND, APAND, APAND, APAND, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_AndNot, "AndNot", AVX2, -1, 32, 2, ins{APANDN, APANDN, APANDN, APANDN, APANDN, APANDN, APANDN, APANDN, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_Average, "Average", AVX2, -1, 32, 2, ins{inv, APAVGB, inv, APAVGW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_Blend, "Blend", AVX2, -1, 32, 3, ins{inv, inv, APBLENDW, APBLENDW, AVPBLENDD, AVPBLENDD, inv, inv, inv, inv}, catIMM, fullRangeIMM|unfixedSIMDSize),
	hw(AVX2_BlendVariable, "BlendVariable", AVX2, -1, 32, 3, ins{AVPBLENDVB, AVPBLENDVB, AVPBLENDVB, AVPBLENDVB, AVPBLENDVB, AVPBLENDVB, AVPBLENDVB, AVPBLENDVB, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_BroadcastScalarToVector128, "BroadcastScalarToVector128", AVX2, -1, 16, 1, ins{AVPBROADCASTB, AVPBROADCASTB, AVPBROADCASTW, AVPBROADCASTW, AVPBROADCASTD, AVPBROADCASTD, AVPBROADCASTQ, AVPBROADCASTQ, AVBROADCASTSS, AMOVDDUP}, catSIMDScalar, noRMWSemantics|maybeMemoryLoad),
	hw(AVX2_BroadcastScalarToVector256, "BroadcastScalarToVector256", AVX2, -1, 32, 1, ins{AVPBROADCASTB, AVPBROADCASTB, AVPBROADCASTW, AVPBROADCASTW, AVPBROADCASTD, AVPBROADCASTD, AVPBROADCASTQ, AVPBROADCASTQ, AVBROADCASTSS, AVBROADCASTSD}, catSIMDScalar, noRMWSemantics|maybeMemoryLoad),
	hw(AVX2_BroadcastVector128ToVector256, "BroadcastVector128ToVector256", AVX2, -1, 32, 1, ins{AVBROADCASTI128, AVBROADCASTI128, AVBROADCASTI128, AVBROADCASTI128, AVBROADCASTI128, AVBROADCASTI128, AVBROADCASTI128, AVBROADCASTI128, inv, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX2_CompareEqual, "CompareEqual", AVX2, -1, 32, 2, ins{APCMPEQB, APCMPEQB, APCMPEQW, APCMPEQW, APCMPEQD, APCMPEQD, APCMPEQQ, APCMPEQQ, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_CompareGreaterThan, "CompareGreaterThan", AVX2, -1, 32, 2, ins{APCMPGTB, inv, APCMPGTW, inv, APCMPGTD, inv, APCMPGTQ, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_CompareLessThan, "CompareLessThan", AVX2, -1, 32, 2, ins{APCMPGTB, inv, APCMPGTW, inv, APCMPGTD, inv, APCMPGTQ, inv, inv, inv}, catSimpleSIMD, specialCodeGen),
	hw(AVX2_ConvertToInt32, "ConvertToInt32", AVX2, -1, 32, 1, ins{inv, inv, inv, inv, AMOVD, inv, inv, inv, inv, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX2_ConvertToUInt32, "ConvertToUInt32", AVX2, -1, 32, 1, ins{inv, inv, inv, inv, inv, AMOVD, inv, inv, inv, inv}, catSIMDScalar, baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX2_ConvertToVector256Int16, "ConvertToVector256Int16", AVX2, -1, 32, 1, ins{APMOVSXBW, APMOVZXBW, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics|maybeMemoryLoad),
	hw(AVX2_ConvertToVector256Int32, "ConvertToVector256Int32", AVX2, -1, 32, 1, ins{APMOVSXBD, APMOVZXBD, APMOVSXWD, APMOVZXWD, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics|maybeMemoryLoad),
	hw(AVX2_ConvertToVector256Int64, "ConvertToVector256Int64", AVX2, -1, 32, 1, ins{APMOVSXBQ, APMOVZXBQ, APMOVSXWQ, APMOVZXWQ, APMOVSXDQ, APMOVZXDQ, inv, inv, inv, inv}, catSimpleSIMD, baseTypeFromFirstArg|noRMWSemantics|maybeMemoryLoad),
	hw(AVX2_ExtractVector128, "ExtractVector128", AVX2, -1, 32, 2, ins{AVEXTRACTI128, AVEXTRACTI128, AVEXTRACTI128, AVEXTRACTI128, AVEXTRACTI128, AVEXTRACTI128, AVEXTRACTI128, AVEXTRACTI128, inv, inv}, catIMM, fullRangeIMM|noRMWSemantics),
	hw(AVX2_GatherMaskVector128, "GatherMaskVector128", AVX2, -1, 16, 5, ins{inv, inv, inv, inv, AVPGATHERDD, AVPGATHERDD, AVPGATHERDQ, AVPGATHERDQ, AVGATHERDPS, AVGATHERDPD}, catIMM, noContainment|specialCodeGen|specialImport|maybeMemoryLoad),
	hw(AVX2_GatherMaskVector256, "GatherMaskVector256", AVX2, -1, 32, 5, ins{inv, inv, inv, inv, AVPGATHERDD, AVPGATHERDD, AVPGATHERDQ, AVPGATHERDQ, AVGATHERDPS, AVGATHERDPD}, catIMM, noContainment|specialCodeGen|specialImport|maybeMemoryLoad),
	hw(AVX2_GatherVector128, "GatherVector128", AVX2, -1, 16, 3, ins{inv, inv, inv, inv, AVPGATHERDD, AVPGATHERDD, AVPGATHERDQ, AVPGATHERDQ, AVGATHERDPS, AVGATHERDPD}, catIMM, noContainment|specialCodeGen|maybeMemoryLoad),
	hw(AVX2_GatherVector256, "GatherVector256", AVX2, -1, 32, 3, ins{inv, inv, inv, inv, AVPGATHERDD, AVPGATHERDD, AVPGATHERDQ, AVPGATHERDQ, AVGATHERDPS, AVGATHERDPD}, catIMM, noContainment|specialCodeGen|maybeMemoryLoad),
	hw(AVX2_HorizontalAdd, "HorizontalAdd", AVX2, -1, 32, 2, ins{inv, inv, APHADDW, inv, APHADDD, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_HorizontalAddSaturate, "HorizontalAddSaturate", AVX2, -1, 32, 2, ins{inv, inv, APHADDSW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_HorizontalSubtract, "HorizontalSubtract", AVX2, -1, 32, 2, ins{inv, inv, APHSUBW, inv, APHSUBD, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_InsertVector128, "InsertVector128", AVX2, -1, 32, 3, ins{AVINSERTI128, AVINSERTI128, AVINSERTI128, AVINSERTI128, AVINSERTI128, AVINSERTI128, AVINSERTI128, AVINSERTI128, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_LoadAlignedVector256NonTemporal, "LoadAlignedVector256NonTemporal", AVX2, -1, 32, 1, ins{AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, AMOVNTDQA, inv, inv}, catMemoryLoad, noContainment|noRMWSemantics),
	hw(AVX2_MaskLoad, "MaskLoad", AVX2, -1, 32, 2, ins{inv, inv, inv, inv, AVPMASKMOVD, AVPMASKMOVD, AVPMASKMOVQ, AVPMASKMOVQ, inv, inv}, catMemoryLoad, unfixedSIMDSize|noContainment|noRMWSemantics),
	hw(AVX2_MaskStore, "MaskStore", AVX2, -1, 32, 3, ins{inv, inv, inv, inv, AVPMASKMOVD, AVPMASKMOVD, AVPMASKMOVQ, AVPMASKMOVQ, inv, inv}, catMemoryStore, unfixedSIMDSize|noContainment|baseTypeFromSecondArg|noRMWSemantics),
	hw(AVX2_Max, "Max", AVX2, -1, 32, 2, ins{APMAXSB, APMAXUB, APMAXSW, APMAXUW, APMAXSD, APMAXUD, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_Min, "Min", AVX2, -1, 32, 2, ins{APMINSB, APMINUB, APMINSW, APMINUW, APMINSD, APMINUD, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_MoveMask, "MoveMask", AVX2, -1, 32, 1, ins{APMOVMSKB, APMOVMSKB, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, noContainment|baseTypeFromFirstArg|noRMWSemantics),
	hw(AVX2_Multiply, "Multiply", AVX2, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, APMULDQ, APMULUDQ, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_MultipleSumAbsoluteDifferences, "MultipleSumAbsoluteDifferences", AVX2, -1, 32, 3, ins{inv, inv, inv, AMPSADBW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_MultiplyAddAdjacent, "MultiplyAddAdjacent", AVX2, -1, 32, 2, ins{inv, inv, APMADDUBSW, inv, APMADDWD, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_MultiplyHigh, "MultiplyHigh", AVX2, -1, 32, 2, ins{inv, inv, APMULHW, APMULHUW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_MultiplyHighRoundScale, "MultiplyHighRoundScale", AVX2, -1, 32, 2, ins{inv, inv, APMULHRSW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_MultiplyLow, "MultiplyLow", AVX2, -1, 32, 2, ins{inv, inv, APMULLW, APMULLW, APMULLD, APMULLD, inv, inv, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_Or, "Or", AVX2, -1, 32, 2, ins{APOR, APOR, APOR, APOR, APOR, APOR, APOR, APOR, inv, inv}, catSimpleSIMD, commutative),
	hw(AVX2_PackSignedSaturate, "PackSignedSaturate", AVX2, -1, 32, 2, ins{APACKSSWB, inv, APACKSSDW, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_PackUnsignedSaturate, "PackUnsignedSaturate", AVX2, -1, 32, 2, ins{inv, APACKUSWB, inv, APACKUSDW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_Permute2x128, "Permute2x128", AVX2, -1, 32, 3, ins{AVPERM2I128, AVPERM2I128, AVPERM2I128, AVPERM2I128, AVPERM2I128, AVPERM2I128, AVPERM2I128, AVPERM2I128, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_Permute4x64, "Permute4x64", AVX2, -1, 32, 2, ins{inv, inv, inv, inv, inv, inv, AVPERMQ, AVPERMQ, inv, AVPERMPD}, catIMM, fullRangeIMM|noRMWSemantics),
	hw(AVX2_PermuteVar8x32, "PermuteVar8x32", AVX2, -1, 32, 2, ins{inv, inv, inv, inv, AVPERMD, AVPERMD, inv, inv, AVPERMPS, inv}, catSimpleSIMD, specialImport),
	hw(AVX2_ShiftLeftLogical, "ShiftLeftLogical", AVX2, -1, 32, 2, ins{inv, inv, APSLLW, APSLLW, APSLLD, APSLLD, APSLLQ, APSLLQ, inv, inv}, catIMM, fullRangeIMM|maybeIMM|noJmpTableIMM),
	hw(AVX2_ShiftLeftLogical128BitLane, "ShiftLeftLogical128BitLane", AVX2, -1, 32, 2, ins{APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, APSLLDQ, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_ShiftLeftLogicalVariable, "ShiftLeftLogicalVariable", AVX2, -1, 32, 2, ins{inv, inv, inv, inv, AVPSLLVD, AVPSLLVD, AVPSLLVQ, AVPSLLVQ, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AVX2_ShiftRightArithmetic, "ShiftRightArithmetic", AVX2, -1, 32, 2, ins{inv, inv, APSRAW, inv, APSRAD, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM|maybeIMM|noJmpTableIMM),
	hw(AVX2_ShiftRightArithmeticVariable, "ShiftRightArithmeticVariable", AVX2, -1, 32, 2, ins{inv, inv, inv, inv, AVPSRAVD, inv, inv, inv, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AVX2_ShiftRightLogical, "ShiftRightLogical", AVX2, -1, 32, 2, ins{inv, inv, APSRLW, APSRLW, APSRLD, APSRLD, APSRLQ, APSRLQ, inv, inv}, catIMM, fullRangeIMM|maybeIMM|noJmpTableIMM),
	hw(AVX2_ShiftRightLogical128BitLane, "ShiftRightLogical128BitLane", AVX2, -1, 32, 2, ins{APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, APSRLDQ, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_ShiftRightLogicalVariable, "ShiftRightLogicalVariable", AVX2, -1, 32, 2, ins{inv, inv, inv, inv, AVPSRLVD, AVPSRLVD, AVPSRLVQ, AVPSRLVQ, inv, inv}, catSimpleSIMD, unfixedSIMDSize),
	hw(AVX2_Shuffle, "Shuffle", AVX2, -1, 32, 2, ins{APSHUFB, APSHUFB, inv, inv, APSHUFD, APSHUFD, inv, inv, inv, inv}, catIMM, fullRangeIMM|maybeIMM),
	hw(AVX2_ShuffleHigh, "ShuffleHigh", AVX2, -1, 32, 2, ins{inv, inv, APSHUFHW, APSHUFHW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_ShuffleLow, "ShuffleLow", AVX2, -1, 32, 2, ins{inv, inv, APSHUFLW, APSHUFLW, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM),
	hw(AVX2_Sign, "Sign", AVX2, -1, 32, 2, ins{APSIGNB, inv, APSIGNW, inv, APSIGND, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_Subtract, "Subtract", AVX2, -1, 32, 2, ins{APSUBB, APSUBB, APSUBW, APSUBW, APSUBD, APSUBD, APSUBQ, APSUBQ, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_SubtractSaturate, "SubtractSaturate", AVX2, -1, 32, 2, ins{APSUBSB, APSUBUSB, APSUBSW, APSUBUSW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_SumAbsoluteDifferences, "SumAbsoluteDifferences", AVX2, -1, 32, 2, ins{inv, inv, inv, APSADBW, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_UnpackHigh, "UnpackHigh", AVX2, -1, 32, 2, ins{APUNPCKHBW, APUNPCKHBW, APUNPCKHWD, APUNPCKHWD, APUNPCKHDQ, APUNPCKHDQ, APUNPCKHQDQ, APUNPCKHQDQ, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_UnpackLow, "UnpackLow", AVX2, -1, 32, 2, ins{APUNPCKLBW, APUNPCKLBW, APUNPCKLWD, APUNPCKLWD, APUNPCKLDQ, APUNPCKLDQ, APUNPCKLQDQ, APUNPCKLQDQ, inv, inv}, catSimpleSIMD, none),
	hw(AVX2_Xor, "Xor", AVX2, -1, 32, 2, ins{APXOR, APXOR, APXOR, APXOR, APXOR, APXOR, APXOR, APXOR, inv, inv}, catSimpleSIMD, commutative),

	// FMA
	hw(FMA_MultiplyAdd, "MultiplyAdd", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFMADD213PS, AVFMADD213PD}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(FMA_MultiplyAddNegated, "MultiplyAddNegated", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFNMADD213PS, AVFNMADD213PD}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(FMA_MultiplyAddNegatedScalar, "MultiplyAddNegatedScalar", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFNMADD213SS, AVFNMADD213SD}, catSIMDScalar, copyUpperBits|specialCodeGen),
	hw(FMA_MultiplyAddScalar, "MultiplyAddScalar", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFMADD213SS, AVFMADD213SD}, catSIMDScalar, copyUpperBits|specialCodeGen),
	hw(FMA_MultiplyAddSubtract, "MultiplyAddSubtract", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFMADDSUB213PS, AVFMADDSUB213PD}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(FMA_MultiplySubtract, "MultiplySubtract", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFMSUB213PS, AVFMSUB213PD}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(FMA_MultiplySubtractAdd, "MultiplySubtractAdd", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFMSUBADD213PS, AVFMSUBADD213PD}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(FMA_MultiplySubtractNegated, "MultiplySubtractNegated", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFNMSUB213PS, AVFNMSUB213PD}, catSimpleSIMD, unfixedSIMDSize|specialCodeGen),
	hw(FMA_MultiplySubtractScalar, "MultiplySubtractScalar", FMA, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, inv, inv, AVFMSUB213SS, AVFMSUB213SD}, catSIMDScalar, copyUpperBits|specialCodeGen),

	// AES
	hw(AES_Decrypt, "Decrypt", AES, -1, 16, 2, ins{inv, AAESDEC, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AES_DecryptLast, "DecryptLast", AES, -1, 16, 2, ins{inv, AAESDECLAST, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AES_Encrypt, "Encrypt", AES, -1, 16, 2, ins{inv, AAESENC, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AES_EncryptLast, "EncryptLast", AES, -1, 16, 2, ins{inv, AAESENCLAST, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, none),
	hw(AES_InverseMixColumns, "InverseMixColumns", AES, -1, 16, 1, ins{inv, AAESIMC, inv, inv, inv, inv, inv, inv, inv, inv}, catSimpleSIMD, noRMWSemantics),
	hw(AES_KeygenAssist, "KeygenAssist", AES, -1, 16, 2, ins{inv, AAESKEYGENASSIST, inv, inv, inv, inv, inv, inv, inv, inv}, catIMM, fullRangeIMM|noRMWSemantics),

	// BMI1
	hw(BMI1_AndNot, "AndNot", BMI1, -1, 0, 2, ins{inv, inv, inv, inv, AANDN, AANDN, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_BitFieldExtract, "BitFieldExtract", BMI1, -1, 0, -1, ins{inv, inv, inv, inv, ABEXTR, ABEXTR, inv, inv, inv, inv}, catScalar, multiIns|noFloatingPointUsed|noRMWSemantics|specialImport),
	hw(BMI1_ExtractLowestSetBit, "ExtractLowestSetBit", BMI1, -1, 0, 1, ins{inv, inv, inv, inv, ABLSI, ABLSI, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_GetMaskUpToLowestSetBit, "GetMaskUpToLowestSetBit", BMI1, -1, 0, 1, ins{inv, inv, inv, inv, ABLSMSK, ABLSMSK, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_ResetLowestSetBit, "ResetLowestSetBit", BMI1, -1, 0, 1, ins{inv, inv, inv, inv, ABLSR, ABLSR, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_TrailingZeroCount, "TrailingZeroCount", BMI1, -1, 0, 1, ins{inv, inv, inv, inv, ATZCNT, ATZCNT, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),

	// BMI1_X64
	hw(BMI1_X64_AndNot, "AndNot", BMI1_X64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, AANDN, AANDN, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_X64_BitFieldExtract, "BitFieldExtract", BMI1_X64, -1, 0, -1, ins{inv, inv, inv, inv, inv, inv, ABEXTR, ABEXTR, inv, inv}, catScalar, multiIns|noFloatingPointUsed|noRMWSemantics|specialImport),
	hw(BMI1_X64_ExtractLowestSetBit, "ExtractLowestSetBit", BMI1_X64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, ABLSI, ABLSI, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_X64_GetMaskUpToLowestSetBit, "GetMaskUpToLowestSetBit", BMI1_X64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, ABLSMSK, ABLSMSK, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_X64_ResetLowestSetBit, "ResetLowestSetBit", BMI1_X64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, ABLSR, ABLSR, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI1_X64_TrailingZeroCount, "TrailingZeroCount", BMI1_X64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, ATZCNT, ATZCNT, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),

	// BMI2
	hw(BMI2_MultiplyNoFlags, "MultiplyNoFlags", BMI2, -1, 0, -1, ins{inv, inv, inv, inv, inv, AMULX, inv, inv, inv, inv}, catScalar, multiIns|noContainment|noFloatingPointUsed|specialCodeGen|noRMWSemantics|maybeMemoryStore),
	hw(BMI2_ParallelBitDeposit, "ParallelBitDeposit", BMI2, -1, 0, 2, ins{inv, inv, inv, inv, inv, APDEP, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI2_ParallelBitExtract, "ParallelBitExtract", BMI2, -1, 0, 2, ins{inv, inv, inv, inv, inv, APEXT, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI2_ZeroHighBits, "ZeroHighBits", BMI2, -1, 0, 2, ins{inv, inv, inv, inv, inv, ABZHI, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics|specialImport),

	// BMI2_X64
	hw(BMI2_X64_MultiplyNoFlags, "MultiplyNoFlags", BMI2_X64, -1, 0, -1, ins{inv, inv, inv, inv, inv, inv, inv, AMULX, inv, inv}, catScalar, multiIns|noContainment|noFloatingPointUsed|specialCodeGen|noRMWSemantics|maybeMemoryStore),
	hw(BMI2_X64_ParallelBitDeposit, "ParallelBitDeposit", BMI2_X64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, inv, APDEP, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI2_X64_ParallelBitExtract, "ParallelBitExtract", BMI2_X64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, inv, APEXT, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
	hw(BMI2_X64_ZeroHighBits, "ZeroHighBits", BMI2_X64, -1, 0, 2, ins{inv, inv, inv, inv, inv, inv, inv, ABZHI, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics|specialImport),

	// LZCNT
	hw(LZCNT_LeadingZeroCount, "LeadingZeroCount", LZCNT, -1, 0, 1, ins{inv, inv, inv, inv, inv, ALZCNT, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),

	// LZCNT_X64
	hw(LZCNT_X64_LeadingZeroCount, "LeadingZeroCount", LZCNT_X64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, inv, ALZCNT, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),

	// PCLMULQDQ
	hw(PCLMULQDQ_CarrylessMultiply, "CarrylessMultiply", PCLMULQDQ, -1, 16, 3, ins{inv, inv, inv, inv, inv, inv, APCLMULQDQ, APCLMULQDQ, inv, inv}, catIMM, fullRangeIMM),

	// POPCNT
	hw(POPCNT_PopCount, "PopCount", POPCNT, -1, 0, 1, ins{inv, inv, inv, inv, inv, APOPCNT, inv, inv, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),

	// POPCNT_X64
	hw(POPCNT_X64_PopCount, "PopCount", POPCNT_X64, -1, 0, 1, ins{inv, inv, inv, inv, inv, inv, inv, APOPCNT, inv, inv}, catScalar, noFloatingPointUsed|noRMWSemantics),
}
