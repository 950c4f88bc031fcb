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

// Intrinsic IDs, grouped by ISA. The order is the table order.
const (
	_ hwi.ID = iota

	// Vector128
	Vector128_As
	Vector128_Create
	Vector128_CreateScalarUnsafe
	Vector128_GetElement
	Vector128_ToScalar
	Vector128_ToVector256
	Vector128_ToVector256Unsafe
	Vector128_WithElement
	Vector128_Zero

	// Vector256
	Vector256_As
	Vector256_Create
	Vector256_CreateScalarUnsafe
	Vector256_GetElement
	Vector256_GetLower
	Vector256_ToScalar
	Vector256_WithElement
	Vector256_Zero

	// SSE
	SSE_Add
	SSE_AddScalar
	SSE_And
	SSE_AndNot
	SSE_CompareEqual
	SSE_CompareGreaterThan
	SSE_CompareGreaterThanOrEqual
	SSE_CompareLessThan
	SSE_CompareLessThanOrEqual
	SSE_CompareNotEqual
	SSE_CompareOrdered
	SSE_CompareUnordered
	SSE_CompareScalarEqual
	SSE_CompareScalarLessThan
	SSE_CompareScalarOrderedEqual
	SSE_CompareScalarOrderedLessThan
	SSE_CompareScalarUnorderedEqual
	SSE_ConvertScalarToVector128Single
	SSE_ConvertToInt32
	SSE_ConvertToInt32WithTruncation
	SSE_Divide
	SSE_DivideScalar
	SSE_LoadAlignedVector128
	SSE_LoadHigh
	SSE_LoadLow
	SSE_LoadScalarVector128
	SSE_LoadVector128
	SSE_Max
	SSE_MaxScalar
	SSE_Min
	SSE_MinScalar
	SSE_MoveHighToLow
	SSE_MoveLowToHigh
	SSE_MoveMask
	SSE_MoveScalar
	SSE_Multiply
	SSE_MultiplyScalar
	SSE_Or
	SSE_Prefetch0
	SSE_Prefetch1
	SSE_Prefetch2
	SSE_PrefetchNonTemporal
	SSE_Reciprocal
	SSE_ReciprocalScalar
	SSE_ReciprocalSqrt
	SSE_ReciprocalSqrtScalar
	SSE_Shuffle
	SSE_Sqrt
	SSE_SqrtScalar
	SSE_Store
	SSE_StoreAligned
	SSE_StoreAlignedNonTemporal
	SSE_StoreFence
	SSE_StoreHigh
	SSE_StoreLow
	SSE_StoreScalar
	SSE_Subtract
	SSE_SubtractScalar
	SSE_UnpackHigh
	SSE_UnpackLow
	SSE_Xor

	// SSE_X64
	SSE_X64_ConvertScalarToVector128Single
	SSE_X64_ConvertToInt64
	SSE_X64_ConvertToInt64WithTruncation

	// SSE2
	SSE2_Add
	SSE2_AddSaturate
	SSE2_AddScalar
	SSE2_And
	SSE2_AndNot
	SSE2_Average
	SSE2_CompareEqual
	SSE2_CompareGreaterThan
	SSE2_CompareGreaterThanOrEqual
	SSE2_CompareLessThan
	SSE2_CompareLessThanOrEqual
	SSE2_CompareNotEqual
	SSE2_CompareOrdered
	SSE2_CompareUnordered
	SSE2_CompareScalarEqual
	SSE2_CompareScalarOrderedEqual
	SSE2_CompareScalarUnorderedEqual
	SSE2_ConvertScalarToVector128Double
	SSE2_ConvertScalarToVector128Int32
	SSE2_ConvertScalarToVector128UInt32
	SSE2_ConvertToInt32
	SSE2_ConvertToInt32WithTruncation
	SSE2_ConvertToUInt32
	SSE2_ConvertToVector128Double
	SSE2_ConvertToVector128Int32
	SSE2_ConvertToVector128Int32WithTruncation
	SSE2_ConvertToVector128Single
	SSE2_Divide
	SSE2_DivideScalar
	SSE2_Extract
	SSE2_Insert
	SSE2_LoadAlignedVector128
	SSE2_LoadFence
	SSE2_LoadHigh
	SSE2_LoadLow
	SSE2_LoadScalarVector128
	SSE2_LoadVector128
	SSE2_MaskMove
	SSE2_Max
	SSE2_MaxScalar
	SSE2_MemoryFence
	SSE2_Min
	SSE2_MinScalar
	SSE2_MoveMask
	SSE2_MoveScalar
	SSE2_Multiply
	SSE2_MultiplyAddAdjacent
	SSE2_MultiplyHigh
	SSE2_MultiplyLow
	SSE2_MultiplyScalar
	SSE2_Or
	SSE2_PackSignedSaturate
	SSE2_PackUnsignedSaturate
	SSE2_ShiftLeftLogical
	SSE2_ShiftLeftLogical128BitLane
	SSE2_ShiftRightArithmetic
	SSE2_ShiftRightLogical
	SSE2_ShiftRightLogical128BitLane
	SSE2_Shuffle
	SSE2_ShuffleHigh
	SSE2_ShuffleLow
	SSE2_Sqrt
	SSE2_SqrtScalar
	SSE2_Store
	SSE2_StoreAligned
	SSE2_StoreAlignedNonTemporal
	SSE2_StoreHigh
	SSE2_StoreLow
	SSE2_StoreNonTemporal
	SSE2_StoreScalar
	SSE2_Subtract
	SSE2_SubtractSaturate
	SSE2_SubtractScalar
	SSE2_SumAbsoluteDifferences
	SSE2_UnpackHigh
	SSE2_UnpackLow
	SSE2_Xor

	// SSE2_X64
	SSE2_X64_ConvertScalarToVector128Double
	SSE2_X64_ConvertScalarToVector128Int64
	SSE2_X64_ConvertScalarToVector128UInt64
	SSE2_X64_ConvertToInt64
	SSE2_X64_ConvertToInt64WithTruncation
	SSE2_X64_ConvertToUInt64
	SSE2_X64_StoreNonTemporal

	// SSE3
	SSE3_AddSubtract
	SSE3_HorizontalAdd
	SSE3_HorizontalSubtract
	SSE3_LoadAndDuplicateToVector128
	SSE3_LoadDquVector128
	SSE3_MoveAndDuplicate
	SSE3_MoveHighAndDuplicate
	SSE3_MoveLowAndDuplicate

	// SSSE3
	SSSE3_Abs
	SSSE3_AlignRight
	SSSE3_HorizontalAdd
	SSSE3_HorizontalAddSaturate
	SSSE3_HorizontalSubtract
	SSSE3_HorizontalSubtractSaturate
	SSSE3_MultiplyAddAdjacent
	SSSE3_MultiplyHighRoundScale
	SSSE3_Shuffle
	SSSE3_Sign

	// SSE41
	SSE41_Blend
	SSE41_BlendVariable
	SSE41_Ceiling
	SSE41_CeilingScalar
	SSE41_CompareEqual
	SSE41_ConvertToVector128Int16
	SSE41_ConvertToVector128Int32
	SSE41_ConvertToVector128Int64
	SSE41_DotProduct
	SSE41_Extract
	SSE41_Floor
	SSE41_FloorScalar
	SSE41_Insert
	SSE41_LoadAlignedVector128NonTemporal
	SSE41_Max
	SSE41_Min
	SSE41_MinHorizontal
	SSE41_MultipleSumAbsoluteDifferences
	SSE41_Multiply
	SSE41_MultiplyLow
	SSE41_PackUnsignedSaturate
	SSE41_RoundCurrentDirection
	SSE41_RoundToNearestInteger
	SSE41_RoundToNegativeInfinity
	SSE41_RoundToPositiveInfinity
	SSE41_RoundToZero
	SSE41_TestC
	SSE41_TestNotZAndNotC
	SSE41_TestZ

	// SSE41_X64
	SSE41_X64_Extract
	SSE41_X64_Insert

	// SSE42
	SSE42_CompareGreaterThan
	SSE42_CompareLessThan
	SSE42_Crc32

	// SSE42_X64
	SSE42_X64_Crc32

	// AVX
	AVX_Add
	AVX_AddSubtract
	AVX_And
	AVX_AndNot
	AVX_Blend
	AVX_BlendVariable
	AVX_BroadcastScalarToVector128
	AVX_BroadcastScalarToVector256
	AVX_BroadcastVector128ToVector256
	AVX_Ceiling
	AVX_Compare
	AVX_CompareEqual
	AVX_CompareGreaterThan
	AVX_CompareLessThan
	AVX_CompareNotEqual
	AVX_CompareScalar
	AVX_ConvertToVector128Int32
	AVX_ConvertToVector128Single
	AVX_ConvertToVector256Double
	AVX_ConvertToVector256Int32
	AVX_ConvertToVector256Single
	AVX_Divide
	AVX_DotProduct
	AVX_DuplicateEvenIndexed
	AVX_DuplicateOddIndexed
	AVX_ExtractVector128
	AVX_Floor
	AVX_HorizontalAdd
	AVX_HorizontalSubtract
	AVX_InsertVector128
	AVX_LoadAlignedVector256
	AVX_LoadDquVector256
	AVX_LoadVector256
	AVX_MaskLoad
	AVX_MaskStore
	AVX_Max
	AVX_Min
	AVX_MoveMask
	AVX_Multiply
	AVX_Or
	AVX_Permute
	AVX_Permute2x128
	AVX_PermuteVar
	AVX_Reciprocal
	AVX_ReciprocalSqrt
	AVX_RoundCurrentDirection
	AVX_RoundToNearestInteger
	AVX_RoundToNegativeInfinity
	AVX_RoundToPositiveInfinity
	AVX_RoundToZero
	AVX_Shuffle
	AVX_Sqrt
	AVX_Store
	AVX_StoreAligned
	AVX_StoreAlignedNonTemporal
	AVX_Subtract
	AVX_TestC
	AVX_TestNotZAndNotC
	AVX_TestZ
	AVX_UnpackHigh
	AVX_UnpackLow
	AVX_Xor

	// AVX2
	AVX2_Abs
	AVX2_Add
	AVX2_AddSaturate
	AVX2_AlignRight
	AVX2_And
	AVX2_AndNot
	AVX2_Average
	AVX2_Blend
	AVX2_BlendVariable
	AVX2_BroadcastScalarToVector128
	AVX2_BroadcastScalarToVector256
	AVX2_BroadcastVector128ToVector256
	AVX2_CompareEqual
	AVX2_CompareGreaterThan
	AVX2_CompareLessThan
	AVX2_ConvertToInt32
	AVX2_ConvertToUInt32
	AVX2_ConvertToVector256Int16
	AVX2_ConvertToVector256Int32
	AVX2_ConvertToVector256Int64
	AVX2_ExtractVector128
	AVX2_GatherMaskVector128
	AVX2_GatherMaskVector256
	AVX2_GatherVector128
	AVX2_GatherVector256
	AVX2_HorizontalAdd
	AVX2_HorizontalAddSaturate
	AVX2_HorizontalSubtract
	AVX2_InsertVector128
	AVX2_LoadAlignedVector256NonTemporal
	AVX2_MaskLoad
	AVX2_MaskStore
	AVX2_Max
	AVX2_Min
	AVX2_MoveMask
	AVX2_Multiply
	AVX2_MultipleSumAbsoluteDifferences
	AVX2_MultiplyAddAdjacent
	AVX2_MultiplyHigh
	AVX2_MultiplyHighRoundScale
	AVX2_MultiplyLow
	AVX2_Or
	AVX2_PackSignedSaturate
	AVX2_PackUnsignedSaturate
	AVX2_Permute2x128
	AVX2_Permute4x64
	AVX2_PermuteVar8x32
	AVX2_ShiftLeftLogical
	AVX2_ShiftLeftLogical128BitLane
	AVX2_ShiftLeftLogicalVariable
	AVX2_ShiftRightArithmetic
	AVX2_ShiftRightArithmeticVariable
	AVX2_ShiftRightLogical
	AVX2_ShiftRightLogical128BitLane
	AVX2_ShiftRightLogicalVariable
	AVX2_Shuffle
	AVX2_ShuffleHigh
	AVX2_ShuffleLow
	AVX2_Sign
	AVX2_Subtract
	AVX2_SubtractSaturate
	AVX2_SumAbsoluteDifferences
	AVX2_UnpackHigh
	AVX2_UnpackLow
	AVX2_Xor

	// FMA
	FMA_MultiplyAdd
	FMA_MultiplyAddNegated
	FMA_MultiplyAddNegatedScalar
	FMA_MultiplyAddScalar
	FMA_MultiplyAddSubtract
	FMA_MultiplySubtract
	FMA_MultiplySubtractAdd
	FMA_MultiplySubtractNegated
	FMA_MultiplySubtractScalar

	// AES
	AES_Decrypt
	AES_DecryptLast
	AES_Encrypt
	AES_EncryptLast
	AES_InverseMixColumns
	AES_KeygenAssist

	// BMI1
	BMI1_AndNot
	BMI1_BitFieldExtract
	BMI1_ExtractLowestSetBit
	BMI1_GetMaskUpToLowestSetBit
	BMI1_ResetLowestSetBit
	BMI1_TrailingZeroCount

	// BMI1_X64
	BMI1_X64_AndNot
	BMI1_X64_BitFieldExtract
	BMI1_X64_ExtractLowestSetBit
	BMI1_X64_GetMaskUpToLowestSetBit
	BMI1_X64_ResetLowestSetBit
	BMI1_X64_TrailingZeroCount

	// BMI2
	BMI2_MultiplyNoFlags
	BMI2_ParallelBitDeposit
	BMI2_ParallelBitExtract
	BMI2_ZeroHighBits

	// BMI2_X64
	BMI2_X64_MultiplyNoFlags
	BMI2_X64_ParallelBitDeposit
	BMI2_X64_ParallelBitExtract
	BMI2_X64_ZeroHighBits

	// LZCNT
	LZCNT_LeadingZeroCount

	// LZCNT_X64
	LZCNT_X64_LeadingZeroCount

	// PCLMULQDQ
	PCLMULQDQ_CarrylessMultiply

	// POPCNT
	POPCNT_PopCount

	// POPCNT_X64
	POPCNT_X64_PopCount

	numIntrinsics = iota - 1
)
