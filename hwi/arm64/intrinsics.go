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

// Intrinsic IDs, grouped by ISA. The order is the table order.
const (
	_ hwi.ID = iota

	// Vector64
	Vector64_As
	Vector64_Create
	Vector64_CreateScalarUnsafe
	Vector64_GetElement
	Vector64_ToScalar
	Vector64_ToVector128
	Vector64_ToVector128Unsafe
	Vector64_WithElement
	Vector64_Zero

	// Vector128
	Vector128_As
	Vector128_Create
	Vector128_CreateScalarUnsafe
	Vector128_GetElement
	Vector128_GetLower
	Vector128_GetUpper
	Vector128_ToScalar
	Vector128_WithElement
	Vector128_Zero

	// AdvSimd
	AdvSimd_Abs
	AdvSimd_AbsScalar
	AdvSimd_AbsoluteCompareGreaterThan
	AdvSimd_AbsoluteCompareGreaterThanOrEqual
	AdvSimd_AbsoluteDifference
	AdvSimd_AbsoluteDifferenceAdd
	AdvSimd_Add
	AdvSimd_AddPairwise
	AdvSimd_AddSaturate
	AdvSimd_AddScalar
	AdvSimd_And
	AdvSimd_BitwiseClear
	AdvSimd_BitwiseSelect
	AdvSimd_CompareEqual
	AdvSimd_CompareGreaterThan
	AdvSimd_CompareGreaterThanOrEqual
	AdvSimd_CompareLessThan
	AdvSimd_CompareLessThanOrEqual
	AdvSimd_CompareTest
	AdvSimd_DivideScalar
	AdvSimd_DuplicateSelectedScalarToVector64
	AdvSimd_DuplicateSelectedScalarToVector128
	AdvSimd_DuplicateToVector64
	AdvSimd_DuplicateToVector128
	AdvSimd_Extract
	AdvSimd_ExtractVector64
	AdvSimd_ExtractVector128
	AdvSimd_FusedMultiplyAdd
	AdvSimd_FusedMultiplySubtract
	AdvSimd_Insert
	AdvSimd_LeadingSignCount
	AdvSimd_LeadingZeroCount
	AdvSimd_LoadAndReplicateToVector64
	AdvSimd_LoadVector64
	AdvSimd_LoadVector128
	AdvSimd_Max
	AdvSimd_MaxPairwise
	AdvSimd_Min
	AdvSimd_MinPairwise
	AdvSimd_Multiply
	AdvSimd_MultiplyAdd
	AdvSimd_MultiplyScalar
	AdvSimd_MultiplySubtract
	AdvSimd_Negate
	AdvSimd_NegateScalar
	AdvSimd_Not
	AdvSimd_Or
	AdvSimd_OrNot
	AdvSimd_PopCount
	AdvSimd_ShiftLeftLogical
	AdvSimd_ShiftRightArithmetic
	AdvSimd_ShiftRightLogical
	AdvSimd_SqrtScalar
	AdvSimd_Store
	AdvSimd_Subtract
	AdvSimd_SubtractSaturate
	AdvSimd_SubtractScalar
	AdvSimd_VectorTableLookup
	AdvSimd_Xor

	// AdvSimd_Arm64
	AdvSimd_Arm64_Abs
	AdvSimd_Arm64_Add
	AdvSimd_Arm64_AddAcross
	AdvSimd_Arm64_CompareEqual
	AdvSimd_Arm64_CompareGreaterThan
	AdvSimd_Arm64_Divide
	AdvSimd_Arm64_Max
	AdvSimd_Arm64_MaxAcross
	AdvSimd_Arm64_Min
	AdvSimd_Arm64_MinAcross
	AdvSimd_Arm64_Multiply
	AdvSimd_Arm64_Negate
	AdvSimd_Arm64_ReverseElementBits
	AdvSimd_Arm64_Sqrt
	AdvSimd_Arm64_Subtract
	AdvSimd_Arm64_TransposeEven
	AdvSimd_Arm64_TransposeOdd
	AdvSimd_Arm64_UnzipEven
	AdvSimd_Arm64_UnzipOdd
	AdvSimd_Arm64_ZipHigh
	AdvSimd_Arm64_ZipLow

	// Aes
	Aes_Decrypt
	Aes_Encrypt
	Aes_InverseMixColumns
	Aes_MixColumns
	Aes_PolynomialMultiplyWideningLower

	// ArmBase
	ArmBase_LeadingZeroCount
	ArmBase_ReverseElementBits

	// ArmBase_Arm64
	ArmBase_Arm64_LeadingSignCount
	ArmBase_Arm64_LeadingZeroCount
	ArmBase_Arm64_MultiplyHigh
	ArmBase_Arm64_ReverseElementBits

	// Crc32
	Crc32_ComputeCrc32
	Crc32_ComputeCrc32C

	// Crc32_Arm64
	Crc32_Arm64_ComputeCrc32
	Crc32_Arm64_ComputeCrc32C

	// Dp
	Dp_DotProduct
	Dp_DotProductBySelectedQuadruplet

	// Rdm
	Rdm_MultiplyRoundedDoublingAndAddSaturateHigh
	Rdm_MultiplyRoundedDoublingAndSubtractSaturateHigh

	// Sha1
	Sha1_FixedRotate
	Sha1_HashUpdateChoose
	Sha1_HashUpdateMajority
	Sha1_HashUpdateParity
	Sha1_ScheduleUpdate0
	Sha1_ScheduleUpdate1

	// Sha256
	Sha256_HashUpdate1
	Sha256_HashUpdate2
	Sha256_ScheduleUpdate0
	Sha256_ScheduleUpdate1

	numIntrinsics = iota - 1
)
