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

type immKind uint8

const (
	laneIndex       immKind = iota // element index into a vector
	shiftLeft                      // 0 to element bits - 1
	shiftRight                     // 1 to element bits
	quadrupletIndex                // index of a 32-bit group
)

// immKinds classifies every IMM intrinsic. None accepts a full imm8.
var immKinds = map[hwi.ID]immKind{
	AdvSimd_DuplicateSelectedScalarToVector64:  laneIndex,
	AdvSimd_DuplicateSelectedScalarToVector128: laneIndex,
	AdvSimd_Extract:                   laneIndex,
	AdvSimd_ExtractVector64:           laneIndex,
	AdvSimd_ExtractVector128:          laneIndex,
	AdvSimd_Insert:                    laneIndex,
	AdvSimd_ShiftLeftLogical:          shiftLeft,
	AdvSimd_ShiftRightArithmetic:      shiftRight,
	AdvSimd_ShiftRightLogical:         shiftRight,
	Dp_DotProductBySelectedQuadruplet: quadrupletIndex,
}

func isBoundedImm(id hwi.ID) bool {
	_, ok := immKinds[id]
	return ok
}

func immKindOf(op string, id hwi.ID) immKind {
	k, ok := immKinds[id]
	if !ok {
		hwi.Fatalf(op, id, "%s is a %s intrinsic", registry.LookupName(id), registry.LookupCategory(id))
	}
	return k
}

// maxSIMDSize is the widest AdvSimd vector in bytes.
const maxSIMDSize = 16

// widestSIMDSize is the largest vector width id can see at a call site.
// Size-polymorphic intrinsics take Vector128 operands even when the table
// lists a narrower result.
func widestSIMDSize(id hwi.ID) int {
	if registry.HasFixedSimdSize(id) {
		return registry.LookupSimdSize(id)
	}
	return maxSIMDSize
}

// ImmUpperBound returns the largest immediate id accepts for any element
// type: lane indices are bounded by the byte lane count of the widest
// vector id takes, shifts by 64-bit elements. It is fatal for intrinsics
// outside the IMM category.
func ImmUpperBound(id hwi.ID) int {
	switch immKindOf("ImmUpperBound", id) {
	case shiftLeft:
		return 63
	case shiftRight:
		return 64
	case quadrupletIndex:
		return widestSIMDSize(id)/4 - 1
	default:
		return widestSIMDSize(id) - 1
	}
}

// ImmBounds returns the inclusive range of legal immediates of id at a call
// site operating on simdSize-byte vectors of baseType. Intrinsics with a
// fixed width always operate on their table size.
func ImmBounds(id hwi.ID, simdSize int, baseType hwi.VarType) (lo, hi int) {
	k := immKindOf("ImmBounds", id)
	if !baseType.IsElementType() {
		hwi.Fatalf("ImmBounds", id, "unexpected type %s", baseType)
	}
	if simdSize != 8 && simdSize != maxSIMDSize {
		hwi.Fatalf("ImmBounds", id, "unexpected SIMD size %d", simdSize)
	}
	if registry.HasFixedSimdSize(id) {
		simdSize = registry.LookupSimdSize(id)
	}
	bits := baseType.Size() * 8
	switch k {
	case shiftLeft:
		return 0, bits - 1
	case shiftRight:
		return 1, bits
	case quadrupletIndex:
		return 0, simdSize/4 - 1
	default:
		return 0, simdSize/baseType.Size() - 1
	}
}

// IsLegalImm reports whether ival is legal for id with some element type.
func IsLegalImm(id hwi.ID, ival int) bool {
	lo := 0
	if immKindOf("IsLegalImm", id) == shiftRight {
		lo = 1
	}
	return ival >= lo && ival <= ImmUpperBound(id)
}
