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

// boundedImm holds the IMM intrinsics that do not accept a full imm8, with
// their largest legal immediate.
var boundedImm = map[hwi.ID]int{
	AVX_Compare:              31,
	AVX_CompareScalar:        31,
	AVX2_GatherVector128:     8,
	AVX2_GatherVector256:     8,
	AVX2_GatherMaskVector128: 8,
	AVX2_GatherMaskVector256: 8,
}

func isBoundedImm(id hwi.ID) bool {
	_, ok := boundedImm[id]
	return ok
}

// ImmUpperBound returns the largest legal immediate of the IMM intrinsic id.
// Immediates outside [0, bound] need a fallback lowering such as a jump
// table. It is fatal for intrinsics outside the IMM category.
func ImmUpperBound(id hwi.ID) int {
	if cat := registry.LookupCategory(id); cat != hwi.CategoryIMM {
		hwi.Fatalf("ImmUpperBound", id, "%s is a %s intrinsic", registry.LookupName(id), cat)
	}
	if bound, ok := boundedImm[id]; ok {
		return bound
	}
	return 255
}

// IsInImmRange reports whether ival is a legal immediate for id. The gather
// scale accepts only 1, 2, 4 and 8.
func IsInImmRange(id hwi.ID, ival int) bool {
	if IsGatherIntrinsic(id) {
		switch ival {
		case 1, 2, 4, 8:
			return true
		default:
			return false
		}
	}
	return ival >= 0 && ival <= ImmUpperBound(id)
}

// IsGatherIntrinsic reports whether id is an AVX2 gather. Gathers take a
// vector of indices and a scale, and fault per element.
func IsGatherIntrinsic(id hwi.ID) bool {
	switch id {
	case AVX2_GatherVector128, AVX2_GatherVector256, AVX2_GatherMaskVector128, AVX2_GatherMaskVector256:
		return true
	default:
		return false
	}
}
