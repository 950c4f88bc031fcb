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

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

type support struct {
	isas     map[hwi.ISA]bool
	baseline bool
}

func (s support) Supports(isa hwi.ISA) bool     { return s.isas[isa] }
func (s support) ExactlyDependsOn(hwi.ISA) bool { return false }
func (s support) BaselineSIMDSupported() bool   { return s.baseline }

func supportAll() support {
	s := support{isas: map[hwi.ISA]bool{}, baseline: true}
	for _, isa := range registry.ISAs() {
		s.isas[isa] = true
	}
	return s
}

func fatal(f func()) (err error) {
	defer hwi.Recover(&err)
	f()
	return nil
}

func TestTable(t *testing.T) {
	if got := registry.Len(); got != numIntrinsics {
		t.Fatalf("Len() = %d, want %d", got, numIntrinsics)
	}
	for in := range registry.All() {
		if Lookup(in.ID).ID != in.ID {
			t.Errorf("Lookup(%d) is misplaced", in.ID)
		}
		if in.SimdSize != 0 && in.SimdSize != 8 && in.SimdSize != 16 {
			t.Errorf("%s.%s: SIMD size %d", registry.ISAName(in.ISA), in.Name, in.SimdSize)
		}
		if in.Category == hwi.CategoryIMM {
			if _, ok := immKinds[in.ID]; !ok {
				t.Errorf("%s.%s: IMM intrinsic without immediate kind", registry.ISAName(in.ISA), in.Name)
			}
		}
	}
	for id := range immKinds {
		if c := registry.LookupCategory(id); c != hwi.CategoryIMM {
			t.Errorf("%s has an immediate kind but category %s", registry.LookupName(id), c)
		}
	}
}

// TestHasRMWSemantics checks the arm64 polarity: the bit marks RMW.
func TestHasRMWSemantics(t *testing.T) {
	tests := []struct {
		id   hwi.ID
		want bool
	}{
		{AdvSimd_Add, false},
		{AdvSimd_Subtract, false},
		{Crc32_ComputeCrc32, false},
		{AdvSimd_MultiplyAdd, true},
		{AdvSimd_Insert, true},
		{Aes_Encrypt, true},
		{Dp_DotProductBySelectedQuadruplet, true},
	}
	for _, tt := range tests {
		if got := HasRMWSemantics(tt.id); got != tt.want {
			t.Errorf("HasRMWSemantics(%s) = %v, want %v", Lookup(tt.id).Name, got, tt.want)
		}
		if got := Target().HasRMWSemantics(tt.id); got != tt.want {
			t.Errorf("Target().HasRMWSemantics(%s) = %v, want %v", Lookup(tt.id).Name, got, tt.want)
		}
	}
}

func TestImmUpperBound(t *testing.T) {
	tests := []struct {
		id   hwi.ID
		want int
	}{
		{AdvSimd_DuplicateSelectedScalarToVector64, 15},
		{AdvSimd_ExtractVector64, 7},
		{AdvSimd_ExtractVector128, 15},
		{AdvSimd_Insert, 15},
		{AdvSimd_ShiftLeftLogical, 63},
		{AdvSimd_ShiftRightLogical, 64},
		{Dp_DotProductBySelectedQuadruplet, 3},
	}
	for _, tt := range tests {
		if got := ImmUpperBound(tt.id); got != tt.want {
			t.Errorf("ImmUpperBound(%s) = %d, want %d", Lookup(tt.id).Name, got, tt.want)
		}
	}
	for id := range immKinds {
		if registry.HasFullRangeImm(id) {
			t.Errorf("%s accepts the full imm8 range", registry.LookupName(id))
		}
	}

	err := fatal(func() { ImmUpperBound(AdvSimd_Add) })
	var ie *hwi.InternalError
	if !errors.As(err, &ie) || ie.ID != AdvSimd_Add {
		t.Errorf("ImmUpperBound(AdvSimd_Add): got %v, want an *InternalError", err)
	}
}

// TestImmBounds checks that bounds follow the element type at the call site.
func TestImmBounds(t *testing.T) {
	tests := []struct {
		id       hwi.ID
		simdSize int
		typ      hwi.VarType
		lo, hi   int
	}{
		{AdvSimd_Extract, 16, hwi.TypeByte, 0, 15},
		{AdvSimd_Extract, 16, hwi.TypeInt, 0, 3},
		{AdvSimd_Extract, 8, hwi.TypeShort, 0, 3},
		{AdvSimd_Insert, 16, hwi.TypeDouble, 0, 1},
		{AdvSimd_ShiftLeftLogical, 16, hwi.TypeByte, 0, 7},
		{AdvSimd_ShiftLeftLogical, 8, hwi.TypeULong, 0, 63},
		{AdvSimd_ShiftRightArithmetic, 16, hwi.TypeShort, 1, 16},
		{AdvSimd_ShiftRightLogical, 16, hwi.TypeUInt, 1, 32},
		{Dp_DotProductBySelectedQuadruplet, 8, hwi.TypeInt, 0, 1},
		{Dp_DotProductBySelectedQuadruplet, 16, hwi.TypeUInt, 0, 3},
	}
	for _, tt := range tests {
		lo, hi := ImmBounds(tt.id, tt.simdSize, tt.typ)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("ImmBounds(%s, %d, %s) = [%d, %d], want [%d, %d]",
				Lookup(tt.id).Name, tt.simdSize, tt.typ, lo, hi, tt.lo, tt.hi)
		}
	}
}

// TestImmBoundsWithinUpperBound checks that no call site accepts an
// immediate that ImmUpperBound or IsLegalImm would reject.
func TestImmBoundsWithinUpperBound(t *testing.T) {
	for id := range immKinds {
		upper := ImmUpperBound(id)
		for _, simdSize := range []int{8, 16} {
			for _, typ := range hwi.ElementTypes() {
				lo, hi := ImmBounds(id, simdSize, typ)
				if hi > upper {
					t.Errorf("ImmBounds(%s, %d, %s) = [%d, %d] exceeds ImmUpperBound %d",
						Lookup(id).Name, simdSize, typ, lo, hi, upper)
				}
				if !IsLegalImm(id, lo) || !IsLegalImm(id, hi) {
					t.Errorf("IsLegalImm(%s) rejects [%d, %d]", Lookup(id).Name, lo, hi)
				}
			}
		}
	}

	lo, hi := ImmBounds(AdvSimd_DuplicateSelectedScalarToVector64, 16, hwi.TypeByte)
	if lo != 0 || hi != 15 || !IsLegalImm(AdvSimd_DuplicateSelectedScalarToVector64, 15) {
		t.Errorf("DuplicateSelectedScalarToVector64 on Vector128<byte>: [%d, %d]", lo, hi)
	}
	if _, hi := ImmBounds(AdvSimd_ExtractVector64, 16, hwi.TypeByte); hi != 7 {
		t.Errorf("ImmBounds(ExtractVector64, 16, byte).hi = %d, want 7", hi)
	}
}

func TestImmBoundsFatal(t *testing.T) {
	for name, f := range map[string]func(){
		"NotIMM":   func() { ImmBounds(AdvSimd_Add, 16, hwi.TypeInt) },
		"BadType":  func() { ImmBounds(AdvSimd_Extract, 16, hwi.TypeStruct) },
		"BadWidth": func() { ImmBounds(AdvSimd_Extract, 32, hwi.TypeInt) },
	} {
		var ie *hwi.InternalError
		if err := fatal(f); !errors.As(err, &ie) || ie.Op != "ImmBounds" {
			t.Errorf("%s: got %v, want an ImmBounds InternalError", name, err)
		}
	}
}

func TestIsLegalImm(t *testing.T) {
	if IsLegalImm(AdvSimd_ShiftRightLogical, 0) {
		t.Error("a right shift by 0 is legal")
	}
	if !IsLegalImm(AdvSimd_ShiftRightLogical, 64) || IsLegalImm(AdvSimd_ShiftRightLogical, 65) {
		t.Error("right shift accepts the wrong range")
	}
	if !IsLegalImm(AdvSimd_ShiftLeftLogical, 0) || IsLegalImm(AdvSimd_ShiftLeftLogical, 64) {
		t.Error("left shift accepts the wrong range")
	}
	if IsLegalImm(AdvSimd_Insert, -1) || !Target().IsLegalImm(AdvSimd_Insert, 15) {
		t.Error("lane index accepts the wrong range")
	}
}

func TestResolveRoundTrip(t *testing.T) {
	ctx := supportAll()
	for in := range registry.All() {
		class, enclosing, ok := ClassNames(in.ISA)
		if !ok {
			t.Errorf("%s has no class", registry.ISAName(in.ISA))
			continue
		}
		if got := ResolveID(ctx, class, in.Name, enclosing); got != in.ID {
			t.Errorf("ResolveID(%s, %s, %q) = %d, want %d", class, in.Name, enclosing, got, in.ID)
		}
	}
}

func TestResolveID(t *testing.T) {
	all := supportAll()
	noCrc := supportAll()
	delete(noCrc.isas, Crc32)
	noSIMD := supportAll()
	noSIMD.baseline = false

	tests := []struct {
		name                     string
		ctx                      support
		class, method, enclosing string
		want                     hwi.ID
	}{
		{"Plain", all, "AdvSimd", "Add", "", AdvSimd_Add},
		{"Nested", all, "Arm64", "Add", "AdvSimd", AdvSimd_Arm64_Add},
		{"NestedCrc", all, "Arm64", "ComputeCrc32C", "Crc32", Crc32_Arm64_ComputeCrc32C},
		{"NestedUnknown", all, "Arm64", "Encrypt", "Aes", hwi.IllegalID},
		{"NestedX64", all, "X64", "Add", "AdvSimd", hwi.IllegalID},
		{"XArchClass", all, "Sse2", "Add", "", hwi.IllegalID},
		{"IsSupportedDynamic", all, "Crc32", hwi.IsSupportedMethod, "", hwi.IsSupportedDynamic},
		{"IsSupportedFalse", noCrc, "Crc32", hwi.IsSupportedMethod, "", hwi.IsSupportedFalse},
		{"Unsupported", noCrc, "Crc32", "ComputeCrc32", "", hwi.ThrowPlatformNotSupported},
		{"Sve", all, "Sve", "Add", "", hwi.ThrowPlatformNotSupported},
		{"SveIsSupported", all, "Sve", hwi.IsSupportedMethod, "", hwi.IsSupportedFalse},
		{"Vector64", all, "Vector64", "Zero", "", Vector64_Zero},
		{"Vector64NoSIMD", noSIMD, "Vector64", "Zero", "", hwi.IllegalID},
		{"Vector128", all, "Vector128", "GetUpper", "", Vector128_GetUpper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveID(tt.ctx, tt.class, tt.method, tt.enclosing); got != tt.want {
				t.Errorf("ResolveID(%s, %s, %q) = %#x, want %#x", tt.class, tt.method, tt.enclosing, got, tt.want)
			}
		})
	}
}

func TestISAClassification(t *testing.T) {
	if IsFullyImplementedISA(Sve) || IsFullyImplementedISA(hwi.ISAIllegal) {
		t.Error("Sve or ISAIllegal reported as fully implemented")
	}
	for in := range registry.All() {
		if !IsFullyImplementedISA(in.ISA) {
			t.Errorf("%s.%s belongs to an ISA that is not fully implemented", registry.ISAName(in.ISA), in.Name)
		}
		if IsScalarISA(in.ISA) && in.Category != hwi.CategoryScalar {
			t.Errorf("%s.%s: scalar ISA with category %s", registry.ISAName(in.ISA), in.Name, in.Category)
		}
	}
	if !IsScalarISA(Crc32_Arm64) || IsScalarISA(AdvSimd) {
		t.Error("IsScalarISA misclassifies Crc32_Arm64 or AdvSimd")
	}
}

func TestFamily(t *testing.T) {
	var tg hwi.Target = Target()
	if tg.Arch() != hwi.ArchArm64 || tg.Registry() != Registry() {
		t.Fatal("Target() does not describe arm64")
	}
	if tg.Registry().Fingerprint() == 0 {
		t.Error("zero fingerprint")
	}
	if got := tg.Registry().LookupIns(AdvSimd_Add, hwi.TypeFloat); got != AFADD {
		t.Errorf("LookupIns(AdvSimd.Add, float) = %s", registry.InsName(got))
	}
}
