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

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

type support struct {
	isas     map[hwi.ISA]bool
	exact    map[hwi.ISA]bool
	baseline bool
}

func (s support) Supports(isa hwi.ISA) bool         { return s.isas[isa] }
func (s support) ExactlyDependsOn(isa hwi.ISA) bool { return s.exact[isa] }
func (s support) BaselineSIMDSupported() bool       { return s.baseline }

// supportAll may use every ISA of the table and depends exactly on SSE2.
func supportAll() support {
	s := support{isas: map[hwi.ISA]bool{}, exact: map[hwi.ISA]bool{SSE: true, SSE2: true}, baseline: true}
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
		if got := Lookup(in.ID).ID; got != in.ID {
			t.Errorf("Lookup(%d).ID = %d", in.ID, got)
		}
		switch in.Category {
		case hwi.CategoryMemoryLoad, hwi.CategoryMemoryStore:
			if in.SupportsContainment() {
				t.Errorf("%s.%s: memory intrinsic supports containment", registry.ISAName(in.ISA), in.Name)
			}
		}
		if in.SimdSize != 0 && in.SimdSize != 16 && in.SimdSize != 32 {
			t.Errorf("%s.%s: SIMD size %d", registry.ISAName(in.ISA), in.Name, in.SimdSize)
		}
	}
}

// TestSse2Add is the canonical lookup: Sse2.Add is a commutative plain SIMD
// op with one instruction per integer width and addpd for double.
func TestSse2Add(t *testing.T) {
	id := ResolveID(supportAll(), "Sse2", "Add", "")
	if id != SSE2_Add {
		t.Fatalf("ResolveID(Sse2, Add) = %d, want %d", id, SSE2_Add)
	}
	in := Lookup(id)
	if in.ISA != SSE2 || in.Category != hwi.CategorySimpleSIMD || !in.IsCommutative() {
		t.Errorf("Sse2.Add = {ISA %s, %s, %s}", registry.ISAName(in.ISA), in.Category, in.Flags)
	}
	tests := []struct {
		typ  hwi.VarType
		want hwi.Ins
	}{
		{hwi.TypeByte, APADDB},
		{hwi.TypeUShort, APADDW},
		{hwi.TypeUInt, APADDD},
		{hwi.TypeLong, APADDQ},
		{hwi.TypeFloat, hwi.InsInvalid},
		{hwi.TypeDouble, AADDPD},
	}
	for _, tt := range tests {
		if got := registry.LookupIns(id, tt.typ); got != tt.want {
			t.Errorf("LookupIns(Sse2.Add, %s) = %s, want %s", tt.typ, registry.InsName(got), registry.InsName(tt.want))
		}
	}
}

// TestResolveRoundTrip resolves every record through its class name.
func TestResolveRoundTrip(t *testing.T) {
	ctx := supportAll()
	for in := range registry.All() {
		class, enclosing, ok := ClassNames(in.ISA)
		if !ok {
			t.Errorf("%s has no class", registry.ISAName(in.ISA))
			continue
		}
		if got := ResolveISA(class, enclosing); got != in.ISA {
			t.Errorf("ResolveISA(%s, %q) = %s, want %s", class, enclosing, registry.ISAName(got), registry.ISAName(in.ISA))
		}
		if got := ResolveID(ctx, class, in.Name, enclosing); got != in.ID {
			t.Errorf("ResolveID(%s, %s, %q) = %d, want %d", class, in.Name, enclosing, got, in.ID)
		}
	}
}

func TestResolveID(t *testing.T) {
	all := supportAll()
	noAVX := supportAll()
	delete(noAVX.isas, AVX)
	delete(noAVX.isas, AVX2)
	noSIMD := supportAll()
	noSIMD.baseline = false

	tests := []struct {
		name                     string
		ctx                      support
		class, method, enclosing string
		want                     hwi.ID
	}{
		{"X64", all, "X64", "ConvertToInt64", "Sse2", SSE2_X64_ConvertToInt64},
		{"X64Crc32", all, "X64", "Crc32", "Sse42", SSE42_X64_Crc32},
		{"NoX64Class", all, "X64", "Add", "Avx", hwi.IllegalID},
		{"NestedNotX64", all, "Arm64", "Add", "Sse2", hwi.IllegalID},
		{"UnknownClass", all, "Math", "Abs", "", hwi.IllegalID},
		{"CaseSensitive", all, "sse2", "Add", "", hwi.IllegalID},
		{"ManagedHelper", all, "Sse2", "ToString", "", hwi.IllegalID},
		{"IsSupportedExact", all, "Sse2", hwi.IsSupportedMethod, "", hwi.IsSupportedTrue},
		{"IsSupportedDynamic", all, "Avx2", hwi.IsSupportedMethod, "", hwi.IsSupportedDynamic},
		{"IsSupportedFalse", noAVX, "Avx2", hwi.IsSupportedMethod, "", hwi.IsSupportedFalse},
		{"Unsupported", noAVX, "Avx2", "Add", "", hwi.ThrowPlatformNotSupported},
		{"NotImplemented", all, "Avx512F", "Add", "", hwi.ThrowPlatformNotSupported},
		{"NotImplementedIsSupported", all, "Avx512F", hwi.IsSupportedMethod, "", hwi.IsSupportedFalse},
		{"Vector128", all, "Vector128", "Create", "", Vector128_Create},
		{"Vector128NoSIMD", noSIMD, "Vector128", "Create", "", hwi.IllegalID},
		{"Vector256NoAVX", noAVX, "Vector256", "Create", "", hwi.IllegalID},
		{"Vector256", all, "Vector256", "Zero", "", Vector256_Zero},
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
	if IsFullyImplementedISA(AVX512F) {
		t.Error("AVX512F reported as fully implemented")
	}
	if IsFullyImplementedISA(hwi.ISAIllegal) {
		t.Error("ISAIllegal reported as fully implemented")
	}
	for in := range registry.All() {
		if !IsFullyImplementedISA(in.ISA) {
			t.Errorf("%s.%s belongs to an ISA that is not fully implemented", registry.ISAName(in.ISA), in.Name)
		}
		if IsScalarISA(in.ISA) && in.Category != hwi.CategoryScalar {
			t.Errorf("%s.%s: scalar ISA with category %s", registry.ISAName(in.ISA), in.Name, in.Category)
		}
	}
	for _, isa := range []hwi.ISA{LZCNT_X64, BMI2, POPCNT} {
		if !IsScalarISA(isa) {
			t.Errorf("IsScalarISA(%s) = false", registry.ISAName(isa))
		}
	}
	if IsScalarISA(SSE42) {
		t.Error("IsScalarISA(SSE42) = true")
	}
}

// TestHasRMWSemantics checks the xarch polarity: no bit means RMW.
func TestHasRMWSemantics(t *testing.T) {
	tests := []struct {
		id   hwi.ID
		want bool
	}{
		{SSE_Add, true},
		{SSE2_Subtract, true},
		{AES_Encrypt, true},
		{SSE_Sqrt, false},
		{SSE2_LoadVector128, false},
		{BMI1_AndNot, false},
	}
	for _, tt := range tests {
		if got := HasRMWSemantics(tt.id); got != tt.want {
			t.Errorf("HasRMWSemantics(%s) = %v, want %v", Lookup(tt.id).Name, got, tt.want)
		}
		if got := Target().HasRMWSemantics(tt.id); got != tt.want {
			t.Errorf("Target().HasRMWSemantics(%s) = %v, want %v", Lookup(tt.id).Name, got, tt.want)
		}
	}
	if Lookup(SSE_Add).Flags.Has(FlagNoRMWSemantics) {
		t.Error("SSE_Add carries the RMW bit")
	}
}

// TestImmUpperBound checks every IMM record against the imm8 range.
func TestImmUpperBound(t *testing.T) {
	for in := range registry.All() {
		if in.Category != hwi.CategoryIMM {
			continue
		}
		bound := ImmUpperBound(in.ID)
		if bound < 0 || bound > 255 {
			t.Errorf("ImmUpperBound(%s) = %d", in.Name, bound)
		}
		if in.HasFullRangeImm() && bound != 255 {
			t.Errorf("ImmUpperBound(%s) = %d for a full range intrinsic", in.Name, bound)
		}
	}
	tests := []struct {
		id   hwi.ID
		want int
	}{
		{AVX_Compare, 31},
		{AVX_CompareScalar, 31},
		{AVX2_GatherVector128, 8},
		{AVX2_GatherMaskVector256, 8},
		{SSE_Shuffle, 255},
	}
	for _, tt := range tests {
		if got := ImmUpperBound(tt.id); got != tt.want {
			t.Errorf("ImmUpperBound(%s) = %d, want %d", Lookup(tt.id).Name, got, tt.want)
		}
	}

	err := fatal(func() { ImmUpperBound(SSE_Add) })
	var ie *hwi.InternalError
	if !errors.As(err, &ie) {
		t.Errorf("ImmUpperBound(SSE_Add): got %v, want an *InternalError", err)
	}
}

func TestIsInImmRange(t *testing.T) {
	for ival := 0; ival <= 255; ival++ {
		if !IsInImmRange(SSE_Shuffle, ival) {
			t.Errorf("IsInImmRange(SSE_Shuffle, %d) = false", ival)
		}
	}
	for _, ival := range []int{-1, 256} {
		if IsInImmRange(SSE_Shuffle, ival) {
			t.Errorf("IsInImmRange(SSE_Shuffle, %d) = true", ival)
		}
	}
	for ival := -1; ival <= 9; ival++ {
		want := ival == 1 || ival == 2 || ival == 4 || ival == 8
		if got := IsInImmRange(AVX2_GatherVector256, ival); got != want {
			t.Errorf("IsInImmRange(GatherVector256, %d) = %v, want %v", ival, got, want)
		}
	}
	if !IsInImmRange(AVX_Compare, 31) || IsInImmRange(AVX_Compare, 32) {
		t.Error("AVX_Compare accepts the wrong predicate range")
	}
	if !Target().IsLegalImm(AVX_Compare, int(CmpTRUE_US)) {
		t.Error("Target().IsLegalImm(AVX_Compare, CmpTRUE_US) = false")
	}
}

func TestIsGatherIntrinsic(t *testing.T) {
	var gathers int
	for in := range registry.All() {
		if IsGatherIntrinsic(in.ID) {
			gathers++
			if in.ISA != AVX2 || in.SupportsContainment() {
				t.Errorf("%s: unexpected gather", in.Name)
			}
		}
	}
	if gathers != 4 {
		t.Errorf("found %d gathers, want 4", gathers)
	}
}

type classes map[hwi.ClassHandle]int

func (c classes) SIMDTypeInfo(cls hwi.ClassHandle) (hwi.VarType, int) {
	if size, ok := c[cls]; ok {
		return hwi.TypeFloat, size
	}
	return hwi.TypeUnknown, 0
}

// TestMultiplyAddWidth resolves the width of the size-polymorphic Fma
// intrinsics from the generic argument.
func TestMultiplyAddWidth(t *testing.T) {
	const v128, v256 hwi.ClassHandle = 1, 2
	types := classes{v128: 16, v256: 32}
	if registry.HasFixedSimdSize(FMA_MultiplyAdd) {
		t.Fatal("FMA_MultiplyAdd has a fixed size")
	}
	for cls, want := range map[hwi.ClassHandle]int{v128: 16, v256: 32} {
		sig := hwi.Signature{RetType: hwi.TypeStruct, RetClass: cls, ArgClasses: []hwi.ClassHandle{cls, cls, cls}}
		if got := registry.ResolveSIMDSize(types, FMA_MultiplyAdd, &sig); got != want {
			t.Errorf("ResolveSIMDSize(MultiplyAdd, %d) = %d, want %d", cls, got, want)
		}
	}
	sig := hwi.Signature{RetType: hwi.TypeStruct, RetClass: v128}
	if got := registry.ResolveSIMDSize(types, AVX_Add, &sig); got != 32 {
		t.Errorf("ResolveSIMDSize(Avx.Add) = %d, want the fixed 32", got)
	}
}

func TestMaybeImmShift(t *testing.T) {
	if !registry.MaybeImm(SSE2_ShiftLeftLogical) {
		t.Fatal("SSE2_ShiftLeftLogical is not MaybeIMM")
	}
	if !registry.IsImmOp(SSE2_ShiftLeftLogical, operand(hwi.TypeUByte)) {
		t.Error("byte shift count is not an immediate")
	}
	if registry.IsImmOp(SSE2_ShiftLeftLogical, operand(hwi.TypeStruct)) {
		t.Error("vector shift count is an immediate")
	}
}

type operand hwi.VarType

func (o operand) Type() hwi.VarType { return hwi.VarType(o) }

func TestFamily(t *testing.T) {
	var tg hwi.Target = Target()
	if tg.Arch() != hwi.ArchXArch || tg.Registry() != Registry() {
		t.Fatal("Target() does not describe xarch")
	}
	if got := tg.ResolveISA("X64", "Popcnt"); got != POPCNT_X64 {
		t.Errorf("ResolveISA(X64, Popcnt) = %s", registry.ISAName(got))
	}
	class, enclosing, ok := tg.ClassNames(SSE41_X64)
	if !ok || class != "X64" || enclosing != "Sse41" {
		t.Errorf("ClassNames(SSE41_X64) = %q, %q, %v", class, enclosing, ok)
	}
	if _, _, ok := tg.ClassNames(hwi.ISAIllegal); ok {
		t.Error("ClassNames(ISAIllegal) ok")
	}
}
