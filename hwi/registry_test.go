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

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

const toyISA ISA = 1

const (
	toyAdd Ins = iota + 1
	toyLoad
	toyShuf
)

const (
	toyAddID ID = iota + 1
	toyLoadID
	toyShuffleID
	toyBlendID
	toyWidenID
)

func allSlots(ins Ins) [NumElementTypes]Ins {
	var s [NumElementTypes]Ins
	for i := range s {
		s[i] = ins
	}
	return s
}

func toyDefinition() Definition {
	return Definition{
		Arch: ArchXArch,
		Intrinsics: []Info{
			{ID: toyAddID, Name: "Add", ISA: toyISA, Ival: NoIval, SimdSize: 16, NumArgs: 2,
				Ins: [NumElementTypes]Ins{8: toyAdd}, Category: CategorySimpleSIMD, Flags: FlagCommutative},
			{ID: toyLoadID, Name: "Load", ISA: toyISA, Ival: NoIval, SimdSize: 16, NumArgs: 1,
				Ins: allSlots(toyLoad), Category: CategoryMemoryLoad, Flags: FlagNoContainment},
			{ID: toyShuffleID, Name: "Shuffle", ISA: toyISA, Ival: NoIval, SimdSize: 16, NumArgs: VarArgs,
				Ins: [NumElementTypes]Ins{4: toyShuf, 5: toyShuf}, Category: CategoryIMM,
				Flags: FlagFullRangeIMM | FlagMaybeIMM | FlagUnfixedSIMDSize | FlagBaseTypeFromFirstArg},
			{ID: toyBlendID, Name: "Blend", ISA: toyISA, Ival: NoIval, SimdSize: 32, NumArgs: 3,
				Ins: allSlots(toyShuf), Category: CategoryIMM,
				Flags: FlagUnfixedSIMDSize | FlagBaseTypeFromSecondArg},
			{ID: toyWidenID, Name: "Widen", ISA: toyISA, Ival: 3, SimdSize: 16, NumArgs: 0,
				Ins: allSlots(toyAdd), Category: CategorySIMDScalar, Flags: FlagUnfixedSIMDSize},
		},
		ISANames:   []string{"ILLEGAL", "TOY"},
		InsNames:   []string{"invalid", "add", "load", "shuf"},
		BoundedImm: func(id ID) bool { return id == toyBlendID },
	}
}

func toyRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := Build(toyDefinition())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r
}

// catch runs f and returns the InternalError it raised, if any.
func catch(f func()) (err error) {
	defer Recover(&err)
	f()
	return nil
}

// TestBuild verifies the accessors of a valid registry.
func TestBuild(t *testing.T) {
	r := toyRegistry(t)

	if r.Arch() != ArchXArch {
		t.Errorf("Arch() = %s, want xarch", r.Arch())
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
	for in := range r.All() {
		if got := r.Lookup(in.ID).ID; got != in.ID {
			t.Errorf("Lookup(%d).ID = %d", in.ID, got)
		}
		if got := r.FindByName(in.ISA, in.Name); got != in.ID {
			t.Errorf("FindByName(%s) = %d, want %d", in.Name, got, in.ID)
		}
	}
	if got := r.FindByName(toyISA, "Subtract"); got != IllegalID {
		t.Errorf("FindByName(Subtract) = %d, want IllegalID", got)
	}

	want := toyDefinition().Intrinsics[0]
	if diff := cmp.Diff(want, r.Lookup(toyAddID)); diff != "" {
		t.Errorf("Lookup(Add) mismatch (-want +got):\n%s", diff)
	}

	if got := r.ISAName(toyISA); got != "TOY" {
		t.Errorf("ISAName = %q, want TOY", got)
	}
	if got := r.ISAName(9); got != "ILLEGAL" {
		t.Errorf("ISAName(9) = %q, want ILLEGAL", got)
	}
	if got := r.ParseISA("TOY"); got != toyISA {
		t.Errorf("ParseISA(TOY) = %d", got)
	}
	if got := r.InsName(toyShuf); got != "shuf" {
		t.Errorf("InsName = %q, want shuf", got)
	}
	if got := r.InsName(InsInvalid); got != "invalid" {
		t.Errorf("InsName(InsInvalid) = %q", got)
	}
	if diff := cmp.Diff([]ISA{toyISA}, r.ISAs()); diff != "" {
		t.Errorf("ISAs() mismatch (-want +got):\n%s", diff)
	}
}

// TestLookupReturnsCopy checks that callers cannot mutate the table.
func TestLookupReturnsCopy(t *testing.T) {
	r := toyRegistry(t)
	in := r.Lookup(toyAddID)
	in.Name = "Mutated"
	in.Ins[8] = InsInvalid
	if got := r.LookupName(toyAddID); got != "Add" {
		t.Errorf("LookupName after mutating a copy = %q", got)
	}
	if got := r.LookupIns(toyAddID, TypeFloat); got != toyAdd {
		t.Errorf("LookupIns after mutating a copy = %d", got)
	}
}

// TestProjections verifies every projection against the record.
func TestProjections(t *testing.T) {
	r := toyRegistry(t)
	for in := range r.All() {
		if r.LookupName(in.ID) != in.Name || r.LookupISA(in.ID) != in.ISA ||
			r.LookupIval(in.ID) != in.Ival || r.LookupSimdSize(in.ID) != in.SimdSize ||
			r.LookupNumArgs(in.ID) != in.NumArgs || r.LookupCategory(in.ID) != in.Category ||
			r.LookupFlags(in.ID) != in.Flags {
			t.Errorf("projection of %s disagrees with its record", in.Name)
		}
		for _, typ := range ElementTypes() {
			if got, want := r.LookupIns(in.ID, typ), in.InsFor(typ); got != want {
				t.Errorf("LookupIns(%s, %s) = %d, want %d", in.Name, typ, got, want)
			}
		}
	}
	if got := r.LookupIns(toyAddID, TypeInt); got != InsInvalid {
		t.Errorf("LookupIns(Add, int) = %d, want InsInvalid", got)
	}
}

// TestFlagPredicates checks the per-flag predicates, including the negated
// ones.
func TestFlagPredicates(t *testing.T) {
	r := toyRegistry(t)
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"IsCommutative(Add)", r.IsCommutative(toyAddID), true},
		{"IsCommutative(Load)", r.IsCommutative(toyLoadID), false},
		{"SupportsContainment(Add)", r.SupportsContainment(toyAddID), true},
		{"SupportsContainment(Load)", r.SupportsContainment(toyLoadID), false},
		{"HasFullRangeImm(Shuffle)", r.HasFullRangeImm(toyShuffleID), true},
		{"HasFullRangeImm(Blend)", r.HasFullRangeImm(toyBlendID), false},
		{"HasFixedSimdSize(Add)", r.HasFixedSimdSize(toyAddID), true},
		{"HasFixedSimdSize(Shuffle)", r.HasFixedSimdSize(toyShuffleID), false},
		{"MaybeImm(Shuffle)", r.MaybeImm(toyShuffleID), true},
		{"BaseTypeFromFirstArg(Shuffle)", r.BaseTypeFromFirstArg(toyShuffleID), true},
		{"BaseTypeFromSecondArg(Blend)", r.BaseTypeFromSecondArg(toyBlendID), true},
		{"RequiresCodegen(Add)", r.RequiresCodegen(toyAddID), true},
		{"IsFloatingPointUsed(Add)", r.IsFloatingPointUsed(toyAddID), true},
		{"GeneratesMultipleIns(Add)", r.GeneratesMultipleIns(toyAddID), false},
		{"CopiesUpperBits(Add)", r.CopiesUpperBits(toyAddID), false},
		{"NoJmpTableImm(Shuffle)", r.NoJmpTableImm(toyShuffleID), false},
		{"HasSpecialCodegen(Add)", r.HasSpecialCodegen(toyAddID), false},
		{"HasSpecialImport(Add)", r.HasSpecialImport(toyAddID), false},
		{"MaybeMemoryLoad(Add)", r.MaybeMemoryLoad(toyAddID), false},
		{"MaybeMemoryStore(Add)", r.MaybeMemoryStore(toyAddID), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

// TestBuildRejects checks that each broken invariant is reported.
func TestBuildRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Definition)
		want   string
	}{
		{"Empty", func(d *Definition) { d.Intrinsics = nil }, "no intrinsics"},
		{"IDGap", func(d *Definition) { d.Intrinsics[1].ID = 7 }, "has id 7, want 2"},
		{"EmptyName", func(d *Definition) { d.Intrinsics[0].Name = "" }, "empty name"},
		{"UnknownISA", func(d *Definition) { d.Intrinsics[0].ISA = 4 }, "unknown ISA"},
		{"IllegalISA", func(d *Definition) { d.Intrinsics[0].ISA = ISAIllegal }, "unknown ISA"},
		{"UnknownCategory", func(d *Definition) { d.Intrinsics[0].Category = 8 }, "unknown category"},
		{"UnknownFlag", func(d *Definition) { d.Intrinsics[0].Flags |= 0x4 }, "unknown flag bits"},
		{"UnknownIns", func(d *Definition) { d.Intrinsics[0].Ins[0] = 42 }, "unknown instruction"},
		{"ContainedLoad", func(d *Definition) { d.Intrinsics[1].Flags = FlagNone }, "must be NoContainment"},
		{"UnboundedImm", func(d *Definition) { d.Intrinsics[2].Flags &^= FlagFullRangeIMM }, "either full range or bounded"},
		{"BoundedFullRange", func(d *Definition) { d.Intrinsics[3].Flags |= FlagFullRangeIMM }, "either full range or bounded"},
		{"BothBaseTypes", func(d *Definition) { d.Intrinsics[0].Flags |= FlagBaseTypeFromFirstArg | FlagBaseTypeFromSecondArg }, "base type from both"},
		{"Duplicate", func(d *Definition) { d.Intrinsics[1].Name = "Add" }, "duplicate of id 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := toyDefinition()
			tt.mutate(&def)
			_, err := Build(def)
			if err == nil {
				t.Fatal("Build succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Build error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

// TestBuildJoinsErrors checks that all violations are reported at once.
func TestBuildJoinsErrors(t *testing.T) {
	def := toyDefinition()
	def.Intrinsics[0].Name = ""
	def.Intrinsics[1].Flags = FlagNone
	_, err := Build(def)
	if err == nil {
		t.Fatal("Build succeeded, want error")
	}
	for _, want := range []string{"empty name", "must be NoContainment"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Build error %q does not mention %q", err, want)
		}
	}
}

func TestMustBuildPanics(t *testing.T) {
	def := toyDefinition()
	def.Intrinsics = nil
	defer func() {
		if recover() == nil {
			t.Error("MustBuild did not panic")
		}
	}()
	MustBuild(def)
}

// TestFingerprint checks that the fingerprint is deterministic and covers
// every field.
func TestFingerprint(t *testing.T) {
	base := toyRegistry(t).Fingerprint()
	if again := toyRegistry(t).Fingerprint(); again != base {
		t.Fatalf("Fingerprint not deterministic: %#x vs %#x", base, again)
	}

	mutations := map[string]func(d *Definition){
		"Name":     func(d *Definition) { d.Intrinsics[0].Name = "Plus" },
		"Ival":     func(d *Definition) { d.Intrinsics[0].Ival = 2 },
		"SimdSize": func(d *Definition) { d.Intrinsics[0].SimdSize = 32 },
		"NumArgs":  func(d *Definition) { d.Intrinsics[0].NumArgs = 3 },
		"Ins":      func(d *Definition) { d.Intrinsics[0].Ins[9] = toyAdd },
		"Category": func(d *Definition) { d.Intrinsics[0].Category = CategorySpecial },
		"Flags":    func(d *Definition) { d.Intrinsics[0].Flags |= FlagMultiIns },
		"ISAName":  func(d *Definition) { d.ISANames[1] = "TOY2" },
		"Arch":     func(d *Definition) { d.Arch = ArchArm64 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			def := toyDefinition()
			mutate(&def)
			r, err := Build(def)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if r.Fingerprint() == base {
				t.Errorf("changing %s kept fingerprint %#x", name, base)
			}
		})
	}
}

// TestBuildCopiesDefinition checks that the definition handed to Build can
// be reused without changing the records that were validated.
func TestBuildCopiesDefinition(t *testing.T) {
	def := toyDefinition()
	r, err := Build(def)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := r.Fingerprint()

	def.Intrinsics[0].Flags &^= FlagCommutative
	def.Intrinsics[1].Flags &^= FlagNoContainment
	def.Intrinsics[1].Category = CategorySimpleSIMD
	def.Intrinsics[2].Name = "Permute"
	def.ISANames[1] = "TOY2"
	def.InsNames[1] = "sub"

	if !r.IsCommutative(toyAddID) {
		t.Error("IsCommutative(Add) changed with the definition")
	}
	if r.SupportsContainment(toyLoadID) {
		t.Error("SupportsContainment(Load) changed with the definition")
	}
	if got := r.LookupCategory(toyLoadID); got != CategoryMemoryLoad {
		t.Errorf("LookupCategory(Load) = %s, want %s", got, CategoryMemoryLoad)
	}
	if got := r.FindByName(toyISA, "Shuffle"); got != toyShuffleID {
		t.Errorf("FindByName(Shuffle) = %d, want %d", got, toyShuffleID)
	}
	if got := r.ISAName(toyISA); got != "TOY" {
		t.Errorf("ISAName = %q, want TOY", got)
	}
	if got := r.InsName(toyAdd); got != "add" {
		t.Errorf("InsName = %q, want add", got)
	}
	if got := r.Fingerprint(); got != want {
		t.Errorf("Fingerprint changed from %#x to %#x", want, got)
	}
}

// TestFatalLookups checks that ids outside the registry and types outside
// the element range stop compilation instead of returning a default.
func TestFatalLookups(t *testing.T) {
	r := toyRegistry(t)
	tests := []struct {
		name string
		op   string
		f    func()
	}{
		{"IllegalID", "Lookup", func() { r.Lookup(IllegalID) }},
		{"PastEnd", "Lookup", func() { r.Lookup(ID(r.Len() + 1)) }},
		{"Pseudo", "LookupName", func() { r.LookupName(IsSupportedTrue) }},
		{"Predicate", "IsCommutative", func() { r.IsCommutative(ThrowPlatformNotSupported) }},
		{"VoidType", "LookupIns", func() { r.LookupIns(toyAddID, TypeVoid) }},
		{"StructType", "LookupIns", func() { r.LookupIns(toyAddID, TypeStruct) }},
		{"UnknownType", "LookupIns", func() { r.LookupIns(toyAddID, TypeUnknown) }},
		{"BoolType", "LookupIns", func() { r.LookupIns(toyAddID, TypeBool) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catch(tt.f)
			var ie *InternalError
			if !errors.As(err, &ie) {
				t.Fatalf("got %v, want an *InternalError", err)
			}
			if ie.Op != tt.op {
				t.Errorf("Op = %q, want %q", ie.Op, tt.op)
			}
		})
	}
}

// TestRecoverRepanics checks that foreign panics are not swallowed.
func TestRecoverRepanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	_ = catch(func() { panic("boom") })
	t.Error("catch returned")
}

func TestInternalErrorMessage(t *testing.T) {
	tests := []struct {
		err  *InternalError
		want string
	}{
		{&InternalError{Op: "Lookup", ID: 7, Detail: "not a xarch hardware intrinsic"}, "hwi: Lookup: not a xarch hardware intrinsic (id 7)"},
		{&InternalError{Op: "SwappedComparison", Detail: "out of range"}, "hwi: SwappedComparison: out of range"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

// TestConcurrentReads runs lookups from many goroutines; run with -race.
func TestConcurrentReads(t *testing.T) {
	r := toyRegistry(t)
	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 1000 {
				for in := range r.All() {
					if r.Lookup(in.ID).Name != in.Name || !r.Valid(in.ID) {
						return errors.New("inconsistent read")
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
