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
	"strings"
	"testing"
)

func TestElementTypes(t *testing.T) {
	types := ElementTypes()
	if len(types) != NumElementTypes || NumElementTypes != 10 {
		t.Fatalf("got %d element types, want 10", len(types))
	}
	if types[0] != TypeByte || types[9] != TypeDouble {
		t.Errorf("element range = [%s, %s], want [byte, double]", types[0], types[9])
	}
	for _, typ := range []VarType{TypeUndef, TypeVoid, TypeBool, TypeRef, TypeStruct, TypeSIMD16, TypeUnknown} {
		if typ.IsElementType() {
			t.Errorf("%s.IsElementType() = true", typ)
		}
	}
}

func TestActualType(t *testing.T) {
	tests := []struct {
		in, want VarType
	}{
		{TypeBool, TypeInt},
		{TypeByte, TypeInt},
		{TypeUByte, TypeInt},
		{TypeShort, TypeInt},
		{TypeUShort, TypeInt},
		{TypeUInt, TypeInt},
		{TypeULong, TypeLong},
		{TypeFloat, TypeFloat},
		{TypeStruct, TypeStruct},
	}
	for _, tt := range tests {
		if got := ActualType(tt.in); got != tt.want {
			t.Errorf("ActualType(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 8 {
		t.Fatalf("got %d categories, want 8", len(cats))
	}
	for _, c := range cats {
		got, ok := ParseCategory(c.String())
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c, got, ok)
		}
	}
	if Category(8).Valid() {
		t.Error("Category(8).Valid() = true")
	}
}

func TestFlagString(t *testing.T) {
	tests := []struct {
		flags Flag
		rmw   string
		want  string
	}{
		{FlagNone, "", "None"},
		{FlagCommutative | FlagNoContainment, "", "Commutative|NoContainment"},
		{FlagArchRMW | FlagFullRangeIMM, "", "FullRangeIMM|ArchRMW"},
		{FlagArchRMW, "NoRMWSemantics", "NoRMWSemantics"},
	}
	for _, tt := range tests {
		got := tt.flags.String()
		if tt.rmw != "" {
			got = strings.Join(tt.flags.Names(tt.rmw), "|")
		}
		if got != tt.want {
			t.Errorf("flags %#x = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}

func TestParseArch(t *testing.T) {
	tests := []struct {
		in   string
		want Arch
	}{
		{"xarch", ArchXArch},
		{"amd64", ArchXArch},
		{" X86_64 ", ArchXArch},
		{"arm64", ArchArm64},
		{"aarch64", ArchArm64},
	}
	for _, tt := range tests {
		got, err := ParseArch(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseArch(%q) = %s, %v, want %s", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseArch("riscv64"); err == nil {
		t.Error("ParseArch(riscv64) succeeded")
	}
}
