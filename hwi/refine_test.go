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
	"testing"
)

const (
	vec128Float ClassHandle = iota + 1
	vec256Float
	vec256Int
	notAVector
)

type fakeTypes map[ClassHandle]struct {
	base VarType
	size int
}

func (f fakeTypes) SIMDTypeInfo(cls ClassHandle) (VarType, int) {
	info, ok := f[cls]
	if !ok {
		return TypeUnknown, 0
	}
	return info.base, info.size
}

var simdTypes = fakeTypes{
	vec128Float: {TypeFloat, 16},
	vec256Float: {TypeFloat, 32},
	vec256Int:   {TypeInt, 32},
}

type operand VarType

func (o operand) Type() VarType { return VarType(o) }

type node struct {
	id  ID
	ops []Operand
}

func (n node) IntrinsicID() ID     { return n.id }
func (n node) Operands() []Operand { return n.ops }

func ops(ts ...VarType) []Operand {
	out := make([]Operand, len(ts))
	for i, t := range ts {
		out[i] = operand(t)
	}
	return out
}

// TestResolveSIMDSize checks that polymorphic intrinsics take their width
// from the call site and fixed ones keep the table value.
func TestResolveSIMDSize(t *testing.T) {
	r := toyRegistry(t)
	tests := []struct {
		name string
		id   ID
		sig  Signature
		want int
	}{
		{"FixedIgnoresSignature", toyAddID, Signature{RetType: TypeStruct, RetClass: vec256Float}, 16},
		{"ReturnClass256", toyShuffleID, Signature{RetType: TypeStruct, RetClass: vec256Float}, 32},
		{"ReturnClass128", toyShuffleID, Signature{RetType: TypeStruct, RetClass: vec128Float}, 16},
		{"FirstArg", toyShuffleID, Signature{RetType: TypeInt, ArgClasses: []ClassHandle{vec256Int}}, 32},
		{"SecondArg", toyBlendID, Signature{RetType: TypeVoid, ArgClasses: []ClassHandle{notAVector, vec128Float}}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ResolveSIMDSize(simdTypes, tt.id, &tt.sig); got != tt.want {
				t.Errorf("ResolveSIMDSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveSIMDSizeFatal(t *testing.T) {
	r := toyRegistry(t)
	tests := []struct {
		name string
		id   ID
		sig  Signature
	}{
		{"NoRule", toyWidenID, Signature{RetType: TypeVoid}},
		{"NotAVector", toyShuffleID, Signature{RetType: TypeStruct, RetClass: notAVector}},
		{"MissingFirstArg", toyShuffleID, Signature{RetType: TypeInt}},
		{"MissingSecondArg", toyBlendID, Signature{RetType: TypeVoid, ArgClasses: []ClassHandle{vec128Float}}},
		{"UnknownID", 99, Signature{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catch(func() { r.ResolveSIMDSize(simdTypes, tt.id, &tt.sig) })
			var ie *InternalError
			if !errors.As(err, &ie) {
				t.Fatalf("got %v, want an *InternalError", err)
			}
		})
	}

	err := catch(func() { r.ResolveSIMDSize(simdTypes, toyShuffleID, nil) })
	var ie *InternalError
	if !errors.As(err, &ie) || ie.ID != toyShuffleID {
		t.Errorf("nil signature: got %v, want an *InternalError for Shuffle", err)
	}
	if got := r.ResolveSIMDSize(simdTypes, toyAddID, nil); got != 16 {
		t.Errorf("ResolveSIMDSize(Add, nil) = %d, want 16", got)
	}
}

func TestNumArgsAndLastOp(t *testing.T) {
	r := toyRegistry(t)

	shuffle := node{toyShuffleID, ops(TypeStruct, TypeStruct, TypeInt)}
	if got := r.NumArgs(shuffle); got != 3 {
		t.Errorf("NumArgs(variable arity) = %d, want 3", got)
	}
	if got := r.LastOp(shuffle); got.Type() != TypeInt {
		t.Errorf("LastOp(Shuffle).Type() = %s, want int", got.Type())
	}

	add := node{toyAddID, ops(TypeStruct, TypeFloat)}
	if got := r.NumArgs(add); got != 2 {
		t.Errorf("NumArgs(Add) = %d, want 2", got)
	}
	if got := r.LastOp(add); got.Type() != TypeFloat {
		t.Errorf("LastOp(Add).Type() = %s, want float", got.Type())
	}

	if got := r.LastOp(node{toyWidenID, nil}); got != nil {
		t.Errorf("LastOp of a nullary intrinsic = %v, want nil", got)
	}

	err := catch(func() { r.LastOp(node{toyAddID, ops(TypeStruct)}) })
	var ie *InternalError
	if !errors.As(err, &ie) || ie.Op != "LastOp" {
		t.Errorf("LastOp with a missing operand: got %v, want a LastOp InternalError", err)
	}
}

// TestIsImmOp covers intrinsics with and without vector overloads.
func TestIsImmOp(t *testing.T) {
	r := toyRegistry(t)
	tests := []struct {
		name string
		id   ID
		typ  VarType
		want bool
	}{
		{"NotIMM", toyAddID, TypeInt, false},
		{"AlwaysIMM", toyBlendID, TypeStruct, true},
		{"MaybeIMMInt", toyShuffleID, TypeInt, true},
		{"MaybeIMMUByte", toyShuffleID, TypeUByte, true},
		{"MaybeIMMVector", toyShuffleID, TypeStruct, false},
		{"MaybeIMMLong", toyShuffleID, TypeLong, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsImmOp(tt.id, operand(tt.typ)); got != tt.want {
				t.Errorf("IsImmOp(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestIsImmOperand(t *testing.T) {
	r := toyRegistry(t)
	n := node{toyShuffleID, ops(TypeStruct, TypeStruct, TypeInt)}
	for pos, want := range []bool{false, false, true} {
		if got := r.IsImmOperand(n, pos); got != want {
			t.Errorf("IsImmOperand(pos %d) = %v, want %v", pos, got, want)
		}
	}
	if r.IsImmOperand(n, 3) || r.IsImmOperand(n, -1) {
		t.Error("IsImmOperand accepted a position past the operands")
	}
	vec := node{toyShuffleID, ops(TypeStruct, TypeStruct)}
	if r.IsImmOperand(vec, 1) {
		t.Error("IsImmOperand accepted the vector overload's control vector")
	}
}
