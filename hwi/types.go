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

// VarType is the compiler's notion of a value type.
//
// The order matters: TypeByte through TypeDouble is the contiguous element
// type range indexed by [Info.Ins]. Callers map their own type representation
// onto this ordinal range before asking for an instruction.
type VarType uint8

const (
	TypeUndef VarType = iota
	TypeVoid
	TypeBool

	// Element types. Keep contiguous.
	TypeByte
	TypeUByte
	TypeShort
	TypeUShort
	TypeInt
	TypeUInt
	TypeLong
	TypeULong
	TypeFloat
	TypeDouble

	TypeRef
	TypeByRef
	TypeStruct
	TypeSIMD8
	TypeSIMD16
	TypeSIMD32
	TypeUnknown
)

// NumElementTypes is the number of instruction slots in an [Info] record.
const NumElementTypes = int(TypeDouble-TypeByte) + 1

var varTypeNames = [...]string{
	TypeUndef:   "undef",
	TypeVoid:    "void",
	TypeBool:    "bool",
	TypeByte:    "byte",
	TypeUByte:   "ubyte",
	TypeShort:   "short",
	TypeUShort:  "ushort",
	TypeInt:     "int",
	TypeUInt:    "uint",
	TypeLong:    "long",
	TypeULong:   "ulong",
	TypeFloat:   "float",
	TypeDouble:  "double",
	TypeRef:     "ref",
	TypeByRef:   "byref",
	TypeStruct:  "struct",
	TypeSIMD8:   "simd8",
	TypeSIMD16:  "simd16",
	TypeSIMD32:  "simd32",
	TypeUnknown: "unknown",
}

// String returns the short lowercase name of the type.
func (t VarType) String() string {
	if int(t) < len(varTypeNames) {
		return varTypeNames[t]
	}
	return "unknown"
}

// IsElementType reports whether t lies in the instruction-selector range.
func (t VarType) IsElementType() bool {
	return t >= TypeByte && t <= TypeDouble
}

// IsFloating reports whether t is float or double.
func (t VarType) IsFloating() bool {
	return t == TypeFloat || t == TypeDouble
}

// Size returns the size in bytes of an element type, or 0 for anything else.
func (t VarType) Size() int {
	switch t {
	case TypeBool, TypeByte, TypeUByte:
		return 1
	case TypeShort, TypeUShort:
		return 2
	case TypeInt, TypeUInt, TypeFloat:
		return 4
	case TypeLong, TypeULong, TypeDouble:
		return 8
	default:
		return 0
	}
}

// ActualType returns the type a value of type t has once loaded into a
// register: small integers widen to TypeInt and unsigned types fold into
// their signed counterpart.
func ActualType(t VarType) VarType {
	switch t {
	case TypeBool, TypeByte, TypeUByte, TypeShort, TypeUShort, TypeInt, TypeUInt:
		return TypeInt
	case TypeLong, TypeULong:
		return TypeLong
	default:
		return t
	}
}

// ElementTypes returns the instruction-selector types in slot order.
func ElementTypes() []VarType {
	types := make([]VarType, 0, NumElementTypes)
	for t := TypeByte; t <= TypeDouble; t++ {
		types = append(types, t)
	}
	return types
}
