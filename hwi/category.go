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

// Category fixes the generic lowering strategy of an intrinsic.
//
// The set is closed: code generators switch over it to pick a lowering
// template, so adding a value breaks every consumer.
type Category uint8

const (
	// CategorySimpleSIMD takes and returns vectors; the instruction is
	// determined by the ID and the base type of the returned vector.
	CategorySimpleSIMD Category = iota

	// CategoryIMM needs an immediate operand (imm8 on x86) to select the
	// instruction.
	CategoryIMM

	// CategoryScalar operates on general purpose registers (crc32, lzcnt,
	// popcnt, ...).
	CategoryScalar

	// CategorySIMDScalar operates on vector registers but only computes the
	// first element.
	CategorySIMDScalar

	// CategoryMemoryLoad and CategoryMemoryStore have explicit memory
	// semantics, such as Sse.LoadAligned or Avx.Store.
	CategoryMemoryLoad
	CategoryMemoryStore

	// CategoryHelper does not correspond directly to an instruction, such as
	// Vector256.Create.
	CategoryHelper

	// CategorySpecial has to be handled outside the table.
	CategorySpecial

	numCategories
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case CategorySimpleSIMD:
		return "SimpleSIMD"
	case CategoryIMM:
		return "IMM"
	case CategoryScalar:
		return "Scalar"
	case CategorySIMDScalar:
		return "SIMDScalar"
	case CategoryMemoryLoad:
		return "MemoryLoad"
	case CategoryMemoryStore:
		return "MemoryStore"
	case CategoryHelper:
		return "Helper"
	case CategorySpecial:
		return "Special"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the eight categories.
func (c Category) Valid() bool {
	return c < numCategories
}

// Categories returns every category in declaration order.
func Categories() []Category {
	cats := make([]Category, 0, numCategories)
	for c := CategorySimpleSIMD; c < numCategories; c++ {
		cats = append(cats, c)
	}
	return cats
}

// ParseCategory is the inverse of [Category.String].
func ParseCategory(s string) (Category, bool) {
	for c := CategorySimpleSIMD; c < numCategories; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
