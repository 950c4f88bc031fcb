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

// Instruction sets. The X64 variants hold the members of the nested X64
// classes, which exist only in 64-bit processes.
const (
	AES hwi.ISA = iota + 1
	AVX
	AVX2
	AVX512F
	BMI1
	BMI1_X64
	BMI2
	BMI2_X64
	FMA
	LZCNT
	LZCNT_X64
	PCLMULQDQ
	POPCNT
	POPCNT_X64
	SSE
	SSE_X64
	SSE2
	SSE2_X64
	SSE3
	SSSE3
	SSE41
	SSE41_X64
	SSE42
	SSE42_X64
	Vector128
	Vector256

	numISAs = iota + 1
)

var isaNames = [numISAs]string{
	hwi.ISAIllegal: "ILLEGAL",
	AES:            "AES",
	AVX:            "AVX",
	AVX2:           "AVX2",
	AVX512F:        "AVX512F",
	BMI1:           "BMI1",
	BMI1_X64:       "BMI1_X64",
	BMI2:           "BMI2",
	BMI2_X64:       "BMI2_X64",
	FMA:            "FMA",
	LZCNT:          "LZCNT",
	LZCNT_X64:      "LZCNT_X64",
	PCLMULQDQ:      "PCLMULQDQ",
	POPCNT:         "POPCNT",
	POPCNT_X64:     "POPCNT_X64",
	SSE:            "SSE",
	SSE_X64:        "SSE_X64",
	SSE2:           "SSE2",
	SSE2_X64:       "SSE2_X64",
	SSE3:           "SSE3",
	SSSE3:          "SSSE3",
	SSE41:          "SSE41",
	SSE41_X64:      "SSE41_X64",
	SSE42:          "SSE42",
	SSE42_X64:      "SSE42_X64",
	Vector128:      "Vector128",
	Vector256:      "Vector256",
}

// x64Class is the name of the nested class holding 64-bit only members.
const x64Class = "X64"

// classISAs maps top-level class names to their ISA.
var classISAs = map[string]hwi.ISA{
	"Aes":       AES,
	"Avx":       AVX,
	"Avx2":      AVX2,
	"Avx512F":   AVX512F,
	"Bmi1":      BMI1,
	"Bmi2":      BMI2,
	"Fma":       FMA,
	"Lzcnt":     LZCNT,
	"Pclmulqdq": PCLMULQDQ,
	"Popcnt":    POPCNT,
	"Sse":       SSE,
	"Sse2":      SSE2,
	"Sse3":      SSE3,
	"Ssse3":     SSSE3,
	"Sse41":     SSE41,
	"Sse42":     SSE42,
	"Vector128": Vector128,
	"Vector256": Vector256,
}

// x64ISAs maps the enclosing class of a nested X64 class to the X64 ISA.
var x64ISAs = map[string]hwi.ISA{
	"Bmi1":   BMI1_X64,
	"Bmi2":   BMI2_X64,
	"Lzcnt":  LZCNT_X64,
	"Popcnt": POPCNT_X64,
	"Sse":    SSE_X64,
	"Sse2":   SSE2_X64,
	"Sse41":  SSE41_X64,
	"Sse42":  SSE42_X64,
}

// ResolveISA classifies a class name, looking at the enclosing class for
// nested X64 classes. Unknown names yield ISAIllegal.
func ResolveISA(className, enclosingClassName string) hwi.ISA {
	if enclosingClassName != "" {
		if className != x64Class {
			return hwi.ISAIllegal
		}
		return x64ISAs[enclosingClassName]
	}
	return classISAs[className]
}

// ClassNames returns the class that exposes isa. X64 ISAs report the nested
// class and its enclosing class.
func ClassNames(isa hwi.ISA) (className, enclosingClassName string, ok bool) {
	for enclosing, x := range x64ISAs {
		if x == isa {
			return x64Class, enclosing, true
		}
	}
	for name, i := range classISAs {
		if i == isa {
			return name, "", true
		}
	}
	return "", "", false
}

// IsFullyImplementedISA reports whether every member of isa is in the table.
// AVX512F is recognized so that its IsSupported answers false, but none of
// its members are.
func IsFullyImplementedISA(isa hwi.ISA) bool {
	switch isa {
	case AES, AVX, AVX2, BMI1, BMI1_X64, BMI2, BMI2_X64, FMA, LZCNT, LZCNT_X64,
		PCLMULQDQ, POPCNT, POPCNT_X64, SSE, SSE_X64, SSE2, SSE2_X64, SSE3, SSSE3,
		SSE41, SSE41_X64, SSE42, SSE42_X64, Vector128, Vector256:
		return true
	default:
		return false
	}
}

// IsScalarISA reports whether isa operates on general purpose registers
// only.
func IsScalarISA(isa hwi.ISA) bool {
	switch isa {
	case BMI1, BMI1_X64, BMI2, BMI2_X64, LZCNT, LZCNT_X64, POPCNT, POPCNT_X64:
		return true
	default:
		return false
	}
}

// isVectorHelper reports whether isa is one of the cross-platform Vector
// helper classes, which are gated on baseline SIMD support instead of their
// own ISA.
func isVectorHelper(isa hwi.ISA) bool {
	return isa == Vector128 || isa == Vector256
}
