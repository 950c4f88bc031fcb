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

// Instruction sets. The Arm64 variants hold the members of the nested Arm64
// classes, which exist only in 64-bit processes.
const (
	AdvSimd hwi.ISA = iota + 1
	AdvSimd_Arm64
	Aes
	ArmBase
	ArmBase_Arm64
	Crc32
	Crc32_Arm64
	Dp
	Rdm
	Sha1
	Sha256
	Sve
	Vector64
	Vector128

	numISAs = iota + 1
)

var isaNames = [numISAs]string{
	hwi.ISAIllegal: "ILLEGAL",
	AdvSimd:        "AdvSimd",
	AdvSimd_Arm64:  "AdvSimd_Arm64",
	Aes:            "Aes",
	ArmBase:        "ArmBase",
	ArmBase_Arm64:  "ArmBase_Arm64",
	Crc32:          "Crc32",
	Crc32_Arm64:    "Crc32_Arm64",
	Dp:             "Dp",
	Rdm:            "Rdm",
	Sha1:           "Sha1",
	Sha256:         "Sha256",
	Sve:            "Sve",
	Vector64:       "Vector64",
	Vector128:      "Vector128",
}

const arm64Class = "Arm64"

var classISAs = map[string]hwi.ISA{
	"AdvSimd":   AdvSimd,
	"Aes":       Aes,
	"ArmBase":   ArmBase,
	"Crc32":     Crc32,
	"Dp":        Dp,
	"Rdm":       Rdm,
	"Sha1":      Sha1,
	"Sha256":    Sha256,
	"Sve":       Sve,
	"Vector64":  Vector64,
	"Vector128": Vector128,
}

var arm64ISAs = map[string]hwi.ISA{
	"AdvSimd": AdvSimd_Arm64,
	"ArmBase": ArmBase_Arm64,
	"Crc32":   Crc32_Arm64,
}

// ResolveISA classifies a class name; a class named Arm64 is classified by
// its enclosing class. Unknown names yield ISAIllegal.
func ResolveISA(className, enclosingClassName string) hwi.ISA {
	if enclosingClassName != "" {
		if className != arm64Class {
			return hwi.ISAIllegal
		}
		return arm64ISAs[enclosingClassName]
	}
	return classISAs[className]
}

// ClassNames returns the class that exposes isa.
func ClassNames(isa hwi.ISA) (className, enclosingClassName string, ok bool) {
	for enclosing, a := range arm64ISAs {
		if a == isa {
			return arm64Class, enclosing, true
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
// Sve is only recognized.
func IsFullyImplementedISA(isa hwi.ISA) bool {
	return isa != hwi.ISAIllegal && isa < numISAs && isa != Sve
}

// IsScalarISA reports whether isa works on general purpose registers only.
func IsScalarISA(isa hwi.ISA) bool {
	switch isa {
	case ArmBase, ArmBase_Arm64, Crc32, Crc32_Arm64:
		return true
	default:
		return false
	}
}

func isVectorHelper(isa hwi.ISA) bool {
	return isa == Vector64 || isa == Vector128
}
