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

package target

import (
	"slices"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

// Support implements [hwi.ISASupport] over a fixed set of ISAs. It is
// immutable; the With and Without methods return copies.
type Support struct {
	arch     hwi.Arch
	isas     map[hwi.ISA]bool
	exact    map[hwi.ISA]bool
	baseline bool
}

var _ hwi.ISASupport = (*Support)(nil)

// NewSupport returns a context that may use supported, depends exactly on
// exact (which must be a subset of supported) and reports baseline SIMD
// support as given.
func NewSupport(arch hwi.Arch, supported, exact []hwi.ISA, baselineSIMD bool) *Support {
	s := &Support{
		arch:     arch,
		isas:     make(map[hwi.ISA]bool, len(supported)),
		exact:    make(map[hwi.ISA]bool, len(exact)),
		baseline: baselineSIMD,
	}
	for _, isa := range supported {
		s.isas[isa] = true
	}
	for _, isa := range exact {
		if s.isas[isa] {
			s.exact[isa] = true
		}
	}
	return s
}

// AllSupported returns a context that may use every fully implemented ISA
// of t and depends exactly on none of them. It is what a cross-compiling
// tool uses when no host can be asked.
func AllSupported(t hwi.Target) *Support {
	var isas []hwi.ISA
	for _, isa := range t.Registry().ISAs() {
		if t.IsFullyImplementedISA(isa) {
			isas = append(isas, isa)
		}
	}
	return NewSupport(t.Arch(), isas, nil, true)
}

// Arch returns the family the context belongs to.
func (s *Support) Arch() hwi.Arch { return s.arch }

// Supports reports whether code may use isa.
func (s *Support) Supports(isa hwi.ISA) bool { return s.isas[isa] }

// ExactlyDependsOn reports whether generated code may assume isa is present.
func (s *Support) ExactlyDependsOn(isa hwi.ISA) bool { return s.exact[isa] }

// BaselineSIMDSupported reports whether the Vector helper classes are usable.
func (s *Support) BaselineSIMDSupported() bool { return s.baseline }

// ISAs returns the supported ISAs in ascending order.
func (s *Support) ISAs() []hwi.ISA {
	isas := make([]hwi.ISA, 0, len(s.isas))
	for isa := range s.isas {
		isas = append(isas, isa)
	}
	slices.Sort(isas)
	return isas
}

// Without returns a copy of s that may not use isas.
func (s *Support) Without(isas ...hwi.ISA) *Support {
	supported := slices.DeleteFunc(s.ISAs(), func(isa hwi.ISA) bool {
		return slices.Contains(isas, isa)
	})
	exact := make([]hwi.ISA, 0, len(s.exact))
	for isa := range s.exact {
		exact = append(exact, isa)
	}
	return NewSupport(s.arch, supported, exact, s.baseline)
}

// DetectHost returns what the running CPU supports, in the numbering of the
// native family. A host of another family, or one x/sys/cpu cannot inspect,
// supports nothing.
func DetectHost() *Support {
	if hostArch != Native().Arch() {
		return NewSupport(Native().Arch(), nil, nil, false)
	}
	supported, exact, baseline := detectHost()
	return NewSupport(hostArch, supported, exact, baseline)
}
