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
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Definition is what an architecture package supplies to build its
// [Registry].
type Definition struct {
	Arch Arch

	// Intrinsics must be ordered by ID, starting at 1 with no gaps.
	Intrinsics []Info

	// ISANames and InsNames are indexed by ISA and Ins. Index 0 names
	// ISAIllegal and InsInvalid.
	ISANames []string
	InsNames []string

	// BoundedImm reports IMM intrinsics whose legal immediates are narrower
	// than a byte. Every other IMM intrinsic must carry FlagFullRangeIMM.
	BoundedImm func(ID) bool
}

type nameKey struct {
	isa  ISA
	name string
}

// Registry is the single source of truth for the intrinsics of one
// architecture family. It is immutable after [Build] returns and safe for
// concurrent use.
type Registry struct {
	arch        Arch
	infos       []Info
	isaNames    []string
	insNames    []string
	byName      map[nameKey]ID
	fingerprint uint64
}

// Build validates def and returns its registry. The registry keeps copies
// of the slices in def, so later changes to them do not reach it.
func Build(def Definition) (*Registry, error) {
	r := &Registry{
		arch:     def.Arch,
		infos:    slices.Clone(def.Intrinsics),
		isaNames: slices.Clone(def.ISANames),
		insNames: slices.Clone(def.InsNames),
		byName:   make(map[nameKey]ID, len(def.Intrinsics)),
	}
	if err := r.validate(def.BoundedImm); err != nil {
		return nil, fmt.Errorf("%s intrinsic table: %w", def.Arch, err)
	}
	r.fingerprint = r.computeFingerprint()
	return r, nil
}

// MustBuild is like [Build] but panics if the table is inconsistent. It is
// meant for package-level registry variables.
func MustBuild(def Definition) *Registry {
	r, err := Build(def)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) validate(boundedImm func(ID) bool) error {
	var errs []error
	if len(r.infos) == 0 {
		return errors.New("no intrinsics")
	}
	if len(r.infos) >= int(IsSupportedFalse) {
		return fmt.Errorf("%d intrinsics overlap the pseudo ID range", len(r.infos))
	}
	for i := range r.infos {
		in := &r.infos[i]
		want := ID(i + 1)
		if in.ID != want {
			errs = append(errs, fmt.Errorf("entry %d (%s) has id %d, want %d", i, in.Name, in.ID, want))
			continue
		}
		if in.Name == "" {
			errs = append(errs, fmt.Errorf("id %d: empty name", in.ID))
		}
		if in.ISA == ISAIllegal || int(in.ISA) >= len(r.isaNames) {
			errs = append(errs, fmt.Errorf("%s: unknown ISA %d", in.Name, in.ISA))
		}
		if !in.Category.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown category %d", in.Name, in.Category))
		}
		if in.Flags&^flagAll != 0 {
			errs = append(errs, fmt.Errorf("%s: unknown flag bits %#x", in.Name, uint32(in.Flags&^flagAll)))
		}
		for slot, ins := range in.Ins {
			if int(ins) >= len(r.insNames) {
				errs = append(errs, fmt.Errorf("%s: %s slot holds unknown instruction %d", in.Name, TypeByte+VarType(slot), ins))
			}
		}
		switch in.Category {
		case CategoryMemoryLoad, CategoryMemoryStore:
			if in.SupportsContainment() {
				errs = append(errs, fmt.Errorf("%s: %s intrinsic must be NoContainment", in.Name, in.Category))
			}
		case CategoryIMM:
			bounded := boundedImm != nil && boundedImm(in.ID)
			if bounded == in.HasFullRangeImm() {
				errs = append(errs, fmt.Errorf("%s: IMM intrinsic must be either full range or bounded", in.Name))
			}
		}
		if in.BaseTypeFromFirstArg() && in.BaseTypeFromSecondArg() {
			errs = append(errs, fmt.Errorf("%s: base type from both first and second argument", in.Name))
		}
		key := nameKey{in.ISA, in.Name}
		if prev, dup := r.byName[key]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate of id %d in the same ISA", in.Name, prev))
			continue
		}
		r.byName[key] = in.ID
	}
	return errors.Join(errs...)
}

// computeFingerprint hashes the canonical encoding of every record.
func (r *Registry) computeFingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(r.arch.String())
	buf := make([]byte, 0, 64)
	for i := range r.infos {
		in := &r.infos[i]
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint16(buf, uint16(in.ID))
		buf = append(buf, byte(in.ISA))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(in.Ival)))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(in.SimdSize))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(in.NumArgs)))
		for _, ins := range in.Ins {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(ins))
		}
		buf = append(buf, byte(in.Category))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(in.Flags))
		_, _ = d.Write(buf)
		_, _ = d.WriteString(in.Name)
		_, _ = d.WriteString(r.ISAName(in.ISA))
	}
	return d.Sum64()
}

// Arch returns the architecture family of the registry.
func (r *Registry) Arch() Arch { return r.arch }

// Len returns the number of intrinsics. Valid IDs are 1..Len().
func (r *Registry) Len() int { return len(r.infos) }

// Fingerprint returns a hash of the table contents. It changes whenever any
// record changes, so it can key artifacts compiled against this table.
func (r *Registry) Fingerprint() uint64 { return r.fingerprint }

// Valid reports whether id has a record.
func (r *Registry) Valid(id ID) bool {
	return id != IllegalID && int(id) <= len(r.infos)
}

// Lookup returns the record of id. It panics with an [*InternalError] for
// IllegalID, pseudo IDs and anything else outside the registry.
func (r *Registry) Lookup(id ID) Info {
	return *r.lookup("Lookup", id)
}

func (r *Registry) lookup(op string, id ID) *Info {
	if !r.Valid(id) {
		Fatalf(op, id, "not a %s hardware intrinsic", r.arch)
	}
	return &r.infos[id-1]
}

// All iterates the records in ID order.
func (r *Registry) All() iter.Seq[Info] {
	return func(yield func(Info) bool) {
		for i := range r.infos {
			if !yield(r.infos[i]) {
				return
			}
		}
	}
}

// FindByName returns the intrinsic named name in isa, or IllegalID.
func (r *Registry) FindByName(isa ISA, name string) ID {
	return r.byName[nameKey{isa, name}]
}

// ISAName returns the name of isa, "ILLEGAL" for unknown values.
func (r *Registry) ISAName(isa ISA) string {
	if isa == ISAIllegal || int(isa) >= len(r.isaNames) {
		return "ILLEGAL"
	}
	return r.isaNames[isa]
}

// ISAs returns every ISA of the family, in declaration order.
func (r *Registry) ISAs() []ISA {
	isas := make([]ISA, 0, len(r.isaNames))
	for i := 1; i < len(r.isaNames); i++ {
		isas = append(isas, ISA(i))
	}
	return isas
}

// ParseISA is the inverse of [Registry.ISAName].
func (r *Registry) ParseISA(name string) ISA {
	for i := 1; i < len(r.isaNames); i++ {
		if r.isaNames[i] == name {
			return ISA(i)
		}
	}
	return ISAIllegal
}

// InsName returns the mnemonic of ins, "invalid" for InsInvalid.
func (r *Registry) InsName(ins Ins) string {
	if ins == InsInvalid || int(ins) >= len(r.insNames) {
		return "invalid"
	}
	return r.insNames[ins]
}

// Projections of Lookup. Each is fatal for ids outside the registry.

// LookupName returns the method name of id.
func (r *Registry) LookupName(id ID) string { return r.lookup("LookupName", id).Name }

// LookupISA returns the ISA that owns id.
func (r *Registry) LookupISA(id ID) ISA { return r.lookup("LookupISA", id).ISA }

// LookupIval returns the fixed immediate of id, or NoIval.
func (r *Registry) LookupIval(id ID) int { return r.lookup("LookupIval", id).Ival }

// LookupSimdSize returns the table vector width of id in bytes.
func (r *Registry) LookupSimdSize(id ID) int { return r.lookup("LookupSimdSize", id).SimdSize }

// LookupNumArgs returns the argument count of id, or VarArgs.
func (r *Registry) LookupNumArgs(id ID) int { return r.lookup("LookupNumArgs", id).NumArgs }

// LookupCategory returns the category of id.
func (r *Registry) LookupCategory(id ID) Category { return r.lookup("LookupCategory", id).Category }

// LookupFlags returns the flag bits of id.
func (r *Registry) LookupFlags(id ID) Flag { return r.lookup("LookupFlags", id).Flags }

// LookupIns returns the instruction implementing id for element type t.
// A missing combination yields InsInvalid; t outside [TypeByte, TypeDouble]
// is fatal.
func (r *Registry) LookupIns(id ID, t VarType) Ins {
	in := r.lookup("LookupIns", id)
	if !t.IsElementType() {
		Fatalf("LookupIns", id, "unexpected type %s", t)
	}
	return in.Ins[t-TypeByte]
}

// Flag predicates by ID. Each reports the predicate of the same name on
// [Info] and is fatal for ids outside the registry.

// IsCommutative reports [Info.IsCommutative] for id.
func (r *Registry) IsCommutative(id ID) bool { return r.lookup("IsCommutative", id).IsCommutative() }

// HasFullRangeImm reports [Info.HasFullRangeImm] for id.
func (r *Registry) HasFullRangeImm(id ID) bool { return r.lookup("HasFullRangeImm", id).HasFullRangeImm() }

// RequiresCodegen reports [Info.RequiresCodegen] for id.
func (r *Registry) RequiresCodegen(id ID) bool { return r.lookup("RequiresCodegen", id).RequiresCodegen() }

// HasFixedSimdSize reports [Info.HasFixedSimdSize] for id.
func (r *Registry) HasFixedSimdSize(id ID) bool { return r.lookup("HasFixedSimdSize", id).HasFixedSimdSize() }

// GeneratesMultipleIns reports [Info.GeneratesMultipleIns] for id.
func (r *Registry) GeneratesMultipleIns(id ID) bool { return r.lookup("GeneratesMultipleIns", id).GeneratesMultipleIns() }

// SupportsContainment reports [Info.SupportsContainment] for id.
func (r *Registry) SupportsContainment(id ID) bool { return r.lookup("SupportsContainment", id).SupportsContainment() }

// CopiesUpperBits reports [Info.CopiesUpperBits] for id.
func (r *Registry) CopiesUpperBits(id ID) bool { return r.lookup("CopiesUpperBits", id).CopiesUpperBits() }

// BaseTypeFromFirstArg reports [Info.BaseTypeFromFirstArg] for id.
func (r *Registry) BaseTypeFromFirstArg(id ID) bool { return r.lookup("BaseTypeFromFirstArg", id).BaseTypeFromFirstArg() }

// BaseTypeFromSecondArg reports [Info.BaseTypeFromSecondArg] for id.
func (r *Registry) BaseTypeFromSecondArg(id ID) bool {
	return r.lookup("BaseTypeFromSecondArg", id).BaseTypeFromSecondArg()
}

// IsFloatingPointUsed reports [Info.IsFloatingPointUsed] for id.
func (r *Registry) IsFloatingPointUsed(id ID) bool { return r.lookup("IsFloatingPointUsed", id).IsFloatingPointUsed() }

// MaybeImm reports [Info.MaybeImm] for id.
func (r *Registry) MaybeImm(id ID) bool { return r.lookup("MaybeImm", id).MaybeImm() }

// NoJmpTableImm reports [Info.NoJmpTableImm] for id.
func (r *Registry) NoJmpTableImm(id ID) bool { return r.lookup("NoJmpTableImm", id).NoJmpTableImm() }

// HasSpecialCodegen reports [Info.HasSpecialCodegen] for id.
func (r *Registry) HasSpecialCodegen(id ID) bool { return r.lookup("HasSpecialCodegen", id).HasSpecialCodegen() }

// HasSpecialImport reports [Info.HasSpecialImport] for id.
func (r *Registry) HasSpecialImport(id ID) bool { return r.lookup("HasSpecialImport", id).HasSpecialImport() }

// MaybeMemoryLoad reports [Info.MaybeMemoryLoad] for id.
func (r *Registry) MaybeMemoryLoad(id ID) bool { return r.lookup("MaybeMemoryLoad", id).MaybeMemoryLoad() }

// MaybeMemoryStore reports [Info.MaybeMemoryStore] for id.
func (r *Registry) MaybeMemoryStore(id ID) bool { return r.lookup("MaybeMemoryStore", id).MaybeMemoryStore() }
