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

// ClassHandle is an opaque reference into the caller's type system.
type ClassHandle uintptr

// Signature is the call-site signature of an intrinsic as the importer sees
// it.
type Signature struct {
	RetType    VarType // TypeStruct when the call returns a vector
	RetClass   ClassHandle
	ArgClasses []ClassHandle
}

// SIMDTypes answers vector type questions for the current compilation.
type SIMDTypes interface {
	// SIMDTypeInfo returns the element type and the size in bytes of the
	// vector class cls. Non-vector classes report (TypeUnknown, 0).
	SIMDTypeInfo(cls ClassHandle) (base VarType, size int)
}

// Operand is one argument of an intrinsic call node.
type Operand interface {
	Type() VarType
}

// Node is the IR shape of an intrinsic call. Operands are in evaluation
// order; an immediate promoted out of textual order is already last.
type Node interface {
	IntrinsicID() ID
	Operands() []Operand
}

// ResolveSIMDSize returns the vector width in bytes of id at this call site.
// Fixed-size intrinsics return their table value; size-polymorphic ones take
// it from the vector class in sig that carries the base type.
func (r *Registry) ResolveSIMDSize(types SIMDTypes, id ID, sig *Signature) int {
	in := r.lookup("ResolveSIMDSize", id)
	if in.HasFixedSimdSize() {
		return in.SimdSize
	}
	if sig == nil {
		Fatalf("ResolveSIMDSize", id, "%s needs a signature to size its vectors", in.Name)
	}

	var cls ClassHandle
	switch {
	case sig.RetType == TypeStruct:
		cls = sig.RetClass
	case in.BaseTypeFromFirstArg():
		if len(sig.ArgClasses) < 1 {
			Fatalf("ResolveSIMDSize", id, "signature has no first argument")
		}
		cls = sig.ArgClasses[0]
	case in.BaseTypeFromSecondArg():
		if len(sig.ArgClasses) < 2 {
			Fatalf("ResolveSIMDSize", id, "signature has no second argument")
		}
		cls = sig.ArgClasses[1]
	default:
		Fatalf("ResolveSIMDSize", id, "%s has no rule for its vector size", in.Name)
	}

	base, size := types.SIMDTypeInfo(cls)
	if size <= 0 || base == TypeUnknown {
		Fatalf("ResolveSIMDSize", id, "class %#x is not a vector type", uintptr(cls))
	}
	return size
}

// NumArgs returns the argument count of node, counting its operands when the
// table says the arity depends on the call site.
func (r *Registry) NumArgs(node Node) int {
	id := node.IntrinsicID()
	n := r.lookup("NumArgs", id).NumArgs
	if n >= 0 {
		return n
	}
	return len(node.Operands())
}

// LastOp returns the last operand of node in evaluation order, or nil when
// the intrinsic takes no arguments.
func (r *Registry) LastOp(node Node) Operand {
	n := r.NumArgs(node)
	if n == 0 {
		return nil
	}
	ops := node.Operands()
	if n > len(ops) {
		Fatalf("LastOp", node.IntrinsicID(), "node has %d operands, want %d", len(ops), n)
	}
	return ops[n-1]
}

// IsImmOp reports whether op, an operand of id, is the immediate. Only IMM
// intrinsics have one; for intrinsics with both immediate and vector
// overloads it is the immediate only when op is an integer.
func (r *Registry) IsImmOp(id ID, op Operand) bool {
	in := r.lookup("IsImmOp", id)
	if in.Category != CategoryIMM {
		return false
	}
	if !in.MaybeImm() {
		return true
	}
	return ActualType(op.Type()) == TypeInt
}

// IsImmOperand reports whether the operand at pos of node is its immediate.
// The immediate is always the last operand.
func (r *Registry) IsImmOperand(node Node, pos int) bool {
	n := r.NumArgs(node)
	if pos < 0 || pos >= n {
		return false
	}
	ops := node.Operands()
	if pos != n-1 || pos >= len(ops) {
		return false
	}
	return r.IsImmOp(node.IntrinsicID(), ops[pos])
}
