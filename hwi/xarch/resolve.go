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

// ResolveID maps a (class, method) reference to an xarch intrinsic. Names
// match exactly and case-sensitively; a reference that is not an intrinsic
// yields IllegalID.
//
// The Vector128 and Vector256 helpers are not ISAs of their own: they resolve
// only when baseline SIMD is usable (and, for Vector256, AVX), and are
// otherwise left to their managed implementation.
func ResolveID(ctx hwi.ISASupport, className, methodName, enclosingClassName string) hwi.ID {
	isa := ResolveISA(className, enclosingClassName)
	if isa == hwi.ISAIllegal {
		return hwi.IllegalID
	}
	if isVectorHelper(isa) {
		if !ctx.BaselineSIMDSupported() || (isa == Vector256 && !ctx.Supports(AVX)) {
			return hwi.IllegalID
		}
		return registry.FindByName(isa, methodName)
	}
	return registry.ResolveMember(ctx, isa, methodName, IsFullyImplementedISA(isa))
}
