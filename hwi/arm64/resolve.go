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

// ResolveID maps a (class, method) reference to an arm64 intrinsic, or
// IllegalID when the reference is an ordinary call. The Vector64 and
// Vector128 helpers resolve only when AdvSimd is the baseline.
func ResolveID(ctx hwi.ISASupport, className, methodName, enclosingClassName string) hwi.ID {
	isa := ResolveISA(className, enclosingClassName)
	switch {
	case isa == hwi.ISAIllegal:
		return hwi.IllegalID
	case isVectorHelper(isa):
		if !ctx.BaselineSIMDSupported() {
			return hwi.IllegalID
		}
		return registry.FindByName(isa, methodName)
	default:
		return registry.ResolveMember(ctx, isa, methodName, IsFullyImplementedISA(isa))
	}
}
