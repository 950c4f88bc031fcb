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

// IsSupportedMethod is the property getter every ISA class exposes.
const IsSupportedMethod = "get_IsSupported"

// ResolveMember finishes resolving a reference to methodName once the class
// has been classified as isa. implemented reports whether the family has
// codegen for isa at all.
//
// IsSupported folds to one of the three IsSupported pseudo IDs. Any other
// member of an ISA the compilation may not use becomes
// ThrowPlatformNotSupported. The rest is an exact name match; members that
// are not intrinsics yield IllegalID.
func (r *Registry) ResolveMember(ctx ISASupport, isa ISA, methodName string, implemented bool) ID {
	supported := implemented && ctx.Supports(isa)
	if methodName == IsSupportedMethod {
		switch {
		case !supported:
			return IsSupportedFalse
		case ctx.ExactlyDependsOn(isa):
			return IsSupportedTrue
		default:
			return IsSupportedDynamic
		}
	}
	if !supported {
		return ThrowPlatformNotSupported
	}
	return r.FindByName(isa, methodName)
}
