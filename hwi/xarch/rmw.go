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

// FlagNoRMWSemantics is how xarch reads [hwi.FlagArchRMW]. Legacy SSE
// encodings overwrite their first source, so read/modify/write is the
// default and the bit marks the exceptions.
const FlagNoRMWSemantics = hwi.FlagArchRMW

// HasRMWSemantics reports whether the destination of id's instruction is
// also its first source. It is true unless the record carries
// FlagNoRMWSemantics.
func HasRMWSemantics(id hwi.ID) bool {
	return registry.LookupFlags(id)&FlagNoRMWSemantics == 0
}
