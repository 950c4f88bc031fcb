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

// FlagHasRMWSemantics is how arm64 reads [hwi.FlagArchRMW]. A64 encodings
// have a separate destination, so the bit marks the forms that also read
// it, such as mla and ins.
const FlagHasRMWSemantics = hwi.FlagArchRMW

// HasRMWSemantics reports whether the destination of id's instruction is
// also one of its sources. It is false unless the record carries
// FlagHasRMWSemantics.
func HasRMWSemantics(id hwi.ID) bool {
	return registry.LookupFlags(id)&FlagHasRMWSemantics != 0
}
