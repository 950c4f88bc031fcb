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

import "testing"

type fakeSupport struct {
	supported, exact map[ISA]bool
}

func (f fakeSupport) Supports(isa ISA) bool         { return f.supported[isa] }
func (f fakeSupport) ExactlyDependsOn(isa ISA) bool { return f.exact[isa] }
func (f fakeSupport) BaselineSIMDSupported() bool   { return true }

func TestResolveMember(t *testing.T) {
	r := toyRegistry(t)
	none := fakeSupport{}
	dynamic := fakeSupport{supported: map[ISA]bool{toyISA: true}}
	exact := fakeSupport{supported: map[ISA]bool{toyISA: true}, exact: map[ISA]bool{toyISA: true}}

	tests := []struct {
		name        string
		ctx         fakeSupport
		method      string
		implemented bool
		want        ID
	}{
		{"IsSupportedExact", exact, IsSupportedMethod, true, IsSupportedTrue},
		{"IsSupportedDynamic", dynamic, IsSupportedMethod, true, IsSupportedDynamic},
		{"IsSupportedNo", none, IsSupportedMethod, true, IsSupportedFalse},
		{"IsSupportedNotImplemented", exact, IsSupportedMethod, false, IsSupportedFalse},
		{"Member", dynamic, "Add", true, toyAddID},
		{"NotAnIntrinsic", dynamic, "ToString", true, IllegalID},
		{"CaseSensitive", dynamic, "add", true, IllegalID},
		{"Unsupported", none, "Add", true, ThrowPlatformNotSupported},
		{"NotImplemented", exact, "Add", false, ThrowPlatformNotSupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ResolveMember(tt.ctx, toyISA, tt.method, tt.implemented); got != tt.want {
				t.Errorf("ResolveMember(%s) = %#x, want %#x", tt.method, got, tt.want)
			}
		})
	}
}

func TestPseudoIDs(t *testing.T) {
	for _, id := range []ID{IsSupportedFalse, IsSupportedTrue, IsSupportedDynamic, ThrowPlatformNotSupported} {
		if !id.IsPseudo() {
			t.Errorf("%#x.IsPseudo() = false", id)
		}
	}
	for _, id := range []ID{IllegalID, 1, toyWidenID} {
		if id.IsPseudo() {
			t.Errorf("%#x.IsPseudo() = true", id)
		}
	}
}
