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

// Package target selects the intrinsic family of the running build and
// describes which of its ISAs a compilation may use.
//
// The family is fixed when the binary is built, the same way go-highway
// picks its dispatch files: GOARCH arm64, or the hwi_arm64 build tag, selects
// arm64; anything else selects xarch. Tools that inspect another family use
// [ForArch].
package target

import (
	"fmt"

	"github.com/ajroetker/go-hwintrinsic/hwi"
	"github.com/ajroetker/go-hwintrinsic/hwi/arm64"
	"github.com/ajroetker/go-hwintrinsic/hwi/xarch"
)

// Native returns the family this binary was built for.
func Native() hwi.Target { return native }

// Of returns the family a.
func Of(a hwi.Arch) (hwi.Target, error) {
	switch a {
	case hwi.ArchXArch:
		return xarch.Target(), nil
	case hwi.ArchArm64:
		return arm64.Target(), nil
	default:
		return nil, fmt.Errorf("no intrinsic table for architecture %s", a)
	}
}

// ForArch returns the family named name. "native" and "" select [Native].
func ForArch(name string) (hwi.Target, error) {
	if name == "" || name == "native" {
		return Native(), nil
	}
	a, err := hwi.ParseArch(name)
	if err != nil {
		return nil, err
	}
	return Of(a)
}

// Families returns every family, xarch first.
func Families() []hwi.Target {
	return []hwi.Target{xarch.Target(), arm64.Target()}
}
