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

// Command hwinfo inspects the hardware intrinsic tables.
//
// Usage:
//
//	hwinfo list --arch xarch --isa SSE2 --name 'Compare*'
//	hwinfo show AVX2.GatherVector128
//	hwinfo resolve Sse2.Add Sse2.X64.ConvertToInt64 Avx2.IsSupported
//	hwinfo verify
//	hwinfo host
//	hwinfo cmp LT_OS
//
// Every command takes --arch, --format (table, json, yaml), --log-level and
// --disable. They can also be set in a YAML file given with --config, or
// through HWINFO_ARCH, HWINFO_FORMAT, HWINFO_LOG_LEVEL and
// HWINFO_DISABLED_ISAS. Command flags read HWINFO_<COMMAND>_<FLAG>, e.g.
// HWINFO_LIST_NAME.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
