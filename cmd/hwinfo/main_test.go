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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-hwintrinsic/hwi"
	"github.com/ajroetker/go-hwintrinsic/hwi/arm64"
	"github.com/ajroetker/go-hwintrinsic/hwi/target"
	"github.com/ajroetker/go-hwintrinsic/hwi/xarch"
)

// run executes hwinfo with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if testing.Verbose() && stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("hwinfo %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func decodeJSON[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	return v
}

func TestList(t *testing.T) {
	out := mustRun(t, "list", "--arch", "xarch", "--isa", "SSE2", "--name", "Compare*", "-f", "json")
	recs := decodeJSON[[]intrinsicRecord](t, out)
	if len(recs) == 0 {
		t.Fatal("no SSE2 comparisons listed")
	}
	for _, rec := range recs {
		if rec.ISA != "SSE2" || !strings.HasPrefix(rec.Name, "Compare") {
			t.Errorf("unexpected record %s.%s", rec.ISA, rec.Name)
		}
	}
}

func TestListFlagFilter(t *testing.T) {
	out := mustRun(t, "list", "--arch", "arm64", "--flag", "HasRMWSemantics", "--category", "IMM", "-f", "json")
	recs := decodeJSON[[]intrinsicRecord](t, out)
	if len(recs) == 0 {
		t.Fatal("no RMW IMM intrinsics listed")
	}
	for _, rec := range recs {
		if !rec.RMW || rec.Category != "IMM" || !slices.Contains(rec.Flags, "HasRMWSemantics") {
			t.Errorf("%s.%s: rmw %v, category %s, flags %v", rec.ISA, rec.Name, rec.RMW, rec.Category, rec.Flags)
		}
	}
}

func TestListCount(t *testing.T) {
	out := mustRun(t, "list", "--arch", "xarch", "--count", "-f", "yaml")
	var counts []isaCount
	if err := yaml.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatal(err)
	}
	var total int
	for _, c := range counts {
		total += c.Intrinsics
	}
	if total != xarch.Registry().Len() {
		t.Errorf("counts add up to %d, want %d", total, xarch.Registry().Len())
	}
}

func TestListTable(t *testing.T) {
	out := mustRun(t, "list", "--arch", "xarch", "--isa", "AES")
	for _, want := range []string{"ISA", "FLAGS", "Encrypt", "DecryptLast"} {
		if !strings.Contains(out, want) {
			t.Errorf("table does not contain %q:\n%s", want, out)
		}
	}
}

func TestListErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"list", "--arch", "xarch", "--isa", "SSE22"}, "did you mean"},
		{[]string{"list", "--arch", "xarch", "--category", "Scalr"}, "Scalar"},
		{[]string{"list", "--arch", "xarch", "--flag", "Commutativ"}, "unknown flag"},
		{[]string{"list", "--arch", "xarch", "--name", "[Add"}, "name pattern"},
		{[]string{"list", "--arch", "mips"}, "arch:"},
		{[]string{"list", "--format", "xml"}, "format:"},
	}
	for _, tt := range tests {
		_, err := run(t, tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("hwinfo %s: error %v, want one containing %q", strings.Join(tt.args, " "), err, tt.want)
		}
	}
}

func TestShow(t *testing.T) {
	out := mustRun(t, "show", "--arch", "xarch", "AVX2.GatherVector128", "-f", "json")
	got := decodeJSON[[]intrinsicDetails](t, out)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Imm != "1,2,4,8" {
		t.Errorf("imm = %q, want 1,2,4,8", got[0].Imm)
	}
	if got[0].Ins["int"] != "vpgatherdd" {
		t.Errorf("ins[int] = %q, want vpgatherdd", got[0].Ins["int"])
	}

	out = mustRun(t, "show", "--arch", "arm64", "AdvSimd.ShiftRightLogical", strconv.Itoa(int(arm64.AdvSimd_Insert)))
	for _, want := range []string{"1..64", "0..15", "ushr"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output does not contain %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "show", "--arch", "xarch", "SSE2.Ad"); err == nil || !strings.Contains(err.Error(), "SSE2.Add") {
		t.Errorf("show SSE2.Ad: error %v, want a suggestion", err)
	}
}

func TestResolve(t *testing.T) {
	out := mustRun(t, "resolve", "--arch", "xarch", "--disable", "AVX2", "-f", "json",
		"Sse2.Add", "Sse2.X64.ConvertToInt64", "Sse2.Ad", "Avx2.IsSupported", "Avx2.Add", "Avx512F.Add")
	got := decodeJSON[[]resolution](t, out)
	want := []hwi.ID{
		xarch.SSE2_Add,
		xarch.SSE2_X64_ConvertToInt64,
		hwi.IllegalID,
		hwi.IsSupportedFalse,
		hwi.ThrowPlatformNotSupported,
		hwi.ThrowPlatformNotSupported,
	}
	ids := make([]hwi.ID, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("resolved IDs mismatch (-want +got):\n%s", diff)
	}
	if len(got) > 2 && !slices.Contains(got[2].Suggestions, "Add") {
		t.Errorf("Sse2.Ad suggestions = %v, want Add among them", got[2].Suggestions)
	}
}

func TestResolveUnknownClass(t *testing.T) {
	out := mustRun(t, "resolve", "--arch", "arm64", "-f", "json", "AdvSmd.Add")
	got := decodeJSON[[]resolution](t, out)
	if len(got) != 1 || got[0].ID != hwi.IllegalID || !slices.Contains(got[0].Suggestions, "AdvSimd") {
		t.Errorf("resolve AdvSmd.Add = %+v", got)
	}
	if _, err := run(t, "resolve", "Add"); err == nil {
		t.Error("resolve accepted a reference without a class")
	}
}

func TestVerify(t *testing.T) {
	out := mustRun(t, "verify", "--all", "-f", "json")
	reports := decodeJSON[[]verifyReport](t, out)
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	for _, r := range reports {
		if len(r.Problems) != 0 {
			t.Errorf("%s: %v", r.Arch, r.Problems)
		}
	}
	if reports[1].Intrinsics != arm64.Registry().Len() {
		t.Errorf("arm64 report counts %d intrinsics", reports[1].Intrinsics)
	}
}

func TestCmp(t *testing.T) {
	out := mustRun(t, "cmp", "-f", "json", "LT_OS", "_CMP_NLE_UQ", "0x1e")
	got := decodeJSON[[]comparisonRecord](t, out)
	want := []comparisonRecord{
		{Code: 0x01, Name: "_CMP_LT_OS", Swapped: "_CMP_GT_OS", NaNResult: false, Signaling: true},
		{Code: 0x16, Name: "_CMP_NLE_UQ", Swapped: "_CMP_NGE_UQ", NaNResult: true, Signaling: false},
		{Code: 0x1e, Name: "_CMP_GT_OQ", Swapped: "_CMP_LT_OQ", NaNResult: false, Signaling: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cmp mismatch (-want +got):\n%s", diff)
	}

	out = mustRun(t, "cmp")
	if !strings.Contains(out, "_CMP_TRUE_US") {
		t.Errorf("cmp table does not list _CMP_TRUE_US:\n%s", out)
	}
	if _, err := run(t, "cmp", "0x20"); err == nil {
		t.Error("cmp accepted 0x20")
	}
}

func TestHost(t *testing.T) {
	out := mustRun(t, "host", "-f", "json")
	got := decodeJSON[hostReport](t, out)
	if got.Arch != target.Native().Arch().String() {
		t.Errorf("host arch = %s, want %s", got.Arch, target.Native().Arch())
	}
}

func TestEnvironmentFlags(t *testing.T) {
	t.Setenv("HWINFO_LIST_NAME", "Crc32")
	t.Setenv("HWINFO_FORMAT", "json")
	out := mustRun(t, "list", "--arch", "xarch")
	recs := decodeJSON[[]intrinsicRecord](t, out)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want SSE42 and SSE42_X64 Crc32", len(recs))
	}
	for _, rec := range recs {
		if rec.Name != "Crc32" {
			t.Errorf("unexpected %s.%s", rec.ISA, rec.Name)
		}
	}

	// A flag on the command line wins over its variable.
	out = mustRun(t, "list", "--arch", "xarch", "--isa", "POPCNT", "--name", "Pop*")
	if recs := decodeJSON[[]intrinsicRecord](t, out); len(recs) != 1 || recs[0].Name != "PopCount" {
		t.Errorf("list --name Pop* = %+v", recs)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwinfo.yaml")
	if err := os.WriteFile(path, []byte("arch: arm64\nformat: yaml\ndisabled_isas: [Dp]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := mustRun(t, "--config", path, "resolve", "Dp.DotProduct", "AdvSimd.Add")
	var got []resolution
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != hwi.ThrowPlatformNotSupported || got[1].ID != arm64.AdvSimd_Add {
		t.Errorf("resolve with Dp disabled = %+v", got)
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		arch hwi.Arch
		name string
		want hwi.Flag
	}{
		{hwi.ArchXArch, "NoRMWSemantics", xarch.FlagNoRMWSemantics},
		{hwi.ArchArm64, "hasrmwsemantics", arm64.FlagHasRMWSemantics},
		{hwi.ArchXArch, "FullRangeIMM", hwi.FlagFullRangeIMM},
		{hwi.ArchArm64, "MaybeMemoryStore", hwi.FlagMaybeMemoryStore},
	}
	for _, tt := range tests {
		got, err := parseFlag(tt.arch, tt.name)
		if err != nil || got != tt.want {
			t.Errorf("parseFlag(%s, %q) = %s, %v, want %s", tt.arch, tt.name, got, err, tt.want)
		}
	}
	if _, err := parseFlag(hwi.ArchXArch, "HasRMWSemantics"); err == nil {
		t.Error("parseFlag accepted the arm64 RMW name on xarch")
	}
}

func TestClosestStrings(t *testing.T) {
	candidates := slices.Values([]string{"Add", "And", "AndNot", "Subtract"})
	if got := closestStrings(maxSuggestionDistance+1, "Ad", candidates); !cmp.Equal(got, []string{"Add", "And"}) {
		t.Errorf("closestStrings(Ad) = %v", got)
	}
	if got := didYouMean("Multiply", candidates); got != "" {
		t.Errorf("didYouMean(Multiply) = %q, want none", got)
	}
}
