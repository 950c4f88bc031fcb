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

package target

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-hwintrinsic/hwi/arm64"
	"github.com/ajroetker/go-hwintrinsic/hwi/xarch"
)

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if diff := cmp.Diff(&want, c, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("LoadConfig(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwinfo.yaml")
	data := "arch: arm64\nformat: yaml\ndisabled_isas:\n  - Crc32\n  - Dp\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Arch: "arm64", Format: FormatYAML, LogLevel: "info", DisabledISAs: []string{"Crc32", "Dp"}}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}

	tg, err := c.Target()
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Support(tg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Supports(arm64.Crc32) || s.Supports(arm64.Dp) {
		t.Error("disabled ISAs are still supported")
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("HWINFO_ARCH", "xarch")
	t.Setenv("HWINFO_FORMAT", "json")
	t.Setenv("HWINFO_DISABLED_ISAS", "AVX2,FMA")
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Arch != "xarch" || c.Format != FormatJSON {
		t.Errorf("LoadConfig() = %+v", c)
	}
	if diff := cmp.Diff([]string{"AVX2", "FMA"}, c.DisabledISAs); diff != "" {
		t.Errorf("DisabledISAs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("HWINFO_ARCH", "mips")
	t.Setenv("HWINFO_FORMAT", "xml")
	_, err := LoadConfig("")
	if err == nil {
		t.Fatal("LoadConfig accepted an unknown arch and format")
	}
	for _, want := range []string{"arch:", "format:"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig accepted a missing file")
	}
}

func TestConfigSupportUnknownISA(t *testing.T) {
	c := DefaultConfig()
	c.DisabledISAs = []string{"AVX2", "NEON"}
	if _, err := c.Support(xarch.Target()); err == nil || !strings.Contains(err.Error(), "NEON") {
		t.Errorf("Support() error = %v, want one naming NEON", err)
	}
	c.DisabledISAs = []string{" AVX2 "}
	s, err := c.Support(xarch.Target())
	if err != nil {
		t.Fatal(err)
	}
	if s.Supports(xarch.AVX2) {
		t.Error("AVX2 is still supported")
	}
}
