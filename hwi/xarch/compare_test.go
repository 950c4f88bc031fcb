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

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

// TestSwappedComparisonInvolutive checks f(f(p)) == p over the whole domain.
func TestSwappedComparisonInvolutive(t *testing.T) {
	for m := FloatComparisonMode(0); m < NumComparisonModes; m++ {
		s := SwappedComparison(m)
		if !s.Valid() {
			t.Errorf("SwappedComparison(%s) = %#x", m, uint8(s))
		}
		if back := SwappedComparison(s); back != m {
			t.Errorf("SwappedComparison(SwappedComparison(%s)) = %s", m, back)
		}
		if s.NaNResult() != m.NaNResult() || s.Signaling() != m.Signaling() {
			t.Errorf("swapping %s to %s changes its NaN behavior", m, s)
		}
	}
}

func TestSwappedComparison(t *testing.T) {
	tests := []struct {
		in, want FloatComparisonMode
	}{
		{CmpLT_OS, CmpGT_OS},
		{CmpLE_OQ, CmpGE_OQ},
		{CmpNLT_US, CmpNGT_US},
		{CmpNLE_UQ, CmpNGE_UQ},
		{CmpEQ_OQ, CmpEQ_OQ},
		{CmpNEQ_US, CmpNEQ_US},
		{CmpORD_Q, CmpORD_Q},
		{CmpUNORD_S, CmpUNORD_S},
		{CmpTRUE_UQ, CmpTRUE_UQ},
		{CmpFALSE_OS, CmpFALSE_OS},
	}
	for _, tt := range tests {
		if got := SwappedComparison(tt.in); got != tt.want {
			t.Errorf("SwappedComparison(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSwappedComparisonOutOfRange(t *testing.T) {
	err := fatal(func() { SwappedComparison(NumComparisonModes) })
	var ie *hwi.InternalError
	if !errors.As(err, &ie) || ie.Op != "SwappedComparison" {
		t.Errorf("got %v, want a SwappedComparison InternalError", err)
	}
}

func TestComparisonModeNames(t *testing.T) {
	if NumComparisonModes != 32 {
		t.Fatalf("NumComparisonModes = %d, want 32", NumComparisonModes)
	}
	tests := []struct {
		m    FloatComparisonMode
		want string
	}{
		{CmpEQ_OQ, "_CMP_EQ_OQ"},
		{CmpGT_OQ, "_CMP_GT_OQ"},
		{CmpTRUE_US, "_CMP_TRUE_US"},
		{0x20, "_CMP_INVALID"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%#x.String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
	}
	for m := FloatComparisonMode(0); m < NumComparisonModes; m++ {
		got, ok := ParseComparisonMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseComparisonMode(%q) = %s, %v", m, got, ok)
		}
	}
	if got, ok := ParseComparisonMode("NLT_UQ"); !ok || got != CmpNLT_UQ {
		t.Errorf("ParseComparisonMode(NLT_UQ) = %s, %v", got, ok)
	}
}

// TestComparisonTableMatchesIntrinsics ties the fixed ivals of the
// CompareXxx intrinsics to the predicate they encode.
func TestComparisonTableMatchesIntrinsics(t *testing.T) {
	tests := []struct {
		id   hwi.ID
		want FloatComparisonMode
	}{
		{SSE_CompareEqual, CmpEQ_OQ},
		{SSE_CompareLessThan, CmpLT_OS},
		{SSE_CompareLessThanOrEqual, CmpLE_OS},
		{SSE_CompareUnordered, CmpUNORD_Q},
		{SSE_CompareNotEqual, CmpNEQ_UQ},
		{SSE_CompareOrdered, CmpORD_Q},
	}
	for _, tt := range tests {
		if got := FloatComparisonMode(Lookup(tt.id).Ival); got != tt.want {
			t.Errorf("%s ival = %s, want %s", Lookup(tt.id).Name, got, tt.want)
		}
	}
}
