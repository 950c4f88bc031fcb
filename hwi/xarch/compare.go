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

// FloatComparisonMode is the predicate immediate of cmpps, cmppd, cmpss and
// cmpsd. Values follow the _CMP_* encoding of the Intel manuals. O and U tell
// whether the predicate is false or true when an operand is NaN; S and Q
// tell whether a QNaN operand signals.
type FloatComparisonMode uint8

const (
	CmpEQ_OQ FloatComparisonMode = iota
	CmpLT_OS
	CmpLE_OS
	CmpUNORD_Q
	CmpNEQ_UQ
	CmpNLT_US
	CmpNLE_US
	CmpORD_Q
	CmpEQ_UQ
	CmpNGE_US
	CmpNGT_US
	CmpFALSE_OQ
	CmpNEQ_OQ
	CmpGE_OS
	CmpGT_OS
	CmpTRUE_UQ
	CmpEQ_OS
	CmpLT_OQ
	CmpLE_OQ
	CmpUNORD_S
	CmpNEQ_US
	CmpNLT_UQ
	CmpNLE_UQ
	CmpORD_S
	CmpEQ_US
	CmpNGE_UQ
	CmpNGT_UQ
	CmpFALSE_OS
	CmpNEQ_OS
	CmpGE_OQ
	CmpGT_OQ
	CmpTRUE_US

	// NumComparisonModes is the size of the predicate domain.
	NumComparisonModes = iota
)

type comparison struct {
	name      string
	swapped   FloatComparisonMode // same result with the operands exchanged
	nanResult bool
	signaling bool
}

var comparisons = [NumComparisonModes]comparison{
	CmpEQ_OQ:    {"_CMP_EQ_OQ", CmpEQ_OQ, false, false},
	CmpLT_OS:    {"_CMP_LT_OS", CmpGT_OS, false, true},
	CmpLE_OS:    {"_CMP_LE_OS", CmpGE_OS, false, true},
	CmpUNORD_Q:  {"_CMP_UNORD_Q", CmpUNORD_Q, true, false},
	CmpNEQ_UQ:   {"_CMP_NEQ_UQ", CmpNEQ_UQ, true, false},
	CmpNLT_US:   {"_CMP_NLT_US", CmpNGT_US, true, true},
	CmpNLE_US:   {"_CMP_NLE_US", CmpNGE_US, true, true},
	CmpORD_Q:    {"_CMP_ORD_Q", CmpORD_Q, false, false},
	CmpEQ_UQ:    {"_CMP_EQ_UQ", CmpEQ_UQ, true, false},
	CmpNGE_US:   {"_CMP_NGE_US", CmpNLE_US, true, true},
	CmpNGT_US:   {"_CMP_NGT_US", CmpNLT_US, true, true},
	CmpFALSE_OQ: {"_CMP_FALSE_OQ", CmpFALSE_OQ, false, false},
	CmpNEQ_OQ:   {"_CMP_NEQ_OQ", CmpNEQ_OQ, false, false},
	CmpGE_OS:    {"_CMP_GE_OS", CmpLE_OS, false, true},
	CmpGT_OS:    {"_CMP_GT_OS", CmpLT_OS, false, true},
	CmpTRUE_UQ:  {"_CMP_TRUE_UQ", CmpTRUE_UQ, true, false},
	CmpEQ_OS:    {"_CMP_EQ_OS", CmpEQ_OS, false, true},
	CmpLT_OQ:    {"_CMP_LT_OQ", CmpGT_OQ, false, false},
	CmpLE_OQ:    {"_CMP_LE_OQ", CmpGE_OQ, false, false},
	CmpUNORD_S:  {"_CMP_UNORD_S", CmpUNORD_S, true, true},
	CmpNEQ_US:   {"_CMP_NEQ_US", CmpNEQ_US, true, true},
	CmpNLT_UQ:   {"_CMP_NLT_UQ", CmpNGT_UQ, true, false},
	CmpNLE_UQ:   {"_CMP_NLE_UQ", CmpNGE_UQ, true, false},
	CmpORD_S:    {"_CMP_ORD_S", CmpORD_S, false, true},
	CmpEQ_US:    {"_CMP_EQ_US", CmpEQ_US, true, true},
	CmpNGE_UQ:   {"_CMP_NGE_UQ", CmpNLE_UQ, true, false},
	CmpNGT_UQ:   {"_CMP_NGT_UQ", CmpNLT_UQ, true, false},
	CmpFALSE_OS: {"_CMP_FALSE_OS", CmpFALSE_OS, false, true},
	CmpNEQ_OS:   {"_CMP_NEQ_OS", CmpNEQ_OS, false, true},
	CmpGE_OQ:    {"_CMP_GE_OQ", CmpLE_OQ, false, false},
	CmpGT_OQ:    {"_CMP_GT_OQ", CmpLT_OQ, false, false},
	CmpTRUE_US:  {"_CMP_TRUE_US", CmpTRUE_US, true, true},
}

// Valid reports whether m is one of the 32 predicate codes.
func (m FloatComparisonMode) Valid() bool { return m < NumComparisonModes }

func (m FloatComparisonMode) String() string {
	if !m.Valid() {
		return "_CMP_INVALID"
	}
	return comparisons[m].name
}

// NaNResult is the value of the predicate when either operand is NaN.
func (m FloatComparisonMode) NaNResult() bool { return m.Valid() && comparisons[m].nanResult }

// Signaling reports whether a QNaN operand raises the invalid exception.
func (m FloatComparisonMode) Signaling() bool { return m.Valid() && comparisons[m].signaling }

// ParseComparisonMode accepts both "_CMP_LT_OS" and "LT_OS".
func ParseComparisonMode(s string) (FloatComparisonMode, bool) {
	for m := range comparisons {
		name := comparisons[m].name
		if s == name || s == name[len("_CMP_"):] {
			return FloatComparisonMode(m), true
		}
	}
	return 0, false
}

// SwappedComparison returns the predicate that gives the same result when
// the operands of the comparison are exchanged, so that the code generator
// can move a containable operand to the right. Relations with no direction
// map to themselves, and SwappedComparison(SwappedComparison(m)) == m.
// A value outside the 32 codes is fatal.
func SwappedComparison(m FloatComparisonMode) FloatComparisonMode {
	if !m.Valid() {
		hwi.Fatalf("SwappedComparison", hwi.IllegalID, "comparison mode %#x out of range", uint8(m))
	}
	return comparisons[m].swapped
}
