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

// Instructions named by the table, in mnemonic order.
const (
	AABS hwi.Ins = iota + 1
	AADD
	AADDP
	AADDV
	AAESD
	AAESE
	AAESIMC
	AAESMC
	AAND
	ABIC
	ABSL
	ACLS
	ACLZ
	ACMEQ
	ACMGE
	ACMGT
	ACMHI
	ACMHS
	ACMTST
	ACNT
	ACRC32B
	ACRC32CB
	ACRC32CH
	ACRC32CW
	ACRC32CX
	ACRC32H
	ACRC32W
	ACRC32X
	ADUP
	AEOR
	AEXT
	AFABD
	AFABS
	AFACGE
	AFACGT
	AFADD
	AFADDP
	AFCMEQ
	AFCMGE
	AFCMGT
	AFDIV
	AFMAX
	AFMAXP
	AFMAXV
	AFMIN
	AFMINP
	AFMINV
	AFMLA
	AFMLS
	AFMUL
	AFNEG
	AFSQRT
	AFSUB
	AINS
	ALD1
	ALD1R
	AMLA
	AMLS
	AMOV
	AMOVI
	AMUL
	AMVN
	ANEG
	AORN
	AORR
	APMULL
	ARBIT
	ASABA
	ASABD
	ASDOT
	ASHA1C
	ASHA1H
	ASHA1M
	ASHA1P
	ASHA1SU0
	ASHA1SU1
	ASHA256H
	ASHA256H2
	ASHA256SU0
	ASHA256SU1
	ASHL
	ASMAX
	ASMAXP
	ASMAXV
	ASMIN
	ASMINP
	ASMINV
	ASMOV
	ASMULH
	ASQADD
	ASQRDMLAH
	ASQRDMLSH
	ASQSUB
	ASSHR
	AST1
	ASUB
	ATBL
	ATRN1
	ATRN2
	AUABA
	AUABD
	AUDOT
	AUMAX
	AUMAXP
	AUMAXV
	AUMIN
	AUMINP
	AUMINV
	AUMOV
	AUMULH
	AUQADD
	AUQSUB
	AUSHR
	AUZP1
	AUZP2
	AZIP1
	AZIP2

	numIns = iota + 1
)

var insNames = [numIns]string{
	hwi.InsInvalid: "invalid",
	AABS:           "abs",
	AADD:           "add",
	AADDP:          "addp",
	AADDV:          "addv",
	AAESD:          "aesd",
	AAESE:          "aese",
	AAESIMC:        "aesimc",
	AAESMC:         "aesmc",
	AAND:           "and",
	ABIC:           "bic",
	ABSL:           "bsl",
	ACLS:           "cls",
	ACLZ:           "clz",
	ACMEQ:          "cmeq",
	ACMGE:          "cmge",
	ACMGT:          "cmgt",
	ACMHI:          "cmhi",
	ACMHS:          "cmhs",
	ACMTST:         "cmtst",
	ACNT:           "cnt",
	ACRC32B:        "crc32b",
	ACRC32CB:       "crc32cb",
	ACRC32CH:       "crc32ch",
	ACRC32CW:       "crc32cw",
	ACRC32CX:       "crc32cx",
	ACRC32H:        "crc32h",
	ACRC32W:        "crc32w",
	ACRC32X:        "crc32x",
	ADUP:           "dup",
	AEOR:           "eor",
	AEXT:           "ext",
	AFABD:          "fabd",
	AFABS:          "fabs",
	AFACGE:         "facge",
	AFACGT:         "facgt",
	AFADD:          "fadd",
	AFADDP:         "faddp",
	AFCMEQ:         "fcmeq",
	AFCMGE:         "fcmge",
	AFCMGT:         "fcmgt",
	AFDIV:          "fdiv",
	AFMAX:          "fmax",
	AFMAXP:         "fmaxp",
	AFMAXV:         "fmaxv",
	AFMIN:          "fmin",
	AFMINP:         "fminp",
	AFMINV:         "fminv",
	AFMLA:          "fmla",
	AFMLS:          "fmls",
	AFMUL:          "fmul",
	AFNEG:          "fneg",
	AFSQRT:         "fsqrt",
	AFSUB:          "fsub",
	AINS:           "ins",
	ALD1:           "ld1",
	ALD1R:          "ld1r",
	AMLA:           "mla",
	AMLS:           "mls",
	AMOV:           "mov",
	AMOVI:          "movi",
	AMUL:           "mul",
	AMVN:           "mvn",
	ANEG:           "neg",
	AORN:           "orn",
	AORR:           "orr",
	APMULL:         "pmull",
	ARBIT:          "rbit",
	ASABA:          "saba",
	ASABD:          "sabd",
	ASDOT:          "sdot",
	ASHA1C:         "sha1c",
	ASHA1H:         "sha1h",
	ASHA1M:         "sha1m",
	ASHA1P:         "sha1p",
	ASHA1SU0:       "sha1su0",
	ASHA1SU1:       "sha1su1",
	ASHA256H:       "sha256h",
	ASHA256H2:      "sha256h2",
	ASHA256SU0:     "sha256su0",
	ASHA256SU1:     "sha256su1",
	ASHL:           "shl",
	ASMAX:          "smax",
	ASMAXP:         "smaxp",
	ASMAXV:         "smaxv",
	ASMIN:          "smin",
	ASMINP:         "sminp",
	ASMINV:         "sminv",
	ASMOV:          "smov",
	ASMULH:         "smulh",
	ASQADD:         "sqadd",
	ASQRDMLAH:      "sqrdmlah",
	ASQRDMLSH:      "sqrdmlsh",
	ASQSUB:         "sqsub",
	ASSHR:          "sshr",
	AST1:           "st1",
	ASUB:           "sub",
	ATBL:           "tbl",
	ATRN1:          "trn1",
	ATRN2:          "trn2",
	AUABA:          "uaba",
	AUABD:          "uabd",
	AUDOT:          "udot",
	AUMAX:          "umax",
	AUMAXP:         "umaxp",
	AUMAXV:         "umaxv",
	AUMIN:          "umin",
	AUMINP:         "uminp",
	AUMINV:         "uminv",
	AUMOV:          "umov",
	AUMULH:         "umulh",
	AUQADD:         "uqadd",
	AUQSUB:         "uqsub",
	AUSHR:          "ushr",
	AUZP1:          "uzp1",
	AUZP2:          "uzp2",
	AZIP1:          "zip1",
	AZIP2:          "zip2",
}
