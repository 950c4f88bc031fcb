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

// Instructions named by the table, in mnemonic order.
const (
	AADDPD hwi.Ins = iota + 1
	AADDPS
	AADDSD
	AADDSS
	AADDSUBPD
	AADDSUBPS
	AAESDEC
	AAESDECLAST
	AAESENC
	AAESENCLAST
	AAESIMC
	AAESKEYGENASSIST
	AANDN
	AANDNPD
	AANDNPS
	AANDPD
	AANDPS
	ABEXTR
	ABLENDPD
	ABLENDPS
	ABLENDVPD
	ABLENDVPS
	ABLSI
	ABLSMSK
	ABLSR
	ABZHI
	ACMPPD
	ACMPPS
	ACMPSD
	ACMPSS
	ACOMISD
	ACOMISS
	ACRC32
	ACVTDQ2PD
	ACVTDQ2PS
	ACVTPD2DQ
	ACVTPD2PS
	ACVTPS2DQ
	ACVTPS2PD
	ACVTSD2SI
	ACVTSI2SD
	ACVTSI2SS
	ACVTSS2SD
	ACVTSS2SI
	ACVTTPD2DQ
	ACVTTPS2DQ
	ACVTTSD2SI
	ACVTTSS2SI
	ADIVPD
	ADIVPS
	ADIVSD
	ADIVSS
	ADPPD
	ADPPS
	AEXTRACTPS
	AHADDPD
	AHADDPS
	AHSUBPD
	AHSUBPS
	AINSERTPS
	ALDDQU
	ALZCNT
	AMASKMOVDQU
	AMAXPD
	AMAXPS
	AMAXSD
	AMAXSS
	AMINPD
	AMINPS
	AMINSD
	AMINSS
	AMOVAPD
	AMOVAPS
	AMOVD
	AMOVDDUP
	AMOVDQA
	AMOVDQU
	AMOVHLPS
	AMOVHPD
	AMOVHPS
	AMOVLHPS
	AMOVLPD
	AMOVLPS
	AMOVMSKPD
	AMOVMSKPS
	AMOVNTDQ
	AMOVNTDQA
	AMOVNTI
	AMOVNTPD
	AMOVNTPS
	AMOVQ
	AMOVSD
	AMOVSHDUP
	AMOVSLDUP
	AMOVSS
	AMOVUPD
	AMOVUPS
	AMPSADBW
	AMULPD
	AMULPS
	AMULSD
	AMULSS
	AMULX
	AORPD
	AORPS
	APABSB
	APABSD
	APABSW
	APACKSSDW
	APACKSSWB
	APACKUSDW
	APACKUSWB
	APADDB
	APADDD
	APADDQ
	APADDSB
	APADDSW
	APADDUSB
	APADDUSW
	APADDW
	APALIGNR
	APAND
	APANDN
	APAVGB
	APAVGW
	APBLENDVB
	APBLENDW
	APCLMULQDQ
	APCMPEQB
	APCMPEQD
	APCMPEQQ
	APCMPEQW
	APCMPGTB
	APCMPGTD
	APCMPGTQ
	APCMPGTW
	APDEP
	APEXT
	APEXTRB
	APEXTRD
	APEXTRQ
	APEXTRW
	APHADDD
	APHADDSW
	APHADDW
	APHMINPOSUW
	APHSUBD
	APHSUBSW
	APHSUBW
	APINSRB
	APINSRD
	APINSRQ
	APINSRW
	APMADDUBSW
	APMADDWD
	APMAXSB
	APMAXSD
	APMAXSW
	APMAXUB
	APMAXUD
	APMAXUW
	APMINSB
	APMINSD
	APMINSW
	APMINUB
	APMINUD
	APMINUW
	APMOVMSKB
	APMOVSXBD
	APMOVSXBQ
	APMOVSXBW
	APMOVSXDQ
	APMOVSXWD
	APMOVSXWQ
	APMOVZXBD
	APMOVZXBQ
	APMOVZXBW
	APMOVZXDQ
	APMOVZXWD
	APMOVZXWQ
	APMULDQ
	APMULHRSW
	APMULHUW
	APMULHW
	APMULLD
	APMULLW
	APMULUDQ
	APOPCNT
	APOR
	APSADBW
	APSHUFB
	APSHUFD
	APSHUFHW
	APSHUFLW
	APSIGNB
	APSIGND
	APSIGNW
	APSLLD
	APSLLDQ
	APSLLQ
	APSLLW
	APSRAD
	APSRAW
	APSRLD
	APSRLDQ
	APSRLQ
	APSRLW
	APSUBB
	APSUBD
	APSUBQ
	APSUBSB
	APSUBSW
	APSUBUSB
	APSUBUSW
	APSUBW
	APTEST
	APUNPCKHBW
	APUNPCKHDQ
	APUNPCKHQDQ
	APUNPCKHWD
	APUNPCKLBW
	APUNPCKLDQ
	APUNPCKLQDQ
	APUNPCKLWD
	APXOR
	ARCPPS
	ARCPSS
	AROUNDPD
	AROUNDPS
	AROUNDSD
	AROUNDSS
	ARSQRTPS
	ARSQRTSS
	ASHUFPD
	ASHUFPS
	ASQRTPD
	ASQRTPS
	ASQRTSD
	ASQRTSS
	ASUBPD
	ASUBPS
	ASUBSD
	ASUBSS
	ATZCNT
	AUCOMISD
	AUCOMISS
	AUNPCKHPD
	AUNPCKHPS
	AUNPCKLPD
	AUNPCKLPS
	AVBLENDVPD
	AVBLENDVPS
	AVBROADCASTF128
	AVBROADCASTI128
	AVBROADCASTSD
	AVBROADCASTSS
	AVEXTRACTF128
	AVEXTRACTI128
	AVFMADD213PD
	AVFMADD213PS
	AVFMADD213SD
	AVFMADD213SS
	AVFMADDSUB213PD
	AVFMADDSUB213PS
	AVFMSUB213PD
	AVFMSUB213PS
	AVFMSUB213SD
	AVFMSUB213SS
	AVFMSUBADD213PD
	AVFMSUBADD213PS
	AVFNMADD213PD
	AVFNMADD213PS
	AVFNMADD213SD
	AVFNMADD213SS
	AVFNMSUB213PD
	AVFNMSUB213PS
	AVGATHERDPD
	AVGATHERDPS
	AVINSERTF128
	AVINSERTI128
	AVMASKMOVPD
	AVMASKMOVPS
	AVPBLENDD
	AVPBLENDVB
	AVPBROADCASTB
	AVPBROADCASTD
	AVPBROADCASTQ
	AVPBROADCASTW
	AVPERM2F128
	AVPERM2I128
	AVPERMD
	AVPERMILPD
	AVPERMILPDVAR
	AVPERMILPS
	AVPERMILPSVAR
	AVPERMPD
	AVPERMPS
	AVPERMQ
	AVPGATHERDD
	AVPGATHERDQ
	AVPMASKMOVD
	AVPMASKMOVQ
	AVPSLLVD
	AVPSLLVQ
	AVPSRAVD
	AVPSRLVD
	AVPSRLVQ
	AVTESTPD
	AVTESTPS
	AXORPD
	AXORPS

	numIns = iota + 1
)

var insNames = [numIns]string{
	hwi.InsInvalid:   "invalid",
	AADDPD:           "addpd",
	AADDPS:           "addps",
	AADDSD:           "addsd",
	AADDSS:           "addss",
	AADDSUBPD:        "addsubpd",
	AADDSUBPS:        "addsubps",
	AAESDEC:          "aesdec",
	AAESDECLAST:      "aesdeclast",
	AAESENC:          "aesenc",
	AAESENCLAST:      "aesenclast",
	AAESIMC:          "aesimc",
	AAESKEYGENASSIST: "aeskeygenassist",
	AANDN:            "andn",
	AANDNPD:          "andnpd",
	AANDNPS:          "andnps",
	AANDPD:           "andpd",
	AANDPS:           "andps",
	ABEXTR:           "bextr",
	ABLENDPD:         "blendpd",
	ABLENDPS:         "blendps",
	ABLENDVPD:        "blendvpd",
	ABLENDVPS:        "blendvps",
	ABLSI:            "blsi",
	ABLSMSK:          "blsmsk",
	ABLSR:            "blsr",
	ABZHI:            "bzhi",
	ACMPPD:           "cmppd",
	ACMPPS:           "cmpps",
	ACMPSD:           "cmpsd",
	ACMPSS:           "cmpss",
	ACOMISD:          "comisd",
	ACOMISS:          "comiss",
	ACRC32:           "crc32",
	ACVTDQ2PD:        "cvtdq2pd",
	ACVTDQ2PS:        "cvtdq2ps",
	ACVTPD2DQ:        "cvtpd2dq",
	ACVTPD2PS:        "cvtpd2ps",
	ACVTPS2DQ:        "cvtps2dq",
	ACVTPS2PD:        "cvtps2pd",
	ACVTSD2SI:        "cvtsd2si",
	ACVTSI2SD:        "cvtsi2sd",
	ACVTSI2SS:        "cvtsi2ss",
	ACVTSS2SD:        "cvtss2sd",
	ACVTSS2SI:        "cvtss2si",
	ACVTTPD2DQ:       "cvttpd2dq",
	ACVTTPS2DQ:       "cvttps2dq",
	ACVTTSD2SI:       "cvttsd2si",
	ACVTTSS2SI:       "cvttss2si",
	ADIVPD:           "divpd",
	ADIVPS:           "divps",
	ADIVSD:           "divsd",
	ADIVSS:           "divss",
	ADPPD:            "dppd",
	ADPPS:            "dpps",
	AEXTRACTPS:       "extractps",
	AHADDPD:          "haddpd",
	AHADDPS:          "haddps",
	AHSUBPD:          "hsubpd",
	AHSUBPS:          "hsubps",
	AINSERTPS:        "insertps",
	ALDDQU:           "lddqu",
	ALZCNT:           "lzcnt",
	AMASKMOVDQU:      "maskmovdqu",
	AMAXPD:           "maxpd",
	AMAXPS:           "maxps",
	AMAXSD:           "maxsd",
	AMAXSS:           "maxss",
	AMINPD:           "minpd",
	AMINPS:           "minps",
	AMINSD:           "minsd",
	AMINSS:           "minss",
	AMOVAPD:          "movapd",
	AMOVAPS:          "movaps",
	AMOVD:            "movd",
	AMOVDDUP:         "movddup",
	AMOVDQA:          "movdqa",
	AMOVDQU:          "movdqu",
	AMOVHLPS:         "movhlps",
	AMOVHPD:          "movhpd",
	AMOVHPS:          "movhps",
	AMOVLHPS:         "movlhps",
	AMOVLPD:          "movlpd",
	AMOVLPS:          "movlps",
	AMOVMSKPD:        "movmskpd",
	AMOVMSKPS:        "movmskps",
	AMOVNTDQ:         "movntdq",
	AMOVNTDQA:        "movntdqa",
	AMOVNTI:          "movnti",
	AMOVNTPD:         "movntpd",
	AMOVNTPS:         "movntps",
	AMOVQ:            "movq",
	AMOVSD:           "movsd",
	AMOVSHDUP:        "movshdup",
	AMOVSLDUP:        "movsldup",
	AMOVSS:           "movss",
	AMOVUPD:          "movupd",
	AMOVUPS:          "movups",
	AMPSADBW:         "mpsadbw",
	AMULPD:           "mulpd",
	AMULPS:           "mulps",
	AMULSD:           "mulsd",
	AMULSS:           "mulss",
	AMULX:            "mulx",
	AORPD:            "orpd",
	AORPS:            "orps",
	APABSB:           "pabsb",
	APABSD:           "pabsd",
	APABSW:           "pabsw",
	APACKSSDW:        "packssdw",
	APACKSSWB:        "packsswb",
	APACKUSDW:        "packusdw",
	APACKUSWB:        "packuswb",
	APADDB:           "paddb",
	APADDD:           "paddd",
	APADDQ:           "paddq",
	APADDSB:          "paddsb",
	APADDSW:          "paddsw",
	APADDUSB:         "paddusb",
	APADDUSW:         "paddusw",
	APADDW:           "paddw",
	APALIGNR:         "palignr",
	APAND:            "pand",
	APANDN:           "pandn",
	APAVGB:           "pavgb",
	APAVGW:           "pavgw",
	APBLENDVB:        "pblendvb",
	APBLENDW:         "pblendw",
	APCLMULQDQ:       "pclmulqdq",
	APCMPEQB:         "pcmpeqb",
	APCMPEQD:         "pcmpeqd",
	APCMPEQQ:         "pcmpeqq",
	APCMPEQW:         "pcmpeqw",
	APCMPGTB:         "pcmpgtb",
	APCMPGTD:         "pcmpgtd",
	APCMPGTQ:         "pcmpgtq",
	APCMPGTW:         "pcmpgtw",
	APDEP:            "pdep",
	APEXT:            "pext",
	APEXTRB:          "pextrb",
	APEXTRD:          "pextrd",
	APEXTRQ:          "pextrq",
	APEXTRW:          "pextrw",
	APHADDD:          "phaddd",
	APHADDSW:         "phaddsw",
	APHADDW:          "phaddw",
	APHMINPOSUW:      "phminposuw",
	APHSUBD:          "phsubd",
	APHSUBSW:         "phsubsw",
	APHSUBW:          "phsubw",
	APINSRB:          "pinsrb",
	APINSRD:          "pinsrd",
	APINSRQ:          "pinsrq",
	APINSRW:          "pinsrw",
	APMADDUBSW:       "pmaddubsw",
	APMADDWD:         "pmaddwd",
	APMAXSB:          "pmaxsb",
	APMAXSD:          "pmaxsd",
	APMAXSW:          "pmaxsw",
	APMAXUB:          "pmaxub",
	APMAXUD:          "pmaxud",
	APMAXUW:          "pmaxuw",
	APMINSB:          "pminsb",
	APMINSD:          "pminsd",
	APMINSW:          "pminsw",
	APMINUB:          "pminub",
	APMINUD:          "pminud",
	APMINUW:          "pminuw",
	APMOVMSKB:        "pmovmskb",
	APMOVSXBD:        "pmovsxbd",
	APMOVSXBQ:        "pmovsxbq",
	APMOVSXBW:        "pmovsxbw",
	APMOVSXDQ:        "pmovsxdq",
	APMOVSXWD:        "pmovsxwd",
	APMOVSXWQ:        "pmovsxwq",
	APMOVZXBD:        "pmovzxbd",
	APMOVZXBQ:        "pmovzxbq",
	APMOVZXBW:        "pmovzxbw",
	APMOVZXDQ:        "pmovzxdq",
	APMOVZXWD:        "pmovzxwd",
	APMOVZXWQ:        "pmovzxwq",
	APMULDQ:          "pmuldq",
	APMULHRSW:        "pmulhrsw",
	APMULHUW:         "pmulhuw",
	APMULHW:          "pmulhw",
	APMULLD:          "pmulld",
	APMULLW:          "pmullw",
	APMULUDQ:         "pmuludq",
	APOPCNT:          "popcnt",
	APOR:             "por",
	APSADBW:          "psadbw",
	APSHUFB:          "pshufb",
	APSHUFD:          "pshufd",
	APSHUFHW:         "pshufhw",
	APSHUFLW:         "pshuflw",
	APSIGNB:          "psignb",
	APSIGND:          "psignd",
	APSIGNW:          "psignw",
	APSLLD:           "pslld",
	APSLLDQ:          "pslldq",
	APSLLQ:           "psllq",
	APSLLW:           "psllw",
	APSRAD:           "psrad",
	APSRAW:           "psraw",
	APSRLD:           "psrld",
	APSRLDQ:          "psrldq",
	APSRLQ:           "psrlq",
	APSRLW:           "psrlw",
	APSUBB:           "psubb",
	APSUBD:           "psubd",
	APSUBQ:           "psubq",
	APSUBSB:          "psubsb",
	APSUBSW:          "psubsw",
	APSUBUSB:         "psubusb",
	APSUBUSW:         "psubusw",
	APSUBW:           "psubw",
	APTEST:           "ptest",
	APUNPCKHBW:       "punpckhbw",
	APUNPCKHDQ:       "punpckhdq",
	APUNPCKHQDQ:      "punpckhqdq",
	APUNPCKHWD:       "punpckhwd",
	APUNPCKLBW:       "punpcklbw",
	APUNPCKLDQ:       "punpckldq",
	APUNPCKLQDQ:      "punpcklqdq",
	APUNPCKLWD:       "punpcklwd",
	APXOR:            "pxor",
	ARCPPS:           "rcpps",
	ARCPSS:           "rcpss",
	AROUNDPD:         "roundpd",
	AROUNDPS:         "roundps",
	AROUNDSD:         "roundsd",
	AROUNDSS:         "roundss",
	ARSQRTPS:         "rsqrtps",
	ARSQRTSS:         "rsqrtss",
	ASHUFPD:          "shufpd",
	ASHUFPS:          "shufps",
	ASQRTPD:          "sqrtpd",
	ASQRTPS:          "sqrtps",
	ASQRTSD:          "sqrtsd",
	ASQRTSS:          "sqrtss",
	ASUBPD:           "subpd",
	ASUBPS:           "subps",
	ASUBSD:           "subsd",
	ASUBSS:           "subss",
	ATZCNT:           "tzcnt",
	AUCOMISD:         "ucomisd",
	AUCOMISS:         "ucomiss",
	AUNPCKHPD:        "unpckhpd",
	AUNPCKHPS:        "unpckhps",
	AUNPCKLPD:        "unpcklpd",
	AUNPCKLPS:        "unpcklps",
	AVBLENDVPD:       "vblendvpd",
	AVBLENDVPS:       "vblendvps",
	AVBROADCASTF128:  "vbroadcastf128",
	AVBROADCASTI128:  "vbroadcasti128",
	AVBROADCASTSD:    "vbroadcastsd",
	AVBROADCASTSS:    "vbroadcastss",
	AVEXTRACTF128:    "vextractf128",
	AVEXTRACTI128:    "vextracti128",
	AVFMADD213PD:     "vfmadd213pd",
	AVFMADD213PS:     "vfmadd213ps",
	AVFMADD213SD:     "vfmadd213sd",
	AVFMADD213SS:     "vfmadd213ss",
	AVFMADDSUB213PD:  "vfmaddsub213pd",
	AVFMADDSUB213PS:  "vfmaddsub213ps",
	AVFMSUB213PD:     "vfmsub213pd",
	AVFMSUB213PS:     "vfmsub213ps",
	AVFMSUB213SD:     "vfmsub213sd",
	AVFMSUB213SS:     "vfmsub213ss",
	AVFMSUBADD213PD:  "vfmsubadd213pd",
	AVFMSUBADD213PS:  "vfmsubadd213ps",
	AVFNMADD213PD:    "vfnmadd213pd",
	AVFNMADD213PS:    "vfnmadd213ps",
	AVFNMADD213SD:    "vfnmadd213sd",
	AVFNMADD213SS:    "vfnmadd213ss",
	AVFNMSUB213PD:    "vfnmsub213pd",
	AVFNMSUB213PS:    "vfnmsub213ps",
	AVGATHERDPD:      "vgatherdpd",
	AVGATHERDPS:      "vgatherdps",
	AVINSERTF128:     "vinsertf128",
	AVINSERTI128:     "vinserti128",
	AVMASKMOVPD:      "vmaskmovpd",
	AVMASKMOVPS:      "vmaskmovps",
	AVPBLENDD:        "vpblendd",
	AVPBLENDVB:       "vpblendvb",
	AVPBROADCASTB:    "vpbroadcastb",
	AVPBROADCASTD:    "vpbroadcastd",
	AVPBROADCASTQ:    "vpbroadcastq",
	AVPBROADCASTW:    "vpbroadcastw",
	AVPERM2F128:      "vperm2f128",
	AVPERM2I128:      "vperm2i128",
	AVPERMD:          "vpermd",
	AVPERMILPD:       "vpermilpd",
	AVPERMILPDVAR:    "vpermilpd",
	AVPERMILPS:       "vpermilps",
	AVPERMILPSVAR:    "vpermilps",
	AVPERMPD:         "vpermpd",
	AVPERMPS:         "vpermps",
	AVPERMQ:          "vpermq",
	AVPGATHERDD:      "vpgatherdd",
	AVPGATHERDQ:      "vpgatherdq",
	AVPMASKMOVD:      "vpmaskmovd",
	AVPMASKMOVQ:      "vpmaskmovq",
	AVPSLLVD:         "vpsllvd",
	AVPSLLVQ:         "vpsllvq",
	AVPSRAVD:         "vpsravd",
	AVPSRLVD:         "vpsrlvd",
	AVPSRLVQ:         "vpsrlvq",
	AVTESTPD:         "vtestpd",
	AVTESTPS:         "vtestps",
	AXORPD:           "xorpd",
	AXORPS:           "xorps",
}
