//go:build 386 || amd64

package target

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-hwintrinsic/hwi"
	"github.com/ajroetker/go-hwintrinsic/hwi/xarch"
)

const hostArch = hwi.ArchXArch

// x64Variants pairs each ISA with its 64-bit only nested class.
var x64Variants = map[hwi.ISA]hwi.ISA{
	xarch.BMI1:   xarch.BMI1_X64,
	xarch.BMI2:   xarch.BMI2_X64,
	xarch.LZCNT:  xarch.LZCNT_X64,
	xarch.POPCNT: xarch.POPCNT_X64,
	xarch.SSE:    xarch.SSE_X64,
	xarch.SSE2:   xarch.SSE2_X64,
	xarch.SSE41:  xarch.SSE41_X64,
	xarch.SSE42:  xarch.SSE42_X64,
}

func detectHost() (supported, exact []hwi.ISA, baseline bool) {
	features := []struct {
		isa     hwi.ISA
		present bool
	}{
		{xarch.SSE, true}, // every x86 CPU Go runs on has SSE2
		{xarch.SSE2, true},
		{xarch.SSE3, cpu.X86.HasSSE3},
		{xarch.SSSE3, cpu.X86.HasSSSE3},
		{xarch.SSE41, cpu.X86.HasSSE41},
		{xarch.SSE42, cpu.X86.HasSSE42},
		{xarch.AVX, cpu.X86.HasAVX},
		{xarch.AVX2, cpu.X86.HasAVX2},
		{xarch.AVX512F, cpu.X86.HasAVX512F},
		{xarch.FMA, cpu.X86.HasFMA},
		{xarch.AES, cpu.X86.HasAES},
		{xarch.PCLMULQDQ, cpu.X86.HasPCLMULQDQ},
		{xarch.POPCNT, cpu.X86.HasPOPCNT},
		{xarch.BMI1, cpu.X86.HasBMI1},
		{xarch.BMI2, cpu.X86.HasBMI2},
		// x/sys/cpu does not report ABM; every BMI1 part has lzcnt.
		{xarch.LZCNT, cpu.X86.HasBMI1},
	}
	is64 := runtime.GOARCH == "amd64"
	for _, f := range features {
		if !f.present {
			continue
		}
		supported = append(supported, f.isa)
		if x, ok := x64Variants[f.isa]; ok && is64 {
			supported = append(supported, x)
		}
	}

	// The compiler may assume the x86-64 baseline without checking.
	exact = []hwi.ISA{xarch.SSE, xarch.SSE2}
	if is64 {
		exact = append(exact, xarch.SSE_X64, xarch.SSE2_X64)
	}
	return supported, exact, true
}
