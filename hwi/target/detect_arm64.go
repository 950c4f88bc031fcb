//go:build arm64

package target

import (
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-hwintrinsic/hwi"
	"github.com/ajroetker/go-hwintrinsic/hwi/arm64"
)

const hostArch = hwi.ArchArm64

func detectHost() (supported, exact []hwi.ISA, baseline bool) {
	// ArmBase and AdvSimd are part of ARMv8-A.
	supported = []hwi.ISA{arm64.ArmBase, arm64.ArmBase_Arm64}
	exact = []hwi.ISA{arm64.ArmBase, arm64.ArmBase_Arm64}
	if cpu.ARM64.HasASIMD {
		supported = append(supported, arm64.AdvSimd, arm64.AdvSimd_Arm64)
		exact = append(exact, arm64.AdvSimd, arm64.AdvSimd_Arm64)
	}
	features := []struct {
		isas    []hwi.ISA
		present bool
	}{
		{[]hwi.ISA{arm64.Aes}, cpu.ARM64.HasAES},
		{[]hwi.ISA{arm64.Crc32, arm64.Crc32_Arm64}, cpu.ARM64.HasCRC32},
		{[]hwi.ISA{arm64.Dp}, cpu.ARM64.HasASIMDDP},
		{[]hwi.ISA{arm64.Rdm}, cpu.ARM64.HasASIMDRDM},
		{[]hwi.ISA{arm64.Sha1}, cpu.ARM64.HasSHA1},
		{[]hwi.ISA{arm64.Sha256}, cpu.ARM64.HasSHA2},
		{[]hwi.ISA{arm64.Sve}, cpu.ARM64.HasSVE},
	}
	for _, f := range features {
		if f.present {
			supported = append(supported, f.isas...)
		}
	}
	return supported, exact, cpu.ARM64.HasASIMD
}
