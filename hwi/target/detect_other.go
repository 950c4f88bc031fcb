//go:build !386 && !amd64 && !arm64

package target

import "github.com/ajroetker/go-hwintrinsic/hwi"

const hostArch = hwi.ArchUnknown

func detectHost() (supported, exact []hwi.ISA, baseline bool) {
	return nil, nil, false
}
