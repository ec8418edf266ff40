// SPDX-License-Identifier: MIT

// Package cpu reports the processor capabilities that the numeric kernels
// care about. Detection runs once at package init; the result is read-only.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the capabilities relevant to multiply-accumulate kernels.
type Features struct {
	HasFMA       bool   // fused multiply-add is executed in hardware
	Architecture string // runtime.GOARCH at detection time
}

var detected = detect()

// Detect returns the features probed at init.
// Complexity: O(1).
func Detect() Features { return detected }

// detect maps x/sys/cpu flags onto Features.
// arm64, ppc64x and s390x carry FMA in the base ISA, so the Go runtime
// lowers math.FMA to a single instruction there without a CPUID check.
func detect() Features {
	f := Features{Architecture: runtime.GOARCH}
	switch runtime.GOARCH {
	case "amd64", "386":
		f.HasFMA = cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x":
		f.HasFMA = true
	}

	return f
}
