package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"
)

func TestDetect_ArchitectureMatchesRuntime(t *testing.T) {
	f := Detect()
	require.Equal(t, runtime.GOARCH, f.Architecture)
	require.Equal(t, detected, f, "Detect must return the init-time snapshot")
}

func TestDetect_BaseISAFMA(t *testing.T) {
	switch runtime.GOARCH {
	case "arm64", "ppc64", "ppc64le", "s390x":
		require.True(t, Detect().HasFMA)
	default:
		t.Skipf("FMA depends on CPUID on %s", runtime.GOARCH)
	}
}

func TestDetect_X86FollowsCPUID(t *testing.T) {
	switch runtime.GOARCH {
	case "amd64", "386":
		require.Equal(t, cpu.X86.HasFMA, Detect().HasFMA)
	default:
		t.Skipf("no CPUID on %s", runtime.GOARCH)
	}
}
