package substrate

import "github.com/pbnjay/memory"

// SystemMemoryInfo mirrors runtime_component.hpp's SystemMemoryInfo: a
// best-effort snapshot of host memory, all zero if the platform query
// failed.
type SystemMemoryInfo struct {
	TotalPhysicalBytes     uint64
	AvailablePhysicalBytes uint64
}

// QuerySystemMemory samples total and free physical memory via
// github.com/pbnjay/memory, which itself degrades to zero values on
// platforms it does not support rather than erroring.
func QuerySystemMemory() SystemMemoryInfo {
	return SystemMemoryInfo{
		TotalPhysicalBytes:     memory.TotalMemory(),
		AvailablePhysicalBytes: memory.FreeMemory(),
	}
}

// ComputeMemoryHeadroomBytes mirrors compute_memory_headroom_bytes: the
// default policy reserves max(2GiB, min(4GiB, available/10)); an explicit
// override is honored but floored at 256MiB to avoid an "OS thrash"
// headroom of zero.
func ComputeMemoryHeadroomBytes(availablePhysicalBytes uint64, overrideMiB uint64, overrideProvided bool) uint64 {
	const mebibyte = 1024 * 1024
	const gibibyte = 1024 * mebibyte

	if availablePhysicalBytes == 0 {
		return 0
	}

	headroom := availablePhysicalBytes / 10
	if headroom > 4*gibibyte {
		headroom = 4 * gibibyte
	}
	if headroom < 2*gibibyte {
		headroom = 2 * gibibyte
	}

	if overrideProvided {
		headroom = overrideMiB * mebibyte
		if headroom < 256*mebibyte {
			headroom = 256 * mebibyte
		}
	}

	if availablePhysicalBytes < headroom {
		headroom = availablePhysicalBytes
	}
	return headroom
}
