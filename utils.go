package bucketmap

import (
	"math"
	"unsafe"
)

// Estimates capacity (number of keys) from the given memory size in bytes.
// Every key costs one arena entry and one slot head. Memory referenced by
// the keys and values themselves is not accounted for.
func CapacityFromSize[V any](size uintptr) int {
	perKey := unsafe.Sizeof(entry[V]{}) + unsafe.Sizeof(int32(0))

	return int(min(size/perKey, math.MaxInt32))
}
