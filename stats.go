package bucketmap

type Stats struct {
	Size     int
	Capacity int
	Load     float64

	// Number of slots heading a non-empty chain.
	UsedSlots    int
	LongestChain int
}
