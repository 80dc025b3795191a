/*
Package bucketmap provides a fixed-capacity hash map with string keys.

The map is an array of slots, where every slot heads a singly-linked chain
of the entries whose keys hash to it. The capacity passed to New is both
the number of slots and the maximum number of keys the map can hold: the
map is never resized or rehashed.

Basic usage:

	import "github.com/homier/bucketmap"

	m, err := bucketmap.New[int](1024)
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Set("foo", 42); errors.Is(err, bucketmap.ErrTableFull) {
		// make room with m.Delete first
	}

	v, err := m.Get("foo")
	if err == nil {
		fmt.Println("Value:", v)
	}

	fmt.Println("Load:", m.Load())

Features:

  - All memory is allocated by New, chains link entries by index in a
    preallocated arena
  - Updating a present key always succeeds, even when the map is full
  - Deletion unlinks the entry from its chain and recycles its cell
  - Pluggable hash function, xxhash by default
  - Set, a string set over the same table

Neither Map nor Set is safe for concurrent use.
*/
package bucketmap
