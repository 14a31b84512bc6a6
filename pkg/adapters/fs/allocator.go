package fs

import (
	"math"
	"os"

	"github.com/aretw0/quire/pkg/naming"
)

// NextNumber returns one more than the highest ordering key found among the
// entries of dir, or 1 when there is none or dir cannot be read.
//
// Entries without a key, including legacy timestamp files, are ignored so
// that they cannot push new numbers up before they are migrated.
func NextNumber(dir string) uint64 {
	entries, err := os.ReadDir(dir)
	if err != nil && len(entries) == 0 {
		return 1
	}

	var highest uint64
	for _, e := range entries {
		if key, ok := naming.ParseKey(naming.Stem(e.Name())); ok && key > highest {
			highest = key
		}
	}
	if highest == math.MaxUint64 {
		return highest
	}
	return highest + 1
}
