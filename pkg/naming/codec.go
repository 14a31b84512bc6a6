package naming

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Ext is the extension of every note file.
const Ext = ".md"

// legacyMinLen is the shortest stem accepted as a millisecond Unix timestamp.
const legacyMinLen = 10

// ParseKey extracts the ordering key from a stem such as "42-my-note".
// The part before the first separator must be a base-10 uint64.
func ParseKey(stem string) (uint64, bool) {
	prefix, _, found := strings.Cut(stem, string(Separator))
	if !found {
		return 0, false
	}
	n, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatStem builds "{number}-{slug}".
func FormatStem(number uint64, slug string) string {
	return fmt.Sprintf("%d%c%s", number, Separator, slug)
}

// FormatFilename builds "{number}-{slug}.md".
func FormatFilename(number uint64, slug string) string {
	return FormatStem(number, slug) + Ext
}

// SlugFromStem returns everything after the first separator of a stem,
// or Untitled when nothing follows it.
func SlugFromStem(stem string) string {
	_, rest, _ := strings.Cut(stem, string(Separator))
	if rest == "" {
		return Untitled
	}
	return rest
}

// IsLegacyStem reports whether a stem uses the old naming scheme: a bare
// millisecond timestamp made of ASCII digits only.
func IsLegacyStem(stem string) bool {
	if len(stem) < legacyMinLen {
		return false
	}
	for i := 0; i < len(stem); i++ {
		if stem[i] < '0' || stem[i] > '9' {
			return false
		}
	}
	return true
}

// IsNote reports whether a file name carries the note extension.
func IsNote(name string) bool {
	return filepath.Ext(name) == Ext
}

// Stem strips the directory and the extension from a path.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
