package naming

import (
	"strings"
	"unicode"
)

// Separator joins words inside a slug and splits the ordering key from the slug in a stem.
const Separator = '-'

// Untitled is the slug used when a title yields nothing usable.
const Untitled = "untitled"

// Slugify lower-cases text and replaces every rune that is not a letter or a
// number with a single separator. Combining marks are kept when they follow a
// kept rune, so vowel signs and viramas stay attached to their word. The result
// never starts or ends with a separator and never contains two in a row.
// Slugify is idempotent.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSep := false
	for _, r := range strings.ToLower(text) {
		if wordRune(r) || (!lastSep && b.Len() > 0 && unicode.Is(unicode.Mark, r)) {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep && b.Len() > 0 {
			b.WriteRune(Separator)
		}
		lastSep = true
	}

	return strings.TrimRight(b.String(), string(Separator))
}

func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// SlugOrUntitled derives the slug for a note title, falling back to Untitled
// for empty titles, the placeholder title and fully symbolic input.
func SlugOrUntitled(title string) string {
	if title == "" || title == UntitledTitle {
		return Untitled
	}
	if slug := Slugify(title); slug != "" {
		return slug
	}
	return Untitled
}
