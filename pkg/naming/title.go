package naming

import (
	"io"
	"os"
	"strings"
)

// UntitledTitle is the title of a note without a level-one heading.
const UntitledTitle = "Untitled"

// TitlePeekBytes bounds how much of a file ReadTitle looks at.
const TitlePeekBytes = 4096

const headingPrefix = "# "

// ParseTitle returns the text of the first line starting with "# ".
// Deeper headings ("## ...") do not count.
func ParseTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, headingPrefix) {
			return strings.TrimPrefix(line, headingPrefix)
		}
	}
	return UntitledTitle
}

// ReadTitle extracts the title from the first TitlePeekBytes of a file.
// A heading cut by the limit is returned truncated. Unreadable files are
// reported as untitled.
func ReadTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return UntitledTitle
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, TitlePeekBytes))
	if err != nil {
		return UntitledTitle
	}
	// The limit may split a multi-byte rune.
	return ParseTitle(strings.ToValidUTF8(string(data), ""))
}
