// Package fileurl converts filesystem paths to file:// URLs and back.
//
// Conversion works per path segment: each segment is percent-encoded
// against a fixed reserved byte set derived from RFC 3986 (minus ':',
// which stays literal so Windows drive designators survive), and the
// encoded segments are joined with '/' after the file:// scheme. Decoding
// splits on both '/' and '\', so URLs assembled under either convention
// come apart.
//
// Both path conventions are exported as Platform values, which makes
// Windows-style paths convertible on POSIX systems and vice versa;
// Default returns the convention of the build target.
package fileurl

import (
	"regexp"
	"strings"
)

const fileScheme = "file://"

// urlSeparators splits URLs on both separator bytes, tolerating URLs of
// mixed origin. Compiled once, read-only afterwards.
var urlSeparators = regexp.MustCompile(`[/\\]`)

// PathToFileURL converts a path in the build target's convention to a
// file:// URL. Relative paths are rooted at '/': file URLs are always
// fully qualified.
func PathToFileURL(path string) (string, error) {
	return Default().PathToFileURL(path)
}

// FileURLToPath converts a file:// URL to a path in the build target's
// convention.
func FileURLToPath(url string) (string, error) {
	return Default().FileURLToPath(url)
}

// encodeSegment encodes one path component. "." and ".." are path syntax,
// not names, and pass through untouched.
func encodeSegment(segment string) string {
	if segment == "." || segment == ".." {
		return segment
	}
	return EncodeComponent([]byte(segment))
}

// splitFileURL breaks a URL into decoded segments. The bool result reports
// an absolute reading: the "file:" scheme token always forces one, and a
// leading separator on scheme-less input keeps one.
func splitFileURL(url string) ([][]byte, bool) {
	pieces := urlSeparators.Split(url, -1)
	absolute := false
	if len(pieces) > 0 && pieces[0] == "file:" {
		pieces = pieces[1:]
		absolute = true
	} else if strings.HasPrefix(url, "/") || strings.HasPrefix(url, `\`) {
		absolute = true
	}

	segments := make([][]byte, 0, len(pieces))
	for _, piece := range pieces {
		// Empty pieces come from the scheme's "//", the root, and any
		// doubled separator; none of them carries a segment.
		if piece == "" {
			continue
		}
		segments = append(segments, DecodeComponent(piece))
	}
	return segments, absolute
}
