package fileurl

import (
	"strings"
	"unicode/utf8"
)

// Platform is one path convention. Exactly two implementations exist,
// Posix and Windows; the unexported method seals the interface so callers
// choose a convention but cannot define new ones.
type Platform interface {
	// Name reports the convention's name, "posix" or "windows".
	Name() string

	// PathToFileURL converts a filesystem path in this convention to a
	// file:// URL.
	PathToFileURL(path string) (string, error)

	// LossyPathToFileURL is PathToFileURL with invalid text replaced by
	// U+FFFD instead of failing. Only the strict-text convention can
	// reject a path, so under the byte-transparent one this is identical
	// to PathToFileURL.
	LossyPathToFileURL(path string) string

	// FileURLToPath converts a file:// URL to a filesystem path in this
	// convention.
	FileURLToPath(url string) (string, error)

	// LossyFileURLToPath is FileURLToPath with invalid text replaced by
	// U+FFFD instead of failing.
	LossyFileURLToPath(url string) string

	sealed()
}

var (
	// Posix is the byte-transparent convention: '/'-separated paths whose
	// segments may be arbitrary bytes. Conversions never fail.
	Posix Platform = posixPlatform{}

	// Windows is the strict-text convention: '\'- or '/'-separated paths
	// with an optional drive-letter prefix, whose segments must be valid
	// UTF-8.
	Windows Platform = windowsPlatform{}
)

type posixPlatform struct{}

func (posixPlatform) sealed()      {}
func (posixPlatform) Name() string { return "posix" }

func (p posixPlatform) PathToFileURL(path string) (string, error) {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	encoded := make([]string, len(segments))
	for i, segment := range segments {
		encoded[i] = encodeSegment(segment)
	}
	return fileScheme + "/" + strings.Join(encoded, "/"), nil
}

func (p posixPlatform) LossyPathToFileURL(path string) string {
	url, _ := p.PathToFileURL(path)
	return url
}

func (p posixPlatform) FileURLToPath(url string) (string, error) {
	segments, absolute := splitFileURL(url)
	var b strings.Builder
	for i, segment := range segments {
		if i > 0 || absolute {
			b.WriteByte('/')
		}
		b.Write(segment)
	}
	if b.Len() == 0 && absolute {
		return "/", nil
	}
	return b.String(), nil
}

func (p posixPlatform) LossyFileURLToPath(url string) string {
	path, _ := p.FileURLToPath(url)
	return path
}

type windowsPlatform struct{}

func (windowsPlatform) sealed()      {}
func (windowsPlatform) Name() string { return "windows" }

func (w windowsPlatform) PathToFileURL(path string) (string, error) {
	return w.toFileURL(path, false)
}

func (w windowsPlatform) LossyPathToFileURL(path string) string {
	url, _ := w.toFileURL(path, true)
	return url
}

func (windowsPlatform) toFileURL(path string, lossy bool) (string, error) {
	prefix, rest := splitDrive(path)
	segments := strings.FieldsFunc(rest, func(r rune) bool { return r == '/' || r == '\\' })
	encoded := make([]string, len(segments))
	for i, segment := range segments {
		if !utf8.ValidString(segment) {
			if !lossy {
				return "", &SegmentError{Op: "encode", Segment: segment, Index: i, Err: ErrNotRepresentable}
			}
			segment = strings.ToValidUTF8(segment, "�")
		}
		encoded[i] = encodeSegment(segment)
	}
	joined := strings.Join(encoded, "/")
	if prefix != "" {
		return fileScheme + "/" + prefix + "/" + joined, nil
	}
	return fileScheme + "/" + joined, nil
}

func (w windowsPlatform) FileURLToPath(url string) (string, error) {
	return w.toPath(url, false)
}

func (w windowsPlatform) LossyFileURLToPath(url string) string {
	path, _ := w.toPath(url, true)
	return path
}

func (windowsPlatform) toPath(url string, lossy bool) (string, error) {
	segments, absolute := splitFileURL(url)
	parts := make([]string, len(segments))
	for i, segment := range segments {
		if !utf8.Valid(segment) {
			if !lossy {
				return "", &SegmentError{Op: "decode", Segment: string(segment), Index: i, Err: ErrNotRepresentable}
			}
			segment = []byte(strings.ToValidUTF8(string(segment), "�"))
		}
		parts[i] = string(segment)
	}

	if len(parts) > 0 && isDriveToken(parts[0]) {
		// The drive designator re-anchors the path; no separator before it.
		if len(parts) == 1 {
			return parts[0] + `\`, nil
		}
		return parts[0] + `\` + strings.Join(parts[1:], `\`), nil
	}

	joined := strings.Join(parts, `\`)
	if absolute {
		return `\` + joined, nil
	}
	return joined, nil
}

// splitDrive separates a leading drive designator ("C:") from the rest of
// the path. Only the single-letter-plus-colon form is a volume prefix;
// anything else is an ordinary first segment.
func splitDrive(path string) (prefix, rest string) {
	if len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':' {
		return path[:2], path[2:]
	}
	return "", path
}

// isDriveToken reports whether a decoded segment is exactly a drive
// designator.
func isDriveToken(segment string) bool {
	return len(segment) == 2 && isDriveLetter(segment[0]) && segment[1] == ':'
}

func isDriveLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
