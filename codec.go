package fileurl

const upperhex = "0123456789ABCDEF"

// reserved marks every byte value that must be percent-encoded inside a
// path segment. It is built once at package init and never mutated.
//
// The set is the complement of the RFC 3986 "unreserved" characters
// (ALPHA / DIGIT / "-" / "." / "_" / "~"), so it covers ASCII controls,
// space, '%', all reserved punctuation and every non-ASCII byte. The one
// exception is ':', which stays literal so Windows drive designators like
// "C:" survive encoding.
var reserved = makeReservedSet()

func makeReservedSet() [256]bool {
	var set [256]bool
	for i := range set {
		set[i] = true
	}
	for b := 'a'; b <= 'z'; b++ {
		set[b] = false
	}
	for b := 'A'; b <= 'Z'; b++ {
		set[b] = false
	}
	for b := '0'; b <= '9'; b++ {
		set[b] = false
	}
	for _, b := range []byte("-._~") {
		set[b] = false
	}
	set[':'] = false
	return set
}

// EncodeComponent percent-encodes the raw bytes of a single path segment.
// Reserved bytes become "%XX" with uppercase hex digits; unreserved bytes
// pass through unchanged. Every byte sequence has a defined encoding, so
// there is nothing to fail on.
//
// Note that '%' itself is reserved: encoding operates on raw bytes, not on
// already-encoded text, so feeding a percent-encoded string back in will
// re-escape its '%' characters.
func EncodeComponent(component []byte) string {
	escapes := 0
	for _, b := range component {
		if reserved[b] {
			escapes++
		}
	}
	if escapes == 0 {
		return string(component)
	}

	buf := make([]byte, 0, len(component)+2*escapes)
	for _, b := range component {
		if reserved[b] {
			buf = append(buf, '%', upperhex[b>>4], upperhex[b&0xF])
		} else {
			buf = append(buf, b)
		}
	}
	return string(buf)
}

// DecodeComponent reverses EncodeComponent for a single segment. Each
// well-formed "%XX" triplet decodes to its byte value; hex digits may be
// either case. A '%' that is not followed by two hex digits is passed
// through literally rather than rejected, so decoding never fails.
//
// The result is raw bytes: on byte-transparent platforms it may not be
// valid text, and interpreting it as such is the caller's decision.
func DecodeComponent(component string) []byte {
	buf := make([]byte, 0, len(component))
	for i := 0; i < len(component); i++ {
		c := component[i]
		if c == '%' && i+2 < len(component) && ishex(component[i+1]) && ishex(component[i+2]) {
			buf = append(buf, unhex(component[i+1])<<4|unhex(component[i+2]))
			i += 2
			continue
		}
		buf = append(buf, c)
	}
	return buf
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
