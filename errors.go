package fileurl

import (
	"errors"
	"fmt"
)

// ErrNotRepresentable reports a path segment whose bytes cannot form valid
// text under a strict-text path convention. Check for it with errors.Is.
var ErrNotRepresentable = errors.New("segment bytes are not representable as text")

// SegmentError pins a conversion failure to the segment that caused it.
type SegmentError struct {
	Op      string // "encode" for path->URL, "decode" for URL->path
	Segment string // the offending segment's raw bytes
	Index   int    // zero-based position among the path's segments
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("%s segment %d (%q): %v", e.Op, e.Index, e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }
