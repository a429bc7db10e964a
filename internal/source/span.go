package source

import (
	"fmt"
)

// Span is a half-open byte range into the source text.
type Span struct {
	Start uint32 // inclusive, in bytes
	End   uint32 // exclusive, in bytes
}

func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Text slices the span out of the given source text.
// The span must lie within the text.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}
