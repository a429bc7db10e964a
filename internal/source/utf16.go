package source

import (
	"sort"
	"unicode/utf8"
)

// Utf8ToUtf16 translates byte offsets into UTF-16 code-unit offsets for one
// source text. Internally every span is byte-indexed; external consumers
// count 16-bit code units, so a 4-byte supplementary-plane character must
// shrink to 2 units without desynchronizing later offsets.
//
// The table is built in a single scan. For ASCII-only text it stays empty and
// translation is the identity. Translation is NOT idempotent: callers apply
// it exactly once per span per run.
type Utf8ToUtf16 struct {
	cuts []offsetCut
}

// offsetCut records that byte offsets >= Byte shrink by Delta code units.
type offsetCut struct {
	Byte  uint32
	Delta uint32
}

// NewUtf8ToUtf16 scans the text once and builds the offset table.
func NewUtf8ToUtf16(text string) *Utf8ToUtf16 {
	conv := &Utf8ToUtf16{}
	delta := uint32(0)
	for i := 0; i < len(text); {
		c := text[i]
		if c < utf8.RuneSelf {
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		units := uint32(1)
		if size == 4 {
			units = 2 // surrogate pair
		}
		delta += uint32(size) - units
		conv.cuts = append(conv.cuts, offsetCut{Byte: uint32(i + size), Delta: delta})
		i += size
	}
	return conv
}

// IsIdentity reports whether translation would leave every offset unchanged.
func (c *Utf8ToUtf16) IsIdentity() bool {
	return len(c.cuts) == 0
}

// Offset translates one byte offset to a UTF-16 code-unit offset. Offsets
// falling on char boundaries (the only offsets spans legitimately hold)
// translate exactly.
func (c *Utf8ToUtf16) Offset(byteOff uint32) uint32 {
	if len(c.cuts) == 0 {
		return byteOff
	}
	i := sort.Search(len(c.cuts), func(i int) bool {
		return c.cuts[i].Byte > byteOff
	})
	if i == 0 {
		return byteOff
	}
	return byteOff - c.cuts[i-1].Delta
}

// ConvertSpan rewrites one span in place.
func (c *Utf8ToUtf16) ConvertSpan(s *Span) {
	if len(c.cuts) == 0 {
		return
	}
	s.Start = c.Offset(s.Start)
	s.End = c.Offset(s.End)
}

// ConvertSpans rewrites an ad hoc list of spans in place.
func (c *Utf8ToUtf16) ConvertSpans(spans []*Span) {
	for _, s := range spans {
		c.ConvertSpan(s)
	}
}
