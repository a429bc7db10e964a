package source

import (
	"fortio.org/safecast"
)

// File holds one unit of program text together with its logical path and a
// lazily usable line index. The path is only consulted for source-type
// inference and sourcemap naming, never for disk access.
type File struct {
	Path    string
	Content string
	lineIdx []uint32
}

// NewFile wraps in-memory source text. The text is taken as-is: callers that
// read from disk normalize line endings themselves. Texts beyond the uint32
// offset range are rejected upstream; the line index clamps defensively.
func NewFile(path, content string) *File {
	return &File{
		Path:    path,
		Content: content,
		lineIdx: buildLineIndex(content),
	}
}

// End returns the file's end offset.
func (f *File) End() uint32 {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return ^uint32(0)
	}
	return end
}

func buildLineIndex(content string) []uint32 {
	var out []uint32
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				break
			}
			out = append(out, off)
		}
	}
	return out
}

// LineCol is a 0-based line/column position, columns measured in bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// LineColAt converts a byte offset into a 0-based line/column pair.
func (f *File) LineColAt(off uint32) LineCol {
	idx := f.lineIdx
	if len(idx) == 0 {
		return LineCol{Line: 0, Col: off}
	}
	// Greatest idx[i] < off locates the preceding newline.
	lo, hi := 0, len(idx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if idx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := lo // number of newlines before off
	if line == 0 {
		return LineCol{Line: 0, Col: off}
	}
	return LineCol{Line: uint32(line), Col: off - (idx[line-1] + 1)}
}

// Line returns the full text of a 0-based line without its newline.
func (f *File) Line(n uint32) string {
	start := uint32(0)
	if n > 0 {
		if int(n-1) >= len(f.lineIdx) {
			return ""
		}
		start = f.lineIdx[n-1] + 1
	}
	end := uint32(len(f.Content))
	if int(n) < len(f.lineIdx) {
		end = f.lineIdx[n]
	}
	return f.Content[start:end]
}
