package codegen

import (
	"encoding/json"
	"sort"
	"strings"
)

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// mapBuilder accumulates generated-to-source position pairs and serializes
// them as a version 3 source map.
type mapBuilder struct {
	source     string
	content    string
	lineStarts []uint32
	segments   []segment
}

type segment struct {
	genLine, genCol  int
	srcLine, srcCol  int
}

func newMapBuilder(sourcePath, content string) *mapBuilder {
	starts := []uint32{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return &mapBuilder{source: sourcePath, content: content, lineStarts: starts}
}

func (m *mapBuilder) add(genLine, genCol int, srcOffset uint32) {
	line := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > srcOffset
	}) - 1
	m.segments = append(m.segments, segment{
		genLine: genLine,
		genCol:  genCol,
		srcLine: line,
		srcCol:  int(srcOffset - m.lineStarts[line]),
	})
}

type sourceMapJSON struct {
	Version        int      `json:"version"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

func (m *mapBuilder) JSON() (string, error) {
	out, err := json.Marshal(sourceMapJSON{
		Version:        3,
		Sources:        []string{m.source},
		SourcesContent: []string{m.content},
		Names:          []string{},
		Mappings:       m.mappings(),
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (m *mapBuilder) mappings() string {
	var sb strings.Builder
	line := 0
	prevGenCol, prevSrcLine, prevSrcCol := 0, 0, 0
	first := true
	for _, seg := range m.segments {
		for line < seg.genLine {
			sb.WriteByte(';')
			line++
			prevGenCol = 0
			first = true
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		writeVLQ(&sb, seg.genCol-prevGenCol)
		writeVLQ(&sb, 0)
		writeVLQ(&sb, seg.srcLine-prevSrcLine)
		writeVLQ(&sb, seg.srcCol-prevSrcCol)
		prevGenCol = seg.genCol
		prevSrcLine = seg.srcLine
		prevSrcCol = seg.srcCol
	}
	return sb.String()
}

func writeVLQ(sb *strings.Builder, value int) {
	v := value << 1
	if value < 0 {
		v = (-value << 1) | 1
	}
	for {
		digit := v & 31
		v >>= 5
		if v != 0 {
			digit |= 32
		}
		sb.WriteByte(base64Chars[digit])
		if v == 0 {
			return
		}
	}
}
