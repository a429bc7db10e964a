package token

import (
	"loupe/internal/source"
)

// CommentKind distinguishes the two lexical comment forms.
type CommentKind uint8

const (
	CommentLine CommentKind = iota
	CommentBlock
)

func (k CommentKind) String() string {
	if k == CommentBlock {
		return "Block"
	}
	return "Line"
}

// Comment is a raw lexical comment. Span covers the delimiters; ContentSpan
// excludes them.
type Comment struct {
	Kind        CommentKind
	Span        source.Span
	ContentSpan source.Span
}
