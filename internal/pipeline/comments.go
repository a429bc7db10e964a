package pipeline

import (
	"loupe/internal/ast"
	"loupe/internal/source"
)

// extractComments maps raw lexical comments to output records: kind, content
// text verbatim (delimiters excluded), and the full span translated to code
// units. Source order is preserved.
func extractComments(program *ast.Program, conv *source.Utf8ToUtf16) []CommentRecord {
	if len(program.Comments) == 0 {
		return nil
	}
	out := make([]CommentRecord, 0, len(program.Comments))
	for _, c := range program.Comments {
		out = append(out, CommentRecord{
			Kind:  c.Kind.String(),
			Text:  c.ContentSpan.Text(program.SourceText),
			Start: conv.Offset(c.Span.Start),
			End:   conv.Offset(c.Span.End),
		})
	}
	return out
}
