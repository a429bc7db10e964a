package source_test

import (
	"testing"

	"loupe/internal/source"
)

func TestSourceTypeFromPath(t *testing.T) {
	cases := []struct {
		path       string
		typescript bool
		jsx        bool
		script     bool
		definition bool
	}{
		{"app.ts", true, false, false, false},
		{"app.mts", true, false, false, false},
		{"app.cts", true, false, true, false},
		{"app.tsx", true, true, false, false},
		{"app.js", false, true, false, false},
		{"app.jsx", false, true, false, false},
		{"app.mjs", false, true, false, false},
		{"app.cjs", false, true, true, false},
		{"types.d.ts", true, false, false, true},
		{"types.d.mts", true, false, false, true},
		{"types.d.cts", true, false, false, true},
		// Unknown extensions fall back to a TSX module.
		{"weird.rs", true, true, false, false},
		{"noext", true, true, false, false},
	}
	for _, tc := range cases {
		st := source.SourceTypeFromPath(tc.path)
		if st.IsTypeScript() != tc.typescript {
			t.Errorf("%s: IsTypeScript = %v, want %v", tc.path, st.IsTypeScript(), tc.typescript)
		}
		if st.JSX != tc.jsx {
			t.Errorf("%s: JSX = %v, want %v", tc.path, st.JSX, tc.jsx)
		}
		if got := st.Kind == source.KindScript; got != tc.script {
			t.Errorf("%s: script = %v, want %v", tc.path, got, tc.script)
		}
		if st.IsDefinition() != tc.definition {
			t.Errorf("%s: IsDefinition = %v, want %v", tc.path, st.IsDefinition(), tc.definition)
		}
	}
}

func TestSourceTypeOverrides(t *testing.T) {
	st := source.SourceTypeFromPath("app.ts")
	if st.WithScript().Kind != source.KindScript {
		t.Error("WithScript must force the script goal")
	}
	if st.WithScript().WithModule().Kind != source.KindModule {
		t.Error("WithModule must force the module goal")
	}
}

func TestFileLineColAt(t *testing.T) {
	f := source.NewFile("t.ts", "ab\ncd\n\nef")
	cases := []struct {
		off       uint32
		line, col uint32
	}{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
		{8, 3, 1},
	}
	for _, tc := range cases {
		pos := f.LineColAt(tc.off)
		if pos.Line != tc.line || pos.Col != tc.col {
			t.Errorf("LineColAt(%d) = %d:%d, want %d:%d", tc.off, pos.Line, pos.Col, tc.line, tc.col)
		}
	}
	if got := f.Line(1); got != "cd" {
		t.Errorf("Line(1) = %q, want %q", got, "cd")
	}
	if got := f.Line(2); got != "" {
		t.Errorf("Line(2) = %q, want empty", got)
	}
}
