package diag_test

import (
	"testing"

	"loupe/internal/diag"
	"loupe/internal/source"
)

func TestFlattenNoLabels(t *testing.T) {
	var sink diag.Sink
	sink.Push(diag.Error("invalid target \"es7\""))

	flats := sink.Flatten()
	if len(flats) != 1 {
		t.Fatalf("got %d records, want 1", len(flats))
	}
	f := flats[0]
	if f.Start != 0 || f.End != 0 {
		t.Errorf("label-less diagnostic must flatten to [0,0), got [%d,%d)", f.Start, f.End)
	}
	if f.Severity != "Error" {
		t.Errorf("Severity = %q, want Error", f.Severity)
	}
}

func TestFlattenMultipleLabels(t *testing.T) {
	var sink diag.Sink
	sink.Push(diag.Errorf("Identifier '%s' has already been declared", "x").
		WithLabel(source.NewSpan(4, 5), "'x' is first declared here").
		WithLabel(source.NewSpan(13, 14), "it cannot be redeclared here"))
	sink.Push(diag.Warning("eslint(no-debugger): `debugger` statement is not allowed").
		WithSpan(source.NewSpan(20, 29)))

	flats := sink.Flatten()
	if len(flats) != 3 {
		t.Fatalf("got %d records, want 3 (one per label)", len(flats))
	}
	if flats[0].Start != 4 || flats[0].End != 5 {
		t.Errorf("first label span = [%d,%d), want [4,5)", flats[0].Start, flats[0].End)
	}
	if flats[1].Start != 13 || flats[1].End != 14 {
		t.Errorf("second label span = [%d,%d), want [13,14)", flats[1].Start, flats[1].End)
	}
	// Both records of a two-label diagnostic carry the parent message.
	if flats[0].Message != flats[1].Message {
		t.Error("records of one diagnostic must share the message")
	}
	if flats[2].Severity != "Warning" {
		t.Errorf("Severity = %q, want Warning", flats[2].Severity)
	}
}

func TestSinkReset(t *testing.T) {
	var sink diag.Sink
	sink.Push(diag.Error("boom"))
	if sink.Empty() {
		t.Fatal("sink should hold one diagnostic")
	}
	sink.Reset()
	if !sink.Empty() || sink.Len() != 0 {
		t.Error("Reset must drop all diagnostics")
	}
	if got := sink.Flatten(); len(got) != 0 {
		t.Errorf("Flatten after Reset = %d records, want 0", len(got))
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	var sink diag.Sink
	sink.Append([]diag.Diagnostic{diag.Error("first"), diag.Warning("second")})
	sink.Push(diag.Error("third"))

	items := sink.Items()
	want := []string{"first", "second", "third"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i].Message != w {
			t.Errorf("items[%d].Message = %q, want %q", i, items[i].Message, w)
		}
	}
}
