package source_test

import (
	"testing"

	"loupe/internal/source"
)

func TestUtf8ToUtf16Identity(t *testing.T) {
	conv := source.NewUtf8ToUtf16("const x = 1;\nlet y = x + 2;\n")
	if !conv.IsIdentity() {
		t.Fatal("ASCII text must build an identity converter")
	}
	for _, off := range []uint32{0, 5, 27} {
		if got := conv.Offset(off); got != off {
			t.Errorf("Offset(%d) = %d, want identity", off, got)
		}
	}
}

func TestUtf8ToUtf16SupplementaryPlane(t *testing.T) {
	// "a" (1 byte), U+1F600 (4 bytes, 2 code units), "b".
	text := "a\U0001F600b"
	conv := source.NewUtf8ToUtf16(text)
	if conv.IsIdentity() {
		t.Fatal("non-ASCII text must not be identity")
	}

	cases := []struct {
		byteOff uint32
		want    uint32
	}{
		{0, 0},
		{1, 1}, // start of the emoji
		{5, 3}, // "b": 4 bytes collapse to 2 units
		{6, 4}, // end of text
	}
	for _, tc := range cases {
		if got := conv.Offset(tc.byteOff); got != tc.want {
			t.Errorf("Offset(%d) = %d, want %d", tc.byteOff, got, tc.want)
		}
	}
}

func TestUtf8ToUtf16TwoByteChars(t *testing.T) {
	// "é" is 2 bytes but a single code unit: offsets after it shrink by 1.
	text := "é=1"
	conv := source.NewUtf8ToUtf16(text)
	if got := conv.Offset(2); got != 1 {
		t.Errorf("Offset(2) = %d, want 1", got)
	}
	if got := conv.Offset(4); got != 3 {
		t.Errorf("Offset(4) = %d, want 3", got)
	}
}

func TestConvertSpan(t *testing.T) {
	text := "a\U0001F600b"
	conv := source.NewUtf8ToUtf16(text)
	sp := source.NewSpan(5, 6)
	conv.ConvertSpan(&sp)
	if sp.Start != 3 || sp.End != 4 {
		t.Errorf("ConvertSpan = %s, want 3-4", sp)
	}
}
