package diag

import (
	"bytes"
	"testing"

	"github.com/tay10r/pathway/internal/token"
)

func TestGetLineView(t *testing.T) {
	data := []byte("abc\ndef\nghi")
	cases := []struct {
		line int
		want string
	}{
		{1, "abc"},
		{2, "def"},
		{3, "ghi"},
		{4, ""},
	}
	for _, c := range cases {
		if got := GetLineView(c.line, data); got != c.want {
			t.Errorf("line %d: got %q want %q", c.line, got, c.want)
		}
	}
}

func TestGetClippedLocationSingleLine(t *testing.T) {
	data := []byte("int x = 1;")
	loc := token.Location{FirstLine: 1, FirstColumn: 9, LastLine: 1, LastColumn: 9}
	clipped := GetClippedLocation(1, data, loc)
	if clipped.Index != 8 || clipped.Length != 1 {
		t.Fatalf("got %+v", clipped)
	}
	if string(data[clipped.Index:clipped.Index+clipped.Length]) != "1" {
		t.Fatalf("clipped range does not cover the '1'")
	}
}

func TestGetClippedLocationMultiLine(t *testing.T) {
	data := []byte("int f() {\n  return 1;\n}")
	loc := token.Location{FirstLine: 1, FirstColumn: 9, LastLine: 3, LastColumn: 1}

	first := GetClippedLocation(1, data, loc)
	line1 := GetLineView(1, data)
	if first.Index != 8 || first.Index+first.Length != len(line1) {
		t.Fatalf("first line clip %+v does not reach end of line %q", first, line1)
	}

	mid := GetClippedLocation(2, data, loc)
	line2 := GetLineView(2, data)
	if mid.Index != 0 || mid.Length != len(line2) {
		t.Fatalf("middle line clip should cover whole line, got %+v", mid)
	}

	last := GetClippedLocation(3, data, loc)
	if last.Index != 0 || last.Length != 1 {
		t.Fatalf("last line clip should run from col 1 through end col, got %+v", last)
	}
}

func TestCollectorTracksErrors(t *testing.T) {
	c := &Collector{}
	c.BeginFile("a.pt", []byte("x"))
	c.Observe(New(token.Single(token.Pos{Line: 1, Column: 1}), OriginalDecl, "first seen here"))
	if c.HasErrors() {
		t.Fatalf("a Note should not count as an error")
	}
	c.Observe(New(token.Single(token.Pos{Line: 2, Column: 1}), DuplicateDecl, "duplicate"))
	if !c.HasErrors() {
		t.Fatalf("a DuplicateDecl is an Error severity")
	}
	c.EndFile()
	if len(c.Diags) != 2 {
		t.Fatalf("expected 2 diags, got %d", len(c.Diags))
	}
}

func TestConsoleSinkRenders(t *testing.T) {
	var buf bytes.Buffer
	forceOff := false
	sink := NewConsoleSink(&buf, &forceOff)
	sink.BeginFile("main.pt", []byte("int a = 0;\nint a = 1;"))
	sink.Observe(New(token.Location{FirstLine: 2, FirstColumn: 5, LastLine: 2, LastColumn: 5}, DuplicateDecl, "duplicate declaration of 'a'"))
	sink.EndFile()

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("main.pt:2:5")) {
		t.Fatalf("expected header with file:line:col, got %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("error:")) {
		t.Fatalf("expected severity label, got %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("duplicate declaration of 'a'")) {
		t.Fatalf("expected message rendered, got %q", out)
	}
}
