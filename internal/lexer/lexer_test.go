package lexer

import (
	"testing"

	"github.com/tay10r/pathway/internal/token"
)

func collectKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	l := New(Normalize([]byte(src)), "test.pt")
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
	}
}

func TestLexerPunctuationAndKeywords(t *testing.T) {
	src := `uniform float g = 1.0; varying vec3 c;`
	kinds := collectKinds(t, src)
	want := []token.Kind{
		token.UNIFORM, token.FLOAT_T, token.IDENT, token.ASSIGN, token.FLOAT, token.SEMI,
		token.VARYING, token.VEC3, token.IDENT, token.SEMI, token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(kinds), kinds, len(want), want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %s want %s", i, kinds[i], want[i])
		}
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"123", token.INT},
		{"1.5", token.FLOAT},
		{"1.", token.FLOAT},
		{"1e10", token.FLOAT},
		{"1.5e-3", token.FLOAT},
		{"1E+3", token.FLOAT},
	}
	for _, c := range cases {
		l := New(Normalize([]byte(c.src)), "t.pt")
		tok := l.NextToken()
		if tok.Kind != c.kind {
			t.Errorf("%q: got kind %s want %s", c.src, tok.Kind, c.kind)
		}
		if tok.Literal != c.src {
			t.Errorf("%q: got literal %q", c.src, tok.Literal)
		}
	}
}

func TestLexerComments(t *testing.T) {
	src := "// line comment\nint x; /* block\ncomment */ int y;"
	kinds := collectKinds(t, src)
	want := []token.Kind{token.INT_T, token.IDENT, token.SEMI, token.INT_T, token.IDENT, token.SEMI, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v want %v", kinds, want)
	}
}

func TestLexerIllegalByte(t *testing.T) {
	l := New(Normalize([]byte("$")), "t.pt")
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Kind)
	}
}

// TestLexerIdempotence checks that lexing a token's own literal text back
// yields a token of the same kind.
func TestLexerIdempotence(t *testing.T) {
	srcs := []string{"foo", "123", "1.5", "uniform", "vec3", "+", "("}
	for _, src := range srcs {
		l1 := New(Normalize([]byte(src)), "t.pt")
		tok1 := l1.NextToken()

		l2 := New(Normalize([]byte(tok1.Literal)), "t.pt")
		tok2 := l2.NextToken()

		if tok1.Kind != tok2.Kind {
			t.Errorf("%q: re-lexing %q gave kind %s, want %s", src, tok1.Literal, tok2.Kind, tok1.Kind)
		}
	}
}

func TestLexerLineColumnTracking(t *testing.T) {
	src := "int x;\nint y;"
	l := New(Normalize([]byte(src)), "t.pt")
	_ = l.NextToken() // int
	_ = l.NextToken() // x
	_ = l.NextToken() // ;
	tok := l.NextToken()
	if tok.Kind != token.INT_T || tok.Loc.FirstLine != 2 {
		t.Fatalf("expected second 'int' on line 2, got %+v", tok)
	}
}
