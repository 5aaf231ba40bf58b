package token

import (
	"errors"
	"testing"
)

func one(t *testing.T, src string) *Entry {
	t.Helper()
	es, err := Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	if len(es) != 1 {
		t.Fatalf("tokenize %q: got %d entries, want 1", src, len(es))
	}
	return es[0]
}

func TestScalars(t *testing.T) {
	for _, tc := range []struct {
		src  string
		typ  Type
		text string
	}{
		{`i = 42`, TInt, "42"},
		{`i = -3`, TInt, "-3"},
		{`i = -0`, TInt, "-0"},
		{`f = 4.5`, TFloat, "4.5"},
		{`f = -0.01`, TFloat, "-0.01"},
		{`f = 0e21`, TFloat, "0e21"},
		{`f = 2E-2`, TFloat, "2E-2"},
		{`b = true`, TBool, "true"},
		{`b = TRUE`, TBool, "TRUE"},
		{`b = False`, TBool, "False"},
		{`d = 2020-01-01`, TDateTime, "2020-01-01"},
		{`d = 2020-01-01T10:30:00Z`, TDateTime, "2020-01-01T10:30:00Z"},
		{`s = "hi"`, TString, "hi"},
		{`s = ""`, TString, ""},
		{`s = "a\nb"`, TString, "a\nb"},
		{`s = "t\tr\rz\0q\"w\\"`, TString, "t\tr\rz\x00q\"w\\"},
	} {
		e := one(t, tc.src)
		if e.Type != tc.typ {
			t.Errorf("%q: type %s, want %s", tc.src, e.Type, tc.typ)
		}
		if e.Text != tc.text {
			t.Errorf("%q: text %q, want %q", tc.src, e.Text, tc.text)
		}
	}
}

func TestFullNames(t *testing.T) {
	src := `a.b.c = 1

# server config
[srv]
port = 80
host = "x"

[srv.tls]
enabled = true
`
	es, err := Tokenize([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		full string
		line int
	}{
		{"a.b.c", 1},
		{"srv.port", 5},
		{"srv.host", 6},
		{"srv.tls.enabled", 9},
	}
	if len(es) != len(want) {
		t.Fatalf("got %d entries, want %d", len(es), len(want))
	}
	for i, w := range want {
		if es[i].FullName() != w.full {
			t.Errorf("entry %d: full name %q, want %q", i, es[i].FullName(), w.full)
		}
		if es[i].Line != w.line {
			t.Errorf("entry %d: line %d, want %d", i, es[i].Line, w.line)
		}
	}
	// dotted key under a group header
	e := one(t, "[g]\nx.y = 2")
	if e.Group != "g.x" || e.Name != "y" {
		t.Errorf("got group=%q name=%q, want g.x / y", e.Group, e.Name)
	}
}

func TestComments(t *testing.T) {
	e := one(t, "# leading\nk = 1 # trailing\n# more")
	if e.FullName() != "k" || e.Type != TInt {
		t.Errorf("got %s", e.Info())
	}
}

func TestArrays(t *testing.T) {
	e := one(t, `a = [1, 2, 3]`)
	if e.Type != TArray {
		t.Fatalf("type %s, want Array", e.Type)
	}
	if len(e.Children) != 3 {
		t.Fatalf("got %d children", len(e.Children))
	}
	for i, c := range e.Children {
		if c.Type != TInt {
			t.Errorf("child %d: type %s", i, c.Type)
		}
	}
	if e.Children[2].Name != "2" {
		t.Errorf("child name %q, want 2", e.Children[2].Name)
	}
	if e.Text != "[1, 2, 3]" {
		t.Errorf("array text %q", e.Text)
	}

	e = one(t, `a = []`)
	if e.Type != TArray || len(e.Children) != 0 {
		t.Errorf("empty array: %s with %d children", e.Type, len(e.Children))
	}

	e = one(t, `a = [[1,2],[3,4]]`)
	if len(e.Children) != 2 {
		t.Fatalf("outer length %d", len(e.Children))
	}
	inner := e.Children[1]
	if inner.Type != TArray || inner.Name != "1" {
		t.Errorf("inner: %s name=%q", inner.Type, inner.Name)
	}
	if len(inner.Children) != 2 || inner.Children[0].Text != "3" {
		t.Errorf("inner children wrong: %v", inner.Children)
	}

	// multi-line array with interior comment and trailing comma
	e = one(t, "a = [\n  1, # one\n  \"two\",\n  true,\n]")
	if len(e.Children) != 3 {
		t.Fatalf("got %d children", len(e.Children))
	}
	if e.Children[1].Type != TString || e.Children[1].Text != "two" {
		t.Errorf("child 1: %s %q", e.Children[1].Type, e.Children[1].Text)
	}
}

func TestMultiLineString(t *testing.T) {
	e := one(t, "s = \"\"\"line1\nline2\"\"\"")
	if e.Text != "line1\nline2" {
		t.Errorf("got %q", e.Text)
	}
	// continuation escape suppresses the newline
	e = one(t, "s = \"\"\"a\\\nb\"\"\"")
	if e.Text != "ab" {
		t.Errorf("continuation: got %q", e.Text)
	}
	// escaped quote-start inside the body does not close
	e = one(t, `s = """a\""""`)
	if e.Text != `a"` {
		t.Errorf("escaped quote: got %q", e.Text)
	}
	// embedded single quotes are literal
	e = one(t, `s = """a "b" c"""`)
	if e.Text != `a "b" c` {
		t.Errorf("got %q", e.Text)
	}
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want error
	}{
		{"key 1", ErrExpectedEq},
		{"key # c\n= 1", ErrExpectedEq},
		{"1bad = 1", ErrIdent},
		{"a..b = 1", ErrEmptyKey},
		{"[] \nx = 1", ErrEmptyKey},
		{"[a.b\nx = 1", ErrNewlineInKey},
		{"[a b]\nx = 1", ErrIdent},
		{"a = \nb = 1", ErrExpectedValue},
		{"a = ]", ErrUnexpectedClose},
		{"] ", ErrUnexpectedClose},
		{"a = [1 2]", ErrExpectedSep},
		{"a = truex", ErrKeyword},
		{"a = fals", ErrKeyword},
		{"a = 1.2.3", ErrNumber},
		{"a = 12x", ErrDateTime},
		{"a = 2020-13-99", ErrDateTime},
		{"a = 1-2", ErrDateTime},
		{`a = "x\qy"`, ErrBadEscape},
		{"a = \"unterminated\nb = 1", ErrNewlineInString},
		{`a = "unterminated`, ErrIncomplete},
		{"a = [1, 2", ErrIncomplete},
		{"a = ", ErrIncomplete},
		{"a", ErrIncomplete},
		{"a = \"\"\"open\nnever closed", ErrIncomplete},
		{"a = @", nil}, // any error acceptable, just must fail
	} {
		_, err := Tokenize([]byte(tc.src))
		if err == nil {
			t.Errorf("%q: expected error", tc.src)
			continue
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("%q: got %v, want %v", tc.src, err, tc.want)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := Tokenize([]byte("ok = 1\nkey 1\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	var se *ScanErr
	if !errors.As(err, &se) {
		t.Fatalf("error %T is not a *ScanErr", err)
	}
	if se.Pos.Line != 2 {
		t.Errorf("line %d, want 2", se.Pos.Line)
	}
	// at or before the first non-key character
	if se.Pos.Col > 3 {
		t.Errorf("col %d, want <= 3", se.Pos.Col)
	}
	if se.Pos.Text != "key 1" {
		t.Errorf("offending line %q", se.Pos.Text)
	}
}

func TestTokenizerSticky(t *testing.T) {
	tz := NewTokenizer([]byte("a = @"))
	_, err := tz.Next()
	if err == nil {
		t.Fatal("expected error")
	}
	_, err2 := tz.Next()
	if err2 != err {
		t.Errorf("error not sticky: %v vs %v", err2, err)
	}
}

func TestDuplicateAssignmentsTokenizeFine(t *testing.T) {
	// duplicate keys are a tree-level concern, not a lexical one
	es, err := Tokenize([]byte("a = 1\na = 2"))
	if err != nil {
		t.Fatal(err)
	}
	if len(es) != 2 {
		t.Fatalf("got %d entries", len(es))
	}
}
