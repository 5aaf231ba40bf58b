package doc

import (
	"testing"

	"github.com/keygrove/keygrove/token"
)

func arr(t *testing.T, src string) *token.Entry {
	t.Helper()
	es, err := token.Tokenize([]byte("a = " + src))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	if len(es) != 1 || es[0].Type != token.TArray {
		t.Fatalf("tokenize %q: not a single array", src)
	}
	return es[0]
}

func TestUnify(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{`[1, 2, 3]`, "Int"},
		{`[1.5, 2.5]`, "Float"},
		{`[1, 2.0]`, "Float"},
		{`[2.0, 1]`, "Float"},
		{`[true, false]`, "Bool"},
		{`[true, 1]`, "Opaque"},
		{`[1, true]`, "Opaque"},
		{`["a", "b"]`, "String"},
		{`["x", 2020-01-01]`, "String"},
		{`[2020-01-01, "x"]`, "String"},
		{`[2020-01-01, 2021-01-01]`, "DateTime"},
		{`[2020-01-01, 1]`, "Opaque"},
		{`["x", 1]`, "Opaque"},
		{`[1, "x"]`, "Opaque"},
		{`[]`, "Opaque"},
		{`[[1,2],[3,4]]`, "[]Int"},
		{`[[1],[2.0]]`, "Opaque"},
		{`[[[1]],[[2]]]`, "[][]Int"},
		{`[[1], "x"]`, "Opaque"},
	} {
		got := Unify(arr(t, tc.src))
		if got.String() != tc.want {
			t.Errorf("%s: unified to %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestUnifySingleRejectionForcesFallback(t *testing.T) {
	// no "first K elements" special case: one rejection anywhere is
	// fallback for the whole array
	got := Unify(arr(t, `[1, 2, 3, 4, "oops"]`))
	if got.Kind != token.TOpaque {
		t.Errorf("got %s, want Opaque", got)
	}
}

func TestDepthAndLen(t *testing.T) {
	e := arr(t, `[[1,2],[3,4]]`)
	if d := Depth(e); d != 2 {
		t.Errorf("depth %d, want 2", d)
	}
	if l := Len(e); l != 2 {
		t.Errorf("len %d, want 2", l)
	}
	e = arr(t, `[[1,2,3]]`)
	if d := Depth(e); d != 2 {
		t.Errorf("depth %d, want 2", d)
	}
	// deepest child's reported length wins
	if l := Len(e); l != 3 {
		t.Errorf("len %d, want 3", l)
	}
	e = arr(t, `[1, 2]`)
	if d := Depth(e); d != 1 {
		t.Errorf("depth %d, want 1", d)
	}
}
