package doc

import "github.com/keygrove/keygrove/token"

// ElemType is the unified element type of an array: a scalar tag, an
// array of a further ElemType, or the opaque fallback.
type ElemType struct {
	Kind token.Type
	Elem *ElemType // set when Kind is token.TArray
}

func (et ElemType) String() string {
	if et.Kind == token.TArray && et.Elem != nil {
		return "[]" + et.Elem.String()
	}
	return et.Kind.String()
}

func (et ElemType) equal(o ElemType) bool {
	if et.Kind != o.Kind {
		return false
	}
	if et.Elem == nil || o.Elem == nil {
		return et.Elem == o.Elem
	}
	return et.Elem.equal(*o.Elem)
}

var opaque = ElemType{Kind: token.TOpaque}

// Unify folds the children of an array entry into a single element
// type, visiting them in order. A single rejected fold anywhere forces
// the opaque fallback for the whole array. Non-array entries unify to
// their own tag; an empty array is opaque.
func Unify(e *token.Entry) ElemType {
	if e.Type != token.TArray {
		return ElemType{Kind: e.Type}
	}
	if len(e.Children) == 0 {
		return opaque
	}
	var est *ElemType
	for _, c := range e.Children {
		ct := elemTypeOf(c)
		next, ok := fold(est, ct)
		if !ok {
			return opaque
		}
		est = &next
	}
	return *est
}

func elemTypeOf(e *token.Entry) ElemType {
	if e.Type != token.TArray {
		return ElemType{Kind: e.Type}
	}
	inner := Unify(e)
	return ElemType{Kind: token.TArray, Elem: &inner}
}

// fold applies one pairwise promotion step. The rules are sequential
// and not symmetric: Int and Float promote to Float in either order;
// Bool unifies only with Bool; String absorbs DateTime (in either
// visiting order) but rejects further numerics; everything else must
// match exactly.
func fold(est *ElemType, next ElemType) (ElemType, bool) {
	if est == nil {
		return next, true
	}
	cur := *est
	if cur.equal(next) {
		return cur, true
	}
	switch {
	case cur.Kind == token.TFloat && next.Kind == token.TInt:
		return cur, true
	case cur.Kind == token.TInt && next.Kind == token.TFloat:
		return next, true
	case cur.Kind == token.TString && next.Kind == token.TDateTime:
		return cur, true
	case cur.Kind == token.TDateTime && next.Kind == token.TString:
		return next, true
	default:
		return opaque, false
	}
}

// Depth is the nesting depth of an array: 1 for a flat array, one
// more for each level of child arrays. Scalars report 0.
func Depth(e *token.Entry) int {
	if e.Type != token.TArray {
		return 0
	}
	max := 0
	for _, c := range e.Children {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max + 1
}

// Len is the reported length of an array: the larger of its own child
// count and the deepest child's reported length.
func Len(e *token.Entry) int {
	if e.Type != token.TArray {
		return 0
	}
	n := len(e.Children)
	for _, c := range e.Children {
		if l := Len(c); l > n {
			n = l
		}
	}
	return n
}
