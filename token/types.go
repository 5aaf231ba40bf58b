package token

import (
	"fmt"
	"strings"
)

// Type is the closed set of value tags a tokenizer can attach to an Entry.
type Type int

const (
	TString Type = iota
	TInt
	TFloat
	TDateTime
	TBool
	TArray
	TOpaque
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TString:   "String",
		TInt:      "Int",
		TFloat:    "Float",
		TDateTime: "DateTime",
		TBool:     "Bool",
		TArray:    "Array",
		TOpaque:   "Opaque",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":   TString,
		"Int":      TInt,
		"Float":    TFloat,
		"DateTime": TDateTime,
		"Bool":     TBool,
		"Array":    TArray,
		"Opaque":   TOpaque,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TString,
		TInt,
		TFloat,
		TDateTime,
		TBool,
		TArray,
		TOpaque,
	}
}

func (t Type) IsScalar() bool {
	switch t {
	case TArray, TOpaque:
		return false
	default:
		return true
	}
}

// Entry is one parsed value: a scalar literal or a completed array.
// Entries are created once, when the value's closing boundary is seen,
// and are not modified afterwards.
//
// Group is the dotted path of the owning group ("" at root level), Name
// the local key. For array elements Name is the element's index at
// creation time and Group is empty. Text holds the raw source text,
// except for strings, where escapes are already resolved.
type Entry struct {
	Group string
	Name  string
	Text  string
	Line  int // 1-based
	Col   int // 0-based
	Type  Type

	// Children is non-nil only for TArray; insertion order is source
	// order and never changes.
	Children []*Entry

	parent *Entry // innermost enclosing open array, tokenize-time only
}

// FullName is the dotted path from the document root to this entry.
func (e *Entry) FullName() string {
	if e.Group == "" {
		return e.Name
	}
	return e.Group + "." + e.Name
}

func (e *Entry) Info() string {
	return fmt.Sprintf("%s %s line=%d col=%d", e.Type, e.FullName(), e.Line, e.Col)
}

// Source renders an entry the way it would appear as an array
// element, used to materialize the Text of a closing array.
func (e *Entry) Source() string {
	switch e.Type {
	case TString:
		return Quote(e.Text)
	default:
		return e.Text
	}
}

// ArrayEntry builds a completed array entry over children, shaped the
// way the tokenizer would have yielded it.
func ArrayEntry(children []*Entry) *Entry {
	return &Entry{Type: TArray, Children: children, Text: arrayText(children)}
}

func arrayText(children []*Entry) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.Source()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
