package encode

import (
	"io"
	"strings"

	"github.com/keygrove/keygrove/doc"
	"github.com/keygrove/keygrove/token"
)

type EncState struct {
	wrote bool

	Color func(token.Type, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Encode writes d in the input grammar: a headerless root section
// followed by one [full.key] section per group, insertion order,
// sections separated by blank lines.
func Encode(d *doc.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encodeGroup(&d.Group, w, es)
}

// String renders d to a string.
func String(d *doc.Document, opts ...EncodeOption) (string, error) {
	b := &strings.Builder{}
	if err := Encode(d, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func MustString(d *doc.Document, opts ...EncodeOption) string {
	s, err := String(d, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func encodeGroup(g *doc.Group, w io.Writer, es *EncState) error {
	names := g.ItemNames()
	if g.FullKey() != "" && len(names) > 0 {
		if es.wrote {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		hdr := es.color(token.TString, SepColor, "[") +
			es.color(token.TString, HeaderColor, g.FullKey()) +
			es.color(token.TString, SepColor, "]")
		if err := writeString(w, hdr+"\n"); err != nil {
			return err
		}
		es.wrote = true
	}
	for _, name := range names {
		e := g.Item(name)
		line := es.color(e.Type, FieldColor, name) +
			es.color(e.Type, SepColor, " = ")
		if err := writeString(w, line); err != nil {
			return err
		}
		if err := encodeValue(e, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.wrote = true
	}
	for _, sub := range g.Groups() {
		if err := encodeGroup(sub, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(e *token.Entry, w io.Writer, es *EncState) error {
	if e.Type != token.TArray {
		return writeString(w, es.color(e.Type, ValueColor, e.Source()))
	}
	if err := writeString(w, es.color(token.TArray, SepColor, "[")); err != nil {
		return err
	}
	for i, c := range e.Children {
		if i > 0 {
			if err := writeString(w, es.color(token.TArray, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := encodeValue(c, w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(token.TArray, SepColor, "]"))
}

func (es *EncState) color(t token.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
