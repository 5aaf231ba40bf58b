package doc

import (
	"fmt"

	"github.com/keygrove/keygrove/conv"
	"github.com/keygrove/keygrove/token"
)

// Document is the distinguished root group of a parsed source. After
// parsing completes it is read-only and safe for concurrent readers;
// it provides no synchronization of its own.
type Document struct {
	Group
}

func New() *Document {
	d := &Document{}
	d.Group.groups = map[string]*Group{}
	d.Group.items = map[string]*token.Entry{}
	return d
}

// GetValue resolves an entry by dotted path, failing with ErrNotFound
// if any segment is absent.
func (d *Document) GetValue(path string) (*token.Entry, error) {
	return d.Resolve(path)
}

// TryGetValue is GetValue with a found flag instead of an error.
func (d *Document) TryGetValue(path string) (*token.Entry, bool) {
	e, err := d.Resolve(path)
	if err != nil {
		return nil, false
	}
	return e, true
}

// Field resolves path and converts the entry's raw text to T. Absent
// paths fail with ErrNotFound; conversion failures are propagated from
// the converter.
func Field[T any](d *Document, path string) (T, error) {
	var zero T
	e, err := d.GetValue(path)
	if err != nil {
		return zero, err
	}
	v, err := conv.To[T](e.Text)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// TryField never fails: it reports false when the path is absent or
// the converter cannot produce a T.
func TryField[T any](d *Document, path string) (T, bool) {
	var zero T
	e, ok := d.TryGetValue(path)
	if !ok {
		return zero, false
	}
	return conv.TryTo[T](e.Text)
}

// ArrayOf resolves path, requires an array there, and converts every
// child's raw text to T in order.
func ArrayOf[T any](d *Document, path string) ([]T, error) {
	e, err := d.GetValue(path)
	if err != nil {
		return nil, err
	}
	if e.Type != token.TArray {
		return nil, fmt.Errorf("%s: %w", path, ErrNotArray)
	}
	res := make([]T, 0, len(e.Children))
	for i, c := range e.Children {
		v, err := conv.To[T](c.Text)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", path, i, err)
		}
		res = append(res, v)
	}
	return res, nil
}
