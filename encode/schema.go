package encode

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/keygrove/keygrove/doc"
	"github.com/keygrove/keygrove/token"
)

// Schema describes, explicitly, how to serialize values of one
// concrete Go type. There is no runtime introspection: every readable
// property is declared as a Field with its own getter.
type Schema struct {
	Fields []Field
}

// Field is one readable property. Get extracts the property from the
// receiver. A non-nil Group marks the field as a nested object
// serialized with its own schema under a child key group; all other
// fields must yield values covered by the native scalar table, or
// slices of them.
type Field struct {
	Name  string
	Get   func(v any) any
	Group *Schema
}

// Marshal walks v through schema s and writes it as a key group named
// rootKey. Nil nested objects are skipped. Arrays of complex elements
// fail with ErrComplexArray, properties outside the native table with
// ErrUnsupported.
func Marshal(w io.Writer, rootKey string, v any, s *Schema, opts ...EncodeOption) error {
	d := doc.New()
	g, err := d.EnsureGroup(rootKey)
	if err != nil {
		return err
	}
	if err := marshalGroup(g, v, s); err != nil {
		return err
	}
	return Encode(d, w, opts...)
}

func marshalGroup(g *doc.Group, v any, s *Schema) error {
	for _, f := range s.Fields {
		x := f.Get(v)
		if f.Group != nil {
			if x == nil {
				continue
			}
			sub, err := g.EnsureGroup(f.Name)
			if err != nil {
				return err
			}
			if err := marshalGroup(sub, x, f.Group); err != nil {
				return err
			}
			continue
		}
		e, err := scalarEntry(x)
		if err != nil {
			return fmt.Errorf("%s: %w", join(g.FullKey(), f.Name), err)
		}
		e.Name = f.Name
		if err := g.Insert(e); err != nil {
			return err
		}
	}
	return nil
}

// scalarEntry is the fixed native-type table: anything not listed here
// is not serializable as a value.
func scalarEntry(v any) (*token.Entry, error) {
	switch x := v.(type) {
	case string:
		return &token.Entry{Text: x, Type: token.TString}, nil
	case bool:
		return &token.Entry{Text: strconv.FormatBool(x), Type: token.TBool}, nil
	case int:
		return intEntry(int64(x)), nil
	case int8:
		return intEntry(int64(x)), nil
	case int16:
		return intEntry(int64(x)), nil
	case int32:
		return intEntry(int64(x)), nil
	case int64:
		return intEntry(x), nil
	case uint:
		return uintEntry(uint64(x)), nil
	case uint8:
		return uintEntry(uint64(x)), nil
	case uint16:
		return uintEntry(uint64(x)), nil
	case uint32:
		return uintEntry(uint64(x)), nil
	case uint64:
		return uintEntry(x), nil
	case float32:
		return floatEntry(float64(x)), nil
	case float64:
		return floatEntry(x), nil
	case time.Time:
		return &token.Entry{Text: x.Format(time.RFC3339), Type: token.TDateTime}, nil
	case []string:
		return sliceEntry(x)
	case []bool:
		return sliceEntry(x)
	case []int:
		return sliceEntry(x)
	case []int64:
		return sliceEntry(x)
	case []float64:
		return sliceEntry(x)
	case []time.Time:
		return sliceEntry(x)
	case []any:
		return anySliceEntry(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func intEntry(i int64) *token.Entry {
	return &token.Entry{Text: strconv.FormatInt(i, 10), Type: token.TInt}
}

func uintEntry(u uint64) *token.Entry {
	return &token.Entry{Text: strconv.FormatUint(u, 10), Type: token.TInt}
}

func floatEntry(f float64) *token.Entry {
	return &token.Entry{Text: strconv.FormatFloat(f, 'g', -1, 64), Type: token.TFloat}
}

func sliceEntry[T any](xs []T) (*token.Entry, error) {
	children := make([]*token.Entry, len(xs))
	for i, x := range xs {
		c, err := scalarEntry(x)
		if err != nil {
			return nil, err
		}
		c.Name = strconv.Itoa(i)
		children[i] = c
	}
	return token.ArrayEntry(children), nil
}

func anySliceEntry(xs []any) (*token.Entry, error) {
	children := make([]*token.Entry, len(xs))
	for i, x := range xs {
		c, err := scalarEntry(x)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d (%T)", ErrComplexArray, i, x)
		}
		c.Name = strconv.Itoa(i)
		children[i] = c
	}
	return token.ArrayEntry(children), nil
}

func join(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}
