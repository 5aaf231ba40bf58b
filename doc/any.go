package doc

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/keygrove/keygrove/token"
)

// ToAny converts the document to nested plain Go values: groups become
// maps, entries their native scalar values, arrays []any. Used by the
// expression evaluator, merge patching, and the CLI's JSON/YAML
// output.
func ToAny(d *Document) map[string]any {
	return groupAny(&d.Group)
}

func groupAny(g *Group) map[string]any {
	res := make(map[string]any, len(g.itemOrder)+len(g.groupOrder))
	for _, k := range g.itemOrder {
		res[k] = EntryAny(g.items[k])
	}
	for _, k := range g.groupOrder {
		res[k] = groupAny(g.groups[k])
	}
	return res
}

// EntryAny maps one entry to its native Go value.
func EntryAny(e *token.Entry) any {
	switch e.Type {
	case token.TInt:
		i, err := strconv.ParseInt(e.Text, 10, 64)
		if err != nil {
			return e.Text
		}
		return i
	case token.TFloat:
		f, err := strconv.ParseFloat(e.Text, 64)
		if err != nil {
			return e.Text
		}
		return f
	case token.TBool:
		b, err := strconv.ParseBool(e.Text)
		if err != nil {
			return e.Text
		}
		return b
	case token.TDateTime:
		t, err := token.ParseDateTime(e.Text)
		if err != nil {
			return e.Text
		}
		return t
	case token.TArray:
		res := make([]any, len(e.Children))
		for i, c := range e.Children {
			res[i] = EntryAny(c)
		}
		return res
	default:
		return e.Text
	}
}

// FromAny builds a document from nested plain Go values, the inverse
// of ToAny. Map keys sort for deterministic order; nil values are
// dropped.
func FromAny(m map[string]any) (*Document, error) {
	d := New()
	if err := fromAnyGroup(&d.Group, m); err != nil {
		return nil, err
	}
	return d, nil
}

func fromAnyGroup(g *Group, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		if v == nil {
			continue
		}
		if sub, ok := v.(map[string]any); ok {
			sg, err := g.EnsureGroup(k)
			if err != nil {
				return err
			}
			if err := fromAnyGroup(sg, sub); err != nil {
				return err
			}
			continue
		}
		e, err := entryFromAny(v)
		if err != nil {
			return fmt.Errorf("%s: %w", join(g.FullKey(), k), err)
		}
		e.Group = g.FullKey()
		e.Name = k
		if err := g.insertLocal(e); err != nil {
			return err
		}
	}
	return nil
}

func entryFromAny(v any) (*token.Entry, error) {
	switch x := v.(type) {
	case string:
		return &token.Entry{Type: token.TString, Text: x}, nil
	case bool:
		return &token.Entry{Type: token.TBool, Text: strconv.FormatBool(x)}, nil
	case int:
		return &token.Entry{Type: token.TInt, Text: strconv.FormatInt(int64(x), 10)}, nil
	case int64:
		return &token.Entry{Type: token.TInt, Text: strconv.FormatInt(x, 10)}, nil
	case uint64:
		return &token.Entry{Type: token.TInt, Text: strconv.FormatUint(x, 10)}, nil
	case float64:
		// JSON decoding hands integers back as float64
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return &token.Entry{Type: token.TInt, Text: strconv.FormatInt(int64(x), 10)}, nil
		}
		return &token.Entry{Type: token.TFloat, Text: strconv.FormatFloat(x, 'g', -1, 64)}, nil
	case float32:
		return entryFromAny(float64(x))
	case time.Time:
		return &token.Entry{Type: token.TDateTime, Text: x.Format(time.RFC3339)}, nil
	case []any:
		children := make([]*token.Entry, 0, len(x))
		for i, ev := range x {
			c, err := entryFromAny(ev)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			c.Name = strconv.Itoa(i)
			children = append(children, c)
		}
		return token.ArrayEntry(children), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
