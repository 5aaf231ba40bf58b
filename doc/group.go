package doc

import (
	"fmt"
	"io"
	"strings"

	"github.com/keygrove/keygrove/token"
)

// Group is one node in the key-namespace tree. It owns its child
// groups and entries; the parent link is a non-owning back-reference
// used for full-key reconstruction only.
type Group struct {
	key    string
	parent *Group

	groups     map[string]*Group
	groupOrder []string

	items     map[string]*token.Entry
	itemOrder []string
}

func newGroup(key string, parent *Group) *Group {
	return &Group{
		key:    key,
		parent: parent,
		groups: map[string]*Group{},
		items:  map[string]*token.Entry{},
	}
}

func (g *Group) Key() string {
	return g.key
}

func (g *Group) Parent() *Group {
	return g.parent
}

// FullKey is the dotted path from the document root to this group,
// empty for the root itself.
func (g *Group) FullKey() string {
	if g.parent == nil {
		return g.key
	}
	pk := g.parent.FullKey()
	if pk == "" {
		return g.key
	}
	return pk + "." + g.key
}

// Groups returns the child groups in insertion order.
func (g *Group) Groups() []*Group {
	res := make([]*Group, len(g.groupOrder))
	for i, k := range g.groupOrder {
		res[i] = g.groups[k]
	}
	return res
}

func (g *Group) Group(name string) *Group {
	return g.groups[name]
}

func (g *Group) Item(name string) *token.Entry {
	return g.items[name]
}

// ItemNames returns this group's own entry names in insertion order.
func (g *Group) ItemNames() []string {
	return append([]string(nil), g.itemOrder...)
}

// EnsureGroup resolves path, creating every missing intermediate
// group and reusing existing ones. A segment already used by a value
// is a collision.
func (g *Group) EnsureGroup(path string) (*Group, error) {
	if path == "" {
		return g, nil
	}
	cur := g
	for _, seg := range strings.Split(path, ".") {
		if _, ok := cur.items[seg]; ok {
			return nil, fmt.Errorf("%s: %w: key already holds a value", join(cur.FullKey(), seg), ErrDuplicateKey)
		}
		next, ok := cur.groups[seg]
		if !ok {
			next = newGroup(seg, cur)
			cur.groups[seg] = next
			cur.groupOrder = append(cur.groupOrder, seg)
		}
		cur = next
	}
	return cur, nil
}

// ResolveGroup looks up each segment of path in turn, failing if any
// is absent.
func (g *Group) ResolveGroup(path string) (*Group, bool) {
	if path == "" {
		return g, true
	}
	cur := g
	for _, seg := range strings.Split(path, ".") {
		next, ok := cur.groups[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Resolve returns the entry at the dotted path. A path naming a group
// rather than a value fails with ErrNotValue; an absent path with
// ErrNotFound.
func (g *Group) Resolve(path string) (*token.Entry, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}
	segs := strings.Split(path, ".")
	last := segs[len(segs)-1]
	parent, ok := g.ResolveGroup(strings.Join(segs[:len(segs)-1], "."))
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if e, ok := parent.items[last]; ok {
		return e, nil
	}
	if _, ok := parent.groups[last]; ok {
		return nil, fmt.Errorf("%s: %w: path names a group", path, ErrNotValue)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
}

// Insert places e under this group by its dotted full name, creating
// intermediate groups as needed. A final segment already in use, by a
// value or by a group, fails loudly rather than overwriting.
func (g *Group) Insert(e *token.Entry) error {
	parent, err := g.EnsureGroup(e.Group)
	if err != nil {
		return err
	}
	return parent.insertLocal(e)
}

func (g *Group) insertLocal(e *token.Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty entry name", ErrDuplicateKey)
	}
	if _, ok := g.items[e.Name]; ok {
		return fmt.Errorf("%s: %w", e.FullName(), ErrDuplicateKey)
	}
	if _, ok := g.groups[e.Name]; ok {
		return fmt.Errorf("%s: %w: key already names a group", e.FullName(), ErrDuplicateKey)
	}
	g.items[e.Name] = e
	g.itemOrder = append(g.itemOrder, e.Name)
	return nil
}

// Items returns every entry reachable from g, depth-first, a node's
// own items before its children's.
func (g *Group) Items() []*token.Entry {
	var res []*token.Entry
	g.appendItems(&res)
	return res
}

func (g *Group) appendItems(res *[]*token.Entry) {
	for _, k := range g.itemOrder {
		*res = append(*res, g.items[k])
	}
	for _, k := range g.groupOrder {
		g.groups[k].appendItems(res)
	}
}

// Render writes a human-readable dump: [full.key] headers followed by
// key = value lines, recursively. Diagnostic output; not guaranteed to
// round-trip.
func (g *Group) Render(w io.Writer) error {
	if g.parent != nil || g.key != "" {
		if _, err := fmt.Fprintf(w, "[%s]\n", g.FullKey()); err != nil {
			return err
		}
	}
	for _, k := range g.itemOrder {
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, g.items[k].Source()); err != nil {
			return err
		}
	}
	for _, k := range g.groupOrder {
		if err := g.groups[k].Render(w); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) String() string {
	b := &strings.Builder{}
	g.Render(b)
	return b.String()
}

func join(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}
