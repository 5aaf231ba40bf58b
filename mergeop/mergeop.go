// Package mergeop combines documents through their JSON projections:
// RFC 7386 merge patches and RFC 6902 operation lists. Date-time
// values survive a merge as their RFC 3339 strings.
package mergeop

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/keygrove/keygrove/doc"
)

// Merge applies overlay onto base per RFC 7386: overlay scalars and
// arrays replace, groups merge recursively. Neither input is modified.
func Merge(base, overlay *doc.Document) (*doc.Document, error) {
	bj, err := marshal(base)
	if err != nil {
		return nil, err
	}
	oj, err := marshal(overlay)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(bj, oj)
	if err != nil {
		return nil, err
	}
	return unmarshal(out)
}

// Patch applies an RFC 6902 operation list, given as JSON text, to
// base. Paths are JSON pointers over the document's group tree.
func Patch(base *doc.Document, patchJSON []byte) (*doc.Document, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	bj, err := marshal(base)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(bj)
	if err != nil {
		return nil, err
	}
	return unmarshal(out)
}

// MergeDiff computes the RFC 7386 merge patch that turns a into b.
func MergeDiff(a, b *doc.Document) ([]byte, error) {
	aj, err := marshal(a)
	if err != nil {
		return nil, err
	}
	bj, err := marshal(b)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(aj, bj)
}

func marshal(d *doc.Document) ([]byte, error) {
	return json.Marshal(doc.ToAny(d))
}

func unmarshal(data []byte) (*doc.Document, error) {
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return doc.FromAny(m)
}
