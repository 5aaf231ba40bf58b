// Package parse drives the tokenizer: it pulls completed entries,
// one at a time, and inserts each into a document by its dotted full
// name.
package parse

import (
	"io"
	"os"

	"github.com/keygrove/keygrove/debug"
	"github.com/keygrove/keygrove/doc"
	"github.com/keygrove/keygrove/token"
)

// Parse parses an in-memory source into a document. Any tokenizer
// failure aborts the whole parse; there is no partial-document
// recovery.
func Parse(d []byte, opts ...Option) (*doc.Document, error) {
	return run(token.NewTokenizer(d), opts...)
}

// ParseReader parses from r, draining it lazily.
func ParseReader(r io.Reader, opts ...Option) (*doc.Document, error) {
	return run(token.NewTokenizerReader(r), opts...)
}

// ParseFile parses the file at path. The handle is released exactly
// once, on both normal completion and error.
func ParseFile(path string, opts ...Option) (*doc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, opts...)
}

func run(tz *token.Tokenizer, opts ...Option) (*doc.Document, error) {
	pOpts := &parseOpts{}
	for _, o := range opts {
		o(pOpts)
	}
	d := doc.New()
	root := &d.Group
	if pOpts.root != "" {
		var err error
		root, err = d.EnsureGroup(pOpts.root)
		if err != nil {
			return nil, err
		}
	}
	for {
		e, err := tz.Next()
		if err == io.EOF {
			return d, nil
		}
		if err != nil {
			return nil, err
		}
		if debug.Scan() {
			debug.Logf("parse: %s\n", e.Info())
		}
		if err := root.Insert(e); err != nil {
			return nil, err
		}
	}
}
