package parse

type parseOpts struct {
	root string
}

type Option func(*parseOpts)

// WithRoot parses the source into the named group rather than the
// document root, so that several sources can share one document under
// distinct prefixes.
func WithRoot(path string) Option {
	return func(o *parseOpts) { o.root = path }
}
