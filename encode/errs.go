package encode

import "errors"

var (
	ErrEncoding     = errors.New("encoding error")
	ErrUnsupported  = errors.New("unsupported field kind")
	ErrComplexArray = errors.New("arrays of complex elements are unsupported")
)
