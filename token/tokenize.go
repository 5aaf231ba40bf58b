package token

import "io"

// Tokenize scans d to exhaustion and returns every completed entry in
// source order.
func Tokenize(d []byte) ([]*Entry, error) {
	tz := NewTokenizer(d)
	var res []*Entry
	for {
		e, err := tz.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
}
