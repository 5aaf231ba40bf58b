package token

// escapeByte resolves the character following a backslash in a quoted
// string. The table is closed: anything else is a hard error.
func escapeByte(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '0':
		return 0, true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// Quote renders v as a double-quoted literal using the grammar's escape
// table, the inverse of the tokenizer's inline unescaping.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case 0:
			d = append(d, '\\', '0')
		case '\\':
			d = append(d, '\\', '\\')
		case '"':
			d = append(d, '\\', '"')
		default:
			d = append(d, c)
		}
	}
	return string(append(d, '"'))
}

// NeedsQuote reports whether v cannot be emitted as a bare key.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if !keyStart(v[0]) {
		return true
	}
	for i := 1; i < len(v); i++ {
		if !keyChar(v[i]) {
			return true
		}
	}
	return false
}

func keyStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func keyChar(c byte) bool {
	return keyStart(c) || c == '-' || asciiDigit(c)
}
