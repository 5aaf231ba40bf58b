package token

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The tokenizer is an explicit state machine over a cursor: current
// line, column, lexical mode, open-array stack, open-group context.
// State persists across physical lines so that arrays and multi-line
// strings can span them.
type mode int

const (
	scanning mode = iota
	readingValueName
	searchingForValueSeparator
	readingValue
	readingStringValue
	readingMultiLineStringValue
	searchingForArraySeparator
	readingArrayEnd
)

// Tokenizer lazily yields completed value entries from one input
// source. It is a single mutable cursor and must not be shared across
// concurrent callers. Next returns io.EOF once the input is exhausted
// and every open construct has closed.
type Tokenizer struct {
	lines   *bufio.Scanner
	line    []byte
	lineNo  int // 1-based
	col     int // 0-based
	started bool

	mode  mode
	group string

	keyPrefix       string
	key             string
	keyLine, keyCol int

	sb              strings.Builder
	sepCol          int
	valLine, valCol int
	contEsc         bool

	arrs []*Entry

	err  error
	done bool
}

// NewTokenizer returns a Tokenizer over an in-memory document.
func NewTokenizer(d []byte) *Tokenizer {
	return NewTokenizerReader(bytes.NewReader(d))
}

// NewTokenizerReader returns a Tokenizer that drains r lazily, one
// physical line at a time.
func NewTokenizerReader(r io.Reader) *Tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Tokenizer{lines: sc}
}

func (t *Tokenizer) pos() Pos {
	return Pos{Line: t.lineNo, Col: t.col, Text: string(t.line)}
}

func (t *Tokenizer) posAt(col int) Pos {
	return Pos{Line: t.lineNo, Col: col, Text: string(t.line)}
}

func (t *Tokenizer) fail(err error) (*Entry, error) {
	t.err = err
	return nil, err
}

// Next returns the next completed entry: a scalar, or a whole array
// once its matching close bracket is seen. Each call may consume zero
// or more physical lines.
func (t *Tokenizer) Next() (*Entry, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.done {
		return nil, io.EOF
	}
	for {
		if !t.started || t.col >= len(t.line) {
			hasNext := t.lines.Scan()
			if t.started {
				if err := t.endOfLine(hasNext); err != nil {
					return t.fail(err)
				}
			}
			if !hasNext {
				if err := t.lines.Err(); err != nil {
					return t.fail(err)
				}
				if err := t.endOfInput(); err != nil {
					return t.fail(err)
				}
				t.done = true
				return nil, io.EOF
			}
			t.line = append(t.line[:0], t.lines.Bytes()...)
			t.lineNo++
			t.col = 0
			t.started = true
			continue
		}
		var (
			entry *Entry
			err   error
		)
		switch t.mode {
		case scanning:
			err = t.stepScanning()
		case readingValueName:
			err = t.stepValueName()
		case searchingForValueSeparator:
			err = t.stepValueSeparator()
		case readingValue:
			entry, err = t.stepValue()
		case readingStringValue:
			entry, err = t.stepString()
		case readingMultiLineStringValue:
			entry, err = t.stepMultiLineString()
		case searchingForArraySeparator:
			err = t.stepArraySeparator()
		case readingArrayEnd:
			entry, err = t.stepArrayEnd()
		}
		if err != nil {
			return t.fail(err)
		}
		if entry != nil {
			return entry, nil
		}
	}
}

// endOfLine applies the transitions owed when the cursor walks off the
// end of the current physical line.
func (t *Tokenizer) endOfLine(hasNext bool) error {
	switch t.mode {
	case scanning, searchingForArraySeparator, readingArrayEnd:
		return nil
	case readingMultiLineStringValue:
		if t.contEsc {
			t.contEsc = false
			return nil
		}
		t.sb.WriteByte('\n')
		return nil
	case readingStringValue:
		if !hasNext {
			// end of input raises ErrIncomplete instead
			return nil
		}
		return NewScanErr(ErrNewlineInString, t.pos())
	case readingValueName, searchingForValueSeparator:
		if !hasNext {
			return nil
		}
		return NewScanErr(ErrExpectedEq, t.pos())
	case readingValue:
		if len(t.arrs) > 0 {
			return nil
		}
		if !hasNext {
			return nil
		}
		return NewScanErr(ErrExpectedValue, t.pos())
	}
	return nil
}

func (t *Tokenizer) endOfInput() error {
	if t.mode != scanning || len(t.arrs) > 0 || t.key != "" || t.keyPrefix != "" {
		return NewScanErr(ErrIncomplete, t.pos())
	}
	return nil
}

func (t *Tokenizer) stepScanning() error {
	c := t.line[t.col]
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		t.col++
	case c == '#':
		t.col = len(t.line)
	case c == '[':
		return t.groupHeader()
	case c == ']':
		return NewScanErr(ErrUnexpectedClose, t.pos())
	case keyStart(c):
		t.key, t.keyPrefix = "", ""
		t.keyLine, t.keyCol = t.lineNo, t.col
		t.mode = readingValueName
	case asciiDigit(c):
		return NewScanErr(fmt.Errorf("%w: identifier cannot start with a digit", ErrIdent), t.pos())
	default:
		return NewScanErr(fmt.Errorf("%w: unexpected character %q", ErrIdent, c), t.pos())
	}
	return nil
}

// groupHeader consumes a [dotted.key] header. The header cannot span
// lines and its key cannot be empty; the remainder of the line is
// re-scanned from scanning mode.
func (t *Tokenizer) groupHeader() error {
	start := t.col + 1
	i := start
	for i < len(t.line) && t.line[i] != ']' {
		i++
	}
	if i == len(t.line) {
		return NewScanErr(ErrNewlineInKey, t.posAt(i))
	}
	name := strings.TrimSpace(string(t.line[start:i]))
	if name == "" {
		return NewScanErr(ErrEmptyKey, t.posAt(start))
	}
	if err := checkDottedKey(name); err != nil {
		return NewScanErr(err, t.posAt(start))
	}
	t.group = name
	t.col = i + 1
	return nil
}

func checkDottedKey(name string) error {
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return ErrEmptyKey
		}
		if !keyStart(seg[0]) {
			return fmt.Errorf("%w: %q", ErrIdent, seg)
		}
		for i := 1; i < len(seg); i++ {
			if !keyChar(seg[i]) {
				return fmt.Errorf("%w: %q", ErrIdent, seg)
			}
		}
	}
	return nil
}

func (t *Tokenizer) stepValueName() error {
	segStart := t.col
	for t.col < len(t.line) && keyChar(t.line[t.col]) {
		t.col++
	}
	seg := string(t.line[segStart:t.col])
	if seg == "" {
		return NewScanErr(ErrEmptyKey, t.pos())
	}
	if !keyStart(seg[0]) {
		return NewScanErr(fmt.Errorf("%w: %q", ErrIdent, seg), t.posAt(segStart))
	}
	if t.col < len(t.line) && t.line[t.col] == '.' {
		t.keyPrefix = joinDots(t.keyPrefix, seg)
		t.col++
		return nil
	}
	t.key = seg
	t.sepCol = t.col
	t.mode = searchingForValueSeparator
	return nil
}

func (t *Tokenizer) stepValueSeparator() error {
	c := t.line[t.col]
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		t.col++
	case c == '#':
		return NewScanErr(fmt.Errorf("%w: comment before '='", ErrExpectedEq), t.pos())
	case c == '=':
		t.col++
		t.mode = readingValue
	default:
		return NewScanErr(ErrExpectedEq, t.posAt(t.sepCol))
	}
	return nil
}

// stepValue dispatches on the first significant character of a value.
func (t *Tokenizer) stepValue() (*Entry, error) {
	c := t.line[t.col]
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		t.col++
		return nil, nil
	case c == '#':
		if len(t.arrs) > 0 {
			t.col = len(t.line)
			return nil, nil
		}
		return nil, NewScanErr(ErrExpectedValue, t.pos())
	case c == '[':
		arr := &Entry{Type: TArray, Line: t.lineNo, Col: t.col}
		if len(t.arrs) > 0 {
			top := t.arrs[len(t.arrs)-1]
			arr.parent = top
			arr.Name = strconv.Itoa(len(top.Children))
		}
		t.arrs = append(t.arrs, arr)
		t.col++
		return nil, nil
	case c == ']':
		t.mode = readingArrayEnd
		return nil, nil
	case c == '"':
		return nil, t.openString()
	case c == 't' || c == 'T' || c == 'f' || c == 'F':
		return t.boolValue()
	case c == '-' || asciiDigit(c):
		return t.numberValue()
	default:
		return nil, UnexpectedErr(fmt.Sprintf("character %q", c), t.pos())
	}
}

func (t *Tokenizer) openString() error {
	startCol := t.col
	rest := t.line[t.col:]
	if len(rest) >= 3 && rest[1] == '"' && rest[2] == '"' {
		t.col += 3
		t.sb.Reset()
		t.contEsc = false
		t.valLine, t.valCol = t.lineNo, startCol
		t.mode = readingMultiLineStringValue
		return nil
	}
	t.col++
	t.sb.Reset()
	t.valLine, t.valCol = t.lineNo, startCol
	t.mode = readingStringValue
	return nil
}

func (t *Tokenizer) boolValue() (*Entry, error) {
	startCol := t.col
	n := valueTokenLen(t.line[t.col:])
	word := string(t.line[t.col : t.col+n])
	switch strings.ToLower(word) {
	case "true", "false":
	default:
		return nil, NewScanErr(fmt.Errorf("%w: invalid boolean literal %q", ErrKeyword, word), t.pos())
	}
	e := &Entry{Type: TBool, Text: word, Line: t.lineNo, Col: startCol}
	t.col += n
	return t.completeScalar(e)
}

func (t *Tokenizer) numberValue() (*Entry, error) {
	startCol := t.col
	n, typ, err := scanNumber(t.line[t.col:])
	if err != nil {
		return nil, NewScanErr(err, t.pos())
	}
	e := &Entry{Type: typ, Text: string(t.line[t.col : t.col+n]), Line: t.lineNo, Col: startCol}
	t.col += n
	return t.completeScalar(e)
}

func (t *Tokenizer) stepString() (*Entry, error) {
	for t.col < len(t.line) {
		c := t.line[t.col]
		switch c {
		case '\\':
			if t.col+1 >= len(t.line) {
				return nil, NewScanErr(ErrNewlineInString, t.pos())
			}
			ec, ok := escapeByte(t.line[t.col+1])
			if !ok {
				return nil, NewScanErr(
					fmt.Errorf("%w %q", ErrBadEscape, t.line[t.col+1]),
					t.posAt(t.col+1))
			}
			t.sb.WriteByte(ec)
			t.col += 2
		case '"':
			t.col++
			e := &Entry{Type: TString, Text: t.sb.String(), Line: t.valLine, Col: t.valCol}
			return t.completeScalar(e)
		default:
			t.sb.WriteByte(c)
			t.col++
		}
	}
	// end of line handled by the driving loop
	return nil, nil
}

func (t *Tokenizer) stepMultiLineString() (*Entry, error) {
	for t.col < len(t.line) {
		c := t.line[t.col]
		switch c {
		case '\\':
			if t.col+1 >= len(t.line) {
				// continuation escape: suppress this line's newline
				t.contEsc = true
				t.col++
				return nil, nil
			}
			nc := t.line[t.col+1]
			if nc == '"' {
				// escaped quote-start: advance past it rather
				// than closing
				t.sb.WriteByte('"')
				t.col += 2
				continue
			}
			ec, ok := escapeByte(nc)
			if !ok {
				return nil, NewScanErr(
					fmt.Errorf("%w %q", ErrBadEscape, nc),
					t.posAt(t.col+1))
			}
			t.sb.WriteByte(ec)
			t.col += 2
		case '"':
			rest := t.line[t.col:]
			if len(rest) >= 3 && rest[1] == '"' && rest[2] == '"' {
				t.col += 3
				e := &Entry{Type: TString, Text: t.sb.String(), Line: t.valLine, Col: t.valCol}
				return t.completeScalar(e)
			}
			t.sb.WriteByte('"')
			t.col++
		default:
			t.sb.WriteByte(c)
			t.col++
		}
	}
	return nil, nil
}

func (t *Tokenizer) stepArraySeparator() error {
	c := t.line[t.col]
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		t.col++
	case c == '#':
		t.col = len(t.line)
	case c == ',':
		t.col++
		t.mode = readingValue
	case c == ']':
		t.mode = readingArrayEnd
	default:
		return NewScanErr(ErrExpectedSep, t.pos())
	}
	return nil
}

// stepArrayEnd closes the innermost open array. If it was the
// outermost, the completed array is yielded and scanning resumes.
func (t *Tokenizer) stepArrayEnd() (*Entry, error) {
	if len(t.arrs) == 0 {
		return nil, NewScanErr(ErrUnexpectedClose, t.pos())
	}
	t.col++
	top := t.arrs[len(t.arrs)-1]
	t.arrs = t.arrs[:len(t.arrs)-1]
	top.Text = arrayText(top.Children)
	top.parent = nil
	if len(t.arrs) == 0 {
		top.Group = joinDots(t.group, t.keyPrefix)
		top.Name = t.key
		t.key, t.keyPrefix = "", ""
		t.mode = scanning
		return top, nil
	}
	parent := t.arrs[len(t.arrs)-1]
	parent.Children = append(parent.Children, top)
	t.mode = searchingForArraySeparator
	return nil, nil
}

func (t *Tokenizer) completeScalar(e *Entry) (*Entry, error) {
	if len(t.arrs) > 0 {
		top := t.arrs[len(t.arrs)-1]
		e.Name = strconv.Itoa(len(top.Children))
		top.Children = append(top.Children, e)
		t.mode = searchingForArraySeparator
		return nil, nil
	}
	e.Group = joinDots(t.group, t.keyPrefix)
	e.Name = t.key
	t.key, t.keyPrefix = "", ""
	t.mode = scanning
	return e, nil
}

func joinDots(parts ...string) string {
	res := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if res == "" {
			res = p
			continue
		}
		res += "." + p
	}
	return res
}
