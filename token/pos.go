package token

import (
	"fmt"
	"strconv"
)

// Pos locates a point of interest in the input: a 1-based line, a
// 0-based column, and the full text of that line for error context.
type Pos struct {
	Line int
	Col  int
	Text string
}

func (p Pos) String() string {
	sample := p.Text
	if sample == "" {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`%s` (line=%d, col=%d)", sample, p.Line, p.Col)
}
