// Package debug provides env-gated diagnostics for the parsing and
// evaluation paths. Gates are read once at startup from KG_DEBUG_*
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan bool
	Eval bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("KG_DEBUG_SCAN")
	d.Eval = boolEnv("KG_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}

func Eval() bool {
	return d.Eval
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
