package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Eval  bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("JOT_DEBUG_PATCH")
	d.Eval = boolEnv("JOT_DEBUG_EVAL")
	d.Diff = boolEnv("JOT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}

func Eval() bool {
	return d.Eval
}

func Diff() bool {
	return d.Diff
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
