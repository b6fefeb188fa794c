// Package debug holds env-gated debug switches for the scanner and
// parser. Set KDL_DEBUG_SCAN or KDL_DEBUG_PARSE to a truthy value to
// turn on tracing to stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("KDL_DEBUG_SCAN")
	d.Parse = boolEnv("KDL_DEBUG_PARSE")
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
func Parse() bool {
	return d.Parse
}
