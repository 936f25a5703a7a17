// Package debug holds env-gated debug switches for the parser.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Scan  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("VCFG_DEBUG_PARSE")
	d.Scan = boolEnv("VCFG_DEBUG_SCAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Scan() bool {
	return d.Scan
}
