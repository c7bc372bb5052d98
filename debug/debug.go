package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Extract bool
	Coerce  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Extract = boolEnv("TREEJSON_DEBUG_EXTRACT")
	d.Coerce = boolEnv("TREEJSON_DEBUG_COERCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Extract() bool {
	return d.Extract
}

func Coerce() bool {
	return d.Coerce
}
