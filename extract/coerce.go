package extract

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/treejson/debug"
	"github.com/signadot/treejson/tree"
)

// A coercer either converts s or reports no match. Coercers never fail.
type coercer func(s string) (tree.Value, bool)

var coercers = []coercer{
	coerceBool,
	coerceNumber,
}

// Coerce converts raw label text into a primitive value. One layer of
// matching single or double quotes is removed, then the text is tried as a
// boolean and as a number. Text that is neither is returned as a string.
func Coerce(raw string) tree.Value {
	s := unquote(raw)
	for _, c := range coercers {
		if v, ok := c(s); ok {
			if debug.Coerce() {
				debug.Logf("coerce %q -> %v\n", raw, v)
			}
			return v
		}
	}
	if debug.Coerce() {
		debug.Logf("coerce %q -> string\n", raw)
	}
	return tree.FromString(s)
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q == '"' || q == '\'') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}

func coerceBool(s string) (tree.Value, bool) {
	switch strings.ToLower(s) {
	case "true":
		return tree.FromBool(true), true
	case "false":
		return tree.FromBool(false), true
	}
	return tree.Value{}, false
}

// coerceNumber reads text containing a '.' as a float and anything else as
// a base 10 integer. Integers beyond 64 bits keep their exact literal.
func coerceNumber(s string) (tree.Value, bool) {
	t := strings.TrimSpace(s)
	if t == "" || strings.ContainsAny(t, "xX_") {
		return tree.Value{}, false
	}
	if strings.Contains(t, ".") {
		f, err := strconv.ParseFloat(t, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return tree.Value{}, false
		}
		return tree.FromFloat(f), true
	}
	i, err := strconv.ParseInt(t, 10, 64)
	if err == nil {
		return tree.FromInt(i), true
	}
	if !errors.Is(err, strconv.ErrRange) {
		return tree.Value{}, false
	}
	b, ok := new(big.Int).SetString(t, 10)
	if !ok {
		return tree.Value{}, false
	}
	return tree.FromNumber(b.String()), true
}
