// Package encode writes tree nodes and objects as JSON.
//
// The output is indented by two spaces per level, uses ": " between keys
// and values, writes "[]" and "{}" for empty containers and ends with a
// newline. Strings are written with non-ASCII characters as is and with
// only quotes, backslashes and control characters escaped. Floats always
// carry a fraction or exponent, so 3.0 stays distinct from 3.
//
// Node sequences are encoded as arrays of objects with the fields "key",
// "value" and "children" in that order. Objects keep their field order.
//
// Output can be colored by passing [EncodeColors] with [NewColors].
package encode
