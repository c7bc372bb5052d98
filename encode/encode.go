package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/treejson/tree"
)

var ErrUnsupported = errors.New("unsupported value")

type EncState struct {
	depth  int
	indent string

	Color func(tree.Type, ColorAttr, string) string
}

// Encode writes v as indented JSON followed by a newline. v may be a node
// sequence, a single node, an object or a value. Nothing is written to w if
// encoding fails.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(v, buf, es); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func encode(v any, buf *bytes.Buffer, es *EncState) error {
	switch x := v.(type) {
	case []*tree.Node:
		return encodeNodes(x, buf, es)
	case *tree.Node:
		return encodeNode(x, buf, es)
	case *tree.Object:
		return encodeObject(x, buf, es)
	case tree.Value:
		encodeValue(x, buf, es)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func encodeNodes(nodes []*tree.Node, buf *bytes.Buffer, es *EncState) error {
	if len(nodes) == 0 {
		writeSep(buf, es, tree.ObjectType, "[]")
		return nil
	}
	writeSep(buf, es, tree.ObjectType, "[")
	es.depth++
	for i, n := range nodes {
		writeNL(buf, es)
		if err := encodeNode(n, buf, es); err != nil {
			return err
		}
		if i < len(nodes)-1 {
			writeSep(buf, es, tree.ObjectType, ",")
		}
	}
	es.depth--
	writeNL(buf, es)
	writeSep(buf, es, tree.ObjectType, "]")
	return nil
}

func encodeNode(n *tree.Node, buf *bytes.Buffer, es *EncState) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrUnsupported)
	}
	writeSep(buf, es, tree.ObjectType, "{")
	es.depth++
	writeNL(buf, es)
	writeField(buf, es, "key")
	encodeValue(tree.FromString(n.Key), buf, es)
	writeSep(buf, es, tree.ObjectType, ",")
	writeNL(buf, es)
	writeField(buf, es, "value")
	encodeValue(n.Value, buf, es)
	writeSep(buf, es, tree.ObjectType, ",")
	writeNL(buf, es)
	writeField(buf, es, "children")
	if err := encodeNodes(n.Children, buf, es); err != nil {
		return err
	}
	es.depth--
	writeNL(buf, es)
	writeSep(buf, es, tree.ObjectType, "}")
	return nil
}

func encodeObject(o *tree.Object, buf *bytes.Buffer, es *EncState) error {
	if o.Len() == 0 {
		writeSep(buf, es, tree.ObjectType, "{}")
		return nil
	}
	if len(o.Fields) != len(o.Values) {
		return fmt.Errorf("%w: object with %d fields and %d values", ErrUnsupported, len(o.Fields), len(o.Values))
	}
	writeSep(buf, es, tree.ObjectType, "{")
	es.depth++
	for i, f := range o.Fields {
		writeNL(buf, es)
		writeField(buf, es, f)
		m := o.Values[i]
		if m.Object != nil {
			if err := encodeObject(m.Object, buf, es); err != nil {
				return err
			}
		} else {
			encodeValue(m.Value, buf, es)
		}
		if i < len(o.Fields)-1 {
			writeSep(buf, es, tree.ObjectType, ",")
		}
	}
	es.depth--
	writeNL(buf, es)
	writeSep(buf, es, tree.ObjectType, "}")
	return nil
}

func encodeValue(v tree.Value, buf *bytes.Buffer, es *EncState) {
	var s string
	switch v.Type {
	case tree.BoolType:
		s = strconv.FormatBool(v.Bool)
	case tree.NumberType:
		switch {
		case v.IsInt():
			s = strconv.FormatInt(*v.Int64, 10)
		case v.IsFloat():
			s = tree.FormatFloat(*v.Float64)
		default:
			s = v.Number
		}
	case tree.StringType:
		s = Quote(v.String)
	default:
		v.Type = tree.NullType
		s = "null"
	}
	buf.WriteString(applyColor(es, v.Type, ValueColor, s))
}

func writeField(buf *bytes.Buffer, es *EncState, f string) {
	buf.WriteString(applyColor(es, tree.ObjectType, FieldColor, Quote(f)))
	writeSep(buf, es, tree.ObjectType, ":")
	buf.WriteByte(' ')
}

func writeSep(buf *bytes.Buffer, es *EncState, t tree.Type, s string) {
	buf.WriteString(applyColor(es, t, SepColor, s))
}

func writeNL(buf *bytes.Buffer, es *EncState) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(es.indent, es.depth))
}

func applyColor(es *EncState, t tree.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

const hex = "0123456789abcdef"

// Quote returns s as a JSON string. Only the quote, the backslash and
// control characters are escaped; other characters, including non-ASCII
// and HTML special characters, are written as is. Invalid UTF-8 becomes
// U+FFFD.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"', '\\':
				sb.WriteByte('\\')
				sb.WriteByte(c)
			case '\n':
				sb.WriteString(`\n`)
			case '\r':
				sb.WriteString(`\r`)
			case '\t':
				sb.WriteString(`\t`)
			case '\b':
				sb.WriteString(`\b`)
			case '\f':
				sb.WriteString(`\f`)
			default:
				if c < 0x20 {
					sb.WriteString(`\u00`)
					sb.WriteByte(hex[c>>4])
					sb.WriteByte(hex[c&0xf])
				} else {
					sb.WriteByte(c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteString("�")
		} else {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	sb.WriteByte('"')
	return sb.String()
}
