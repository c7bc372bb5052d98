package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Indent sets the unit written once per nesting level.
func Indent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}
