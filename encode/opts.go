package encode

type EncodeOption func(*EncState)

// Indent sets the spaces per nesting level, 4 by default.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth starts encoding at nesting level n instead of 0.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// TextBlocks controls whether multi-line strings become triple-quoted
// blocks.  Off, they encode as quoted strings with escapes.
func TextBlocks(v bool) EncodeOption {
	return func(es *EncState) { es.textBlocks = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
