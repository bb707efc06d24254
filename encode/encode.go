package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/perky-format/go-perky/debug"
	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/token"
)

type EncState struct {
	depth, indent int
	textBlocks    bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as perky text.  The root must be a mapping
// or a sequence.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:     4,
		textBlocks: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode: %s root, indent %d\n", node.Type, es.indent)
	}
	switch node.Type {
	case ir.MappingType:
		return encodeMapping(node, w, es)
	case ir.SequenceType:
		return encodeSequence(node, w, es)
	default:
		return fmt.Errorf("%w: root must be a mapping or sequence, got %s", ErrEncoding, node.Type)
	}
}

// String encodes node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeMapping(node *ir.Node, w io.Writer, es *EncState) error {
	for i, yField := range node.Fields {
		val := node.Values[i]
		if yField.Type != ir.StringType {
			return fmt.Errorf("%w: %w, got %s", ErrEncoding, ir.ErrKeyType, yField.Type)
		}
		f := yField.String
		if token.NeedsQuote(f) {
			f = token.Quote(f, true)
		}
		lead := indentString(es) +
			applyColor(es, ir.MappingType, FieldColor, f) +
			applyColor(es, ir.MappingType, SepColor, " = ")
		if err := encodeValue(val, w, es, lead); err != nil {
			return err
		}
	}
	return nil
}

func encodeSequence(node *ir.Node, w io.Writer, es *EncState) error {
	for _, val := range node.Values {
		if err := encodeValue(val, w, es, indentString(es)); err != nil {
			return err
		}
	}
	return nil
}

// encodeValue writes one value line (or frame) prefixed by lead, which
// already carries the indentation and, in a mapping, `key = `.
func encodeValue(val *ir.Node, w io.Writer, es *EncState, lead string) error {
	switch val.Type {
	case ir.StringType:
		return encodeString(val.String, w, es, lead)
	case ir.MappingType:
		if len(val.Fields) == 0 {
			return writeString(w, lead+applyColor(es, ir.MappingType, SepColor, "{}")+"\n")
		}
		if err := writeString(w, lead+applyColor(es, ir.MappingType, SepColor, "{")+"\n"); err != nil {
			return err
		}
		es.depth++
		if err := encodeMapping(val, w, es); err != nil {
			return err
		}
		es.depth--
		return writeString(w, indentString(es)+applyColor(es, ir.MappingType, SepColor, "}")+"\n")
	case ir.SequenceType:
		if len(val.Values) == 0 {
			return writeString(w, lead+applyColor(es, ir.SequenceType, SepColor, "[]")+"\n")
		}
		if err := writeString(w, lead+applyColor(es, ir.SequenceType, SepColor, "[")+"\n"); err != nil {
			return err
		}
		es.depth++
		if err := encodeSequence(val, w, es); err != nil {
			return err
		}
		es.depth--
		return writeString(w, indentString(es)+applyColor(es, ir.SequenceType, SepColor, "]")+"\n")
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrEncoding, val.Type)
	}
}

func encodeString(v string, w io.Writer, es *EncState, lead string) error {
	if es.textBlocks && strings.Contains(v, "\n") {
		if marker, ok := blockMarker(v); ok {
			return encodeTextBlock(v, marker, w, es, lead)
		}
	}
	if token.NeedsQuote(v) {
		v = token.Quote(v, true)
	}
	return writeString(w, lead+applyColor(es, ir.StringType, ValueColor, v)+"\n")
}

// blockMarker picks a text block delimiter no line of v collides
// with.  Whitespace-only lines cannot survive a block round trip, so
// their presence forces quoting instead.
func blockMarker(v string) (string, bool) {
	lines := strings.Split(v, "\n")
	for _, ln := range lines {
		if ln != "" && strings.TrimSpace(ln) == "" {
			return "", false
		}
	}
	for _, marker := range []string{token.DoubleBlock, token.SingleBlock} {
		ok := true
		for _, ln := range lines {
			if strings.TrimSpace(ln) == marker {
				ok = false
				break
			}
		}
		if ok {
			return marker, true
		}
	}
	return "", false
}

// encodeTextBlock writes v as a triple-quoted block.  Body lines and
// the closing delimiter indent one level past lead; the delimiter's
// indentation is what the parser strips back off.
func encodeTextBlock(v, marker string, w io.Writer, es *EncState, lead string) error {
	if err := writeString(w, lead+applyColor(es, ir.StringType, SepColor, marker)+"\n"); err != nil {
		return err
	}
	es.depth++
	defer func() { es.depth-- }()
	prefix := indentString(es)
	for _, ln := range strings.Split(v, "\n") {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, prefix+applyColor(es, ir.StringType, BlockColor, ln)+"\n"); err != nil {
			return err
		}
	}
	return writeString(w, prefix+applyColor(es, ir.StringType, SepColor, marker)+"\n")
}

func indentString(es *EncState) string {
	return strings.Repeat(" ", es.indent*es.depth)
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
