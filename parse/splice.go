package parse

import (
	"fmt"

	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/token"
)

// The parser is the pragma.Context handed to handlers: pragma effects
// land in the innermost open frame.

func (p *parser) Kind() ir.Type {
	return p.top.Type
}

func (p *parser) Insert(key string, v *ir.Node) error {
	if p.top.Type != ir.MappingType {
		return fmt.Errorf("insert into %s frame at %s", p.top.Type, p.pos)
	}
	p.top.Set(key, v)
	return nil
}

func (p *parser) Append(v *ir.Node) error {
	if p.top.Type != ir.SequenceType {
		return fmt.Errorf("append to %s frame at %s", p.top.Type, p.pos)
	}
	p.top.Append(v)
	return nil
}

func (p *parser) Pos() token.Pos {
	return p.pos
}

func (p *parser) Depth() int {
	return p.depth
}

// Splice parses text as its own document rooted at the current frame's
// kind, then merges it in.  The sub-parse enforces the usual rules, so
// duplicate keys inside text still fail; only the merge step may
// overwrite keys already present in the frame.
func (p *parser) Splice(text []byte, source string) error {
	if p.depth+1 > p.opts.maxDepth {
		return fmt.Errorf("%w (%d) at %s", ErrDepth, p.opts.maxDepth, p.pos)
	}
	var sub *ir.Node
	if p.top.Type == ir.MappingType {
		sub = ir.NewMapping()
	} else {
		sub = ir.NewSequence()
	}
	subOpts := &parseOpts{
		source:   source,
		pragmas:  p.opts.pragmas,
		maxDepth: p.opts.maxDepth,
	}
	if err := parseInto(string(text), sub, subOpts, p.depth+1); err != nil {
		return err
	}
	if p.top.Type == ir.MappingType {
		for i := range sub.Fields {
			p.top.Set(sub.Fields[i].String, sub.Values[i])
		}
		return nil
	}
	for _, v := range sub.Values {
		p.top.Append(v)
	}
	return nil
}
