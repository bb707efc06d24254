package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/perky-format/go-perky/debug"
	"github.com/perky-format/go-perky/ir"
	"github.com/perky-format/go-perky/pragma"
	"github.com/perky-format/go-perky/token"
)

// Parse reads perky text and returns the resulting tree.  The root is
// a mapping unless the Root option says otherwise.  On error, the
// returned node holds everything parsed before the failure.
func Parse(text string, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(pOpts)
	}
	root := pOpts.root
	if root == nil {
		root = ir.NewMapping()
	}
	return root, parseInto(text, root, pOpts, 0)
}

func parseInto(text string, root *ir.Node, opts *parseOpts, depth int) error {
	if !root.Type.IsContainer() {
		return fmt.Errorf("%w, got %s", ErrRoot, root.Type)
	}
	if !utf8.ValidString(text) {
		return formatErr(token.NewErr(token.ErrBadUTF8, token.Pos{Source: opts.source}))
	}
	p := &parser{
		sc:    token.NewScanner(text, opts.source),
		opts:  opts,
		top:   root,
		depth: depth,
	}
	if root.Type == ir.MappingType {
		return p.parseMapping(root, token.Pos{Source: opts.source}, true)
	}
	return p.parseSequence(root, token.Pos{Source: opts.source}, true)
}

type parser struct {
	sc    *token.Scanner
	opts  *parseOpts
	top   *ir.Node
	pos   token.Pos
	depth int
}

// parseMapping consumes `name = value` lines into m until the closing
// `}` line, or end of input when m is the document root.
func (p *parser) parseMapping(m *ir.Node, open token.Pos, atRoot bool) error {
	for {
		ln, ok := p.sc.Next()
		if !ok {
			if atRoot {
				return nil
			}
			return fmt.Errorf("%w: mapping opened at %s", ErrUnterminated, open)
		}
		p.pos = ln.Pos
		if debug.Parse() {
			debug.Logf("parse: %s %q\n", ln.Pos, ln.Text)
		}
		if ln.Text[0] == '=' {
			if err := p.pragmaLine(ln); err != nil {
				return err
			}
			continue
		}
		if ln.Text == "}" {
			if atRoot {
				return formatErr(token.UnexpectedErr("}", ln.Pos))
			}
			return nil
		}
		if ln.Text == "]" {
			return formatErr(token.UnexpectedErr("] closing a mapping", ln.Pos))
		}
		rawKey, rawVal, found := token.SplitKeyValue(ln.Text)
		if !found {
			return fmt.Errorf("%w: missing = in mapping line at %s", ErrFormat, ln.Pos)
		}
		key, err := p.key(rawKey, ln.Pos)
		if err != nil {
			return err
		}
		if m.Has(key) {
			return fmt.Errorf("%w %q at %s", ErrDuplicateKey, key, ln.Pos)
		}
		v, err := p.value(rawVal, ln.Pos)
		if err != nil {
			return err
		}
		m.Set(key, v)
	}
}

// parseSequence consumes bare value lines into seq until the closing
// `]` line, or end of input when seq is the document root.
func (p *parser) parseSequence(seq *ir.Node, open token.Pos, atRoot bool) error {
	for {
		ln, ok := p.sc.Next()
		if !ok {
			if atRoot {
				return nil
			}
			return fmt.Errorf("%w: sequence opened at %s", ErrUnterminated, open)
		}
		p.pos = ln.Pos
		if debug.Parse() {
			debug.Logf("parse: %s %q\n", ln.Pos, ln.Text)
		}
		if ln.Text[0] == '=' {
			if err := p.pragmaLine(ln); err != nil {
				return err
			}
			continue
		}
		if ln.Text == "]" {
			if atRoot {
				return formatErr(token.UnexpectedErr("]", ln.Pos))
			}
			return nil
		}
		if ln.Text == "}" {
			return formatErr(token.UnexpectedErr("} closing a sequence", ln.Pos))
		}
		if _, _, found := token.SplitKeyValue(ln.Text); found {
			return fmt.Errorf("%w at %s", ErrSequenceShape, ln.Pos)
		}
		v, err := p.value(ln.Text, ln.Pos)
		if err != nil {
			return err
		}
		seq.Append(v)
	}
}

// value classifies one value substring and, for open delimiters, parses
// the nested frame through to its closing line.
func (p *parser) value(raw string, pos token.Pos) (*ir.Node, error) {
	val, err := token.Scalar(raw, pos)
	if err != nil {
		return nil, formatErr(err)
	}
	if debug.Tokens() {
		debug.Logf("token: %s %s %q\n", pos, val.Kind, val.Text)
	}
	switch val.Kind {
	case token.VString:
		return ir.FromString(val.Text), nil
	case token.VEmptyMapping:
		return ir.NewMapping(), nil
	case token.VEmptySequence:
		return ir.NewSequence(), nil
	case token.VOpenMapping:
		child := ir.NewMapping()
		prev := p.top
		p.top = child
		err := p.parseMapping(child, pos, false)
		p.top = prev
		return child, err
	case token.VOpenSequence:
		child := ir.NewSequence()
		prev := p.top
		p.top = child
		err := p.parseSequence(child, pos, false)
		p.top = prev
		return child, err
	case token.VTextBlock:
		s, err := p.sc.TextBlock(val.Text, pos)
		if err != nil {
			return nil, formatErr(err)
		}
		return ir.FromString(s), nil
	case token.VCloseMapping:
		return nil, formatErr(token.UnexpectedErr("}", pos))
	default:
		return nil, formatErr(token.UnexpectedErr("]", pos))
	}
}

// key decodes the left hand side of a mapping line.  Keys are scalar
// strings, quoted or not.
func (p *parser) key(raw string, pos token.Pos) (string, error) {
	val, err := token.Scalar(raw, pos)
	if err != nil {
		return "", formatErr(err)
	}
	if val.Kind != token.VString {
		return "", fmt.Errorf("%w: key must be a string at %s", ErrFormat, pos)
	}
	return val.Text, nil
}

// pragmaLine dispatches a `=name argument` line to its handler.
func (p *parser) pragmaLine(ln token.Line) error {
	rest := strings.TrimSpace(ln.Text[1:])
	if rest == "" {
		return fmt.Errorf("%w: missing name at %s", ErrPragma, ln.Pos)
	}
	name, arg := rest, ""
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		name, arg = rest[:i], strings.TrimSpace(rest[i+1:])
	}
	if !pragma.ValidName(name) {
		return fmt.Errorf("%w: bad name %q at %s", ErrPragma, name, ln.Pos)
	}
	h := p.opts.pragmas.Lookup(name)
	if h == nil {
		return fmt.Errorf("%w %q at %s", pragma.ErrUndefined, name, ln.Pos)
	}
	args := []string{}
	if arg != "" {
		if token.Reserved(arg) {
			return fmt.Errorf("%w: reserved token %q at %s", ErrPragma, arg, ln.Pos)
		}
		if arg[0] == '"' || arg[0] == '\'' {
			s, err := token.Unquote(arg)
			if err != nil {
				return formatErr(token.NewErr(err, ln.Pos))
			}
			arg = s
		}
		args = append(args, arg)
	}
	if debug.Pragma() {
		debug.Logf("pragma: =%s at %s\n", name, ln.Pos)
	}
	if err := h.Handle(p, args); err != nil {
		return fmt.Errorf("pragma %s at %s: %w", name, ln.Pos, err)
	}
	return nil
}
