package token

import "strings"

// ValueKind classifies one value substring of a logical line.
type ValueKind int

const (
	VString ValueKind = iota
	VOpenMapping
	VOpenSequence
	VCloseMapping
	VCloseSequence
	VEmptyMapping
	VEmptySequence
	VTextBlock
)

func (k ValueKind) String() string {
	return map[ValueKind]string{
		VString:        "VString",
		VOpenMapping:   "VOpenMapping",
		VOpenSequence:  "VOpenSequence",
		VCloseMapping:  "VCloseMapping",
		VCloseSequence: "VCloseSequence",
		VEmptyMapping:  "VEmptyMapping",
		VEmptySequence: "VEmptySequence",
		VTextBlock:     "VTextBlock",
	}[k]
}

// Value is a classified value substring.  Text holds the decoded
// string for VString and the delimiter for VTextBlock.
type Value struct {
	Kind   ValueKind
	Text   string
	Quoted bool
}

const (
	DoubleBlock = `"""`
	SingleBlock = "'''"
)

// Reserved reports whether s is one of the structural tokens that may
// not appear unquoted where a scalar is required.
func Reserved(s string) bool {
	switch s {
	case "{", "}", "[", "]", "{}", "[]", DoubleBlock, SingleBlock:
		return true
	}
	return false
}

// SplitKeyValue splits s at its first unquoted '='.  Both sides keep
// their quoting; surrounding whitespace is stripped.
func SplitKeyValue(s string) (key, val string, found bool) {
	var (
		quote   byte
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if quote != 0 {
				escaped = true
			}
		case '"', '\'':
			switch quote {
			case 0:
				quote = c
			case c:
				quote = 0
			}
		case '=':
			if quote == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return "", "", false
}

// Scalar classifies a trimmed value substring.
func Scalar(s string, pos Pos) (Value, error) {
	switch s {
	case "{":
		return Value{Kind: VOpenMapping}, nil
	case "[":
		return Value{Kind: VOpenSequence}, nil
	case "}":
		return Value{Kind: VCloseMapping}, nil
	case "]":
		return Value{Kind: VCloseSequence}, nil
	case DoubleBlock, SingleBlock:
		return Value{Kind: VTextBlock, Text: s}, nil
	}
	if s == "" {
		return Value{Kind: VString, Text: ""}, nil
	}
	switch s[0] {
	case '{':
		if strings.TrimSpace(s[1:]) == "}" {
			return Value{Kind: VEmptyMapping}, nil
		}
		return Value{}, UnexpectedErr("content inside inline {}", pos)
	case '[':
		if strings.TrimSpace(s[1:]) == "]" {
			return Value{Kind: VEmptySequence}, nil
		}
		return Value{}, UnexpectedErr("content inside inline []", pos)
	case '}', ']':
		return Value{}, UnexpectedErr(string(s[0]), pos)
	}
	if strings.HasPrefix(s, DoubleBlock) || strings.HasPrefix(s, SingleBlock) {
		return Value{}, NewErr(ErrBlockOpen, pos)
	}
	if s[0] == '"' || s[0] == '\'' {
		n, err := bsEscQuoted([]byte(s))
		if err != nil {
			return Value{}, NewErr(err, pos)
		}
		if n != len(s) {
			return Value{}, UnexpectedErr("trailing content after quoted string", pos)
		}
		return Value{Kind: VString, Text: QuotedToString(s), Quoted: true}, nil
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '}', '[', ']', '=':
			return Value{}, NewErr(ErrReserved, pos)
		case '"', '\'':
			return Value{}, NewErr(ErrQuote, pos)
		}
	}
	return Value{Kind: VString, Text: s}, nil
}
