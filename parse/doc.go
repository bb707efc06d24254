// Package parse turns perky text into an ir.Node tree.
//
// The format is line oriented.  A mapping frame holds `name = value`
// lines, a sequence frame holds bare value lines.  The values `{` and
// `[` open nested frames closed by `}` and `]` on their own lines,
// `{}` and `[]` denote empty containers, and `"""` or `'''` open a
// text block terminated by the same delimiter.  Lines starting with
// `=` dispatch to pragma handlers.
package parse
