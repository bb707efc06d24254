// Package token turns perky source text into logical lines and typed
// line values.
//
// The format is line oriented.  A Scanner yields logical lines (blank
// and comment lines skipped) or raw physical lines (inside text
// blocks, where everything is literal).  SplitKeyValue performs the
// quote-aware split on the first unquoted '=', and Scalar classifies
// a value substring as a structural token, a quoted string or a plain
// string.
package token
