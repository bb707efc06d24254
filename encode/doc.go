// Package encode writes ir.Node trees as perky text.
//
// Output parses back to an equal tree: keys and values that could be
// misread are quoted, multi-line strings become triple-quoted text
// blocks, and nested containers indent one level per depth.
package encode
