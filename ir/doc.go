// Package ir provides the in-memory representation of perky documents.
//
// A perky document is a tree of ir.Node values.  A Node is one of
// three kinds: a String (the only scalar the format has), an ordered
// Mapping from string keys to nodes, or a Sequence of nodes.  The IR
// carries no position information; it is purely semantic.
//
// Mappings preserve insertion order, which the serializer reproduces.
// Keys are unique within one mapping; Set overwrites in place, which
// is how file inclusion merges documents.
package ir
