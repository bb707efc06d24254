// Package pragma defines the pragma handler interface and a registry
// of named handlers, together with the built-in handlers: file
// inclusion, environment lookup and expression evaluation.
//
// A pragma line of the form
//
//	=name argument
//
// dispatches to the Handler registered under name.  Handlers receive a
// narrow Context into the running parse: they can inspect the current
// frame's kind, insert or append values, and splice further perky text
// into the document.
package pragma
