// Package debug provides environment controlled debug flags.
package debug

import "os"

var (
	parse   = os.Getenv("PERKY_DEBUG_PARSE") != ""
	tokens  = os.Getenv("PERKY_DEBUG_TOKENS") != ""
	pragma  = os.Getenv("PERKY_DEBUG_PRAGMA") != ""
	include = os.Getenv("PERKY_DEBUG_INCLUDE") != ""
	encode  = os.Getenv("PERKY_DEBUG_ENCODE") != ""
)

func Parse() bool {
	return parse
}

func Tokens() bool {
	return tokens
}

func Pragma() bool {
	return pragma
}

func Include() bool {
	return include
}

func Encode() bool {
	return encode
}
