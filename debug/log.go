package debug

import (
	"fmt"
	"os"
)

// Logf writes a debug message to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
