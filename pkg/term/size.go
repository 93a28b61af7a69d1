// Package term detects the terminal size for table layout.
package term

import (
	"os"
	"strconv"

	xterm "golang.org/x/term"
)

// FallbackWidth is used when no terminal size can be detected.
const FallbackWidth = 120

// FallbackHeight pairs with FallbackWidth.
const FallbackHeight = 24

// sizeFunc is swapped in tests.
var sizeFunc = xterm.GetSize

// DetectSize returns the best-effort terminal width and height by probing
// stdout, stderr and stdin, then the COLUMNS environment variable. If all of
// them fail it returns FallbackWidth and FallbackHeight so output in CI or
// pipes is not squeezed.
func DetectSize() (width, height int) {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, h, err := sizeFunc(int(f.Fd())); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, FallbackHeight
		}
	}
	return FallbackWidth, FallbackHeight
}

// DetectWidth returns the width part of DetectSize.
func DetectWidth() int {
	w, _ := DetectSize()
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}
