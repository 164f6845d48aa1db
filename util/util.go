// Package util holds small helpers shared by the command line and the browser.
package util

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"golang.org/x/term"
)

// Quantify formats count with the matching noun form, e.g. "1 entry", "3 entries".
func Quantify(count int, singular, plural string) string {
	return fmt.Sprint(count, " ", lo.Ternary(count == 1, singular, plural))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Ellipsize shortens s to at most width printable cells, ending with an ellipsis when cut.
func Ellipsize(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// TerminalSize reports the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable writes a status line without a newline. The returned
// function blanks it out again.
func PrintErasable(msg string) (erase func()) {
	_, _ = fmt.Fprint(os.Stdout, "\r"+msg)
	cells := ansi.PrintableRuneWidth(msg)
	return func() {
		_, _ = fmt.Fprint(os.Stdout, "\r"+strings.Repeat(" ", cells)+"\r")
	}
}

// Ignore calls f and drops its error. Meant for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, recursively when it is a directory. A missing path is an error.
func Delete(path string) error {
	fs := filesystem.API()

	info, err := fs.Stat(path)
	if err != nil {
		return err
	}

	return lo.Ternary(info.IsDir(), fs.RemoveAll, fs.Remove)(path)
}
