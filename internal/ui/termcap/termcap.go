// Package termcap decides whether terminal output can carry styling and
// wraps writers so that styled text degrades to plain text when it cannot.
package termcap

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"
)

// Profile detects the color profile for w from environ. noColor caps the
// result at attributes only (bold/italic, no colors).
func Profile(w io.Writer, environ []string, noColor bool) colorprofile.Profile {
	p := colorprofile.Detect(w, environ)
	if noColor && p > colorprofile.Ascii {
		p = colorprofile.Ascii
	}
	return p
}

// Styled reports whether p renders any escape sequences at all.
func Styled(p colorprofile.Profile) bool {
	return p != colorprofile.NoTTY
}

// NewWriter returns a writer that downsamples styled text written to w to
// profile p. With colorprofile.NoTTY every escape sequence is stripped.
func NewWriter(w io.Writer, p colorprofile.Profile) io.Writer {
	return &colorprofile.Writer{Forward: w, Profile: p}
}

// Plain returns a writer that strips all styling. Used by tests and by
// non-interactive output.
func Plain(w io.Writer) io.Writer {
	return NewWriter(w, colorprofile.NoTTY)
}

// IsTerminal reports whether v is a TTY file descriptor.
func IsTerminal(v any) bool {
	if v == nil {
		return false
	}
	if file, ok := v.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := v.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
