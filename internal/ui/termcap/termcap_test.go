package termcap

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/stretchr/testify/assert"
)

func TestPlain_StripsStyling(t *testing.T) {
	var buf bytes.Buffer
	styled := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E")).Render("Correct!")

	fmt.Fprint(Plain(&buf), styled)

	assert.Equal(t, "Correct!", buf.String())
	assert.False(t, strings.Contains(buf.String(), "\x1b"))
}

func TestProfile_NonTerminalIsUnstyled(t *testing.T) {
	var buf bytes.Buffer
	p := Profile(&buf, []string{"TERM=xterm-256color"}, false)
	assert.False(t, Styled(p))
}

func TestProfile_NoColorCapsAtAscii(t *testing.T) {
	var buf bytes.Buffer
	p := Profile(&buf, []string{"TERM=xterm-256color"}, true)
	assert.LessOrEqual(t, int(p), int(colorprofile.Ascii))
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}
