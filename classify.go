package keypress

import (
	"regexp"
	"strconv"
)

var (
	// ESC followed by one alphanumeric character
	metaKeyPattern = regexp.MustCompile(`^\x1b([a-zA-Z0-9])$`)

	// One or more ESC, an introducer, then either "digits[;modifier]~^$" or "[1;][modifier]letter".
	// Only the start is anchored, anything after a recognized sequence is ignored.
	functionKeyPattern = regexp.MustCompile(`^\x1b+(O|N|\[|\[\[)(?:(\d+)(?:;(\d+))?([~^$])|(?:1;)?(\d+)?([a-zA-Z]))`)
)

// functionKey holds the interesting parts of a CSI or SS3 sequence
type functionKey struct {
	code     string // introducer + number + terminator + letter
	modifier int    // modifier parameter minus one
}

// Modifier bits of the xterm style modifier parameter, after subtracting one
const (
	modShift = 1
	modAlt   = 2
	modCtrl  = 4
	modMeta  = 8
)

func (fk functionKey) ctrl() bool  { return fk.modifier&modCtrl != 0 }
func (fk functionKey) meta() bool  { return fk.modifier&(modAlt|modMeta) != 0 }
func (fk functionKey) shift() bool { return fk.modifier&modShift != 0 }

// matchMeta matches ESC followed by a single letter or digit
func matchMeta(s string) (byte, bool) {
	m := metaKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return m[1][0], true
}

// matchFunctionKey matches arrow, navigation and function key sequences
func matchFunctionKey(s string) (functionKey, bool) {
	m := functionKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return functionKey{}, false
	}
	modifier := 1
	param := m[3]
	if param == "" {
		param = m[5]
	}
	if param != "" {
		if n, err := strconv.Atoi(param); err == nil {
			modifier = n
		}
	}
	return functionKey{
		code:     m[1] + m[2] + m[4] + m[6],
		modifier: modifier - 1,
	}, true
}

// isLetter reports whether r is in A..z (ASCII 0x41 to 0x7A) or is a Cyrillic letter
func isLetter(r rune) bool {
	switch {
	case r >= 'A' && r <= 'z':
		return true
	case r >= 'А' && r <= 'я':
		return true
	}
	return r == 'Ё' || r == 'ё'
}
