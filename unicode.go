package keypress

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// RenderUnicode returns s as a series of \uXXXX escapes, one per UTF-16 code unit.
// Runes outside of the BMP become a surrogate pair.
func RenderUnicode(s string) string {
	var sb strings.Builder
	for _, unit := range utf16.Encode([]rune(s)) {
		fmt.Fprintf(&sb, "\\u%04X", unit)
	}
	return sb.String()
}
