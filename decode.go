package keypress

import (
	"strings"
	"unicode"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
)

// tableEntry is a key found in the code table, possibly with implied modifiers
type tableEntry struct {
	key   Key
	shift bool
	ctrl  bool
}

// codeTable maps a reassembled CSI/SS3 code (without leading ESC, "1;" and
// modifier parameter) to a key
var codeTable = map[string]tableEntry{
	// xterm/gnome ESC O letter
	"OP": {key: KeyF1},
	"OQ": {key: KeyF2},
	"OR": {key: KeyF3},
	"OS": {key: KeyF4},

	// xterm/rxvt ESC [ number ~
	"[11~": {key: KeyF1},
	"[12~": {key: KeyF2},
	"[13~": {key: KeyF3},
	"[14~": {key: KeyF4},

	// Cygwin and libuv
	"[[A": {key: KeyF1},
	"[[B": {key: KeyF2},
	"[[C": {key: KeyF3},
	"[[D": {key: KeyF4},
	"[[E": {key: KeyF5},

	// common
	"[15~": {key: KeyF5},
	"[17~": {key: KeyF6},
	"[18~": {key: KeyF7},
	"[19~": {key: KeyF8},
	"[20~": {key: KeyF9},
	"[21~": {key: KeyF10},
	"[23~": {key: KeyF11},
	"[24~": {key: KeyF12},

	// xterm ESC [ letter
	"[A": {key: KeyUp},
	"[B": {key: KeyDown},
	"[C": {key: KeyRight},
	"[D": {key: KeyLeft},
	"[E": {key: KeyClear},
	"[F": {key: KeyEnd},
	"[H": {key: KeyHome},

	// xterm/gnome ESC O letter
	"OA": {key: KeyUp},
	"OB": {key: KeyDown},
	"OC": {key: KeyRight},
	"OD": {key: KeyLeft},
	"OE": {key: KeyClear},
	"OF": {key: KeyEnd},
	"OH": {key: KeyHome},

	// xterm/rxvt ESC [ number ~
	"[1~": {key: KeyHome},
	"[2~": {key: KeyInsert},
	"[3~": {key: KeyDelete},
	"[4~": {key: KeyEnd},
	"[5~": {key: KeyPageUp},
	"[6~": {key: KeyPageDown},

	// putty
	"[[5~": {key: KeyPageUp},
	"[[6~": {key: KeyPageDown},

	// rxvt
	"[7~": {key: KeyHome},
	"[8~": {key: KeyEnd},

	// rxvt keys with modifiers
	"[a": {key: KeyUp, shift: true},
	"[b": {key: KeyDown, shift: true},
	"[c": {key: KeyRight, shift: true},
	"[d": {key: KeyLeft, shift: true},
	"[e": {key: KeyClear, shift: true},

	"[2$": {key: KeyInsert, shift: true},
	"[3$": {key: KeyDelete, shift: true},
	"[5$": {key: KeyPageUp, shift: true},
	"[6$": {key: KeyPageDown, shift: true},
	"[7$": {key: KeyHome, shift: true},
	"[8$": {key: KeyEnd, shift: true},

	"Oa": {key: KeyUp, ctrl: true},
	"Ob": {key: KeyDown, ctrl: true},
	"Oc": {key: KeyRight, ctrl: true},
	"Od": {key: KeyLeft, ctrl: true},
	"Oe": {key: KeyClear, ctrl: true},

	"[2^": {key: KeyInsert, ctrl: true},
	"[3^": {key: KeyDelete, ctrl: true},
	"[5^": {key: KeyPageUp, ctrl: true},
	"[6^": {key: KeyPageDown, ctrl: true},
	"[7^": {key: KeyHome, ctrl: true},
	"[8^": {key: KeyEnd, ctrl: true},

	// misc.
	"[Z": {key: KeyTab, shift: true},
}

// Decode converts the bytes of one terminal read into key events.
// It never fails and always returns at least one event.
// A leading byte order mark is dropped and invalid UTF-8 is replaced
// with U+FFFD before decoding.
func Decode(b []byte) []KeyEvent {
	return DecodeString(bytesToText(b))
}

// DecodeString is like Decode, but for input that is already text
func DecodeString(s string) []KeyEvent {
	event := KeyEvent{
		KeyCode:  NoKeyCode,
		Sequence: s,
		Unicode:  RenderUnicode(s),
	}

	single := utf8.RuneCountInString(s) == 1
	var r rune
	if single {
		r, _ = utf8.DecodeRuneInString(s)
		event.Key = Key(s)
		event.KeyCode = int(r)
	}

	switch {
	case s == "\r":
		event.Key = KeyReturn
	case s == "\n":
		event.Key = KeyEnter
	case s == "\t":
		event.Key = KeyTab
	case s == "\b" || s == "\x7f" || s == "\x1b\x7f" || s == "\x1b\b":
		// backspace, or ctrl-h
		event.Key = KeyBackspace
		event.Meta = s[0] == 0x1b
	case s == "\x1b" || s == "\x1b\x1b":
		event.Key = KeyEscape
		event.Meta = len(s) == 2
	case s == " " || s == "\x1b ":
		event.Key = KeySpace
		event.Meta = len(s) == 2
	case single && r <= 0x1a:
		// ctrl-letter
		event.Key = Key(string(r + 'a' - 1))
		event.Ctrl = true
	case single && isLetter(r):
		event.Key = Key(s)
		event.Shift = unicode.ToLower(r) != r && unicode.ToUpper(r) == r
	default:
		if c, ok := matchMeta(s); ok {
			event.Key = Key(strings.ToLower(string(c)))
			event.Meta = true
			event.Shift = c >= 'A' && c <= 'Z'
			break
		}
		if fk, ok := matchFunctionKey(s); ok {
			event.Ctrl = fk.ctrl()
			event.Meta = fk.meta()
			event.Shift = fk.shift()
			event.Code = fk.code
			entry, found := codeTable[fk.code]
			if !found {
				event.Key = KeyUndefined
				break
			}
			event.Key = entry.key
			event.Shift = event.Shift || entry.shift
			event.Ctrl = event.Ctrl || entry.ctrl
			break
		}
		if !single && len(s) > 1 && s[0] != 0x1b {
			// Not a control sequence, probably pasted text
			return splitPaste(s)
		}
	}

	return []KeyEvent{event}
}

// splitPaste decodes every character of s as if it was typed on its own
func splitPaste(s string) []KeyEvent {
	events := make([]KeyEvent, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		events = append(events, DecodeString(string(r))...)
	}
	return events
}

// bytesToText decodes UTF-8 without a leading BOM, replacing invalid bytes with U+FFFD
func bytesToText(b []byte) string {
	text, err := xunicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(text)
}
