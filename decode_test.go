package keypress

import (
	"reflect"
	"testing"
	"unicode/utf16"
)

func decodeOne(t *testing.T, s string) KeyEvent {
	t.Helper()
	events := Decode([]byte(s))
	if len(events) != 1 {
		t.Fatalf("Decode(%q) returned %d events, want 1", s, len(events))
	}
	return events[0]
}

func TestDecodeCtrlLetters(t *testing.T) {
	special := map[byte]Key{
		0x08: KeyBackspace,
		0x09: KeyTab,
		0x0a: KeyEnter,
		0x0d: KeyReturn,
	}
	for b := byte(1); b <= 26; b++ {
		event := decodeOne(t, string([]byte{b}))
		if key, ok := special[b]; ok {
			if event.Key != key {
				t.Errorf("Decode(%#x) key = %q, want %q", b, event.Key, key)
			}
			continue
		}
		want := Key(string(rune('a' + b - 1)))
		if event.Key != want || !event.Ctrl {
			t.Errorf("Decode(%#x) = %q ctrl %v, want %q ctrl true", b, event.Key, event.Ctrl, want)
		}
		if event.Meta || event.Shift {
			t.Errorf("Decode(%#x) has unexpected modifiers: %+v", b, event)
		}
		if event.KeyCode != int(b) {
			t.Errorf("Decode(%#x) key code = %d, want %d", b, event.KeyCode, b)
		}
	}
}

func TestDecodeSpecialKeys(t *testing.T) {
	tests := []struct {
		in       string
		wantKey  Key
		wantMeta bool
	}{
		{"\r", KeyReturn, false},
		{"\n", KeyEnter, false},
		{"\t", KeyTab, false},
		{"\b", KeyBackspace, false},
		{"\x7f", KeyBackspace, false},
		{"\x1b\x7f", KeyBackspace, true},
		{"\x1b\b", KeyBackspace, true},
		{"\x1b", KeyEscape, false},
		{"\x1b\x1b", KeyEscape, true},
		{" ", KeySpace, false},
		{"\x1b ", KeySpace, true},
	}
	for _, tt := range tests {
		event := decodeOne(t, tt.in)
		if event.Key != tt.wantKey {
			t.Errorf("Decode(%q) key = %q, want %q", tt.in, event.Key, tt.wantKey)
		}
		if event.Meta != tt.wantMeta {
			t.Errorf("Decode(%q) meta = %v, want %v", tt.in, event.Meta, tt.wantMeta)
		}
		if event.Ctrl || event.Shift {
			t.Errorf("Decode(%q) has unexpected modifiers: %+v", tt.in, event)
		}
		if event.Code != "" {
			t.Errorf("Decode(%q) code = %q, want none", tt.in, event.Code)
		}
	}
}

func TestDecodeKeyCode(t *testing.T) {
	if event := decodeOne(t, "\r"); event.KeyCode != 13 {
		t.Errorf("Decode(%q) key code = %d, want 13", "\r", event.KeyCode)
	}
	if event := decodeOne(t, "é"); event.KeyCode != 0xe9 {
		t.Errorf("Decode(%q) key code = %d, want %d", "é", event.KeyCode, 0xe9)
	}
	if event := decodeOne(t, "\x1b[A"); event.HasKeyCode() {
		t.Errorf("Decode(%q) key code = %d, want none", "\x1b[A", event.KeyCode)
	}
}

func TestDecodeCharacters(t *testing.T) {
	tests := []struct {
		in        string
		wantKey   Key
		wantShift bool
	}{
		{"a", "a", false},
		{"A", "A", true},
		{"z", "z", false},
		{"_", "_", false},
		{"1", "1", false},
		{"@", "@", false},
		{"~", "~", false},
		{"ж", "ж", false},
		{"Ж", "Ж", true},
		{"ё", "ё", false},
		{"Ё", "Ё", true},
		{"é", "é", false},
	}
	for _, tt := range tests {
		event := decodeOne(t, tt.in)
		if event.Key != tt.wantKey || event.Shift != tt.wantShift {
			t.Errorf("Decode(%q) = %q shift %v, want %q shift %v", tt.in, event.Key, event.Shift, tt.wantKey, tt.wantShift)
		}
		if event.Ctrl || event.Meta {
			t.Errorf("Decode(%q) has unexpected modifiers: %+v", tt.in, event)
		}
	}
}

func TestDecodeMetaKeys(t *testing.T) {
	tests := []struct {
		in        string
		wantKey   Key
		wantShift bool
	}{
		{"\x1ba", "a", false},
		{"\x1bA", "a", true},
		{"\x1b5", "5", false},
	}
	for _, tt := range tests {
		event := decodeOne(t, tt.in)
		if event.Key != tt.wantKey || !event.Meta || event.Shift != tt.wantShift {
			t.Errorf("Decode(%q) = %+v, want %q meta shift %v", tt.in, event, tt.wantKey, tt.wantShift)
		}
	}
}

func TestDecodeFunctionKeys(t *testing.T) {
	tests := []struct {
		in                string
		wantKey           Key
		wantCode          string
		ctrl, meta, shift bool
	}{
		{"\x1b[A", KeyUp, "[A", false, false, false},
		{"\x1b[B", KeyDown, "[B", false, false, false},
		{"\x1bOC", KeyRight, "OC", false, false, false},
		{"\x1b[1;5D", KeyLeft, "[D", true, false, false},
		{"\x1b[1;2A", KeyUp, "[A", false, false, true},
		{"\x1b[1;3C", KeyRight, "[C", false, true, false},
		{"\x1b[1;9B", KeyDown, "[B", false, true, false},
		{"\x1b[1;8H", KeyHome, "[H", true, true, true},
		{"\x1bOP", KeyF1, "OP", false, false, false},
		{"\x1b[11~", KeyF1, "[11~", false, false, false},
		{"\x1b[[A", KeyF1, "[[A", false, false, false},
		{"\x1b[[E", KeyF5, "[[E", false, false, false},
		{"\x1b[24~", KeyF12, "[24~", false, false, false},
		{"\x1b[15;5~", KeyF5, "[15~", true, false, false},
		{"\x1b[3~", KeyDelete, "[3~", false, false, false},
		{"\x1b[5;5~", KeyPageUp, "[5~", true, false, false},
		{"\x1b[[6~", KeyPageDown, "[[6~", false, false, false},
		{"\x1b[7~", KeyHome, "[7~", false, false, false},
		{"\x1b[a", KeyUp, "[a", false, false, true},
		{"\x1b[2$", KeyInsert, "[2$", false, false, true},
		{"\x1bOa", KeyUp, "Oa", true, false, false},
		{"\x1b[8^", KeyEnd, "[8^", true, false, false},
		{"\x1b[Z", KeyTab, "[Z", false, false, true},
		{"\x1b\x1b[A", KeyUp, "[A", false, false, false},
		{"\x1b[A\x1b[B", KeyUp, "[A", false, false, false},
		{"\x1b[999~", KeyUndefined, "[999~", false, false, false},
		{"\x1bOZ", KeyUndefined, "OZ", false, false, false},
	}
	for _, tt := range tests {
		event := decodeOne(t, tt.in)
		if event.Key != tt.wantKey {
			t.Errorf("Decode(%q) key = %q, want %q", tt.in, event.Key, tt.wantKey)
		}
		if event.Code != tt.wantCode {
			t.Errorf("Decode(%q) code = %q, want %q", tt.in, event.Code, tt.wantCode)
		}
		if event.Ctrl != tt.ctrl || event.Meta != tt.meta || event.Shift != tt.shift {
			t.Errorf("Decode(%q) modifiers = ctrl %v meta %v shift %v, want %v %v %v",
				tt.in, event.Ctrl, event.Meta, event.Shift, tt.ctrl, tt.meta, tt.shift)
		}
		if event.Sequence != tt.in {
			t.Errorf("Decode(%q) sequence = %q", tt.in, event.Sequence)
		}
	}
}

func TestDecodeUnknownEscape(t *testing.T) {
	for _, in := range []string{"\x1b!", "\x1b[", "\x1bé"} {
		event := decodeOne(t, in)
		if event.Key != KeyNone || event.Code != "" {
			t.Errorf("Decode(%q) = %+v, want no key and no code", in, event)
		}
		if event.Sequence != in || event.Unicode != RenderUnicode(in) {
			t.Errorf("Decode(%q) sequence = %q, unicode = %q", in, event.Sequence, event.Unicode)
		}
	}
}

func TestDecodePaste(t *testing.T) {
	events := Decode([]byte("AB"))
	want := append(Decode([]byte("A")), Decode([]byte("B"))...)
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("Decode(%q) = %+v, want %+v", "AB", events, want)
	}

	events = Decode([]byte("hé\r\x01"))
	keys := []Key{"h", "é", KeyReturn, "a"}
	if len(events) != len(keys) {
		t.Fatalf("Decode(%q) returned %d events, want %d", "hé\r\x01", len(events), len(keys))
	}
	for i, key := range keys {
		if events[i].Key != key {
			t.Errorf("event %d key = %q, want %q", i, events[i].Key, key)
		}
	}
	if !events[3].Ctrl {
		t.Errorf("event 3 should have ctrl set")
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	event := decodeOne(t, "\xff")
	if event.Sequence != "�" {
		t.Errorf("Decode(0xff) sequence = %q, want the replacement character", event.Sequence)
	}
	if event.KeyCode != 0xFFFD {
		t.Errorf("Decode(0xff) key code = %#x, want 0xfffd", event.KeyCode)
	}
}

func TestDecodeByteOrderMark(t *testing.T) {
	event := decodeOne(t, "\xef\xbb\xbfa")
	if event.Key != "a" || event.Sequence != "a" || event.KeyCode != 'a' {
		t.Errorf("Decode(BOM a) = %+v, want the single key a", event)
	}

	// Only a leading mark is dropped
	if events := Decode([]byte("a\xef\xbb\xbf")); len(events) != 2 {
		t.Errorf("Decode(a BOM) returned %d events, want 2", len(events))
	}
}

func TestDecodeEmpty(t *testing.T) {
	events := Decode(nil)
	if len(events) != 1 {
		t.Fatalf("Decode(nil) returned %d events, want 1", len(events))
	}
	want := KeyEvent{KeyCode: NoKeyCode}
	if events[0] != want {
		t.Errorf("Decode(nil) = %+v, want %+v", events[0], want)
	}
}

func TestDecodeNul(t *testing.T) {
	event := decodeOne(t, "\x00")
	if event.Key != "`" || !event.Ctrl || event.KeyCode != 0 {
		t.Errorf("Decode(0x00) = %+v", event)
	}
}

func TestDecodeUnicodeLength(t *testing.T) {
	for _, in := range []string{"a", "\x1b[1;5D", "hello", "жЁ", "😀", "\x1b"} {
		for _, event := range Decode([]byte(in)) {
			units := len(utf16.Encode([]rune(event.Sequence)))
			if len(event.Unicode) != 6*units {
				t.Errorf("Decode(%q) unicode %q has length %d, want %d", in, event.Unicode, len(event.Unicode), 6*units)
			}
		}
	}
}

func TestDecodeIsPure(t *testing.T) {
	for _, in := range []string{"x", "\x1b[15;2~", "paste me", "\x1b[999~"} {
		a := Decode([]byte(in))
		b := Decode([]byte(in))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Decode(%q) gave %+v and then %+v", in, a, b)
		}
	}
}
