// Package demo has the terminal setup and event printing shared by the demo programs
package demo

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/xyproto/keypress"
)

// Flags common to all demo programs
type Flags struct {
	UseTTY       bool
	Cbreak       bool
	BufferLength int
	Debug        bool
}

// RegisterFlags adds the common flags to the default flag set.
// Defaults come from the KEYPRESS_* environment variables.
func RegisterFlags() *Flags {
	opts := keypress.OptionsFromEnv()
	f := &Flags{}
	flag.BoolVar(&f.UseTTY, "tty", false, "read from the terminal device instead of stdin")
	flag.BoolVar(&f.Cbreak, "cbreak", opts.Cbreak, "let the terminal handle ctrl-c and other signal keys")
	flag.IntVar(&f.BufferLength, "buffer", opts.BufferLength, "bytes to read at a time")
	flag.BoolVar(&f.Debug, "debug", false, "print every raw read")
	return f
}

// Options returns the reader options selected by the flags
func (f *Flags) Options(p *Printer) keypress.Options {
	opts := keypress.Options{
		BufferLength: f.BufferLength,
		Cbreak:       f.Cbreak,
	}
	if f.Debug {
		opts.DebugFn = p.Debug
	}
	return opts
}

// Open returns the Terminal selected by the flags
func (f *Flags) Open() (keypress.Terminal, error) {
	if f.UseTTY {
		tty, err := keypress.OpenTTY()
		if err != nil {
			return nil, err
		}
		return tty, nil
	}
	return keypress.Stdin(), nil
}

// Printer writes events to stdout, with colors if stdout is a terminal
type Printer struct {
	w         io.Writer
	keyColor  func(string) string
	modColor  func(string) string
	infoColor func(string) string
}

// NewPrinter creates a Printer for stdout
func NewPrinter() *Printer {
	plain := func(s string) string { return s }
	p := &Printer{
		w:         colorable.NewColorableStdout(),
		keyColor:  plain,
		modColor:  plain,
		infoColor: plain,
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		p.keyColor = ansi.ColorFunc("green+b")
		p.modColor = ansi.ColorFunc("yellow")
		p.infoColor = ansi.ColorFunc("black+h")
	}
	return p
}

// Event prints a decoded key event on one line
func (p *Printer) Event(e keypress.KeyEvent) {
	mods := ""
	if e.Ctrl {
		mods += " ctrl"
	}
	if e.Meta {
		mods += " meta"
	}
	if e.Shift {
		mods += " shift"
	}
	key := string(e.Key)
	if e.Key == keypress.KeyNone {
		key = "-"
	}
	code := ""
	if e.Code != "" {
		code = " code=" + e.Code
	}
	keyCode := ""
	if e.HasKeyCode() {
		keyCode = fmt.Sprintf(" keycode=%d", e.KeyCode)
	}
	// \r\n since the terminal may still be in raw mode
	fmt.Fprintf(p.w, "%s%s%s%s %s\r\n", p.keyColor(key), p.modColor(mods), code, keyCode, p.infoColor(e.Unicode))
}

// Info prints a status line
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprint(p.w, p.infoColor(fmt.Sprintf(format, args...))+"\r\n")
}

// Debug prints a debug message from the reader
func (p *Printer) Debug(msg string) {
	p.Info("debug: %s", msg)
}

// Fatal prints err to stderr and exits. Deferred cleanup does not run, so
// close the terminal before calling it.
func Fatal(err error) {
	fmt.Fprintln(os.Stderr, ansi.Color("error: ", "red+b")+err.Error())
	os.Exit(1)
}

// IsCtrlC reports whether e is ctrl-c
func IsCtrlC(e keypress.KeyEvent) bool {
	return e.Ctrl && e.Key == "c"
}
