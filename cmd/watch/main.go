package main

import (
	"flag"
	"time"

	"github.com/xyproto/keypress"
	"github.com/xyproto/keypress/internal/demo"
)

func run(flags *demo.Flags, p *demo.Printer, after time.Duration) error {
	t, err := flags.Open()
	if err != nil {
		return err
	}

	w, err := keypress.Watch(t, flags.BufferLength)
	if err != nil {
		t.Close()
		return err
	}
	defer w.Close()

	time.AfterFunc(after, func() {
		p.Info("closing watcher")
		w.Close()
	})

	p.Info("Watching keys for %s", after)
	for event, err := range w.All() {
		if err != nil {
			return err
		}
		p.Event(event)
	}
	return nil
}

func main() {
	flags := demo.RegisterFlags()
	after := flag.Duration("after", 3*time.Second, "stop watching after this long")
	flag.Parse()

	if err := run(flags, demo.NewPrinter(), *after); err != nil {
		demo.Fatal(err)
	}
}
