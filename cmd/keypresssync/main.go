package main

import (
	"flag"

	"github.com/xyproto/keypress"
	"github.com/xyproto/keypress/internal/demo"
)

func run(flags *demo.Flags, p *demo.Printer) error {
	t, err := flags.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	events, err := keypress.ReadKeypressSync(t, flags.Options(p))
	if err != nil {
		return err
	}

	p.Info("Press keys, ctrl-c to exit")
	for event, err := range events {
		if err != nil {
			return err
		}
		p.Event(event)
		if demo.IsCtrlC(event) {
			break
		}
	}
	return nil
}

func main() {
	flags := demo.RegisterFlags()
	flag.Parse()

	if err := run(flags, demo.NewPrinter()); err != nil {
		demo.Fatal(err)
	}
}
