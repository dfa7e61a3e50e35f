package main

import (
	"context"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results, err := keypress.ReadKeypress(ctx, t, flags.Options(p))
	if err != nil {
		return err
	}

	p.Info("Press keys, ctrl-c to exit")
	for r := range results {
		if r.Err != nil {
			return r.Err
		}
		p.Event(r.Event)
		if demo.IsCtrlC(r.Event) {
			return nil
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
