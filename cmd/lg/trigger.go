package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runTrigger() {
	fs := flag.NewFlagSet("trigger", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: lg trigger <source-id>")
		os.Exit(1)
	}
	id := fs.Arg(0)

	client := newClient()
	if err := client.TriggerSource(context.Background(), id); err != nil {
		fatal(err)
	}
	fmt.Printf("crawl queued for %s\n", id)
}
