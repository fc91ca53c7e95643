package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	registry := newRegistry(os.Stdout, os.Stderr)

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		slog.Error(LogMsgRunFailed, "command", cmd.Name(), "error", err)
		os.Exit(1)
	}
}

// newRegistry registers every wikigen command
func newRegistry(stdout, stderr io.Writer) *Registry {
	r := NewRegistry()
	generate := func(name, description string, fn renderFunc) {
		r.Register(&GenerateCommand{name: name, description: description, render: fn, stderr: stderr})
	}

	generate("prices", "Write the per-location price CSV", renderPrices)
	generate("fabricate", "Write one fabrication table per configured station", renderFabrication)
	generate("deconstruct", "Write the deconstruction-only table", renderDeconstruction)
	generate("infoboxes", "Write mineral infoboxes", renderInfoboxes)
	generate("catalog", "Dump the normalized catalog as YAML", renderCatalog)
	generate("all", "Write every artifact", renderAll(
		renderPrices, renderFabrication, renderDeconstruction, renderInfoboxes, renderCatalog,
	))
	r.Register(&HelpCommand{registry: r, out: stdout})

	return r
}
