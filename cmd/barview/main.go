package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/janekbaraniewski/barview/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if os.Getenv("BARVIEW_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	root := cobra.Command{
		Use:   "barview",
		Short: "Barview renders bar charts from JSON, CSV and SQLite datasets in the terminal or as SVG.",
	}

	root.AddCommand(NewRenderCommand(cfg))
	root.AddCommand(NewWatchCommand(cfg))
	root.AddCommand(NewVersionCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
