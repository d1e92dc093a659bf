package main

import (
	"fmt"
	"os"

	"github.com/de-tools/travel-atlas/pkg/runtime/terminal"
	"github.com/de-tools/travel-atlas/pkg/services/config"
	"github.com/de-tools/travel-atlas/pkg/store/datasource"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Datasources: datasource.Default(),
		Settings:    cfg.Report.OverviewSettings(),
		Output:      os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
