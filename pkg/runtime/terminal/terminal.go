package terminal

import (
	"io"
	"os"

	"github.com/de-tools/travel-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/travel-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/travel-atlas/pkg/services/overview"
	"github.com/de-tools/travel-atlas/pkg/store/datasource"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	datasources datasource.Registry
	settings    overview.Settings
	reporter    *export.Reporter
	output      io.Writer
	rootCmd     *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Datasources datasource.Registry
	Settings    overview.Settings
	Output      io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Datasources == nil {
		opts.Datasources = datasource.Default()
	}
	if opts.Settings.RecentWindowDays == 0 {
		opts.Settings = overview.DefaultSettings()
	}

	cli := &CLI{
		datasources: opts.Datasources,
		settings:    opts.Settings,
		reporter:    export.NewReporter(opts.Output),
		output:      opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, used by tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Business statistics for the travel booking platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	cmd.AddCommand(commands.NewOverviewCmd(cli.datasources, cli.settings, cli.reporter))
	cmd.AddCommand(commands.NewProfilesCmd())
	cmd.AddCommand(commands.NewSeedCmd())

	return cmd
}
