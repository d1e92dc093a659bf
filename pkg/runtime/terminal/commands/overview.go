package commands

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/de-tools/travel-atlas/pkg/adapters"
	"github.com/de-tools/travel-atlas/pkg/models/api"
	"github.com/de-tools/travel-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/travel-atlas/pkg/services/config"
	"github.com/de-tools/travel-atlas/pkg/services/overview"
	"github.com/de-tools/travel-atlas/pkg/store/datasource"
	"github.com/de-tools/travel-atlas/pkg/store/metrics"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var allowedWindows = []int{7, 30, 90, 365}

const (
	outputText = "text"
	outputJSON = "json"
)

type OverviewCmd struct {
	profile      string
	profilesPath string
	window       int
	output       string
	datasources  datasource.Registry
	settings     overview.Settings
	reporter     *export.Reporter
}

func NewOverviewCmd(datasources datasource.Registry, settings overview.Settings, reporter *export.Reporter) *cobra.Command {
	oc := &OverviewCmd{datasources: datasources, settings: settings, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Print the business overview report for a data source profile",
		RunE:  oc.run,
	}

	cmd.Flags().StringVar(&oc.profile, "profile", "", "Name of the data source profile")
	cmd.Flags().StringVar(&oc.profilesPath, "profiles", config.DefaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().IntVar(&oc.window, "window", 30, "Analysis window in days (7, 30, 90 or 365)")
	cmd.Flags().StringVarP(&oc.output, "output", "o", outputText, "Output format: text or json")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (oc *OverviewCmd) run(cmd *cobra.Command, _ []string) error {
	if !slices.Contains(allowedWindows, oc.window) {
		return fmt.Errorf("unsupported window %d. Supported windows: %v", oc.window, allowedWindows)
	}
	if oc.output != outputText && oc.output != outputJSON {
		return fmt.Errorf("unsupported output %q. Supported outputs: text, json", oc.output)
	}

	logger := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	ctx := logger.WithContext(cmd.Context())

	profiles, err := config.NewProfileRegistry(oc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", oc.profilesPath, err)
	}
	profile, err := profiles.GetProfile(ctx, oc.profile)
	if err != nil {
		return err
	}

	src, err := oc.datasources.Open(ctx, profile)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Str("profile", profile.Name).Msg("failed to close data source")
		}
	}()

	store, err := metrics.NewStore(src)
	if err != nil {
		return fmt.Errorf("failed to create metrics store: %w", err)
	}

	report, err := overview.NewService(store, oc.settings).GetBusinessOverview(ctx, oc.window)
	if err != nil {
		return fmt.Errorf("%s: %w", overview.FailureMessage, err)
	}

	if oc.output == outputJSON {
		data := adapters.MapReportDomainToApi(*report)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(api.Response{Success: true, Data: &data})
	}
	return oc.reporter.Handle(report)
}
