package main

import (
	"fmt"
	"os"

	"github.com/de-tools/travel-atlas/pkg/server"
	"github.com/de-tools/travel-atlas/pkg/services/config"
	"github.com/de-tools/travel-atlas/pkg/services/overview"
	"github.com/de-tools/travel-atlas/pkg/store/datasource"
	"github.com/de-tools/travel-atlas/pkg/store/metrics"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profileName  string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Travel Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the YAML config file (optional)")
	rootCmd.Flags().StringVar(&profileName, "profile", "", "Data source profile (overrides datasource.profile)")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", "", "Path to the profiles file (overrides datasource.profiles_path)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if profileName != "" {
		cfg.Datasource.Profile = profileName
	}
	if profilesPath != "" {
		cfg.Datasource.ProfilesPath = profilesPath
	}

	profiles, err := config.NewProfileRegistry(cfg.Datasource.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}
	profile, err := profiles.GetProfile(ctx, cfg.Datasource.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve data source profile: %w", err)
	}

	src, err := datasource.Default().Open(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to open data source: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close data source")
		}
	}()

	logger.Info().Msgf("Profiles at `%s` successfully loaded.", cfg.Datasource.ProfilesPath)
	logger.Info().Msgf("Serving reports from `%s`", profile)

	metricsStore, err := metrics.NewStore(src)
	if err != nil {
		return fmt.Errorf("failed to create metrics store: %w", err)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Dependencies: server.Dependencies{
			Overview: overview.NewService(metricsStore, cfg.Report.OverviewSettings()),
		},
	})

	return webAPI.Start()
}
