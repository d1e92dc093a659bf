package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/de-tools/travel-atlas/pkg/store/duckdb"
	"github.com/spf13/cobra"
)

type SeedCmd struct {
	dbPath string
	users  int
	seed   int64
}

func NewSeedCmd() *cobra.Command {
	sc := &SeedCmd{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an embedded DuckDB database with demo users, bookings and payments",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.dbPath, "db", "", "Path to the DuckDB database file")
	cmd.Flags().IntVar(&sc.users, "users", 50, "Number of demo users to generate")
	cmd.Flags().Int64Var(&sc.seed, "seed", 0, "Random seed (0 uses the current time)")

	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, _ []string) error {
	if sc.users <= 0 {
		return fmt.Errorf("--users must be positive, got %d", sc.users)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: sc.dbPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	writer, err := duckdb.NewWriter(db)
	if err != nil {
		return err
	}

	seed := sc.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	data := duckdb.GenerateDemoData(sc.users, time.Now().UTC(), rand.New(rand.NewSource(seed)))

	if err := writer.Seed(cmd.Context(), data); err != nil {
		return fmt.Errorf("failed to seed %s: %w", sc.dbPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s with %d users, %d bookings and %d payments\n",
		sc.dbPath, len(data.Users), len(data.Bookings), len(data.Payments))
	return nil
}
