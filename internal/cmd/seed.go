package cmd

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/fixtures"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample users and properties",
	Long: `Insert the embedded sample users and properties into the configured
database. The schema must already exist. Running it twice fails on the
unique email constraint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) error {
	cfg, loggerService, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	db, err := database.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repos := repository.New(db.Pool)

	res, err := fixtures.Seed(ctx, log, repos.Users, repos.Properties)
	if err != nil {
		return err
	}

	fmt.Printf("seeded %d users and %d properties\n", res.Users, res.Properties)
	return nil
}
