package cmd

import (
	"context"
	"fmt"

	"github.com/hartlabs/hourtrack/internal/config"
	"github.com/hartlabs/hourtrack/pkg/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored session",
	Long:  "Remove the cached baseline and actuals files so the next session starts fresh.",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := store.NewFileStore(cfg.Storage.Dir).Reset(context.Background()); err != nil {
		return err
	}
	fmt.Println("Session cache cleared")
	return nil
}
