package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hartlabs/hourtrack/internal/app"
	"github.com/hartlabs/hourtrack/internal/config"
	"github.com/hartlabs/hourtrack/pkg/store"
	"github.com/hartlabs/hourtrack/pkg/tracker"
	"github.com/spf13/cobra"
)

var (
	flagBaseline string
	flagActuals  []string
	flagFormat   string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation pass and print the result",
	Long: "Run one reconciliation pass over the stored session, optionally replacing it first " +
		"with the given baseline and actuals files, and print the result to stdout.",
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&flagBaseline, "baseline", "b", "", "Baseline CSV to upload before reconciling")
	reconcileCmd.Flags().StringSliceVarP(&flagActuals, "actuals", "a", nil, "Actuals CSVs to upload before reconciling (repeatable)")
	reconcileCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format: csv, json or recap")
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	deps, err := app.BuildDependencies(cfg)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if flagBaseline != "" {
		if err := uploadBaselineFile(ctx, deps, flagBaseline); err != nil {
			return err
		}
	}
	if len(flagActuals) > 0 {
		if err := uploadActualsFiles(ctx, deps, flagActuals); err != nil {
			return err
		}
	}

	report, err := deps.TrackerService.Reconcile(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoBaseline) || errors.Is(err, store.ErrNoActuals) {
			return fmt.Errorf("no session data stored yet; pass --baseline and --actuals or upload via the server first")
		}
		return err
	}

	switch flagFormat {
	case "csv":
		out, err := deps.CsvRenderer.RenderReport(report)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case "json":
		out, err := json.MarshalIndent(tracker.ReportToDTO(report), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "recap":
		out, err := deps.RecapRenderer.RenderRecap(report)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unknown format %q: expected csv, json or recap", flagFormat)
	}
	return nil
}

func uploadBaselineFile(ctx context.Context, deps *app.Dependencies, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open baseline file: %w", err)
	}
	defer f.Close()

	count, err := deps.TrackerService.UploadBaseline(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Stored baseline with %d projects\n", count)
	return nil
}

func uploadActualsFiles(ctx context.Context, deps *app.Dependencies, paths []string) error {
	batches := make([]tracker.Batch, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open actuals file: %w", err)
		}
		defer f.Close()
		batches = append(batches, tracker.Batch{Filename: filepath.Base(path), Content: f})
	}

	weeks, err := deps.TrackerService.UploadActuals(ctx, batches)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Stored actuals for weeks %v\n", weeks)
	return nil
}
