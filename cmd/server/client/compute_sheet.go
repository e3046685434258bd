package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	computeSelectionPath string
	computeRoll          bool
)

var computeSheetCmd = &cobra.Command{
	Use:   "compute-sheet",
	Short: "Compute a sheet without opening a session",
	Long:  `Send a selection file to ComputeSheet and print the derived stats.`,
	RunE:  runComputeSheet,
}

func init() {
	computeSheetCmd.Flags().StringVar(&computeSelectionPath, "selection", "", "Path to a YAML selection file (required)")
	computeSheetCmd.Flags().BoolVar(&computeRoll, "roll", false, "Roll hit dice after first level")
	_ = computeSheetCmd.MarkFlagRequired("selection") // nolint:errcheck // safe to ignore in init
}

func runComputeSheet(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := buildRequest(computeSelectionPath, map[string]any{
		"roll_hit_points": computeRoll,
	})
	if err != nil {
		return err
	}

	resp, err := client.ComputeSheet(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to compute sheet: %w", err)
	}

	return printResponse(cmd, resp)
}
