package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	sessionID     string
	selectionPath string
	waitForArmor  bool
)

var openSessionCmd = &cobra.Command{
	Use:   "open-session",
	Short: "Open a live sheet session",
	Long:  `Open a session, optionally seeded with a selection file, and print its id and first result.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := buildRequest(selectionPath, nil)
		if err != nil {
			return err
		}
		return callSheet(cmd, "open session", req, v1alpha1.SheetServiceClient.OpenSession)
	},
}

var updateSelectionCmd = &cobra.Command{
	Use:   "update-selection",
	Short: "Replace the selection of a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := buildRequest(selectionPath, map[string]any{
			"session_id":     sessionID,
			"wait_for_armor": waitForArmor,
		})
		if err != nil {
			return err
		}
		return callSheet(cmd, "update selection", req, v1alpha1.SheetServiceClient.UpdateSelection)
	},
}

var getSessionCmd = &cobra.Command{
	Use:   "get-session",
	Short: "Print the latest result of a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := buildRequest("", map[string]any{"session_id": sessionID})
		if err != nil {
			return err
		}
		return callSheet(cmd, "get session", req, v1alpha1.SheetServiceClient.GetSession)
	},
}

var closeSessionCmd = &cobra.Command{
	Use:   "close-session",
	Short: "Close a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req, err := buildRequest("", map[string]any{"session_id": sessionID})
		if err != nil {
			return err
		}
		return callSheet(cmd, "close session", req, v1alpha1.SheetServiceClient.CloseSession)
	},
}

func init() {
	openSessionCmd.Flags().StringVar(&selectionPath, "selection", "", "Path to a YAML selection file")

	updateSelectionCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	updateSelectionCmd.Flags().StringVar(&selectionPath, "selection", "", "Path to a YAML selection file (required)")
	updateSelectionCmd.Flags().BoolVar(&waitForArmor, "wait", false, "Wait for the armor lookup to settle")
	_ = updateSelectionCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	_ = updateSelectionCmd.MarkFlagRequired("selection")  // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{getSessionCmd, closeSessionCmd} {
		cmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
		_ = cmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	}
}

type sheetCall func(v1alpha1.SheetServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

func callSheet(cmd *cobra.Command, action string, req *structpb.Struct, call sheetCall) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := call(client, ctx, req)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	return printResponse(cmd, resp)
}
