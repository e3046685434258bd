// Package client provides test commands for the sheet gRPC service
package client

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the sheet service",
	Long:  `Client commands allow you to test the sheet service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(computeSheetCmd)
	ClientCmd.AddCommand(openSessionCmd)
	ClientCmd.AddCommand(updateSelectionCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(closeSessionCmd)
}

// createSheetClient creates a sheet service client
func createSheetClient() (v1alpha1.SheetServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}

// readSelection loads a YAML selection file as a generic map
func readSelection(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}

	var selection map[string]any
	if err := yaml.Unmarshal(raw, &selection); err != nil {
		return nil, fmt.Errorf("failed to parse selection file: %w", err)
	}

	return selection, nil
}

// buildRequest assembles a request struct, reading the selection when a path is given
func buildRequest(selectionPath string, fields map[string]any) (*structpb.Struct, error) {
	if fields == nil {
		fields = map[string]any{}
	}

	if selectionPath != "" {
		selection, err := readSelection(selectionPath)
		if err != nil {
			return nil, err
		}
		fields["selection"] = selection
	}

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	return req, nil
}

func printResponse(cmd *cobra.Command, resp *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
