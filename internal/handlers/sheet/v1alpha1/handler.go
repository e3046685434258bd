// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SheetService sheetsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements the sheet gRPC service
type Handler struct {
	sheetService sheetsvc.Service
}

var _ SheetServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
	}, nil
}

// ComputeSheet computes a sheet without opening a session
func (h *Handler) ComputeSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.AsMap()

	selection, err := decodeSelection(fields)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if selection == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("selection is required"))
	}

	output, err := h.sheetService.ComputeSheet(ctx, &sheetsvc.ComputeSheetInput{
		Selection:     selection,
		RollHitPoints: boolField(fields, fieldRollHitPoints),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, map[string]any{
		fieldResult: resultToMap(output.Result),
	})
}

// OpenSession opens a live sheet session
func (h *Handler) OpenSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	selection, err := decodeSelection(req.AsMap())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.OpenSession(ctx, &sheetsvc.OpenSessionInput{
		Selection: selection,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, map[string]any{
		fieldSessionID: output.SessionID,
		fieldResult:    resultToMap(output.Result),
	})
}

// UpdateSelection replaces the selection of a session
func (h *Handler) UpdateSelection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.AsMap()

	sessionID := stringField(fields, fieldSessionID)
	if sessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	selection, err := decodeSelection(fields)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if selection == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("selection is required"))
	}

	output, err := h.sheetService.UpdateSelection(ctx, &sheetsvc.UpdateSelectionInput{
		SessionID:    sessionID,
		Selection:    selection,
		WaitForArmor: boolField(fields, fieldWaitForArmor),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, map[string]any{
		fieldResult: resultToMap(output.Result),
	})
}

// GetSession returns the selection and newest result of a session
func (h *Handler) GetSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID := stringField(req.AsMap(), fieldSessionID)
	if sessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.sheetService.GetSession(ctx, &sheetsvc.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, map[string]any{
		fieldSelection: selectionToMap(output.Selection),
		fieldResult:    resultToMap(output.Result),
	})
}

// CloseSession closes a session
func (h *Handler) CloseSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID := stringField(req.AsMap(), fieldSessionID)
	if sessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	if _, err := h.sheetService.CloseSession(ctx, &sheetsvc.CloseSessionInput{SessionID: sessionID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, map[string]any{})
}

func (h *Handler) respond(ctx context.Context, fields map[string]any) (*structpb.Struct, error) {
	out, err := newResponse(fields)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode sheet response", "error", err)
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
