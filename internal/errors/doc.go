// Package errors provides the structured error type used across rpg-sheet.
//
// Errors carry a Code, a user facing Message, an optional Cause and free form
// metadata. The rules engine itself never returns errors for game conditions
// (unknown races, missing classes, failed armor lookups all degrade to
// defaults); this package is for contract violations, storage and transport.
//
// # Basic Usage
//
//	err := errors.NotFound("sheet session not found").
//	    WithMeta("session_id", id)
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to cache armor detail")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("armorID", input.ArmorID, vb)
//	errors.ValidateRange("level", level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). Metadata travels as a
// structpb.Struct status detail and is restored by FromGRPCError.
package errors
