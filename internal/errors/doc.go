// Package errors provides structured errors for the rpg-dungeon project.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form metadata. Codes map one-to-one onto gRPC status codes so the
// handler layer can convert without losing meaning.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("level not found")
//	err := errors.InvalidArgumentf("unknown architect: %s", name)
//
// Adding metadata:
//
//	err := errors.NotFound("level not found").
//	    WithMeta("level_id", levelID)
//
// Wrapping errors:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record level")
//	}
//
// Changing error semantics while keeping the cause reachable through
// errors.Is:
//
//	return errors.WrapWithCode(ErrUngeneratable, errors.CodeFailedPrecondition,
//	    "cellular automata produced no floor tiles")
//
// # Layer-Specific Guidelines
//
// Generation layer (mapgen):
//   - Return FailedPrecondition for a map that cannot satisfy its invariants
//   - Return ResourceExhausted once the retry budget is spent
//
// Repository layer:
//   - Return NotFound for missing records
//   - Wrap Redis errors with context
//
// Handler layer:
//   - Convert errors with ToGRPCError
package errors
