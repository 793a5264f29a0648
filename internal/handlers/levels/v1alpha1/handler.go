package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level"
)

// HandlerConfig holds dependencies for the level handler
type HandlerConfig struct {
	LevelService level.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.LevelService == nil {
		return errors.InvalidArgument("level service is required")
	}
	return nil
}

// Handler implements LevelServiceServer
type Handler struct {
	levelService level.Service
}

var _ LevelServiceServer = (*Handler)(nil)

// NewHandler creates a new level handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("handler config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		levelService: cfg.LevelService,
	}, nil
}

// GenerateLevel builds a new level. The request may carry "seed" and "architect".
func (h *Handler) GenerateLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	seed, err := seedField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	architect, err := mapgen.ParseArchitect(stringField(req, FieldArchitect))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.levelService.GenerateLevel(ctx, &level.GenerateLevelInput{
		Seed:      seed,
		Architect: architect,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := levelToStruct(out.Level, out.Record)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// GetLevel regenerates a recorded level
func (h *Handler) GetLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	levelID := stringField(req, FieldLevelID)
	if levelID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("level_id is required"))
	}

	out, err := h.levelService.GetLevel(ctx, &level.GetLevelInput{LevelID: levelID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := levelToStruct(out.Level, out.Record)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// DeleteLevel forgets a recorded level
func (h *Handler) DeleteLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	levelID := stringField(req, FieldLevelID)
	if levelID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("level_id is required"))
	}

	out, err := h.levelService.DeleteLevel(ctx, &level.DeleteLevelInput{LevelID: levelID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := structpb.NewStruct(map[string]any{
		FieldDeleted: out.Deleted,
	})
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response"))
	}
	return resp, nil
}
