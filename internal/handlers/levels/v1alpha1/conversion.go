package v1alpha1

import (
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

// Message field names
const (
	FieldSeed        = "seed"
	FieldArchitect   = "architect"
	FieldLevelID     = "level_id"
	FieldDeleted     = "deleted"
	FieldID          = "id"
	FieldTheme       = "theme"
	FieldWidth       = "width"
	FieldHeight      = "height"
	FieldPlayerStart = "player_start"
	FieldExit        = "exit"
	FieldSpawnPoints = "spawn_points"
	FieldAttempts    = "attempts"
	FieldChecksum    = "checksum"
	FieldRows        = "rows"
	FieldExpiresAt   = "expires_at"
)

func stringField(s *structpb.Struct, name string) string {
	if s == nil {
		return ""
	}
	return s.GetFields()[name].GetStringValue()
}

// seedField reads "seed" as a decimal string or a whole number. Seeds travel
// as strings because a Struct number is a float64.
func seedField(s *structpb.Struct) (int64, error) {
	if s == nil {
		return 0, nil
	}
	v, ok := s.GetFields()[FieldSeed]
	if !ok {
		return 0, nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		if kind.StringValue == "" {
			return 0, nil
		}
		seed, err := strconv.ParseInt(kind.StringValue, 10, 64)
		if err != nil {
			return 0, errors.InvalidArgumentf("seed %q is not an integer", kind.StringValue)
		}
		return seed, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, errors.InvalidArgumentf("seed %v is not an exact integer", n)
		}
		return int64(n), nil
	case *structpb.Value_NullValue:
		return 0, nil
	default:
		return 0, errors.InvalidArgument("seed must be a string or number")
	}
}

func pointValue(p dungeon.Point) map[string]any {
	return map[string]any{"x": p.X, "y": p.Y}
}

// levelToStruct encodes a level and its record as a response message
func levelToStruct(lvl *mapgen.Level, record *levels.Record) (*structpb.Struct, error) {
	if lvl == nil {
		return nil, errors.Internal("level is required")
	}

	spawns := make([]any, 0, len(lvl.SpawnPoints))
	for _, p := range lvl.SpawnPoints {
		spawns = append(spawns, pointValue(p))
	}

	rendered := lvl.Render()
	rows := make([]any, len(rendered))
	for i, row := range rendered {
		rows[i] = row
	}

	themeName := ""
	if lvl.Theme != nil {
		themeName = lvl.Theme.Name()
	}

	fields := map[string]any{
		FieldID:          lvl.ID,
		FieldArchitect:   lvl.Architect.String(),
		FieldTheme:       themeName,
		FieldWidth:       lvl.Map.Width,
		FieldHeight:      lvl.Map.Height,
		FieldPlayerStart: pointValue(lvl.PlayerStart),
		FieldExit:        pointValue(lvl.Exit),
		FieldSpawnPoints: spawns,
		FieldAttempts:    lvl.Attempts,
		FieldChecksum:    strconv.FormatUint(lvl.Map.Checksum(), 10),
		FieldRows:        rows,
	}
	if record != nil {
		fields[FieldSeed] = strconv.FormatInt(record.Seed, 10)
		if !record.ExpiresAt.IsZero() {
			fields[FieldExpiresAt] = record.ExpiresAt.UTC().Format(time.RFC3339)
		}
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode level")
	}
	return s, nil
}

// Rows extracts the rendered map rows from a level message
func Rows(s *structpb.Struct) []string {
	values := s.GetFields()[FieldRows].GetListValue().GetValues()
	rows := make([]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, v.GetStringValue())
	}
	return rows
}
