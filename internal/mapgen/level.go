package mapgen

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
)

// EntityType is the core.Entity type reported by a Level
const EntityType = "level"

// Level is the finished result of one generation run
type Level struct {
	ID          string
	Map         *dungeon.Map
	Rooms       []dungeon.Rect
	SpawnPoints []dungeon.Point
	PlayerStart dungeon.Point
	Exit        dungeon.Point
	Theme       Theme
	Architect   Architect
	// Attempts is how many draws the builder needed, including the accepted one
	Attempts int
}

var _ core.Entity = (*Level)(nil)

// GetID returns the level ID assigned by the caller
func (l *Level) GetID() string {
	return l.ID
}

// GetType returns "level"
func (l *Level) GetType() string {
	return EntityType
}

// Render returns the map as rows of themed glyphs with the exit marked
func (l *Level) Render() []string {
	theme := l.Theme
	if theme == nil {
		theme = DungeonTheme()
	}

	rows := make([]string, l.Map.Height)
	line := make([]rune, l.Map.Width)
	for y := 0; y < l.Map.Height; y++ {
		for x := 0; x < l.Map.Width; x++ {
			p := dungeon.Pt(x, y)
			tile := l.Map.At(p)
			if p == l.Exit {
				tile = dungeon.Exit
			}
			line[x] = theme.Render(tile).Rune
		}
		rows[y] = string(line)
	}
	return rows
}
