package mapgen

import "github.com/KirkDiggler/rpg-dungeon/internal/dungeon"

// Glyph is how a renderer draws one tile
type Glyph struct {
	Rune  rune
	Color string
}

// Theme maps tiles to glyphs. A theme is chosen once per level.
type Theme interface {
	Name() string
	Render(tile dungeon.Tile) Glyph
}

type glyphTheme struct {
	name   string
	glyphs map[dungeon.Tile]Glyph
}

func (t *glyphTheme) Name() string {
	return t.name
}

func (t *glyphTheme) Render(tile dungeon.Tile) Glyph {
	if g, ok := t.glyphs[tile]; ok {
		return g
	}
	return t.glyphs[dungeon.Wall]
}

// DungeonTheme draws stone corridors
func DungeonTheme() Theme {
	return &glyphTheme{
		name: "dungeon",
		glyphs: map[dungeon.Tile]Glyph{
			dungeon.Floor: {Rune: '.', Color: "#808080"},
			dungeon.Wall:  {Rune: '#', Color: "#ffffff"},
			dungeon.Exit:  {Rune: '>', Color: "#ffff00"},
		},
	}
}

// ForestTheme draws clearings between trees
func ForestTheme() Theme {
	return &glyphTheme{
		name: "forest",
		glyphs: map[dungeon.Tile]Glyph{
			dungeon.Floor: {Rune: ';', Color: "#556b2f"},
			dungeon.Wall:  {Rune: '"', Color: "#228b22"},
			dungeon.Exit:  {Rune: '>', Color: "#ffff00"},
		},
	}
}

// DefaultThemes returns the themes in selection-draw order
func DefaultThemes() []Theme {
	return []Theme{DungeonTheme(), ForestTheme()}
}

// ThemeByName finds a theme by name, returning nil when there is none
func ThemeByName(themes []Theme, name string) Theme {
	for _, t := range themes {
		if t.Name() == name {
			return t
		}
	}
	return nil
}
