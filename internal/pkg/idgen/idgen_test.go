package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("level")
	assert.Equal(t, "level_1", g.Generate())
	assert.Equal(t, "level_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	g := idgen.NewUUID("level")
	a := g.Generate()
	b := g.Generate()

	assert.True(t, strings.HasPrefix(a, "level_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimPrefix(a, "level_"), 36)
}
