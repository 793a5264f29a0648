package mapgen_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

type PostProcessTestSuite struct {
	suite.Suite
	corridor *dungeon.Map
}

func TestPostProcessSuite(t *testing.T) {
	suite.Run(t, new(PostProcessTestSuite))
}

func (s *PostProcessTestSuite) SetupTest() {
	s.corridor = testutils.MapFromRows(
		"#################",
		"#...............#",
		"#################",
	)
}

func (s *PostProcessTestSuite) TestFindMostDistant() {
	p, err := mapgen.FindMostDistant(s.corridor, dungeon.Pt(1, 1), 1024)
	s.Require().NoError(err)
	s.Assert().Equal(dungeon.Pt(15, 1), p)

	p, err = mapgen.FindMostDistant(s.corridor, dungeon.Pt(8, 1), 1024)
	s.Require().NoError(err)
	s.Assert().Equal(dungeon.Pt(1, 1), p, "ties go to the first tile in scan order")
}

func (s *PostProcessTestSuite) TestFindMostDistantRejectsOffGridStart() {
	_, err := mapgen.FindMostDistant(s.corridor, dungeon.Pt(-1, 1), 1024)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *PostProcessTestSuite) TestSpawnMonstersExhaustedPool() {
	spawns, err := mapgen.SpawnMonsters(&mapgen.SpawnInput{
		Map:         s.corridor,
		Start:       dungeon.Pt(1, 1),
		Source:      rng.NewSeeded(4),
		Count:       50,
		MinDistance: 10,
		MaxDepth:    1024,
	})
	s.Require().NoError(err)

	// Only x = 11..15 are ten or more steps away
	s.Require().Len(spawns, 5)
	seen := make(map[dungeon.Point]bool)
	for _, p := range spawns {
		s.Assert().GreaterOrEqual(p.X, 11)
		s.Assert().False(seen[p], "duplicate spawn %s", p)
		seen[p] = true
	}
}

func (s *PostProcessTestSuite) TestSpawnMonstersCapsCount() {
	spawns, err := mapgen.SpawnMonsters(&mapgen.SpawnInput{
		Map:         s.corridor,
		Start:       dungeon.Pt(1, 1),
		Source:      rng.NewSeeded(4),
		Count:       2,
		MinDistance: 0,
		MaxDepth:    1024,
	})
	s.Require().NoError(err)
	s.Assert().Len(spawns, 2)
}

func (s *PostProcessTestSuite) TestSpawnMonstersSkipsUnreachable() {
	m := testutils.MapFromRows(
		"##############",
		"#..#.........#",
		"##############",
	)
	spawns, err := mapgen.SpawnMonsters(&mapgen.SpawnInput{
		Map:         m,
		Start:       dungeon.Pt(1, 1),
		Source:      rng.NewSeeded(4),
		Count:       50,
		MinDistance: 0,
		MaxDepth:    1024,
	})
	s.Require().NoError(err)
	s.Assert().ElementsMatch([]dungeon.Point{dungeon.Pt(1, 1), dungeon.Pt(2, 1)}, spawns)
}

func (s *PostProcessTestSuite) TestSpawnMonstersRequiresInput() {
	_, err := mapgen.SpawnMonsters(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

type PrefabTestSuite struct {
	suite.Suite
	level *mapgen.Level
}

func TestPrefabSuite(t *testing.T) {
	suite.Run(t, new(PrefabTestSuite))
}

func (s *PrefabTestSuite) SetupTest() {
	m, err := dungeon.NewMap(dungeon.DefaultWidth, dungeon.DefaultHeight)
	s.Require().NoError(err)
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			m.Set(dungeon.Pt(x, y), dungeon.Floor)
		}
	}
	s.level = &mapgen.Level{
		Map:         m,
		PlayerStart: dungeon.Pt(1, 1),
		Exit:        dungeon.Pt(78, 48),
		SpawnPoints: []dungeon.Point{dungeon.Pt(5, 5), dungeon.Pt(35, 25)},
	}
}

func (s *PrefabTestSuite) TestFortressStamped() {
	src := &testutils.ScriptedSource{Values: []int{30, 20}}

	err := mapgen.Fortress().Apply(s.level, src)
	s.Require().NoError(err)

	m := s.level.Map
	s.Assert().Equal(dungeon.Wall, m.At(dungeon.Pt(33, 21)))
	s.Assert().Equal(dungeon.Floor, m.At(dungeon.Pt(35, 23)))
	s.Assert().Equal(dungeon.Floor, m.At(dungeon.Pt(30, 20)))

	s.Assert().Contains(s.level.SpawnPoints, dungeon.Pt(5, 5))
	s.Assert().NotContains(s.level.SpawnPoints, dungeon.Pt(35, 25), "spawns under the vault are dropped")
	s.Assert().Contains(s.level.SpawnPoints, dungeon.Pt(35, 23))
	s.Assert().Contains(s.level.SpawnPoints, dungeon.Pt(32, 25))
	s.Assert().Contains(s.level.SpawnPoints, dungeon.Pt(39, 25))
	s.Assert().Len(s.level.SpawnPoints, 4)
}

func (s *PrefabTestSuite) TestFortressAvoidsStartAndExit() {
	// Every placement covers the start, so nothing is stamped
	src := &testutils.ConstantSource{}
	before := s.level.Map.Checksum()

	err := mapgen.Fortress().Apply(s.level, src)
	s.Require().NoError(err)

	s.Assert().Equal(before, s.level.Map.Checksum())
	s.Assert().Len(s.level.SpawnPoints, 2)
	s.Assert().Equal(10, src.Calls/2)
}

func (s *PrefabTestSuite) TestFortressNeedsDistantTile() {
	// Every tile under this placement is at most 17 steps from the start
	src := &testutils.ScriptedSource{Values: []int{3, 3}}
	vault := mapgen.Fortress()
	vault.Attempts = 1
	s.level.PlayerStart = dungeon.Pt(20, 1)
	before := s.level.Map.Checksum()

	err := vault.Apply(s.level, src)
	s.Require().NoError(err)
	s.Assert().Equal(before, s.level.Map.Checksum())
}

func (s *PrefabTestSuite) TestNoPrefab() {
	before := s.level.Map.Checksum()
	s.Require().NoError(mapgen.NoPrefab{}.Apply(s.level, rng.NewSeeded(1)))
	s.Assert().Equal(before, s.level.Map.Checksum())
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

type RenderTestSuite struct {
	suite.Suite
}

func (s *RenderTestSuite) TestRender() {
	level := &mapgen.Level{
		Map: testutils.MapFromRows(
			"#####",
			"#...#",
			"#####",
		),
		PlayerStart: dungeon.Pt(1, 1),
		Exit:        dungeon.Pt(3, 1),
		Theme:       mapgen.ForestTheme(),
	}

	s.Assert().Equal([]string{
		`"""""`,
		`";;>"`,
		`"""""`,
	}, level.Render())

	level.Theme = mapgen.DungeonTheme()
	s.Assert().Equal("#..>#", level.Render()[1])
}

func (s *RenderTestSuite) TestEntity() {
	level := &mapgen.Level{ID: "level_1"}
	s.Assert().Equal("level_1", level.GetID())
	s.Assert().Equal("level", level.GetType())
}

func (s *RenderTestSuite) TestThemeByName() {
	themes := mapgen.DefaultThemes()
	s.Require().NotNil(mapgen.ThemeByName(themes, "forest"))
	s.Assert().Equal("forest", mapgen.ThemeByName(themes, "forest").Name())
	s.Assert().Nil(mapgen.ThemeByName(themes, "swamp"))
}

func (s *RenderTestSuite) TestParseArchitect() {
	testCases := []struct {
		in       string
		expected mapgen.Architect
		wantErr  bool
	}{
		{"", mapgen.ArchitectUnspecified, false},
		{"random", mapgen.ArchitectUnspecified, false},
		{"rooms", mapgen.ArchitectRooms, false},
		{"Drunkard", mapgen.ArchitectDrunkardWalk, false},
		{"cellular_automata", mapgen.ArchitectCellularAutomata, false},
		{"bsp", mapgen.ArchitectUnspecified, true},
	}

	for _, tc := range testCases {
		s.Run(tc.in, func() {
			a, err := mapgen.ParseArchitect(tc.in)
			if tc.wantErr {
				s.Assert().True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, a)
		})
	}
}
