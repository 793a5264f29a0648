package mapgen

import (
	"sort"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// buildRooms places rectangular rooms and joins them with corridors
func buildRooms(cfg *Config, src rng.Source) (*Level, error) {
	m, err := dungeon.NewMap(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	rooms, err := placeRooms(m, cfg, src)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Center().X < rooms[j].Center().X
	})
	for i := 1; i < len(rooms); i++ {
		connect(m, rooms[i-1].Center(), rooms[i].Center(), src)
	}

	start := rooms[0].Center()
	exit, err := FindMostDistant(m, start, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	spawns := make([]dungeon.Point, 0, len(rooms)-1)
	for _, r := range rooms[1:] {
		spawns = append(spawns, r.Center())
	}

	return &Level{
		Map:         m,
		Rooms:       rooms,
		SpawnPoints: spawns,
		PlayerStart: start,
		Exit:        exit,
		Architect:   ArchitectRooms,
	}, nil
}

// placeRooms draws candidates until RoomCount non-intersecting rooms fit
func placeRooms(m *dungeon.Map, cfg *Config, src rng.Source) ([]dungeon.Rect, error) {
	rooms := make([]dungeon.Rect, 0, cfg.RoomCount)
	for attempts := 0; len(rooms) < cfg.RoomCount; attempts++ {
		if attempts >= cfg.MaxRoomAttempts {
			return nil, ungeneratable("placed %d of %d rooms after %d candidates",
				len(rooms), cfg.RoomCount, attempts)
		}

		room := dungeon.NewRect(
			src.Range(1, m.Width-cfg.RoomMaxSize),
			src.Range(1, m.Height-cfg.RoomMaxSize),
			src.Range(cfg.RoomMinSize, cfg.RoomMaxSize),
			src.Range(cfg.RoomMinSize, cfg.RoomMaxSize),
		)
		if overlapsAny(room, rooms) {
			continue
		}

		for _, p := range room.Points() {
			if p.X > 0 && p.X < m.Width-1 && p.Y > 0 && p.Y < m.Height-1 {
				m.Set(p, dungeon.Floor)
			}
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func overlapsAny(room dungeon.Rect, rooms []dungeon.Rect) bool {
	for _, r := range rooms {
		if r.Intersects(room) {
			return true
		}
	}
	return false
}

// connect carves an L-shaped corridor between two room centres
func connect(m *dungeon.Map, prev, next dungeon.Point, src rng.Source) {
	if src.Range(0, 2) == 1 {
		horizontalTunnel(m, prev.X, next.X, prev.Y)
		verticalTunnel(m, prev.Y, next.Y, next.X)
		return
	}
	verticalTunnel(m, prev.Y, next.Y, prev.X)
	horizontalTunnel(m, prev.X, next.X, next.Y)
}

func horizontalTunnel(m *dungeon.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.TrySet(dungeon.Pt(x, y), dungeon.Floor)
	}
}

func verticalTunnel(m *dungeon.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.TrySet(dungeon.Pt(x, y), dungeon.Floor)
	}
}
