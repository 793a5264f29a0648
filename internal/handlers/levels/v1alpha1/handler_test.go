package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-dungeon/internal/handlers/levels/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level"
	levelmock "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *levelmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = levelmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{LevelService: s.mockService})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) fixtureLevel() *mapgen.Level {
	m := testutils.MapFromRows(
		"#####",
		"#...#",
		"#...#",
		"#####",
	)
	return &mapgen.Level{
		ID:          "level_1",
		Map:         m,
		SpawnPoints: []dungeon.Point{dungeon.Pt(2, 2)},
		PlayerStart: dungeon.Pt(1, 1),
		Exit:        dungeon.Pt(3, 2),
		Theme:       mapgen.DungeonTheme(),
		Architect:   mapgen.ArchitectRooms,
		Attempts:    1,
	}
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestGenerateLevel() {
	lvl := s.fixtureLevel()
	expires := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	s.mockService.EXPECT().
		GenerateLevel(s.ctx, &level.GenerateLevelInput{
			Seed:      9007199254740993,
			Architect: mapgen.ArchitectRooms,
		}).
		Return(&level.GenerateLevelOutput{
			Level:  lvl,
			Seed:   9007199254740993,
			Record: &levels.Record{ID: "level_1", Seed: 9007199254740993, ExpiresAt: expires},
		}, nil)

	resp, err := s.handler.GenerateLevel(s.ctx, s.request(map[string]any{
		"seed":      "9007199254740993",
		"architect": "rooms",
	}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Assert().Equal("level_1", fields["id"].GetStringValue())
	s.Assert().Equal("9007199254740993", fields["seed"].GetStringValue())
	s.Assert().Equal("rooms", fields["architect"].GetStringValue())
	s.Assert().Equal("dungeon", fields["theme"].GetStringValue())
	s.Assert().Equal(float64(5), fields["width"].GetNumberValue())
	s.Assert().Equal(float64(4), fields["height"].GetNumberValue())
	s.Assert().Equal("2025-06-02T12:00:00Z", fields["expires_at"].GetStringValue())

	start := fields["player_start"].GetStructValue().GetFields()
	s.Assert().Equal(float64(1), start["x"].GetNumberValue())
	s.Assert().Equal(float64(1), start["y"].GetNumberValue())
	s.Assert().Len(fields["spawn_points"].GetListValue().GetValues(), 1)

	s.Assert().Equal([]string{
		"#####",
		"#...#",
		"#..>#",
		"#####",
	}, v1alpha1.Rows(resp))
}

func (s *HandlerTestSuite) TestGenerateLevelDefaults() {
	s.mockService.EXPECT().
		GenerateLevel(s.ctx, &level.GenerateLevelInput{}).
		Return(&level.GenerateLevelOutput{Level: s.fixtureLevel(), Seed: 3}, nil)

	_, err := s.handler.GenerateLevel(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestGenerateLevelRejectsBadInput() {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{name: "non numeric seed", fields: map[string]any{"seed": "abc"}},
		{name: "fractional seed", fields: map[string]any{"seed": 1.5}},
		{name: "boolean seed", fields: map[string]any{"seed": true}},
		{name: "unknown architect", fields: map[string]any{"architect": "bsp"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.GenerateLevel(s.ctx, s.request(tc.fields))
			s.Require().Error(err)
			s.Assert().Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestGenerateLevelExhausted() {
	s.mockService.EXPECT().
		GenerateLevel(s.ctx, gomock.Any()).
		Return(nil, errors.ResourceExhaustedf("failed to generate level after %d attempts", 10))

	_, err := s.handler.GenerateLevel(s.ctx, &structpb.Struct{})
	s.Assert().Equal(codes.ResourceExhausted, status.Code(err))
}

func (s *HandlerTestSuite) TestGetLevel() {
	s.mockService.EXPECT().
		GetLevel(s.ctx, &level.GetLevelInput{LevelID: "level_1"}).
		Return(&level.GetLevelOutput{Level: s.fixtureLevel(), Record: &levels.Record{Seed: 12}}, nil)

	resp, err := s.handler.GetLevel(s.ctx, s.request(map[string]any{"level_id": "level_1"}))
	s.Require().NoError(err)
	s.Assert().Equal("12", resp.GetFields()["seed"].GetStringValue())
}

func (s *HandlerTestSuite) TestGetLevelNotFound() {
	s.mockService.EXPECT().
		GetLevel(s.ctx, &level.GetLevelInput{LevelID: "missing"}).
		Return(nil, errors.NotFound("level not found").WithMeta("level_id", "missing"))

	_, err := s.handler.GetLevel(s.ctx, s.request(map[string]any{"level_id": "missing"}))
	s.Require().Error(err)
	s.Assert().Equal(codes.NotFound, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.Assert().True(errors.IsNotFound(converted))
	s.Assert().Equal("missing", errors.GetMeta(converted)["level_id"])
}

func (s *HandlerTestSuite) TestGetLevelRequiresID() {
	_, err := s.handler.GetLevel(s.ctx, &structpb.Struct{})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.DeleteLevel(s.ctx, nil)
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestDeleteLevel() {
	s.mockService.EXPECT().
		DeleteLevel(s.ctx, &level.DeleteLevelInput{LevelID: "level_1"}).
		Return(&level.DeleteLevelOutput{Deleted: true}, nil)

	resp, err := s.handler.DeleteLevel(s.ctx, s.request(map[string]any{"level_id": "level_1"}))
	s.Require().NoError(err)
	s.Assert().True(resp.GetFields()["deleted"].GetBoolValue())
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

// TestOverTheWire drives the handler through a real grpc server and client
func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterLevelServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis) // nolint:errcheck // returns when the test stops the server
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	client := v1alpha1.NewLevelServiceClient(conn)

	s.mockService.EXPECT().
		GetLevel(gomock.Any(), &level.GetLevelInput{LevelID: "level_1"}).
		Return(&level.GetLevelOutput{Level: s.fixtureLevel()}, nil)
	s.mockService.EXPECT().
		DeleteLevel(gomock.Any(), &level.DeleteLevelInput{LevelID: "gone"}).
		Return(nil, errors.NotFound("level not found"))

	resp, err := client.GetLevel(s.ctx, s.request(map[string]any{"level_id": "level_1"}))
	s.Require().NoError(err)
	s.Assert().Equal("level_1", resp.GetFields()["id"].GetStringValue())
	s.Assert().Len(v1alpha1.Rows(resp), 4)

	_, err = client.DeleteLevel(s.ctx, s.request(map[string]any{"level_id": "gone"}))
	s.Assert().Equal(codes.NotFound, status.Code(err))
}
