package db_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/udisondev/wildgrid/internal/db"
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/testutil"
	"github.com/udisondev/wildgrid/internal/world"
)

// AreaRepositorySuite runs against a single container shared by all its tests.
type AreaRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	ctx  context.Context
	repo *db.AreaRepository
}

func (s *AreaRepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	s.pool = testutil.SetupTestDB(s.T())
}

func (s *AreaRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE area_snapshots")
	s.Require().NoError(err)
	s.repo = db.NewAreaRepository(s.pool, uuid.New())
}

func (s *AreaRepositorySuite) generated(loc geo.AreaCoord) *world.Area {
	gen := world.NewGenerator(world.DefaultGeneratorConfig(12, 10), world.SeedFromInt(5))
	return gen.Generate(loc, world.GenerateOptions{})
}

func (s *AreaRepositorySuite) TestSaveLoad() {
	a := s.generated(geo.AreaCoord{X: 2, Y: -1})
	a.Spawned = true

	s.Require().NoError(s.repo.SaveArea(s.ctx, a.Snapshot()))

	got, ok, err := s.repo.LoadArea(s.ctx, a.Location)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(a.Location, got.Location)
	s.Equal(a.Width, got.Width)
	s.Equal(a.Height, got.Height)
	s.Equal(a.Tiles, got.Tiles)
	s.Equal(len(a.Structures), len(got.Structures))
	if len(a.Structures) > 0 {
		s.Equal(a.Structures, got.Structures)
	}
	s.True(got.Spawned)
}

func (s *AreaRepositorySuite) TestLoadMissing() {
	_, ok, err := s.repo.LoadArea(s.ctx, geo.AreaCoord{X: 9, Y: 9})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *AreaRepositorySuite) TestUpsert() {
	a := s.generated(geo.AreaCoord{})
	s.Require().NoError(s.repo.SaveArea(s.ctx, a.Snapshot()))

	a.Spawned = true
	s.Require().NoError(s.repo.SaveArea(s.ctx, a.Snapshot()))

	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	got, ok, err := s.repo.LoadArea(s.ctx, a.Location)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.True(got.Spawned)
}

func (s *AreaRepositorySuite) TestSessionsAreIsolated() {
	a := s.generated(geo.AreaCoord{X: 1})
	s.Require().NoError(s.repo.SaveArea(s.ctx, a.Snapshot()))

	other := db.NewAreaRepository(s.pool, uuid.New())
	_, ok, err := other.LoadArea(s.ctx, a.Location)
	s.Require().NoError(err)
	s.False(ok)

	deleted, err := s.repo.DeleteSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	_, ok, err = s.repo.LoadArea(s.ctx, a.Location)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *AreaRepositorySuite) TestWorldMapEvictionRoundTrip() {
	gen := world.NewGenerator(world.DefaultGeneratorConfig(12, 10), world.SeedFromInt(5))
	m := world.NewWorldMap(s.ctx, gen, world.MapOptions{Store: s.repo, MaxResident: 1})
	origin := append([]world.TileBlock(nil), m.Tiles...)

	m.Transition(s.ctx, geo.East)
	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n, "origin written on eviction")

	m.Transition(s.ctx, geo.West)
	s.Equal(origin, m.Tiles)
}

func TestAreaRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(AreaRepositorySuite))
}
