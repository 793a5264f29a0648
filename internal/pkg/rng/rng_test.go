package rng_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

type RNGTestSuite struct {
	suite.Suite
}

func TestRNGSuite(t *testing.T) {
	suite.Run(t, new(RNGTestSuite))
}

func (s *RNGTestSuite) TestRangeStaysInHalfOpenInterval() {
	src := rng.NewSeeded(7)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := src.Range(3, 8)
		s.Require().GreaterOrEqual(v, 3)
		s.Require().Less(v, 8)
		seen[v] = true
	}
	s.Assert().Len(seen, 5)
}

func (s *RNGTestSuite) TestRangeEmptyReturnsLow() {
	src := rng.NewSeeded(1)
	s.Assert().Equal(4, src.Range(4, 4))
	s.Assert().Equal(9, src.Range(9, 2))
}

func (s *RNGTestSuite) TestSameSeedSameStream() {
	a := rng.NewSeeded(42)
	b := rng.NewSeeded(42)
	for i := 0; i < 100; i++ {
		s.Require().Equal(a.Range(0, 100), b.Range(0, 100))
	}
}

func (s *RNGTestSuite) TestDefaultRollerSource() {
	src := rng.New(dice.DefaultRoller)
	for i := 0; i < 100; i++ {
		v := src.Index(6)
		s.Require().GreaterOrEqual(v, 0)
		s.Require().Less(v, 6)
	}
}

func (s *RNGTestSuite) TestTakeWithoutReplacement() {
	src := rng.NewSeeded(3)
	pool := []int{1, 2, 3, 4, 5}
	drawn := make(map[int]bool)

	for len(pool) > 0 {
		var v int
		var ok bool
		before := len(pool)
		v, pool, ok = rng.Take(src, pool)
		s.Require().True(ok)
		s.Require().Len(pool, before-1)
		s.Require().False(drawn[v], "drew %d twice", v)
		drawn[v] = true
	}
	s.Assert().Len(drawn, 5)

	_, rest, ok := rng.Take(src, pool)
	s.Assert().False(ok)
	s.Assert().Empty(rest)
}

func (s *RNGTestSuite) TestSeededRollerRejectsBadSize() {
	r := rng.NewSeededRoller(1)
	_, err := r.Roll(0)
	s.Assert().Error(err)

	rolls, err := r.RollN(4, 6)
	s.Require().NoError(err)
	s.Assert().Len(rolls, 4)
	for _, v := range rolls {
		s.Assert().GreaterOrEqual(v, 1)
		s.Assert().LessOrEqual(v, 6)
	}
}
