package dal_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/zlamas/vestnik-telegram-bot/internal/dal"
)

type BoltDBTestSuite struct {
	suite.Suite
	store *dal.BoltDB
}

func (s *BoltDBTestSuite) SetupTest() {
	store, err := dal.NewBoltDB(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.store = store
}

func (s *BoltDBTestSuite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func TestBoltDBTestSuite(t *testing.T) {
	suite.Run(t, new(BoltDBTestSuite))
}

func (s *BoltDBTestSuite) TestDeliveries_PutAndGet() {
	base := time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC)

	deliveries := []dal.Delivery{
		{ChatID: 123, DeckID: "normal", CardID: 25, SentAt: base},
		{ChatID: 123, DeckID: "cats", CardID: 5, SentAt: base.Add(24 * time.Hour)},
		{ChatID: 456, DeckID: "normal", CardID: 77, SentAt: base},
	}
	for _, d := range deliveries {
		s.Require().NoError(s.store.PutDelivery(d))
	}

	got, err := s.store.GetDeliveries(123)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(deliveries[0].CardID, got[0].CardID)
	s.Equal(deliveries[1].CardID, got[1].CardID)
	s.True(got[0].SentAt.Before(got[1].SentAt))

	got, err = s.store.GetDeliveries(456)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("normal", got[0].DeckID)
}

func (s *BoltDBTestSuite) TestDeliveries_GetUnknownChat() {
	got, err := s.store.GetDeliveries(999)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *BoltDBTestSuite) TestRuns_LastRun() {
	_, found, err := s.store.LastRun()
	s.Require().NoError(err)
	s.False(found)

	base := time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC)
	runs := []dal.BroadcastRun{
		{ID: "run-1", StartedAt: base, FinishedAt: base.Add(time.Minute), Total: 3, Sent: 3},
		{ID: "run-2", StartedAt: base.Add(24 * time.Hour), FinishedAt: base.Add(24*time.Hour + time.Minute), Total: 3, Sent: 2, Pruned: 1},
	}
	for _, run := range runs {
		s.Require().NoError(s.store.PutRun(run))
	}

	last, found, err := s.store.LastRun()
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("run-2", last.ID)
	s.Equal(2, last.Sent)
	s.Equal(1, last.Pruned)
}
