//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hof-drops/internal/domain/notification"
	"hof-drops/internal/domain/reservation"
	reqdto "hof-drops/internal/handler/dto/request"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/commands"
	"hof-drops/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DropCommandsTestSuite struct {
	suite.Suite
	store *memstore.Store
	clock *clock.MockClock
	cmds  commands.DropCommands
}

func (s *DropCommandsTestSuite) SetupTest() {
	s.store = memstore.New()
	s.clock = clock.NewMockClock(baseTime)
	s.cmds = commands.NewDropUseCase(s.store, s.clock)
}

func TestDropCommandsSuite(t *testing.T) {
	suite.Run(t, new(DropCommandsTestSuite))
}

func (s *DropCommandsTestSuite) drop(releaseIn, endIn time.Duration) uuid.UUID {
	release := baseTime.Add(releaseIn)
	end := baseTime.Add(endIn)
	return s.store.AddProduct(memstore.ProductSeed{
		Name:             "Archive Hoodie",
		PriceCents:       15000,
		IsLimitedEdition: true,
		ReleaseDate:      &release,
		DropEndDate:      &end,
	})
}

func (s *DropCommandsTestSuite) TestSubscribe() {
	s.Run("subscribing twice keeps one row", func() {
		s.SetupTest()
		productID := s.drop(time.Hour, 48*time.Hour)

		first, err := s.cmds.Subscribe(context.Background(), productID, reqdto.SubscribeRequest{Email: "Fan@Example.com"})
		s.Require().NoError(err)
		s.True(first.Created)
		s.Equal("fan@example.com", first.Email)

		second, err := s.cmds.Subscribe(context.Background(), productID, reqdto.SubscribeRequest{Email: "fan@example.com", Source: "instagram"})
		s.Require().NoError(err)
		s.False(second.Created)

		subs := s.store.Subscriptions()
		s.Require().Len(subs, 1)
		s.Equal("instagram", subs[0].Source)
	})

	s.Run("rejections", func() {
		s.SetupTest()
		ended := s.drop(-48*time.Hour, -time.Hour)
		regular := s.store.AddProduct(memstore.ProductSeed{PriceCents: 100})
		live := s.drop(-time.Hour, time.Hour)

		testCases := []struct {
			name    string
			product uuid.UUID
			email   string
			errIs   error
		}{
			{name: "drop ended", product: ended, email: "a@example.com", errIs: reservation.ErrDropEnded},
			{name: "regular product", product: regular, email: "a@example.com", errIs: commands.ErrNotLimitedEdition},
			{name: "unknown product", product: uuid.New(), email: "a@example.com", errIs: commands.ErrProductNotFound},
			{name: "invalid email", product: live, email: "nope", errIs: commands.ErrValidation},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				_, err := s.cmds.Subscribe(context.Background(), tc.product, reqdto.SubscribeRequest{Email: tc.email})
				s.True(errs.Is(err, tc.errIs), "got %v", err)
			})
		}
		s.Empty(s.store.Subscriptions())
	})
}

func (s *DropCommandsTestSuite) TestNotifySubscribers() {
	s.Run("live drop queues one job per pending subscriber", func() {
		s.SetupTest()
		productID := s.drop(time.Hour, 48*time.Hour)
		for _, email := range []string{"a@example.com", "b@example.com"} {
			_, err := s.cmds.Subscribe(context.Background(), productID, reqdto.SubscribeRequest{Email: email})
			s.Require().NoError(err)
		}

		_, err := s.cmds.NotifySubscribers(context.Background(), productID)
		s.True(errs.Is(err, reservation.ErrDropNotStarted), "got %v", err)
		s.Empty(s.store.Jobs())

		s.clock.Add(2 * time.Hour)
		res, err := s.cmds.NotifySubscribers(context.Background(), productID)
		s.Require().NoError(err)
		s.Equal(2, res.Enqueued)

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 2)
		var payload notification.DropLivePayload
		s.Require().NoError(json.Unmarshal(jobs[0].Payload, &payload))
		s.Equal("Archive Hoodie", payload.ProductName)
		s.NotNil(payload.DropEndDate)

		for _, sub := range s.store.Subscriptions() {
			s.True(sub.Notified)
		}

		res, err = s.cmds.NotifySubscribers(context.Background(), productID)
		s.Require().NoError(err)
		s.Zero(res.Enqueued)
		s.Len(s.store.Jobs(), 2)
	})

	s.Run("ended drop cannot be announced", func() {
		s.SetupTest()
		productID := s.drop(-48*time.Hour, -time.Hour)
		_, err := s.cmds.NotifySubscribers(context.Background(), productID)
		s.True(errs.Is(err, reservation.ErrDropEnded), "got %v", err)
	})
}
