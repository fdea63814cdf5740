//go:build unit

package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/queries"
	"hof-drops/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type fakeDropCache struct {
	mu          sync.Mutex
	view        *queries.DropView
	getErr      error
	gets        int
	sets        int
	invalidated int
}

func (f *fakeDropCache) GetActiveDrop(context.Context) (*queries.DropView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.view == nil {
		return nil, queries.ErrCacheMiss
	}
	v := *f.view
	return &v, nil
}

func (f *fakeDropCache) SetActiveDrop(_ context.Context, view *queries.DropView) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	v := *view
	f.view = &v
	return nil
}

func (f *fakeDropCache) InvalidateActiveDrop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	f.view = nil
	return nil
}

type DropQueriesTestSuite struct {
	suite.Suite
	store *memstore.Store
	cache *fakeDropCache
	clock *clock.MockClock
	q     queries.DropQueries
}

func (s *DropQueriesTestSuite) SetupTest() {
	s.store = memstore.New()
	s.cache = &fakeDropCache{}
	s.clock = clock.NewMockClock(baseTime)
	s.q = queries.NewDropQueries(s.store, s.cache, s.clock)
}

func TestDropQueriesSuite(t *testing.T) {
	suite.Run(t, new(DropQueriesTestSuite))
}

func (s *DropQueriesTestSuite) addDrop(name string, releaseIn, endIn time.Duration) uuid.UUID {
	release := baseTime.Add(releaseIn)
	end := baseTime.Add(endIn)
	return s.store.AddProduct(memstore.ProductSeed{
		Name:             name,
		PriceCents:       9900,
		IsLimitedEdition: true,
		ReleaseDate:      &release,
		DropEndDate:      &end,
	})
}

func (s *DropQueriesTestSuite) TestActiveDrop() {
	s.Run("live drop closing soonest wins over upcoming drops", func() {
		s.SetupTest()
		s.addDrop("later live", -2*time.Hour, 10*time.Hour)
		soonest := s.addDrop("closing soon", -time.Hour, time.Hour)
		s.addDrop("upcoming", time.Hour, 5*time.Hour)

		view, err := s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)
		s.Equal(soonest, view.ProductID)
		s.Equal("live", view.Phase)
		s.Equal(1, s.cache.sets)
	})

	s.Run("upcoming drop when nothing is live", func() {
		s.SetupTest()
		s.addDrop("past", -48*time.Hour, -time.Hour)
		next := s.addDrop("next", time.Hour, 5*time.Hour)
		s.addDrop("after", 2*time.Hour, 5*time.Hour)

		view, err := s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)
		s.Equal(next, view.ProductID)
		s.Equal("upcoming", view.Phase)
	})

	s.Run("no candidates", func() {
		s.SetupTest()
		s.store.AddProduct(memstore.ProductSeed{PriceCents: 100})

		_, err := s.q.ActiveDrop(context.Background())
		s.True(errs.Is(err, queries.ErrNoActiveDrop), "got %v", err)
	})

	s.Run("cached selection is served with a fresh phase", func() {
		s.SetupTest()
		id := s.addDrop("soon", time.Minute, time.Hour)

		view, err := s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)
		s.Equal("upcoming", view.Phase)

		s.clock.Add(2 * time.Minute)
		view, err = s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)
		s.Equal(id, view.ProductID)
		s.Equal("live", view.Phase)
		s.Equal(1, s.cache.sets, "second read must come from the cache")
	})

	s.Run("cached drop that has ended is invalidated", func() {
		s.SetupTest()
		s.addDrop("closing", -time.Hour, time.Minute)

		_, err := s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)

		s.clock.Add(2 * time.Minute)
		_, err = s.q.ActiveDrop(context.Background())
		s.True(errs.Is(err, queries.ErrNoActiveDrop), "got %v", err)
		s.Equal(1, s.cache.invalidated)
	})

	s.Run("ended cached drop is replaced by the next selection", func() {
		s.SetupTest()
		s.addDrop("closing", -time.Hour, time.Minute)
		next := s.addDrop("next", -time.Hour, 3*time.Hour)
		later := s.addDrop("later", 5*time.Minute, 5*time.Hour)

		view, err := s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)
		s.NotEqual(next, view.ProductID)

		s.clock.Add(2 * time.Minute)
		view, err = s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)
		s.Equal(next, view.ProductID)
		s.Equal("live", view.Phase)
		s.Equal(1, s.cache.invalidated)
		s.Equal(2, s.cache.sets, "replacement selection is cached")
		s.NotEqual(later, view.ProductID)
	})

	s.Run("cache outage falls back to the database", func() {
		s.SetupTest()
		id := s.addDrop("live", -time.Hour, time.Hour)
		s.cache.getErr = errors.New("redis: connection refused")

		view, err := s.q.ActiveDrop(context.Background())
		s.Require().NoError(err)
		s.Equal(id, view.ProductID)
	})

	s.Run("concurrent misses share one lookup", func() {
		s.SetupTest()
		s.addDrop("live", -time.Hour, time.Hour)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.q.ActiveDrop(context.Background())
				s.NoError(err)
			}()
		}
		wg.Wait()
		s.LessOrEqual(s.cache.sets, 16)
		s.GreaterOrEqual(s.cache.sets, 1)
	})
}

func (s *DropQueriesTestSuite) TestProductDrop() {
	s.Run("phase of a scheduled drop", func() {
		s.SetupTest()
		id := s.addDrop("live", -time.Hour, time.Hour)

		view, err := s.q.ProductDrop(context.Background(), id)
		s.Require().NoError(err)
		s.Equal("live", view.Phase)
		s.Equal(int64(9900), view.PriceCents)
	})

	s.Run("unscheduled limited product reports upcoming", func() {
		s.SetupTest()
		id := s.store.AddProduct(memstore.ProductSeed{IsLimitedEdition: true})

		view, err := s.q.ProductDrop(context.Background(), id)
		s.Require().NoError(err)
		s.Equal("upcoming", view.Phase)
	})

	s.Run("regular product", func() {
		s.SetupTest()
		id := s.store.AddProduct(memstore.ProductSeed{})
		_, err := s.q.ProductDrop(context.Background(), id)
		s.True(errs.Is(err, queries.ErrNotLimited), "got %v", err)
	})

	s.Run("inactive or missing product", func() {
		s.SetupTest()
		id := s.store.AddProduct(memstore.ProductSeed{IsLimitedEdition: true, Inactive: true})
		_, err := s.q.ProductDrop(context.Background(), id)
		s.True(errs.Is(err, queries.ErrProductNotFound), "got %v", err)

		_, err = s.q.ProductDrop(context.Background(), uuid.New())
		s.True(errs.Is(err, queries.ErrProductNotFound), "got %v", err)
	})
}
