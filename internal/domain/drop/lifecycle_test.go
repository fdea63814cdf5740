//go:build unit

package drop_test

import (
	"testing"
	"time"

	"hof-drops/internal/domain/drop"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	release = time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	end     = time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
)

func window(t *testing.T, r, e *time.Time) drop.Window {
	t.Helper()
	w, err := drop.NewWindow(r, e)
	require.NoError(t, err)
	return w
}

func TestWindow_Classify(t *testing.T) {
	w := window(t, &release, &end)

	cases := []struct {
		name string
		now  time.Time
		want drop.Phase
	}{
		{"one nanosecond before release", release.Add(-time.Nanosecond), drop.PhaseUpcoming},
		{"exactly at release", release, drop.PhaseLive},
		{"mid window", release.Add(24 * time.Hour), drop.PhaseLive},
		{"exactly at drop end", end, drop.PhaseLive},
		{"one nanosecond after drop end", end.Add(time.Nanosecond), drop.PhaseEnded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.Classify(tc.now))
		})
	}
}

func TestWindow_Unscheduled(t *testing.T) {
	far := end.Add(365 * 24 * time.Hour)

	assert.Equal(t, drop.PhaseUpcoming, window(t, nil, nil).Classify(far))
	assert.Equal(t, drop.PhaseUpcoming, window(t, &release, nil).Classify(far))
	assert.Equal(t, drop.PhaseUpcoming, window(t, nil, &end).Classify(release))

	assert.False(t, window(t, nil, nil).IsScheduled())
	assert.True(t, window(t, nil, nil).HasStarted(release))
	assert.False(t, window(t, &release, nil).HasEnded(far))
}

func TestWindow_HasEndedAndStarted(t *testing.T) {
	w := window(t, &release, &end)

	assert.False(t, w.HasEnded(end))
	assert.True(t, w.HasEnded(end.Add(time.Second)))
	assert.False(t, w.HasStarted(release.Add(-time.Second)))
	assert.True(t, w.HasStarted(release))
}

func TestNewWindow_RejectsInvertedBounds(t *testing.T) {
	_, err := drop.NewWindow(&end, &release)
	assert.ErrorIs(t, err, drop.ErrInvalidWindow)
}

func TestSelectActive(t *testing.T) {
	now := release.Add(time.Hour)
	later := end.Add(48 * time.Hour)
	soonRelease := now.Add(2 * time.Hour)
	lateRelease := now.Add(72 * time.Hour)

	liveLong := drop.Candidate{ProductID: uuid.New(), Window: window(t, &release, &later)}
	liveShort := drop.Candidate{ProductID: uuid.New(), Window: window(t, &release, &end)}
	upSoon := drop.Candidate{ProductID: uuid.New(), Window: window(t, &soonRelease, &later)}
	upLate := drop.Candidate{ProductID: uuid.New(), Window: window(t, &lateRelease, &later)}
	unscheduled := drop.Candidate{ProductID: uuid.New(), Window: window(t, nil, nil)}
	past := release.Add(-72 * time.Hour)
	pastEnd := release.Add(-48 * time.Hour)
	ended := drop.Candidate{ProductID: uuid.New(), Window: window(t, &past, &pastEnd)}

	t.Run("prefers live drop ending soonest", func(t *testing.T) {
		got, phase, ok := drop.SelectActive([]drop.Candidate{upSoon, liveLong, ended, liveShort}, now)
		require.True(t, ok)
		assert.Equal(t, drop.PhaseLive, phase)
		assert.Equal(t, liveShort.ProductID, got.ProductID)
	})

	t.Run("falls back to soonest upcoming", func(t *testing.T) {
		got, phase, ok := drop.SelectActive([]drop.Candidate{unscheduled, upLate, upSoon, ended}, now)
		require.True(t, ok)
		assert.Equal(t, drop.PhaseUpcoming, phase)
		assert.Equal(t, upSoon.ProductID, got.ProductID)
	})

	t.Run("unscheduled only", func(t *testing.T) {
		got, phase, ok := drop.SelectActive([]drop.Candidate{unscheduled}, now)
		require.True(t, ok)
		assert.Equal(t, drop.PhaseUpcoming, phase)
		assert.Equal(t, unscheduled.ProductID, got.ProductID)
	})

	t.Run("nothing active", func(t *testing.T) {
		_, _, ok := drop.SelectActive([]drop.Candidate{ended}, now)
		assert.False(t, ok)
	})
}
