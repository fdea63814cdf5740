package drop

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errors.New("drop end date must not precede release date")

type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseLive     Phase = "live"
	PhaseEnded    Phase = "ended"
)

func (p Phase) String() string {
	return string(p)
}

// Window is the [releaseDate, dropEndDate] interval of a limited-edition
// product. Both bounds are inclusive.
type Window struct {
	releaseDate *time.Time
	dropEndDate *time.Time
}

func NewWindow(releaseDate, dropEndDate *time.Time) (Window, error) {
	if releaseDate != nil && dropEndDate != nil && dropEndDate.Before(*releaseDate) {
		return Window{}, ErrInvalidWindow
	}
	return Window{releaseDate: releaseDate, dropEndDate: dropEndDate}, nil
}

// ReconstructWindow skips validation for rows already persisted.
func ReconstructWindow(releaseDate, dropEndDate *time.Time) Window {
	return Window{releaseDate: releaseDate, dropEndDate: dropEndDate}
}

func (w Window) ReleaseDate() *time.Time { return w.releaseDate }
func (w Window) DropEndDate() *time.Time { return w.dropEndDate }

// IsScheduled reports whether both bounds are known.
func (w Window) IsScheduled() bool {
	return w.releaseDate != nil && w.dropEndDate != nil
}

// Classify maps the window onto a phase at now. A window missing either
// bound is upcoming.
func (w Window) Classify(now time.Time) Phase {
	if !w.IsScheduled() {
		return PhaseUpcoming
	}
	if now.Before(*w.releaseDate) {
		return PhaseUpcoming
	}
	if now.After(*w.dropEndDate) {
		return PhaseEnded
	}
	return PhaseLive
}

func (w Window) HasEnded(now time.Time) bool {
	return w.dropEndDate != nil && now.After(*w.dropEndDate)
}

func (w Window) HasStarted(now time.Time) bool {
	return w.releaseDate == nil || !now.Before(*w.releaseDate)
}

type Candidate struct {
	ProductID uuid.UUID
	Window    Window
}

// SelectActive picks the live drop closing soonest, or failing that the
// upcoming drop releasing soonest. Unscheduled drops sort after scheduled ones.
func SelectActive(candidates []Candidate, now time.Time) (Candidate, Phase, bool) {
	var live, upcoming []Candidate
	for _, c := range candidates {
		switch c.Window.Classify(now) {
		case PhaseLive:
			live = append(live, c)
		case PhaseUpcoming:
			upcoming = append(upcoming, c)
		}
	}

	if len(live) > 0 {
		sort.SliceStable(live, func(i, j int) bool {
			return live[i].Window.dropEndDate.Before(*live[j].Window.dropEndDate)
		})
		return live[0], PhaseLive, true
	}

	if len(upcoming) > 0 {
		sort.SliceStable(upcoming, func(i, j int) bool {
			return earlierRelease(upcoming[i].Window, upcoming[j].Window)
		})
		return upcoming[0], PhaseUpcoming, true
	}

	return Candidate{}, "", false
}

func earlierRelease(a, b Window) bool {
	switch {
	case a.releaseDate == nil:
		return false
	case b.releaseDate == nil:
		return true
	default:
		return a.releaseDate.Before(*b.releaseDate)
	}
}
