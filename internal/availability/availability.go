// Package availability answers "how many minutes can we spend cooking
// tonight?" from a fixed value or a published ICS calendar.
package availability

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
)

// DefaultMinutes is assumed whenever the calendar is absent or unreadable.
const DefaultMinutes = 90

type Availability struct {
	Minutes int
	Summary string
	Source  domain.AvailabilitySource
}

// Provider is implemented by every availability source. Only the calendar
// provider can fail; Fallback turns its errors into a default answer.
type Provider interface {
	FreeMinutesTonight(ctx context.Context) (Availability, error)
}

// Static reports a user-supplied number of minutes.
type Static struct {
	Minutes int
}

func (s Static) FreeMinutesTonight(ctx context.Context) (Availability, error) {
	return Availability{
		Minutes: s.Minutes,
		Summary: fmt.Sprintf("%d min free tonight", s.Minutes),
		Source:  domain.SourceStatic,
	}, nil
}

// Window is the cooking window in whole local hours, [StartHour, EndHour).
type Window struct {
	StartHour int
	EndHour   int
}

var DefaultWindow = Window{StartHour: 17, EndHour: 21}

func (w Window) Validate() error {
	if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
		return fmt.Errorf("invalid cooking window %d-%d: start must be before end within 0-24", w.StartHour, w.EndHour)
	}
	return nil
}

func (w Window) Minutes() int {
	return (w.EndHour - w.StartHour) * 60
}

// Bounds returns the window on day's calendar date in day's location.
func (w Window) Bounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	return time.Date(y, m, d, w.StartHour, 0, 0, 0, loc), time.Date(y, m, d, w.EndHour, 0, 0, 0, loc)
}

// Event is a timed calendar entry. All-day events never become Events.
type Event struct {
	Subject string
	Start   time.Time
	End     time.Time
}

func (e Event) DurationMinutes() int {
	return int(e.End.Sub(e.Start).Minutes())
}

type interval struct {
	start, end time.Time
}

// FreeTime subtracts the union of busy intervals from the window on day.
// It returns the free minutes, a one-line summary, and the events that
// overlap the window.
func FreeTime(events []Event, day time.Time, w Window) (int, string, []Event) {
	winStart, winEnd := w.Bounds(day)

	var evening []Event
	for _, e := range events {
		if !e.End.After(winStart) || !e.Start.Before(winEnd) {
			continue
		}
		evening = append(evening, e)
	}

	total := int(winEnd.Sub(winStart).Minutes())
	if len(evening) == 0 {
		return total, fmt.Sprintf("Evening is clear — full %d minutes free (%d–%d PM)", total, w.StartHour, w.EndHour), nil
	}

	intervals := make([]interval, 0, len(evening))
	for _, e := range evening {
		iv := interval{start: e.Start, end: e.End}
		if iv.start.Before(winStart) {
			iv.start = winStart
		}
		if iv.end.After(winEnd) {
			iv.end = winEnd
		}
		intervals = append(intervals, iv)
	}
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].start.Equal(intervals[j].start) {
			return intervals[i].end.Before(intervals[j].end)
		}
		return intervals[i].start.Before(intervals[j].start)
	})

	merged := []interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}

	busy := 0
	for _, iv := range merged {
		busy += int(iv.end.Sub(iv.start).Minutes())
	}
	free := total - busy

	names := make([]string, 0, len(evening))
	for _, e := range evening {
		names = append(names, fmt.Sprintf("%s (%s)", e.Subject, e.Start.Format("03:04 PM")))
	}
	summary := fmt.Sprintf("%d min free tonight · %d event(s): %s", free, len(evening), strings.Join(names, ", "))
	return free, summary, evening
}
