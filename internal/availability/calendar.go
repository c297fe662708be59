package availability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/logging"
	ics "github.com/arran4/golang-ical"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	UserAgent      = "RecipeBot/1.0"
	DefaultTimeout = 10 * time.Second
	untitledEvent  = "(No title)"
)

type CalendarConfig struct {
	URL     string
	Window  Window
	Timeout time.Duration
	// Location is the household's local zone. Defaults to time.Local.
	Location *time.Location
	Now      func() time.Time
}

// Calendar reads tonight's events from a published ICS link.
type Calendar struct {
	url    string
	window Window
	loc    *time.Location
	now    func() time.Time
	client *resty.Client
	logger *zap.Logger
}

func NewCalendar(cfg CalendarConfig, logger *zap.Logger) *Calendar {
	if cfg.Window == (Window{}) {
		cfg.Window = DefaultWindow
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "text/calendar")
	return &Calendar{
		url:    cfg.URL,
		window: cfg.Window,
		loc:    cfg.Location,
		now:    cfg.Now,
		client: client,
		logger: logging.OrNop(logger),
	}
}

func (c *Calendar) FreeMinutesTonight(ctx context.Context) (Availability, error) {
	day := c.now().In(c.loc)
	events, err := c.Events(ctx, day)
	if err != nil {
		return Availability{}, err
	}
	free, summary, evening := FreeTime(events, day, c.window)
	c.logger.Debug("calendar availability",
		zap.Int("events_today", len(events)),
		zap.Int("events_in_window", len(evening)),
		zap.Int("free_minutes", free),
	)
	return Availability{Minutes: free, Summary: summary, Source: domain.SourceCalendar}, nil
}

// Events fetches the feed and returns the timed events touching day.
func (c *Calendar) Events(ctx context.Context, day time.Time) ([]Event, error) {
	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("fetching calendar: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching calendar: unexpected status %s", resp.Status())
	}
	return ParseEvents(bytes.NewReader(resp.Body()), day.In(c.loc))
}

// ParseEvents reads an ICS document and keeps timed events whose start or end
// falls on day's date in day's location. All-day events and events without
// both DTSTART and DTEND are skipped. The result is sorted by start.
func ParseEvents(r io.Reader, day time.Time) ([]Event, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	loc := day.Location()
	var out []Event
	for _, ev := range cal.Events() {
		if isAllDay(ev) {
			continue
		}
		if ev.GetProperty(ics.ComponentPropertyDtEnd) == nil {
			continue
		}
		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ev.GetEndAt()
		if err != nil {
			continue
		}
		start, end = start.In(loc), end.In(loc)
		if !sameDate(start, day) && !sameDate(end, day) {
			continue
		}
		out = append(out, Event{Subject: subjectOf(ev), Start: start, End: end})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func isAllDay(ev *ics.VEvent) bool {
	prop := ev.GetProperty(ics.ComponentPropertyDtStart)
	if prop == nil {
		return true
	}
	for _, v := range prop.ICalParameters["VALUE"] {
		if strings.EqualFold(v, "DATE") {
			return true
		}
	}
	return len(strings.TrimSpace(prop.Value)) == len("20060102")
}

func subjectOf(ev *ics.VEvent) string {
	prop := ev.GetProperty(ics.ComponentPropertySummary)
	if prop == nil || strings.TrimSpace(prop.Value) == "" {
		return untitledEvent
	}
	return strings.NewReplacer(`\,`, ",", `\;`, ";", `\\`, `\`).Replace(prop.Value)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
