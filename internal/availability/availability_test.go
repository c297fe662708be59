package availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testDay = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestFreeTime_ClearEvening(t *testing.T) {
	free, summary, evening := FreeTime(nil, testDay, DefaultWindow)
	assert.Equal(t, 240, free)
	assert.Equal(t, "Evening is clear — full 240 minutes free (17–21 PM)", summary)
	assert.Empty(t, evening)
}

func TestFreeTime_MergesAndClipsBusyIntervals(t *testing.T) {
	events := []Event{
		{Subject: "Lunch", Start: at(12, 0), End: at(13, 0)},
		{Subject: "Standup", Start: at(16, 0), End: at(17, 0)},
		{Subject: "Soccer", Start: at(17, 30), End: at(18, 0)},
		{Subject: "Call", Start: at(17, 45), End: at(18, 30)},
		{Subject: "Late", Start: at(20, 30), End: at(22, 0)},
	}
	free, summary, evening := FreeTime(events, testDay, DefaultWindow)

	assert.Equal(t, 150, free)
	require.Len(t, evening, 3)
	assert.Equal(t, "150 min free tonight · 3 event(s): Soccer (05:30 PM), Call (05:45 PM), Late (08:30 PM)", summary)
}

func TestFreeTime_FullyBooked(t *testing.T) {
	events := []Event{{Subject: "Recital", Start: at(16, 0), End: at(22, 0)}}
	free, _, evening := FreeTime(events, testDay, DefaultWindow)
	assert.Equal(t, 0, free)
	assert.Len(t, evening, 1)
}

func TestFreeTime_CustomWindow(t *testing.T) {
	w := Window{StartHour: 18, EndHour: 20}
	events := []Event{{Subject: "Soccer", Start: at(17, 30), End: at(18, 30)}}
	free, _, _ := FreeTime(events, testDay, w)
	assert.Equal(t, 90, free)
}

func TestWindow_Validate(t *testing.T) {
	assert.NoError(t, DefaultWindow.Validate())
	assert.Error(t, Window{StartHour: 21, EndHour: 17}.Validate())
	assert.Error(t, Window{StartHour: 17, EndHour: 25}.Validate())
	assert.Equal(t, 240, DefaultWindow.Minutes())
}

func TestStatic_FreeMinutesTonight(t *testing.T) {
	a, err := Static{Minutes: 45}.FreeMinutesTonight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Availability{Minutes: 45, Summary: "45 min free tonight", Source: domain.SourceStatic}, a)
}

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1\r\n" +
	"SUMMARY:Soccer practice\r\n" +
	"DTSTART:20260310T173000Z\r\n" +
	"DTEND:20260310T183000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:2\r\n" +
	"SUMMARY:Holiday\r\n" +
	"DTSTART;VALUE=DATE:20260310\r\n" +
	"DTEND;VALUE=DATE:20260311\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:3\r\n" +
	"SUMMARY:Tomorrow\r\n" +
	"DTSTART:20260311T180000Z\r\n" +
	"DTEND:20260311T190000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:4\r\n" +
	"SUMMARY:No end\r\n" +
	"DTSTART:20260310T190000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:5\r\n" +
	"DTSTART:20260310T080000Z\r\n" +
	"DTEND:20260310T090000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseEvents_SkipsAllDayOtherDaysAndOpenEnded(t *testing.T) {
	events, err := ParseEvents(strings.NewReader(sampleICS), testDay)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "(No title)", events[0].Subject, "sorted by start")
	assert.Equal(t, "Soccer practice", events[1].Subject)
	assert.Equal(t, at(17, 30), events[1].Start)
	assert.Equal(t, 60, events[1].DurationMinutes())
}

func newCalendarServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func fixedNow() time.Time { return at(15, 0) }

func TestCalendar_FreeMinutesTonight(t *testing.T) {
	var gotUA string
	srv := newCalendarServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(sampleICS))
	})

	cal := NewCalendar(CalendarConfig{URL: srv.URL, Location: time.UTC, Now: fixedNow}, nil)
	a, err := cal.FreeMinutesTonight(context.Background())
	require.NoError(t, err)

	assert.Equal(t, UserAgent, gotUA)
	assert.Equal(t, 180, a.Minutes)
	assert.Equal(t, domain.SourceCalendar, a.Source)
	assert.Equal(t, "180 min free tonight · 1 event(s): Soccer practice (05:30 PM)", a.Summary)
}

func TestCalendar_HTTPErrorStatus(t *testing.T) {
	srv := newCalendarServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	cal := NewCalendar(CalendarConfig{URL: srv.URL, Location: time.UTC, Now: fixedNow}, nil)
	_, err := cal.FreeMinutesTonight(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCalendar_Timeout(t *testing.T) {
	srv := newCalendarServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	})

	cal := NewCalendar(CalendarConfig{URL: srv.URL, Timeout: 100 * time.Millisecond, Location: time.UTC, Now: fixedNow}, nil)
	start := time.Now()
	_, err := cal.FreeMinutesTonight(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

type failingProvider struct{ err error }

func (p failingProvider) FreeMinutesTonight(ctx context.Context) (Availability, error) {
	return Availability{}, p.err
}

func TestFallback_NoCalendar(t *testing.T) {
	a, err := New(Options{}).FreeMinutesTonight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90, a.Minutes)
	assert.Equal(t, "No calendar connected — assuming 90 min free.", a.Summary)
	assert.Equal(t, domain.SourceFallback, a.Source)
}

func TestFallback_PrimaryErrorIsLoggedAndReplaced(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := &Fallback{Primary: failingProvider{err: errors.New("boom")}, DefaultMinutes: 60, Logger: zap.New(core)}

	a, err := f.FreeMinutesTonight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60, a.Minutes)
	assert.Equal(t, "Couldn't read calendar (boom) — assuming 60 min free.", a.Summary)
	assert.Equal(t, 1, logs.Len())
}

func TestFallback_PassesThroughSuccess(t *testing.T) {
	f := &Fallback{Primary: Static{Minutes: 30}}
	a, err := f.FreeMinutesTonight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceStatic, a.Source)
	assert.Equal(t, 30, a.Minutes)
}

func TestNew_WithURLFallsBackOnServerError(t *testing.T) {
	srv := newCalendarServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	p := New(Options{ICSURL: srv.URL, Location: time.UTC, Now: fixedNow})
	a, err := p.FreeMinutesTonight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultMinutes, a.Minutes)
	assert.True(t, strings.HasPrefix(a.Summary, "Couldn't read calendar ("))
}
