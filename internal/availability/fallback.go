package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/logging"
	"go.uber.org/zap"
)

// Fallback never fails: a missing primary or a primary error yields
// DefaultMinutes with a summary explaining why.
type Fallback struct {
	Primary        Provider
	DefaultMinutes int
	Logger         *zap.Logger
}

func (f *Fallback) FreeMinutesTonight(ctx context.Context) (Availability, error) {
	def := f.DefaultMinutes
	if def <= 0 {
		def = DefaultMinutes
	}
	if f.Primary == nil {
		return Availability{
			Minutes: def,
			Summary: fmt.Sprintf("No calendar connected — assuming %d min free.", def),
			Source:  domain.SourceFallback,
		}, nil
	}

	a, err := f.Primary.FreeMinutesTonight(ctx)
	if err != nil {
		logging.OrNop(f.Logger).Warn("calendar unavailable, using default minutes",
			zap.Error(err),
			zap.Int("default_minutes", def),
		)
		return Availability{
			Minutes: def,
			Summary: fmt.Sprintf("Couldn't read calendar (%v) — assuming %d min free.", err, def),
			Source:  domain.SourceFallback,
		}, nil
	}
	return a, nil
}

type Options struct {
	// ICSURL enables the calendar provider when set.
	ICSURL         string
	DefaultMinutes int
	Window         Window
	Timeout        time.Duration
	Location       *time.Location
	Now            func() time.Time
	Logger         *zap.Logger
}

// New returns the provider chain for opts: a calendar behind a fallback, or
// the bare fallback when no URL is configured.
func New(opts Options) Provider {
	f := &Fallback{DefaultMinutes: opts.DefaultMinutes, Logger: opts.Logger}
	if opts.ICSURL != "" {
		f.Primary = NewCalendar(CalendarConfig{
			URL:      opts.ICSURL,
			Window:   opts.Window,
			Timeout:  opts.Timeout,
			Location: opts.Location,
			Now:      opts.Now,
		}, opts.Logger)
	}
	return f
}
