package model

import (
	"fmt"
	"strings"
	"time"
)

// Periods lists the lookback choices offered by the period selector.
var Periods = []string{"6M", "1Y", "2Y", "5Y", "10Y", "MAX"}

// RangeSpec selects the date window: either a lookback Period or an explicit
// From/To pair.
type RangeSpec struct {
	Period string
	From   time.Time
	To     time.Time
}

// Lookback builds a period-based range.
func Lookback(period string) RangeSpec {
	return RangeSpec{Period: strings.ToUpper(period)}
}

// Between builds an explicit date range.
func Between(from, to time.Time) RangeSpec {
	return RangeSpec{From: from, To: to}
}

// IsMax reports whether the range asks for the full available history.
func (r RangeSpec) IsMax() bool { return r.Period == "MAX" }

// Validate checks that exactly one form is set and is well-formed.
func (r RangeSpec) Validate() error {
	if r.Period != "" {
		if !r.From.IsZero() || !r.To.IsZero() {
			return fmt.Errorf("both period and dates set: %w", ErrInvalidRange)
		}
		for _, p := range Periods {
			if p == r.Period {
				return nil
			}
		}
		return fmt.Errorf("unknown period %q: %w", r.Period, ErrInvalidRange)
	}
	if r.From.IsZero() || r.To.IsZero() {
		return fmt.Errorf("period or from/to required: %w", ErrInvalidRange)
	}
	if r.From.After(r.To) {
		return fmt.Errorf("from %s after to %s: %w", r.From.Format(DateLayout), r.To.Format(DateLayout), ErrInvalidRange)
	}
	return nil
}

// Resolve turns the range into concrete bounds relative to now. MAX resolves
// to a zero From, meaning "as far back as the provider goes".
func (r RangeSpec) Resolve(now time.Time) (from, to time.Time, err error) {
	if err := r.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if r.Period == "" {
		return r.From, r.To, nil
	}
	to = now
	switch r.Period {
	case "6M":
		from = now.AddDate(0, -6, 0)
	case "1Y":
		from = now.AddDate(-1, 0, 0)
	case "2Y":
		from = now.AddDate(-2, 0, 0)
	case "5Y":
		from = now.AddDate(-5, 0, 0)
	case "10Y":
		from = now.AddDate(-10, 0, 0)
	case "MAX":
		from = time.Time{}
	}
	return from, to, nil
}

// Key is a stable identifier used in cache keys.
func (r RangeSpec) Key() string {
	if r.Period != "" {
		return r.Period
	}
	return r.From.Format(DateLayout) + ".." + r.To.Format(DateLayout)
}

func (r RangeSpec) String() string { return r.Key() }

// Trim keeps the bars whose date falls inside [from, to]. A zero from keeps
// everything up to to.
func (s Series) Trim(from, to time.Time) Series {
	out := make(Series, 0, len(s))
	for _, b := range s {
		if !from.IsZero() && b.Time.Before(truncateDay(from)) {
			continue
		}
		if !to.IsZero() && b.Time.After(truncateDay(to).AddDate(0, 0, 1).Add(-time.Nanosecond)) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
