// Package period resolves symbolic reporting periods and explicit date bounds
// into inclusive time ranges.
package period

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Period string

const (
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	General Period = "general"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvertedRange     = errors.New("range start is after range end")
)

// Normalize maps user input onto a known Period. Anything unrecognized is General.
func Normalize(s string) Period {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week", "semanal":
		return Weekly
	case "monthly", "month", "mensual":
		return Monthly
	default:
		return General
	}
}

// Range is an inclusive [From, To] interval.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r Range) Includes(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Resolve computes the range of p relative to now, using now's location for day boundaries.
func Resolve(p Period, now time.Time) Range {
	to := EndOfDay(now)
	switch p {
	case Weekly:
		return Range{From: StartOfDay(now.AddDate(0, 0, -7)), To: to}
	case Monthly:
		return Range{From: StartOfDay(now.AddDate(0, -1, 0)), To: to}
	default:
		return Range{From: time.Unix(0, 0).In(now.Location()), To: to}
	}
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Query is the period selection of a request: a symbolic period optionally
// overridden by explicit bounds.
type Query struct {
	Period string `query:"period" json:"period"`
	From   string `query:"from" json:"from"`
	To     string `query:"to" json:"to"`
}

func (q Query) Normalized() Period {
	return Normalize(q.Period)
}

// HasExplicitBounds reports whether From or To is set.
func (q Query) HasExplicitBounds() bool {
	return strings.TrimSpace(q.From) != "" || strings.TrimSpace(q.To) != ""
}

// Resolve returns the explicit bounds when present, falling back to the symbolic
// period. A missing lower bound is the epoch; a missing upper bound is the end of today.
func (q Query) Resolve(now time.Time) (Range, error) {
	if !q.HasExplicitBounds() {
		return Resolve(q.Normalized(), now), nil
	}

	rng := Resolve(General, now)
	if s := strings.TrimSpace(q.From); s != "" {
		from, err := parseBound(s, now.Location(), StartOfDay)
		if err != nil {
			return Range{}, err
		}
		rng.From = from
	}
	if s := strings.TrimSpace(q.To); s != "" {
		to, err := parseBound(s, now.Location(), EndOfDay)
		if err != nil {
			return Range{}, err
		}
		rng.To = to
	}

	if rng.From.After(rng.To) {
		return Range{}, ErrInvertedRange
	}
	return rng, nil
}

// parseBound accepts either a calendar date, which is clamped with clamp, or an RFC 3339 instant.
func parseBound(s string, loc *time.Location, clamp func(time.Time) time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return clamp(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidDateFormat, "%q", s)
	}
	return t.In(loc), nil
}
