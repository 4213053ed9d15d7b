// Package timerange converts user-facing time specifications into
// validated second intervals over a known total duration.
package timerange

import (
	"fmt"
	"strconv"
	"strings"
)

type specKind int

const (
	kindSeconds specKind = iota
	kindMinutesSeconds
	kindPercentage
)

// Spec is a single time endpoint: absolute seconds, minutes:seconds, or a
// fraction of the total duration. Immutable once parsed.
type Spec struct {
	kind    specKind
	seconds float64
	minutes uint
	secs    uint
	percent float64 // normalized to [0,1]
}

// Seconds returns an absolute-seconds specification.
func Seconds(s float64) Spec {
	return Spec{kind: kindSeconds, seconds: s}
}

// MinutesSeconds returns a minutes:seconds specification.
func MinutesSeconds(m, s uint) Spec {
	return Spec{kind: kindMinutesSeconds, minutes: m, secs: s}
}

// Percentage returns a fraction-of-duration specification, p in [0,1].
func Percentage(p float64) Spec {
	return Spec{kind: kindPercentage, percent: p}
}

func (s Spec) toSeconds(totalDuration float64) float64 {
	switch s.kind {
	case kindMinutesSeconds:
		return float64(s.minutes)*60 + float64(s.secs)
	case kindPercentage:
		return s.percent * totalDuration
	default:
		return s.seconds
	}
}

// ParseSpec parses a textual time specification. A trailing '%' selects a
// percentage in [0,100]; a ':' selects MM:SS with seconds < 60; anything
// else is absolute seconds >= 0. The first matching form wins in that
// order.
func ParseSpec(s string) (Spec, error) {
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid percentage %q", s)
		}
		if p < 0 || p > 100 {
			return Spec{}, fmt.Errorf("percentage must be between 0 and 100: %v", p)
		}
		return Percentage(p / 100), nil
	}
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return Spec{}, fmt.Errorf("invalid time %q (use MM:SS)", s)
		}
		m, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid minutes %q", parts[0])
		}
		sec, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid seconds %q", parts[1])
		}
		if sec >= 60 {
			return Spec{}, fmt.Errorf("seconds must be less than 60: %d", sec)
		}
		return MinutesSeconds(uint(m), uint(sec)), nil
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("invalid seconds %q", s)
	}
	if sec < 0 {
		return Spec{}, fmt.Errorf("seconds must be positive: %v", sec)
	}
	return Seconds(sec), nil
}

// Range is a start/end pair of time specifications.
type Range struct {
	Start Spec
	End   Spec
}

// NewRange combines optional endpoints into a range. With neither endpoint
// it returns nil and the caller uses the full duration; a missing end
// defaults to 100% and a missing start to zero seconds.
func NewRange(start, end *Spec) *Range {
	if start == nil && end == nil {
		return nil
	}
	r := &Range{Start: Seconds(0), End: Percentage(1)}
	if start != nil {
		r.Start = *start
	}
	if end != nil {
		r.End = *end
	}
	return r
}

// Resolve converts the range endpoints against totalDuration and validates
// the resulting interval. Failures are distinct sentinels wrapped with the
// offending values; there is never a silent clamp.
func (r *Range) Resolve(totalDuration float64) (start, end float64, err error) {
	start = r.Start.toSeconds(totalDuration)
	end = r.End.toSeconds(totalDuration)

	if start < 0 {
		return 0, 0, fmt.Errorf("%w: %v", ErrNegativeStart, start)
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: %v >= %v", ErrStartNotBeforeEnd, start, end)
	}
	if end > totalDuration {
		return 0, 0, fmt.Errorf("%w: %v > %v", ErrEndBeyondDuration, end, totalDuration)
	}
	return start, end, nil
}
