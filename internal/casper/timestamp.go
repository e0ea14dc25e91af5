package casper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a moment in time with millisecond precision, stored as
// milliseconds since the Unix epoch. The node renders timestamps as
// RFC3339 with exactly three fractional digits, UTC.
type Timestamp uint64

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Now returns the current time truncated to millisecond precision.
func Now() Timestamp {
	return Timestamp(time.Now().UnixMilli())
}

// ParseTimestamp accepts an RFC3339 timestamp with or without fractional
// seconds, e.g. "2020-11-17T00:39:24.072Z" or "2018-02-16T00:31:37Z".
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp(t.UnixMilli()), nil
}

// Time converts the timestamp to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

func (t Timestamp) String() string {
	return t.Time().Format(timestampLayout)
}

// WriteTo appends the timestamp as a little-endian u64 of milliseconds.
func (t Timestamp) WriteTo(e *Encoder) {
	e.U64(uint64(t))
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimeDiff is a duration with millisecond precision, stored as
// milliseconds. The node renders durations in a human-readable unit form
// such as "30m", "10s" or "1h 30m".
type TimeDiff uint64

var timeDiffUnits = []struct {
	name   string
	millis uint64
}{
	{"day", 24 * 60 * 60 * 1000},
	{"d", 24 * 60 * 60 * 1000},
	{"hour", 60 * 60 * 1000},
	{"hr", 60 * 60 * 1000},
	{"h", 60 * 60 * 1000},
	{"min", 60 * 1000},
	{"m", 60 * 1000},
	{"sec", 1000},
	{"s", 1000},
	{"ms", 1},
}

// ParseTimeDiff parses a duration string composed of decimal values with
// unit suffixes, optionally space-separated: "10s", "30min", "1h 12m",
// "1day". Units: day/d, hour/hr/h, min/m, sec/s, ms.
func ParseTimeDiff(s string) (TimeDiff, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if compact == "" {
		return 0, fmt.Errorf("empty duration")
	}

	var total uint64
	rest := compact
	for rest != "" {
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("parse duration %q: expected a number at %q", s, rest)
		}
		value, err := strconv.ParseUint(rest[:i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse duration %q: %w", s, err)
		}

		unitPart := rest[i:]
		matched := false
		for _, unit := range timeDiffUnits {
			if strings.HasPrefix(unitPart, unit.name) {
				// "m" must not swallow the prefix of "ms".
				if unit.name == "m" && strings.HasPrefix(unitPart, "ms") {
					continue
				}
				total += value * unit.millis
				rest = unitPart[len(unit.name):]
				// Skip a trailing plural 's' on word units ("days", "hours", "mins").
				if len(unit.name) > 1 && strings.HasPrefix(rest, "s") {
					rest = rest[1:]
				}
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("parse duration %q: unknown unit in %q", s, unitPart)
		}
	}

	return TimeDiff(total), nil
}

func (d TimeDiff) String() string {
	if d == 0 {
		return "0s"
	}

	remaining := uint64(d)
	var parts []string
	for _, unit := range []struct {
		name   string
		millis uint64
	}{
		{"day", 24 * 60 * 60 * 1000},
		{"h", 60 * 60 * 1000},
		{"m", 60 * 1000},
		{"s", 1000},
		{"ms", 1},
	} {
		if remaining < unit.millis {
			continue
		}
		n := remaining / unit.millis
		remaining -= n * unit.millis
		suffix := unit.name
		if unit.name == "day" && n > 1 {
			suffix = "days"
		}
		parts = append(parts, strconv.FormatUint(n, 10)+suffix)
	}

	return strings.Join(parts, " ")
}

// Duration converts the TimeDiff to a time.Duration.
func (d TimeDiff) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// WriteTo appends the duration as a little-endian u64 of milliseconds.
func (d TimeDiff) WriteTo(e *Encoder) {
	e.U64(uint64(d))
}

func (d TimeDiff) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *TimeDiff) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeDiff(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
