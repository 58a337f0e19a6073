package event

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 layout used in the log: UTC, second precision, no zone suffix.
const TimestampLayout = "2006-01-02T15:04:05"

// MarshalLine renders e as one log line without the trailing newline,
// e.g. "2024-03-04T09:00:00_I".
func MarshalLine(e Event) string {
	return e.Timestamp.UTC().Format(TimestampLayout) + "_" + e.Kind.Marker()
}

// ParseLine parses one log line as produced by MarshalLine.
// A trailing "Z" on the timestamp is accepted.
func ParseLine(line string) (Event, error) {
	line = strings.TrimRight(line, "\r\n")
	idx := strings.LastIndexByte(line, '_')
	if idx < 0 {
		return Event{}, fmt.Errorf("malformed record %q: missing kind separator", line)
	}

	ts, err := ParseTimestamp(line[:idx])
	if err != nil {
		return Event{}, fmt.Errorf("malformed record %q: %w", line, err)
	}

	kind, err := KindFromMarker(line[idx+1:])
	if err != nil {
		return Event{}, fmt.Errorf("malformed record %q: %w", line, err)
	}

	return Event{Timestamp: ts, Kind: kind}, nil
}

// ParseTimestamp parses a log timestamp as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSuffix(s, "Z")
	ts, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return ts, nil
}
