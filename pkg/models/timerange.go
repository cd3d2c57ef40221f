package models

import (
	"fmt"
	"time"
)

// TimeWindow bounds a discovery query.
type TimeWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Relative presets resolved against wall-clock time at execution.
var timeRangePresets = map[string]time.Duration{
	"hour":  time.Hour,
	"day":   24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour,
}

// Accepted date layouts for explicit windows and payload dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ResolveTimeWindow computes the discovery window from a node config. It
// accepts either a relative preset (config["time_range"] = "hour"|"day"|
// "week"|"month") or an explicit pair (config["time_range"] = {"from_date":
// ..., "to_date": ...}). A missing time_range yields a nil window.
func ResolveTimeWindow(config map[string]any, now time.Time) (*TimeWindow, error) {
	raw, ok := config["time_range"]
	if !ok || raw == nil {
		return nil, nil
	}

	switch tr := raw.(type) {
	case string:
		d, ok := timeRangePresets[tr]
		if !ok {
			return nil, fmt.Errorf("unknown time range preset %q", tr)
		}

		return &TimeWindow{From: now.Add(-d), To: now}, nil
	case map[string]any:
		fromRaw, _ := tr["from_date"].(string)
		toRaw, _ := tr["to_date"].(string)

		from, err := ParseDate(fromRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid from_date: %w", err)
		}

		to, err := ParseDate(toRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid to_date: %w", err)
		}

		return &TimeWindow{From: from, To: to}, nil
	default:
		return nil, fmt.Errorf("unsupported time_range type %T", raw)
	}
}

// ParseDate parses an RFC 3339 timestamp or a plain yyyy-mm-dd date.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparsable date %q", value)
}
