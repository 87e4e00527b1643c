package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a time of day with second precision, such as a check-in time.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

var clockLayouts = []string{"15:04:05", "15:04"}

// ParseClockTime accepts "HH:MM:SS" or "HH:MM". Fractional seconds are
// rejected because ClockTime cannot hold them.
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil && t.Nanosecond() == 0 {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("invalid time of day %q", s)
}

// ClockTimeOf builds a ClockTime from a duration since midnight.
func ClockTimeOf(sinceMidnight time.Duration) ClockTime {
	secs := int(sinceMidnight / time.Second)
	return ClockTime{Hour: secs / 3600, Minute: secs % 3600 / 60, Second: secs % 60}
}

// SinceMidnight returns the offset from 00:00:00.
func (c ClockTime) SinceMidnight() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute + time.Duration(c.Second)*time.Second
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time of day must be a string: %w", err)
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
