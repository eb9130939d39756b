package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadTimeOfDay is returned when a clock string is not a zero-padded
// 24-hour "HH:MM" value.
var ErrBadTimeOfDay = errors.New("time of day must be a zero-padded 24-hour HH:MM string")

// TimeOfDay is a clock time expressed as minutes since midnight.
// It is validated once at the boundary; all comparisons afterwards are
// plain integer comparisons.
type TimeOfDay int

// ParseTimeOfDay converts a strict "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrBadTimeOfDay
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrBadTimeOfDay
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, ErrBadTimeOfDay
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// Minutes returns the raw minutes-since-midnight value.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String formats the time back into "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// MarshalJSON encodes the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrBadTimeOfDay
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
