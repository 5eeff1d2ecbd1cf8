package types

import (
	"time"

	ierr "github.com/featurekit/featurekit/internal/errors"
)

// TimestampLayout is the wire format for the date half of a rehydrated
// timestamp pair, second precision in the named zone.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	timestampDateKey     = "date"
	timestampTimezoneKey = "timezone"
)

// ParseTimestamp normalizes the timestamp representations found in feature
// detail bags: a time.Time as-is, an RFC 3339 string, or the persistence
// boundary's {date, timezone} pair.
func ParseTimestamp(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, ierr.NewError("nil timestamp").
				WithHint("Timestamp value is nil").
				Mark(ierr.ErrValidation)
		}
		return *t, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, ierr.WithError(err).
				WithHintf("Timestamp string %q is not RFC 3339", t).
				Mark(ierr.ErrValidation)
		}
		return parsed, nil
	case map[string]any:
		date, _ := t[timestampDateKey].(string)
		tz, _ := t[timestampTimezoneKey].(string)
		if date == "" {
			return time.Time{}, ierr.NewError("missing date in timestamp pair").
				WithHint("Expected a {date, timezone} pair").
				Mark(ierr.ErrValidation)
		}
		loc := time.UTC
		if tz != "" {
			var err error
			loc, err = time.LoadLocation(tz)
			if err != nil {
				return time.Time{}, ierr.WithError(err).
					WithHintf("Unknown timezone %q in timestamp pair", tz).
					Mark(ierr.ErrValidation)
			}
		}
		parsed, err := time.ParseInLocation(TimestampLayout, date, loc)
		if err != nil {
			return time.Time{}, ierr.WithError(err).
				WithHintf("Date %q does not match layout %q", date, TimestampLayout).
				Mark(ierr.ErrValidation)
		}
		return parsed, nil
	default:
		return time.Time{}, ierr.NewError("unsupported timestamp representation").
			WithHintf("Cannot rehydrate a timestamp from %T", v).
			Mark(ierr.ErrValidation)
	}
}

// FormatTimestamp emits the {date, timezone} pair ParseTimestamp accepts.
// Round-trips are lossless to the second.
func FormatTimestamp(t time.Time) map[string]any {
	return map[string]any{
		timestampDateKey:     t.Format(TimestampLayout),
		timestampTimezoneKey: t.Location().String(),
	}
}
