package export

import "time"

// dateLayouts are the ISO-8601 shapes accepted by FormatDate, most specific
// first. A trailing Z is treated as a UTC offset by the RFC 3339 layouts.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// dateDisplayLen is the length of a YYYY-MM-DD date.
const dateDisplayLen = len("2006-01-02")

// FormatDate renders an ISO-8601 timestamp as YYYY-MM-DD in the timestamp's
// own offset. Unparseable values, including ones with surrounding
// whitespace, fall back to their first 10 characters.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.DateOnly)
		}
	}

	return firstRunes(raw, dateDisplayLen)
}
