package jsonous

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// permissiveDateLayouts covers the common calendar and timestamp shapes Date
// is expected to accept.
var permissiveDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.ANSIC,
}

// isoDateLayouts are the shapes DateISO accepts: a calendar date or a
// timestamp, with or without a zone offset. time.Parse rejects impossible
// calendar dates, so a well-formed string naming Feb 30 still fails.
var isoDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// jsonDateLayouts are the shapes DateJSON accepts: full timestamps with or
// without fractional seconds. Bare dates without a time component are
// deliberately absent.
var jsonDateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

func parseWith(layouts []string, s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date accepts a string in any common date shape, or a number interpreted as
// milliseconds since the Unix epoch.
var Date = New(func(v any) (time.Time, error) {
	switch d := v.(type) {
	case string:
		if t, ok := parseWith(permissiveDateLayouts, d); ok {
			return t, nil
		}
	case float64:
		if !math.IsNaN(d) && !math.IsInf(d, 0) {
			return time.UnixMilli(int64(d)).UTC(), nil
		}
	case int:
		return time.UnixMilli(int64(d)).UTC(), nil
	case int64:
		return time.UnixMilli(d).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("I expected a date but instead I found %s", SafeStringify(v))
})

// DateISO accepts only strings holding a valid ISO 8601 date or timestamp.
var DateISO = New(func(v any) (time.Time, error) {
	if s, ok := v.(string); ok {
		if t, ok := parseWith(isoDateLayouts, s); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("I expected an ISO date but instead I found %s", SafeStringify(v))
})

// DateJSON accepts only strings holding a full timestamp, with or without
// fractional seconds. Bare dates ("2019-01-01") are rejected.
var DateJSON = New(func(v any) (time.Time, error) {
	if s, ok := v.(string); ok {
		if t, ok := parseWith(jsonDateLayouts, s); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("I expected a JSON date but instead I found %s", SafeStringify(v))
})

// UUID accepts a string holding an RFC 4122 UUID.
var UUID = New(func(v any) (uuid.UUID, error) {
	if s, ok := v.(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("I expected to find a UUID but instead I found %s", SafeStringify(v))
})

// Regex accepts a string matching pattern. The full submatch slice is
// returned, not just the matched text, so capture groups stay accessible.
func Regex(pattern *regexp.Regexp) Decoder[[]string] {
	return New(func(v any) ([]string, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("I expected a string matching /%s/ but instead I found %s", pattern, SafeStringify(v))
		}
		match := pattern.FindStringSubmatch(s)
		if match == nil {
			return nil, fmt.Errorf("I expected a string matching /%s/ but instead I found %s", pattern, SafeStringify(v))
		}
		return match, nil
	})
}
