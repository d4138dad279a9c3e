package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	timeSecondsLayout = "2006-01-02 15:04:05"
	timeMicrosLayout  = "2006-01-02 15:04:05.000000"
)

// ZeroTimeText is how an unset (zero) timestamp is rendered. Encode
// accepts the same literal back and packs a zero, so non-display
// decode output always round-trips.
const ZeroTimeText = "time not set (0)"

func formatTimeMicros(micros int64, display bool) string {
	if micros == 0 {
		return ZeroTimeText
	}
	out := time.Unix(micros/1e6, (micros%1e6)*1000).UTC().Format(timeMicrosLayout)
	if display {
		out += fmt.Sprintf(" (%d)", micros)
	}
	return out
}

func formatTimeSeconds(seconds uint64, display bool) string {
	if seconds == 0 {
		return ZeroTimeText
	}
	out := time.Unix(int64(seconds), 0).UTC().Format(timeSecondsLayout)
	if display {
		out += fmt.Sprintf(" (%d)", seconds)
	}
	return out
}

// parseTimestamp validates the canonical shape by hand rather than
// with time.Parse: the date must split on "-" into exactly three
// fields and the clock on ":" into exactly three. A fractional part
// is only allowed when the target type carries microseconds. The
// result is always in UTC microseconds.
func parseTimestamp(text string, allowFraction bool) (int64, error) {
	text = strings.TrimSpace(text)
	if text == ZeroTimeText {
		return 0, nil
	}
	parts := strings.Split(text, " ")
	if len(parts) != 2 {
		return 0, errors.Wrapf(ErrMalformedTimestamp,
			"expected date and time, got %d field(s)", len(parts))
	}
	dateParts := strings.Split(parts[0], "-")
	if len(dateParts) != 3 {
		return 0, errors.Wrapf(ErrMalformedTimestamp, "bad date [%s]", parts[0])
	}
	clock := parts[1]
	frac := ""
	if i := strings.IndexByte(clock, '.'); i >= 0 {
		if !allowFraction {
			return 0, errors.Wrapf(ErrMalformedTimestamp,
				"fractional seconds not allowed [%s]", clock)
		}
		clock, frac = clock[:i], clock[i+1:]
	}
	clockParts := strings.Split(clock, ":")
	if len(clockParts) != 3 {
		return 0, errors.Wrapf(ErrMalformedTimestamp, "bad time [%s]", parts[1])
	}

	fields := make([]int, 6)
	names := []string{"year", "month", "day", "hour", "minute", "second"}
	for i, raw := range append(dateParts, clockParts...) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedTimestamp, "bad %s [%s]", names[i], raw)
		}
		fields[i] = v
	}

	micros := 0
	if frac != "" {
		if len(frac) > 6 {
			return 0, errors.Wrapf(ErrMalformedTimestamp, "bad fraction [%s]", frac)
		}
		v, err := strconv.Atoi(frac)
		if err != nil || v < 0 {
			return 0, errors.Wrapf(ErrMalformedTimestamp, "bad fraction [%s]", frac)
		}
		for i := len(frac); i < 6; i++ {
			v *= 10
		}
		micros = v
	}

	when := time.Date(
		fields[0], time.Month(fields[1]), fields[2],
		fields[3], fields[4], fields[5],
		micros*1000, time.UTC)
	return when.Unix()*1e6 + int64(micros), nil
}

// splitTimestampPrefix consumes a timestamp from the front of
// composite text, returning its microsecond value and whatever
// follows the separating space. The zero-time sentinel is matched
// before any token splitting because it contains spaces itself.
func splitTimestampPrefix(text string) (int64, string, error) {
	if strings.HasPrefix(text, ZeroTimeText) {
		rest := strings.TrimPrefix(text, ZeroTimeText)
		if rest == "" {
			return 0, "", nil
		}
		if rest[0] != ' ' {
			return 0, "", errors.Wrapf(ErrMalformedTimestamp, "bad timestamp [%s]", text)
		}
		return 0, rest[1:], nil
	}
	parts := strings.SplitN(text, " ", 3)
	if len(parts) < 2 {
		return 0, "", errors.Wrapf(ErrFieldCountMismatch,
			"expected timestamp and string, got %d field(s)", len(parts))
	}
	micros, err := parseTimestamp(parts[0]+" "+parts[1], true)
	if err != nil {
		return 0, "", err
	}
	rest := ""
	if len(parts) == 3 {
		rest = parts[2]
	}
	return micros, rest, nil
}
