// Package timeranges turns relative ("now-24h") and absolute (ISO-8601) time
// expressions into epoch millisecond ranges. Nothing here reads the clock; the
// caller always supplies "now".
package timeranges

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"log-baseline/internal/models"
)

const nowToken = "now"

var unitMillis = map[byte]int64{
	's': int64(time.Second / time.Millisecond),
	'm': int64(time.Minute / time.Millisecond),
	'h': int64(time.Hour / time.Millisecond),
	'd': int64(24 * time.Hour / time.Millisecond),
	'w': int64(7 * 24 * time.Hour / time.Millisecond),
}

var absoluteLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	models.DateLayout,
}

// Resolve returns the absolute epoch milliseconds for expr.
//
// Accepted forms are "now", "now-<N><unit>" with unit one of s, m, h, d, w,
// and ISO-8601 timestamps for anything not starting with "now".
func Resolve(expr string, nowMs int64) (int64, error) {
	if !strings.HasPrefix(expr, nowToken) {
		return resolveAbsolute(expr)
	}

	rest := expr[len(nowToken):]
	if rest == "" {
		return nowMs, nil
	}
	if rest[0] != '-' || len(rest) < 3 {
		return 0, errMalformedExpression(expr, nil)
	}

	amount, unit := rest[1:len(rest)-1], rest[len(rest)-1]
	multiplier, ok := unitMillis[unit]
	if !ok {
		return 0, errMalformedExpression(expr, fmt.Errorf("unknown unit %q", unit))
	}
	if !isDigits(amount) {
		return 0, errMalformedExpression(expr, nil)
	}

	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return 0, errMalformedExpression(expr, err)
	}
	if n > math.MaxInt64/multiplier {
		return 0, errMalformedExpression(expr, fmt.Errorf("offset overflows"))
	}

	offset := n * multiplier
	if nowMs < math.MinInt64+offset {
		return 0, errMalformedExpression(expr, fmt.Errorf("offset overflows"))
	}
	return nowMs - offset, nil
}

// ResolveRange resolves both ends and rejects ranges whose start is after the end.
func ResolveRange(from, to string, nowMs int64) (models.TimeRange, error) {
	startMs, err := Resolve(from, nowMs)
	if err != nil {
		return models.TimeRange{}, err
	}
	endMs, err := Resolve(to, nowMs)
	if err != nil {
		return models.TimeRange{}, err
	}

	r, err := models.NewTimeRange(startMs, endMs)
	if err != nil {
		return models.TimeRange{}, errInvalidRange(from, to, err)
	}
	return r, nil
}

// Last returns the range covering the d leading up to now.
func Last(d time.Duration, now time.Time) models.TimeRange {
	if d < 0 {
		d = 0
	}
	end := now.UnixMilli()
	return models.TimeRange{StartMs: end - d.Milliseconds(), EndMs: end}
}

// ParseLookback parses a lookback length such as "6h", "90m" or "2d".
// Go duration syntax is accepted plus a "d" suffix for whole days.
func ParseLookback(s string) (time.Duration, error) {
	if s == "" {
		return 0, errMalformedExpression(s, fmt.Errorf("lookback must not be empty"))
	}

	if s[len(s)-1] == 'd' && isDigits(s[:len(s)-1]) {
		days, err := strconv.Atoi(s[:len(s)-1])
		if err != nil {
			return 0, errMalformedExpression(s, err)
		}
		if days <= 0 {
			return 0, errMalformedExpression(s, fmt.Errorf("lookback must be positive"))
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errMalformedExpression(s, err)
	}
	if d <= 0 {
		return 0, errMalformedExpression(s, fmt.Errorf("lookback must be positive"))
	}
	return d, nil
}

func resolveAbsolute(expr string) (int64, error) {
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, expr); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, errMalformedExpression(expr, nil)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
