package site

import (
	"time"

	"github.com/freekieb7/pebble/http"
)

// DatetimeLayout renders an instant as ISO-8601 UTC with millisecond
// precision, e.g. 2026-01-28T12:00:00.000Z.
const DatetimeLayout = "2006-01-02T15:04:05.000Z"

type timePayload struct {
	Datetime  string `json:"datetime"`
	Timestamp int64  `json:"timestamp"`
}

// Time reports the current wall-clock instant. Both fields derive
// from one clock sample, so they agree to the millisecond.
func Time(req *http.Request) (*http.Response, error) {
	now := time.Now().UTC()

	return http.JSON(200, timePayload{
		Datetime:  now.Format(DatetimeLayout),
		Timestamp: now.UnixMilli(),
	})
}
