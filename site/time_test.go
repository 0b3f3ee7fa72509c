package site

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/freekieb7/pebble/http"
)

func TestTime(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Millisecond)

	res, err := Time(&http.Request{Method: "GET", Path: "/api/time"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := time.Now().UTC()

	if res.Status != 200 {
		t.Errorf("expected 200, got %d", res.Status)
	}
	if res.ContentType != "application/json" {
		t.Errorf("unexpected content type: %q", res.ContentType)
	}

	// The body must carry exactly the two documented keys.
	var keys map[string]any
	if err := json.Unmarshal(res.Body, &keys); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("expected exactly datetime and timestamp, got %v", keys)
	}

	var payload struct {
		Datetime  string `json:"datetime"`
		Timestamp int64  `json:"timestamp"`
	}
	if err := json.Unmarshal(res.Body, &payload); err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(payload.Datetime, "Z") {
		t.Errorf("datetime must carry the UTC suffix: %q", payload.Datetime)
	}

	parsed, err := time.Parse(DatetimeLayout, payload.Datetime)
	if err != nil {
		t.Fatalf("datetime does not parse: %v", err)
	}

	// Both fields come from one clock sample.
	if parsed.UnixMilli() != payload.Timestamp {
		t.Errorf("datetime %q and timestamp %d disagree", payload.Datetime, payload.Timestamp)
	}

	if payload.Timestamp < before.UnixMilli() || payload.Timestamp > after.UnixMilli() {
		t.Errorf("timestamp %d outside the sampled window [%d, %d]",
			payload.Timestamp, before.UnixMilli(), after.UnixMilli())
	}
}
