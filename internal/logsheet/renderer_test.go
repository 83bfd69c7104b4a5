package logsheet

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripapi/internal/model"
)

func strPtr(s string) *string { return &s }

func sampleTrip() *model.Trip {
	start := time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC)
	return &model.Trip{
		ID:                     42,
		CurrentLocationAddress: strPtr("Chicago, IL"),
		PickupAddress:          strPtr("St. Louis, MO, a rather long warehouse address that needs wrapping across lines"),
		DropoffAddress:         nil,
		CurrentCycleUsed:       8,
		TotalDistanceMiles:     2013.456,
		Stops: []model.Stop{
			{Type: model.StopPickup, DurationMinutes: 60},
			{Type: model.StopFuel, DurationMinutes: 30},
			{Type: model.StopDropoff, DurationMinutes: 60},
		},
		Statuses: []model.TripStatus{
			{Status: model.StatusDriving, StartTime: start.Add(4 * time.Hour), EndTime: start.Add(6 * time.Hour)},
			{Status: model.StatusOffDuty, StartTime: start, EndTime: start.Add(4 * time.Hour)},
			{Status: model.StatusOnDuty},
			{Status: "UNKNOWN", StartTime: start, EndTime: start.Add(time.Hour)},
		},
	}
}

func newTestRenderer(templatePath string) *Renderer {
	r := NewRenderer(DefaultLayout(), templatePath, time.UTC)
	r.now = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) }
	return r
}

// renderPlain renders with stream compression off so drawn text can be inspected.
func renderPlain(t *testing.T, trip *model.Trip) string {
	t.Helper()
	r := newTestRenderer("")
	r.compress = false
	out, err := r.Render(trip)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	require.Contains(t, string(out), "%%EOF")
	return string(out)
}

func TestRender(t *testing.T) {
	out, err := newTestRenderer("").Render(sampleTrip())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "%%EOF")
}

func TestRender_Content(t *testing.T) {
	out := renderPlain(t, sampleTrip())

	t.Run("header", func(t *testing.T) {
		assert.Contains(t, out, "(3      14                2025) Tj")
		assert.Contains(t, out, "(8.0) Tj")
		assert.Contains(t, out, "(2013.46 miles) Tj")
	})

	t.Run("addresses", func(t *testing.T) {
		assert.Contains(t, out, "(Chicago, IL) Tj")
		assert.Contains(t, out, "(Pickup location: St.")
		assert.Contains(t, out, "(-) Tj", "missing dropoff address prints a dash")
	})

	t.Run("status labels sit on their rows", func(t *testing.T) {
		// OFF_DUTY 08:30 on row 220, DRIVING 12:30 on row 260; the page is 600pt high.
		assert.Contains(t, out, "BT 323.00 372.00 Td (OFF_DUTY) Tj")
		assert.Contains(t, out, "BT 443.00 332.00 Td (DRIVING) Tj")
	})

	t.Run("unknown and zero-time statuses are skipped", func(t *testing.T) {
		assert.NotContains(t, out, "(UNKNOWN)")
		// Only the grid's row caption remains for ON_DUTY.
		assert.Equal(t, 1, strings.Count(out, "(ON_DUTY) Tj"))
		assert.Equal(t, 2, strings.Count(out, "(OFF_DUTY) Tj"))
	})

	t.Run("stops in sequence", func(t *testing.T) {
		pickup := strings.Index(out, "BT 150.00 290.00 Td (Pickup at 60 min) Tj")
		fuel := strings.Index(out, "BT 150.00 270.00 Td (Fuel at 30 min) Tj")
		dropoff := strings.Index(out, "BT 150.00 250.00 Td (Dropoff at 60 min) Tj")
		require.NotEqual(t, -1, pickup)
		require.NotEqual(t, -1, fuel)
		require.NotEqual(t, -1, dropoff)
		assert.Less(t, pickup, fuel)
		assert.Less(t, fuel, dropoff)
	})
}

func TestRender_NonASCIIAddress(t *testing.T) {
	trip := sampleTrip()
	trip.CurrentLocationAddress = strPtr("Zürich")
	trip.DropoffAddress = strPtr("Málaga, España")

	out := renderPlain(t, trip)

	assert.Contains(t, out, "(Z\xfcrich) Tj")
	assert.Contains(t, out, "(M\xe1laga, Espa\xf1a) Tj")
	assert.NotContains(t, out, "Zürich", "UTF-8 bytes must not reach the core font")
}

func TestRender_EmptyTrip(t *testing.T) {
	out := renderPlain(t, &model.Trip{ID: 1})

	assert.Contains(t, out, "(0.0) Tj")
	assert.Contains(t, out, "(0.00 miles) Tj")
	assert.Contains(t, out, "(Pickup location: -) Tj")
	assert.Equal(t, 2, strings.Count(out, "(-) Tj"))
	assert.NotContains(t, out, " min) Tj")
	assert.Equal(t, 1, strings.Count(out, "(DRIVING) Tj"))
}

func TestRender_MissingTemplate(t *testing.T) {
	_, err := newTestRenderer(filepath.Join(t.TempDir(), "missing.png")).Render(sampleTrip())
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "logsheet_trip_42.pdf", Filename(42))
}

func TestTimeX(t *testing.T) {
	r := newTestRenderer("")
	assert.Equal(t, 63.0, r.timeX(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 63.0+8.5*30, r.timeX(time.Date(2025, 1, 1, 8, 30, 0, 0, time.UTC)))
	assert.Equal(t, 63.0+23.75*30, r.timeX(time.Date(2025, 1, 1, 23, 45, 0, 0, time.UTC)))
}

func TestSpan(t *testing.T) {
	r := newTestRenderer("")

	start := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	startX, endX := r.span(start, start.Add(2*time.Hour))
	assert.Equal(t, 63.0+20*30, startX)
	assert.Equal(t, 63.0+22*30, endX)

	startX, endX = r.span(start, start.Add(6*time.Hour))
	assert.Equal(t, 63.0+20*30, startX)
	assert.Equal(t, 63.0+24*30, endX, "intervals past midnight stop at the end of the grid")
}

func TestSpan_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	r := NewRenderer(DefaultLayout(), "", loc)

	start := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)
	startX, endX := r.span(start, start.Add(time.Hour))
	assert.Equal(t, 63.0+10*30, startX)
	assert.Equal(t, 63.0+11*30, endX)
}

func TestWrapLines(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	tests := []struct {
		name string
		text string
		max  float64
		want []string
	}{
		{name: "fits", text: "Chicago, IL", max: 50, want: []string{"Chicago, IL"}},
		{name: "wraps", text: "aaa bbb ccc ddd", max: 8, want: []string{"aaa bbb", "ccc ddd"}},
		{name: "long word kept", text: "abcdefghijkl xy", max: 5, want: []string{"abcdefghijkl", "xy"}},
		{name: "collapses spaces", text: "  a   b  ", max: 10, want: []string{"a b"}},
		{name: "empty", text: "   ", max: 10, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapLines(measure, tt.text, tt.max))
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8.0", formatHours(8))
	assert.Equal(t, "0.0", formatHours(0))
	assert.Equal(t, "12.5", formatHours(12.5))
}

func TestSafe(t *testing.T) {
	assert.Equal(t, "-", safe(nil))
	assert.Equal(t, "-", safe(strPtr("  ")))
	assert.Equal(t, "Dallas, TX", safe(strPtr(" Dallas, TX ")))
}

func TestLoadLayout(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		l, err := LoadLayout("")
		require.NoError(t, err)
		assert.Equal(t, DefaultLayout(), l)
	})

	t.Run("partial override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		body := "date:\n  x: 300\n  y: 25\ntimeline:\n  hour_width: 28.5\n  rows:\n    SLEEPER: 290\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		l, err := LoadLayout(path)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 300, Y: 25}, l.Date)
		assert.Equal(t, 28.5, l.Timeline.HourWidth)
		assert.Equal(t, 63.0, l.Timeline.OriginX)
		assert.Equal(t, 290.0, l.Timeline.Rows[model.StatusSleeper])
		assert.Equal(t, 220.0, l.Timeline.Rows[model.StatusOffDuty])
		assert.Equal(t, 800.0, l.PageWidth)
	})

	t.Run("unknown status", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeline:\n  rows:\n    BREAK: 300\n"), 0o600))

		_, err := LoadLayout(path)
		assert.Error(t, err)
	})

	t.Run("invalid page size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("page_width: 0\n"), 0o600))

		_, err := LoadLayout(path)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("date: [1, 2"), 0o600))

		_, err := LoadLayout(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
