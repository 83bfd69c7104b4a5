// Package logsheet renders a trip as a paper-style driver daily log PDF.
package logsheet

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"tripapi/internal/model"
)

const ContentType = "application/pdf"

// Filename is the attachment name of a trip's log sheet.
func Filename(tripID int64) string {
	return fmt.Sprintf("logsheet_trip_%d.pdf", tripID)
}

// Renderer draws log sheets. It holds no per-call state and is safe for concurrent use.
type Renderer struct {
	layout       Layout
	templatePath string
	loc          *time.Location
	now          func() time.Time
	compress     bool
}

// NewRenderer creates a renderer. templatePath is an optional PNG/JPEG drawn as the
// page background; without it an empty grid is drawn. Times are shown in loc.
func NewRenderer(layout Layout, templatePath string, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{
		layout:       layout,
		templatePath: templatePath,
		loc:          loc,
		now:          time.Now,
		compress:     true,
	}
}

// Render produces the PDF for trip, including its stops and statuses.
func (r *Renderer) Render(trip *model.Trip) ([]byte, error) {
	l := r.layout
	now := r.now().In(r.loc)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		OrientationStr: "P",
		Size:           gofpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetTitle(fmt.Sprintf("Driver log sheet - trip %d", trip.ID), false)
	pdf.SetCreationDate(now)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.compress)
	pdf.AddPage()

	// Core fonts are cp1252; addresses arrive as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if r.templatePath != "" {
		pdf.ImageOptions(r.templatePath, 0, 0, l.PageWidth, l.PageHeight, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	} else {
		r.drawGrid(pdf)
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(l.Date.X, l.Date.Y, fmt.Sprintf("%d      %d                %d", int(now.Month()), now.Day(), now.Year()))
	pdf.Text(l.Cycle.X, l.Cycle.Y, formatHours(trip.CurrentCycleUsed))
	pdf.Text(l.Distance.X, l.Distance.Y, fmt.Sprintf("%.2f miles", trip.TotalDistanceMiles))
	r.wrapText(pdf, tr(safe(trip.CurrentLocationAddress)), l.CurrentAddress)
	r.wrapText(pdf, tr("Pickup location: "+safe(trip.PickupAddress)), l.PickupAddress)
	r.wrapText(pdf, tr(safe(trip.DropoffAddress)), l.DropoffAddress)

	r.drawTimeline(pdf, tr, trip.Statuses)

	pdf.SetFont("Helvetica", "", 8)
	y := l.Stops.Y
	for _, s := range trip.Stops {
		pdf.Text(l.Stops.X, y, tr(fmt.Sprintf("%s at %d min", s.Type, s.DurationMinutes)))
		y += l.Stops.Step
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render log sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapText draws text that is already cp1252 encoded, so widths are measured on the drawn bytes.
func (r *Renderer) wrapText(pdf *gofpdf.Fpdf, text string, at Point) {
	for i, line := range wrapLines(pdf.GetStringWidth, text, r.layout.WrapWidth) {
		pdf.Text(at.X, at.Y+float64(i)*r.layout.LineSpacing, line)
	}
}

func (r *Renderer) drawTimeline(pdf *gofpdf.Fpdf, tr func(string) string, statuses []model.TripStatus) {
	ordered := make([]model.TripStatus, len(statuses))
	copy(ordered, statuses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartTime.Before(ordered[j].StartTime)
	})

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(255, 0, 0)
	pdf.SetLineWidth(2)
	pdf.SetFont("Helvetica", "", 8)

	for _, s := range ordered {
		if s.StartTime.IsZero() || s.EndTime.IsZero() {
			continue
		}
		y, ok := r.layout.Timeline.Rows[s.Status]
		if !ok {
			continue
		}
		startX, endX := r.span(s.StartTime, s.EndTime)

		pdf.Line(startX, y, endX, y)
		pdf.Circle(startX, y, 3, "FD")
		pdf.Circle(endX, y, 3, "FD")
		pdf.Text(startX+5, y+8, tr(string(s.Status)))
	}
}

// span maps an interval onto the grid. An interval ending on a later day runs to midnight.
func (r *Renderer) span(start, end time.Time) (float64, float64) {
	start, end = start.In(r.loc), end.In(r.loc)
	startX := r.timeX(start)

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if ey != sy || em != sm || ed != sd {
		if end.After(start) {
			return startX, r.layout.Timeline.OriginX + 24*r.layout.Timeline.HourWidth
		}
	}
	return startX, r.timeX(end)
}

func (r *Renderer) timeX(t time.Time) float64 {
	hours := float64(t.Hour()) + float64(t.Minute())/60
	return r.layout.Timeline.OriginX + hours*r.layout.Timeline.HourWidth
}

// drawGrid sketches the 24-hour duty grid when no template image is configured.
func (r *Renderer) drawGrid(pdf *gofpdf.Fpdf) {
	tl := r.layout.Timeline
	if len(tl.Rows) == 0 {
		return
	}

	ys := make([]float64, 0, len(tl.Rows))
	for _, y := range tl.Rows {
		ys = append(ys, y)
	}
	sort.Float64s(ys)
	top, bottom := ys[0]-15, ys[len(ys)-1]+15
	right := tl.OriginX + 24*tl.HourWidth

	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.5)
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(90, 90, 90)

	for h := 0; h <= 24; h++ {
		x := tl.OriginX + float64(h)*tl.HourWidth
		pdf.Line(x, top, x, bottom)
		if h < 24 {
			pdf.Text(x+2, top-3, strconv.Itoa(h))
		}
	}
	pdf.Line(tl.OriginX, top, right, top)
	pdf.Line(tl.OriginX, bottom, right, bottom)

	for status, y := range tl.Rows {
		pdf.Line(tl.OriginX, y, right, y)
		pdf.Text(4, y+2, string(status))
	}
}

// wrapLines breaks text into lines no wider than maxWidth. A single word wider
// than maxWidth is kept on its own line.
func wrapLines(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}
		if current == "" || measure(candidate) < maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}

// formatHours prints whole hours with one decimal ("8.0") and keeps fractions as given.
func formatHours(h float64) string {
	if h == float64(int64(h)) {
		return strconv.FormatFloat(h, 'f', 1, 64)
	}
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func safe(v *string) string {
	if v == nil {
		return "-"
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "-"
	}
	return s
}
