package report

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"secad-service/internal/stats"
)

// ChartColors is the slice palette used by the categorical charts.
var ChartColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#EC4899", "#06B6D4", "#84CC16", "#F97316", "#6366F1",
}

// Datapoint is one labeled slice/bar of a categorical chart.
type Datapoint struct {
	Label string
	Value float64
}

// chartLabel renders "N (P%)" where the percentage denominator is this
// chart's own dataset total, not the overall filtered-set total.
func chartLabel(label string, value, total float64) string {
	pct := 0.0
	if total > 0 {
		pct = value * 100 / total
	}
	return fmt.Sprintf("%s: %.0f (%.1f%%)", label, value, pct)
}

// RenderPie writes a pie chart PNG for one grouping dimension. Zero-count
// categories are omitted; an all-zero dataset is an error rather than a
// blank image.
func RenderPie(w io.Writer, title string, points []Datapoint) error {
	var total float64
	for _, p := range points {
		total += p.Value
	}
	if total <= 0 {
		return fmt.Errorf("chart %q has no data", title)
	}

	values := make([]chart.Value, 0, len(points))
	for i, p := range points {
		if p.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: chartLabel(p.Label, p.Value, total),
			Value: p.Value,
			Style: chart.Style{FillColor: drawing.ColorFromHex(ChartColors[i%len(ChartColors)][1:])},
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 600,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pie chart %q: %w", title, err)
	}
	return nil
}

// RenderBar writes a bar chart PNG for one grouping dimension.
func RenderBar(w io.Writer, title string, points []Datapoint) error {
	var total float64
	for _, p := range points {
		total += p.Value
	}
	if total <= 0 {
		return fmt.Errorf("chart %q has no data", title)
	}

	bars := make([]chart.Value, 0, len(points))
	for i, p := range points {
		if p.Value <= 0 {
			continue
		}
		bars = append(bars, chart.Value{
			Label: chartLabel(p.Label, p.Value, total),
			Value: p.Value,
			Style: chart.Style{FillColor: drawing.ColorFromHex(ChartColors[i%len(ChartColors)][1:])},
		})
	}

	bar := chart.BarChart{
		Title:    title,
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Bars:     bars,
	}
	if err := bar.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart %q: %w", title, err)
	}
	return nil
}

// SectorPoints adapts the by-sector buckets into chart datapoints.
func SectorPoints(buckets []stats.ValueBucket) []Datapoint {
	out := make([]Datapoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Datapoint{Label: b.Key, Value: float64(b.Count)})
	}
	return out
}

// CountPoints adapts plain count buckets into chart datapoints.
func CountPoints(buckets []stats.Count) []Datapoint {
	out := make([]Datapoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Datapoint{Label: b.Key, Value: float64(b.Count)})
	}
	return out
}

// SplitPoints adapts release-split buckets into chart datapoints (totals).
func SplitPoints(buckets []stats.ReleaseSplit) []Datapoint {
	out := make([]Datapoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Datapoint{Label: b.Key, Value: float64(b.Total)})
	}
	return out
}
