// Package charts renders analytics series and breakdowns to PNG.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"trackit/internal/analytics"
)

type ChartGenerator struct{}

func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// RenderSeries draws a bucketed series as a bar chart. The value
// formatter controls the Y-axis labels, so habit charts can show
// whole counts and expense charts currency.
func (g *ChartGenerator) RenderSeries(title string, points []analytics.SeriesPoint, format func(float64) string) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no data points to chart")
	}

	bars := make([]chart.Value, 0, len(points))
	for _, p := range points {
		bars = append(bars, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	graph := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return format(v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render series chart: %w", err)
	}

	return buffer.Bytes(), nil
}

// RenderBreakdown draws a category breakdown as a pie chart. Slices
// below 1% of the total are dropped so the labels stay readable.
func (g *ChartGenerator) RenderBreakdown(title string, breakdown []analytics.CategoryTotal) ([]byte, error) {
	if len(breakdown) == 0 {
		return nil, fmt.Errorf("no categories to chart")
	}

	total := 0.0
	for _, c := range breakdown {
		total += c.Value
	}
	if total <= 0 {
		return nil, fmt.Errorf("no categories to chart")
	}

	values := make([]chart.Value, 0, len(breakdown))
	for _, c := range breakdown {
		percentage := (c.Value / total) * 100
		if percentage <= 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %.2f (%.1f%%)", c.Name, c.Value, percentage),
			Value: c.Value,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render breakdown chart: %w", err)
	}

	return buffer.Bytes(), nil
}

// CountFormatter labels habit-count axes with whole numbers.
func CountFormatter(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// CurrencyFormatter labels spending axes with two decimal places.
func CurrencyFormatter(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
