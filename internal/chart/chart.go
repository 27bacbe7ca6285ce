// Package chart renders the per-source income series as SVG bar charts.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"incomeviz.dev/internal/income"
)

// ErrNoData is returned when a series has no values to plot.
var ErrNoData = errors.New("no values to plot")

type Metric string

const (
	Mean   Metric = "mean"
	Median Metric = "median"
)

func (m Metric) label() string {
	if m == Median {
		return "중앙값"
	}
	return "평균"
}

// Title follows the dashboard wording, e.g. "1인가구 가구의 가구소득(전년도) 평균 (단위: 만원)".
func Title(householdType string, metric Metric) string {
	return fmt.Sprintf("%s 가구의 가구소득(전년도) %s (단위: 만원)", householdType, metric.label())
}

// AxisLabel is the y axis caption, e.g. "평균 소득 (만원)".
func AxisLabel(metric Metric) string {
	return fmt.Sprintf("%s 소득 (만원)", metric.label())
}

// Options controls the rendered size.
type Options struct {
	Width  int
	Height int
}

func DefaultOptions() Options {
	return Options{Width: 960, Height: 480}
}

func barStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 1,
	}
}

// SeriesFor picks the series of a view for metric.
func SeriesFor(view income.FilteredView, metric Metric) []income.SeriesPoint {
	if metric == Median {
		return view.MedianSeries()
	}
	return view.MeanSeries()
}

// RenderSVG draws one bar per income source in row order.
func RenderSVG(w io.Writer, householdType string, metric Metric, points []income.SeriesPoint, opts Options) error {
	if len(points) == 0 {
		return ErrNoData
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultOptions()
	}

	color := chart.ColorBlue
	if metric == Median {
		color = chart.ColorGreen
	}

	bars := make([]chart.Value, 0, len(points))
	minValue, maxValue := 0.0, 0.0
	for _, p := range points {
		bars = append(bars, chart.Value{Label: p.IncomeSource, Value: p.Value, Style: barStyle(color)})
		if p.Value < minValue {
			minValue = p.Value
		}
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	if maxValue == minValue {
		maxValue = minValue + 1
	}

	barWidth := (opts.Width - 120) / (2 * len(bars))
	if barWidth < 8 {
		barWidth = 8
	}

	bc := chart.BarChart{
		Title:      Title(householdType, metric),
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:  AxisLabel(metric),
			Range: &chart.ContinuousRange{Min: minValue, Max: maxValue * 1.1},
		},
		Bars: bars,
	}

	if err := bc.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering %s chart for %s: %w", metric, householdType, err)
	}
	return nil
}
