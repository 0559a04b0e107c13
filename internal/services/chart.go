package services

import (
	"alfredoptarigan/salary-estimator/internal/models"
)

const (
	chartWidth       = 640.0
	chartLabelWidth  = 120.0
	chartValueMargin = 110.0
	chartBarHeight   = 34.0
	chartBarGap      = 16.0
	chartTopPad      = 12.0
	chartAxisPad     = 36.0
	chartLabelOffset = 6.0
)

var chartSeries = []struct {
	label string
	color string
}{
	{"Minimum", "gray"},
	{"Average", "blue"},
	{"Maximum", "green"},
	{"Your Prediction", "orange"},
}

// BuildChart lays out the comparison as four horizontal bars. The first bar
// sits at the bottom, so "Your Prediction" is drawn on top.
func BuildChart(cmp models.Comparison, money CurrencyFormatter) models.Chart {
	values := []float64{cmp.Stats.Min, cmp.Stats.Mean, cmp.Stats.Max, cmp.Prediction}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	plotWidth := chartWidth - chartLabelWidth - chartValueMargin
	scale := 0.0
	if peak > 0 {
		scale = plotWidth / peak
	}

	n := len(chartSeries)
	plotHeight := float64(n)*chartBarHeight + float64(n-1)*chartBarGap
	chart := models.Chart{
		Width:       chartWidth,
		Height:      chartTopPad + plotHeight + chartAxisPad,
		LabelWidth:  chartLabelWidth,
		BarHeight:   chartBarHeight,
		LabelOffset: chartLabelOffset,
		AxisLabel:   "Salary",
		AxisLabelX:  chartLabelWidth + plotWidth/2,
		AxisLabelY:  chartTopPad + plotHeight + chartAxisPad - 8,
	}

	for i, s := range chartSeries {
		width := values[i] * scale
		if width < 0 {
			width = 0
		}
		y := chartTopPad + float64(n-1-i)*(chartBarHeight+chartBarGap)
		chart.Bars = append(chart.Bars, models.ChartBar{
			Label: s.label,
			Value: values[i],
			Text:  money.FormatWhole(values[i]),
			Color: s.color,
			Y:     y,
			Width: width,
			TextX: chartLabelWidth + width + chartLabelOffset,
			TextY: y + chartBarHeight/2,
		})
	}
	return chart
}
