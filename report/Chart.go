package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// Chart renders an HTML page charting the deadline fraction of each
// trip in s and the cumulative reward after each trip, given the
// per-trip returns
func Chart(w io.Writer, s Summary, returns []float64) error {
	fractions := line(fmt.Sprintf("Deadline fraction (average %.3f)",
		s.AverageDeadlineFraction), len(s.DeadlineFractions))
	fractions.AddSeries("deadline fraction", lineData(s.DeadlineFractions))

	cumulative := make([]float64, len(returns))
	if len(returns) > 0 {
		floats.CumSum(cumulative, returns)
	}
	rewards := line("Cumulative reward", len(cumulative))
	rewards.AddSeries("cumulative reward", lineData(cumulative))
	rewards.AddSeries("trip return", lineData(returns))

	page := components.NewPage()
	page.PageTitle = s.Config.String()
	page.AddCharts(fractions, rewards)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("chart: could not render: %v", err)
	}
	return nil
}

// line returns a new line chart with n trips along the x axis
func line(title string, n int) *charts.Line {
	l := charts.NewLine()
	l.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	trips := make([]string, n)
	for i := range trips {
		trips[i] = fmt.Sprintf("%d", i+1)
	}
	l.SetXAxis(trips)

	return l
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
