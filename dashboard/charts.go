package dashboard

import (
	"fmt"
	"io"

	"github.com/dnldd/timing/score"
	"github.com/dnldd/timing/shared"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// gaugeChart renders the latest percentile of the provided scored series as
// a gauge over [0,100], noting the call entry threshold.
func gaugeChart(scored *score.ScoredSeries) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s timing percentile", scored.Symbol),
			Subtitle: fmt.Sprintf("score %.1f, %s (call entries at 80 and above)",
				scored.Latest.TimingScore, scored.Latest.Signal.String()),
		}),
	)

	gauge.AddSeries(scored.Symbol, []opts.GaugeData{
		{Name: "percentile", Value: scored.Latest.Percentile},
	})

	return gauge
}

// historyChart renders the scored history of the provided series as a dual
// axis line chart of timing score and percentile.
func historyChart(scored *score.ScoredSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s timing score history", scored.Symbol),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "score"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "percentile", Type: "value"})

	dates := make([]string, len(scored.Rows))
	scores := make([]opts.LineData, len(scored.Rows))
	percentiles := make([]opts.LineData, len(scored.Rows))
	for idx := range scored.Rows {
		dates[idx] = scored.Rows[idx].Date.Format(shared.DateLayout)
		scores[idx] = opts.LineData{Value: scored.Rows[idx].TimingScore}
		percentiles[idx] = opts.LineData{Value: scored.Rows[idx].Percentile}
	}

	line.SetXAxis(dates).
		AddSeries("timing score", scores).
		AddSeries("percentile", percentiles,
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))

	return line
}

// renderDashboard renders the gauge and history charts for the provided
// scored series to the provided writer.
func renderDashboard(w io.Writer, series []*score.ScoredSeries) error {
	page := components.NewPage()
	page.PageTitle = "Options Timing"

	for idx := range series {
		page.AddCharts(gaugeChart(series[idx]), historyChart(series[idx]))
	}

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("rendering charts page: %w", err)
	}

	return nil
}
