package stats

import (
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"telegramBotSummary/internal/storage"
)

// MakeUsageChart renders a line chart of summary requests per day.
func MakeUsageChart(counts []storage.DailyCount, days int) ([]byte, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("no usage data available")
	}

	var xAxisData []string
	data := make([]float64, 0, len(counts))
	for _, c := range counts {
		xAxisData = append(xAxisData, c.Day)
		data = append(data, float64(c.Count))
	}

	p, err := charts.LineRender(
		[][]float64{data},
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data: xAxisData,
		}),
		charts.TitleTextOptionFunc(fmt.Sprintf("Summary Requests (%d days)", days)),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{"requests"},
			Top:  charts.PositionTop,
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(400),
	)
	if err != nil {
		return nil, err
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
