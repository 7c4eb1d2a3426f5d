// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"auditoria/cli/internal/backend"
	"auditoria/cli/internal/config"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	forecastDays  int
	forecastLevel string
)

// forecastCmd represents the forecast command for requesting a sales forecast
// over a processed sales-data file.
var forecastCmd = &cobra.Command{
	Use:   "forecast <file-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Request a sales forecast for a data file",
	Long: `The forecast command asks the backend to predict sales based on a previously
uploaded and processed sales-data file. The horizon defaults to the configured
forecast_days (7 unless changed) and the aggregation level to weekly.

The output shows the trend summary, best and worst predicted days, key metrics
and a per-day prediction table.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fileID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("file id must be a number: %q", args[0])
		}

		cli, err := newClient()
		if err != nil {
			return err
		}

		days := forecastDays
		if days <= 0 {
			if cfg, err := config.Get(); err == nil {
				days = cfg.ForecastDays
			}
		}

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, "Computing forecast")
		f, err := cli.GetForecast(ctx, backend.ForecastRequest{
			FileID: fileID,
			Level:  forecastLevel,
			NDays:  days,
		})
		stopSpinner()
		cursor.Show()
		if err != nil {
			return reportError(err, fmt.Sprintf("forecasting file %d", fileID))
		}

		renderForecast(f)
		return nil
	},
}

// renderForecast prints the summary box, key metrics and prediction table.
func renderForecast(f *backend.Forecast) {
	s := f.Summary

	summary := fmt.Sprintf(
		"Period: %s\nTrend: %s\nAverage daily sales: %.2f\nTotal predicted: %.2f\n\nBest day:  %s (%s) — %.2f\nWorst day: %s (%s) — %.2f",
		s.Period, s.Trend, s.AvgDailySales, s.TotalPredictedSales,
		s.BestDay.Date, s.BestDay.DayOfWeek, s.BestDay.PredictedSales,
		s.WorstDay.Date, s.WorstDay.DayOfWeek, s.WorstDay.PredictedSales,
	)
	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("📈 Sales Forecast")).
		WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
		Println(summary)

	if len(s.KeyMetrics) > 0 {
		items := make([]pterm.BulletListItem, 0, len(s.KeyMetrics))
		for _, m := range s.KeyMetrics {
			items = append(items, pterm.BulletListItem{
				Level: 0,
				Text:  fmt.Sprintf("%s: %.2f %s — %s", m.Name, m.Value, m.Unit, m.Description),
			})
		}
		_ = pterm.DefaultBulletList.WithItems(items).Render()
	}

	if len(f.Predictions) > 0 {
		data := pterm.TableData{{"Date", "Day", "Predicted sales"}}
		for _, p := range f.Predictions {
			data = append(data, []string{p.Date, p.DayOfWeek, fmt.Sprintf("%.2f", p.PredictedSales)})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}

	if f.Message != "" {
		pterm.Println()
		pterm.Println(f.Message)
	}
}

func init() {
	rootCmd.AddCommand(forecastCmd)
	forecastCmd.Flags().IntVar(&forecastDays, "days", 0, "Forecast horizon in days (default from config)")
	forecastCmd.Flags().StringVar(&forecastLevel, "level", "weekly", "Aggregation level (weekly, daily)")
}
