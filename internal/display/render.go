package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guregu/null/v6"

	"SignalBoard/internal/calculator"
	"SignalBoard/internal/model"
	"SignalBoard/internal/strategy"
)

const sparkWidth = 48

// Render writes the dashboard for one report: header, indicator panels over
// the complete rows, the prediction box and the closing summary line.
func Render(w io.Writer, report *model.Report) error {
	last, ok := report.Complete.Last()
	if !ok || report.Prediction == nil {
		return fmt.Errorf("render %s: %w", report.Symbol, model.ErrInsufficientHistory)
	}
	rows := report.Complete

	sections := []string{
		header(report),
		pricePanel(rows),
		movingAveragePanel(rows, last),
		rsiPanel(rows, last),
		macdPanel(rows, last),
		bollingerPanel(rows, last),
		predictionBox(report.Prediction),
		footerStyle.Render(SummaryLine(last)),
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

// SummaryLine is the one-line recap of the latest complete row.
func SummaryLine(row model.EnrichedRow) string {
	return fmt.Sprintf("Close: %.2f | RSI: %.2f | MACD: %.4f", row.Close, row.RSI14.Float64, row.MACD.Float64)
}

func header(report *model.Report) string {
	return titleStyle.Render(fmt.Sprintf("📊 %s  %s  via %s  %s",
		report.Symbol, report.Range, report.Provider, report.GeneratedAt.Format("2006-01-02 15:04")))
}

func panel(title string, lines ...string) string {
	body := labelStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	return panelStyle.Render(body)
}

func pricePanel(rows model.EnrichedSeries) string {
	last := rows[len(rows)-1]
	change := ""
	if len(rows) > 1 {
		prev := rows[len(rows)-2].Close
		change = fmt.Sprintf("  %+.2f%%", (last.Close-prev)/prev*100)
	}
	lines := []string{
		fmt.Sprintf("%s  close %.2f%s", last.Time.Format(model.DateLayout), last.Close, change),
		Sparkline(closes(rows), sparkWidth),
	}
	if pr, err := calculator.CalculatePriceRange(rows); err == nil {
		lines = append(lines,
			mutedStyle.Render(fmt.Sprintf("high %.2f  low %.2f  position %.0f%%  volume %d",
				pr.High, pr.Low, pr.Position*100, pr.Volume)))
	}
	lines = append(lines, mutedStyle.Render("volume "+Sparkline(volumes(rows), sparkWidth)))
	return panel("Price & Volume", lines...)
}

func movingAveragePanel(rows model.EnrichedSeries, last model.EnrichedRow) string {
	return panel("Moving Averages",
		fmt.Sprintf("SMA%d %.2f   SMA%d %.2f", calculator.ShortMA, last.SMA20.Float64, calculator.LongMA, last.SMA50.Float64),
		"SMA20 "+Sparkline(column(rows, func(r model.EnrichedRow) null.Float { return r.SMA20 }), sparkWidth),
		"SMA50 "+Sparkline(column(rows, func(r model.EnrichedRow) null.Float { return r.SMA50 }), sparkWidth),
	)
}

func rsiPanel(rows model.EnrichedSeries, last model.EnrichedRow) string {
	rsi := last.RSI14.Float64
	zone := "neutral"
	switch {
	case rsi < strategy.Oversold:
		zone = "oversold"
	case rsi > strategy.Overbought:
		zone = "overbought"
	}
	return panel(fmt.Sprintf("RSI(%d)", calculator.RSIPeriod),
		fmt.Sprintf("%.2f  %s", rsi, zone),
		ScaledSparkline(column(rows, func(r model.EnrichedRow) null.Float { return r.RSI14 }), 0, 100, sparkWidth),
		mutedStyle.Render(fmt.Sprintf("guides: %.0f oversold / %.0f overbought", strategy.Oversold, strategy.Overbought)),
	)
}

func macdPanel(rows model.EnrichedSeries, last model.EnrichedRow) string {
	return panel(fmt.Sprintf("MACD(%d,%d,%d)", calculator.FastEMA, calculator.SlowEMA, calculator.SignalEMA),
		fmt.Sprintf("MACD %.4f   signal %.4f   hist %+.4f", last.MACD.Float64, last.MACDSignal.Float64, last.MACDHist.Float64),
		"hist "+Sparkline(column(rows, func(r model.EnrichedRow) null.Float { return r.MACDHist }), sparkWidth),
	)
}

func bollingerPanel(rows model.EnrichedSeries, last model.EnrichedRow) string {
	upper, lower := last.BBUpper.Float64, last.BBLower.Float64
	percentB := 0.5
	if upper > lower {
		percentB = (last.Close - lower) / (upper - lower)
	}
	return panel(fmt.Sprintf("Bollinger(%d,%.0f)", calculator.BandPeriod, calculator.BandWidth),
		fmt.Sprintf("upper %.2f   middle %.2f   lower %.2f   %%B %.2f", upper, last.BBMiddle.Float64, lower, percentB),
		"width "+Sparkline(bandWidths(rows), sparkWidth),
	)
}

func predictionBox(p *model.Prediction) string {
	var b strings.Builder
	b.WriteString(signalStyle(p.Signal).Render(fmt.Sprintf("Next %d day(s): %s", p.Horizon, p.Signal)))
	for _, v := range p.Votes {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-5s %s  %s", v.Source, signalStyle(v.Signal).Render(string(v.Signal)), v.Reason))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("buy %d / sell %d", p.BuyCount, p.SellCount)))
	return predictionStyle(p.Signal).Render(b.String())
}

func closes(rows model.EnrichedSeries) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Close
	}
	return out
}

func volumes(rows model.EnrichedSeries) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = float64(r.Volume)
	}
	return out
}

func bandWidths(rows model.EnrichedSeries) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.BBUpper.Float64 - r.BBLower.Float64
	}
	return out
}

func column(rows model.EnrichedSeries, pick func(model.EnrichedRow) null.Float) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v := pick(r); v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}
