package notifier

import (
	"fmt"
	"html"
	"strings"

	"SignalBoard/internal/model"
	"SignalBoard/internal/recorder"
)

var signalEmoji = map[model.Signal]string{
	model.SignalBuy:  "🟢",
	model.SignalSell: "🔴",
	model.SignalHold: "🟡",
}

// FormatReport formats a render cycle's prediction into a Telegram message.
func FormatReport(report *model.Report) string {
	p := report.Prediction
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s | %s\n\n",
		html.EscapeString(report.Symbol), report.Range.Key(), report.GeneratedAt.Format("2006-01-02 15:04")))

	if last, ok := report.Complete.Last(); ok {
		b.WriteString(fmt.Sprintf("Last bar: %s\n", last.Time.Format(model.DateLayout)))
	}
	b.WriteString(fmt.Sprintf("Close: $%.2f | SMA20: %.2f\n", p.Close, p.SMA20))
	b.WriteString(fmt.Sprintf("RSI(14): %.1f\n", p.RSI14))
	b.WriteString(fmt.Sprintf("MACD: %.3f | Signal: %.3f\n\n", p.MACD, p.MACDSignal))

	b.WriteString("🗳 <b>Votes:</b>\n")
	for _, v := range p.Votes {
		b.WriteString(fmt.Sprintf("  %s %s: %s\n", signalEmoji[v.Signal], v.Source, html.EscapeString(v.Reason)))
	}
	b.WriteString(fmt.Sprintf("  Buy %d / Sell %d\n\n", p.BuyCount, p.SellCount))

	b.WriteString(fmt.Sprintf("%s <b>Next %d day(s): %s</b>\n", signalEmoji[p.Signal], p.Horizon, p.Signal))
	b.WriteString(fmt.Sprintf("<i>source: %s, %d complete rows</i>", report.Provider, len(report.Complete)))
	return b.String()
}

// FormatFailure formats a terminal pipeline error.
func FormatFailure(symbol string, err error) string {
	return fmt.Sprintf("❌ <b>%s</b>: %s", html.EscapeString(symbol), html.EscapeString(err.Error()))
}

// FormatHistory formats recent stored predictions.
func FormatHistory(symbol string, records []recorder.PredictionRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("No recorded predictions for %s", html.EscapeString(symbol))
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 <b>%s history</b>\n\n", html.EscapeString(symbol)))
	for _, r := range records {
		b.WriteString(fmt.Sprintf("%s %s %dd %s (close %.2f, RSI %.0f)\n",
			signalEmoji[r.Signal], r.BarDate.Format(model.DateLayout), r.Horizon, r.Signal, r.Close, r.RSI14))
	}
	return b.String()
}
