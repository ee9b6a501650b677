package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"SignalBoard/internal/model"
	"SignalBoard/internal/recorder"
)

var (
	historyHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	historySignalStyle = map[model.Signal]lipgloss.Style{
		model.SignalBuy:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		model.SignalSell: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		model.SignalHold: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
	}
)

func newHistoryCmd() *cobra.Command {
	var symbol string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Database.SQLitePath == "" {
				return fmt.Errorf("database.sqlite_path is not configured")
			}
			if symbol == "" {
				symbol = cfg.DataSource.Symbol
			}
			rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
			if err != nil {
				return err
			}
			defer rec.Close()

			records, err := rec.RecentPredictions(strings.ToUpper(symbol), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatHistory(strings.ToUpper(symbol), records))
			return nil
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "", "Ticker symbol (defaults to data_source.symbol)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of rows to show")
	return cmd
}

func formatHistory(symbol string, records []recorder.PredictionRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("No recorded predictions for %s\n", symbol)
	}
	var b strings.Builder
	b.WriteString(historyHeaderStyle.Render(fmt.Sprintf("%-10s %-12s %-22s %-3s %-5s %10s %7s %10s",
		"BAR DATE", "PROVIDER", "RANGE", "H", "SIGNAL", "CLOSE", "RSI", "MACD")))
	b.WriteString("\n")
	for _, r := range records {
		b.WriteString(fmt.Sprintf("%-10s %-12s %-22s %-3d %s %10.2f %7.2f %10.4f\n",
			r.BarDate.Format(model.DateLayout), r.Provider, r.Range, r.Horizon,
			historySignalStyle[r.Signal].Render(fmt.Sprintf("%-5s", r.Signal)), r.Close, r.RSI14, r.MACD))
	}
	return b.String()
}
