package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"SignalBoard/internal/config"
	"SignalBoard/internal/display"
	"SignalBoard/internal/model"
)

type reportOptions struct {
	symbol      string
	provider    string
	period      string
	from        string
	to          string
	horizon     int
	interactive bool
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the indicator dashboard and signal for a ticker",
		Long: `Fetch daily history, compute the indicators and print the dashboard.
Example: signalboard report --symbol TSLA --period 2Y --horizon 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runReport(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.symbol, "symbol", "", "Ticker symbol (defaults to data_source.symbol)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "Data provider: alphavantage, yahoo, alpaca, mock")
	cmd.Flags().StringVar(&opts.period, "period", "", "Lookback period: "+strings.Join(model.Periods, ", "))
	cmd.Flags().StringVar(&opts.from, "from", "", "Start date (YYYY-MM-DD), used with --to")
	cmd.Flags().StringVar(&opts.to, "to", "", "End date (YYYY-MM-DD), used with --from")
	cmd.Flags().IntVar(&opts.horizon, "horizon", 0, "Prediction horizon in days: 1 or 5")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for period and horizon")
	return cmd
}

func (o *reportOptions) apply(cfg *config.Config) {
	if o.symbol != "" {
		cfg.DataSource.Symbol = strings.ToUpper(o.symbol)
	}
	if o.provider != "" {
		cfg.DataSource.Provider = strings.ToLower(o.provider)
	}
	if o.period != "" {
		cfg.Dashboard.Period = strings.ToUpper(o.period)
	}
	if o.horizon != 0 {
		cfg.Dashboard.Horizon = o.horizon
	}
}

func runReport(cmd *cobra.Command, cfg *config.Config, opts *reportOptions) error {
	opts.apply(cfg)

	if opts.interactive {
		if opts.from == "" && opts.to == "" {
			period, err := PromptForPeriod(cfg.Dashboard.Period)
			if err != nil {
				return err
			}
			cfg.Dashboard.Period = period
		}
		horizon, err := PromptForHorizon(cfg.Dashboard.Horizon)
		if err != nil {
			return err
		}
		cfg.Dashboard.Horizon = horizon
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	rng, err := parseRange(cfg.Dashboard.Period, opts.from, opts.to)
	if err != nil {
		return err
	}

	col, closeCache, err := newCollector(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	rec := openRecorder(cfg)
	defer rec.Close()

	symbol := cfg.DataSource.Symbol
	report, err := col.Collect(context.Background(), symbol, rng, cfg.Dashboard.Horizon)
	if err != nil {
		return &userError{msg: describeError(symbol, err), err: err}
	}
	if err := rec.RecordPrediction(report); err != nil {
		log.Printf("[ERROR] record prediction: %v", err)
	}
	return display.Render(cmd.OutOrStdout(), report)
}
