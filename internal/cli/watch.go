package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"SignalBoard/internal/model"
	"SignalBoard/internal/notifier"
	"SignalBoard/internal/scheduler"
)

func newWatchCmd() *cobra.Command {
	var runNow bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh the signal on a schedule and push it to Telegram",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			col, closeCache, err := newCollector(cfg)
			if err != nil {
				return err
			}
			defer closeCache()

			rec := openRecorder(cfg)
			defer rec.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var tn *notifier.TelegramNotifier
			var sender scheduler.Sender
			if cfg.TelegramEnabled() {
				tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
				sender = tn
			} else {
				log.Println("[WARN] telegram not configured, reports are only recorded")
			}

			sched := scheduler.NewScheduler(ctx, col, sender, rec,
				cfg.DataSource.Symbol, model.Lookback(cfg.Dashboard.Period), cfg.Dashboard.Horizon)
			if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if tn != nil {
				go tn.StartPolling(ctx, sched.HandleCommand)
				log.Println("[INFO] Telegram polling started")
			}

			if runNow || os.Getenv("RUN_ON_START") == "true" {
				go sched.RunNow()
			}

			log.Printf("[INFO] watching %s on %q. Press Ctrl+C to stop.", cfg.DataSource.Symbol, cfg.Schedule.RefreshCron)
			<-ctx.Done()
			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runNow, "run-now", false, "Run one refresh immediately")
	return cmd
}
