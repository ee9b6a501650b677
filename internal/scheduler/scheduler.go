package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"SignalBoard/internal/collector"
	"SignalBoard/internal/model"
	"SignalBoard/internal/notifier"
	"SignalBoard/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Sender delivers a formatted message. *notifier.TelegramNotifier satisfies it.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages the periodic report refresh.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  Sender
	Recorder  recorder.Recorder
	Ctx       context.Context

	Symbol  string
	Range   model.RangeSpec
	Horizon int
}

// NewScheduler creates a new Scheduler. A nil notifier disables pushes.
func NewScheduler(ctx context.Context, col *collector.Collector, n Sender, rec recorder.Recorder, symbol string, rng model.RangeSpec, horizon int) *Scheduler {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
		Symbol:    symbol,
		Range:     rng,
		Horizon:   horizon,
	}
}

// Register adds the refresh task on the given cron spec (seconds field included).
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, func() { s.refresh(s.Horizon) }); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately.
func (s *Scheduler) RunNow() (*model.Report, error) {
	return s.refresh(s.Horizon)
}

func (s *Scheduler) refresh(horizon int) (*model.Report, error) {
	log.Printf("[INFO] refreshing %s %s (%dd)", s.Symbol, s.Range, horizon)
	report, err := s.Collector.Collect(s.Ctx, s.Symbol, s.Range, horizon)
	if err != nil {
		log.Printf("[ERROR] refresh %s: %v", s.Symbol, err)
		s.trySend(notifier.FormatFailure(s.Symbol, err))
		if rerr := s.Recorder.RecordFailure(&recorder.FailureEvent{
			Symbol:   s.Symbol,
			Provider: s.Collector.Fetcher.Name(),
			Range:    s.Range.Key(),
			Kind:     FailureKind(err),
			Message:  err.Error(),
		}); rerr != nil {
			log.Printf("[ERROR] record failure: %v", rerr)
		}
		return nil, err
	}

	s.trySend(notifier.FormatReport(report))
	if err := s.Recorder.RecordPrediction(report); err != nil {
		log.Printf("[ERROR] record prediction: %v", err)
	}
	return report, nil
}

// FailureKind maps an error onto the stored failure category.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, model.ErrDataUnavailable):
		return "DATA_UNAVAILABLE"
	case errors.Is(err, model.ErrInsufficientHistory):
		return "INSUFFICIENT_HISTORY"
	case errors.Is(err, model.ErrParseMismatch):
		return "PARSE_MISMATCH"
	default:
		return "OTHER"
	}
}

// HandleCommand processes a user command and returns a reply. Refresh
// commands push their report through the notifier and reply with nothing.
func (s *Scheduler) HandleCommand(_ context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	switch fields[0] {
	case "/signal":
		s.refresh(1)
		return ""
	case "/signal5":
		s.refresh(5)
		return ""
	case "/history":
		records, err := s.Recorder.RecentPredictions(s.Symbol, 10)
		if err != nil {
			return notifier.FormatFailure(s.Symbol, err)
		}
		return notifier.FormatHistory(s.Symbol, records)
	default:
		return helpText
	}
}

const helpText = "Available commands:\n• /signal - next-day signal\n• /signal5 - next-5-day signal\n• /history - recent predictions"

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
