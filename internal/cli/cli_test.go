package cli

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"SignalBoard/internal/model"
	"SignalBoard/internal/recorder"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		"CONFIG_PATH", "SIGNALBOARD_PROVIDER", "SIGNALBOARD_SYMBOL", "ALPHA_VANTAGE_API_KEY",
		"APCA_API_KEY_ID", "APCA_API_SECRET_KEY", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
		"REDIS_ADDR", "SQLITE_PATH", "HTTPS_PROXY",
	} {
		t.Setenv(k, "")
	}
	return filepath.Join(t.TempDir(), "missing.yaml")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReportCmd_Mock(t *testing.T) {
	cfgPath := isolateEnv(t)
	out, err := execute(t, "report", "--config", cfgPath, "--provider", "mock", "--symbol", "aapl", "--horizon", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	for _, want := range []string{"AAPL", "Next 5 day(s)", "Close: "} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestReportCmd_RecordsToSQLite(t *testing.T) {
	cfgPath := isolateEnv(t)
	dbPath := filepath.Join(t.TempDir(), "history.db")
	t.Setenv("SQLITE_PATH", dbPath)

	if _, err := execute(t, "report", "--config", cfgPath, "--provider", "mock"); err != nil {
		t.Fatalf("report: %v", err)
	}
	out, err := execute(t, "history", "--config", cfgPath, "--symbol", "tsla")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "mock") || !strings.Contains(out, "1Y") {
		t.Errorf("expected recorded prediction in history:\n%s", out)
	}
}

func TestReportCmd_InvalidHorizon(t *testing.T) {
	cfgPath := isolateEnv(t)
	if _, err := execute(t, "report", "--config", cfgPath, "--provider", "mock", "--horizon", "3"); err == nil {
		t.Error("expected error for horizon 3")
	}
}

func TestReportCmd_LoneFromDate(t *testing.T) {
	cfgPath := isolateEnv(t)
	_, err := execute(t, "report", "--config", cfgPath, "--provider", "mock", "--from", "2024-03-01")
	if !errors.Is(err, model.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for lone --from, got %v", err)
	}
}

func TestHistoryCmd_RequiresDatabase(t *testing.T) {
	cfgPath := isolateEnv(t)
	if _, err := execute(t, "history", "--config", cfgPath); err == nil {
		t.Error("expected error without sqlite path")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "SignalBoard") {
		t.Errorf("unexpected version output: %s", out)
	}
}

func TestParseRange(t *testing.T) {
	rng, err := parseRange("2Y", "", "")
	if err != nil || rng.Period != "2Y" {
		t.Errorf("expected 2Y lookback, got %+v, %v", rng, err)
	}

	rng, err = parseRange("1Y", "2023-01-01", "2023-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Key() != "2023-01-01..2023-12-31" {
		t.Errorf("unexpected key %s", rng.Key())
	}

	for _, tt := range [][2]string{
		{"2023-12-31", "2023-01-01"},
		{"2023-01-01", ""},
		{"01/01/2023", "2023-12-31"},
	} {
		if _, err := parseRange("1Y", tt[0], tt[1]); !errors.Is(err, model.ErrInvalidRange) {
			t.Errorf("parseRange(%q, %q): expected ErrInvalidRange, got %v", tt[0], tt[1], err)
		}
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("x: %w", model.ErrInsufficientHistory), "Not enough history"},
		{fmt.Errorf("x: %w", model.ErrParseMismatch), "unexpected payload"},
		{fmt.Errorf("rate limit: %w", model.ErrDataUnavailable), "No data available"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		if got := describeError("TSLA", tt.err); !strings.Contains(got, tt.want) {
			t.Errorf("describeError(%v) = %q, want substring %q", tt.err, got, tt.want)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	if got := formatHistory("TSLA", nil); !strings.Contains(got, "No recorded predictions") {
		t.Errorf("unexpected empty output: %s", got)
	}
	got := formatHistory("TSLA", []recorder.PredictionRecord{{
		BarDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Provider: "yahoo", Range: "1Y",
		Horizon: 1, Signal: model.SignalBuy, Close: 180.5, RSI14: 28.1, MACD: 0.5,
	}})
	if !strings.Contains(got, "2024-05-10") || !strings.Contains(got, "BUY") || !strings.Contains(got, "180.50") {
		t.Errorf("unexpected history output:\n%s", got)
	}
}
