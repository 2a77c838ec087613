package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytpick/internal/config"
	"github.com/ytget/ytpick/internal/logger"
	"github.com/ytget/ytpick/internal/model"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus model.RunStatus
		wantOutput string
		wantMetric string
	}{
		{
			name:       "input closed",
			input:      "",
			wantStatus: model.RunStatusCancelled,
			wantOutput: "Cancelled.",
			wantMetric: `ytpick_runs_total{status="Cancelled"} 1`,
		},
		{
			name:       "tool missing",
			input:      "https://www.youtube.com/watch?v=abc\n",
			wantStatus: model.RunStatusFailed,
			wantOutput: "yt-dlp was not found",
			wantMetric: `ytpick_tool_invocations_total{op="metadata",result="error"} 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metricsFile := filepath.Join(t.TempDir(), "ytpick.prom")
			t.Setenv(config.KeyBinary, filepath.Join(t.TempDir(), "no-such-yt-dlp"))
			t.Setenv(config.KeyMetricsFile, metricsFile)
			t.Setenv(config.KeyColor, "false")
			t.Setenv(config.KeyLanguage, "en")

			var out bytes.Buffer
			status, err := run(context.Background(), config.NewSettings(), logger.Discard(), strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("run() unexpected error: %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("run() status = %v, expected %v", status, tt.wantStatus)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output does not contain %q:\n%s", tt.wantOutput, out.String())
			}

			data, err := os.ReadFile(metricsFile)
			if err != nil {
				t.Fatalf("metrics file not written: %v", err)
			}
			if !strings.Contains(string(data), tt.wantMetric) {
				t.Errorf("metrics file does not contain %q:\n%s", tt.wantMetric, data)
			}
		})
	}
}

func TestLogOutcome(t *testing.T) {
	tests := []struct {
		status model.RunStatus
		want   string
	}{
		{model.RunStatusCompleted, "[INFO]  ytpick: run completed"},
		{model.RunStatusCancelled, "[INFO]  ytpick: run ended without download"},
		{model.RunStatusInvalidInput, "[INFO]  ytpick: run ended without download"},
		{model.RunStatusFailed, "[WARN]  ytpick: run failed"},
		{model.RunStatusInterrupted, "[WARN]  ytpick: run failed"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(logger.Options{Level: "info", Output: &buf})

			logOutcome(log, "run-1", tt.status)

			if got := buf.String(); !strings.Contains(got, tt.want) || !strings.Contains(got, "run_id=run-1") {
				t.Errorf("log line = %q, expected %q with the run id", got, tt.want)
			}
		})
	}

	var buf bytes.Buffer
	logOutcome(hclog.New(&hclog.LoggerOptions{Level: hclog.Warn, Output: &buf}), "run-2", model.RunStatusCompleted)
	if buf.Len() != 0 {
		t.Errorf("success logged at warn level: %q", buf.String())
	}
}
