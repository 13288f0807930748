package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("block added") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("grab") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("grab") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestEditorLogsNoTarget(t *testing.T) {
	var buf bytes.Buffer
	e := NewEditor(&fakeScene{}, newLogger(&buf, log.InfoLevel))

	e.AddPort(SideInput, PortParams{})

	if out := buf.String(); !strings.Contains(out, "WARN") || !strings.Contains(out, "port not added") {
		t.Errorf("log output = %q", out)
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() error: %v", err)
	}
	newLogger(f, log.InfoLevel).Info("fresh")
	f.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") || !strings.Contains(string(data), "fresh") {
		t.Errorf("log file = %q", data)
	}
}
