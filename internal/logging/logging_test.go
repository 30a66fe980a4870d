package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug", "debug", false},
		{"info", "info", false},
		{"warn", "warn", false},
		{"error", "error", false},
		{"empty defaults to info", "", false},
		{"unknown", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "shouting"
	if _, err := New(cfg); err == nil {
		t.Error("New() with invalid level should fail")
	}
}

func TestSetLevel(t *testing.T) {
	logger, err := New(DevelopmentConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := logger.SetLevel("error"); err != nil {
		t.Errorf("SetLevel(\"error\") failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled after SetLevel(\"error\")")
	}

	if err := logger.SetLevel("bogus"); err == nil {
		t.Error("SetLevel(\"bogus\") should fail")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("failed SetLevel should leave the previous level in place")
	}
}
