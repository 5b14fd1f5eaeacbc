package config

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/randallknutson/pod/pkg/apperr"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// デフォルト値の確認
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8080")
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "INFO")
	}
	if !cfg.LogMaskKeys {
		t.Error("LogMaskKeys = false, want true")
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, "release")
	}
	if got := hex.EncodeToString(cfg.OP); got != "cdc202d5123e20f62b6d676ac72cb318" {
		t.Errorf("OP = %s", got)
	}
	if got := hex.EncodeToString(cfg.AMF); got != "b9b9" {
		t.Errorf("AMF = %s", got)
	}
	if got := hex.EncodeToString(cfg.IV); got != "0a0a0a0a" {
		t.Errorf("IV = %s", got)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_MASK_KEYS", "false")
	t.Setenv("POD_AMF", "8000")
	t.Setenv("POD_IV", "b7616cae")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ListenAddr != "127.0.0.1:9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, "127.0.0.1:9090")
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "DEBUG")
	}
	if cfg.LogMaskKeys {
		t.Error("LogMaskKeys = true, want false")
	}
	if got := hex.EncodeToString(cfg.AMF); got != "8000" {
		t.Errorf("AMF = %s, want 8000", got)
	}
	if got := hex.EncodeToString(cfg.IV); got != "b7616cae" {
		t.Errorf("IV = %s, want b7616cae", got)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"OP not hex", "POD_OP", "zz", apperr.ErrInvalidHex},
		{"OP short", "POD_OP", "cdc202d5", apperr.ErrInvalidLength},
		{"AMF long", "POD_AMF", "b9b9b9", apperr.ErrInvalidLength},
		{"IV odd length", "POD_IV", "0a0a0a0", apperr.ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.key {
				t.Errorf("Load() field = %v, want %s", ve, tt.key)
			}
		})
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("LOG_MASK_KEYS", "maybe")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid bool")
	}
}
