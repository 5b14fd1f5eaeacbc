// Package config は環境変数から設定を読み込む。
package config

import (
	"encoding/hex"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/randallknutson/pod/pkg/apperr"
)

// Config はcrypto-apiの設定を保持する。
type Config struct {
	// サーバー設定
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskKeys bool   `envconfig:"LOG_MASK_KEYS" default:"true"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`

	// pod既定値（リクエストで省略された場合に使う）
	PodOP  string `envconfig:"POD_OP" default:"cdc202d5123e20f62b6d676ac72cb318"`
	PodAMF string `envconfig:"POD_AMF" default:"b9b9"`
	PodIV  string `envconfig:"POD_IV" default:"0a0a0a0a"`

	// デコード済みの既定値
	OP  []byte `ignored:"true"`
	AMF []byte `ignored:"true"`
	IV  []byte `ignored:"true"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.decode(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// decode はHex形式の既定値をバイト列に変換し、長さを検証する。
func (c *Config) decode() error {
	var err error
	if c.OP, err = decodeFixed("POD_OP", c.PodOP, OPLen); err != nil {
		return err
	}
	if c.AMF, err = decodeFixed("POD_AMF", c.PodAMF, AMFLen); err != nil {
		return err
	}
	if c.IV, err = decodeFixed("POD_IV", c.PodIV, IVLen); err != nil {
		return err
	}
	return nil
}

func decodeFixed(name, s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, apperr.NewFieldError(name, fmt.Errorf("%w: %w", apperr.ErrInvalidHex, err))
	}
	if len(b) != n {
		return nil, apperr.NewFieldError(name, fmt.Errorf("%w: want %d bytes, got %d", apperr.ErrInvalidLength, n, len(b)))
	}
	return b, nil
}
