// Package config はpod-cliの設定を環境変数から読み込む。
package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/randallknutson/pod/pkg/apperr"
)

// Config はpod-cliの設定を保持する。
type Config struct {
	// 実行モード
	Mode   string `envconfig:"POD_CLI_MODE" default:"local"`
	APIURL string `envconfig:"POD_CLI_API_URL" default:"http://localhost:8080"`

	// ログ設定（stdoutは結果出力に使うためstderrへ出力する）
	LogLevel    string `envconfig:"LOG_LEVEL" default:"WARN"`
	LogMaskKeys bool   `envconfig:"LOG_MASK_KEYS" default:"true"`

	// pod既定値（交換ファイルで省略された場合に使う）
	PodOP  string `envconfig:"POD_OP" default:"cdc202d5123e20f62b6d676ac72cb318"`
	PodAMF string `envconfig:"POD_AMF" default:"b9b9"`
	PodIV  string `envconfig:"POD_IV" default:"0a0a0a0a"`

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
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Remote はcrypto-apiを呼び出すモードかどうかを返す。
func (c *Config) Remote() bool {
	return c.Mode == ModeRemote
}

// validate は設定値のバリデーションとHex既定値のデコードを行う。
func (c *Config) validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	switch c.Mode {
	case ModeLocal:
	case ModeRemote:
		if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
			return fmt.Errorf("POD_CLI_API_URL must start with http:// or https://")
		}
	default:
		return fmt.Errorf("POD_CLI_MODE must be %s or %s, got %q", ModeLocal, ModeRemote, c.Mode)
	}

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
