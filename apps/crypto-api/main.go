// Package main はcrypto-api（podのEAP-AKA・ペアリング暗号処理HTTP API）のエントリーポイント。
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/randallknutson/pod/apps/crypto-api/internal/config"
	"github.com/randallknutson/pod/apps/crypto-api/internal/handler"
	"github.com/randallknutson/pod/apps/crypto-api/internal/server"
	"github.com/randallknutson/pod/apps/crypto-api/internal/usecase"
	"github.com/randallknutson/pod/pkg/milenage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("crypto-api stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// run はサーバーを起動し、ctxがキャンセルされるまで待ってから停止する。
func run(ctx context.Context, cfg *config.Config) error {
	slog.Info("starting crypto-api",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"log_mask_keys", cfg.LogMaskKeys,
	)

	// 1. 依存オブジェクト生成
	cryptoUseCase := usecase.NewCryptoUseCase(milenage.NewCalculator(), cfg)
	srv := server.New(cfg, handler.NewCryptoHandler(cryptoUseCase))

	// 2. サーバー起動
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 3. 終了シグナルまたは起動失敗を待つ
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// initLogger はLOG_LEVELに従ってJSONロガーを初期化する。
func initLogger(cfg *config.Config) {
	var level slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("app", "crypto-api"))
}
