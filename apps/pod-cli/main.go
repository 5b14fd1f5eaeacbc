// Package main はpod-cli（交換ファイルを使ったpod暗号操作ツール）のエントリーポイント。
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/randallknutson/pod/apps/pod-cli/internal/client"
	"github.com/randallknutson/pod/apps/pod-cli/internal/config"
	"github.com/randallknutson/pod/apps/pod-cli/internal/exchange"
	"github.com/randallknutson/pod/apps/pod-cli/internal/runner"
	"github.com/randallknutson/pod/pkg/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		usage(stderr)
		return 2
	}
	op, path := args[0], args[1]

	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// 2. ロガー初期化
	initLogger(cfg, stderr)

	// 3. 交換ファイル読み込み
	ex, err := exchange.Load(path)
	if err != nil {
		slog.Error("failed to load exchange", "error", err)
		return 1
	}

	// 4. Runner生成
	r := runner.NewLocal(cfg)
	if cfg.Remote() {
		r = runner.NewRemote(cfg, client.NewClient(cfg))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, config.RunTimeout)
	defer cancelTimeout()
	traceID := uuid.NewString()
	ctx = client.WithTraceID(ctx, traceID)

	slog.Debug("running operation",
		logging.WithTraceID(traceID),
		logging.WithOperation(op),
		logging.WithMode(cfg.Mode),
		"exchange", path,
	)

	// 5. 実行と結果出力
	result, err := r.Run(ctx, op, ex)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", op, err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("failed to write result", "error", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: pod-cli <%s> <exchange.yaml>\n", strings.Join(runner.Operations, "|"))
	fmt.Fprintln(w, "environment: POD_CLI_MODE (local|remote), POD_CLI_API_URL, LOG_LEVEL, LOG_MASK_KEYS, POD_OP, POD_AMF, POD_IV")
}

// initLogger はロガーを初期化する。stdoutは結果出力専用のためstderrに出力する。
func initLogger(cfg *config.Config, w io.Writer) {
	level := slog.LevelWarn
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(w, opts)
	logger := slog.New(handler).With("app", "pod-cli")
	slog.SetDefault(logger)
}
