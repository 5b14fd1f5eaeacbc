// Package runner は交換ファイルの内容を1つの操作として実行する。
package runner

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/randallknutson/pod/apps/pod-cli/internal/config"
	"github.com/randallknutson/pod/apps/pod-cli/internal/exchange"
	"github.com/randallknutson/pod/pkg/logging"
	"github.com/randallknutson/pod/pkg/milenage"
	"github.com/randallknutson/pod/pkg/model"
)

// 操作名
const (
	OpFrame    = "frame"
	OpEAP      = "eap"
	OpRespond  = "respond"
	OpMilenage = "milenage"
	OpVerify   = "verify"
	OpPairing  = "pairing"
	OpSeal     = "seal"
	OpOpen     = "open"
)

// Operations はサポートする操作名の一覧。
var Operations = []string{OpFrame, OpEAP, OpRespond, OpMilenage, OpVerify, OpPairing, OpSeal, OpOpen}

// ErrUnknownOperation は未知の操作名が指定された場合のエラー
var ErrUnknownOperation = errors.New("unknown operation")

// CryptoAPI はcrypto-apiクライアントのインターフェース
type CryptoAPI interface {
	DecodeFrame(ctx context.Context, req *model.FrameDecodeRequest) (*model.FrameDecodeResponse, error)
	DecodeEAP(ctx context.Context, req *model.EAPDecodeRequest) (*model.EAPMessageResponse, error)
	RespondChallenge(ctx context.Context, req *model.EAPRespondRequest) (*model.EAPRespondResponse, error)
	DeriveMilenage(ctx context.Context, req *model.MilenageRequest) (*model.MilenageResponse, error)
	VerifyMilenage(ctx context.Context, req *model.MilenageVerifyRequest) (*model.VerifyResponse, error)
	DeriveLTK(ctx context.Context, req *model.PairingRequest) (*model.PairingResponse, error)
	Seal(ctx context.Context, req *model.SealRequest) (*model.SealResponse, error)
	Open(ctx context.Context, req *model.OpenRequest) (*model.OpenResponse, error)
}

// Runner は操作をローカルまたはcrypto-api経由で実行する。
type Runner struct {
	cfg        *config.Config
	api        CryptoAPI // nilの場合はローカル実行
	calculator *milenage.Calculator
	fields     *logging.CommonFields
}

// NewLocal はコアパッケージで直接計算するRunnerを生成する。
func NewLocal(cfg *config.Config) *Runner {
	return &Runner{
		cfg:        cfg,
		calculator: milenage.NewCalculator(),
		fields:     logging.NewCommonFields(logging.NewMasker(cfg.LogMaskKeys)),
	}
}

// NewRemote はcrypto-apiを呼び出すRunnerを生成する。
func NewRemote(cfg *config.Config, api CryptoAPI) *Runner {
	r := NewLocal(cfg)
	r.api = api
	return r
}

// Run は操作を実行し、JSONに変換可能な結果を返す。
func (r *Runner) Run(ctx context.Context, op string, ex *exchange.Exchange) (any, error) {
	start := time.Now()
	result, err := r.dispatch(ctx, op, ex)
	latencyMs := time.Since(start).Milliseconds()

	mode := config.ModeLocal
	if r.api != nil {
		mode = config.ModeRemote
	}
	if err != nil {
		slog.Warn("operation failed",
			logging.WithEventID("OP_ERR"),
			logging.WithOperation(op),
			logging.WithMode(mode),
			logging.WithError(err),
			logging.WithLatency(latencyMs),
		)
		return nil, err
	}
	slog.Info("operation completed",
		logging.WithEventID("OP_OK"),
		logging.WithOperation(op),
		logging.WithMode(mode),
		logging.WithLatency(latencyMs),
	)
	return result, nil
}

func (r *Runner) dispatch(ctx context.Context, op string, ex *exchange.Exchange) (any, error) {
	if r.api != nil {
		return r.remote(ctx, op, ex)
	}
	switch op {
	case OpFrame:
		return r.decodeFrame(ex)
	case OpEAP:
		return r.decodeEAP(ex)
	case OpRespond:
		return r.respond(ex)
	case OpMilenage:
		return r.deriveMilenage(ex)
	case OpVerify:
		return r.verifyMilenage(ex)
	case OpPairing:
		return r.deriveLTK(ex)
	case OpSeal:
		return r.seal(ex)
	case OpOpen:
		return r.open(ex)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}
