// Package client はcrypto-apiのHTTPクライアントを提供する。
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/randallknutson/pod/apps/pod-cli/internal/config"
	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/randallknutson/pod/pkg/httputil"
	"github.com/randallknutson/pod/pkg/logging"
	"github.com/randallknutson/pod/pkg/model"
	"github.com/sony/gobreaker"
)

// Client はcrypto-apiクライアントの実装
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
}

// NewClient は新しいcrypto-apiクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(config.APIRequestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					logging.WithEventID("CB_OPEN"),
					"cb_name", name,
					"from", from.String(),
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					logging.WithEventID("CB_HALF_OPEN"),
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					logging.WithEventID("CB_CLOSE"),
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
	}
}

// DecodeFrame はTWIフレームのデコードを依頼する。
func (c *Client) DecodeFrame(ctx context.Context, req *model.FrameDecodeRequest) (*model.FrameDecodeResponse, error) {
	var resp model.FrameDecodeResponse
	if err := c.post(ctx, PathFrameDecode, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DecodeEAP はEAPメッセージのデコードを依頼する。
func (c *Client) DecodeEAP(ctx context.Context, req *model.EAPDecodeRequest) (*model.EAPMessageResponse, error) {
	var resp model.EAPMessageResponse
	if err := c.post(ctx, PathEAPDecode, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RespondChallenge はAKA-Challenge応答の生成を依頼する。
func (c *Client) RespondChallenge(ctx context.Context, req *model.EAPRespondRequest) (*model.EAPRespondResponse, error) {
	var resp model.EAPRespondResponse
	if err := c.post(ctx, PathEAPRespond, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeriveMilenage は認証ベクターの計算を依頼する。
func (c *Client) DeriveMilenage(ctx context.Context, req *model.MilenageRequest) (*model.MilenageResponse, error) {
	var resp model.MilenageResponse
	if err := c.post(ctx, PathMilenageDerive, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyMilenage はRES/CKの検証を依頼する。
func (c *Client) VerifyMilenage(ctx context.Context, req *model.MilenageVerifyRequest) (*model.VerifyResponse, error) {
	var resp model.VerifyResponse
	if err := c.post(ctx, PathMilenageVerify, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeriveLTK はペアリング鍵導出を依頼する。
func (c *Client) DeriveLTK(ctx context.Context, req *model.PairingRequest) (*model.PairingResponse, error) {
	var resp model.PairingResponse
	if err := c.post(ctx, PathPairingLTK, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Seal はAES-CCM暗号化を依頼する。
func (c *Client) Seal(ctx context.Context, req *model.SealRequest) (*model.SealResponse, error) {
	var resp model.SealResponse
	if err := c.post(ctx, PathAEADSeal, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Open はAES-CCM復号を依頼する。
func (c *Client) Open(ctx context.Context, req *model.OpenRequest) (*model.OpenResponse, error) {
	var resp model.OpenResponse
	if err := c.post(ctx, PathAEADOpen, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post はJSONリクエストを送信し、成功時のボディをoutにデコードする。
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	if !ok || traceID == "" {
		return ErrTraceIDMissing
	}

	start := time.Now()

	result, err := c.cb.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderTraceID, traceID).
			SetHeader(HeaderContentType, ContentTypeJSON).
			SetBody(body).
			Post(c.baseURL + path)

		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()

		statusCode := resp.StatusCode()

		// CB失敗判定対象: 5xx（501除く）
		if statusCode >= 500 && statusCode != 501 {
			apiErr := parseAPIError(statusCode, resp.Body())
			logAPIError(traceID, path, apiErr, latencyMs)
			return nil, apiErr
		}

		// CB失敗判定対象外のエラー: 4xx, 501
		if statusCode != 200 {
			apiErr := parseAPIError(statusCode, resp.Body())
			logAPIError(traceID, path, apiErr, latencyMs)
			// 入力起因のエラーはnilを返してCBカウントに含めない
			return apiErr, nil
		}

		slog.Debug("crypto api success",
			logging.WithTraceID(traceID),
			logging.WithOperation(path),
			logging.WithLatency(latencyMs),
		)

		return resp.Body(), nil
	})

	if err != nil {
		// Circuit BreakerがOpen状態
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return apperr.NewBackendError(path, 0, ErrCircuitOpen)
		}
		return apperr.NewBackendError(path, statusOf(err), err)
	}

	// CB対象外のAPIErrorの場合
	if apiErr, ok := result.(*APIError); ok {
		return apperr.NewBackendError(path, apiErr.StatusCode, apiErr)
	}

	raw, ok := result.([]byte)
	if !ok {
		return apperr.NewBackendError(path, 200, ErrInvalidResponse)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperr.NewBackendError(path, 200, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err))
	}
	return nil
}

// parseAPIError はHTTPエラーレスポンスをAPIErrorに変換する。
func parseAPIError(statusCode int, body []byte) *APIError {
	if problem, ok := httputil.ParseProblem(body); ok {
		return &APIError{
			StatusCode: statusCode,
			Message:    problem.Title,
			Problem:    problem,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    string(body),
	}
}

func logAPIError(traceID, path string, apiErr *APIError, latencyMs int64) {
	slog.Error("crypto api error",
		logging.WithTraceID(traceID),
		logging.WithEventID("CRYPTO_API_ERR"),
		logging.WithOperation(path),
		logging.WithError(apiErr),
		logging.WithHTTPStatus(apiErr.StatusCode),
		logging.WithLatency(latencyMs),
	)
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// traceIDKey はコンテキストからTrace IDを取得するためのキー型
type traceIDKey struct{}

// WithTraceID はコンテキストにTrace IDを設定する。
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}
