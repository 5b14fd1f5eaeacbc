package client

import (
	"errors"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/randallknutson/pod/pkg/httputil"
)

// センチネルエラー
var (
	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidResponse はcrypto-apiからのレスポンスが不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from crypto-api")

	// ErrTraceIDMissing はコンテキストにTrace IDが設定されていない場合のエラー
	ErrTraceIDMissing = errors.New("trace id missing in context")
)

// APIError はcrypto-apiが返したエラーレスポンスを表す。
type APIError struct {
	StatusCode int
	Message    string
	Problem    *httputil.ProblemDetail
}

func (e *APIError) Error() string {
	if e.Problem != nil {
		return fmt.Sprintf("crypto api error: %d %s - %s", e.StatusCode, e.Problem.Title, e.Problem.Detail)
	}
	return fmt.Sprintf("crypto api error: %d %s", e.StatusCode, e.Message)
}

// Is はapperr.ErrCryptoAPIとの比較を可能にする。
func (e *APIError) Is(target error) bool {
	return target == apperr.ErrCryptoAPI
}

// IsBadRequest は入力不正エラーかどうかを判定する
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400
}

// IsUnprocessable はデコード・検証失敗かどうかを判定する
func (e *APIError) IsUnprocessable() bool {
	return e.StatusCode == 422
}

// IsServerError はサーバーエラーかどうかを判定する
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError は接続エラーを表す
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
