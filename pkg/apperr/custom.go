package apperr

import "fmt"

// ValidationError はバリデーションエラーを表す。
type ValidationError struct {
	Field   string // エラーが発生したフィールド名
	Message string // エラーメッセージ
	Cause   error  // 根本原因（ErrInvalidHex等）
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field=%s, message=%s", e.Field, e.Message)
}

// Unwrap は根本原因を返す。
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewFieldError は根本原因付きのValidationErrorを生成する。
func NewFieldError(field string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// BackendError はcrypto-apiとの通信エラーを表す。
type BackendError struct {
	Endpoint   string // 呼び出し先のパス
	StatusCode int    // HTTPステータスコード
	Cause      error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backend error: endpoint=%s, statusCode=%d, cause=%v",
			e.Endpoint, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("backend error: endpoint=%s, statusCode=%d",
		e.Endpoint, e.StatusCode)
}

// Unwrap は根本原因を返す。
func (e *BackendError) Unwrap() error {
	return e.Cause
}

// NewBackendError はBackendErrorを生成する。
func NewBackendError(endpoint string, statusCode int, cause error) *BackendError {
	return &BackendError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// DecodeError はワイヤフォーマットのデコード失敗位置を表す。
type DecodeError struct {
	Layer  string // frame, eap, tlv
	Offset int    // 失敗したバイトオフセット
	Cause  error  // 根本原因（各パッケージのセンチネルエラー）
}

// Error はerrorインターフェースを実装する。
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode error at offset %d: %v", e.Layer, e.Offset, e.Cause)
}

// Unwrap は根本原因を返す。
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is はErrDecodeとの比較を可能にする。
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError はDecodeErrorを生成する。
func NewDecodeError(layer string, offset int, cause error) *DecodeError {
	return &DecodeError{
		Layer:  layer,
		Offset: offset,
		Cause:  cause,
	}
}
