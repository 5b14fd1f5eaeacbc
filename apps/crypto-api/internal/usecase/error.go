package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/randallknutson/pod/pkg/eap/aka"
	"github.com/randallknutson/pod/pkg/httputil"
	"github.com/randallknutson/pod/pkg/milenage"
	"github.com/randallknutson/pod/pkg/pairing"
)

// イベントID
const (
	EventCalcOK    = "CALC_OK"
	EventCalcErr   = "CALC_ERR"
	EventInputErr  = "INPUT_ERR"
	EventDecodeErr = "DECODE_ERR"
	EventAuthErr   = "AUTH_ERR"
	EventVerifyErr = "VERIFY_ERR"
)

// ProblemError はビジネスロジックエラーを表す。
type ProblemError struct {
	Status  int
	Title   string
	Type    string
	Detail  string
	Message string // ログメッセージ
	EventID string
}

// Error はerrorインターフェースを実装する。
func (e *ProblemError) Error() string {
	return e.Detail
}

// ToProblemDetail はProblemDetailに変換する。
func (e *ProblemError) ToProblemDetail() *httputil.ProblemDetail {
	p := httputil.NewProblemDetail(e.Status, e.Title, e.Detail)
	if e.Type != "" {
		p = p.WithType(e.Type)
	}
	return p
}

// LogLevel はログレベルを返す。
func (e *ProblemError) LogLevel() slog.Level {
	switch {
	case e.Status >= 500:
		return slog.LevelError
	case e.Status == http.StatusUnprocessableEntity:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// 定義済みエラー
var (
	ErrAuthenticationFailed = &ProblemError{
		Status:  http.StatusUnprocessableEntity,
		Title:   "Authentication Failed",
		Type:    httputil.TypeAuthenticationFailed,
		Detail:  "authentication failed",
		Message: "AEAD tag verification failed",
		EventID: EventAuthErr,
	}

	ErrCalculation = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Type:    httputil.TypeBlank,
		Detail:  "Cryptographic calculation failed",
		Message: "calculation error",
		EventID: EventCalcErr,
	}
)

func newInputError(detail string) *ProblemError {
	return &ProblemError{
		Status:  http.StatusBadRequest,
		Title:   "Bad Request",
		Type:    httputil.TypeValidation,
		Detail:  detail,
		Message: "invalid input",
		EventID: EventInputErr,
	}
}

func newDecodeError(detail string) *ProblemError {
	return &ProblemError{
		Status:  http.StatusUnprocessableEntity,
		Title:   "Decode Failed",
		Type:    httputil.TypeDecode,
		Detail:  detail,
		Message: "decode failed",
		EventID: EventDecodeErr,
	}
}

func newVerifyError(detail string) *ProblemError {
	return &ProblemError{
		Status:  http.StatusUnprocessableEntity,
		Title:   "Verification Failed",
		Type:    httputil.TypeVerificationFailed,
		Detail:  detail,
		Message: "verification failed",
		EventID: EventVerifyErr,
	}
}

// toProblem はコアパッケージのエラーをProblemErrorに変換する。
func toProblem(err error) error {
	var pe *ProblemError
	if errors.As(err, &pe) {
		return err
	}

	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, apperr.ErrAuthenticationFailed):
		// 認証失敗は部分一致情報を出さない
		return ErrAuthenticationFailed
	case errors.As(err, &ve):
		return newInputError(ve.Error())
	case errors.Is(err, pairing.ErrLowOrderPoint):
		return newInputError(err.Error())
	case errors.Is(err, apperr.ErrDecode),
		errors.Is(err, aka.ErrNotChallenge),
		errors.Is(err, aka.ErrMissingAttribute):
		return newDecodeError(err.Error())
	case errors.Is(err, apperr.ErrConfirmationMismatch):
		return newVerifyError("confirmation mismatch")
	case errors.Is(err, apperr.ErrAuthResMismatch):
		return newVerifyError("RES mismatch")
	case errors.Is(err, milenage.ErrCKMismatch):
		return newVerifyError("CK mismatch")
	case errors.Is(err, aka.ErrAUTNMismatch), errors.Is(err, apperr.ErrAuthMACInvalid):
		return newVerifyError("AUTN verification failed")
	default:
		return fmt.Errorf("%w: %v", ErrCalculation, err)
	}
}
