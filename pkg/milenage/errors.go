package milenage

import (
	"errors"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

// 検証エラー
var (
	// ErrRESMismatch は計算したRESが期待値と一致しない場合のエラー
	ErrRESMismatch = fmt.Errorf("milenage: %w", apperr.ErrAuthResMismatch)

	// ErrCKMismatch は計算したCKが期待値と一致しない場合のエラー
	ErrCKMismatch = errors.New("milenage: CK mismatch")

	// ErrMACMismatch はAUTN内のMAC-Aが一致しない場合のエラー
	ErrMACMismatch = fmt.Errorf("milenage: %w", apperr.ErrAuthMACInvalid)
)
