package usecase

import (
	"encoding/hex"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

// decodeHex はHex文字列をバイト列に変換する。空文字列は空のバイト列になる。
func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, toProblem(apperr.NewFieldError(field, fmt.Errorf("%w: %w", apperr.ErrInvalidHex, err)))
	}
	return b, nil
}

// decodeRequiredHex は空文字列を欠落として扱う。
func decodeRequiredHex(field, s string) ([]byte, error) {
	if s == "" {
		return nil, toProblem(apperr.NewFieldError(field, apperr.ErrMissingField))
	}
	return decodeHex(field, s)
}

func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
