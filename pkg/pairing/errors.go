package pairing

import (
	"errors"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

// 鍵交換エラー
var (
	// ErrConfirmationMismatch は受信した確認値が計算値と一致しない場合のエラー
	ErrConfirmationMismatch = fmt.Errorf("pairing: %w", apperr.ErrConfirmationMismatch)

	// ErrLowOrderPoint は共有秘密が全ゼロになる公開鍵を受け取った場合のエラー
	ErrLowOrderPoint = errors.New("pairing: low order public key")
)

// フィールドコーデックエラー
var (
	// ErrFieldNotFound は期待するフィールド名が見つからない場合のエラー
	ErrFieldNotFound = errors.New("pairing field not found")

	// ErrFieldTruncated はフィールド長がデータ長を超える場合のエラー
	ErrFieldTruncated = errors.New("pairing field truncated")

	// ErrFieldTooLong はフィールド値が65535バイトを超える場合のエラー
	ErrFieldTooLong = errors.New("pairing field too long")

	// ErrTrailingData は全フィールドを読んだ後にデータが残っている場合のエラー
	ErrTrailingData = errors.New("trailing data after pairing fields")
)
