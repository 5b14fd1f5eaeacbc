package aead

import (
	"errors"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

// AEADエラー
var (
	// ErrAuthenticationFailed はタグ検証に失敗した場合のエラー（平文は返さない）
	ErrAuthenticationFailed = fmt.Errorf("aead: %w", apperr.ErrAuthenticationFailed)

	// ErrInvalidTagLength はタグ長が8バイトでない場合のエラー
	ErrInvalidTagLength = errors.New("invalid tag length")

	// ErrPayloadTooLong はAADまたは平文・暗号文がCCMの上限を超える場合のエラー
	ErrPayloadTooLong = fmt.Errorf("aead: payload too long: %w", apperr.ErrInvalidLength)

	// ErrInvalidSequence はシーケンス番号が39ビットを超える場合のエラー
	ErrInvalidSequence = errors.New("sequence number exceeds 39 bits")

	// ErrFrameTooShort は暗号化フレームがヘッダ+タグより短い場合のエラー
	ErrFrameTooShort = errors.New("encrypted frame too short")
)
