// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// 入力長関連エラー
var (
	// ErrInvalidKeyLength は鍵長が不正な場合のエラー
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidNonceLength はノンス長が不正な場合のエラー
	ErrInvalidNonceLength = errors.New("invalid nonce length")
	// ErrInvalidLength は鍵以外の入力長が不正な場合のエラー
	ErrInvalidLength = errors.New("invalid input length")
)

// 認証関連エラー
var (
	// ErrAuthenticationFailed はAEADタグ検証失敗エラー
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrConfirmationMismatch はペアリング確認値の不一致エラー
	ErrConfirmationMismatch = errors.New("pairing confirmation mismatch")
	// ErrAuthResMismatch はRES不一致エラー
	ErrAuthResMismatch = errors.New("authentication response mismatch")
	// ErrAuthMACInvalid はMAC検証失敗エラー
	ErrAuthMACInvalid = errors.New("invalid MAC")
)

// デコード関連エラー
var (
	// ErrDecode はフレーム・EAPメッセージのデコード失敗を表す
	ErrDecode = errors.New("decode error")
)

// 外部連携関連エラー
var (
	// ErrCryptoAPI はcrypto-api呼び出しエラー
	ErrCryptoAPI = errors.New("crypto API error")
	// ErrInvalidRequest は不正なリクエストエラー
	ErrInvalidRequest = errors.New("invalid request")
)

// バリデーション関連エラー
var (
	// ErrInvalidHex は不正な16進数文字列エラー
	ErrInvalidHex = errors.New("invalid hex string")
	// ErrMissingField は必須フィールド欠落エラー
	ErrMissingField = errors.New("missing field")
)
