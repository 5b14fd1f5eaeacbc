package eap

import "errors"

// メッセージデコードエラー
var (
	// ErrMessageTooShort はEAPヘッダに必要なバイト数が不足している場合のエラー
	ErrMessageTooShort = errors.New("eap message too short")

	// ErrUnknownCode はCodeが Request/Response/Success/Failure 以外の場合のエラー
	ErrUnknownCode = errors.New("unknown eap code")

	// ErrUnknownSubtype はSubtypeが定義外の場合のエラー
	ErrUnknownSubtype = errors.New("unknown eap subtype")
)

// 属性デコードエラー
var (
	// ErrTruncatedAttribute はTLVの途中でバッファが終了した場合のエラー
	ErrTruncatedAttribute = errors.New("truncated attribute")

	// ErrAttributeTooShort はTLV長が不正（2未満または残りバイト超過）の場合のエラー
	ErrAttributeTooShort = errors.New("attribute too short")

	// ErrReservedBytesNonZero は予約バイトが0でない場合のエラー
	ErrReservedBytesNonZero = errors.New("reserved bytes are not zero")

	// ErrInvalidResLength はAT_RESのビット長が不正な場合のエラー
	ErrInvalidResLength = errors.New("invalid AT_RES bit length")
)

// エンコードエラー
var (
	// ErrMessageTooLong はメッセージ長が255バイトを超える場合のエラー
	ErrMessageTooLong = errors.New("eap message too long")

	// ErrAttributeTooLong は属性が255ワードを超える場合のエラー
	ErrAttributeTooLong = errors.New("attribute too long")
)
