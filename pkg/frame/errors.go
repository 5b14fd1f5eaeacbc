package frame

import "errors"

// フレームデコードエラー
var (
	// ErrFrameTooShort はフレームが最小長に満たない場合のエラー
	ErrFrameTooShort = errors.New("frame too short")

	// ErrBadMagic はTWIヘッダのマジック "TW" が一致しない場合のエラー
	ErrBadMagic = errors.New("magic pattern not found")

	// ErrUnknownMessageType は未定義のメッセージ種別の場合のエラー
	ErrUnknownMessageType = errors.New("unknown message type")

	// ErrUnsupportedVersion はバージョンが0以外の場合のエラー
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// フレームエンコードエラー
var (
	// ErrPayloadTooLong はペイロード長が11ビットに収まらない場合のエラー
	ErrPayloadTooLong = errors.New("payload too long")

	// ErrFieldOverflow はビットフィールドに収まらない値が指定された場合のエラー
	ErrFieldOverflow = errors.New("header field overflow")
)
